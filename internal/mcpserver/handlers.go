package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aixbt/mcp-server/internal/metrics"
)

// Argument bounds shared by both tools.
const (
	minLimit   = 1
	maxLimit   = 50
	minNameLen = 2
	maxNameLen = 50
)

// Handlers holds the handler functions for each MCP tool. One implementation
// serves both deployment variants; the Variant decides host and score exposure.
type Handlers struct {
	client  *ProjectsClient
	variant Variant
	logger  *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(client *ProjectsClient, variant Variant, logger *slog.Logger) *Handlers {
	return &Handlers{client: client, variant: variant, logger: logger}
}

// topProject is the reshaped per-project output of list-top-projects.
// Score is only populated for variants that expose it.
type topProject struct {
	Name      string   `json:"name"`
	Rationale string   `json:"rationale"`
	Score     *float64 `json:"score,omitempty"`
}

// projectSummaries is the reshaped output of list-project-latest-summaries.
type projectSummaries struct {
	ProjectName string           `json:"projectName"`
	Summaries   []projectSummary `json:"summaries"`
}

type projectSummary struct {
	Description string `json:"description"`
}

// HandleListTopProjects returns the upstream project ranking, reshaped.
func (h *Handlers) HandleListTopProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 0)
	if limit < minLimit || limit > maxLimit {
		return nil, fmt.Errorf("limit must be an integer between %d and %d", minLimit, maxLimit)
	}

	h.logger.Info("tool invoked", "tool", "list-top-projects", "limit", limit)

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	env, err := h.client.FetchProjects(ctx, q)
	if err != nil {
		h.logger.Error("top projects fetch failed", "error", err)
		metrics.ToolCallsTotal.WithLabelValues("list-top-projects", metrics.OutcomeTransportError).Inc()
		return errorResult("Failed to fetch top projects", err.Error()), nil
	}

	// An empty ranking is valid; a missing data field is not.
	if env.Status != 200 || env.Data == nil {
		h.logger.Error("unexpected projects envelope", "status", env.Status, "has_data", env.Data != nil)
		metrics.ToolCallsTotal.WithLabelValues("list-top-projects", metrics.OutcomeUpstreamError).Inc()
		return errorResult("Failed to retrieve projects", ""), nil
	}

	out := make([]topProject, 0, len(env.Data))
	for _, rec := range env.Data {
		p := topProject{Name: rec.Name, Rationale: rec.Rationale}
		if h.variant.IncludeScore {
			score := rec.Score
			p.Score = &score
		}
		out = append(out, p)
	}

	text, err := prettyJSON(out)
	if err != nil {
		metrics.ToolCallsTotal.WithLabelValues("list-top-projects", metrics.OutcomeUpstreamError).Inc()
		return errorResult("Failed to retrieve projects", err.Error()), nil
	}

	metrics.ToolCallsTotal.WithLabelValues("list-top-projects", metrics.OutcomeOK).Inc()
	return mcp.NewToolResultText(text), nil
}

// HandleListProjectSummaries returns the latest summaries for one project.
//
// The upstream query always carries limit=1 to select a single ticker match;
// the caller's limit truncates that project's summaries locally. The double
// duty of the limit parameter is part of the published tool contract.
func (h *Handlers) HandleListProjectSummaries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if len(name) < minNameLen || len(name) > maxNameLen {
		return nil, fmt.Errorf("name must be between %d and %d characters", minNameLen, maxNameLen)
	}
	limit := req.GetInt("limit", 0)
	if limit < minLimit || limit > maxLimit {
		return nil, fmt.Errorf("limit must be an integer between %d and %d", minLimit, maxLimit)
	}

	h.logger.Info("tool invoked", "tool", "list-project-latest-summaries", "name", name, "limit", limit)

	q := url.Values{}
	q.Set("limit", "1")
	q.Set("ticker", strings.ToLower(name))

	env, err := h.client.FetchProjects(ctx, q)
	if err != nil {
		h.logger.Error("project summaries fetch failed", "name", name, "error", err)
		metrics.ToolCallsTotal.WithLabelValues("list-project-latest-summaries", metrics.OutcomeTransportError).Inc()
		return errorResult("Failed to fetch project summaries", err.Error()), nil
	}

	if env.Status != 200 || len(env.Data) == 0 {
		h.logger.Info("project not found", "name", name, "status", env.Status)
		metrics.ToolCallsTotal.WithLabelValues("list-project-latest-summaries", metrics.OutcomeUpstreamError).Inc()
		return errorResult("Project not found", ""), nil
	}

	proj := env.Data[0]
	n := limit
	if n > len(proj.Summaries) {
		n = len(proj.Summaries)
	}

	summaries := make([]projectSummary, 0, n)
	for _, s := range proj.Summaries[:n] {
		summaries = append(summaries, projectSummary{Description: s.Description})
	}

	text, err := prettyJSON(projectSummaries{ProjectName: proj.Name, Summaries: summaries})
	if err != nil {
		metrics.ToolCallsTotal.WithLabelValues("list-project-latest-summaries", metrics.OutcomeUpstreamError).Inc()
		return errorResult("Failed to fetch project summaries", err.Error()), nil
	}

	metrics.ToolCallsTotal.WithLabelValues("list-project-latest-summaries", metrics.OutcomeOK).Inc()
	return mcp.NewToolResultText(text), nil
}

// --- Result helpers ---

// errorPayload is the uniform error shape callers receive. They always get
// parseable JSON, never a raw error trace.
type errorPayload struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func errorResult(msg, details string) *mcp.CallToolResult {
	b, err := json.MarshalIndent(errorPayload{Error: msg, Details: details}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(msg)
	}
	return mcp.NewToolResultError(string(b))
}

func prettyJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
