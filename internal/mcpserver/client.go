package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aixbt/mcp-server/internal/metrics"
	"github.com/aixbt/mcp-server/internal/traces"
)

// projectsEnvelope is the wrapper the aixbt API puts around every response.
// Success is judged on the body's status field, not the HTTP status line.
// A missing "data" key decodes to a nil slice, distinct from a present-but-empty one.
type projectsEnvelope struct {
	Status int             `json:"status"`
	Data   []ProjectRecord `json:"data"`
}

// ProjectRecord is a single project as returned upstream.
type ProjectRecord struct {
	Name      string          `json:"name"`
	Rationale string          `json:"rationale"`
	Score     float64         `json:"score"`
	Summaries []SummaryRecord `json:"summaries"`
}

// SummaryRecord is one intelligence summary attached to a project.
type SummaryRecord struct {
	Description string `json:"description"`
}

// ProjectsClient is a pure HTTP client for the aixbt projects endpoint.
// It is immutable after construction and safe for reuse across invocations.
type ProjectsClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewProjectsClient creates a client for the given aixbt host.
func NewProjectsClient(baseURL, apiKey string, logger *slog.Logger) *ProjectsClient {
	return &ProjectsClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// FetchProjects issues one authenticated GET to /v1/projects with the given
// query and decodes the response envelope. Transport failures and undecodable
// bodies are errors; envelope-level failures (status != 200, missing data)
// are not — callers judge those per tool.
func (c *ProjectsClient) FetchProjects(ctx context.Context, query url.Values) (*projectsEnvelope, error) {
	u := c.baseURL + "/v1/projects"
	if enc := query.Encode(); enc != "" {
		u += "?" + enc
	}

	c.logger.Debug("upstream request",
		"method", http.MethodGet,
		"url", u,
		"params", query.Encode(),
	)

	ctx, span := traces.StartSpan(ctx, "aixbt.fetch_projects", traces.URL(u))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	metrics.UpstreamRequestDuration.WithLabelValues(strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())
	span.SetAttributes(traces.HTTPStatus(resp.StatusCode))

	c.logger.Debug("upstream response",
		"status", resp.StatusCode,
		"url", u,
		"body", truncate(string(body), 200),
	)

	var env projectsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &env, nil
}

// truncate caps s at n bytes for log lines.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
