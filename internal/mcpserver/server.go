// Package mcpserver exposes the aixbt project-intelligence API as MCP tools.
package mcpserver

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
)

// Variant pins one deployment of the adapter: which aixbt host it talks to
// and which response fields it exposes. Hosts are fixed at compile time.
type Variant struct {
	ServerName   string
	Version      string
	BaseURL      string
	IncludeScore bool
}

var (
	// VariantTerminal targets the terminal API, which exposes project scores.
	VariantTerminal = Variant{
		ServerName:   "aixbt-terminal",
		Version:      "1.0.0",
		BaseURL:      "https://terminal-api.aixbt.tech",
		IncludeScore: true,
	}

	// VariantPublic targets the public API; scores are not exposed there.
	VariantPublic = Variant{
		ServerName:   "aixbt",
		Version:      "1.0.0",
		BaseURL:      "https://api.aixbt.tech",
		IncludeScore: false,
	}
)

// NewMCPServer creates a configured MCP server with both aixbt tools registered.
func NewMCPServer(v Variant, apiKey string, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(v.ServerName, v.Version)
	client := NewProjectsClient(v.BaseURL, apiKey, logger)
	h := NewHandlers(client, v, logger)

	s.AddTool(ToolListTopProjects, h.HandleListTopProjects)
	s.AddTool(ToolListProjectLatestSummaries, h.HandleListProjectSummaries)

	return s
}
