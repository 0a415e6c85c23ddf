package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the aixbt MCP server.
// Descriptions are what the LLM reads to decide which tool to use.
//
// The Min/Max and MinLength/MaxLength bounds are published in the tool
// schema; handlers enforce the same bounds before any upstream request is
// issued, since the schema alone is advisory to most clients.

var ToolListTopProjects = mcp.NewTool("list-top-projects",
	mcp.WithDescription(
		"List the current top-ranked crypto projects tracked by aixbt. "+
			"Ranking is computed upstream from social momentum and on-chain activity; "+
			"results come back best ranked first, each with a short rationale."),
	mcp.WithNumber("limit",
		mcp.Required(),
		mcp.Min(1),
		mcp.Max(50),
		mcp.Description("Number of projects to return (1-50)")),
)

var ToolListProjectLatestSummaries = mcp.NewTool("list-project-latest-summaries",
	mcp.WithDescription(
		"Get the latest aixbt intelligence summaries for one crypto project, "+
			"newest first. Look the project up by ticker, case-insensitive (e.g. 'ETH')."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.MinLength(2),
		mcp.MaxLength(50),
		mcp.Description("Project ticker, case-insensitive (e.g. 'ETH')")),
	mcp.WithNumber("limit",
		mcp.Required(),
		mcp.Min(1),
		mcp.Max(50),
		mcp.Description("Maximum number of summaries to return (1-50)")),
)
