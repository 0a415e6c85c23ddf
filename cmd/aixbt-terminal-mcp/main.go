// aixbt terminal MCP server - exposes aixbt project intelligence as MCP tools for LLMs
package main

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/aixbt/mcp-server/internal/config"
	"github.com/aixbt/mcp-server/internal/logging"
	"github.com/aixbt/mcp-server/internal/mcpserver"
	"github.com/aixbt/mcp-server/internal/metrics"
	"github.com/aixbt/mcp-server/internal/traces"
)

func main() {
	variant := mcpserver.VariantTerminal
	logger := logging.New(config.DefaultLogLevel, config.DefaultLogFormat)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = logging.New(cfg.LogLevel, cfg.LogFormat)

	logger.Info("starting MCP server",
		"server", variant.ServerName,
		"version", variant.Version,
		"upstream", variant.BaseURL,
	)

	shutdown, err := traces.Init(context.Background(), cfg.OTLPEndpoint, variant.ServerName, logger)
	if err != nil {
		logger.Error("failed to init tracing", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if cfg.MetricsAddr != "" {
		metrics.Serve(cfg.MetricsAddr, logger)
	}

	s := mcpserver.NewMCPServer(variant, cfg.APIKey, logger)

	logger.Info("tools registered, serving on stdio")
	if err := server.ServeStdio(s); err != nil {
		logger.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}
