// Package metrics provides Prometheus instrumentation for the aixbt MCP adapter.
package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for ToolCallsTotal.
const (
	OutcomeOK             = "ok"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeTransportError = "transport_error"
)

var (
	// ToolCallsTotal counts MCP tool invocations by tool name and outcome.
	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aixbt",
			Name:      "mcp_tool_calls_total",
			Help:      "Total MCP tool invocations by tool name and outcome.",
		},
		[]string{"tool", "outcome"},
	)

	// UpstreamRequestDuration observes upstream API request latency by HTTP status.
	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aixbt",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		ToolCallsTotal,
		UpstreamRequestDuration,
	)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve exposes /metrics on addr in a background goroutine. The listener is
// a side channel: MCP framing stays on stdio and diagnostics on stderr.
func Serve(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	go func() {
		logger.Info("metrics listener started", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("metrics listener stopped", "error", err)
		}
	}()
}
