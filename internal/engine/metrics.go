package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	FetchRequests        atomic.Int64
	FetchErrors          atomic.Int64
	ConfigRefreshes      atomic.Int64
	ConfigRefreshErrors  atomic.Int64
	YtcfgMissing         atomic.Int64
	SearchRequests       atomic.Int64
	BrowseRequests       atomic.Int64
	NextRequests         atomic.Int64
	ContinuationRequests atomic.Int64
}

var metricKeys = []string{
	"fetch_requests", "fetch_errors",
	"config_refreshes", "config_refresh_errors", "ytcfg_missing",
	"search_requests", "browse_requests", "next_requests",
	"continuation_requests",
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"fetch_requests":        metrics.FetchRequests.Load(),
		"fetch_errors":          metrics.FetchErrors.Load(),
		"config_refreshes":      metrics.ConfigRefreshes.Load(),
		"config_refresh_errors": metrics.ConfigRefreshErrors.Load(),
		"ytcfg_missing":         metrics.YtcfgMissing.Load(),
		"search_requests":       metrics.SearchRequests.Load(),
		"browse_requests":       metrics.BrowseRequests.Load(),
		"next_requests":         metrics.NextRequests.Load(),
		"continuation_requests": metrics.ContinuationRequests.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the sources/ sub-package.
func IncrConfigRefresh()        { metrics.ConfigRefreshes.Add(1) }
func IncrConfigRefreshError()   { metrics.ConfigRefreshErrors.Add(1) }
func IncrYtcfgMissing()         { metrics.YtcfgMissing.Add(1) }
func IncrSearchRequests()       { metrics.SearchRequests.Add(1) }
func IncrBrowseRequests()       { metrics.BrowseRequests.Add(1) }
func IncrNextRequests()         { metrics.NextRequests.Add(1) }
func IncrContinuationRequests() { metrics.ContinuationRequests.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
