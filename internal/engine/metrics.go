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
	PlaylistRequests    atomic.Int64
	PlaylistBadRequests atomic.Int64
	PlaylistErrors      atomic.Int64
	YouTubeAPICalls     atomic.Int64
	YouTubeAPIErrors    atomic.Int64
	MCPToolCalls        atomic.Int64
}

var metricKeys = []string{
	"playlist_requests", "playlist_bad_requests", "playlist_errors",
	"youtube_api_calls", "youtube_api_errors",
	"mcp_tool_calls",
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"playlist_requests":     metrics.PlaylistRequests.Load(),
		"playlist_bad_requests": metrics.PlaylistBadRequests.Load(),
		"playlist_errors":       metrics.PlaylistErrors.Load(),
		"youtube_api_calls":     metrics.YouTubeAPICalls.Load(),
		"youtube_api_errors":    metrics.YouTubeAPIErrors.Load(),
		"mcp_tool_calls":        metrics.MCPToolCalls.Load(),
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

// Incrementors for playlistserver/ and sources/ sub-packages.
func IncrPlaylistRequests()    { metrics.PlaylistRequests.Add(1) }
func IncrPlaylistBadRequests() { metrics.PlaylistBadRequests.Add(1) }
func IncrPlaylistErrors()      { metrics.PlaylistErrors.Add(1) }
func IncrYouTubeAPICalls()     { metrics.YouTubeAPICalls.Add(1) }
func IncrYouTubeAPIErrors()    { metrics.YouTubeAPIErrors.Add(1) }
func IncrMCPToolCalls()        { metrics.MCPToolCalls.Add(1) }

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
