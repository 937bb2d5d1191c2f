// Package playlistserver exposes the playlist proxy over HTTP (gin) and as an
// MCP tool. Both surfaces share one PlaylistFetcher.
package playlistserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/anatolykoptev/go_playlist/internal/engine"
	"github.com/anatolykoptev/go_playlist/internal/engine/sources"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// PlaylistFetcher lists the videos of one playlist page.
type PlaylistFetcher interface {
	PlaylistVideos(ctx context.Context, playlistID string) ([]engine.VideoSummary, error)
}

// Options configures the router.
type Options struct {
	Version    string
	MCPHandler http.Handler // nil = /mcp not mounted
}

// NewRouter builds the HTTP routes: /api/playlist, /health, /metrics and,
// when configured, /mcp. CORS is permissive on every route.
func NewRouter(fetcher PlaylistFetcher, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestIDMiddleware(), accessLogMiddleware(), allowAnyOriginMiddleware(), cors.Default())

	r.GET("/api/playlist", handlePlaylist(fetcher))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": opts.Version})
	})
	r.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, engine.FormatMetrics())
	})
	if opts.MCPHandler != nil {
		r.Any("/mcp", gin.WrapH(opts.MCPHandler))
	}
	return r
}

func handlePlaylist(fetcher PlaylistFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine.IncrPlaylistRequests()

		playlistID := c.Query("id")
		if playlistID == "" {
			engine.IncrPlaylistBadRequests()
			c.JSON(http.StatusBadRequest, engine.ErrorOutput{Error: engine.MsgMissingPlaylistID})
			return
		}

		ctx := c.Request.Context()
		videos, err := fetcher.PlaylistVideos(ctx, playlistID)
		if err != nil {
			engine.IncrPlaylistErrors()
			logFetchFailure(ctx, "http", playlistID, requestIDFrom(c), err)
			c.JSON(http.StatusInternalServerError, engine.ErrorOutput{Error: engine.MsgFetchFailed})
			return
		}
		if videos == nil {
			videos = []engine.VideoSummary{}
		}
		c.JSON(http.StatusOK, engine.PlaylistOutput{Videos: videos})
	}
}

// logFetchFailure records the upstream detail that is never sent to callers.
// Failures that never reached the Data API (cancelled request, bad input)
// are logged at warn level.
func logFetchFailure(ctx context.Context, surface, playlistID, requestID string, err error) {
	attrs := []slog.Attr{
		slog.String("surface", surface),
		slog.String("playlist_id", playlistID),
	}
	if requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}
	if !engine.IsUpstreamError(err) {
		attrs = append(attrs, slog.Any("error", err))
		slog.LogAttrs(ctx, slog.LevelWarn, "playlist fetch aborted", attrs...)
		return
	}
	attrs = append(attrs, sources.UpstreamDetail(err)...)
	slog.LogAttrs(ctx, slog.LevelError, "playlist fetch failed", attrs...)
}
