// go_playlist — YouTube playlist proxy.
//
// Serves GET /api/playlist?id=<playlistId>: one YouTube Data API v3
// playlistItems call, reshaped into {videos: [{title, videoId, thumbnail}]}.
// The same fetch is exposed as the youtube_playlist MCP tool on /mcp.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go_playlist/internal/engine"
	"github.com/anatolykoptev/go_playlist/internal/engine/sources"
	"github.com/anatolykoptev/go_playlist/internal/playlistserver"
	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version         = "dev"
	port            = env.Str("PORT", "3000")
	logLevel        = env.Str("LOG_LEVEL", "info")
	shutdownTimeout = env.Duration("SHUTDOWN_TIMEOUT", 10*time.Second)
)

func main() {
	initLogger()
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher, err := initEngine(context.Background())
	if err != nil {
		slog.Error("engine init failed", slog.Any("error", err))
		os.Exit(1)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_playlist",
		Version: version,
	}, nil)
	playlistserver.RegisterTools(server, fetcher)

	router := playlistserver.NewRouter(fetcher, playlistserver.Options{
		Version:    version,
		MCPHandler: playlistserver.NewMCPHandler(server),
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting go_playlist", slog.String("port", port), slog.String("version", version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutting down", slog.Duration("timeout", shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", slog.Any("error", err))
		}
	}
}

func initLogger() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func initEngine(ctx context.Context) (*sources.PlaylistClient, error) {
	c := engine.Config{
		YouTubeAPIKey:  env.Str("YOUTUBE_API_KEY", ""),
		YouTubeAPIBase: env.Str("YOUTUBE_API_BASE", engine.DefaultYouTubeAPIBase),
	}
	if c.YouTubeAPIKey == "" {
		slog.Warn("YOUTUBE_API_KEY is not set, upstream calls will be rejected")
	}
	return sources.NewPlaylistClient(ctx, c)
}
