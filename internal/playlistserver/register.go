package playlistserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/anatolykoptev/go_playlist/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers the playlist tools on the given MCP server:
// youtube_playlist.
func RegisterTools(server *mcp.Server, fetcher PlaylistFetcher) {
	registerPlaylist(server, fetcher)
}

// NewMCPHandler serves server over the streamable HTTP transport.
func NewMCPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}

func registerPlaylist(server *mcp.Server, fetcher PlaylistFetcher) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_playlist",
		Description: "List the videos of a YouTube playlist (first 50 items). Returns title, videoId and medium thumbnail URL per video, in playlist order.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.PlaylistInput) (*mcp.CallToolResult, engine.PlaylistOutput, error) {
		engine.IncrMCPToolCalls()
		if input.ID == "" {
			return nil, engine.PlaylistOutput{}, errors.New(engine.MsgMissingPlaylistID)
		}

		videos, err := fetcher.PlaylistVideos(ctx, input.ID)
		if err != nil {
			logFetchFailure(ctx, "mcp", input.ID, "", err)
			return nil, engine.PlaylistOutput{}, errors.New(engine.MsgFetchFailed)
		}
		if videos == nil {
			videos = []engine.VideoSummary{}
		}
		return nil, engine.PlaylistOutput{Videos: videos}, nil
	})
}
