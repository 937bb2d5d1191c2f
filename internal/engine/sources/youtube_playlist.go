package sources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_playlist/internal/engine"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTube playlist items — one Data API v3 call per request, first page only.

const (
	ytPlaylistPart       = "snippet"
	ytPlaylistMaxResults = 50
)

// PlaylistClient fetches playlist items from the YouTube Data API.
// Safe for concurrent use; the underlying service is immutable after construction.
type PlaylistClient struct {
	svc *youtube.Service
}

// NewPlaylistClient builds a Data API client from the engine configuration.
// An empty API key disables authentication instead of falling back to
// application default credentials, so the upstream rejects the call.
func NewPlaylistClient(ctx context.Context, c engine.Config) (*PlaylistClient, error) {
	base := c.YouTubeAPIBase
	if base == "" {
		base = engine.DefaultYouTubeAPIBase
	}

	opts := []option.ClientOption{
		option.WithEndpoint(base),
		option.WithUserAgent(engine.UserAgentBot),
	}
	if c.YouTubeAPIKey != "" {
		opts = append(opts, option.WithAPIKey(c.YouTubeAPIKey))
	} else {
		opts = append(opts, option.WithoutAuthentication())
	}

	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &PlaylistClient{svc: svc}, nil
}

// PlaylistVideos lists up to 50 items of the playlist and maps them to
// VideoSummary records in upstream order.
// Any upstream failure is returned as *engine.UpstreamError.
func (c *PlaylistClient) PlaylistVideos(ctx context.Context, playlistID string) ([]engine.VideoSummary, error) {
	if playlistID == "" {
		return nil, engine.ErrMissingPlaylistID
	}
	engine.IncrYouTubeAPICalls()

	var resp *youtube.PlaylistItemListResponse
	err := engine.TrackOperation(ctx, "youtube_playlist_items", func(ctx context.Context) error {
		var err error
		resp, err = c.svc.PlaylistItems.List([]string{ytPlaylistPart}).
			PlaylistId(playlistID).
			MaxResults(ytPlaylistMaxResults).
			Context(ctx).
			Do()
		return err
	})
	if err == nil {
		err = checkListResponse(resp)
	}
	if err != nil {
		engine.IncrYouTubeAPIErrors()
		upErr := &engine.UpstreamError{PlaylistID: playlistID, Err: err}
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			upErr.StatusCode = apiErr.Code
		}
		return nil, upErr
	}

	slog.Debug("youtube playlist fetched",
		slog.String("playlist_id", playlistID),
		slog.Int("items", len(resp.Items)),
	)
	return SummarizeItems(resp.Items), nil
}

var (
	errEmptyResponse = errors.New("empty response body")
	errNoItems       = errors.New("response has no items")
)

// checkListResponse rejects 2xx bodies that carry no items array.
// An empty playlist still decodes to a non-nil empty slice.
func checkListResponse(resp *youtube.PlaylistItemListResponse) error {
	switch {
	case resp == nil:
		return errEmptyResponse
	case resp.Items == nil:
		return errNoItems
	}
	return nil
}

// SummarizeItems maps upstream playlist items to VideoSummary records.
// Order is preserved and no item is dropped; missing fields become null.
func SummarizeItems(items []*youtube.PlaylistItem) []engine.VideoSummary {
	videos := make([]engine.VideoSummary, 0, len(items))
	for _, item := range items {
		videos = append(videos, summarizeItem(item))
	}
	return videos
}

func summarizeItem(item *youtube.PlaylistItem) engine.VideoSummary {
	var v engine.VideoSummary
	if item == nil || item.Snippet == nil {
		return v
	}
	sn := item.Snippet
	v.Title = sn.Title
	if sn.ResourceId != nil && sn.ResourceId.VideoId != "" {
		id := sn.ResourceId.VideoId
		v.VideoID = &id
	}
	if sn.Thumbnails != nil && sn.Thumbnails.Medium != nil && sn.Thumbnails.Medium.Url != "" {
		u := sn.Thumbnails.Medium.Url
		v.Thumbnail = &u
	}
	return v
}

// UpstreamDetail extracts loggable detail from a failed playlist fetch:
// the upstream message and raw body for API errors, the error text otherwise.
func UpstreamDetail(err error) []slog.Attr {
	attrs := []slog.Attr{slog.Any("error", err)}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		attrs = append(attrs,
			slog.Int("status", apiErr.Code),
			slog.String("upstream_message", apiErr.Message),
			slog.String("upstream_body", engine.TruncateRunes(apiErr.Body, 512, "...")),
		)
	}
	return attrs
}
