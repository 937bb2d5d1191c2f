package engine

// --- Playlist types ---

// PlaylistInput is the input for the youtube_playlist tool.
type PlaylistInput struct {
	ID string `json:"id" jsonschema:"YouTube playlist ID (e.g. PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf)"`
}

// VideoSummary is the reduced projection of one upstream playlist item.
// VideoID and Thumbnail are null when the upstream item does not carry them.
type VideoSummary struct {
	Title     string  `json:"title"`
	VideoID   *string `json:"videoId"`
	Thumbnail *string `json:"thumbnail"`
}

// PlaylistOutput is the response body of GET /api/playlist and the
// structured output of youtube_playlist. Videos is never nil.
type PlaylistOutput struct {
	Videos []VideoSummary `json:"videos"`
}

// ErrorOutput is the body of every non-2xx playlist response.
type ErrorOutput struct {
	Error string `json:"error"`
}

// Client-visible error messages.
const (
	MsgMissingPlaylistID = "Missing playlist ID"
	MsgFetchFailed       = "Failed to fetch playlist"
)
