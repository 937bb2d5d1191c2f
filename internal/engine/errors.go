package engine

import (
	"errors"
	"fmt"
)

// ErrMissingPlaylistID is returned when a playlist request has no ID.
var ErrMissingPlaylistID = errors.New("missing playlist id")

// UpstreamError wraps any failure of the YouTube Data API call: transport
// errors, non-2xx responses and undecodable bodies alike.
type UpstreamError struct {
	PlaylistID string
	// StatusCode is the upstream HTTP status, 0 when no response was received.
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("youtube playlistItems %s: status %d: %v", e.PlaylistID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("youtube playlistItems %s: %v", e.PlaylistID, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsUpstreamError reports whether err came from the upstream API call.
func IsUpstreamError(err error) bool {
	var upErr *UpstreamError
	return errors.As(err, &upErr)
}
