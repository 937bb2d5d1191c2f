package engine

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUpstreamErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("fetch: %w", &UpstreamError{PlaylistID: "PL123", Err: cause})

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if !IsUpstreamError(err) {
		t.Error("IsUpstreamError() = false, want true")
	}
	if IsUpstreamError(ErrMissingPlaylistID) {
		t.Error("IsUpstreamError(ErrMissingPlaylistID) = true, want false")
	}
}

func TestUpstreamErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *UpstreamError
		want string
	}{
		{"with status", &UpstreamError{PlaylistID: "PL1", StatusCode: 403, Err: errors.New("quota")}, "status 403"},
		{"no response", &UpstreamError{PlaylistID: "PL1", Err: errors.New("dial tcp")}, "PL1: dial tcp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); !strings.Contains(got, tt.want) {
				t.Errorf("Error() = %q, want substring %q", got, tt.want)
			}
		})
	}
}
