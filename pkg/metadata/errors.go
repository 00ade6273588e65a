package metadata

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned by every lookup when no provider API key is set
	ErrNotConfigured = errors.New("TMDB_API_KEY not set in environment")

	ErrInvalidExternalID = errors.New("invalid external id")
)

// UpstreamError is a failed provider call. Message is the provider's own message when it sent one.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("metadata provider returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("metadata provider request failed: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
