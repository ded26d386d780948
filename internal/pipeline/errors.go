package pipeline

import (
	"errors"
	"fmt"
)

// ErrDestinationExists indicates the toolchain directory already exists.
// It is reported before any network activity.
var ErrDestinationExists = errors.New("toolchain already exists")

// HTTPStatusError reports a non-success response status for a component
// archive. It is surfaced before any body bytes are forwarded.
type HTTPStatusError struct {
	Status     string // e.g. "404 Not Found"
	StatusCode int
	URL        string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s %s", e.Status, e.URL)
}

// DecompressionError reports a malformed or truncated compressed stream.
// The archive walk stops at the first one; the stream cannot be resumed.
type DecompressionError struct {
	Archive string
	Err     error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("decompress %s: %v", e.Archive, e.Err)
}

func (e *DecompressionError) Unwrap() error {
	return e.Err
}
