package lookup

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when no usable API key is available.
	ErrNotConfigured = errors.New("lookup: api key not configured")
	// ErrInvalidKey is returned on HTTP 401 from the search API.
	ErrInvalidKey = errors.New("lookup: invalid api key")
	// ErrQuotaExceeded is returned on HTTP 402 from the search API.
	ErrQuotaExceeded = errors.New("lookup: api quota exceeded")
)

// UpstreamError reports a non-200 status outside the mapped set.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("lookup: upstream error: http %d", e.Status)
}

// TransportError wraps network, timeout and decode failures. The
// wrapped detail is for server-side logs only and is never shown to
// end users.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("lookup: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
