package memos

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidAPIURL reports a base URL without a versioned API
	// segment. Raised before any network call.
	ErrInvalidAPIURL = errors.New("memos: api url must end with a versioned segment such as /api/v1")

	// ErrHostUnreachable wraps connection-level failures.
	ErrHostUnreachable = errors.New("memos: cannot reach host")
)

// TransportError is a non-2xx response from the remote API.
type TransportError struct {
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("memos: api error %d: %s", e.Status, e.Body)
}

// FormatError is a response body that could not be interpreted. The raw
// payload is retained for diagnosis.
type FormatError struct {
	Body string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("memos: unexpected response format: %v: %s", e.Err, e.Body)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
