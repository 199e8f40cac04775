package sleeper

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks. The concrete error types below carry the
// resource that failed.
var (
	ErrNotFound    = errors.New("not found")
	ErrFetchFailed = errors.New("fetch failed")
	ErrTransport   = errors.New("transport error")
)

// NotFoundError is returned when the API reports that a looked-up entity does
// not exist, e.g. an unknown username.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// FetchError is returned for any non-success HTTP status.
type FetchError struct {
	Resource   string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error fetching %s: unexpected status code %d", e.Resource, e.StatusCode)
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// TransportError wraps a network-level failure from the HTTP client.
type TransportError struct {
	Resource string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error fetching %s: %v", e.Resource, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
