package apiclient

import "fmt"

// ErrorKind classifies an API failure so callers can branch without parsing
// message strings.
type ErrorKind string

const (
	// KindNetwork means the request never produced an HTTP response.
	KindNetwork ErrorKind = "network"

	// KindHTTP means the server answered with a non-2xx status.
	KindHTTP ErrorKind = "http"

	// KindInvalidResponse means the server answered 2xx but the body was not
	// the expected JSON.
	KindInvalidResponse ErrorKind = "invalid-response"
)

// APIError is the single discriminated error type for every client failure:
// network errors, HTTP-status errors, and successful-but-non-JSON responses.
// It carries the failing endpoint, the status (when one was received) and any
// structured server message.
type APIError struct {
	Kind     ErrorKind
	Endpoint string
	Status   int
	Message  string
	Err      error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch e.Kind {
	case KindHTTP:
		if e.Message != "" {
			return fmt.Sprintf("api: %s failed with status %d: %s", e.Endpoint, e.Status, e.Message)
		}
		return fmt.Sprintf("api: %s failed with status %d", e.Endpoint, e.Status)
	case KindInvalidResponse:
		return fmt.Sprintf("api: %s returned an invalid response", e.Endpoint)
	default:
		return fmt.Sprintf("api: request to %s failed: %v", e.Endpoint, e.Err)
	}
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *APIError) Unwrap() error { return e.Err }
