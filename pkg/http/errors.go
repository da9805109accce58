package http

import "fmt"

// StatusError is returned when the server answered with a non-2xx status.
// The decoded error response, if any, is still returned alongside it by Execute.
type StatusError struct {
	Method string
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: %s %s returned status %d", e.Method, e.Path, e.Status)
}

// DecodeError is returned when a response body could not be decoded into the target type.
type DecodeError struct {
	Status int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response with status %d: %v", e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
