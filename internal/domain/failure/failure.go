package failure

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation against an external service failed.
type Kind string

const (
	// Transport means no HTTP response was received (network, timeout, open circuit breaker).
	Transport Kind = "TRANSPORT"
	// Status means the service answered with an unexpected HTTP status.
	Status Kind = "STATUS"
	// Decode means the response body could not be decoded.
	Decode Kind = "DECODE"
	// Validation means the input was rejected before any call was made.
	Validation Kind = "VALIDATION"
	// Rejected means the service answered but refused the request.
	Rejected Kind = "REJECTED"
)

// Error is a tagged failure. Status is the HTTP status when one was received, Message the
// user-facing text supplied by the service or by local validation, if any.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	text := string(e.Kind)
	if e.Status != 0 {
		text = fmt.Sprintf("%s (status %d)", text, e.Status)
	}
	if e.Message != "" {
		text += ": " + e.Message
	}
	if e.Err != nil {
		text += ": " + e.Err.Error()
	}
	return text
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, status int, err error) *Error {
	return &Error{Kind: kind, Status: status, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var f *Error
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// Is reports whether err carries a failure of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// MessageOf returns the service or validation message carried by err, or fallback when it has none.
func MessageOf(err error, fallback string) string {
	var f *Error
	if errors.As(err, &f) && f.Message != "" {
		return f.Message
	}
	return fallback
}

// StatusOf returns the HTTP status carried by err, or 0 when none was received.
func StatusOf(err error) int {
	var f *Error
	if errors.As(err, &f) {
		return f.Status
	}
	return 0
}
