package api

import (
	"errors"

	"weather-dashboard/internal/domain/failure"
	"weather-dashboard/pkg/http"
)

// classifyError maps a pkg/http error to a tagged failure, keeping the service message if one was decoded.
func classifyError(status int, err error, message string) error {
	var decodeErr *http.DecodeError
	if errors.As(err, &decodeErr) {
		return &failure.Error{Kind: failure.Decode, Status: status, Err: err}
	}

	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		return &failure.Error{Kind: failure.Status, Status: statusErr.Status, Message: message, Err: err}
	}

	return &failure.Error{Kind: failure.Transport, Err: err}
}
