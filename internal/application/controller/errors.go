package controller

import (
	"net/http"

	"weather-dashboard/internal/domain/failure"
)

// statusFor maps a failure to the HTTP status returned to API clients.
// fallback is used for rejections that carry no upstream status.
func statusFor(err error, fallback int) int {
	switch failure.KindOf(err) {
	case failure.Validation:
		return http.StatusBadRequest
	case failure.Rejected:
		if status := failure.StatusOf(err); status >= 400 && status < 500 {
			return status
		}
		return fallback
	case failure.Status:
		if failure.StatusOf(err) == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}
