package api

import (
	"context"

	"weather-dashboard/internal/domain/model/external"
)

// UserGateway defines the calls to the external user-management service
type UserGateway interface {
	// SignIn posts the credentials and returns the 2xx body with its status.
	// Non-2xx answers come back as a failure.Error of kind STATUS carrying the service message.
	SignIn(ctx context.Context, request external.SignInRequest) (*external.UserServiceResponse, int, error)

	// Register posts a new user and returns the 2xx body
	Register(ctx context.Context, request external.RegisterRequest) (*external.UserServiceResponse, error)
}
