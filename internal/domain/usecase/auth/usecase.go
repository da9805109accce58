package auth

import (
	"context"

	"weather-dashboard/internal/domain/entity"
)

type UseCase interface {
	// SignIn succeeds only when the user service answers 200
	SignIn(ctx context.Context, credentials entity.SignInCredentials) error

	// SignUp checks the password confirmation locally, then registers the user
	SignUp(ctx context.Context, credentials entity.SignUpCredentials) error
}
