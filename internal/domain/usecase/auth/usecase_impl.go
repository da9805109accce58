package auth

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/failure"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// RegisteredMessage is the only response message the user service sends for a successful registration.
const RegisteredMessage = "User Added Successfully"

type authUseCase struct {
	userGateway api.UserGateway
}

func NewAuthUseCase(userGateway api.UserGateway) UseCase {
	return &authUseCase{userGateway: userGateway}
}

func (uc *authUseCase) SignIn(ctx context.Context, credentials entity.SignInCredentials) error {
	resp, status, err := uc.userGateway.SignIn(ctx, external.SignInRequest{
		Email:    credentials.Email,
		Password: credentials.Password,
	})
	if err != nil {
		return uc.reject("auth.log.signin-failed", status, err)
	}
	if status != http.StatusOK {
		return uc.reject("auth.log.signin-failed", status, &failure.Error{Kind: failure.Rejected, Status: status, Message: resp.Message})
	}
	return nil
}

func (uc *authUseCase) SignUp(ctx context.Context, credentials entity.SignUpCredentials) error {
	if !credentials.PasswordsMatch() {
		return failure.New(failure.Validation, msg.GetMessage("auth.signup.mismatch"))
	}

	resp, err := uc.userGateway.Register(ctx, external.RegisterRequest{
		Name:     credentials.Name,
		Email:    credentials.Email,
		Password: credentials.Password,
	})
	if err != nil {
		return uc.reject("auth.log.signup-failed", failure.StatusOf(err), err)
	}
	if resp.Message != RegisteredMessage {
		return uc.reject("auth.log.signup-failed", http.StatusOK, failure.New(failure.Rejected, resp.Message))
	}
	return nil
}

// reject turns a STATUS failure into REJECTED so the service message reaches the caller, and logs it
func (uc *authUseCase) reject(key string, status int, err error) error {
	if failure.Is(err, failure.Status) {
		err = &failure.Error{Kind: failure.Rejected, Status: status, Message: failure.MessageOf(err, ""), Err: err}
	}
	log.Warn(msg.GetMessage(key),
		zap.String("kind", string(failure.KindOf(err))),
		zap.Int("status", status))
	return err
}
