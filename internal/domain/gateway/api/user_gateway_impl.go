package api

import (
	"context"
	"errors"

	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/http"
)

type userGatewayImpl struct {
	httpClient *http.Client
}

// NewUserGateway creates a new instance of UserGateway with HTTP client
func NewUserGateway(baseUrl string, clientOptions http.ClientOptions) UserGateway {
	return &userGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// SignIn calls POST /users/login
func (u *userGatewayImpl) SignIn(ctx context.Context, request external.SignInRequest) (*external.UserServiceResponse, int, error) {
	successResp, errResp, status, err := u.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath("/users/login").
		WithBody(request).
		WithSuccessResp(&external.UserServiceResponse{}).
		WithErrorResp(&external.UserServiceResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.UserServiceResponse), status, nil
	}
	// the login message body is optional, a 2xx decides on its own
	var decodeErr *http.DecodeError
	if errors.As(err, &decodeErr) && status >= 200 && status < 300 {
		return &external.UserServiceResponse{}, status, nil
	}
	return nil, status, classifyError(status, err, userErrorMessage(errResp))
}

// Register calls POST /users/adduser
func (u *userGatewayImpl) Register(ctx context.Context, request external.RegisterRequest) (*external.UserServiceResponse, error) {
	successResp, errResp, status, err := u.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath("/users/adduser").
		WithBody(request).
		WithSuccessResp(&external.UserServiceResponse{}).
		WithErrorResp(&external.UserServiceResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.UserServiceResponse), nil
	}
	return nil, classifyError(status, err, userErrorMessage(errResp))
}

func userErrorMessage(errResp any) string {
	if body, ok := errResp.(*external.UserServiceResponse); ok && body != nil {
		return body.Message
	}
	return ""
}
