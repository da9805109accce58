package auth

import (
	"context"
	"io"
	"testing"

	_ "weather-dashboard/configs"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/failure"
	"weather-dashboard/internal/domain/model/external"
)

type mockUserGateway struct {
	signInResp   *external.UserServiceResponse
	signInStatus int
	signInErr    error
	registerResp *external.UserServiceResponse
	registerErr  error
	signInCalls  []external.SignInRequest
	registered   []external.RegisterRequest
}

func (m *mockUserGateway) SignIn(ctx context.Context, request external.SignInRequest) (*external.UserServiceResponse, int, error) {
	m.signInCalls = append(m.signInCalls, request)
	return m.signInResp, m.signInStatus, m.signInErr
}

func (m *mockUserGateway) Register(ctx context.Context, request external.RegisterRequest) (*external.UserServiceResponse, error) {
	m.registered = append(m.registered, request)
	return m.registerResp, m.registerErr
}

func TestSignIn(t *testing.T) {
	tests := []struct {
		name        string
		gateway     *mockUserGateway
		wantKind    failure.Kind
		wantMessage string
	}{
		{
			name:    "status 200 signs in",
			gateway: &mockUserGateway{signInResp: &external.UserServiceResponse{Message: "ok"}, signInStatus: 200},
		},
		{
			name:    "status 200 without message body signs in",
			gateway: &mockUserGateway{signInResp: &external.UserServiceResponse{}, signInStatus: 200},
		},
		{
			name:        "other 2xx without message falls back to generic message",
			gateway:     &mockUserGateway{signInResp: &external.UserServiceResponse{}, signInStatus: 202},
			wantKind:    failure.Rejected,
			wantMessage: "An error occurred while signing in",
		},
		{
			name:        "other 2xx shows server message",
			gateway:     &mockUserGateway{signInResp: &external.UserServiceResponse{Message: "Please verify your email"}, signInStatus: 202},
			wantKind:    failure.Rejected,
			wantMessage: "Please verify your email",
		},
		{
			name: "non 2xx shows server message",
			gateway: &mockUserGateway{
				signInStatus: 401,
				signInErr:    &failure.Error{Kind: failure.Status, Status: 401, Message: "Invalid credentials"},
			},
			wantKind:    failure.Rejected,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "transport failure falls back to generic message",
			gateway:     &mockUserGateway{signInErr: failure.Wrap(failure.Transport, 0, io.EOF)},
			wantKind:    failure.Transport,
			wantMessage: "An error occurred while signing in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAuthUseCase(tt.gateway).SignIn(context.Background(), entity.SignInCredentials{Email: "a@b.c", Password: "secret"})

			if len(tt.gateway.signInCalls) != 1 || tt.gateway.signInCalls[0] != (external.SignInRequest{Email: "a@b.c", Password: "secret"}) {
				t.Errorf("gateway calls = %+v", tt.gateway.signInCalls)
			}
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("SignIn() error = %v", err)
				}
				return
			}
			if !failure.Is(err, tt.wantKind) {
				t.Fatalf("error = %v, want kind %s", err, tt.wantKind)
			}
			if got := failure.MessageOf(err, "An error occurred while signing in"); got != tt.wantMessage {
				t.Errorf("display message = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestSignUpPasswordMismatch(t *testing.T) {
	gateway := &mockUserGateway{}
	err := NewAuthUseCase(gateway).SignUp(context.Background(), entity.SignUpCredentials{
		Name: "Ann", Email: "ann@x.io", Password: "abc", ConfirmPassword: "xyz",
	})

	if !failure.Is(err, failure.Validation) {
		t.Fatalf("error = %v, want VALIDATION", err)
	}
	if got := failure.MessageOf(err, ""); got != "Passwords do not match" {
		t.Errorf("message = %q, want %q", got, "Passwords do not match")
	}
	if len(gateway.registered) != 0 {
		t.Errorf("network calls = %d, want 0", len(gateway.registered))
	}
}

func TestSignUp(t *testing.T) {
	tests := []struct {
		name        string
		gateway     *mockUserGateway
		wantKind    failure.Kind
		wantMessage string
	}{
		{
			name:    "registered",
			gateway: &mockUserGateway{registerResp: &external.UserServiceResponse{Message: RegisteredMessage}},
		},
		{
			name:        "duplicate email",
			gateway:     &mockUserGateway{registerResp: &external.UserServiceResponse{Message: "User already exists"}},
			wantKind:    failure.Rejected,
			wantMessage: "User already exists",
		},
		{
			name: "error status with message",
			gateway: &mockUserGateway{
				registerErr: &failure.Error{Kind: failure.Status, Status: 409, Message: "Email taken"},
			},
			wantKind:    failure.Rejected,
			wantMessage: "Email taken",
		},
		{
			name:        "transport failure",
			gateway:     &mockUserGateway{registerErr: failure.Wrap(failure.Transport, 0, io.EOF)},
			wantKind:    failure.Transport,
			wantMessage: "An error occurred during signup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAuthUseCase(tt.gateway).SignUp(context.Background(), entity.SignUpCredentials{
				Name: "Ann", Email: "ann@x.io", Password: "pw", ConfirmPassword: "pw",
			})

			want := external.RegisterRequest{Name: "Ann", Email: "ann@x.io", Password: "pw"}
			if len(tt.gateway.registered) != 1 || tt.gateway.registered[0] != want {
				t.Errorf("registered = %+v", tt.gateway.registered)
			}
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("SignUp() error = %v", err)
				}
				return
			}
			if !failure.Is(err, tt.wantKind) {
				t.Fatalf("error = %v, want kind %s", err, tt.wantKind)
			}
			if got := failure.MessageOf(err, "An error occurred during signup"); got != tt.wantMessage {
				t.Errorf("display message = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}
