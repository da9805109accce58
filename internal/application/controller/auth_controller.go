package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/failure"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/auth"
	"weather-dashboard/pkg/msg"
)

type AuthController struct {
	api     *echo.Group
	useCase auth.UseCase
}

func NewAuthController(api *echo.Group, useCase auth.UseCase) *AuthController {
	return &AuthController{api: api, useCase: useCase}
}

// InitAuthRoutes initializes sign-in and sign-up routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/auth/signin", controller.SignIn)
	controller.api.POST("/auth/signup", controller.SignUp)
}

// SignIn godoc
// @Summary Sign in
// @Description Check credentials against the user service
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body entity.SignInCredentials true "Email and password"
// @Success 200 {object} model.MessageResponse "Signed in, redirect to /home"
// @Failure 400 {object} model.ErrorResponse "Invalid request body"
// @Failure 401 {object} model.ErrorResponse "Credentials rejected"
// @Failure 502 {object} model.ErrorResponse "User service unavailable"
// @Router /auth/signin [post]
func (controller *AuthController) SignIn(c echo.Context) error {
	var credentials entity.SignInCredentials
	if err := c.Bind(&credentials); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.invalid-body")})
	}

	if err := controller.useCase.SignIn(c.Request().Context(), credentials); err != nil {
		return c.JSON(statusFor(err, http.StatusUnauthorized),
			map[string]string{"error": failure.MessageOf(err, msg.GetMessage("auth.signin.error"))})
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: msg.GetMessage("auth.signin.success"), Redirect: "/home"})
}

// SignUp godoc
// @Summary Sign up
// @Description Register a new user with the user service
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body entity.SignUpCredentials true "Name, email, password and confirmation"
// @Success 201 {object} model.MessageResponse "Registered, redirect to sign-in"
// @Failure 400 {object} model.ErrorResponse "Invalid body, passwords do not match or registration rejected"
// @Failure 502 {object} model.ErrorResponse "User service unavailable"
// @Router /auth/signup [post]
func (controller *AuthController) SignUp(c echo.Context) error {
	var credentials entity.SignUpCredentials
	if err := c.Bind(&credentials); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.invalid-body")})
	}

	if err := controller.useCase.SignUp(c.Request().Context(), credentials); err != nil {
		return c.JSON(statusFor(err, http.StatusBadRequest),
			map[string]string{"error": failure.MessageOf(err, msg.GetMessage("auth.signup.error"))})
	}
	return c.JSON(http.StatusCreated, model.MessageResponse{Message: msg.GetMessage("auth.signup.success"), Redirect: "/"})
}
