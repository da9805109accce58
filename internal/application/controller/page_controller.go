package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-dashboard/internal/application/view"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/failure"
	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/internal/domain/usecase/auth"
	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

const homePath = "/home"

// PageController serves the server-rendered sign-in, sign-up and dashboard pages.
// Dashboard actions answer with a redirect to /home so that reloading never repeats a POST.
type PageController struct {
	router           *echo.Echo
	authUseCase      auth.UseCase
	dashboardUseCase dashboard.UseCase
	cookieName       string
	secureCookie     bool
	now              func() time.Time
}

func NewPageController(router *echo.Echo, authUseCase auth.UseCase, dashboardUseCase dashboard.UseCase,
	cookieName string, secureCookie bool) *PageController {
	return &PageController{
		router:           router,
		authUseCase:      authUseCase,
		dashboardUseCase: dashboardUseCase,
		cookieName:       cookieName,
		secureCookie:     secureCookie,
		now:              time.Now,
	}
}

// InitPageRoutes initializes the HTML routes
func (controller *PageController) InitPageRoutes() {
	controller.router.GET("/", controller.SignInPage)
	controller.router.POST("/", controller.SignIn)
	controller.router.GET("/signup", controller.SignUpPage)
	controller.router.POST("/signup", controller.SignUp)
	controller.router.GET(homePath, controller.Home)
	controller.router.POST(homePath+"/search", controller.Search)
	controller.router.POST(homePath+"/mode", controller.ToggleMode)
	controller.router.POST(homePath+"/details", controller.ToggleDetails)
}

func (controller *PageController) SignInPage(c echo.Context) error {
	page := view.AuthPage{Title: "Sign In"}
	if c.QueryParam("registered") != "" {
		page.Message = msg.GetMessage("auth.signup.success")
	}
	return c.Render(http.StatusOK, view.SignInTemplate, page)
}

func (controller *PageController) SignIn(c echo.Context) error {
	var credentials entity.SignInCredentials
	if err := c.Bind(&credentials); err != nil {
		return c.Render(http.StatusBadRequest, view.SignInTemplate,
			view.AuthPage{Title: "Sign In", Error: msg.GetMessage("app.invalid-body")})
	}

	if err := controller.authUseCase.SignIn(c.Request().Context(), credentials); err != nil {
		return c.Render(statusFor(err, http.StatusUnauthorized), view.SignInTemplate, view.AuthPage{
			Title: "Sign In",
			Email: credentials.Email,
			Error: failure.MessageOf(err, msg.GetMessage("auth.signin.error")),
		})
	}
	return c.Redirect(http.StatusSeeOther, homePath)
}

func (controller *PageController) SignUpPage(c echo.Context) error {
	return c.Render(http.StatusOK, view.SignUpTemplate, view.AuthPage{Title: "Sign Up"})
}

func (controller *PageController) SignUp(c echo.Context) error {
	var credentials entity.SignUpCredentials
	if err := c.Bind(&credentials); err != nil {
		return c.Render(http.StatusBadRequest, view.SignUpTemplate,
			view.AuthPage{Title: "Sign Up", Error: msg.GetMessage("app.invalid-body")})
	}

	if err := controller.authUseCase.SignUp(c.Request().Context(), credentials); err != nil {
		return c.Render(statusFor(err, http.StatusBadRequest), view.SignUpTemplate, view.AuthPage{
			Title: "Sign Up",
			Name:  credentials.Name,
			Email: credentials.Email,
			Error: failure.MessageOf(err, msg.GetMessage("auth.signup.error")),
		})
	}
	return c.Redirect(http.StatusSeeOther, "/?registered=true")
}

// Home renders the visitor's dashboard, opening a new one when the session cookie is missing or expired.
func (controller *PageController) Home(c echo.Context) error {
	ctx := c.Request().Context()

	var d *entity.Dashboard
	var err error
	id := controller.sessionID(c)
	if id != "" {
		d, err = controller.dashboardUseCase.Get(ctx, id)
	}
	if id == "" || errors.Is(err, session.ErrSessionNotFound) {
		d, err = controller.dashboardUseCase.Open(ctx)
		if err == nil {
			controller.setSessionCookie(c, d.ID)
		}
	}
	if err != nil {
		return controller.sessionFailure(c, err)
	}
	return c.Render(http.StatusOK, view.HomeTemplate, view.NewHomePage(d, controller.now()))
}

func (controller *PageController) Search(c echo.Context) error {
	return controller.withSession(c, func(id string) error {
		ctx := c.Request().Context()
		if _, err := controller.dashboardUseCase.SetFields(ctx, id,
			c.FormValue("search"), c.FormValue("latitude"), c.FormValue("longitude")); err != nil {
			return err
		}
		_, err := controller.dashboardUseCase.Search(ctx, id)
		return err
	})
}

func (controller *PageController) ToggleMode(c echo.Context) error {
	return controller.withSession(c, func(id string) error {
		_, err := controller.dashboardUseCase.ToggleMode(c.Request().Context(), id)
		return err
	})
}

func (controller *PageController) ToggleDetails(c echo.Context) error {
	return controller.withSession(c, func(id string) error {
		_, err := controller.dashboardUseCase.ToggleDetails(c.Request().Context(), id)
		return err
	})
}

// withSession runs action for the visitor's session and redirects to /home.
// A missing or expired session is dropped and /home opens a fresh one.
func (controller *PageController) withSession(c echo.Context, action func(id string) error) error {
	id := controller.sessionID(c)
	if id == "" {
		return c.Redirect(http.StatusSeeOther, homePath)
	}

	err := action(id)
	if errors.Is(err, session.ErrSessionNotFound) {
		log.Info(msg.GetMessage("dashboard.log.missing", id))
		controller.setSessionCookie(c, "")
		return c.Redirect(http.StatusSeeOther, homePath)
	}
	if err != nil {
		return controller.sessionFailure(c, err)
	}
	return c.Redirect(http.StatusSeeOther, homePath)
}

func (controller *PageController) sessionFailure(c echo.Context, err error) error {
	log.Error("dashboard session store failed", zap.Error(err))
	return c.String(http.StatusInternalServerError, msg.GetMessage("dashboard.error.session"))
}

func (controller *PageController) sessionID(c echo.Context) string {
	cookie, err := c.Cookie(controller.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setSessionCookie stores id in the session cookie, or deletes the cookie when id is empty.
func (controller *PageController) setSessionCookie(c echo.Context, id string) {
	cookie := &http.Cookie{
		Name:     controller.cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   controller.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if id == "" {
		cookie.MaxAge = -1
	}
	c.SetCookie(cookie)
}
