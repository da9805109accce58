package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-dashboard/configs"
	_ "weather-dashboard/docs"
	"weather-dashboard/internal/application/controller"
	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/application/schedule"
	"weather-dashboard/internal/application/view"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/usecase/auth"
	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/internal/domain/usecase/health"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/internal/infra/httpclient"
	"weather-dashboard/internal/infra/sessionstore"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/resource"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func newWeatherUseCase() weather.UseCase {
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.weather-api.base-url"),
		resource.GetString("app.weather-api.api-key"),
		resource.GetString("app.weather-api.units"),
		httpclient.WeatherAPIOptions())
	return weather.NewWeatherUseCase(weatherGateway)
}

func serve(ctx context.Context) error {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)

	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}
	e.Renderer = renderer

	store, err := sessionstore.New(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	// Init Gateway
	userGateway := api.NewUserGateway(resource.GetString("app.user-service.base-url"), httpclient.UserServiceOptions())

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(store.Gateway)
	authUseCase := auth.NewAuthUseCase(userGateway)
	weatherUseCase := newWeatherUseCase()
	dashboardUseCase := dashboard.NewDashboardUseCase(store.Gateway, weatherUseCase,
		resource.GetString("app.dashboard.default-location"))

	// Init Controller
	apiGroup := e.Group(configs.Env.ContextPath)
	controller.NewHealthController(apiGroup, healthUseCase).InitHealthRoutes()
	controller.NewAuthController(apiGroup, authUseCase).InitAuthRoutes()
	controller.NewWeatherController(apiGroup, weatherUseCase).InitWeatherRoutes()
	controller.NewPageController(e, authUseCase, dashboardUseCase,
		resource.GetString("app.server.session-cookie"),
		resource.GetBool("app.server.secure-cookie")).InitPageRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	if store.Sweep {
		sessionScheduler := schedule.NewSessionScheduler(store.Gateway, resource.GetString("app.dashboard.sweep.cron"))
		if err = sessionScheduler.InitSessionScheduleTasks(); err != nil {
			return err
		}
		defer sessionScheduler.Stop()
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	errs := make(chan error, 1)
	go func() {
		errs <- e.Start(":" + port)
	}()
	log.Info(msg.GetMessage("app.started", port))

	select {
	case err = <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info(msg.GetMessage("app.stop"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
