package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/util/numberutils"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.FindWeather)
}

// FindWeather godoc
// @Summary Get current weather and daily forecast
// @Description Fetch the current conditions and up to 7 daily summaries for a place name or a coordinate pair
// @Tags weather
// @Produce json
// @Param location query string false "Place name, e.g. Colombo"
// @Param lat query number false "Latitude in decimal degrees"
// @Param lon query number false "Longitude in decimal degrees"
// @Success 200 {object} model.WeatherReport "Weather report"
// @Failure 400 {object} model.ErrorResponse "Missing or invalid query"
// @Failure 404 {object} model.ErrorResponse "Location or coordinates not found"
// @Failure 502 {object} model.ErrorResponse "Weather service unavailable"
// @Router /weather [get]
func (controller *WeatherController) FindWeather(c echo.Context) error {
	location := strings.TrimSpace(c.QueryParam("location"))
	lat, lon := c.QueryParam("lat"), c.QueryParam("lon")

	var query entity.LocationQuery
	switch {
	case location != "":
		query = entity.ByName(location)
	case lat != "" && lon != "":
		latitude, latErr := numberutils.ToFloat64WithError(lat)
		longitude, lonErr := numberutils.ToFloat64WithError(lon)
		if latErr != nil || lonErr != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": weather.FailureMessage(entity.ModeCoordinates)})
		}
		query = entity.ByCoordinates(latitude, longitude)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("weather.error.missing-query")})
	}

	report, err := controller.useCase.Find(c.Request().Context(), query)
	if err != nil {
		return c.JSON(statusFor(err, http.StatusNotFound), map[string]string{"error": weather.FailureMessage(query.Mode)})
	}
	return c.JSON(http.StatusOK, report)
}
