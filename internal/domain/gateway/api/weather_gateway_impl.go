package api

import (
	"context"
	"strconv"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	units      string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, apiKey string, units string, clientOptions http.ClientOptions) WeatherGateway {
	if units == "" {
		units = "metric"
	}
	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
		units:      units,
	}
}

// GetCurrentWeather gets the current conditions for a place
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, query entity.LocationQuery) (*external.CurrentWeatherResponse, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/weather").
		WithQueryParams(w.queryParams(query)).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.WeatherAPIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.CurrentWeatherResponse), nil
	}
	return nil, classifyError(status, err, apiErrorMessage(errResp))
}

// GetForecast gets the 3 hour forecast for a place
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, query entity.LocationQuery) (*external.ForecastResponse, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(w.queryParams(query)).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.WeatherAPIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.ForecastResponse), nil
	}
	return nil, classifyError(status, err, apiErrorMessage(errResp))
}

// queryParams builds q or lat/lon plus units and appid
func (w *weatherGatewayImpl) queryParams(query entity.LocationQuery) map[string]string {
	params := map[string]string{
		"units": w.units,
		"appid": w.apiKey,
	}
	if query.Mode == entity.ModeCoordinates {
		params["lat"] = strconv.FormatFloat(query.Latitude, 'f', -1, 64)
		params["lon"] = strconv.FormatFloat(query.Longitude, 'f', -1, 64)
	} else {
		params["q"] = query.Name
	}
	return params
}

func apiErrorMessage(errResp any) string {
	if body, ok := errResp.(*external.WeatherAPIErrorResponse); ok && body != nil {
		return body.Message
	}
	return ""
}
