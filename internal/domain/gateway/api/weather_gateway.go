package api

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model/external"
)

// WeatherGateway defines the interface for the weather API calls
type WeatherGateway interface {
	// GetCurrentWeather gets the current conditions for a place name or coordinate pair
	GetCurrentWeather(ctx context.Context, query entity.LocationQuery) (*external.CurrentWeatherResponse, error)

	// GetForecast gets the 5 day / 3 hour forecast for a place name or coordinate pair
	GetForecast(ctx context.Context, query entity.LocationQuery) (*external.ForecastResponse, error)
}
