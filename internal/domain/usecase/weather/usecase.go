package weather

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type UseCase interface {
	// Find fetches the current conditions and daily summaries for a place name or coordinate pair
	Find(ctx context.Context, query entity.LocationQuery) (*model.WeatherReport, error)

	// FindByLocation fetches the weather report for a place name
	FindByLocation(ctx context.Context, name string) (*model.WeatherReport, error)

	// FindByCoordinates fetches the weather report for a latitude/longitude pair in decimal degrees
	FindByCoordinates(ctx context.Context, latitude float64, longitude float64) (*model.WeatherReport, error)
}
