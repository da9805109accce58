package weather

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/failure"
	"weather-dashboard/internal/domain/forecast"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/util/numberutils"
)

type weatherUseCase struct {
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{apiGateway: apiGateway}
}

func (uc *weatherUseCase) FindByLocation(ctx context.Context, name string) (*model.WeatherReport, error) {
	return uc.Find(ctx, entity.ByName(name))
}

func (uc *weatherUseCase) FindByCoordinates(ctx context.Context, latitude float64, longitude float64) (*model.WeatherReport, error) {
	return uc.Find(ctx, entity.ByCoordinates(latitude, longitude))
}

// Find issues the current conditions call, then the forecast call, and discards everything if either fails
func (uc *weatherUseCase) Find(ctx context.Context, query entity.LocationQuery) (*model.WeatherReport, error) {
	query.Name = strings.TrimSpace(query.Name)
	if err := validate(query); err != nil {
		return nil, err
	}

	log.Debug(msg.GetMessage("weather.log.fetch", query))

	current, err := uc.apiGateway.GetCurrentWeather(ctx, query)
	if err != nil {
		return nil, uc.logFailure(query, fmt.Errorf("current weather: %w", err))
	}

	forecastResp, err := uc.apiGateway.GetForecast(ctx, query)
	if err != nil {
		return nil, uc.logFailure(query, fmt.Errorf("forecast: %w", err))
	}

	daily, err := forecast.Normalize(toForecastEntries(forecastResp.List))
	if err != nil {
		return nil, uc.logFailure(query, failure.Wrap(failure.Decode, 0, err))
	}

	condition := external.FirstCondition(current.Weather)
	report := &model.WeatherReport{
		Current: entity.CurrentConditions{
			Name:        current.Name,
			Temperature: current.Main.Temp,
			Description: condition.Description,
			Icon:        condition.Icon,
		},
		Daily: daily,
	}

	log.Info(msg.GetMessage("weather.log.fetched", query, len(daily)))
	return report, nil
}

func (uc *weatherUseCase) logFailure(query entity.LocationQuery, err error) error {
	log.Warn(msg.GetMessage("weather.log.failed", query),
		zap.String("kind", string(failure.KindOf(err))),
		zap.Int("status", failure.StatusOf(err)),
		zap.Error(err))
	return err
}

func validate(query entity.LocationQuery) error {
	switch query.Mode {
	case entity.ModeLocation:
		if query.Name == "" {
			return failure.New(failure.Validation, "location name is required")
		}
	case entity.ModeCoordinates:
		if !numberutils.IsFloatInRange(query.Latitude, -90, 90) {
			return failure.New(failure.Validation, fmt.Sprintf("latitude %v out of range [-90, 90]", query.Latitude))
		}
		if !numberutils.IsFloatInRange(query.Longitude, -180, 180) {
			return failure.New(failure.Validation, fmt.Sprintf("longitude %v out of range [-180, 180]", query.Longitude))
		}
	default:
		return failure.New(failure.Validation, fmt.Sprintf("unknown location mode %q", query.Mode))
	}
	return nil
}

func toForecastEntries(items []external.ForecastItemDTO) []entity.ForecastEntry {
	entries := make([]entity.ForecastEntry, 0, len(items))
	for _, item := range items {
		condition := external.FirstCondition(item.Weather)
		entries = append(entries, entity.ForecastEntry{
			Timestamp:   item.DtTxt,
			Temperature: item.Main.Temp,
			Description: condition.Description,
			Icon:        condition.Icon,
		})
	}
	return entries
}

// FailureMessage is the text shown for any failed lookup in the given mode.
func FailureMessage(mode entity.LocationMode) string {
	if mode == entity.ModeLocation {
		return msg.GetMessage("weather.error.location")
	}
	return msg.GetMessage("weather.error.coordinates")
}
