package model

import "weather-dashboard/internal/domain/entity"

// WeatherReport is the current conditions of a place plus its daily summaries
type WeatherReport struct {
	Current entity.CurrentConditions `json:"current"`
	Daily   []entity.DailySummary    `json:"daily"`
}
