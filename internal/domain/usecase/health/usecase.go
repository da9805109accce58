package health

import "weather-dashboard/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
