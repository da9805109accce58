package health

import (
	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/internal/domain/model"
)

type healthUseCase struct {
	sessionGateway session.SessionGateway
}

func NewHealthUseCase(sessionGateway session.SessionGateway) UseCase {
	return &healthUseCase{
		sessionGateway: sessionGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	sessionHealth := useCase.sessionGateway.Health()

	overallStatus := model.StatusUp
	if sessionHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:       overallStatus,
		SessionStore: sessionHealth,
	}
}
