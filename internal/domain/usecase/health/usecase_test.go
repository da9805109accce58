package health

import (
	"testing"
	"time"

	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/internal/domain/model"
)

type downSessionGateway struct {
	session.SessionGateway
}

func (downSessionGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusDown, Details: map[string]string{"last_error": "ping failed"}}
}

func TestCheckHealth(t *testing.T) {
	up := NewHealthUseCase(session.NewMemorySessionGateway(time.Minute)).CheckHealth()
	if up.Status != model.StatusUp || up.SessionStore.Details["store"] != "memory" {
		t.Errorf("CheckHealth() = %+v", up)
	}

	down := NewHealthUseCase(downSessionGateway{}).CheckHealth()
	if down.Status != model.StatusDown || down.SessionStore.Status != model.StatusDown {
		t.Errorf("CheckHealth() = %+v, want DOWN", down)
	}
}
