package session

import (
	"context"
	"errors"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

var ErrSessionNotFound = errors.New("dashboard session not found")

// SessionGateway stores dashboards by session id. Implementations return copies,
// so a dashboard obtained from Get is never mutated by other requests.
type SessionGateway interface {
	Create(ctx context.Context, dashboard *entity.Dashboard) error
	Get(ctx context.Context, id string) (*entity.Dashboard, error)
	// Update applies fn to the stored dashboard atomically and returns the stored result.
	// When fn returns an error the stored dashboard is left unchanged.
	Update(ctx context.Context, id string, fn func(*entity.Dashboard) error) (*entity.Dashboard, error)
	Delete(ctx context.Context, id string) error
	// Sweep removes expired sessions and returns how many were removed.
	Sweep(ctx context.Context) (int, error)
	Health() model.ComponentHealthStatus
}
