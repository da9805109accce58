package dashboard

import (
	"context"

	"weather-dashboard/internal/domain/entity"
)

type UseCase interface {
	// Open creates a session and loads the default location into it.
	Open(ctx context.Context) (*entity.Dashboard, error)
	Get(ctx context.Context, id string) (*entity.Dashboard, error)
	SetFields(ctx context.Context, id string, search string, latitude string, longitude string) (*entity.Dashboard, error)
	ToggleMode(ctx context.Context, id string) (*entity.Dashboard, error)
	ToggleDetails(ctx context.Context, id string) (*entity.Dashboard, error)
	// Search queries the weather for the active mode's fields and applies the result
	// unless a newer search was started on the same session in the meantime.
	Search(ctx context.Context, id string) (*entity.Dashboard, error)
	Close(ctx context.Context, id string) error
}
