package dashboard

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/failure"
	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/util/numberutils"
)

var errSuperseded = errors.New("search superseded")

type dashboardUseCase struct {
	sessionGateway  session.SessionGateway
	weatherUseCase  weather.UseCase
	defaultLocation string
}

func NewDashboardUseCase(sessionGateway session.SessionGateway, weatherUseCase weather.UseCase, defaultLocation string) UseCase {
	return &dashboardUseCase{
		sessionGateway:  sessionGateway,
		weatherUseCase:  weatherUseCase,
		defaultLocation: defaultLocation,
	}
}

func (uc *dashboardUseCase) Open(ctx context.Context) (*entity.Dashboard, error) {
	dashboard := entity.NewDashboard(uuid.NewString(), entity.ModeCoordinates)
	if err := uc.sessionGateway.Create(ctx, dashboard); err != nil {
		return nil, err
	}
	log.Debug(msg.GetMessage("dashboard.log.opened", dashboard.ID))

	// the first card shows the default place by name even though the form starts in coordinate mode
	var seq uint64
	_, err := uc.sessionGateway.Update(ctx, dashboard.ID, func(d *entity.Dashboard) error {
		seq = d.Begin()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.apply(ctx, dashboard.ID, seq, entity.ModeLocation, entity.ByName(uc.defaultLocation), nil)
}

func (uc *dashboardUseCase) Get(ctx context.Context, id string) (*entity.Dashboard, error) {
	return uc.sessionGateway.Get(ctx, id)
}

func (uc *dashboardUseCase) SetFields(ctx context.Context, id string, search string, latitude string, longitude string) (*entity.Dashboard, error) {
	return uc.sessionGateway.Update(ctx, id, func(d *entity.Dashboard) error {
		d.SetFields(search, latitude, longitude)
		return nil
	})
}

func (uc *dashboardUseCase) ToggleMode(ctx context.Context, id string) (*entity.Dashboard, error) {
	return uc.sessionGateway.Update(ctx, id, func(d *entity.Dashboard) error {
		d.SwitchMode(d.Mode.Toggle())
		return nil
	})
}

func (uc *dashboardUseCase) ToggleDetails(ctx context.Context, id string) (*entity.Dashboard, error) {
	return uc.sessionGateway.Update(ctx, id, func(d *entity.Dashboard) error {
		d.ShowMore = !d.ShowMore
		return nil
	})
}

func (uc *dashboardUseCase) Search(ctx context.Context, id string) (*entity.Dashboard, error) {
	var (
		seq      uint64
		mode     entity.LocationMode
		query    entity.LocationQuery
		queryErr error
	)
	_, err := uc.sessionGateway.Update(ctx, id, func(d *entity.Dashboard) error {
		seq = d.Begin()
		mode = d.Mode
		query, queryErr = queryOf(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.apply(ctx, id, seq, mode, query, queryErr)
}

func (uc *dashboardUseCase) Close(ctx context.Context, id string) error {
	return uc.sessionGateway.Delete(ctx, id)
}

// apply runs the lookup outside of any session lock and stores its outcome if seq is still the latest search.
func (uc *dashboardUseCase) apply(ctx context.Context, id string, seq uint64, mode entity.LocationMode,
	query entity.LocationQuery, queryErr error) (*entity.Dashboard, error) {
	var report *model.WeatherReport
	err := queryErr
	if err == nil {
		report, err = uc.weatherUseCase.Find(ctx, query)
	}

	dashboard, updateErr := uc.sessionGateway.Update(ctx, id, func(d *entity.Dashboard) error {
		if !d.IsLatest(seq) {
			return errSuperseded
		}
		if err != nil {
			d.Fail(seq, weather.FailureMessage(mode))
			return nil
		}
		d.Succeed(seq, report.Current, report.Daily)
		return nil
	})
	if errors.Is(updateErr, errSuperseded) {
		log.Info(msg.GetMessage("dashboard.log.superseded", seq, id))
		return uc.sessionGateway.Get(ctx, id)
	}
	if updateErr != nil {
		return nil, updateErr
	}
	if err != nil {
		log.Debug("dashboard search failed", zap.String("session", id), zap.String("kind", string(failure.KindOf(err))))
	}
	return dashboard, nil
}

func queryOf(d *entity.Dashboard) (entity.LocationQuery, error) {
	if d.Mode == entity.ModeLocation {
		return entity.ByName(d.Search), nil
	}
	lat, err := numberutils.ToFloat64WithError(d.Latitude)
	if err != nil {
		return entity.LocationQuery{}, &failure.Error{Kind: failure.Validation, Message: "invalid latitude", Err: err}
	}
	lon, err := numberutils.ToFloat64WithError(d.Longitude)
	if err != nil {
		return entity.LocationQuery{}, &failure.Error{Kind: failure.Validation, Message: "invalid longitude", Err: err}
	}
	return entity.ByCoordinates(lat, lon), nil
}
