package session

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

func newRedisGateway(t *testing.T) (SessionGateway, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	port, _ := strconv.Atoi(server.Port())

	client, err := redis.NewClient(redis.DefaultConfig().WithAddress(server.Host(), port))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessionGateway(client, "test:session:", 30*time.Minute), server
}

func TestRedisCreateGet(t *testing.T) {
	gateway, server := newRedisGateway(t)
	ctx := context.Background()

	dashboard := entity.NewDashboard("abc", entity.ModeLocation)
	dashboard.Search = "Galle"
	dashboard.Succeed(dashboard.Begin(), entity.CurrentConditions{Name: "Galle", Temperature: 27.5}, []entity.DailySummary{{Date: "Mon, 1/1"}})
	if err := gateway.Create(ctx, dashboard); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !server.Exists("test:session:abc") {
		t.Fatal("session key not written with prefix")
	}
	if ttl := server.TTL("test:session:abc"); ttl != 30*time.Minute {
		t.Errorf("TTL = %v, want 30m", ttl)
	}

	got, err := gateway.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Search != "Galle" || got.Current == nil || got.Current.Temperature != 27.5 || len(got.Daily) != 1 || got.Applied != 1 {
		t.Errorf("Get() = %+v", got)
	}

	if _, err = gateway.Get(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestRedisUpdate(t *testing.T) {
	gateway, _ := newRedisGateway(t)
	ctx := context.Background()
	_ = gateway.Create(ctx, entity.NewDashboard("abc", entity.ModeCoordinates))

	updated, err := gateway.Update(ctx, "abc", func(d *entity.Dashboard) error {
		d.SwitchMode(entity.ModeLocation)
		d.SetFields("Jaffna", "", "")
		return nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Mode != entity.ModeLocation || updated.Search != "Jaffna" {
		t.Errorf("updated = %+v", updated)
	}

	if _, err = gateway.Update(ctx, "missing", func(*entity.Dashboard) error { return nil }); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestRedisConcurrentBegin(t *testing.T) {
	gateway, _ := newRedisGateway(t)
	ctx := context.Background()
	_ = gateway.Create(ctx, entity.NewDashboard("abc", entity.ModeCoordinates))

	const workers = 4
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := gateway.Update(ctx, "abc", func(d *entity.Dashboard) error {
				d.Begin()
				return nil
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		}
	}
	got, _ := gateway.Get(ctx, "abc")
	if got.Sequence != uint64(succeeded) {
		t.Errorf("Sequence = %d, want %d (one per successful update)", got.Sequence, succeeded)
	}
}

func TestRedisDeleteAndHealth(t *testing.T) {
	gateway, server := newRedisGateway(t)
	ctx := context.Background()
	_ = gateway.Create(ctx, entity.NewDashboard("abc", entity.ModeCoordinates))

	if err := gateway.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if server.Exists("test:session:abc") {
		t.Error("key still present")
	}
	if removed, err := gateway.Sweep(ctx); removed != 0 || err != nil {
		t.Errorf("Sweep() = %d, %v", removed, err)
	}

	if health := gateway.Health(); health.Status != model.StatusUp || health.Details["store"] != "redis" {
		t.Errorf("Health() = %+v", health)
	}
	server.Close()
	if health := gateway.Health(); health.Status != model.StatusDown {
		t.Errorf("Health() after close = %+v", health)
	}
}
