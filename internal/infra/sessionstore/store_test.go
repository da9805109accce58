package sessionstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	_ "weather-dashboard/configs"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/pkg/resource"
)

func withStore(t *testing.T, kind string) {
	t.Helper()
	previous := resource.GetString("app.dashboard.store")
	resource.Set("app.dashboard.store", kind)
	t.Cleanup(func() { resource.Set("app.dashboard.store", previous) })
}

func TestNewMemoryStore(t *testing.T) {
	withStore(t, StoreMemory)

	store, err := New(context.Background())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer store.Close()
	if !store.Sweep {
		t.Error("memory store must be swept")
	}
	if details := store.Gateway.Health().Details; details["store"] != "memory" {
		t.Errorf("health details = %v", details)
	}
}

func TestNewRedisStore(t *testing.T) {
	server := miniredis.RunT(t)
	withStore(t, StoreRedis)
	resource.Set("app.redis.host", server.Host())
	resource.Set("app.redis.port", server.Port())

	store, err := New(context.Background())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer store.Close()
	if store.Sweep {
		t.Error("redis expires sessions itself")
	}

	ctx := context.Background()
	if err = store.Gateway.Create(ctx, entity.NewDashboard("abc", entity.ModeCoordinates)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !server.Exists("dashboard:session:abc") {
		t.Errorf("keys = %v, want dashboard:session:abc", server.Keys())
	}
}

func TestNewUnknownStore(t *testing.T) {
	withStore(t, "etcd")

	if _, err := New(context.Background()); err == nil {
		t.Error("expected error for unknown store")
	}
}
