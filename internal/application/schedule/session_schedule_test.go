package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	_ "weather-dashboard/configs"
	"weather-dashboard/internal/domain/gateway/session"
)

type countingSessionGateway struct {
	session.SessionGateway
	sweeps atomic.Int32
}

func (g *countingSessionGateway) Sweep(ctx context.Context) (int, error) {
	g.sweeps.Add(1)
	return 2, nil
}

func TestSweepExpiredSessions(t *testing.T) {
	gateway := &countingSessionGateway{}
	NewSessionScheduler(gateway, "@every 1m").SweepExpiredSessions()

	if got := gateway.sweeps.Load(); got != 1 {
		t.Errorf("sweeps = %d, want 1", got)
	}
}

func TestInitSessionScheduleTasks(t *testing.T) {
	gateway := &countingSessionGateway{}
	scheduler := NewSessionScheduler(gateway, "@every 1s")
	if err := scheduler.InitSessionScheduleTasks(); err != nil {
		t.Fatalf("InitSessionScheduleTasks() error = %v", err)
	}
	defer scheduler.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for gateway.sweeps.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	if gateway.sweeps.Load() == 0 {
		t.Error("sweep never ran")
	}
}

func TestInitSessionScheduleTasksInvalidCron(t *testing.T) {
	if err := NewSessionScheduler(&countingSessionGateway{}, "not a cron").InitSessionScheduleTasks(); err == nil {
		t.Error("expected error for invalid cron expression")
	}
}
