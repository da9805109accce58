package schedule

import (
	"context"

	"github.com/robfig/cron/v3"

	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

type SessionScheduler struct {
	cron           *cron.Cron
	cronExpression string
	sessionGateway session.SessionGateway
}

func NewSessionScheduler(sessionGateway session.SessionGateway, cronExpression string) *SessionScheduler {
	return &SessionScheduler{cron: cron.New(), cronExpression: cronExpression, sessionGateway: sessionGateway}
}

// InitSessionScheduleTasks schedules the sweep of expired dashboard sessions
func (scheduler *SessionScheduler) InitSessionScheduleTasks() error {
	if _, err := scheduler.cron.AddFunc(scheduler.cronExpression, scheduler.SweepExpiredSessions); err != nil {
		return err
	}

	scheduler.cron.Start()
	return nil
}

// Stop waits for a running sweep to finish
func (scheduler *SessionScheduler) Stop() {
	<-scheduler.cron.Stop().Done()
}

func (scheduler *SessionScheduler) SweepExpiredSessions() {
	log.Debug(msg.GetMessage("dashboard.log.sweep-start"))

	removed, err := scheduler.sessionGateway.Sweep(context.Background())
	if err != nil {
		log.Errorf("dashboard session sweep failed: %v", err)
		return
	}

	if removed > 0 {
		log.Info(msg.GetMessage("dashboard.log.expired", removed))
	}
}
