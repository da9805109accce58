package http

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerOptions configures the circuit breaker guarding a Client.
// Only transport failures and 5xx responses count as breaker failures. Calls cancelled by the caller do not.
type BreakerOptions struct {
	Name         string
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
	Logger       *zap.Logger
}

func newCircuitBreaker(opts BreakerOptions) *gobreaker.CircuitBreaker {
	if opts.MaxRequests == 0 {
		opts.MaxRequests = 1
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MinRequests == 0 {
		opts.MinRequests = 3
	}
	if opts.FailureRatio <= 0 {
		opts.FailureRatio = 0.6
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        opts.Name,
		MaxRequests: opts.MaxRequests,
		Interval:    opts.Interval,
		Timeout:     opts.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= opts.MinRequests && failureRatio >= opts.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("client", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

// countsAsBreakerFailure reports whether an outcome should trip the breaker.
// A caller that gave up says nothing about the health of the server.
func countsAsBreakerFailure(status int, err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	return status == 0 || status >= 500
}
