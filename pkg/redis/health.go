package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// HealthStatus represents the health status
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck is the result of probing the Redis connection
type HealthCheck struct {
	Status  HealthStatus
	Details map[string]string
}

// HealthChecker probes a Client and remembers the last failure
type HealthChecker struct {
	client    *Client
	timeout   time.Duration
	mu        sync.Mutex
	lastCheck time.Time
	lastError string
}

// NewHealthChecker creates a health checker whose probes time out after timeout
func NewHealthChecker(client *Client, timeout time.Duration) *HealthChecker {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthChecker{client: client, timeout: timeout}
}

// Check pings Redis and reports pool statistics
func (h *HealthChecker) Check() HealthCheck {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	status := StatusUp
	h.lastError = ""
	if err := h.client.Ping(ctx); err != nil {
		status = StatusDown
		h.lastError = fmt.Sprintf("ping failed: %v", err)
	}
	h.lastCheck = time.Now()

	config := h.client.GetConfig()
	stats := h.client.GetClient().PoolStats()
	return HealthCheck{
		Status: status,
		Details: map[string]string{
			"host":        config.Host,
			"port":        strconv.Itoa(config.Port),
			"database":    strconv.Itoa(config.Database),
			"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
			"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
			"last_check":  h.lastCheck.Format(time.RFC3339),
			"last_error":  h.lastError,
		},
	}
}
