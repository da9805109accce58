package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type memoryEntry struct {
	dashboard *entity.Dashboard
	expiresAt time.Time
}

type memorySessionGatewayImpl struct {
	ttl      time.Duration
	now      func() time.Time
	mutex    sync.Mutex
	sessions map[string]memoryEntry
}

var _ SessionGateway = (*memorySessionGatewayImpl)(nil)

// NewMemorySessionGateway keeps sessions in process memory. Each access extends a session by ttl.
func NewMemorySessionGateway(ttl time.Duration) SessionGateway {
	return newMemorySessionGateway(ttl, time.Now)
}

func newMemorySessionGateway(ttl time.Duration, now func() time.Time) *memorySessionGatewayImpl {
	return &memorySessionGatewayImpl{
		ttl:      ttl,
		now:      now,
		sessions: make(map[string]memoryEntry),
	}
}

func (gateway *memorySessionGatewayImpl) Create(ctx context.Context, dashboard *entity.Dashboard) error {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	gateway.sessions[dashboard.ID] = memoryEntry{dashboard: dashboard.Clone(), expiresAt: gateway.now().Add(gateway.ttl)}
	return nil
}

func (gateway *memorySessionGatewayImpl) Get(ctx context.Context, id string) (*entity.Dashboard, error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	entry, err := gateway.touch(id)
	if err != nil {
		return nil, err
	}
	return entry.dashboard.Clone(), nil
}

func (gateway *memorySessionGatewayImpl) Update(ctx context.Context, id string, fn func(*entity.Dashboard) error) (*entity.Dashboard, error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	entry, err := gateway.touch(id)
	if err != nil {
		return nil, err
	}

	updated := entry.dashboard.Clone()
	if err = fn(updated); err != nil {
		return nil, err
	}
	updated.UpdatedAt = gateway.now()
	entry.dashboard = updated
	gateway.sessions[id] = entry
	return updated.Clone(), nil
}

func (gateway *memorySessionGatewayImpl) Delete(ctx context.Context, id string) error {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	delete(gateway.sessions, id)
	return nil
}

func (gateway *memorySessionGatewayImpl) Sweep(ctx context.Context) (int, error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	now := gateway.now()
	removed := 0
	for id, entry := range gateway.sessions {
		if now.After(entry.expiresAt) {
			delete(gateway.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (gateway *memorySessionGatewayImpl) Health() model.ComponentHealthStatus {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"store":    "memory",
			"sessions": strconv.Itoa(len(gateway.sessions)),
			"ttl":      gateway.ttl.String(),
		},
	}
}

// touch must be called with the mutex held.
func (gateway *memorySessionGatewayImpl) touch(id string) (memoryEntry, error) {
	entry, ok := gateway.sessions[id]
	now := gateway.now()
	if !ok || now.After(entry.expiresAt) {
		delete(gateway.sessions, id)
		return memoryEntry{}, ErrSessionNotFound
	}
	entry.expiresAt = now.Add(gateway.ttl)
	gateway.sessions[id] = entry
	return entry, nil
}
