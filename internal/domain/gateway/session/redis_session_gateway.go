package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

const maxUpdateAttempts = 5

type redisSessionGatewayImpl struct {
	client    *redis.Client
	health    *redis.HealthChecker
	keyPrefix string
	ttl       time.Duration
}

var _ SessionGateway = (*redisSessionGatewayImpl)(nil)

// NewRedisSessionGateway stores each dashboard as JSON under keyPrefix+id. Every write resets the ttl.
// Expiry is left to Redis.
func NewRedisSessionGateway(client *redis.Client, keyPrefix string, ttl time.Duration) SessionGateway {
	return &redisSessionGatewayImpl{
		client:    client,
		health:    redis.NewHealthChecker(client, 2*time.Second),
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (gateway *redisSessionGatewayImpl) key(id string) string {
	return gateway.keyPrefix + id
}

func (gateway *redisSessionGatewayImpl) Create(ctx context.Context, dashboard *entity.Dashboard) error {
	return gateway.client.SetJSON(ctx, gateway.key(dashboard.ID), dashboard, gateway.ttl)
}

func (gateway *redisSessionGatewayImpl) Get(ctx context.Context, id string) (*entity.Dashboard, error) {
	var dashboard entity.Dashboard
	found, err := gateway.client.GetJSON(ctx, gateway.key(id), &dashboard)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	if !found {
		return nil, ErrSessionNotFound
	}
	return &dashboard, nil
}

func (gateway *redisSessionGatewayImpl) Update(ctx context.Context, id string, fn func(*entity.Dashboard) error) (*entity.Dashboard, error) {
	var result *entity.Dashboard

	err := gateway.client.UpdateJSON(ctx, gateway.key(id), gateway.ttl, maxUpdateAttempts,
		func(found bool, current []byte) (any, error) {
			if !found {
				return nil, ErrSessionNotFound
			}
			var dashboard entity.Dashboard
			if err := json.Unmarshal(current, &dashboard); err != nil {
				return nil, fmt.Errorf("decode session %s: %w", id, err)
			}
			if err := fn(&dashboard); err != nil {
				return nil, err
			}
			dashboard.UpdatedAt = time.Now()
			result = &dashboard
			return &dashboard, nil
		})
	if err != nil {
		return nil, err
	}
	return result.Clone(), nil
}

func (gateway *redisSessionGatewayImpl) Delete(ctx context.Context, id string) error {
	return gateway.client.Delete(ctx, gateway.key(id))
}

func (gateway *redisSessionGatewayImpl) Sweep(ctx context.Context) (int, error) {
	return 0, nil
}

func (gateway *redisSessionGatewayImpl) Health() model.ComponentHealthStatus {
	check := gateway.health.Check()

	status := model.StatusUp
	if check.Status != redis.StatusUp {
		status = model.StatusDown
	}
	details := check.Details
	details["store"] = "redis"
	return model.ComponentHealthStatus{Status: status, Details: details}
}
