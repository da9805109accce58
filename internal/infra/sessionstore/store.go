package sessionstore

import (
	"context"
	"fmt"
	"time"

	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/redis"
	"weather-dashboard/pkg/resource"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Store is the configured session gateway plus whatever must be released on shutdown.
type Store struct {
	Gateway session.SessionGateway
	// Sweep reports whether expired sessions must be removed by the application.
	Sweep  bool
	closer func() error
}

func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// New opens the session store selected by app.dashboard.store.
func New(ctx context.Context) (*Store, error) {
	ttl := resource.GetDuration("app.dashboard.session-ttl")
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	switch kind := resource.GetStringOrDefault("app.dashboard.store", StoreMemory); kind {
	case StoreMemory:
		return &Store{Gateway: session.NewMemorySessionGateway(ttl), Sweep: true}, nil
	case StoreRedis:
		config := redis.DefaultConfig().
			WithAddress(resource.GetString("app.redis.host"), resource.GetInt("app.redis.port")).
			WithPassword(resource.GetString("app.redis.password")).
			WithDatabase(resource.GetInt("app.redis.database"))

		client, err := redis.NewClient(config)
		if err != nil {
			return nil, err
		}
		if err = client.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis session store at %s:%d: %w", config.Host, config.Port, err)
		}
		log.Infof("Dashboard sessions stored in Redis at %s:%d", config.Host, config.Port)

		gateway := session.NewRedisSessionGateway(client, resource.GetString("app.redis.key-prefix"), ttl)
		return &Store{Gateway: gateway, closer: client.Close}, nil
	default:
		return nil, fmt.Errorf("unknown dashboard session store %q", kind)
	}
}
