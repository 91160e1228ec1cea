package session

import (
	"careportal-service/internal/app/config"
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/services/shared/redis"
	"careportal-service/internal/pkg/constvars"
	"fmt"
	"time"

	redisClient "github.com/redis/go-redis/v9"
)

// NewSessionStore builds the store selected by SESSION_BACKEND. client may be
// nil when the memory backend is configured.
func NewSessionStore(internalConfig *config.InternalConfig, client *redisClient.Client) (contracts.SessionStore, error) {
	ttl := time.Duration(internalConfig.Session.TTLInHours) * time.Hour
	switch internalConfig.Session.Backend {
	case constvars.SessionBackendRedis:
		if client == nil {
			return nil, fmt.Errorf(constvars.ErrDevRedisClientRequired, internalConfig.Session.Backend)
		}
		return redis.NewRedisSessionStore(client, ttl), nil
	case constvars.SessionBackendMemory:
		return NewMemorySessionStoreWithTTL(ttl), nil
	}
	return nil, fmt.Errorf(constvars.ErrDevUnknownSessionBackend, internalConfig.Session.Backend)
}
