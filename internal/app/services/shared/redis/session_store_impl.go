package redis

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionStore keeps every session in one Redis hash whose TTL slides on
// each write.
type sessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) contracts.SessionStore {
	return &sessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *sessionStore) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	value, err := s.client.HGet(ctx, sessionKey(sessionID), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, exceptions.ErrSessionStoreGet(err)
	}
	return value, true, nil
}

func (s *sessionStore) Set(ctx context.Context, sessionID, key, value string) error {
	redisKey := sessionKey(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, redisKey, key, value)
		if s.ttl > 0 {
			pipe.Expire(ctx, redisKey, s.ttl)
		}
		return nil
	})
	if err != nil {
		return exceptions.ErrSessionStoreSet(err)
	}
	return nil
}

func (s *sessionStore) Clear(ctx context.Context, sessionID string) error {
	err := s.client.Del(ctx, sessionKey(sessionID)).Err()
	if err != nil {
		return exceptions.ErrSessionStoreClear(err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return constvars.SessionRedisKeyPrefix + sessionID
}
