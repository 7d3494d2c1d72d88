package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "session:"

// RedisStore keeps each session in one Redis hash whose fields are the page
// keys. The hash expires ttl after the last write.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return sessionPrefix + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID, key string, dest any) (bool, error) {
	if sessionID == "" {
		return false, ErrNoSession
	}
	data, err := s.client.HGet(ctx, sessionKey(sessionID), key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read session key %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to decode session key %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID, key string, value any) error {
	if sessionID == "" {
		return ErrNoSession
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode session key %s: %w", key, err)
	}
	hash := sessionKey(sessionID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, hash, key, b)
		pipe.Expire(ctx, hash, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store session key %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID, key string) error {
	if sessionID == "" {
		return ErrNoSession
	}
	if err := s.client.HDel(ctx, sessionKey(sessionID), key).Err(); err != nil {
		return fmt.Errorf("failed to delete session key %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrNoSession
	}
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
