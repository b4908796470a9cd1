package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vaul-ai-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:refresh:"

type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, session *store.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.TokenHash, payload, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, tokenHash string) (*store.Session, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+tokenHash).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var session store.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, tokenHash string) error {
	return s.client.Del(ctx, sessionKeyPrefix+tokenHash).Err()
}
