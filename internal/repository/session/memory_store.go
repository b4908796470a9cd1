package session

import (
	"context"
	"time"

	"vaul-ai-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// MemorySessionStore is the single-instance fallback used when Redis is not
// reachable at boot. Sessions do not survive a restart.
type MemorySessionStore struct {
	cache *cache.Cache
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		cache: cache.New(24*time.Hour, 10*time.Minute),
	}
}

func (s *MemorySessionStore) Save(_ context.Context, session *store.Session, ttl time.Duration) error {
	s.cache.Set(session.TokenHash, session, ttl)
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, tokenHash string) (*store.Session, error) {
	if x, found := s.cache.Get(tokenHash); found {
		return x.(*store.Session), nil
	}
	return nil, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, tokenHash string) error {
	s.cache.Delete(tokenHash)
	return nil
}
