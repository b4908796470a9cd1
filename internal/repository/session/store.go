package session

import (
	"context"
	"time"

	"vaul-ai-be/pkg/store"
)

// SessionStore holds refresh-token sessions until they expire or are revoked
// on logout. Losing the store only forces re-login, so the Redis-backed
// implementation degrades to the in-memory one when Redis is unreachable.
type SessionStore interface {
	Save(ctx context.Context, session *store.Session, ttl time.Duration) error
	Get(ctx context.Context, tokenHash string) (*store.Session, error)
	Delete(ctx context.Context, tokenHash string) error
}
