package store

import (
	"time"

	"github.com/google/uuid"
)

// Session is one issued refresh token. The token itself is never stored;
// only its SHA-256 hash keys the session.
type Session struct {
	TokenHash string
	UserId    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}
