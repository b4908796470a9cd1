package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationTurn is one prompt/response pair exchanged with the assistant.
// Turns are created once per successful completion and never mutated.
type ConversationTurn struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Prompt    string
	Response  string
	CreatedAt time.Time
}
