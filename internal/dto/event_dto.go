package dto

import "github.com/google/uuid"

// AssistantTurnRecordedMessage is the payload published after a completed
// assistant exchange; the consumer bumps the owner's daily usage counter.
type AssistantTurnRecordedMessage struct {
	UserId uuid.UUID `json:"user_id"`
	TurnId uuid.UUID `json:"turn_id"`
}
