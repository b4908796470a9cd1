package dto

import (
	"time"

	"github.com/google/uuid"
)

// AskAssistantRequest carries the single user prompt. The wire shapes of the
// assistant endpoint are fixed by the public API contract and do not use the
// standard response envelope.
type AskAssistantRequest struct {
	Prompt string `json:"prompt"`
}

type AskAssistantResponse struct {
	Response string `json:"response"`
}

type AssistantErrorResponse struct {
	Error string `json:"error"`
}

type ConversationTurnResponse struct {
	Id        uuid.UUID `json:"id"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
