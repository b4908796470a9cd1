package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationTurn rows are immutable: no updated_at, no soft delete.
type ConversationTurn struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Prompt    string    `gorm:"type:text;not null"`
	Response  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (ConversationTurn) TableName() string {
	return "ai_history"
}
