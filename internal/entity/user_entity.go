package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                    uuid.UUID
	Email                 string
	PasswordHash          string
	FullName              string
	AvatarURL             *string
	AiDailyUsage          int
	AiDailyUsageLastReset time.Time
	CreatedAt             time.Time
	UpdatedAt             *time.Time
	DeletedAt             *time.Time
	IsDeleted             bool
}
