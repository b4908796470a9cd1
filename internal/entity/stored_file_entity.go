package entity

import (
	"time"

	"github.com/google/uuid"
)

type StoredFile struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	FileName  string
	ObjectKey string
	FileType  string
	FileSize  int64
	Metadata  map[string]interface{}
	CreatedAt time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
