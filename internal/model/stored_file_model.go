package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StoredFile struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	FileName  string         `gorm:"type:varchar(255);not null"`
	ObjectKey string         `gorm:"type:text;not null"`
	FileType  string         `gorm:"type:varchar(255)"`
	FileSize  int64          `gorm:"not null;default:0"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (StoredFile) TableName() string {
	return "files"
}
