package mapper

import (
	"encoding/json"
	"time"

	"vaul-ai-be/internal/entity"
	"vaul-ai-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StoredFileMapper struct{}

func NewStoredFileMapper() *StoredFileMapper {
	return &StoredFileMapper{}
}

func (m *StoredFileMapper) ToEntity(f *model.StoredFile) *entity.StoredFile {
	if f == nil {
		return nil
	}

	var deletedAt *time.Time
	if f.DeletedAt.Valid {
		t := f.DeletedAt.Time
		deletedAt = &t
	}

	var metadata map[string]interface{}
	if len(f.Metadata) > 0 {
		// Corrupt metadata is dropped rather than failing the read
		_ = json.Unmarshal(f.Metadata, &metadata)
	}

	return &entity.StoredFile{
		Id:        f.Id,
		UserId:    f.UserId,
		FileName:  f.FileName,
		ObjectKey: f.ObjectKey,
		FileType:  f.FileType,
		FileSize:  f.FileSize,
		Metadata:  metadata,
		CreatedAt: f.CreatedAt,
		DeletedAt: deletedAt,
		IsDeleted: f.DeletedAt.Valid,
	}
}

func (m *StoredFileMapper) ToModel(f *entity.StoredFile) *model.StoredFile {
	if f == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if f.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *f.DeletedAt, Valid: true}
	} else if f.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var metadata datatypes.JSON
	if f.Metadata != nil {
		if raw, err := json.Marshal(f.Metadata); err == nil {
			metadata = datatypes.JSON(raw)
		}
	}

	return &model.StoredFile{
		Id:        f.Id,
		UserId:    f.UserId,
		FileName:  f.FileName,
		ObjectKey: f.ObjectKey,
		FileType:  f.FileType,
		FileSize:  f.FileSize,
		Metadata:  metadata,
		CreatedAt: f.CreatedAt,
		DeletedAt: deletedAt,
	}
}
