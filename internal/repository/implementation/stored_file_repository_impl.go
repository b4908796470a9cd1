package implementation

import (
	"context"
	"errors"

	"vaul-ai-be/internal/entity"
	"vaul-ai-be/internal/mapper"
	"vaul-ai-be/internal/model"
	"vaul-ai-be/internal/repository/contract"
	"vaul-ai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoredFileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StoredFileMapper
}

func NewStoredFileRepository(db *gorm.DB) contract.StoredFileRepository {
	return &StoredFileRepositoryImpl{
		db:     db,
		mapper: mapper.NewStoredFileMapper(),
	}
}

func (r *StoredFileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StoredFileRepositoryImpl) Create(ctx context.Context, file *entity.StoredFile) error {
	m := r.mapper.ToModel(file)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*file = *r.mapper.ToEntity(m)
	return nil
}

func (r *StoredFileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.StoredFile{}, id).Error
}

func (r *StoredFileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StoredFile, error) {
	var m model.StoredFile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StoredFileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StoredFile, error) {
	var models []*model.StoredFile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	files := make([]*entity.StoredFile, len(models))
	for i, m := range models {
		files[i] = r.mapper.ToEntity(m)
	}
	return files, nil
}

func (r *StoredFileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.StoredFile{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
