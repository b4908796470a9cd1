package contract

import (
	"context"

	"vaul-ai-be/internal/entity"
	"vaul-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StoredFileRepository interface {
	Create(ctx context.Context, file *entity.StoredFile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StoredFile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StoredFile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
