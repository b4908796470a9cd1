package contract

import (
	"context"

	"vaul-ai-be/internal/entity"
	"vaul-ai-be/internal/repository/specification"
)

// ConversationTurnRepository is append-only: turns are immutable once
// written, so there is no Update or Delete.
type ConversationTurnRepository interface {
	Create(ctx context.Context, turn *entity.ConversationTurn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationTurn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
