package unitofwork

import (
	"context"

	"vaul-ai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ConversationTurnRepository() contract.ConversationTurnRepository
	NoteRepository() contract.NoteRepository
	StoredFileRepository() contract.StoredFileRepository
}
