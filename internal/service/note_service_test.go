package service

import (
	"context"
	"testing"
	"time"

	"vaul-ai-be/internal/dto"
	"vaul-ai-be/internal/entity"
	"vaul-ai-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoteRepo struct {
	notes   map[uuid.UUID]*entity.Note
	deleted []uuid.UUID
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[uuid.UUID]*entity.Note)}
}

func (f *fakeNoteRepo) Create(_ context.Context, note *entity.Note) error {
	f.notes[note.Id] = note
	return nil
}

func (f *fakeNoteRepo) Update(_ context.Context, note *entity.Note) error {
	f.notes[note.Id] = note
	return nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.notes, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeNoteRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for _, n := range f.notes {
		if matchNote(n, specs) {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNoteRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var res []*entity.Note
	for _, n := range f.notes {
		if matchNote(n, specs) {
			res = append(res, n)
		}
	}
	return res, nil
}

func (f *fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	res, _ := f.FindAll(ctx, specs...)
	return int64(len(res)), nil
}

func matchNote(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if n.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func newNoteFixture(repo *fakeNoteRepo) INoteService {
	return NewNoteService(&fakeFactory{uow: &fakeUnitOfWork{notes: repo}})
}

func TestNoteCreateAndShow(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := newNoteFixture(repo)
	userId := uuid.New()

	created, err := svc.Create(context.Background(), userId, &dto.CreateNoteRequest{
		Title:   "Groceries",
		Content: "milk, eggs",
	})
	require.NoError(t, err)

	shown, err := svc.Show(context.Background(), userId, created.Id)
	require.NoError(t, err)
	require.NotNil(t, shown)
	assert.Equal(t, "Groceries", shown.Title)
	assert.Equal(t, "milk, eggs", shown.Content)
}

func TestNoteShowScopedToOwner(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := newNoteFixture(repo)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateNoteRequest{Title: "private"})
	require.NoError(t, err)

	shown, err := svc.Show(context.Background(), uuid.New(), created.Id)
	require.NoError(t, err)
	assert.Nil(t, shown, "other users must not see the note")
}

func TestNoteUpdate(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := newNoteFixture(repo)
	userId := uuid.New()

	created, err := svc.Create(context.Background(), userId, &dto.CreateNoteRequest{Title: "draft"})
	require.NoError(t, err)

	res, err := svc.Update(context.Background(), userId, &dto.UpdateNoteRequest{
		Id:      created.Id,
		Title:   "final",
		Content: "done",
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	stored := repo.notes[created.Id]
	assert.Equal(t, "final", stored.Title)
	require.NotNil(t, stored.UpdatedAt)
	assert.WithinDuration(t, time.Now(), *stored.UpdatedAt, time.Minute)
}

func TestNoteUpdateMissingReturnsNil(t *testing.T) {
	svc := newNoteFixture(newFakeNoteRepo())

	res, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateNoteRequest{
		Id:    uuid.New(),
		Title: "ghost",
	})
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestNoteDeleteIsIdempotent(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := newNoteFixture(repo)
	userId := uuid.New()

	created, err := svc.Create(context.Background(), userId, &dto.CreateNoteRequest{Title: "temp"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), userId, created.Id))
	require.NoError(t, svc.Delete(context.Background(), userId, created.Id))
	assert.Len(t, repo.deleted, 1)
}
