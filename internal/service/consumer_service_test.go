package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"vaul-ai-be/internal/dto"
	"vaul-ai-be/internal/entity"
	"vaul-ai-be/internal/repository/specification"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.Id] = user
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.Id] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range f.users {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByID:
				ok = ok && u.Id == s.ID
			case specification.ByEmail:
				ok = ok && u.Email == s.Email
			}
		}
		if ok {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(f.users)), nil
}

func turnRecordedMessage(t *testing.T, userId uuid.UUID) *message.Message {
	t.Helper()
	raw, err := json.Marshal(dto.AssistantTurnRecordedMessage{
		UserId: userId,
		TurnId: uuid.New(),
	})
	require.NoError(t, err)
	return message.NewMessage(watermill.NewUUID(), raw)
}

func TestConsumerIncrementsDailyUsage(t *testing.T) {
	users := newFakeUserRepo()
	user := &entity.User{
		Id:                    uuid.New(),
		Email:                 "a@example.com",
		AiDailyUsage:          2,
		AiDailyUsageLastReset: time.Now(),
	}
	users.users[user.Id] = user

	cs := &consumerService{
		uowFactory: &fakeFactory{uow: &fakeUnitOfWork{users: users}},
		log:        noopLogger{},
	}

	cs.processMessage(context.Background(), turnRecordedMessage(t, user.Id))

	assert.Equal(t, 3, users.users[user.Id].AiDailyUsage)
}

func TestConsumerResetsCounterOnNewDay(t *testing.T) {
	users := newFakeUserRepo()
	user := &entity.User{
		Id:                    uuid.New(),
		Email:                 "a@example.com",
		AiDailyUsage:          40,
		AiDailyUsageLastReset: time.Now().Add(-48 * time.Hour),
	}
	users.users[user.Id] = user

	cs := &consumerService{
		uowFactory: &fakeFactory{uow: &fakeUnitOfWork{users: users}},
		log:        noopLogger{},
	}

	cs.processMessage(context.Background(), turnRecordedMessage(t, user.Id))

	updated := users.users[user.Id]
	assert.Equal(t, 1, updated.AiDailyUsage)
	assert.WithinDuration(t, time.Now(), updated.AiDailyUsageLastReset, time.Minute)
}

func TestConsumerIgnoresDeletedUsers(t *testing.T) {
	cs := &consumerService{
		uowFactory: &fakeFactory{uow: &fakeUnitOfWork{users: newFakeUserRepo()}},
		log:        noopLogger{},
	}

	// Must not panic or error; the message is simply acked away.
	cs.processMessage(context.Background(), turnRecordedMessage(t, uuid.New()))
}

func TestSameDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 50, 0, 0, time.UTC)
	assert.True(t, sameDay(now, now.Add(5*time.Minute)))
	assert.False(t, sameDay(now, now.Add(15*time.Minute)))
	assert.False(t, sameDay(now, now.Add(-24*time.Hour)))
}
