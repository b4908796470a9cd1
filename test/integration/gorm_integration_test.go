package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"vaul-ai-be/internal/entity"
	"vaul-ai-be/internal/repository/specification"
	"vaul-ai-be/internal/repository/unitofwork"
	"vaul-ai-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ConversationTurnRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Conversation History Round Trip", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:       uuid.New(),
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		turn := &entity.ConversationTurn{
			Id:        uuid.New(),
			UserId:    user.Id,
			Prompt:    "integration ping",
			Response:  "integration pong",
			CreatedAt: time.Now(),
		}
		err = uow.ConversationTurnRepository().Create(ctx, turn)
		assert.NoError(t, err)

		turns, err := uow.ConversationTurnRepository().FindAll(ctx,
			specification.OwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)
		if assert.Len(t, turns, 1) {
			assert.Equal(t, "integration ping", turns[0].Prompt)
		}

		// Cleanup
		err = uow.UserRepository().Delete(ctx, user.Id)
		assert.NoError(t, err)
	})
}
