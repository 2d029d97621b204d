package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"printing-support-be/internal/entity"
	"printing-support-be/internal/repository/specification"
	"printing-support-be/internal/repository/unitofwork"
	"printing-support-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
	assert.NotNil(t, uow.ChatSessionRepository())
	assert.NotNil(t, uow.ChatMessageRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	ctx := context.Background()

	t.Run("Check Repositories Reachable", func(t *testing.T) {
		_, err := uow.UserRepository().Count(ctx)
		assert.NoError(t, err)
		_, err = uow.ChatSessionRepository().Count(ctx)
		assert.NoError(t, err)
		_, err = uow.ChatMessageRepository().Count(ctx)
		assert.NoError(t, err)
	})

	t.Run("Check Session Message Lifecycle", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("integration-pw"), bcrypt.MinCost)
		require.NoError(t, err)

		user := &entity.User{
			Id:           uuid.New(),
			Email:        "test-integration-" + uuid.New().String() + "@example.com",
			Phone:        "555-099-0000",
			PasswordHash: string(hash),
			FirstName:    "Integration",
			LastName:     "Test",
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		session := &entity.ChatSession{
			Id:     uuid.New(),
			UserId: user.Id,
			Title:  "Integration session",
		}
		require.NoError(t, uow.ChatSessionRepository().Create(ctx, session))

		msg := &entity.ChatMessage{
			Id:        uuid.New(),
			SessionId: session.Id,
			UserId:    user.Id,
			Role:      "user",
			Content:   "integration ping",
		}
		require.NoError(t, uow.ChatMessageRepository().Create(ctx, msg))

		found, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: session.Id},
			specification.OwnedBy{UserID: user.Id},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Integration session", found.Title)

		messages, err := uow.ChatMessageRepository().FindAll(ctx,
			specification.BySessionID{SessionID: session.Id},
			specification.OwnedBy{UserID: user.Id},
		)
		require.NoError(t, err)
		assert.Len(t, messages, 1)

		// Cleanup
		_, err = uow.ChatMessageRepository().Delete(ctx, specification.BySessionID{SessionID: session.Id})
		assert.NoError(t, err)
		_, err = uow.ChatSessionRepository().Delete(ctx, specification.ByID{ID: session.Id})
		assert.NoError(t, err)
	})
}
