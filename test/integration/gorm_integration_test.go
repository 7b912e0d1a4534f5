package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"vilaw-chatbot-be/internal/entity"
	"vilaw-chatbot-be/internal/repository/unitofwork"
	"vilaw-chatbot-be/pkg/database"

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

	assert.NotNil(t, uow.LawDocumentRepository())
	assert.NotNil(t, uow.SystemLogRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Law Document Repository", func(t *testing.T) {
		count, err := uow.LawDocumentRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Law document count: %d", count)
	})

	t.Run("Check System Log Repository", func(t *testing.T) {
		count, err := uow.SystemLogRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("System log count: %d", count)
	})

	t.Run("Vector Similarity Search", func(t *testing.T) {
		ctx := context.Background()
		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		// A unit vector so cosine similarity against itself is exactly 1
		embedding := make([]float32, 768)
		embedding[0] = 1

		doc := &entity.LawDocument{
			Id:        uuid.New(),
			Content:   "integration-test-" + uuid.New().String(),
			DocType:   "Hỏi-đáp",
			Answer:    "integration answer",
			Embedding: embedding,
			CreatedAt: time.Now(),
		}
		err = uow.LawDocumentRepository().CreateBulk(ctx, []*entity.LawDocument{doc})
		assert.NoError(t, err)

		scored, err := uow.LawDocumentRepository().SearchSimilar(ctx, embedding, 5)
		assert.NoError(t, err)
		if assert.NotEmpty(t, scored) {
			assert.Equal(t, doc.Content, scored[0].Document.Content)
			assert.InDelta(t, 1.0, scored[0].Similarity, 1e-6)
		}
		t.Logf("Similarity search returned %d documents", len(scored))
	})
}
