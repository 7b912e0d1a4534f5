package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"vilaw-chatbot-be/internal/config"
	"vilaw-chatbot-be/internal/entity"
	"vilaw-chatbot-be/internal/repository/unitofwork"
	"vilaw-chatbot-be/pkg/database"
	"vilaw-chatbot-be/pkg/embedding"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// seedDocument mirrors the corpus export format: one entry per passage, FAQ
// entries carry the canonical question as content plus a sample answer.
type seedDocument struct {
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`
	Answer  string `json:"answer,omitempty"`
	Source  string `json:"source,omitempty"`
}

// Builds the vector index from a JSON corpus file. Index construction lives
// here, outside the chat service, which only reads the result.
func main() {
	corpusPath := flag.String("corpus", "corpus.json", "path to the corpus JSON file")
	batchSize := flag.Int("batch", 50, "insert batch size")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	raw, err := os.ReadFile(*corpusPath)
	if err != nil {
		log.Fatalf("Unable to read corpus file: %v", err)
	}
	var seeds []seedDocument
	if err := json.Unmarshal(raw, &seeds); err != nil {
		log.Fatalf("Unable to parse corpus file: %v", err)
	}
	color.Cyan("Loaded %d documents from %s", len(seeds), *corpusPath)

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, "")
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.EmbeddingModel)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)

	existing, err := uowFactory.NewUnitOfWork(ctx).LawDocumentRepository().Count(ctx)
	if err != nil {
		log.Fatalf("Unable to count existing documents: %v", err)
	}
	if existing > 0 {
		color.Yellow("Index already holds %d documents; new documents will be appended", existing)
	}

	batch := make([]*entity.LawDocument, 0, *batchSize)
	inserted := 0
	for i, seed := range seeds {
		res, err := embeddingProvider.Generate(ctx, seed.Content, embedding.TaskTypeRetrievalDocument)
		if err != nil {
			log.Fatalf("Embedding failed for document %d: %v", i, err)
		}

		batch = append(batch, &entity.LawDocument{
			Id:        uuid.New(),
			Content:   seed.Content,
			DocType:   seed.Type,
			Answer:    seed.Answer,
			Source:    seed.Source,
			Embedding: res.Embedding.Values,
			CreatedAt: time.Now(),
		})

		if len(batch) >= *batchSize || i == len(seeds)-1 {
			uow := uowFactory.NewUnitOfWork(ctx)
			if err := uow.Begin(ctx); err != nil {
				log.Fatalf("Begin failed: %v", err)
			}
			if err := uow.LawDocumentRepository().CreateBulk(ctx, batch); err != nil {
				uow.Rollback()
				log.Fatalf("Insert failed: %v", err)
			}
			if err := uow.Commit(); err != nil {
				log.Fatalf("Commit failed: %v", err)
			}
			inserted += len(batch)
			color.Green("✔ %d/%d documents indexed", inserted, len(seeds))
			batch = batch[:0]
		}
	}

	color.Green("Done. %d documents indexed.", inserted)
}
