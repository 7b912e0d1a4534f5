package main

import (
	"log"

	"vilaw-chatbot-be/internal/config"
	"vilaw-chatbot-be/internal/model"
	"vilaw-chatbot-be/pkg/database"

	"github.com/fatih/color"
)

// Creates the pgvector extension and the service schema. Run once before
// seeding the corpus; the chat service itself never migrates.
func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("Failed to create vector extension: %v", err)
	}
	color.Green("✔ vector extension ready")

	if err := db.AutoMigrate(&model.LawDocument{}, &model.SystemLog{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	color.Green("✔ schema migrated (law_documents, system_logs)")
}
