package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"wealth-advisor-be/internal/config"
	"wealth-advisor-be/internal/entity"
	"wealth-advisor-be/internal/model"
	"wealth-advisor-be/pkg/database"
	"wealth-advisor-be/pkg/embedding"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm/clause"
)

// Seeds the knowledge_embeddings table from the same metadata file the flat
// index loads. Each document is embedded once; re-running overwrites rows in
// place so the seed stays idempotent.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	metaBytes, err := os.ReadFile(cfg.Knowledge.MetadataPath)
	if err != nil {
		log.Fatalf("Error: Failed to read %s: %v", cfg.Knowledge.MetadataPath, err)
	}

	var documents []entity.KnowledgeDocument
	if err := json.Unmarshal(metaBytes, &documents); err != nil {
		log.Fatalf("Error: Failed to parse knowledge metadata: %v", err)
	}

	var embedder embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embedder = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
	} else {
		embedder = embedding.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.EmbeddingModel)
	}

	ctx := context.Background()
	log.Printf("Seeding %d knowledge documents...", len(documents))

	for i, doc := range documents {
		vector, err := embedder.Embed(ctx, doc.Title+"\n\n"+doc.Content)
		if err != nil {
			log.Fatalf("Error: Failed to embed document %d (%s): %v", i, doc.Title, err)
		}

		row := model.KnowledgeEmbedding{
			DocumentId:     i,
			Title:          doc.Title,
			Content:        doc.Content,
			Url:            doc.URL,
			EmbeddingValue: pgvector.NewVector(vector),
		}

		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "document_id"}},
			UpdateAll: true,
		}).Create(&row).Error; err != nil {
			log.Fatalf("Error: Failed to upsert document %d: %v", i, err)
		}

		log.Printf("  [%d/%d] %s", i+1, len(documents), doc.Title)
	}

	log.Println("✅ Success: Knowledge base seeded.")
}
