// Synchronous FAQ ingestion: embeds every corpus entry and upserts its
// vector directly, without going through the HTTP ingest endpoint.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/config"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/data"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/entity"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/implementation"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/database"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/embedding"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	provider := embedding.NewOllamaProvider(
		cfg.Retrieval.EmbeddingBaseURL,
		cfg.Retrieval.EmbeddingModel,
		cfg.Retrieval.Timeout,
	)
	repo := implementation.NewFaqEmbeddingRepository(db)

	color.Cyan("Ingesting %d FAQ entries", len(data.FaqEntries))

	ctx := context.Background()
	failed := 0
	for _, entry := range data.FaqEntries {
		vector, err := provider.Generate(ctx, entry.Question+"\n"+entry.Answer)
		if err != nil {
			color.Red("[%s] embedding failed: %v", entry.Id, err)
			failed++
			continue
		}

		faq := entity.FaqEmbedding{
			Id:        uuid.New(),
			EntryId:   entry.Id,
			Category:  entry.Category,
			Question:  entry.Question,
			Answer:    entry.Answer,
			Embedding: vector,
			CreatedAt: time.Now(),
		}
		if err := repo.Upsert(ctx, &faq); err != nil {
			color.Red("[%s] upsert failed: %v", entry.Id, err)
			failed++
			continue
		}

		color.Green("[%s] %s", entry.Id, entry.Question)
	}

	if failed > 0 {
		color.Red("Done with %d failures", failed)
		os.Exit(1)
	}
	color.Cyan("Done")
}
