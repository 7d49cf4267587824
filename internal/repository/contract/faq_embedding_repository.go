package contract

import (
	"context"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/entity"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/specification"
)

// ScoredFaqEmbedding wraps a FAQ entry with its cosine similarity score.
type ScoredFaqEmbedding struct {
	Entry      *entity.FaqEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type FaqEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *entity.FaqEmbedding) error
	DeleteByEntryId(ctx context.Context, entryId string) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilarWithScore returns up to limit entries ordered by
	// similarity descending, keeping only those at or above threshold.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredFaqEmbedding, error)
}
