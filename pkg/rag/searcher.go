package rag

import (
	"context"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/contract"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/embedding"
)

// Match is a normalized retrieval hit: id, similarity score, and the FAQ
// entry fields that grounded it.
type Match struct {
	ID       string
	Score    float64
	Metadata map[string]string
}

// Searcher retrieves FAQ entries relevant to a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string, topK int, threshold float64) ([]Match, error)
}

// PgvectorSearcher embeds the query and runs a cosine similarity search
// against the faq_embeddings table.
type PgvectorSearcher struct {
	provider embedding.Provider
	repo     contract.FaqEmbeddingRepository
}

func NewPgvectorSearcher(provider embedding.Provider, repo contract.FaqEmbeddingRepository) *PgvectorSearcher {
	return &PgvectorSearcher{
		provider: provider,
		repo:     repo,
	}
}

func (s *PgvectorSearcher) Search(ctx context.Context, query string, topK int, threshold float64) ([]Match, error) {
	queryVector, err := s.provider.Generate(ctx, query)
	if err != nil {
		return nil, err
	}

	scored, err := s.repo.SearchSimilarWithScore(ctx, queryVector, topK, threshold)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(scored))
	for _, hit := range scored {
		matches = append(matches, Match{
			ID:    hit.Entry.EntryId,
			Score: hit.Similarity,
			Metadata: map[string]string{
				"category": hit.Entry.Category,
				"question": hit.Entry.Question,
				"answer":   hit.Entry.Answer,
			},
		})
	}
	return matches, nil
}
