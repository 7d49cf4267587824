package implementation

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/entity"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/mapper"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/model"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/contract"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/specification"
)

type FaqEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FaqEmbeddingMapper
}

func NewFaqEmbeddingRepository(db *gorm.DB) contract.FaqEmbeddingRepository {
	return &FaqEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewFaqEmbeddingMapper(),
	}
}

func (r *FaqEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert replaces the indexed entry keyed by entry_id, so re-ingesting the
// corpus never duplicates rows.
func (r *FaqEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.FaqEmbedding) error {
	m := r.mapper.ToModel(embedding)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"category", "question", "answer", "embedding_value", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *FaqEmbeddingRepositoryImpl) DeleteByEntryId(ctx context.Context, entryId string) error {
	return r.db.WithContext(ctx).Where("entry_id = ?", entryId).Delete(&model.FaqEmbedding{}).Error
}

func (r *FaqEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.FaqEmbedding{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SearchSimilarWithScore computes cosine similarity as 1 - (embedding <=> query)
// and returns entries at or above threshold, best first.
func (r *FaqEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredFaqEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.FaqEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("faq_embeddings").
		Select("faq_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredFaqEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredFaqEmbedding{
			Entry:      r.mapper.ToEntity(&res.FaqEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
