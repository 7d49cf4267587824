package mapper

import (
	"time"

	"github.com/pgvector/pgvector-go"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/entity"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/model"
)

type FaqEmbeddingMapper struct{}

func NewFaqEmbeddingMapper() *FaqEmbeddingMapper {
	return &FaqEmbeddingMapper{}
}

func (m *FaqEmbeddingMapper) ToEntity(f *model.FaqEmbedding) *entity.FaqEmbedding {
	if f == nil {
		return nil
	}

	var updatedAt *time.Time
	if !f.UpdatedAt.IsZero() {
		t := f.UpdatedAt
		updatedAt = &t
	}

	return &entity.FaqEmbedding{
		Id:        f.Id,
		EntryId:   f.EntryId,
		Category:  f.Category,
		Question:  f.Question,
		Answer:    f.Answer,
		Embedding: f.EmbeddingValue.Slice(),
		CreatedAt: f.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *FaqEmbeddingMapper) ToModel(f *entity.FaqEmbedding) *model.FaqEmbedding {
	if f == nil {
		return nil
	}

	var updatedAt time.Time
	if f.UpdatedAt != nil {
		updatedAt = *f.UpdatedAt
	}

	return &model.FaqEmbedding{
		Id:             f.Id,
		EntryId:        f.EntryId,
		Category:       f.Category,
		Question:       f.Question,
		Answer:         f.Answer,
		EmbeddingValue: pgvector.NewVector(f.Embedding),
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}
