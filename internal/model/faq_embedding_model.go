package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type FaqEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EntryId        string          `gorm:"type:varchar(64);uniqueIndex;not null"`
	Category       string          `gorm:"type:varchar(100);not null"`
	Question       string          `gorm:"type:text;not null"`
	Answer         string          `gorm:"type:text;not null"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text dimensions
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (FaqEmbedding) TableName() string {
	return "faq_embeddings"
}
