package entity

import (
	"time"

	"github.com/google/uuid"
)

// FaqEmbedding is one indexed FAQ entry together with its embedding vector.
// EntryId is the stable corpus identifier (e.g. "acc-001"), so re-ingesting
// replaces entries instead of duplicating them.
type FaqEmbedding struct {
	Id        uuid.UUID
	EntryId   string
	Category  string
	Question  string
	Answer    string
	Embedding []float32
	CreatedAt time.Time
	UpdatedAt *time.Time
}
