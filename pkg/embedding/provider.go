package embedding

import "context"

// Provider generates a unit-length embedding vector for a piece of text.
type Provider interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}
