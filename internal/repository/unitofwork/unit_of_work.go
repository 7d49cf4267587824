package unitofwork

import (
	"context"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	FaqEmbeddingRepository() contract.FaqEmbeddingRepository
}
