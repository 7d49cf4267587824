package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/entity"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/specification"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ClaimIfAnonymous assigns ownership of the session to userId only if it
	// currently has no owner. Returns true when the row was updated. The
	// condition re-check happens in the UPDATE itself, so concurrent claims
	// cannot reassign an already-claimed session.
	ClaimIfAnonymous(ctx context.Context, sessionId, userId uuid.UUID) (bool, error)
}
