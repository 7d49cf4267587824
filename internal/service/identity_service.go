package service

import (
	"context"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/access"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/logger"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/tokens"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/specification"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/unitofwork"
)

type IIdentityService interface {
	// Resolve maps a bearer token to an identity. Missing, expired, or
	// invalid tokens resolve to Anonymous, never an error.
	Resolve(ctx context.Context, token string) access.Identity
}

type identityService struct {
	tokenService *tokens.Service
	uowFactory   unitofwork.RepositoryFactory
	log          logger.ILogger
}

func NewIdentityService(
	tokenService *tokens.Service,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IIdentityService {
	return &identityService{
		tokenService: tokenService,
		uowFactory:   uowFactory,
		log:          log,
	}
}

func (s *identityService) Resolve(ctx context.Context, token string) access.Identity {
	if token == "" {
		return access.Anonymous()
	}

	claims, err := s.tokenService.Verify(token)
	if err != nil {
		return access.Anonymous()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: claims.Subject})
	if err != nil {
		s.log.Warn("identity", "user lookup failed", map[string]interface{}{
			"user_id": claims.Subject.String(),
			"error":   err.Error(),
		})
		return access.Anonymous()
	}
	if user == nil {
		// Token outlived the account.
		return access.Anonymous()
	}

	return access.Authenticated(user)
}
