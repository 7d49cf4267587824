package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/dto"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/entity"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/access"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/apperror"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/logger"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/security"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/tokens"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/specification"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/unitofwork"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/events"
	pktNats "github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/nats"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, identity access.Identity) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	tokenService   *tokens.Service
	guard          *access.Guard
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	tokenService *tokens.Service,
	guard *access.Guard,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		tokenService:   tokenService,
		guard:          guard,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	digest, err := security.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Id:             uuid.New(),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordDigest: &digest,
		CreatedAt:      time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewUserRegistered(user.Id.String(), user.Email))

	return &dto.UserResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordDigest == nil || !security.Verify(req.Password, *user.PasswordDigest) {
		// Same response for unknown email and wrong password.
		return nil, &apperror.Error{
			Kind:    apperror.KindAuthenticationRequired,
			Message: "invalid email or password",
		}
	}

	token, err := s.tokenService.Issue(user.Id, user.Email)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewUserLogin(user.Id.String(), user.Email))

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.UserResponse{Id: user.Id, Email: user.Email},
	}, nil
}

func (s *authService) Me(ctx context.Context, identity access.Identity) (*dto.UserResponse, error) {
	user, err := s.guard.RequireAuthenticated(identity)
	if err != nil {
		return nil, err
	}
	return &dto.UserResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) publishEvent(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("auth", "event publish failed", map[string]interface{}{
			"event": evt.EventType(),
			"error": err.Error(),
		})
	}
}
