package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/dto"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/entity"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/access"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/specification"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/unitofwork"
)

type IMessageService interface {
	Create(ctx context.Context, identity access.Identity, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	GetAll(ctx context.Context, identity access.Identity) ([]*dto.MessageResponse, error)
	GetBySession(ctx context.Context, identity access.Identity, sessionId uuid.UUID) ([]*dto.MessageResponse, error)
}

type messageService struct {
	uowFactory unitofwork.RepositoryFactory
	guard      *access.Guard
}

func NewMessageService(uowFactory unitofwork.RepositoryFactory, guard *access.Guard) IMessageService {
	return &messageService{
		uowFactory: uowFactory,
		guard:      guard,
	}
}

func (s *messageService) Create(ctx context.Context, identity access.Identity, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeSessionAccess(identity, session); err != nil {
		return nil, err
	}

	msg := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: req.SessionId,
		Role:          req.Role,
		Content:       req.Content,
		CreatedAt:     time.Now(),
	}

	if err := uow.ChatMessageRepository().Create(ctx, &msg); err != nil {
		return nil, err
	}

	return toMessageResponse(&msg), nil
}

func (s *messageService) GetAll(ctx context.Context, identity access.Identity) ([]*dto.MessageResponse, error) {
	if _, err := s.guard.RequireAdmin(identity); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx, specification.OrderByCreatedAtAsc{})
	if err != nil {
		return nil, err
	}

	return toMessageResponses(messages), nil
}

func (s *messageService) GetBySession(ctx context.Context, identity access.Identity, sessionId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeSessionAccess(identity, session); err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderByCreatedAtAsc{},
	)
	if err != nil {
		return nil, err
	}

	return toMessageResponses(messages), nil
}

func toMessageResponse(msg *entity.ChatMessage) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:        msg.Id,
		SessionId: msg.ChatSessionId,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func toMessageResponses(messages []*entity.ChatMessage) []*dto.MessageResponse {
	result := make([]*dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		result = append(result, toMessageResponse(msg))
	}
	return result
}
