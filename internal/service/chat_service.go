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
	"github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/rag"
)

type IChatService interface {
	Chat(ctx context.Context, identity access.Identity, req *dto.ChatRequest) (*dto.ChatHistoryResponse, error)
	History(ctx context.Context, identity access.Identity, sessionId uuid.UUID) (*dto.ChatHistoryResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	guard            *access.Guard
	responder        *rag.Responder
	retrievalTimeout time.Duration
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	guard *access.Guard,
	responder *rag.Responder,
	retrievalTimeout time.Duration,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		guard:            guard,
		responder:        responder,
		retrievalTimeout: retrievalTimeout,
	}
}

func (s *chatService) Chat(ctx context.Context, identity access.Identity, req *dto.ChatRequest) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeSessionAccess(identity, session); err != nil {
		return nil, err
	}

	userMsg := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: req.SessionId,
		Role:          entity.ChatMessageRoleUser,
		Content:       req.Message,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &userMsg); err != nil {
		return nil, err
	}

	// Retrieval runs under its own deadline and outside any transaction;
	// a slow or failing upstream degrades to the fallback reply.
	retrievalCtx, cancel := context.WithTimeout(ctx, s.retrievalTimeout)
	reply := s.responder.Respond(retrievalCtx, req.Message)
	cancel()

	assistantMsg := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: req.SessionId,
		Role:          entity.ChatMessageRoleAssistant,
		Content:       reply,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &assistantMsg); err != nil {
		return nil, err
	}

	return s.transcript(ctx, uow, req.SessionId)
}

func (s *chatService) History(ctx context.Context, identity access.Identity, sessionId uuid.UUID) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeSessionAccess(identity, session); err != nil {
		return nil, err
	}

	return s.transcript(ctx, uow, sessionId)
}

func (s *chatService) transcript(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) (*dto.ChatHistoryResponse, error) {
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderByCreatedAtAsc{},
	)
	if err != nil {
		return nil, err
	}

	history := make([]dto.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		history = append(history, dto.ChatMessage{Role: msg.Role, Content: msg.Content})
	}

	return &dto.ChatHistoryResponse{SessionId: sessionId, Messages: history}, nil
}
