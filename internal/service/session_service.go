package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/dto"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/entity"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/access"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/apperror"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/logger"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/specification"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/unitofwork"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/events"
	pktNats "github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/nats"
)

type ISessionService interface {
	Create(ctx context.Context, identity access.Identity, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetAll(ctx context.Context, identity access.Identity) ([]*dto.SessionResponse, error)
	GetByUser(ctx context.Context, identity access.Identity, userId uuid.UUID) ([]*dto.SessionResponse, error)
	Claim(ctx context.Context, identity access.Identity, req *dto.ClaimSessionsRequest) (*dto.ClaimSessionsResponse, error)
}

type sessionService struct {
	uowFactory     unitofwork.RepositoryFactory
	guard          *access.Guard
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	guard *access.Guard,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		uowFactory:     uowFactory,
		guard:          guard,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *sessionService) Create(ctx context.Context, identity access.Identity, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// A requested owner must be the caller (or the caller an admin), and
	// must exist. Order matters: existence is checked before the identity
	// rules would leak it.
	if req.UserId != nil {
		owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *req.UserId})
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, apperror.NotFound("user")
		}
		if _, err := s.guard.RequireOwnerOrAdmin(identity, *req.UserId); err != nil {
			return nil, err
		}
	}

	session := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    req.UserId,
		Title:     req.Title,
		CreatedAt: time.Now(),
	}

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	return toSessionResponse(&session), nil
}

func (s *sessionService) GetAll(ctx context.Context, identity access.Identity) ([]*dto.SessionResponse, error) {
	if _, err := s.guard.RequireAdmin(identity); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ChatSessionRepository().FindAll(ctx, specification.OrderByCreatedAtAsc{})
	if err != nil {
		return nil, err
	}

	return toSessionResponses(sessions), nil
}

func (s *sessionService) GetByUser(ctx context.Context, identity access.Identity, userId uuid.UUID) ([]*dto.SessionResponse, error) {
	if _, err := s.guard.RequireOwnerOrAdmin(identity, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderByCreatedAtAsc{},
	)
	if err != nil {
		return nil, err
	}

	return toSessionResponses(sessions), nil
}

// Claim links the given anonymous sessions to the authenticated caller.
// Idempotent: repeated calls report already_owned_by_user instead of
// claiming twice, and sessions owned by someone else are never reassigned.
func (s *sessionService) Claim(ctx context.Context, identity access.Identity, req *dto.ClaimSessionsRequest) (*dto.ClaimSessionsResponse, error) {
	user, err := s.guard.RequireAuthenticated(identity)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	res := &dto.ClaimSessionsResponse{Details: make([]dto.ClaimSessionDetail, 0, len(req.SessionIds))}
	seen := make(map[string]struct{}, len(req.SessionIds))

	for _, sid := range req.SessionIds {
		if sid == "" {
			continue
		}
		if _, dup := seen[sid]; dup {
			continue
		}
		seen[sid] = struct{}{}
		res.Processed++

		sessionId, parseErr := uuid.Parse(sid)
		if parseErr != nil {
			res.NotFound++
			res.Details = append(res.Details, dto.ClaimSessionDetail{SessionId: sid, Status: dto.ClaimStatusNotFound})
			continue
		}

		session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
		if err != nil {
			_ = uow.Rollback()
			return nil, err
		}

		switch {
		case session == nil:
			res.NotFound++
			res.Details = append(res.Details, dto.ClaimSessionDetail{SessionId: sid, Status: dto.ClaimStatusNotFound})

		case session.OwnedBy(user.Id):
			res.AlreadyOwnedByUser++
			res.Details = append(res.Details, dto.ClaimSessionDetail{SessionId: sid, Status: dto.ClaimStatusAlreadyOwnedByUser})

		case session.Anonymous():
			claimed, err := uow.ChatSessionRepository().ClaimIfAnonymous(ctx, sessionId, user.Id)
			if err != nil {
				_ = uow.Rollback()
				return nil, err
			}
			if claimed {
				res.Claimed++
				res.Details = append(res.Details, dto.ClaimSessionDetail{SessionId: sid, Status: dto.ClaimStatusClaimed})
			} else {
				// Lost a race with a concurrent claim.
				res.OwnedByAnotherUser++
				res.Details = append(res.Details, dto.ClaimSessionDetail{SessionId: sid, Status: dto.ClaimStatusOwnedByAnotherUser})
			}

		default:
			res.OwnedByAnotherUser++
			res.Details = append(res.Details, dto.ClaimSessionDetail{SessionId: sid, Status: dto.ClaimStatusOwnedByAnotherUser})
		}
	}

	if res.Claimed > 0 {
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		s.publishClaimed(ctx, user.Id, res.Claimed)
	} else {
		if err := uow.Rollback(); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (s *sessionService) publishClaimed(ctx context.Context, userId uuid.UUID, claimed int) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewSessionsClaimed(userId.String(), claimed)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("session", "event publish failed", map[string]interface{}{
			"event": evt.EventType(),
			"error": err.Error(),
		})
	}
}

func toSessionResponse(session *entity.ChatSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:        session.Id,
		UserId:    session.UserId,
		Title:     session.Title,
		CreatedAt: session.CreatedAt,
	}
}

func toSessionResponses(sessions []*entity.ChatSession) []*dto.SessionResponse {
	result := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, toSessionResponse(session))
	}
	return result
}
