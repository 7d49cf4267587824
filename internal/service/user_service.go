package service

import (
	"context"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/dto"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/access"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/unitofwork"
)

type IUserService interface {
	GetAll(ctx context.Context, identity access.Identity) ([]*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	guard      *access.Guard
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, guard *access.Guard) IUserService {
	return &userService{
		uowFactory: uowFactory,
		guard:      guard,
	}
}

func (s *userService) GetAll(ctx context.Context, identity access.Identity) ([]*dto.UserResponse, error) {
	if _, err := s.guard.RequireAdmin(identity); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, &dto.UserResponse{Id: user.Id, Email: user.Email})
	}
	return result, nil
}
