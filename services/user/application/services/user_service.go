package services

import (
	"context"
	"fmt"

	"github.com/ghuser/thoron/pkg/logger"
	"github.com/ghuser/thoron/services/user/domain/models"
	"github.com/ghuser/thoron/services/user/domain/repositories"
)

// UserService manages dashboard accounts.
type UserService struct {
	repo repositories.UserRepository
	log  logger.Logger
}

// NewUserService returns a UserService.
func NewUserService(repo repositories.UserRepository, log logger.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ChangeRole assigns role to user id and returns the updated user.
func (s *UserService) ChangeRole(ctx context.Context, id int64, role string) (*models.User, error) {
	r, err := models.ParseRole(role)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateRole(ctx, id, r); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "user role changed", "user_id", id, "role", r)
	return s.repo.FindByID(ctx, id)
}
