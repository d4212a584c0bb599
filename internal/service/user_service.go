package service

import (
	"context"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
)

type userService struct {
	users repository.UserRepository
}

func newUserService(users repository.UserRepository) *userService {
	return &userService{users: users}
}

// FetchAllUsers returns every user
func (s *userService) FetchAllUsers(ctx context.Context) ([]models.User, error) {
	return s.users.GetAll(ctx)
}
