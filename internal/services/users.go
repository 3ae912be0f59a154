package services

import (
	"context"
	"net/url"

	"booknest/internal/backend"
	"booknest/internal/domain"
)

type userService struct {
	client *backend.Client
}

// NewUserService returns the users resource service (admin listing).
func NewUserService(client *backend.Client) domain.UserService {
	return &userService{client: client}
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	if err := s.client.Get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := s.client.Get(ctx, "/users/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
