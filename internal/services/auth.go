package services

import (
	"context"

	"booknest/internal/backend"
	"booknest/internal/domain"
)

type authService struct {
	client *backend.Client
}

// NewAuthService returns the auth resource service. Logout is purely local
// (session teardown happens in the delivery layer); the backend holds no
// server-side session to destroy.
func NewAuthService(client *backend.Client) domain.AuthService {
	return &authService{client: client}
}

func (s *authService) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	var result domain.AuthResult
	if err := s.client.Post(ctx, "/auth/register", in, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *authService) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	var result domain.AuthResult
	if err := s.client.Post(ctx, "/auth/login", creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *authService) GetProfile(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := s.client.Get(ctx, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, in domain.UpdateProfileInput) (*domain.User, error) {
	var user domain.User
	if err := s.client.Patch(ctx, "/auth/profile", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
