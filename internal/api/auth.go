package api

import (
	"context"

	"github.com/maison-edition/edition/internal/models"
)

// AuthService exchanges credentials with the identity endpoints. It
// satisfies the session store's AuthExchanger contract.
type AuthService struct {
	client *Client
}

// Login exchanges an email/secret pair for a session token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.client.post(ctx, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account. The response carries a usable session
// token, equivalent to a login.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.client.post(ctx, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
