package storeclient

import (
	"context"
	"net/http"

	"github.com/unicart/unicart/internal/transport"
)

// AuthStore keeps the signed-in user and installs the session token on the
// shared client so the other stores authenticate automatically.
type AuthStore struct {
	client *Client

	User *transport.UserView
}

func NewAuthStore(client *Client) *AuthStore {
	return &AuthStore{client: client}
}

func (s *AuthStore) Register(ctx context.Context, req transport.RegisterRequest) error {
	var resp transport.AuthResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return err
	}
	s.client.SetToken(resp.Token)
	s.User = &resp.User
	return nil
}

func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	req := transport.LoginRequest{Email: email, Password: password}
	var resp transport.AuthResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return err
	}
	s.client.SetToken(resp.Token)
	s.User = &resp.User
	return nil
}

// Logout is purely local: tokens are only revoked by expiry.
func (s *AuthStore) Logout() {
	s.client.ClearToken()
	s.User = nil
}

func (s *AuthStore) Authenticated() bool { return s.client.Token() != "" }
