package services

import (
	"context"
	"fmt"

	"github.com/handygo/tenant-client/internal/domain"
	"github.com/handygo/tenant-client/internal/normalize"
	"github.com/handygo/tenant-client/internal/sample"
	"github.com/handygo/tenant-client/internal/session"
)

type AuthService struct {
	api      API
	keychain *session.Keychain
	sample   *sample.Repository
}

func NewAuthService(api API, keychain *session.Keychain, repo *sample.Repository) *AuthService {
	return &AuthService{api: api, keychain: keychain, sample: repo}
}

// Login authenticates against the backend, or against the demo account when the
// backend is unreachable, and persists the resulting session.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	if err := validateInput(creds); err != nil {
		return nil, err
	}

	res := live(asObject(s.api.Post(ctx, "/auth/login", creds)))
	var result domain.AuthResult
	if res.err == nil {
		result = normalize.Auth(res.value)
	} else {
		if err := degraded(ctx, "auth.login", res.err); err != nil {
			return nil, err
		}
		demo, ok := s.sample.Login(creds)
		if !ok {
			return nil, ErrInvalidCredentials
		}
		result = demo
	}

	if err := s.keychain.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return &result, nil
}

// CurrentSession restores the stored user and tenant. It returns nil when nobody is logged in.
func (s *AuthService) CurrentSession(ctx context.Context) (*domain.Session, error) {
	user, err := s.keychain.User(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	if user == nil {
		return nil, nil
	}
	tenant, err := s.keychain.Tenant(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	return &domain.Session{User: *user, Tenant: tenant}, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.keychain.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
