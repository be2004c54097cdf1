package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
)

// AuthService implements login, registration and logout on top of the
// backend and a browser profile's credential store.
type AuthService struct {
	backend ports.AuthBackend
	log     zerolog.Logger
}

func NewAuthService(backend ports.AuthBackend, log zerolog.Logger) *AuthService {
	return &AuthService{backend: backend, log: log}
}

// Login authenticates against the backend and replaces whatever session the
// browser profile held before.
func (s *AuthService) Login(ctx context.Context, creds ports.CredentialStore, email, password string) (*domain.Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.store(ctx, creds, res); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", res.User.ID).Msg("user logged in")
	return &res.User, nil
}

// Register creates the account and signs the browser profile into it.
func (s *AuthService) Register(ctx context.Context, creds ports.CredentialStore, reg domain.Registration) (*domain.Profile, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Name = strings.TrimSpace(reg.Name)
	if reg.Name == "" || reg.Email == "" || reg.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if reg.Password != reg.PasswordConfirmation {
		return nil, fmt.Errorf("%w: password confirmation does not match", domain.ErrInvalidCredentials)
	}

	res, err := s.backend.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	if err := s.store(ctx, creds, res); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", res.User.ID).Msg("user registered")
	return &res.User, nil
}

// Logout forgets the browser profile's credentials. Logging out twice is fine.
func (s *AuthService) Logout(ctx context.Context, creds ports.CredentialStore) error {
	if err := creds.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *AuthService) store(ctx context.Context, creds ports.CredentialStore, res *domain.AuthResult) error {
	if res == nil || res.Token == "" {
		return domain.ErrMalformedResponse
	}
	user := res.User
	if err := creds.Set(ctx, res.Token, &user); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}
	return nil
}
