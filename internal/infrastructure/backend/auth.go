package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

type userData struct {
	User *domain.Profile `json:"user"`
}

type authData struct {
	User      *domain.Profile `json:"user"`
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int64           `json:"expires_in"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Me returns the user the token belongs to, exactly as the backend sent it.
func (c *Client) Me(ctx context.Context, token string) (*domain.Profile, error) {
	var env envelope[userData]
	if err := c.do(ctx, http.MethodGet, c.authURL+"/me", token, nil, nil, &env); err != nil {
		return nil, err
	}
	data, err := unwrap(&env)
	if err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, fmt.Errorf("%w: me: missing user", domain.ErrMalformedResponse)
	}
	return data.User, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	var env envelope[authData]
	req := loginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, c.authURL+"/login", "", nil, req, &env); err != nil {
		return nil, err
	}
	return authResult(&env)
}

// Register creates an account and signs it in.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	var env envelope[authData]
	req := registerRequest{
		Name:                 reg.Name,
		Email:                reg.Email,
		Password:             reg.Password,
		PasswordConfirmation: reg.PasswordConfirmation,
	}
	if err := c.do(ctx, http.MethodPost, c.authURL+"/register", "", nil, req, &env); err != nil {
		return nil, err
	}
	return authResult(&env)
}

func authResult(env *envelope[authData]) (*domain.AuthResult, error) {
	data, err := unwrap(env)
	if err != nil {
		return nil, err
	}
	if data.Token == "" || data.User == nil {
		return nil, fmt.Errorf("%w: auth: missing token or user", domain.ErrMalformedResponse)
	}
	return &domain.AuthResult{
		Token:     data.Token,
		TokenType: data.TokenType,
		ExpiresIn: data.ExpiresIn,
		User:      *data.User,
	}, nil
}
