package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/proyecto-awi/wallet-dashboard/internal/api/middleware"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

// memCredentials is an in-memory ports.CredentialStore.
type memCredentials struct {
	mu      sync.Mutex
	token   string
	profile *domain.Profile
}

func (m *memCredentials) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memCredentials) Token(_ context.Context) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.token != ""
}

func (m *memCredentials) SetProfile(_ context.Context, p *domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = p
	return nil
}

func (m *memCredentials) Profile(_ context.Context) (*domain.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile, m.profile != nil
}

func (m *memCredentials) Set(_ context.Context, token string, p *domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.profile = token, p
	return nil
}

func (m *memCredentials) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.profile = "", nil
	return nil
}

func (m *memCredentials) RefreshProfile(_ context.Context, token string, p *domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" || m.token != token {
		return domain.ErrCredentialsChanged
	}
	m.profile = p
	return nil
}

func (m *memCredentials) ClearIf(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == token {
		m.token, m.profile = "", nil
	}
	return nil
}

func (m *memCredentials) HasToken(ctx context.Context) bool {
	_, ok := m.Token(ctx)
	return ok
}

// newContext builds an echo context carrying creds, as BrowserProfile would.
func newContext(t *testing.T, method, target, body string, creds *memCredentials) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if creds != nil {
		middleware.SetProfile(c, "profile-1", creds)
	}
	return c, rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
