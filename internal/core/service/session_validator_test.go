package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

func newValidator(backend *stubAuthBackend) *SessionValidator {
	return NewSessionValidator(backend, time.Second, zerolog.Nop())
}

func TestValidateSession_NoTokenMakesNoCall(t *testing.T) {
	backend := &stubAuthBackend{meFn: func(context.Context, string) (*domain.Profile, error) {
		t.Fatalf("backend must not be called without a token")
		return nil, nil
	}}
	creds := newMemCredentials("", nil)

	if newValidator(backend).ValidateSession(context.Background(), creds) {
		t.Fatalf("expected false without a token")
	}
	if backend.calls() != 0 {
		t.Fatalf("expected zero backend calls, got %d", backend.calls())
	}
	if creds.HasToken(context.Background()) {
		t.Fatalf("store must stay empty")
	}
	if _, ok := creds.Profile(context.Background()); ok {
		t.Fatalf("store must stay empty")
	}
}

func TestValidateSession_NilStore(t *testing.T) {
	backend := &stubAuthBackend{}
	if newValidator(backend).ValidateSession(context.Background(), nil) {
		t.Fatalf("expected false for a nil store")
	}
}

func TestValidateSession_SuccessRefreshesProfile(t *testing.T) {
	fresh := &domain.Profile{ID: 7, Name: "Ana", Email: "ana@example.com", IsAdmin: true}
	backend := &stubAuthBackend{meFn: func(_ context.Context, token string) (*domain.Profile, error) {
		if token != "tok-1" {
			t.Fatalf("unexpected token %q", token)
		}
		return cloneProfile(fresh), nil
	}}
	creds := newMemCredentials("tok-1", &domain.Profile{ID: 7, Name: "Old Name", Email: "old@example.com"})

	if !newValidator(backend).ValidateSession(context.Background(), creds) {
		t.Fatalf("expected true")
	}

	cached, ok := creds.Profile(context.Background())
	if !ok {
		t.Fatalf("expected a cached profile")
	}
	if !reflect.DeepEqual(cached, fresh) {
		t.Fatalf("cached profile %+v does not match backend user %+v", cached, fresh)
	}
	if token, _ := creds.Token(context.Background()); token != "tok-1" {
		t.Fatalf("token must be kept, got %q", token)
	}
}

func TestValidateSession_FailuresClearStore(t *testing.T) {
	cases := []struct {
		name string
		err  error
		prof *domain.Profile
	}{
		{name: "unauthorized", err: &domain.UpstreamError{Status: 401, Message: "Unauthenticated."}},
		{name: "server error", err: &domain.UpstreamError{Status: 500}},
		{name: "transport", err: errors.New("dial tcp: connection refused")},
		{name: "malformed body", err: domain.ErrMalformedResponse},
		{name: "no user in body"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &stubAuthBackend{meFn: func(context.Context, string) (*domain.Profile, error) {
				return tc.prof, tc.err
			}}
			creds := newMemCredentials("tok-1", &domain.Profile{ID: 1, IsAdmin: true})

			if newValidator(backend).ValidateSession(context.Background(), creds) {
				t.Fatalf("expected false")
			}
			if creds.HasToken(context.Background()) {
				t.Fatalf("token must be cleared")
			}
			if _, ok := creds.Profile(context.Background()); ok {
				t.Fatalf("profile must be cleared")
			}
		})
	}
}

func TestValidateSession_ProfileWriteFailureClears(t *testing.T) {
	backend := &stubAuthBackend{meFn: func(context.Context, string) (*domain.Profile, error) {
		return &domain.Profile{ID: 1}, nil
	}}
	creds := newMemCredentials("tok-1", nil)
	creds.setErr = errors.New("redis down")

	if newValidator(backend).ValidateSession(context.Background(), creds) {
		t.Fatalf("expected false when the profile cannot be stored")
	}
	if creds.clears != 1 {
		t.Fatalf("expected one clear, got %d", creds.clears)
	}
}

func TestValidateSession_TimeoutIsFailure(t *testing.T) {
	backend := &stubAuthBackend{meFn: func(ctx context.Context, _ string) (*domain.Profile, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	creds := newMemCredentials("tok-1", nil)

	start := time.Now()
	if newValidator(backend).ValidateSession(context.Background(), creds) {
		t.Fatalf("expected false on timeout")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("validation hung for %s", elapsed)
	}
	if creds.HasToken(context.Background()) {
		t.Fatalf("a timed out validation must clear the store")
	}
}

func TestValidateSession_AbandonedCallerKeepsCredentials(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	backend := &stubAuthBackend{meFn: func(ctx context.Context, _ string) (*domain.Profile, error) {
		cancel()
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	creds := newMemCredentials("tok-1", &domain.Profile{ID: 1})

	if newValidator(backend).ValidateSession(ctx, creds) {
		t.Fatalf("expected false for an abandoned validation")
	}
	if !creds.HasToken(context.Background()) {
		t.Fatalf("an abandoned validation must not log the user out")
	}
}

func TestValidatePrivileged_AdminGranted(t *testing.T) {
	backend := &stubAuthBackend{meFn: func(context.Context, string) (*domain.Profile, error) {
		return &domain.Profile{ID: 1, IsAdmin: true}, nil
	}}
	creds := newMemCredentials("tok-1", nil)

	if !newValidator(backend).ValidatePrivileged(context.Background(), creds) {
		t.Fatalf("expected admin to be granted")
	}
	if backend.calls() != 1 {
		t.Fatalf("expected exactly one backend call, got %d", backend.calls())
	}
}

func TestValidatePrivileged_NonAdminKeepsSession(t *testing.T) {
	backend := &stubAuthBackend{meFn: func(context.Context, string) (*domain.Profile, error) {
		return &domain.Profile{ID: 1, IsAdmin: false}, nil
	}}
	creds := newMemCredentials("tok-1", nil)

	if newValidator(backend).ValidatePrivileged(context.Background(), creds) {
		t.Fatalf("expected non-admin to be denied")
	}
	if !creds.HasToken(context.Background()) {
		t.Fatalf("authorization failure must not clear credentials")
	}
	if creds.clears != 0 {
		t.Fatalf("expected no clear, got %d", creds.clears)
	}
}

func TestValidatePrivileged_IgnoresStaleCachedFlag(t *testing.T) {
	// Demoted server-side: the cache still says admin, the backend does not.
	backend := &stubAuthBackend{meFn: func(context.Context, string) (*domain.Profile, error) {
		return &domain.Profile{ID: 1, IsAdmin: false}, nil
	}}
	creds := newMemCredentials("tok-1", &domain.Profile{ID: 1, IsAdmin: true})
	v := newValidator(backend)

	if !v.CachedPrivilegeFlag(context.Background(), creds) {
		t.Fatalf("precondition: cached flag should read true")
	}
	if v.ValidatePrivileged(context.Background(), creds) {
		t.Fatalf("a stale cached flag must never grant privileged access")
	}
	if v.CachedPrivilegeFlag(context.Background(), creds) {
		t.Fatalf("cache should hold the refreshed flag afterwards")
	}
}

func TestValidatePrivileged_InvalidSession(t *testing.T) {
	backend := &stubAuthBackend{meFn: func(context.Context, string) (*domain.Profile, error) {
		return nil, &domain.UpstreamError{Status: 401}
	}}
	creds := newMemCredentials("tok-1", &domain.Profile{ID: 1, IsAdmin: true})

	if newValidator(backend).ValidatePrivileged(context.Background(), creds) {
		t.Fatalf("expected false")
	}
	if creds.HasToken(context.Background()) {
		t.Fatalf("identity failure must clear credentials")
	}
}

func TestValidatePrivileged_NoTokenNoCall(t *testing.T) {
	backend := &stubAuthBackend{}
	creds := newMemCredentials("", &domain.Profile{ID: 1, IsAdmin: true})

	if newValidator(backend).ValidatePrivileged(context.Background(), creds) {
		t.Fatalf("expected false without a token")
	}
	if backend.calls() != 0 {
		t.Fatalf("expected zero backend calls")
	}
}

func TestCachedPrivilegeFlag(t *testing.T) {
	v := newValidator(&stubAuthBackend{})

	if v.CachedPrivilegeFlag(context.Background(), nil) {
		t.Fatalf("nil store must read false")
	}
	if v.CachedPrivilegeFlag(context.Background(), newMemCredentials("tok", nil)) {
		t.Fatalf("missing profile must read false")
	}
	if !v.CachedPrivilegeFlag(context.Background(), newMemCredentials("tok", &domain.Profile{IsAdmin: true})) {
		t.Fatalf("expected cached admin flag")
	}
}

func TestNewSessionValidator_TimeoutFloor(t *testing.T) {
	if v := NewSessionValidator(&stubAuthBackend{}, 0, zerolog.Nop()); v.timeout != defaultValidationTimeout {
		t.Fatalf("expected default timeout, got %s", v.timeout)
	}
	if v := NewSessionValidator(&stubAuthBackend{}, time.Millisecond, zerolog.Nop()); v.timeout != minValidationTimeout {
		t.Fatalf("expected timeout floor, got %s", v.timeout)
	}
}

func TestAuthorizePrivileged(t *testing.T) {
	cases := []struct {
		name        string
		token       string
		prof        *domain.Profile
		err         error
		wantSession bool
		wantAdmin   bool
	}{
		{name: "admin", token: "tok-1", prof: &domain.Profile{ID: 1, IsAdmin: true}, wantSession: true, wantAdmin: true},
		{name: "not admin", token: "tok-1", prof: &domain.Profile{ID: 1}, wantSession: true},
		{name: "rejected", token: "tok-1", err: &domain.UpstreamError{Status: 401}},
		{name: "no token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &stubAuthBackend{meFn: func(context.Context, string) (*domain.Profile, error) {
				return tc.prof, tc.err
			}}
			creds := newMemCredentials(tc.token, nil)

			session, admin := newValidator(backend).AuthorizePrivileged(context.Background(), creds)
			if session != tc.wantSession || admin != tc.wantAdmin {
				t.Fatalf("got session=%v admin=%v, want session=%v admin=%v",
					session, admin, tc.wantSession, tc.wantAdmin)
			}
		})
	}
}

func TestValidateSession_ClearFailureStillRejects(t *testing.T) {
	backend := &stubAuthBackend{meFn: func(context.Context, string) (*domain.Profile, error) {
		return nil, &domain.UpstreamError{Status: 401}
	}}
	creds := newMemCredentials("tok-1", &domain.Profile{ID: 1})
	creds.clearErr = errors.New("redis down")

	session, admin := newValidator(backend).AuthorizePrivileged(context.Background(), creds)
	if session || admin {
		t.Fatalf("a rejected token must not validate even when clearing fails")
	}
}
