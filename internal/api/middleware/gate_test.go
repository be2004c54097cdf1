package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/service"
	"github.com/proyecto-awi/wallet-dashboard/internal/infrastructure/backend"
	redisstore "github.com/proyecto-awi/wallet-dashboard/internal/infrastructure/db/redis"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

type auditRecorder struct {
	mu      sync.Mutex
	records []domain.GateRecord
}

func (a *auditRecorder) Record(rec domain.GateRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = append(a.records, rec)
}

func (a *auditRecorder) all() []domain.GateRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.GateRecord(nil), a.records...)
}

// gateFixture wires the gates to a real validator, a backend client talking
// to a fake /me, and a miniredis-backed credential store.
type gateFixture struct {
	e       *echo.Echo
	stores  *redisstore.CredentialStore
	audit   *auditRecorder
	meCalls int32
	reached int32
}

func newGateFixture(t *testing.T, me http.HandlerFunc) *gateFixture {
	t.Helper()
	f := &gateFixture{audit: &auditRecorder{}}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	f.stores = redisstore.NewCredentialStore(rdb, 0, zerolog.Nop())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" {
			t.Errorf("unexpected backend path %s", r.URL.Path)
			return
		}
		atomic.AddInt32(&f.meCalls, 1)
		me(w, r)
	}))
	t.Cleanup(srv.Close)

	client := backend.NewClient(backend.Config{APIURL: srv.URL, AuthURL: srv.URL + "/auth", Timeout: time.Second}, zerolog.Nop())
	validator := service.NewSessionValidator(client, time.Second, zerolog.Nop())
	opts := GateOptions{LoginPath: "/login", Timeout: 2 * time.Second, Audit: f.audit, Log: zerolog.Nop()}

	f.e = echo.New()
	f.e.Use(BrowserProfile(f.stores, testKey, false))
	ok := func(c echo.Context) error {
		atomic.AddInt32(&f.reached, 1)
		return c.String(http.StatusOK, "protected")
	}
	f.e.GET("/wallet", ok, RequireSession(validator, opts))
	f.e.GET("/admin", ok, RequireAdmin(validator, opts))
	return f
}

func (f *gateFixture) creds(id string) ports.CredentialStore {
	return f.stores.ForProfile(id)
}

func profileCookie(t *testing.T, id string) *http.Cookie {
	t.Helper()
	signed, err := signProfile(id, testKey, time.Now())
	if err != nil {
		t.Fatalf("sign profile: %v", err)
	}
	return &http.Cookie{Name: ProfileCookie, Value: signed}
}

func (f *gateFixture) get(t *testing.T, ctx context.Context, path, profileID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx)
	req.AddCookie(profileCookie(t, profileID))
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func userJSON(isAdmin bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if isAdmin {
			_, _ = io.WriteString(w, `{"data":{"user":{"id":7,"name":"Ana","email":"ana@example.com","is_admin":true}}}`)
			return
		}
		_, _ = io.WriteString(w, `{"data":{"user":{"id":7,"name":"Ana","email":"ana@example.com","is_admin":false}}}`)
	}
}

const profileA = "6f1c1b5e-0a77-4bb8-9d1e-3c0b2f1f4a10"

func TestRequireSession_NoTokenRedirectsWithoutCalls(t *testing.T) {
	f := newGateFixture(t, userJSON(false))

	rec := f.get(t, context.Background(), "/wallet", profileA)

	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/login" {
		t.Fatalf("expected 303 to /login, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
	if n := atomic.LoadInt32(&f.meCalls); n != 0 {
		t.Fatalf("expected zero /me calls, got %d", n)
	}
	if atomic.LoadInt32(&f.reached) != 0 {
		t.Fatalf("protected handler must not run")
	}
	if f.creds(profileA).HasToken(context.Background()) {
		t.Fatalf("store must stay empty")
	}
}

func TestRequireSession_ValidTokenGrants(t *testing.T) {
	f := newGateFixture(t, userJSON(true))
	ctx := context.Background()
	_ = f.creds(profileA).Set(ctx, "tok-1", &domain.Profile{ID: 7, Name: "Old"})

	rec := f.get(t, ctx, "/wallet", profileA)

	if rec.Code != http.StatusOK || rec.Body.String() != "protected" {
		t.Fatalf("expected protected content, got %d %q", rec.Code, rec.Body.String())
	}
	p, ok := f.creds(profileA).Profile(ctx)
	if !ok || p.Name != "Ana" || !p.IsAdmin {
		t.Fatalf("profile not refreshed from /me: %+v", p)
	}

	recs := f.audit.all()
	if len(recs) != 1 || recs[0].Decision != "granted" || recs[0].Gate != domain.GateSession || recs[0].UserID != 7 || recs[0].ProfileID != profileA {
		t.Fatalf("unexpected audit trail %+v", recs)
	}
}

func TestRequireSession_UnauthorizedClearsAndRedirects(t *testing.T) {
	f := newGateFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Unauthenticated."}`)
	})
	ctx := context.Background()
	_ = f.creds(profileA).Set(ctx, "tok-1", &domain.Profile{ID: 7})

	rec := f.get(t, ctx, "/wallet", profileA)

	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/login" {
		t.Fatalf("expected redirect to login, got %d", rec.Code)
	}
	if f.creds(profileA).HasToken(ctx) {
		t.Fatalf("token must be cleared")
	}
	if _, ok := f.creds(profileA).Profile(ctx); ok {
		t.Fatalf("profile must be cleared")
	}
}

func TestRequireAdmin_AdminGranted(t *testing.T) {
	f := newGateFixture(t, userJSON(true))
	ctx := context.Background()
	_ = f.creds(profileA).Set(ctx, "tok-1", &domain.Profile{ID: 7})

	rec := f.get(t, ctx, "/admin", profileA)

	if rec.Code != http.StatusOK || rec.Body.String() != "protected" {
		t.Fatalf("expected admin content, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRequireAdmin_NonAdminForbiddenKeepsToken(t *testing.T) {
	f := newGateFixture(t, userJSON(false))
	ctx := context.Background()
	// The cached flag claims admin; only the fresh /me answer counts.
	_ = f.creds(profileA).Set(ctx, "tok-1", &domain.Profile{ID: 7, IsAdmin: true})

	rec := f.get(t, ctx, "/admin", profileA)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), InsufficientPrivilegeMessage) {
		t.Fatalf("expected the insufficient privilege message, got %q", rec.Body.String())
	}
	if !f.creds(profileA).HasToken(ctx) {
		t.Fatalf("token must survive an authorization failure")
	}
	if atomic.LoadInt32(&f.reached) != 0 {
		t.Fatalf("admin handler must not run")
	}
	recs := f.audit.all()
	if len(recs) != 1 || recs[0].Reason != "not_admin" || recs[0].Gate != domain.GateAdmin {
		t.Fatalf("unexpected audit trail %+v", recs)
	}
}

func TestRequireAdmin_InvalidSessionRedirects(t *testing.T) {
	f := newGateFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	ctx := context.Background()
	_ = f.creds(profileA).Set(ctx, "tok-1", &domain.Profile{ID: 7, IsAdmin: true})

	rec := f.get(t, ctx, "/admin", profileA)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect for an invalid session, got %d", rec.Code)
	}
	if f.creds(profileA).HasToken(ctx) {
		t.Fatalf("identity failure must clear the store")
	}
}

func TestRequireAdmin_NoTokenRedirectsWithoutCalls(t *testing.T) {
	f := newGateFixture(t, userJSON(true))

	rec := f.get(t, context.Background(), "/admin", profileA)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if n := atomic.LoadInt32(&f.meCalls); n != 0 {
		t.Fatalf("expected zero /me calls, got %d", n)
	}
}

func TestRequireSession_ClientGoneBeforeDecision(t *testing.T) {
	started := make(chan struct{})
	var once sync.Once
	f := newGateFixture(t, func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { close(started) })
		<-r.Context().Done()
	})
	_ = f.creds(profileA).Set(context.Background(), "tok-1", &domain.Profile{ID: 7})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		time.Sleep(time.Millisecond)
		cancel()
	}()

	rec := f.get(t, ctx, "/wallet", profileA)

	if rec.Body.Len() != 0 || rec.Header().Get(echo.HeaderLocation) != "" {
		t.Fatalf("nothing may be written after the client left, got %q", rec.Body.String())
	}
	if atomic.LoadInt32(&f.reached) != 0 {
		t.Fatalf("protected handler must not run")
	}
	if len(f.audit.all()) != 0 {
		t.Fatalf("an abandoned gate must not be audited")
	}

	// Let the abandoned validation settle, then confirm it left the store alone.
	time.Sleep(50 * time.Millisecond)
	if !f.creds(profileA).HasToken(context.Background()) {
		t.Fatalf("an abandoned validation must not clear credentials")
	}
}

type hangingValidator struct {
	release chan struct{}
}

func (h hangingValidator) ValidateSession(context.Context, ports.CredentialStore) bool {
	<-h.release
	return true
}

func (h hangingValidator) ValidatePrivileged(context.Context, ports.CredentialStore) bool {
	<-h.release
	return true
}

func (h hangingValidator) AuthorizePrivileged(context.Context, ports.CredentialStore) (bool, bool) {
	<-h.release
	return true, true
}

func (h hangingValidator) CachedPrivilegeFlag(context.Context, ports.CredentialStore) bool {
	return true
}

func TestRequireSession_TimeoutDeniesAndClears(t *testing.T) {
	v := hangingValidator{release: make(chan struct{})}
	defer close(v.release)

	f := newGateFixture(t, userJSON(true))
	_ = f.creds(profileA).Set(context.Background(), "tok-1", &domain.Profile{ID: 7})

	opts := GateOptions{LoginPath: "/signin", Timeout: 20 * time.Millisecond, Log: zerolog.Nop()}
	f.e.GET("/slow", func(c echo.Context) error {
		t.Fatalf("must not be reached")
		return nil
	}, RequireSession(v, opts))

	rec := f.get(t, context.Background(), "/slow", profileA)

	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/signin" {
		t.Fatalf("expected redirect to /signin on timeout, got %d", rec.Code)
	}
	if f.creds(profileA).HasToken(context.Background()) {
		t.Fatalf("a timed out session must be treated as logged out")
	}
}

func TestRequireSession_TimeoutKeepsNewerLogin(t *testing.T) {
	v := hangingValidator{release: make(chan struct{})}
	defer close(v.release)

	f := newGateFixture(t, userJSON(true))
	ctx := context.Background()
	_ = f.creds(profileA).Set(ctx, "tok-1", &domain.Profile{ID: 7})

	opts := GateOptions{LoginPath: "/signin", Timeout: 50 * time.Millisecond, Log: zerolog.Nop()}
	f.e.GET("/slow", func(c echo.Context) error {
		t.Fatalf("must not be reached")
		return nil
	}, RequireSession(v, opts))

	go func() {
		time.Sleep(10 * time.Millisecond)
		_ = f.creds(profileA).Set(ctx, "tok-2", &domain.Profile{ID: 8})
	}()

	rec := f.get(t, ctx, "/slow", profileA)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect on timeout, got %d", rec.Code)
	}
	if token, ok := f.creds(profileA).Token(ctx); !ok || token != "tok-2" {
		t.Fatalf("a newer login must survive the timeout, token=%q", token)
	}
}

// fixedValidator answers without touching the store, as a validator whose
// clear failed would.
type fixedValidator struct {
	session, admin bool
}

func (v fixedValidator) ValidateSession(context.Context, ports.CredentialStore) bool {
	return v.session
}

func (v fixedValidator) ValidatePrivileged(context.Context, ports.CredentialStore) bool {
	return v.admin
}

func (v fixedValidator) AuthorizePrivileged(context.Context, ports.CredentialStore) (bool, bool) {
	return v.session, v.admin
}

func (v fixedValidator) CachedPrivilegeFlag(context.Context, ports.CredentialStore) bool {
	return v.admin
}

func TestRequireAdmin_InvalidSessionRedirectsWhenTokenRemains(t *testing.T) {
	f := newGateFixture(t, userJSON(true))
	ctx := context.Background()
	_ = f.creds(profileA).Set(ctx, "tok-1", &domain.Profile{ID: 7, IsAdmin: true})

	audit := &auditRecorder{}
	opts := GateOptions{LoginPath: "/signin", Timeout: time.Second, Audit: audit, Log: zerolog.Nop()}
	f.e.GET("/admin-fixed", func(c echo.Context) error {
		t.Fatalf("must not be reached")
		return nil
	}, RequireAdmin(fixedValidator{}, opts))

	rec := f.get(t, ctx, "/admin-fixed", profileA)

	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/signin" {
		t.Fatalf("expected redirect for an invalid session, got %d", rec.Code)
	}
	recs := audit.all()
	if len(recs) != 1 || recs[0].Reason != "invalid_session" {
		t.Fatalf("unexpected audit trail %+v", recs)
	}
}
