package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/proyecto-awi/wallet-dashboard/internal/api/metrics"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
)

const (
	defaultValidationTimeout = 5 * time.Second
	minValidationTimeout     = time.Second
)

// SessionValidator confirms stored credentials against the backend's /me
// endpoint. It is the only component that marks a session valid. Besides it,
// only logout and a timed-out gate clear a session.
type SessionValidator struct {
	backend ports.AuthBackend
	timeout time.Duration
	log     zerolog.Logger
}

// NewSessionValidator returns a validator whose backend calls are bounded by
// timeout. Zero selects the default; anything below one second is raised to
// one second.
func NewSessionValidator(backend ports.AuthBackend, timeout time.Duration, log zerolog.Logger) *SessionValidator {
	if timeout <= 0 {
		timeout = defaultValidationTimeout
	}
	if timeout < minValidationTimeout {
		timeout = minValidationTimeout
	}
	return &SessionValidator{backend: backend, timeout: timeout, log: log}
}

// ValidateSession reports whether creds hold a token the backend still
// accepts. Without a token it returns false and makes no call. On success the
// cached profile is replaced with the backend's answer; on any failure the
// credentials are cleared.
func (v *SessionValidator) ValidateSession(ctx context.Context, creds ports.CredentialStore) bool {
	_, ok := v.refresh(ctx, creds)
	return ok
}

// ValidatePrivileged reports whether creds belong to a live session of an
// administrator. The privilege flag comes from the profile fetched by this
// very call, never from an older cached copy. A valid session without the
// flag is denied but left intact.
func (v *SessionValidator) ValidatePrivileged(ctx context.Context, creds ports.CredentialStore) bool {
	_, admin := v.AuthorizePrivileged(ctx, creds)
	return admin
}

// AuthorizePrivileged runs the privileged check and also returns whether the
// session itself was confirmed. admin is never true without session.
func (v *SessionValidator) AuthorizePrivileged(ctx context.Context, creds ports.CredentialStore) (session, admin bool) {
	profile, ok := v.refresh(ctx, creds)
	if !ok {
		return false, false
	}
	if !profile.IsAdmin {
		v.log.Info().Int64("user_id", profile.ID).Msg("privileged access refused")
	}
	return true, profile.IsAdmin
}

// CachedPrivilegeFlag reads the privilege flag of the last cached profile
// without contacting the backend. The answer may be stale; use it only for
// navigation hints such as showing an admin menu entry, never to grant
// access.
func (v *SessionValidator) CachedPrivilegeFlag(ctx context.Context, creds ports.CredentialStore) bool {
	if creds == nil {
		return false
	}
	profile, ok := creds.Profile(ctx)
	return ok && profile.IsAdmin
}

func (v *SessionValidator) refresh(ctx context.Context, creds ports.CredentialStore) (*domain.Profile, bool) {
	if creds == nil {
		metrics.SessionValidationsTotal.WithLabelValues("no_token").Inc()
		return nil, false
	}

	token, ok := creds.Token(ctx)
	if !ok || token == "" {
		metrics.SessionValidationsTotal.WithLabelValues("no_token").Inc()
		return nil, false
	}

	callCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	start := time.Now()
	profile, err := v.backend.Me(callCtx, token)
	metrics.SessionValidationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		// The caller left; nobody will act on this answer, so the
		// credentials are not judged.
		if ctx.Err() != nil {
			metrics.SessionValidationsTotal.WithLabelValues("abandoned").Inc()
			return nil, false
		}
		v.reject(ctx, creds, token, outcomeOf(err), err)
		return nil, false
	}
	if profile == nil {
		v.reject(ctx, creds, token, "malformed", domain.ErrMalformedResponse)
		return nil, false
	}

	// The write is tied to the token that was checked. A login that replaced
	// it meanwhile wins, and this answer is dropped.
	if err := creds.RefreshProfile(ctx, token, profile); err != nil {
		if errors.Is(err, domain.ErrCredentialsChanged) {
			metrics.SessionValidationsTotal.WithLabelValues("superseded").Inc()
			v.log.Debug().Msg("credentials replaced during validation")
			return nil, false
		}
		v.reject(ctx, creds, token, "store_error", err)
		return nil, false
	}

	metrics.SessionValidationsTotal.WithLabelValues("valid").Inc()
	return profile, true
}

// reject clears the credentials only while token is still the stored one.
func (v *SessionValidator) reject(ctx context.Context, creds ports.CredentialStore, token, outcome string, cause error) {
	metrics.SessionValidationsTotal.WithLabelValues(outcome).Inc()
	v.log.Info().Err(cause).Str("outcome", outcome).Msg("session rejected, clearing credentials")

	if err := creds.ClearIf(ctx, token); err != nil {
		v.log.Error().Err(err).Msg("failed to clear credentials")
	}
}

func outcomeOf(err error) string {
	var upstream *domain.UpstreamError
	switch {
	case errors.As(err, &upstream):
		return "rejected"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	default:
		return "transport"
	}
}
