package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/proyecto-awi/wallet-dashboard/internal/api/metrics"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/gate"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
)

const defaultLoginPath = "/login"

// GateOptions configures the access gates.
type GateOptions struct {
	// LoginPath is where a request without a valid session is sent.
	LoginPath string
	// Timeout bounds one gate evaluation; see gate.New.
	Timeout time.Duration
	// Audit receives every final decision. Optional.
	Audit ports.AuditSink
	Log   zerolog.Logger
}

func (o GateOptions) loginPath() string {
	if o.LoginPath == "" {
		return defaultLoginPath
	}
	return o.LoginPath
}

// RequireSession lets a request through only when its browser profile holds
// a session the backend still accepts. Otherwise the client is redirected to
// the login page; by then the validator has already cleared the stored
// credentials.
func RequireSession(validator ports.SessionValidator, opts GateOptions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			creds := Credentials(c)
			token := currentToken(c, creds)
			res, ok := runGate(c, domain.GateSession, opts, func(ctx context.Context) bool {
				return validator.ValidateSession(ctx, creds)
			})
			if !ok {
				return nil
			}

			if res.decision == gate.Granted {
				record(c, opts, domain.GateSession, res.decision, "")
				return next(c)
			}
			if res.timedOut {
				expire(c, opts, creds, token)
				record(c, opts, domain.GateSession, res.decision, "timeout")
			} else {
				record(c, opts, domain.GateSession, res.decision, "invalid_session")
			}
			return c.Redirect(http.StatusSeeOther, opts.loginPath())
		}
	}
}

type gateResult struct {
	decision gate.Decision
	timedOut bool
}

// runGate mounts a gate for the request and waits for its decision. ok is
// false when the client went away first; nothing must be written then.
func runGate(c echo.Context, name string, opts GateOptions, check gate.Check) (gateResult, bool) {
	ctx := c.Request().Context()
	g := gate.New(check, opts.Timeout)
	defer g.Unmount()

	start := time.Now()
	g.Mount(ctx)
	d := g.Wait(ctx)
	metrics.GateDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if !d.Final() {
		metrics.GateDecisionsTotal.WithLabelValues(name, "abandoned").Inc()
		opts.Log.Debug().
			Str("gate", name).
			Str("profile_id", ProfileID(c)).
			Str("path", c.Request().URL.Path).
			Msg("client left before the gate decided")
		return gateResult{decision: gate.Unknown}, false
	}

	metrics.GateDecisionsTotal.WithLabelValues(name, d.String()).Inc()
	return gateResult{decision: d, timedOut: g.TimedOut()}, true
}

// currentToken is the token the gate is about to judge.
func currentToken(c echo.Context, creds ports.CredentialStore) string {
	if creds == nil {
		return ""
	}
	token, _ := creds.Token(c.Request().Context())
	return token
}

// expire clears credentials whose validation never finished. The validator
// only judges answers it received, so a gate timeout is handled here. A
// token replaced by a newer login in the meantime is kept.
func expire(c echo.Context, opts GateOptions, creds ports.CredentialStore, token string) {
	if creds == nil || token == "" {
		return
	}
	if err := creds.ClearIf(c.Request().Context(), token); err != nil {
		opts.Log.Error().Err(err).Str("profile_id", ProfileID(c)).Msg("failed to clear credentials after gate timeout")
	}
}

func record(c echo.Context, opts GateOptions, name string, d gate.Decision, reason string) {
	rec := domain.GateRecord{
		ProfileID: ProfileID(c),
		Gate:      name,
		Decision:  d.String(),
		Reason:    reason,
		Method:    c.Request().Method,
		Path:      c.Request().URL.Path,
		At:        time.Now().UTC(),
	}
	if d == gate.Granted {
		if creds := Credentials(c); creds != nil {
			if p, ok := creds.Profile(c.Request().Context()); ok {
				rec.UserID = p.ID
			}
		}
	}

	opts.Log.Info().
		Str("gate", name).
		Str("decision", rec.Decision).
		Str("reason", reason).
		Str("profile_id", rec.ProfileID).
		Str("path", rec.Path).
		Int64("user_id", rec.UserID).
		Msg("gate decided")

	if opts.Audit != nil {
		opts.Audit.Record(rec)
	}
}
