package middleware

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/gate"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
)

// InsufficientPrivilegeMessage is shown to signed-in users who are not
// administrators.
const InsufficientPrivilegeMessage = "insufficient privilege: only administrators can access this section"

// RequireAdmin lets a request through only for a live administrator session.
// It runs its own full validation and does not rely on RequireSession having
// run before it. A signed-in non-administrator gets a 403 and keeps their
// session; a request without a valid session is redirected to login.
func RequireAdmin(validator ports.SessionValidator, opts GateOptions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			creds := Credentials(c)
			token := currentToken(c, creds)
			var session atomic.Bool
			res, ok := runGate(c, domain.GateAdmin, opts, func(ctx context.Context) bool {
				valid, admin := validator.AuthorizePrivileged(ctx, creds)
				session.Store(valid)
				return admin
			})
			if !ok {
				return nil
			}

			d := res.decision
			if d == gate.Granted {
				record(c, opts, domain.GateAdmin, d, "")
				return next(c)
			}
			if res.timedOut {
				expire(c, opts, creds, token)
				record(c, opts, domain.GateAdmin, d, "timeout")
				return c.Redirect(http.StatusSeeOther, opts.loginPath())
			}

			if !session.Load() {
				record(c, opts, domain.GateAdmin, d, "invalid_session")
				return c.Redirect(http.StatusSeeOther, opts.loginPath())
			}
			record(c, opts, domain.GateAdmin, d, "not_admin")
			return c.JSON(http.StatusForbidden, map[string]string{"error": InsufficientPrivilegeMessage})
		}
	}
}
