package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Passes the backend's own 4xx answers through, and reports its 5xx
//     answers and transport failures as 502.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUnknownCryptocurrency):
		return http.StatusNotFound, "unknown cryptocurrency"
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidSide):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrPriceUnavailable):
		return http.StatusServiceUnavailable, "market price unavailable, try again later"
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		if upstream.Status >= 400 && upstream.Status < 500 {
			msg := upstream.Message
			if msg == "" {
				msg = http.StatusText(upstream.Status)
			}
			return upstream.Status, msg
		}
		log.Warn().Err(err).Str("path", c.Path()).Msg("backend error")
		return http.StatusBadGateway, "wallet backend unavailable"
	}

	if errors.Is(err, domain.ErrMalformedResponse) || errors.Is(err, domain.ErrBackendUnavailable) {
		log.Warn().Err(err).Str("path", c.Path()).Msg("backend call failed")
		return http.StatusBadGateway, "wallet backend unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
