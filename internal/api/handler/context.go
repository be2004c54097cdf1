package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/proyecto-awi/wallet-dashboard/internal/api/middleware"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
)

// ctxCredentials returns the credential store bound to the request by the
// BrowserProfile middleware. Its absence means the middleware chain is
// misconfigured, not that the user is logged out.
func ctxCredentials(c echo.Context) (ports.CredentialStore, error) {
	creds := middleware.Credentials(c)
	if creds == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "browser profile not initialised")
	}
	return creds, nil
}

// ctxBearer returns the stored bearer token. Routes calling it sit behind a
// gate, so a missing token means the session ended in between.
func ctxBearer(c echo.Context) (string, error) {
	creds, err := ctxCredentials(c)
	if err != nil {
		return "", err
	}
	token, ok := creds.Token(c.Request().Context())
	if !ok {
		return "", domain.ErrNotAuthenticated
	}
	return token, nil
}

// bindValid binds the request into req and validates it.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}

// optionalBool parses an optional boolean query flag into flags.
func optionalBool(flags map[string]bool, name, raw string) error {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, name+" must be true or false")
	}
	flags[name] = v
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
}
