package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
)

// AuthHandler serves sign-in, sign-up and sign-out. The bearer token never
// leaves the server: clients only ever see the user.
type AuthHandler struct {
	authService ports.AuthService
	validator   ports.SessionValidator
}

func NewAuthHandler(authService ports.AuthService, validator ports.SessionValidator) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator}
}

type registerRequest struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User *domain.Profile `json:"user"`
}

type sessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	User          *domain.Profile `json:"user,omitempty"`
	ShowAdminMenu bool            `json:"show_admin_menu"`
}

// Register creates a new account and signs the browser profile in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	creds, err := ctxCredentials(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), creds, domain.Registration{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates against the backend and keeps the token server-side.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	creds, err := ctxCredentials(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Login(c.Request().Context(), creds, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{User: user})
}

// Logout forgets the stored credentials of the browser profile.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	creds, err := ctxCredentials(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), creds); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session reports what the browser profile last knew about its user. It does
// not contact the backend and is meant for navigation only: a true
// show_admin_menu does not grant access to anything.
//
// @Summary      Cached session hint
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/v1/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	creds, err := ctxCredentials(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	resp := sessionResponse{Authenticated: creds.HasToken(ctx)}
	if resp.Authenticated {
		if p, ok := creds.Profile(ctx); ok {
			resp.User = p
		}
		resp.ShowAdminMenu = h.validator.CachedPrivilegeFlag(ctx, creds)
	}
	return c.JSON(http.StatusOK, resp)
}

// Me returns the profile refreshed by the session gate in front of it.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      303  {string}  string  "redirect to the login page"
// @Router       /api/v1/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	creds, err := ctxCredentials(c)
	if err != nil {
		return err
	}
	p, ok := creds.Profile(c.Request().Context())
	if !ok {
		return domain.ErrNotAuthenticated
	}
	return c.JSON(http.StatusOK, authResponse{User: p})
}
