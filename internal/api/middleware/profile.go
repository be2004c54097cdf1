package middleware

import (
	"crypto/sha256"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/hkdf"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
)

const (
	// ProfileCookie carries the signed browser profile id.
	ProfileCookie = "dash_profile"

	profileIssuer    = "wallet-dashboard"
	profileCookieTTL = 400 * 24 * time.Hour

	ctxProfileID   = "profile_id"
	ctxCredentials = "credentials"
)

var errBadProfile = errors.New("invalid profile cookie")

// DeriveProfileKey derives the cookie signing key from the session secret,
// so the raw secret is never used as an HMAC key directly.
func DeriveProfileKey(secret string) ([]byte, error) {
	key := make([]byte, 32)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte("wallet-dashboard profile cookie v1"))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}

// BrowserProfile identifies the browser profile of every request. A request
// without a valid profile cookie gets a fresh profile id, and with it an
// empty credential store. The store bound to the profile is placed on the
// context for the gates and handlers.
func BrowserProfile(stores ports.CredentialStoreFactory, key []byte, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := readProfile(c, key)
			if err != nil {
				id = uuid.NewString()
				signed, err := signProfile(id, key, time.Now())
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "could not start browser profile")
				}
				c.SetCookie(&http.Cookie{
					Name:     ProfileCookie,
					Value:    signed,
					Path:     "/",
					MaxAge:   int(profileCookieTTL.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			SetProfile(c, id, stores.ForProfile(id))
			return next(c)
		}
	}
}

// SetProfile binds a browser profile and its credential store to c.
func SetProfile(c echo.Context, profileID string, creds ports.CredentialStore) {
	c.Set(ctxProfileID, profileID)
	c.Set(ctxCredentials, creds)
}

// ProfileID returns the browser profile id placed by BrowserProfile.
func ProfileID(c echo.Context) string {
	id, _ := c.Get(ctxProfileID).(string)
	return id
}

// Credentials returns the credential store of the request's browser
// profile, or nil when BrowserProfile did not run.
func Credentials(c echo.Context) ports.CredentialStore {
	creds, _ := c.Get(ctxCredentials).(ports.CredentialStore)
	return creds
}

func readProfile(c echo.Context, key []byte) (string, error) {
	cookie, err := c.Cookie(ProfileCookie)
	if err != nil || cookie.Value == "" {
		return "", errBadProfile
	}

	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(*jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(profileIssuer))
	if err != nil || !tkn.Valid {
		return "", errBadProfile
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", errBadProfile
	}
	return id.String(), nil
}

func signProfile(id string, key []byte, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:   profileIssuer,
		Subject:  id,
		IssuedAt: jwt.NewNumericDate(now),
	})
	return token.SignedString(key)
}
