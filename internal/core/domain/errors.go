package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrMalformedResponse     = errors.New("malformed backend response")
	ErrBackendUnavailable    = errors.New("wallet backend unreachable")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrInvalidPrice          = errors.New("price must be greater than zero")
	ErrInvalidSide           = errors.New("side must be buy or sell")
	ErrInsufficientBalance   = errors.New("insufficient available balance")
	ErrUnknownCryptocurrency = errors.New("unknown cryptocurrency")
	ErrPriceUnavailable      = errors.New("market price unavailable")
	// ErrCredentialsChanged reports that the stored token is no longer the
	// one a conditional write was made for.
	ErrCredentialsChanged = errors.New("stored credentials changed")
)

// UpstreamError is a non-2xx answer from the wallet backend. Message is the
// backend's own "message" field when it sent one.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d", e.Status)
	}
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
}
