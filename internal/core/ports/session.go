package ports

import (
	"context"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

// SessionValidator decides whether the credentials of a browser profile are
// still accepted by the backend. Every failure is reported as false.
type SessionValidator interface {
	ValidateSession(ctx context.Context, creds CredentialStore) bool
	ValidatePrivileged(ctx context.Context, creds CredentialStore) bool
	// AuthorizePrivileged is ValidatePrivileged that also reports whether the
	// session itself was valid, so a non-administrator can be told apart from
	// a dead session without reading the store again.
	AuthorizePrivileged(ctx context.Context, creds CredentialStore) (session, admin bool)
	CachedPrivilegeFlag(ctx context.Context, creds CredentialStore) bool
}

// AuthService runs the login, registration and logout flows that feed the
// credential store.
type AuthService interface {
	Login(ctx context.Context, creds CredentialStore, email, password string) (*domain.Profile, error)
	Register(ctx context.Context, creds CredentialStore, reg domain.Registration) (*domain.Profile, error)
	Logout(ctx context.Context, creds CredentialStore) error
}

// TradeService prices and places buy/sell orders.
type TradeService interface {
	Quote(ctx context.Context, symbol, side string, amount float64) (*domain.Quote, error)
	Buy(ctx context.Context, token string, cryptocurrencyID int64, amountUSD float64, paymentMethod string) (*domain.PurchaseReceipt, *domain.Quote, error)
	Sell(ctx context.Context, token string, cryptocurrencyID int64, amountCrypto float64) (*domain.SellReceipt, *domain.Quote, error)
}
