package ports

import (
	"context"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

// CredentialStore is the durable holder of one browser profile's bearer
// token and cached profile. Reads never fail: a missing or unreadable value
// is reported as absent.
type CredentialStore interface {
	SetToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, bool)
	SetProfile(ctx context.Context, profile *domain.Profile) error
	// RefreshProfile writes profile only while token is still the stored
	// token, and returns domain.ErrCredentialsChanged otherwise.
	RefreshProfile(ctx context.Context, token string, profile *domain.Profile) error
	Profile(ctx context.Context) (*domain.Profile, bool)
	// Set writes token and profile together, as login and registration do.
	Set(ctx context.Context, token string, profile *domain.Profile) error
	// Clear removes token and profile in one step. Clearing an empty store
	// is not an error.
	Clear(ctx context.Context) error
	// ClearIf clears only while token is still the stored token. A newer
	// login that replaced it is left alone.
	ClearIf(ctx context.Context, token string) error
	HasToken(ctx context.Context) bool
}

// CredentialStoreFactory hands out the store bound to a browser profile.
type CredentialStoreFactory interface {
	ForProfile(profileID string) CredentialStore
}
