package ports

import (
	"context"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

// AuthBackend is the identity half of the wallet backend.
type AuthBackend interface {
	// Me returns the user the token belongs to. Any non-2xx answer is an
	// error; a body without a user is domain.ErrMalformedResponse.
	Me(ctx context.Context, token string) (*domain.Profile, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)
}

type WalletBackend interface {
	Balance(ctx context.Context, token string) (*domain.WalletBalance, error)
	Transactions(ctx context.Context, token string, limit, offset int) (*domain.TransactionPage, error)
	LatestTransactions(ctx context.Context, limit int) (*domain.TransactionPage, error)
	Send(ctx context.Context, token string, order domain.SendOrder) (*domain.SendReceipt, error)
	Sell(ctx context.Context, token string, order domain.SellOrder) (*domain.SellReceipt, error)
	Purchase(ctx context.Context, token string, order domain.PurchaseOrder) (*domain.PurchaseReceipt, error)
}

type CryptoBackend interface {
	Cryptocurrencies(ctx context.Context) ([]domain.Cryptocurrency, error)
	CreateCryptocurrency(ctx context.Context, token string, in domain.CryptocurrencyInput) (*domain.Cryptocurrency, error)
	DeleteCryptocurrency(ctx context.Context, token string, id int64) error
	AllTransactions(ctx context.Context, token string, filter domain.ListFilter) (*domain.TransactionListing, error)
}

type AdminBackend interface {
	Users(ctx context.Context, token string, filter domain.ListFilter) (*domain.UserListing, error)
	User(ctx context.Context, token string, id int64) (*domain.AdminUser, error)
	BlockedUsers(ctx context.Context, token string) ([]domain.AdminUser, error)
	BlockUser(ctx context.Context, token string, id int64, reason string) (*domain.AdminUser, error)
	UnblockUser(ctx context.Context, token string, id int64) (*domain.AdminUser, error)
	Wallets(ctx context.Context, token string, filter domain.ListFilter) (*domain.WalletListing, error)
	Wallet(ctx context.Context, token string, id int64) (*domain.AdminWallet, error)
	FreezeWallet(ctx context.Context, token string, id int64, reason string) (*domain.AdminWallet, error)
	UnfreezeWallet(ctx context.Context, token string, id int64) (*domain.AdminWallet, error)
}

// PriceFeed is the third-party market data source.
type PriceFeed interface {
	SpotPrice(ctx context.Context, symbol string) (float64, error)
	// MarketData never fails; on feed errors it returns zero values.
	MarketData(ctx context.Context, symbol string) domain.MarketData
}
