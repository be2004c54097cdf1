package service

import (
	"context"
	"errors"
	"sync"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory credential store
// ---------------------------------------------------------------------------

type memCredentials struct {
	mu       sync.Mutex
	token    string
	profile  *domain.Profile
	setErr   error // if set, SetProfile, RefreshProfile and Set return this error
	clearErr error // if set, ClearIf returns this error without clearing
	clears   int
	tokenOps int
}

func newMemCredentials(token string, profile *domain.Profile) *memCredentials {
	return &memCredentials{token: token, profile: cloneProfile(profile)}
}

func cloneProfile(p *domain.Profile) *domain.Profile {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (m *memCredentials) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memCredentials) Token(_ context.Context) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokenOps++
	return m.token, m.token != ""
}

func (m *memCredentials) SetProfile(_ context.Context, p *domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.profile = cloneProfile(p)
	return nil
}

func (m *memCredentials) RefreshProfile(_ context.Context, token string, p *domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	if m.token == "" || m.token != token {
		return domain.ErrCredentialsChanged
	}
	m.profile = cloneProfile(p)
	return nil
}

func (m *memCredentials) Profile(_ context.Context) (*domain.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneProfile(m.profile), m.profile != nil
}

func (m *memCredentials) Set(_ context.Context, token string, p *domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.token = token
	m.profile = cloneProfile(p)
	return nil
}

func (m *memCredentials) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	m.token = ""
	m.profile = nil
	return nil
}

func (m *memCredentials) ClearIf(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	if m.token != token {
		return nil
	}
	m.clears++
	m.token = ""
	m.profile = nil
	return nil
}

func (m *memCredentials) HasToken(ctx context.Context) bool {
	_, ok := m.Token(ctx)
	return ok
}

// ---------------------------------------------------------------------------
// Backend stubs
// ---------------------------------------------------------------------------

type stubAuthBackend struct {
	mu         sync.Mutex
	meCalls    int
	meFn       func(ctx context.Context, token string) (*domain.Profile, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	registerFn func(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)
}

func (s *stubAuthBackend) Me(ctx context.Context, token string) (*domain.Profile, error) {
	s.mu.Lock()
	s.meCalls++
	s.mu.Unlock()
	return s.meFn(ctx, token)
}

func (s *stubAuthBackend) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meCalls
}

func (s *stubAuthBackend) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthBackend) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	return s.registerFn(ctx, reg)
}

type stubWallet struct {
	balance      *domain.WalletBalance
	balanceErr   error
	lastPurchase *domain.PurchaseOrder
	lastSell     *domain.SellOrder
}

func (s *stubWallet) Balance(context.Context, string) (*domain.WalletBalance, error) {
	return s.balance, s.balanceErr
}

func (s *stubWallet) Transactions(context.Context, string, int, int) (*domain.TransactionPage, error) {
	return &domain.TransactionPage{}, nil
}

func (s *stubWallet) LatestTransactions(context.Context, int) (*domain.TransactionPage, error) {
	return &domain.TransactionPage{}, nil
}

func (s *stubWallet) Send(_ context.Context, _ string, o domain.SendOrder) (*domain.SendReceipt, error) {
	return &domain.SendReceipt{CryptocurrencyID: o.CryptocurrencyID, AmountCrypto: o.AmountCrypto, ToAddress: o.ToAddress}, nil
}

func (s *stubWallet) Sell(_ context.Context, _ string, o domain.SellOrder) (*domain.SellReceipt, error) {
	s.lastSell = &o
	return &domain.SellReceipt{CryptocurrencyID: o.CryptocurrencyID, AmountCrypto: o.AmountCrypto, PriceUSD: o.PriceUSD, TotalUSD: o.AmountCrypto * o.PriceUSD, Status: "completed"}, nil
}

func (s *stubWallet) Purchase(_ context.Context, _ string, o domain.PurchaseOrder) (*domain.PurchaseReceipt, error) {
	s.lastPurchase = &o
	return &domain.PurchaseReceipt{CryptocurrencyID: o.CryptocurrencyID, AmountCrypto: o.AmountCrypto, AmountUSD: o.AmountUSD, PaymentMethod: o.PaymentMethod, Status: "completed"}, nil
}

type stubCrypto struct {
	assets []domain.Cryptocurrency
	err    error
}

func (s *stubCrypto) Cryptocurrencies(context.Context) ([]domain.Cryptocurrency, error) {
	return s.assets, s.err
}

func (s *stubCrypto) CreateCryptocurrency(context.Context, string, domain.CryptocurrencyInput) (*domain.Cryptocurrency, error) {
	return nil, errors.New("not implemented")
}

func (s *stubCrypto) DeleteCryptocurrency(context.Context, string, int64) error {
	return errors.New("not implemented")
}

func (s *stubCrypto) AllTransactions(context.Context, string, domain.ListFilter) (*domain.TransactionListing, error) {
	return nil, errors.New("not implemented")
}

type stubPrices struct {
	prices map[string]float64
	err    error
}

func (s *stubPrices) SpotPrice(_ context.Context, symbol string) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	p, ok := s.prices[symbol]
	if !ok {
		return 0, errors.New("no price")
	}
	return p, nil
}

func (s *stubPrices) MarketData(_ context.Context, symbol string) domain.MarketData {
	return domain.MarketData{Symbol: symbol, Price: s.prices[symbol], MarketCap: "N/A"}
}
