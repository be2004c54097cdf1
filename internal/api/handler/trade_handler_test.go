package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

type stubTrade struct {
	quoteFn func(ctx context.Context, symbol, side string, amount float64) (*domain.Quote, error)
	buyFn   func(ctx context.Context, token string, id int64, usd float64, method string) (*domain.PurchaseReceipt, *domain.Quote, error)
	sellFn  func(ctx context.Context, token string, id int64, amount float64) (*domain.SellReceipt, *domain.Quote, error)
}

func (s *stubTrade) Quote(ctx context.Context, symbol, side string, amount float64) (*domain.Quote, error) {
	return s.quoteFn(ctx, symbol, side, amount)
}

func (s *stubTrade) Buy(ctx context.Context, token string, id int64, usd float64, method string) (*domain.PurchaseReceipt, *domain.Quote, error) {
	return s.buyFn(ctx, token, id, usd, method)
}

func (s *stubTrade) Sell(ctx context.Context, token string, id int64, amount float64) (*domain.SellReceipt, *domain.Quote, error) {
	return s.sellFn(ctx, token, id, amount)
}

type stubCrypto struct {
	listFn   func(ctx context.Context) ([]domain.Cryptocurrency, error)
	createFn func(ctx context.Context, token string, in domain.CryptocurrencyInput) (*domain.Cryptocurrency, error)
	deleteFn func(ctx context.Context, token string, id int64) error
	allTxFn  func(ctx context.Context, token string, f domain.ListFilter) (*domain.TransactionListing, error)
}

func (s *stubCrypto) Cryptocurrencies(ctx context.Context) ([]domain.Cryptocurrency, error) {
	return s.listFn(ctx)
}

func (s *stubCrypto) CreateCryptocurrency(ctx context.Context, token string, in domain.CryptocurrencyInput) (*domain.Cryptocurrency, error) {
	return s.createFn(ctx, token, in)
}

func (s *stubCrypto) DeleteCryptocurrency(ctx context.Context, token string, id int64) error {
	return s.deleteFn(ctx, token, id)
}

func (s *stubCrypto) AllTransactions(ctx context.Context, token string, f domain.ListFilter) (*domain.TransactionListing, error) {
	return s.allTxFn(ctx, token, f)
}

type stubFeed struct {
	market domain.MarketData
}

func (s *stubFeed) SpotPrice(context.Context, string) (float64, error) {
	return s.market.Price, nil
}

func (s *stubFeed) MarketData(_ context.Context, symbol string) domain.MarketData {
	m := s.market
	m.Symbol = symbol
	return m
}

func TestTradeHandler_Cryptocurrencies(t *testing.T) {
	stub := &stubCrypto{
		listFn: func(context.Context) ([]domain.Cryptocurrency, error) {
			return []domain.Cryptocurrency{{ID: 1, Symbol: "BTC"}}, nil
		},
	}
	h := NewTradeHandler(&stubTrade{}, stub, &stubFeed{})

	c, rec := newContext(t, http.MethodGet, "/api/v1/cryptocurrencies", "", nil)
	if err := h.Cryptocurrencies(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)
}

func TestTradeHandler_Market(t *testing.T) {
	h := NewTradeHandler(&stubTrade{}, &stubCrypto{}, &stubFeed{market: domain.MarketData{Price: 100, MarketCap: "N/A"}})

	c, rec := newContext(t, http.MethodGet, "/api/v1/market/BTC", "", nil)
	c.SetParamNames("symbol")
	c.SetParamValues("BTC")
	if err := h.Market(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var got domain.MarketData
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Symbol != "BTC" || got.Price != 100 {
		t.Fatalf("unexpected market data: %+v", got)
	}
}

func TestTradeHandler_Quote(t *testing.T) {
	stub := &stubTrade{
		quoteFn: func(_ context.Context, symbol, side string, amount float64) (*domain.Quote, error) {
			return domain.NewQuote(symbol, side, amount, 50)
		},
	}
	h := NewTradeHandler(stub, &stubCrypto{}, &stubFeed{})

	c, rec := newContext(t, http.MethodGet, "/api/v1/trade/quote?symbol=eth&side=buy&amount=100", "", &memCredentials{token: "tok"})
	if err := h.Quote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var q domain.Quote
	if err := json.Unmarshal(rec.Body.Bytes(), &q); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if q.AmountCrypto != 2 || q.Symbol != "ETH" {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestTradeHandler_Quote_BadSide(t *testing.T) {
	h := NewTradeHandler(&stubTrade{}, &stubCrypto{}, &stubFeed{})

	c, _ := newContext(t, http.MethodGet, "/api/v1/trade/quote?symbol=eth&side=hold&amount=1", "", &memCredentials{token: "tok"})
	if got := httpStatus(t, h.Quote(c)); got != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", got)
	}
}

func TestTradeHandler_Buy(t *testing.T) {
	stub := &stubTrade{
		buyFn: func(_ context.Context, token string, id int64, usd float64, method string) (*domain.PurchaseReceipt, *domain.Quote, error) {
			if token != "tok" || id != 1 || usd != 250 || method != "" {
				t.Fatalf("unexpected buy: %s %d %v %q", token, id, usd, method)
			}
			return &domain.PurchaseReceipt{ID: 8}, &domain.Quote{Symbol: "BTC", Side: domain.SideBuy}, nil
		},
	}
	h := NewTradeHandler(stub, &stubCrypto{}, &stubFeed{})

	c, rec := newContext(t, http.MethodPost, "/api/v1/trade/buy", `{"cryptocurrency_id":1,"amount_usd":250}`, &memCredentials{token: "tok"})
	if err := h.Buy(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectStatus(t, rec, http.StatusCreated)

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["purchase"]["id"] != float64(8) || resp["quote"]["symbol"] != "BTC" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestTradeHandler_Sell_PropagatesDomainError(t *testing.T) {
	stub := &stubTrade{
		sellFn: func(context.Context, string, int64, float64) (*domain.SellReceipt, *domain.Quote, error) {
			return nil, nil, domain.ErrInsufficientBalance
		},
	}
	h := NewTradeHandler(stub, &stubCrypto{}, &stubFeed{})

	c, _ := newContext(t, http.MethodPost, "/api/v1/trade/sell", `{"cryptocurrency_id":1,"amount_crypto":3}`, &memCredentials{token: "tok"})
	if err := h.Sell(c); !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
}
