package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
)

// TradeService converts between USD and crypto amounts at the live spot
// price and places the resulting orders with the backend.
type TradeService struct {
	wallet ports.WalletBackend
	crypto ports.CryptoBackend
	prices ports.PriceFeed
	log    zerolog.Logger
}

func NewTradeService(wallet ports.WalletBackend, crypto ports.CryptoBackend, prices ports.PriceFeed, log zerolog.Logger) *TradeService {
	return &TradeService{wallet: wallet, crypto: crypto, prices: prices, log: log}
}

// Quote prices amount of symbol. When the feed is down it falls back to the
// price listed by the backend, and flags the quote accordingly.
func (s *TradeService) Quote(ctx context.Context, symbol, side string, amount float64) (*domain.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, domain.ErrUnknownCryptocurrency
	}

	price, err := s.prices.SpotPrice(ctx, symbol)
	if err == nil {
		return domain.NewQuote(symbol, side, amount, price)
	}

	s.log.Warn().Err(err).Str("symbol", symbol).Msg("spot price unavailable, trying listed price")
	asset, lookupErr := s.lookup(ctx, func(c domain.Cryptocurrency) bool {
		return strings.EqualFold(c.Symbol, symbol)
	})
	if lookupErr != nil || asset.PriceUSD == nil {
		return nil, fmt.Errorf("quote %s: %w", symbol, err)
	}

	q, err := domain.NewQuote(symbol, side, amount, *asset.PriceUSD)
	if err != nil {
		return nil, err
	}
	q.Fallback = true
	return q, nil
}

// Buy spends amountUSD on the given cryptocurrency at the live price.
func (s *TradeService) Buy(ctx context.Context, token string, cryptocurrencyID int64, amountUSD float64, paymentMethod string) (*domain.PurchaseReceipt, *domain.Quote, error) {
	asset, err := s.byID(ctx, cryptocurrencyID)
	if err != nil {
		return nil, nil, err
	}
	q, err := s.livePrice(ctx, asset.Symbol, domain.SideBuy, amountUSD)
	if err != nil {
		return nil, nil, err
	}
	if paymentMethod == "" {
		paymentMethod = domain.DefaultPaymentMethod
	}

	receipt, err := s.wallet.Purchase(ctx, token, domain.PurchaseOrder{
		CryptocurrencyID: cryptocurrencyID,
		AmountCrypto:     q.AmountCrypto,
		AmountUSD:        q.AmountUSD,
		PaymentMethod:    paymentMethod,
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Int64("cryptocurrency_id", cryptocurrencyID).Float64("amount_usd", amountUSD).Msg("purchase placed")
	return receipt, q, nil
}

// Sell sells amountCrypto of the given cryptocurrency at the live price,
// after checking the wallet can cover it.
func (s *TradeService) Sell(ctx context.Context, token string, cryptocurrencyID int64, amountCrypto float64) (*domain.SellReceipt, *domain.Quote, error) {
	if amountCrypto <= 0 {
		return nil, nil, domain.ErrInvalidAmount
	}
	asset, err := s.byID(ctx, cryptocurrencyID)
	if err != nil {
		return nil, nil, err
	}

	balance, err := s.wallet.Balance(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	if available := balance.Available(cryptocurrencyID); available < amountCrypto {
		return nil, nil, fmt.Errorf("%w: available %g %s", domain.ErrInsufficientBalance, available, asset.Symbol)
	}

	q, err := s.livePrice(ctx, asset.Symbol, domain.SideSell, amountCrypto)
	if err != nil {
		return nil, nil, err
	}

	receipt, err := s.wallet.Sell(ctx, token, domain.SellOrder{
		CryptocurrencyID: cryptocurrencyID,
		AmountCrypto:     q.AmountCrypto,
		PriceUSD:         q.Price,
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Int64("cryptocurrency_id", cryptocurrencyID).Float64("amount_crypto", amountCrypto).Msg("sale placed")
	return receipt, q, nil
}

func (s *TradeService) livePrice(ctx context.Context, symbol, side string, amount float64) (*domain.Quote, error) {
	price, err := s.prices.SpotPrice(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("current price of %s: %w", symbol, err)
	}
	return domain.NewQuote(symbol, side, amount, price)
}

func (s *TradeService) byID(ctx context.Context, id int64) (*domain.Cryptocurrency, error) {
	return s.lookup(ctx, func(c domain.Cryptocurrency) bool { return c.ID == id })
}

func (s *TradeService) lookup(ctx context.Context, match func(domain.Cryptocurrency) bool) (*domain.Cryptocurrency, error) {
	assets, err := s.crypto.Cryptocurrencies(ctx)
	if err != nil {
		return nil, err
	}
	for i := range assets {
		if match(assets[i]) {
			return &assets[i], nil
		}
	}
	return nil, domain.ErrUnknownCryptocurrency
}
