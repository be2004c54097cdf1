package domain

import (
	"math"
	"strings"
)

// Cryptocurrency is an asset listed by the backend.
type Cryptocurrency struct {
	ID                      int64    `json:"id"`
	Name                    string   `json:"name"`
	Symbol                  string   `json:"symbol"`
	PriceUSD                *float64 `json:"price_usd,omitempty"`
	Description             string   `json:"description,omitempty"`
	Decimals                int      `json:"decimals,omitempty"`
	MinPurchaseAmount       string   `json:"min_purchase_amount,omitempty"`
	MaxPurchaseAmount       string   `json:"max_purchase_amount,omitempty"`
	PurchaseFeePercentage   string   `json:"purchase_fee_percentage,omitempty"`
	WithdrawalFeePercentage string   `json:"withdrawal_fee_percentage,omitempty"`
	MarketTradingEnabled    *bool    `json:"market_trading_enabled,omitempty"`
	CoinbaseID              string   `json:"coinbase_id,omitempty"`
	IsActive                *bool    `json:"is_active,omitempty"`
}

// CryptocurrencyInput is the admin form for listing a new asset.
type CryptocurrencyInput struct {
	Symbol                  string `json:"symbol"`
	Name                    string `json:"name"`
	CoinbaseID              string `json:"coinbase_id"`
	Decimals                int    `json:"decimals"`
	Description             string `json:"description,omitempty"`
	MinPurchaseAmount       string `json:"min_purchase_amount,omitempty"`
	MaxPurchaseAmount       string `json:"max_purchase_amount,omitempty"`
	PurchaseFeePercentage   string `json:"purchase_fee_percentage,omitempty"`
	WithdrawalFeePercentage string `json:"withdrawal_fee_percentage,omitempty"`
	MarketTradingEnabled    *bool  `json:"market_trading_enabled,omitempty"`
	IsActive                *bool  `json:"is_active,omitempty"`
}

// MarketData is the public price view of an asset.
type MarketData struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
	MarketCap string  `json:"market_cap"`
}

// Trade sides.
const (
	SideBuy  = "buy"
	SideSell = "sell"
)

// Quote is a conversion between USD and a crypto amount at a spot price.
type Quote struct {
	Symbol       string  `json:"symbol"`
	Side         string  `json:"side"`
	Price        float64 `json:"price"`
	AmountUSD    float64 `json:"amount_usd"`
	AmountCrypto float64 `json:"amount_crypto"`
	// Fallback is set when the live feed failed and the listed price was used.
	Fallback bool `json:"fallback,omitempty"`
}

// NewQuote converts amount at price. For a buy, amount is the USD spend and
// the crypto received is amount/price; for a sell, amount is the crypto
// spent and the USD received is amount*price.
func NewQuote(symbol, side string, amount, price float64) (*Quote, error) {
	if !finite(amount) || amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !finite(price) || price <= 0 {
		return nil, ErrInvalidPrice
	}

	q := &Quote{Symbol: strings.ToUpper(symbol), Side: side, Price: price}
	switch side {
	case SideBuy:
		q.AmountUSD = amount
		q.AmountCrypto = amount / price
	case SideSell:
		q.AmountCrypto = amount
		q.AmountUSD = amount * price
	default:
		return nil, ErrInvalidSide
	}
	if !finite(q.AmountUSD) || !finite(q.AmountCrypto) {
		return nil, ErrInvalidAmount
	}
	return q, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
