// Package pricefeed reads public spot prices and 24h statistics from
// Coinbase.
package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/proyecto-awi/wallet-dashboard/internal/api/metrics"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

const (
	defaultTimeout    = 5 * time.Second
	marketCapFallback = "N/A"
)

// HTTPRequester is the part of *http.Client the feed needs.
type HTTPRequester interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	// PriceURL is the Coinbase v2 root serving /prices/{pair}/buy.
	PriceURL string
	// ExchangeURL is the Coinbase Exchange root serving /products/{pair}/stats.
	ExchangeURL string
	Timeout     time.Duration
	HTTPClient  HTTPRequester
}

// Coinbase implements ports.PriceFeed.
type Coinbase struct {
	priceURL    string
	exchangeURL string
	http        HTTPRequester
	log         zerolog.Logger
}

func NewCoinbase(cfg Config, log zerolog.Logger) *Coinbase {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Coinbase{
		priceURL:    strings.TrimRight(cfg.PriceURL, "/"),
		exchangeURL: strings.TrimRight(cfg.ExchangeURL, "/"),
		http:        httpClient,
		log:         log,
	}
}

type spotResponse struct {
	Data struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	} `json:"data"`
}

type statsResponse struct {
	Open string `json:"open"`
	Last string `json:"last"`
}

// SpotPrice returns the USD buy price of symbol.
func (c *Coinbase) SpotPrice(ctx context.Context, symbol string) (float64, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	var out spotResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/prices/%s-USD/buy", c.priceURL, symbol), &out); err != nil {
		metrics.PriceFeedErrorsTotal.WithLabelValues(symbol).Inc()
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrPriceUnavailable, symbol, err)
	}

	price, err := strconv.ParseFloat(out.Data.Amount, 64)
	if err != nil || price <= 0 {
		metrics.PriceFeedErrorsTotal.WithLabelValues(symbol).Inc()
		return 0, fmt.Errorf("%w: %s: bad amount %q", domain.ErrPriceUnavailable, symbol, out.Data.Amount)
	}
	return price, nil
}

// MarketData returns the price and 24h change of symbol. It never fails:
// without a spot price every field is zero, and without statistics the
// change is zero.
func (c *Coinbase) MarketData(ctx context.Context, symbol string) domain.MarketData {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	md := domain.MarketData{Symbol: symbol, MarketCap: marketCapFallback}

	price, err := c.SpotPrice(ctx, symbol)
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("market data unavailable")
		return md
	}
	md.Price = price

	var stats statsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/products/%s-USD/stats", c.exchangeURL, symbol), &stats); err != nil {
		c.log.Debug().Err(err).Str("symbol", symbol).Msg("24h stats unavailable")
		return md
	}
	open, errOpen := strconv.ParseFloat(stats.Open, 64)
	last, errLast := strconv.ParseFloat(stats.Last, 64)
	if errOpen == nil && errLast == nil && open > 0 && last > 0 {
		md.Change24h = domain.RoundTo((last-open)/open*100, 2)
	}
	return md
}

func (c *Coinbase) getJSON(ctx context.Context, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("coinbase responded %d", resp.StatusCode)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(dst); err != nil {
		return fmt.Errorf("decode coinbase response: %w", err)
	}
	return nil
}
