package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
)

// TradeHandler serves market data and buy/sell orders.
type TradeHandler struct {
	trade  ports.TradeService
	crypto ports.CryptoBackend
	prices ports.PriceFeed
}

func NewTradeHandler(trade ports.TradeService, crypto ports.CryptoBackend, prices ports.PriceFeed) *TradeHandler {
	return &TradeHandler{trade: trade, crypto: crypto, prices: prices}
}

type quoteQuery struct {
	Symbol string  `query:"symbol" validate:"required"`
	Side   string  `query:"side" validate:"required,oneof=buy sell"`
	Amount float64 `query:"amount" validate:"required,gt=0"`
}

type buyRequest struct {
	CryptocurrencyID int64   `json:"cryptocurrency_id" validate:"required,gt=0"`
	AmountUSD        float64 `json:"amount_usd" validate:"required,gt=0"`
	PaymentMethod    string  `json:"payment_method"`
}

type sellRequest struct {
	CryptocurrencyID int64   `json:"cryptocurrency_id" validate:"required,gt=0"`
	AmountCrypto     float64 `json:"amount_crypto" validate:"required,gt=0"`
}

type buyResponse struct {
	Purchase *domain.PurchaseReceipt `json:"purchase"`
	Quote    *domain.Quote           `json:"quote"`
}

type sellResponse struct {
	Sale  *domain.SellReceipt `json:"sale"`
	Quote *domain.Quote       `json:"quote"`
}

// Cryptocurrencies lists the supported assets. Public.
//
// @Summary      List cryptocurrencies
// @Tags         market
// @Produce      json
// @Success      200  {array}   domain.Cryptocurrency
// @Failure      502  {object}  errorResponse
// @Router       /api/v1/cryptocurrencies [get]
func (h *TradeHandler) Cryptocurrencies(c echo.Context) error {
	list, err := h.crypto.Cryptocurrencies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Market returns the spot price and 24h change of an asset. Public; feed
// failures yield zero values rather than an error.
//
// @Summary      Market data
// @Tags         market
// @Produce      json
// @Param        symbol  path      string  true  "Asset symbol (e.g. BTC)"
// @Success      200     {object}  domain.MarketData
// @Router       /api/v1/market/{symbol} [get]
func (h *TradeHandler) Market(c echo.Context) error {
	symbol := strings.TrimSpace(c.Param("symbol"))
	if symbol == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "symbol is required")
	}
	return c.JSON(http.StatusOK, h.prices.MarketData(c.Request().Context(), symbol))
}

// Quote converts between USD and crypto at the current price.
//
// @Summary      Trade quote
// @Tags         trade
// @Produce      json
// @Param        symbol  query     string   true  "Asset symbol"
// @Param        side    query     string   true  "buy or sell"
// @Param        amount  query     number   true  "USD to spend (buy) or crypto to sell (sell)"
// @Success      200     {object}  domain.Quote
// @Failure      422     {object}  errorResponse
// @Failure      503     {object}  errorResponse
// @Router       /api/v1/trade/quote [get]
func (h *TradeHandler) Quote(c echo.Context) error {
	var q quoteQuery
	if err := bindValid(c, &q); err != nil {
		return err
	}
	quote, err := h.trade.Quote(c.Request().Context(), q.Symbol, q.Side, q.Amount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quote)
}

// Buy purchases crypto for a USD amount at the current price.
//
// @Summary      Buy crypto
// @Tags         trade
// @Accept       json
// @Produce      json
// @Param        body  body      buyRequest  true  "Purchase"
// @Success      201   {object}  buyResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/v1/trade/buy [post]
func (h *TradeHandler) Buy(c echo.Context) error {
	var req buyRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}

	receipt, quote, err := h.trade.Buy(c.Request().Context(), token, req.CryptocurrencyID, req.AmountUSD, req.PaymentMethod)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, buyResponse{Purchase: receipt, Quote: quote})
}

// Sell sells a crypto amount at the current price.
//
// @Summary      Sell crypto
// @Tags         trade
// @Accept       json
// @Produce      json
// @Param        body  body      sellRequest  true  "Sale"
// @Success      201   {object}  sellResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/v1/trade/sell [post]
func (h *TradeHandler) Sell(c echo.Context) error {
	var req sellRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}

	receipt, quote, err := h.trade.Sell(c.Request().Context(), token, req.CryptocurrencyID, req.AmountCrypto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sellResponse{Sale: receipt, Quote: quote})
}
