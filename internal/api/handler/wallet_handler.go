package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
)

const (
	defaultTransactionLimit = 10
	defaultLatestLimit      = 5
	maxTransactionLimit     = 100
)

// WalletHandler forwards the signed-in user's wallet operations to the
// backend with the stored bearer token.
type WalletHandler struct {
	wallet ports.WalletBackend
}

func NewWalletHandler(wallet ports.WalletBackend) *WalletHandler {
	return &WalletHandler{wallet: wallet}
}

type transactionsQuery struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type latestQuery struct {
	Limit int `query:"limit"`
}

type sendRequest struct {
	CryptocurrencyID int64   `json:"cryptocurrency_id" validate:"required,gt=0"`
	AmountCrypto     float64 `json:"amount_crypto" validate:"required,gt=0"`
	ToAddress        string  `json:"to_address" validate:"required"`
}

type receiveResponse struct {
	WalletAddress string `json:"wallet_address"`
}

// Balance returns the balances held in the user's wallet.
//
// @Summary      Wallet balance
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  domain.WalletBalance
// @Failure      303  {string}  string  "redirect to the login page"
// @Failure      502  {object}  errorResponse
// @Router       /api/v1/wallet/balance [get]
func (h *WalletHandler) Balance(c echo.Context) error {
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}
	bal, err := h.wallet.Balance(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bal)
}

// Transactions pages through the user's wallet history.
//
// @Summary      Wallet transactions
// @Tags         wallet
// @Produce      json
// @Param        limit   query     int  false  "Page size (1-100, default 10)"
// @Param        offset  query     int  false  "Offset (default 0)"
// @Success      200     {object}  domain.TransactionPage
// @Failure      400     {object}  errorResponse
// @Router       /api/v1/wallet/transactions [get]
func (h *WalletHandler) Transactions(c echo.Context) error {
	var q transactionsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if q.Limit <= 0 {
		q.Limit = defaultTransactionLimit
	}
	if q.Limit > maxTransactionLimit {
		q.Limit = maxTransactionLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	token, err := ctxBearer(c)
	if err != nil {
		return err
	}
	page, err := h.wallet.Transactions(c.Request().Context(), token, q.Limit, q.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Send transfers crypto to another wallet address.
//
// @Summary      Send crypto
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        body  body      sendRequest  true  "Transfer"
// @Success      201   {object}  domain.SendReceipt
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/wallet/send [post]
func (h *WalletHandler) Send(c echo.Context) error {
	var req sendRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}

	receipt, err := h.wallet.Send(c.Request().Context(), token, domain.SendOrder{
		CryptocurrencyID: req.CryptocurrencyID,
		AmountCrypto:     req.AmountCrypto,
		ToAddress:        req.ToAddress,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, receipt)
}

// Receive returns the address other wallets send to.
//
// @Summary      Receive address
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  receiveResponse
// @Router       /api/v1/wallet/receive [get]
func (h *WalletHandler) Receive(c echo.Context) error {
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}
	bal, err := h.wallet.Balance(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, receiveResponse{WalletAddress: bal.WalletAddress})
}

// Latest lists the most recent transactions across the platform. Public.
//
// @Summary      Latest transactions
// @Tags         market
// @Produce      json
// @Param        limit  query     int  false  "How many (1-100, default 5)"
// @Success      200    {object}  domain.TransactionPage
// @Router       /api/v1/transactions/latest [get]
func (h *WalletHandler) Latest(c echo.Context) error {
	var q latestQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if q.Limit <= 0 {
		q.Limit = defaultLatestLimit
	}
	if q.Limit > maxTransactionLimit {
		q.Limit = maxTransactionLimit
	}

	page, err := h.wallet.LatestTransactions(c.Request().Context(), q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}
