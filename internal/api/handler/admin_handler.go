package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
)

const defaultAuditLimit = 50

// AdminHandler serves the back-office. Every route sits behind the
// administrator gate.
type AdminHandler struct {
	admin  ports.AdminBackend
	crypto ports.CryptoBackend
	audit  ports.AuditReader
}

func NewAdminHandler(admin ports.AdminBackend, crypto ports.CryptoBackend, audit ports.AuditReader) *AdminHandler {
	return &AdminHandler{admin: admin, crypto: crypto, audit: audit}
}

type listQuery struct {
	Search    string `query:"search"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
	PerPage   int    `query:"per_page" validate:"gte=0,lte=100"`
	Page      int    `query:"page" validate:"gte=0"`
	IsBlocked string `query:"is_blocked"`
	IsAdmin   string `query:"is_admin"`
	IsFrozen  string `query:"is_frozen"`
	Status    string `query:"status"`
	Type      string `query:"type"`
}

func (q listQuery) filter() (domain.ListFilter, error) {
	f := domain.ListFilter{
		Search:    q.Search,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		PerPage:   q.PerPage,
		Page:      q.Page,
		Flags:     map[string]bool{},
		Fields:    map[string]string{},
	}
	for name, raw := range map[string]string{"is_blocked": q.IsBlocked, "is_admin": q.IsAdmin, "is_frozen": q.IsFrozen} {
		if err := optionalBool(f.Flags, name, raw); err != nil {
			return f, err
		}
	}
	if q.Status != "" {
		f.Fields["status"] = q.Status
	}
	if q.Type != "" {
		f.Fields["type"] = q.Type
	}
	return f, nil
}

type blockRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Reason string `json:"reason" validate:"required"`
}

type unblockRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

type freezeRequest struct {
	WalletID int64  `json:"wallet_id" validate:"required,gt=0"`
	Reason   string `json:"reason" validate:"required"`
}

type unfreezeRequest struct {
	WalletID int64 `json:"wallet_id" validate:"required,gt=0"`
}

type createCryptoRequest struct {
	Symbol                  string `json:"symbol" validate:"required"`
	Name                    string `json:"name" validate:"required"`
	CoinbaseID              string `json:"coinbase_id" validate:"required"`
	Decimals                int    `json:"decimals" validate:"gte=0,lte=18"`
	Description             string `json:"description"`
	MinPurchaseAmount       string `json:"min_purchase_amount"`
	MaxPurchaseAmount       string `json:"max_purchase_amount"`
	PurchaseFeePercentage   string `json:"purchase_fee_percentage"`
	WithdrawalFeePercentage string `json:"withdrawal_fee_percentage"`
	MarketTradingEnabled    *bool  `json:"market_trading_enabled"`
	IsActive                *bool  `json:"is_active"`
}

type auditQuery struct {
	ProfileID string `query:"profile_id"`
	Gate      string `query:"gate" validate:"omitempty,oneof=session admin"`
	Decision  string `query:"decision" validate:"omitempty,oneof=granted denied"`
	Limit     int    `query:"limit" validate:"gte=0,lte=500"`
}

type blockedUsersResponse struct {
	Users []domain.AdminUser `json:"users"`
	Count int                `json:"count"`
}

type auditResponse struct {
	Records []domain.GateRecord `json:"records"`
}

// Users lists accounts.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        search      query     string  false  "Name or email"
// @Param        is_blocked  query     bool    false  "Only blocked / unblocked"
// @Param        is_admin    query     bool    false  "Only administrators / regular users"
// @Param        sort_by     query     string  false  "Sort field"
// @Param        sort_order  query     string  false  "asc or desc"
// @Param        per_page    query     int     false  "Page size"
// @Param        page        query     int     false  "Page"
// @Success      200         {object}  domain.UserListing
// @Failure      403         {object}  errorResponse
// @Router       /api/v1/admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	f, token, err := h.listRequest(c)
	if err != nil {
		return err
	}
	out, err := h.admin.Users(c.Request().Context(), token, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// User returns one account.
//
// @Summary      User detail
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  domain.AdminUser
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/admin/users/{id} [get]
func (h *AdminHandler) User(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}
	user, err := h.admin.User(c.Request().Context(), token, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// BlockedUsers lists blocked accounts.
//
// @Summary      Blocked users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  blockedUsersResponse
// @Router       /api/v1/admin/users/blocked [get]
func (h *AdminHandler) BlockedUsers(c echo.Context) error {
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}
	users, err := h.admin.BlockedUsers(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blockedUsersResponse{Users: users, Count: len(users)})
}

// BlockUser blocks an account.
//
// @Summary      Block user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      blockRequest  true  "User and reason"
// @Success      200   {object}  domain.AdminUser
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/admin/users/block [post]
func (h *AdminHandler) BlockUser(c echo.Context) error {
	var req blockRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}
	user, err := h.admin.BlockUser(c.Request().Context(), token, req.UserID, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UnblockUser lifts a block.
//
// @Summary      Unblock user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      unblockRequest  true  "User"
// @Success      200   {object}  domain.AdminUser
// @Router       /api/v1/admin/users/unblock [post]
func (h *AdminHandler) UnblockUser(c echo.Context) error {
	var req unblockRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}
	user, err := h.admin.UnblockUser(c.Request().Context(), token, req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Wallets lists wallets.
//
// @Summary      List wallets
// @Tags         admin
// @Produce      json
// @Param        search      query     string  false  "Address or owner"
// @Param        is_frozen   query     bool    false  "Only frozen / active"
// @Param        sort_by     query     string  false  "Sort field"
// @Param        sort_order  query     string  false  "asc or desc"
// @Param        per_page    query     int     false  "Page size"
// @Param        page        query     int     false  "Page"
// @Success      200         {object}  domain.WalletListing
// @Router       /api/v1/admin/wallets [get]
func (h *AdminHandler) Wallets(c echo.Context) error {
	f, token, err := h.listRequest(c)
	if err != nil {
		return err
	}
	out, err := h.admin.Wallets(c.Request().Context(), token, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Wallet returns one wallet with its owner.
//
// @Summary      Wallet detail
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Wallet ID"
// @Success      200  {object}  domain.AdminWallet
// @Router       /api/v1/admin/wallets/{id} [get]
func (h *AdminHandler) Wallet(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}
	wallet, err := h.admin.Wallet(c.Request().Context(), token, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wallet)
}

// FreezeWallet freezes a wallet.
//
// @Summary      Freeze wallet
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      freezeRequest  true  "Wallet and reason"
// @Success      200   {object}  domain.AdminWallet
// @Router       /api/v1/admin/wallets/freeze [post]
func (h *AdminHandler) FreezeWallet(c echo.Context) error {
	var req freezeRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}
	wallet, err := h.admin.FreezeWallet(c.Request().Context(), token, req.WalletID, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wallet)
}

// UnfreezeWallet reactivates a frozen wallet.
//
// @Summary      Unfreeze wallet
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      unfreezeRequest  true  "Wallet"
// @Success      200   {object}  domain.AdminWallet
// @Router       /api/v1/admin/wallets/unfreeze [post]
func (h *AdminHandler) UnfreezeWallet(c echo.Context) error {
	var req unfreezeRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}
	wallet, err := h.admin.UnfreezeWallet(c.Request().Context(), token, req.WalletID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wallet)
}

// CreateCryptocurrency lists a new asset.
//
// @Summary      Create cryptocurrency
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createCryptoRequest  true  "Asset"
// @Success      201   {object}  domain.Cryptocurrency
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/admin/cryptocurrencies [post]
func (h *AdminHandler) CreateCryptocurrency(c echo.Context) error {
	var req createCryptoRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}

	asset, err := h.crypto.CreateCryptocurrency(c.Request().Context(), token, domain.CryptocurrencyInput{
		Symbol:                  req.Symbol,
		Name:                    req.Name,
		CoinbaseID:              req.CoinbaseID,
		Decimals:                req.Decimals,
		Description:             req.Description,
		MinPurchaseAmount:       req.MinPurchaseAmount,
		MaxPurchaseAmount:       req.MaxPurchaseAmount,
		PurchaseFeePercentage:   req.PurchaseFeePercentage,
		WithdrawalFeePercentage: req.WithdrawalFeePercentage,
		MarketTradingEnabled:    req.MarketTradingEnabled,
		IsActive:                req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, asset)
}

// DeleteCryptocurrency delists an asset.
//
// @Summary      Delete cryptocurrency
// @Tags         admin
// @Param        id   path  int  true  "Cryptocurrency ID"
// @Success      204
// @Router       /api/v1/admin/cryptocurrencies/{id} [delete]
func (h *AdminHandler) DeleteCryptocurrency(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	token, err := ctxBearer(c)
	if err != nil {
		return err
	}
	if err := h.crypto.DeleteCryptocurrency(c.Request().Context(), token, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Transactions lists the ledger of every wallet.
//
// @Summary      All transactions
// @Tags         admin
// @Produce      json
// @Param        search      query     string  false  "Free text"
// @Param        status      query     string  false  "completed, pending or failed"
// @Param        type        query     string  false  "Transaction type"
// @Param        sort_by     query     string  false  "Sort field"
// @Param        sort_order  query     string  false  "asc or desc"
// @Param        per_page    query     int     false  "Page size"
// @Param        page        query     int     false  "Page"
// @Success      200         {object}  domain.TransactionListing
// @Router       /api/v1/admin/transactions [get]
func (h *AdminHandler) Transactions(c echo.Context) error {
	f, token, err := h.listRequest(c)
	if err != nil {
		return err
	}
	out, err := h.crypto.AllTransactions(c.Request().Context(), token, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Audit lists recent access-gate decisions.
//
// @Summary      Gate audit trail
// @Tags         admin
// @Produce      json
// @Param        profile_id  query     string  false  "Browser profile"
// @Param        gate        query     string  false  "session or admin"
// @Param        decision    query     string  false  "granted or denied"
// @Param        limit       query     int     false  "How many (default 50, max 500)"
// @Success      200         {object}  auditResponse
// @Router       /api/v1/admin/audit [get]
func (h *AdminHandler) Audit(c echo.Context) error {
	var q auditQuery
	if err := bindValid(c, &q); err != nil {
		return err
	}
	if q.Limit == 0 {
		q.Limit = defaultAuditLimit
	}

	records, err := h.audit.Recent(c.Request().Context(), domain.AuditFilter{
		ProfileID: q.ProfileID,
		Gate:      q.Gate,
		Decision:  q.Decision,
		Limit:     q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auditResponse{Records: records})
}

func (h *AdminHandler) listRequest(c echo.Context) (domain.ListFilter, string, error) {
	var q listQuery
	if err := bindValid(c, &q); err != nil {
		return domain.ListFilter{}, "", err
	}
	f, err := q.filter()
	if err != nil {
		return domain.ListFilter{}, "", err
	}
	token, err := ctxBearer(c)
	if err != nil {
		return domain.ListFilter{}, "", err
	}
	return f, token, nil
}
