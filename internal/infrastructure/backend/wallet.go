package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

// The wallet endpoints answer with bare objects, not the usual envelope.

func (c *Client) Balance(ctx context.Context, token string) (*domain.WalletBalance, error) {
	var out domain.WalletBalance
	if err := c.do(ctx, http.MethodGet, c.apiURL+"/wallet/balance", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Transactions(ctx context.Context, token string, limit, offset int) (*domain.TransactionPage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var out domain.TransactionPage
	if err := c.do(ctx, http.MethodGet, c.apiURL+"/wallet/transactions", token, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LatestTransactions is public; no token is sent.
func (c *Client) LatestTransactions(ctx context.Context, limit int) (*domain.TransactionPage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var out domain.TransactionPage
	if err := c.do(ctx, http.MethodGet, c.apiURL+"/transactions/latest", "", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Send(ctx context.Context, token string, order domain.SendOrder) (*domain.SendReceipt, error) {
	var out domain.SendReceipt
	if err := c.do(ctx, http.MethodPost, c.apiURL+"/wallet/send", token, nil, order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Sell(ctx context.Context, token string, order domain.SellOrder) (*domain.SellReceipt, error) {
	var out domain.SellReceipt
	if err := c.do(ctx, http.MethodPost, c.apiURL+"/wallet/sell", token, nil, order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Purchase(ctx context.Context, token string, order domain.PurchaseOrder) (*domain.PurchaseReceipt, error) {
	var out domain.PurchaseReceipt
	if err := c.do(ctx, http.MethodPost, c.apiURL+"/purchases", token, nil, order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
