package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

type adminUserData struct {
	User *domain.AdminUser `json:"user"`
}

type adminUsersData struct {
	Users []domain.AdminUser `json:"users"`
	Count int                `json:"count"`
}

type adminWalletData struct {
	Wallet *domain.AdminWallet `json:"wallet"`
}

type blockRequest struct {
	UserID int64  `json:"user_id"`
	Reason string `json:"reason,omitempty"`
}

type freezeRequest struct {
	WalletID int64  `json:"wallet_id"`
	Reason   string `json:"reason,omitempty"`
}

func (c *Client) Users(ctx context.Context, token string, filter domain.ListFilter) (*domain.UserListing, error) {
	var env envelope[domain.UserListing]
	if err := c.do(ctx, http.MethodGet, c.apiURL+"/admin/users", token, listQuery(filter), nil, &env); err != nil {
		return nil, err
	}
	return unwrap(&env)
}

func (c *Client) User(ctx context.Context, token string, id int64) (*domain.AdminUser, error) {
	return c.adminUser(ctx, http.MethodGet, fmt.Sprintf("%s/admin/users/%d", c.apiURL, id), token, nil)
}

func (c *Client) BlockedUsers(ctx context.Context, token string) ([]domain.AdminUser, error) {
	var env envelope[adminUsersData]
	if err := c.do(ctx, http.MethodGet, c.apiURL+"/admin/users/blocked", token, nil, nil, &env); err != nil {
		return nil, err
	}
	data, err := unwrap(&env)
	if err != nil {
		return nil, err
	}
	if data.Users == nil {
		return []domain.AdminUser{}, nil
	}
	return data.Users, nil
}

func (c *Client) BlockUser(ctx context.Context, token string, id int64, reason string) (*domain.AdminUser, error) {
	return c.adminUser(ctx, http.MethodPost, c.apiURL+"/admin/users/block", token, blockRequest{UserID: id, Reason: reason})
}

func (c *Client) UnblockUser(ctx context.Context, token string, id int64) (*domain.AdminUser, error) {
	return c.adminUser(ctx, http.MethodPost, c.apiURL+"/admin/users/unblock", token, blockRequest{UserID: id})
}

func (c *Client) Wallets(ctx context.Context, token string, filter domain.ListFilter) (*domain.WalletListing, error) {
	var env envelope[domain.WalletListing]
	if err := c.do(ctx, http.MethodGet, c.apiURL+"/admin/wallets", token, listQuery(filter), nil, &env); err != nil {
		return nil, err
	}
	return unwrap(&env)
}

func (c *Client) Wallet(ctx context.Context, token string, id int64) (*domain.AdminWallet, error) {
	return c.adminWallet(ctx, http.MethodGet, fmt.Sprintf("%s/admin/wallets/%d", c.apiURL, id), token, nil)
}

func (c *Client) FreezeWallet(ctx context.Context, token string, id int64, reason string) (*domain.AdminWallet, error) {
	return c.adminWallet(ctx, http.MethodPost, c.apiURL+"/admin/wallets/freeze", token, freezeRequest{WalletID: id, Reason: reason})
}

func (c *Client) UnfreezeWallet(ctx context.Context, token string, id int64) (*domain.AdminWallet, error) {
	return c.adminWallet(ctx, http.MethodPost, c.apiURL+"/admin/wallets/unfreeze", token, freezeRequest{WalletID: id})
}

func (c *Client) adminUser(ctx context.Context, method, endpoint, token string, body any) (*domain.AdminUser, error) {
	var env envelope[adminUserData]
	if err := c.do(ctx, method, endpoint, token, nil, body, &env); err != nil {
		return nil, err
	}
	data, err := unwrap(&env)
	if err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, fmt.Errorf("%w: missing user", domain.ErrMalformedResponse)
	}
	return data.User, nil
}

func (c *Client) adminWallet(ctx context.Context, method, endpoint, token string, body any) (*domain.AdminWallet, error) {
	var env envelope[adminWalletData]
	if err := c.do(ctx, method, endpoint, token, nil, body, &env); err != nil {
		return nil, err
	}
	data, err := unwrap(&env)
	if err != nil {
		return nil, err
	}
	if data.Wallet == nil {
		return nil, fmt.Errorf("%w: missing wallet", domain.ErrMalformedResponse)
	}
	return data.Wallet, nil
}
