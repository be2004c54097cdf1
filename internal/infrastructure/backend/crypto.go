package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

type cryptoListData struct {
	Cryptocurrencies []domain.Cryptocurrency `json:"cryptocurrencies"`
}

type cryptoData struct {
	Cryptocurrency *domain.Cryptocurrency `json:"cryptocurrency"`
}

// Cryptocurrencies lists the assets the backend supports. It is public.
func (c *Client) Cryptocurrencies(ctx context.Context) ([]domain.Cryptocurrency, error) {
	var env envelope[cryptoListData]
	if err := c.do(ctx, http.MethodGet, c.apiURL+"/cryptocurrencies", "", nil, nil, &env); err != nil {
		return nil, err
	}
	data, err := unwrap(&env)
	if err != nil {
		return nil, err
	}
	if data.Cryptocurrencies == nil {
		return []domain.Cryptocurrency{}, nil
	}
	return data.Cryptocurrencies, nil
}

func (c *Client) CreateCryptocurrency(ctx context.Context, token string, in domain.CryptocurrencyInput) (*domain.Cryptocurrency, error) {
	var env envelope[cryptoData]
	if err := c.do(ctx, http.MethodPost, c.apiURL+"/cryptocurrencies", token, nil, in, &env); err != nil {
		return nil, err
	}
	data, err := unwrap(&env)
	if err != nil {
		return nil, err
	}
	if data.Cryptocurrency == nil {
		return nil, fmt.Errorf("%w: missing cryptocurrency", domain.ErrMalformedResponse)
	}
	return data.Cryptocurrency, nil
}

func (c *Client) DeleteCryptocurrency(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/cryptocurrencies/%d", c.apiURL, id), token, nil, nil, nil)
}

// AllTransactions is the back-office ledger listing. Supported filters are
// search, status, type, sorting and paging.
func (c *Client) AllTransactions(ctx context.Context, token string, filter domain.ListFilter) (*domain.TransactionListing, error) {
	var env envelope[domain.TransactionListing]
	if err := c.do(ctx, http.MethodGet, c.apiURL+"/transactions", token, listQuery(filter), nil, &env); err != nil {
		return nil, err
	}
	return unwrap(&env)
}
