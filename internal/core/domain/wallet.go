package domain

import "time"

// Balance is the holding of one cryptocurrency inside the user's wallet.
type Balance struct {
	CryptocurrencyID  int64      `json:"cryptocurrency_id"`
	Symbol            string     `json:"symbol"`
	Name              string     `json:"name"`
	Balance           string     `json:"balance"`
	LockedBalance     string     `json:"locked_balance"`
	AvailableBalance  float64    `json:"available_balance"`
	LastTransactionAt *time.Time `json:"last_transaction_at"`
}

type WalletBalance struct {
	Message           string    `json:"message"`
	WalletAddress     string    `json:"wallet_address"`
	Balances          []Balance `json:"balances"`
	TotalBalanceCount int       `json:"total_balance_count"`
}

// Available returns the spendable amount of the given cryptocurrency.
func (w *WalletBalance) Available(cryptocurrencyID int64) float64 {
	for _, b := range w.Balances {
		if b.CryptocurrencyID == cryptocurrencyID {
			return b.AvailableBalance
		}
	}
	return 0
}

type CryptoRef struct {
	ID     int64  `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Transaction is a wallet movement as listed to its owner.
type Transaction struct {
	ID             int64     `json:"id"`
	Type           string    `json:"type"`
	Cryptocurrency CryptoRef `json:"cryptocurrency"`
	Amount         string    `json:"amount"`
	USDValue       *float64  `json:"usd_value"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	Status         string    `json:"status"`
	CompletedAt    string    `json:"completed_at"`
}

type TransactionPage struct {
	Message      string        `json:"message"`
	Transactions []Transaction `json:"transactions"`
	TotalCount   int           `json:"total_count,omitempty"`
	Count        int           `json:"count,omitempty"`
}

type SendOrder struct {
	CryptocurrencyID int64   `json:"cryptocurrency_id"`
	AmountCrypto     float64 `json:"amount_crypto"`
	ToAddress        string  `json:"to_address"`
}

type SendReceipt struct {
	ID               int64   `json:"id"`
	CryptocurrencyID int64   `json:"cryptocurrency_id"`
	AmountCrypto     float64 `json:"amount_crypto"`
	ToAddress        string  `json:"to_address"`
	Status           string  `json:"status"`
	TransactionHash  string  `json:"transaction_hash,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type SellOrder struct {
	CryptocurrencyID int64   `json:"cryptocurrency_id"`
	AmountCrypto     float64 `json:"amount_crypto"`
	PriceUSD         float64 `json:"price_usd"`
}

type SellReceipt struct {
	ID               int64   `json:"id"`
	CryptocurrencyID int64   `json:"cryptocurrency_id"`
	AmountCrypto     float64 `json:"amount_crypto"`
	PriceUSD         float64 `json:"price_usd"`
	TotalUSD         float64 `json:"total_usd"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at"`
}

const DefaultPaymentMethod = "credit_card"

type PurchaseOrder struct {
	CryptocurrencyID int64   `json:"cryptocurrency_id"`
	AmountCrypto     float64 `json:"amount_crypto"`
	AmountUSD        float64 `json:"amount_usd"`
	PaymentMethod    string  `json:"payment_method"`
}

type PurchaseReceipt struct {
	ID               int64   `json:"id"`
	CryptocurrencyID int64   `json:"cryptocurrency_id"`
	AmountCrypto     float64 `json:"amount_crypto"`
	AmountUSD        float64 `json:"amount_usd"`
	PaymentMethod    string  `json:"payment_method"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at"`
}
