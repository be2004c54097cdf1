package domain

// AdminUser is a user record as seen from the back-office.
type AdminUser struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	IsAdmin       bool   `json:"is_admin"`
	IsBlocked     bool   `json:"is_blocked"`
	BlockedReason string `json:"blocked_reason,omitempty"`
	BlockedAt     string `json:"blocked_at,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

type Pagination struct {
	Total       int `json:"total"`
	Count       int `json:"count,omitempty"`
	PerPage     int `json:"per_page,omitempty"`
	CurrentPage int `json:"current_page,omitempty"`
	LastPage    int `json:"last_page,omitempty"`
}

type AdminWallet struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	WalletAddress  string     `json:"wallet_address"`
	TotalValueUSD  string     `json:"total_value_usd"`
	IsActive       int        `json:"is_active"`
	IsFrozen       bool       `json:"is_frozen"`
	FrozenAt       *string    `json:"frozen_at"`
	FrozenReason   *string    `json:"frozen_reason"`
	LastActivityAt *string    `json:"last_activity_at"`
	BalancesCount  int        `json:"balances_count,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
	User           *AdminUser `json:"user,omitempty"`
}

type UserListing struct {
	Users      []AdminUser `json:"users"`
	Pagination Pagination  `json:"pagination"`
}

type WalletListing struct {
	Wallets    []AdminWallet `json:"wallets"`
	Pagination Pagination    `json:"pagination"`
}

// TransactionDetail is a ledger entry as listed in the back-office.
type TransactionDetail struct {
	ID             int64          `json:"id"`
	UUID           string         `json:"uuid"`
	Type           string         `json:"type"`
	Sender         AdminUser      `json:"sender"`
	Receiver       *AdminUser     `json:"receiver"`
	Cryptocurrency Cryptocurrency `json:"cryptocurrency"`
	Amount         string         `json:"amount"`
	FeeAmount      string         `json:"fee_amount"`
	USDValueAtTime *string        `json:"usd_value_at_time"`
	Status         string         `json:"status"`
	StatusReason   *string        `json:"status_reason"`
	CreatedAt      string         `json:"created_at"`
	CompletedAt    *string        `json:"completed_at"`
}

type TransactionListing struct {
	Transactions []TransactionDetail `json:"transactions"`
	Total        int                 `json:"total"`
	Pagination   *Pagination         `json:"pagination,omitempty"`
}

// ListFilter carries the common search/sort/paging knobs of back-office lists.
// Flags holds optional boolean filters (is_blocked, is_admin, is_frozen) and
// Fields the free-form ones (status, type).
type ListFilter struct {
	Search    string
	SortBy    string
	SortOrder string
	PerPage   int
	Page      int
	Flags     map[string]bool
	Fields    map[string]string
}
