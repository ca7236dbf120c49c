package models

// TransactionType represents the direction of a wallet transaction
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

// WalletTransaction is one entry of the wallet log. Amount is always positive;
// Type carries the direction.
type WalletTransaction struct {
	Amount      int64           `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// Wallet is the single mock wallet. Transactions are kept newest first.
type Wallet struct {
	Balance      int64               `json:"balance"`
	Transactions []WalletTransaction `json:"transactions"`
}
