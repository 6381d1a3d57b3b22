package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors CategoryType; a transaction should reference a
// category of the same type.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Transaction is a single income or expense entry.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	OwnerID       string          `json:"ownerID"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	CategoryID    string          `json:"categoryID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	AuditFields
	// Category is populated on reads so list views can render the label
	// without a second round trip.
	Category *Category `json:"category,omitempty"`
}
