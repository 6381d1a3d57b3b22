package repositories

import (
	"context"
	"time"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. Nil fields are not applied;
// the date range is inclusive on both ends.
type TransactionFilter struct {
	Type      *domain.TransactionType
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionRepository persists transactions. Reads hydrate the referenced
// category; single-row lookups are constrained to (transaction_id, owner_id).
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string, ownerID string) (*domain.Transaction, error)
	// ListTransactions returns the owner's transactions, newest date first.
	ListTransactions(ctx context.Context, ownerID string, filter TransactionFilter) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string, ownerID string) error
}
