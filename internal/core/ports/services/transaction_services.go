package services

import (
	"context"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

// TransactionSvcFacade orchestrates transaction CRUD for one principal.
// Every id-addressed operation is ownership-guarded: a transaction that is
// missing or owned by someone else fails with apperrors.ErrNotFound.
type TransactionSvcFacade interface {
	ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, ownerID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error
}
