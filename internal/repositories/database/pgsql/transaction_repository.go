package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// transactionSelect joins the owning category so list and detail reads come
// back fully hydrated in one round trip.
const transactionSelect = `
    SELECT t.transaction_id, t.owner_id, t.amount, t.type, t.category_id, t.occurred_on, t.description, t.created_at, t.last_updated_at,
           c.category_id, c.owner_id, c.name, c.type, c.icon, c.color, c.created_at, c.last_updated_at
    FROM transactions t
    JOIN categories c ON c.category_id = t.category_id
`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var cat domain.Category
	err := row.Scan(
		&txn.TransactionID,
		&txn.OwnerID,
		&txn.Amount,
		&txn.Type,
		&txn.CategoryID,
		&txn.Date,
		&txn.Description,
		&txn.CreatedAt,
		&txn.LastUpdatedAt,
		&cat.CategoryID,
		&cat.OwnerID,
		&cat.Name,
		&cat.Type,
		&cat.Icon,
		&cat.Color,
		&cat.CreatedAt,
		&cat.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	txn.Category = &cat
	return &txn, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	query := `
        INSERT INTO transactions (transaction_id, owner_id, amount, type, category_id, occurred_on, description, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		transaction.TransactionID,
		transaction.OwnerID,
		transaction.Amount,
		transaction.Type,
		transaction.CategoryID,
		transaction.Date,
		transaction.Description,
		transaction.CreatedAt,
		transaction.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", transaction.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string, ownerID string) (*domain.Transaction, error) {
	query := transactionSelect + ` WHERE t.transaction_id = $1 AND t.owner_id = $2;`
	txn, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(transactionSelect)
	sb.WriteString(` WHERE t.owner_id = $1`)
	args := []any{ownerID}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		sb.WriteString(` AND t.type = $` + strconv.Itoa(len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		sb.WriteString(` AND t.occurred_on >= $` + strconv.Itoa(len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		sb.WriteString(` AND t.occurred_on <= $` + strconv.Itoa(len(args)))
	}
	sb.WriteString(` ORDER BY t.occurred_on DESC, t.created_at DESC;`)

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return transactions, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transaction domain.Transaction) error {
	query := `
        UPDATE transactions
        SET amount = $1, type = $2, category_id = $3, occurred_on = $4, description = $5, last_updated_at = $6
        WHERE transaction_id = $7 AND owner_id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		transaction.Amount,
		transaction.Type,
		transaction.CategoryID,
		transaction.Date,
		transaction.Description,
		transaction.LastUpdatedAt,
		transaction.TransactionID,
		transaction.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", transaction.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, ownerID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND owner_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, transactionID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
