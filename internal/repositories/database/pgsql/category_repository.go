package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
)

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{db: db}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

const categoryInsert = `
    INSERT INTO categories (category_id, owner_id, name, type, icon, color, created_at, last_updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	_, err := r.db.Exec(ctx, categoryInsert,
		category.CategoryID,
		category.OwnerID,
		category.Name,
		category.Type,
		category.Icon,
		category.Color,
		category.CreatedAt,
		category.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save category %s: %w", category.CategoryID, err)
	}
	return nil
}

func (r *PgxCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	if len(categories) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, category := range categories {
		batch.Queue(categoryInsert,
			category.CategoryID,
			category.OwnerID,
			category.Name,
			category.Type,
			category.Icon,
			category.Color,
			category.CreatedAt,
			category.LastUpdatedAt,
		)
	}
	br := r.db.SendBatch(ctx, batch)
	defer br.Close()
	for range categories {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to save category batch: %w", err)
		}
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string, ownerID string) (*domain.Category, error) {
	query := `
        SELECT category_id, owner_id, name, type, icon, color, created_at, last_updated_at
        FROM categories
        WHERE category_id = $1 AND owner_id = $2;
    `
	var cat domain.Category
	err := r.db.QueryRow(ctx, query, categoryID, ownerID).Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	return &cat, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, ownerID string) ([]domain.Category, error) {
	query := `
        SELECT category_id, owner_id, name, type, icon, color, created_at, last_updated_at
        FROM categories
        WHERE owner_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(
			&cat.CategoryID,
			&cat.OwnerID,
			&cat.Name,
			&cat.Type,
			&cat.Icon,
			&cat.Color,
			&cat.CreatedAt,
			&cat.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, cat)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
        UPDATE categories
        SET name = $1, icon = $2, color = $3, last_updated_at = $4
        WHERE category_id = $5 AND owner_id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		category.Name,
		category.Icon,
		category.Color,
		category.LastUpdatedAt,
		category.CategoryID,
		category.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string, ownerID string) error {
	query := `DELETE FROM categories WHERE category_id = $1 AND owner_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, categoryID, ownerID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("category %s is still referenced by transactions: %w", categoryID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
