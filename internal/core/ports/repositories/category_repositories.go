package repositories

import (
	"context"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
)

// CategoryRepository persists categories. Single-row lookups are constrained
// to (category_id, owner_id) so a category owned by someone else reads as
// apperrors.ErrNotFound.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	// SaveCategories inserts a batch in one statement; used to seed the
	// default set at registration.
	SaveCategories(ctx context.Context, categories []domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string, ownerID string) (*domain.Category, error)
	ListCategories(ctx context.Context, ownerID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string, ownerID string) error
}
