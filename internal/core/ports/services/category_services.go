package services

import (
	"context"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

// CategorySvcFacade orchestrates category CRUD.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context, ownerID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, ownerID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, ownerID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, ownerID string, categoryID string) error
}
