package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a CategorySvcFacade.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, ownerID string) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, ownerID)
}

func (s *categoryService) CreateCategory(ctx context.Context, ownerID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now().UTC()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		OwnerID:    ownerID,
		Name:       req.Name,
		Type:       req.Type,
		Icon:       req.Icon,
		Color:      req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "failed to create category", "ownerID", ownerID)
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, ownerID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, req.ID, ownerID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	category.LastUpdatedAt = time.Now().UTC()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "failed to update category", "categoryID", req.ID)
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, ownerID string, categoryID string) error {
	return s.categoryRepo.DeleteCategory(ctx, categoryID, ownerID)
}
