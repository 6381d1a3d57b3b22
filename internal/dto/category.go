package dto

import (
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name  string              `json:"name" binding:"required"`
	Type  domain.CategoryType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Icon  string              `json:"icon"`
	Color string              `json:"color"`
}

// UpdateCategoryRequest defines the fields that may be merged over an
// existing category. The type is immutable once transactions may reference it.
type UpdateCategoryRequest struct {
	ID    string  `json:"id" binding:"required"`
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// CategoryResponse mirrors domain.Category.
type CategoryResponse struct {
	CategoryID string              `json:"id"`
	Name       string              `json:"name"`
	Type       domain.CategoryType `json:"type"`
	Icon       string              `json:"icon"`
	Color      string              `json:"color"`
}

// ToCategoryResponse converts a domain.Category to its DTO.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: cat.CategoryID,
		Name:       cat.Name,
		Type:       cat.Type,
		Icon:       cat.Icon,
		Color:      cat.Color,
	}
}

// ToListCategoryResponse converts a slice of categories.
func ToListCategoryResponse(cats []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(cats))
	for i := range cats {
		res[i] = ToCategoryResponse(&cats[i])
	}
	return res
}
