package dto

import (
	"time"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a goal.
type CreateGoalRequest struct {
	Title        string            `json:"title" binding:"required"`
	Type         domain.GoalType   `json:"type" binding:"required,oneof=SAVING SPENDING_LIMIT"`
	TargetAmount decimal.Decimal   `json:"targetAmount" binding:"required,dpositive"`
	Period       domain.GoalPeriod `json:"period" binding:"required,oneof=MONTHLY YEARLY"`
	CategoryID   *string           `json:"categoryId"`
}

// UpdateGoalRequest merges over an existing goal. CategoryID distinguishes
// three cases: nil leaves the reference untouched, an empty string clears it,
// anything else re-points it.
type UpdateGoalRequest struct {
	ID            string             `json:"id" binding:"required"`
	Title         *string            `json:"title"`
	Type          *domain.GoalType   `json:"type" binding:"omitempty,oneof=SAVING SPENDING_LIMIT"`
	TargetAmount  *decimal.Decimal   `json:"targetAmount" binding:"omitempty,dpositive"`
	CurrentAmount *decimal.Decimal   `json:"currentAmount" binding:"omitempty,dnonnegative"`
	Period        *domain.GoalPeriod `json:"period" binding:"omitempty,oneof=MONTHLY YEARLY"`
	CategoryID    *string            `json:"categoryId"`
}

// GoalResponse mirrors domain.Goal with its category embedded when set.
type GoalResponse struct {
	GoalID        string            `json:"id"`
	Title         string            `json:"title"`
	Type          domain.GoalType   `json:"type"`
	TargetAmount  decimal.Decimal   `json:"targetAmount"`
	CurrentAmount decimal.Decimal   `json:"currentAmount"`
	Period        domain.GoalPeriod `json:"period"`
	CategoryID    string            `json:"categoryId,omitempty"`
	Status        domain.GoalStatus `json:"status"`
	Category      *CategoryResponse `json:"category,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"updatedAt"`
}

// ToGoalResponse converts a domain.Goal to its DTO.
func ToGoalResponse(goal *domain.Goal) GoalResponse {
	resp := GoalResponse{
		GoalID:        goal.GoalID,
		Title:         goal.Title,
		Type:          goal.Type,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Period:        goal.Period,
		CategoryID:    goal.CategoryID,
		Status:        goal.Status,
		CreatedAt:     goal.CreatedAt,
		LastUpdatedAt: goal.LastUpdatedAt,
	}
	if goal.Category != nil {
		cat := ToCategoryResponse(goal.Category)
		resp.Category = &cat
	}
	return resp
}

// ToListGoalResponse converts a slice of goals.
func ToListGoalResponse(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}
