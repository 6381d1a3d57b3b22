package repositories

import (
	"context"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
)

// GoalRepository persists goals. Single-row lookups are constrained to
// (goal_id, owner_id).
type GoalRepository interface {
	SaveGoal(ctx context.Context, goal domain.Goal) error
	FindGoalByID(ctx context.Context, goalID string, ownerID string) (*domain.Goal, error)
	// ListGoals returns the owner's goals, newest first, with categories hydrated.
	ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, goal domain.Goal) error
	DeleteGoal(ctx context.Context, goalID string, ownerID string) error
}
