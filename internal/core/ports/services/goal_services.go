package services

import (
	"context"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

// GoalSvcFacade orchestrates goal CRUD. Updates merge the payload over the
// stored record and re-derive the status from the merged type and amounts.
type GoalSvcFacade interface {
	ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, ownerID string, req dto.CreateGoalRequest) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, ownerID string, req dto.UpdateGoalRequest) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, ownerID string, goalID string) error
}
