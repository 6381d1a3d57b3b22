package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
	"github.com/shopspring/decimal"
)

type goalService struct {
	BaseService
	goalRepo     portsrepo.GoalRepository
	categoryRepo portsrepo.CategoryRepository
	recorder     portssvc.ActivityRecorderSvc
}

// NewGoalService creates a GoalSvcFacade.
func NewGoalService(
	goalRepo portsrepo.GoalRepository,
	categoryRepo portsrepo.CategoryRepository,
	recorder portssvc.ActivityRecorderSvc,
) portssvc.GoalSvcFacade {
	return &goalService{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
		recorder:     recorder,
	}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	return s.goalRepo.ListGoals(ctx, ownerID)
}

// checkCategoryRef verifies an optional category reference belongs to the caller.
func (s *goalService) checkCategoryRef(ctx context.Context, ownerID, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID, ownerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("category %s not found: %w", categoryID, apperrors.ErrValidation)
		}
		return err
	}
	return nil
}

func (s *goalService) CreateGoal(ctx context.Context, ownerID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("target amount must be greater than zero: %w", apperrors.ErrValidation)
	}
	categoryID := ""
	if req.CategoryID != nil {
		categoryID = *req.CategoryID
	}
	if err := s.checkCategoryRef(ctx, ownerID, categoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		OwnerID:       ownerID,
		Title:         req.Title,
		Type:          req.Type,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Period:        req.Period,
		CategoryID:    categoryID,
		Status:        domain.StatusSafe,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "failed to create goal", "ownerID", ownerID)
		return nil, err
	}

	s.recorder.Record(ownerID, domain.ActivityGoal, domain.ActionCreated,
		fmt.Sprintf("Created %s goal: %s", goal.Type, goal.Title),
		map[string]any{"goalId": goal.GoalID})
	return &goal, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, ownerID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, req.ID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Type != nil {
		goal.Type = *req.Type
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Period != nil {
		goal.Period = *req.Period
	}
	if req.CategoryID != nil {
		// Empty string clears the reference, anything else re-points it.
		goal.CategoryID = *req.CategoryID
		goal.Category = nil
	}

	if goal.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("target amount must be greater than zero: %w", apperrors.ErrValidation)
	}
	if err := s.checkCategoryRef(ctx, ownerID, goal.CategoryID); err != nil {
		return nil, err
	}

	// Status is derived from the merged values, never taken from the payload.
	status, err := domain.EvaluateGoalStatus(goal.Type, goal.CurrentAmount, goal.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate goal status: %w", apperrors.ErrValidation)
	}
	goal.Status = status
	goal.LastUpdatedAt = time.Now().UTC()

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "failed to update goal", "goalID", req.ID)
		return nil, err
	}

	s.recorder.Record(ownerID, domain.ActivityGoal, domain.ActionUpdated,
		fmt.Sprintf("Updated goal: %s", goal.Title),
		map[string]any{"goalId": goal.GoalID, "status": string(goal.Status)})
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, ownerID string, goalID string) error {
	// Fetch first so the activity entry can describe what was removed.
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID, ownerID)
	if err != nil {
		return err
	}
	if err := s.goalRepo.DeleteGoal(ctx, goalID, ownerID); err != nil {
		return err
	}
	s.recorder.Record(ownerID, domain.ActivityGoal, domain.ActionDeleted,
		fmt.Sprintf("Deleted goal: %s", goal.Title),
		map[string]any{"goalId": goalID})
	return nil
}
