package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
)

type PgxGoalRepository struct {
	db *pgxpool.Pool
}

func newPgxGoalRepository(db *pgxpool.Pool) portsrepo.GoalRepository {
	return &PgxGoalRepository{db: db}
}

var _ portsrepo.GoalRepository = (*PgxGoalRepository)(nil)

// goalSelect left-joins the optional scoping category.
const goalSelect = `
    SELECT g.goal_id, g.owner_id, g.title, g.type, g.target_amount, g.current_amount, g.period, g.category_id, g.status, g.created_at, g.last_updated_at,
           c.category_id, c.owner_id, c.name, c.type, c.icon, c.color, c.created_at, c.last_updated_at
    FROM goals g
    LEFT JOIN categories c ON c.category_id = g.category_id
`

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var goal domain.Goal
	var goalCategoryID *string
	var catID, catOwner, catName, catIcon, catColor *string
	var catType *domain.CategoryType
	var catCreated, catUpdated *time.Time
	err := row.Scan(
		&goal.GoalID,
		&goal.OwnerID,
		&goal.Title,
		&goal.Type,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.Period,
		&goalCategoryID,
		&goal.Status,
		&goal.CreatedAt,
		&goal.LastUpdatedAt,
		&catID,
		&catOwner,
		&catName,
		&catType,
		&catIcon,
		&catColor,
		&catCreated,
		&catUpdated,
	)
	if err != nil {
		return nil, err
	}
	if goalCategoryID != nil {
		goal.CategoryID = *goalCategoryID
	}
	if catID != nil {
		goal.Category = &domain.Category{
			CategoryID: *catID,
			OwnerID:    *catOwner,
			Name:       *catName,
			Type:       *catType,
			Icon:       *catIcon,
			Color:      *catColor,
			AuditFields: domain.AuditFields{
				CreatedAt:     *catCreated,
				LastUpdatedAt: *catUpdated,
			},
		}
	}
	return &goal, nil
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	query := `
        INSERT INTO goals (goal_id, owner_id, title, type, target_amount, current_amount, period, category_id, status, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		goal.GoalID,
		goal.OwnerID,
		goal.Title,
		goal.Type,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Period,
		goal.CategoryID,
		goal.Status,
		goal.CreatedAt,
		goal.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal %s: %w", goal.GoalID, err)
	}
	return nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string, ownerID string) (*domain.Goal, error) {
	query := goalSelect + ` WHERE g.goal_id = $1 AND g.owner_id = $2;`
	goal, err := scanGoal(r.db.QueryRow(ctx, query, goalID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}
	return goal, nil
}

func (r *PgxGoalRepository) ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	query := goalSelect + ` WHERE g.owner_id = $1 ORDER BY g.created_at DESC;`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, *goal)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", rows.Err())
	}
	return goals, nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	query := `
        UPDATE goals
        SET title = $1, type = $2, target_amount = $3, current_amount = $4, period = $5, category_id = NULLIF($6, ''), status = $7, last_updated_at = $8
        WHERE goal_id = $9 AND owner_id = $10;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		goal.Title,
		goal.Type,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Period,
		goal.CategoryID,
		goal.Status,
		goal.LastUpdatedAt,
		goal.GoalID,
		goal.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", goal.GoalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID string, ownerID string) error {
	query := `DELETE FROM goals WHERE goal_id = $1 AND owner_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, goalID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
