package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
)

type PgxActivityRepository struct {
	db *pgxpool.Pool
}

func newPgxActivityRepository(db *pgxpool.Pool) portsrepo.ActivityRepository {
	return &PgxActivityRepository{db: db}
}

var _ portsrepo.ActivityRepository = (*PgxActivityRepository)(nil)

func (r *PgxActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	var metadata []byte
	if activity.Metadata != nil {
		var err error
		metadata, err = json.Marshal(activity.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal activity metadata: %w", err)
		}
	}
	query := `
        INSERT INTO activities (activity_id, owner_id, type, action, description, metadata, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		activity.ActivityID,
		activity.OwnerID,
		activity.Type,
		activity.Action,
		activity.Description,
		metadata,
		activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save activity %s: %w", activity.ActivityID, err)
	}
	return nil
}

func (r *PgxActivityRepository) ListRecentActivities(ctx context.Context, ownerID string, limit int) ([]domain.Activity, error) {
	query := `
        SELECT activity_id, owner_id, type, action, description, metadata, created_at
        FROM activities
        WHERE owner_id = $1
        ORDER BY created_at DESC
        LIMIT $2;
    `
	rows, err := r.db.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		var activity domain.Activity
		var metadata []byte
		if err := rows.Scan(
			&activity.ActivityID,
			&activity.OwnerID,
			&activity.Type,
			&activity.Action,
			&activity.Description,
			&metadata,
			&activity.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &activity.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal activity metadata: %w", err)
			}
		}
		activities = append(activities, activity)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", rows.Err())
	}
	return activities, nil
}
