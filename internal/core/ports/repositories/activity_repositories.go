package repositories

import (
	"context"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
)

// ActivityRepository persists the append-only activity log. Entries are never
// updated or deleted.
type ActivityRepository interface {
	SaveActivity(ctx context.Context, activity domain.Activity) error
	// ListRecentActivities returns the owner's newest entries for display.
	ListRecentActivities(ctx context.Context, ownerID string, limit int) ([]domain.Activity, error)
}
