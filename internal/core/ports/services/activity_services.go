package services

import (
	"context"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
)

// ActivityRecorderSvc accepts best-effort audit entries after successful
// mutations. Record must not block the caller and must never fail it: a full
// queue or a storage error is logged and swallowed.
type ActivityRecorderSvc interface {
	Record(ownerID string, activityType domain.ActivityType, action domain.ActivityAction, description string, metadata map[string]any)
	// Close stops accepting entries and drains what was already queued.
	Close()
}

// ActivitySvcFacade additionally serves the display-only activity feed.
type ActivitySvcFacade interface {
	ActivityRecorderSvc
	ListRecent(ctx context.Context, ownerID string, limit int) ([]domain.Activity, error)
}
