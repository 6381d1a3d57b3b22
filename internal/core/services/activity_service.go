package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/redis/go-redis/v9"
)

const (
	// recorderQueueSize bounds the in-flight entries; a full queue drops new
	// entries rather than blocking request handling.
	recorderQueueSize = 256
	// persistTimeout caps each background write.
	persistTimeout = 5 * time.Second
	// feedCacheTTL is how long a cached activity feed stays valid.
	feedCacheTTL = 60 * time.Second
	// feedCacheSize is how many entries the cached feed holds; requests for
	// fewer slice it down in memory.
	feedCacheSize = 100
)

// ActivityPublisher fans a persisted entry out to external consumers.
type ActivityPublisher interface {
	PublishActivity(ctx context.Context, activity domain.Activity) error
}

type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityRepository
	cache        *redis.Client
	publisher    ActivityPublisher
	logger       *slog.Logger

	entries   chan domain.Activity
	done      chan struct{}
	closeOnce sync.Once
}

// NewActivityService creates an ActivitySvcFacade and starts its background
// writer. cache and publisher may be nil, disabling the respective feature.
func NewActivityService(
	activityRepo portsrepo.ActivityRepository,
	cache *redis.Client,
	publisher ActivityPublisher,
	logger *slog.Logger,
) portssvc.ActivitySvcFacade {
	s := &activityService{
		activityRepo: activityRepo,
		cache:        cache,
		publisher:    publisher,
		logger:       logger,
		entries:      make(chan domain.Activity, recorderQueueSize),
		done:         make(chan struct{}),
	}
	go s.run()
	return s
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

// Record enqueues an entry without blocking. A full queue drops the entry
// with a warning; callers are never failed by the audit trail.
func (s *activityService) Record(ownerID string, activityType domain.ActivityType, action domain.ActivityAction, description string, metadata map[string]any) {
	activity := domain.Activity{
		ActivityID:  uuid.NewString(),
		OwnerID:     ownerID,
		Type:        activityType,
		Action:      action,
		Description: description,
		Metadata:    metadata,
		CreatedAt:   time.Now().UTC(),
	}
	select {
	case s.entries <- activity:
	default:
		s.logger.Warn("activity queue full, dropping entry",
			"ownerID", ownerID, "type", activityType, "action", action)
	}
}

func (s *activityService) run() {
	defer close(s.done)
	for activity := range s.entries {
		s.persist(activity)
	}
}

func (s *activityService) persist(activity domain.Activity) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.activityRepo.SaveActivity(ctx, activity); err != nil {
		s.logger.Error("failed to persist activity entry",
			"error", err, "activityID", activity.ActivityID)
		return
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, feedCacheKey(activity.OwnerID)).Err(); err != nil {
			s.logger.Warn("failed to invalidate activity feed cache",
				"error", err, "ownerID", activity.OwnerID)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishActivity(ctx, activity); err != nil {
			s.logger.Warn("failed to publish activity event",
				"error", err, "activityID", activity.ActivityID)
		}
	}
}

// Close stops accepting entries and waits for queued ones to be written.
func (s *activityService) Close() {
	s.closeOnce.Do(func() {
		close(s.entries)
		<-s.done
	})
}

func feedCacheKey(ownerID string) string {
	return fmt.Sprintf("activities:%s", ownerID)
}

// ListRecent serves the activity feed, reading through a per-owner cache of
// the newest entries when one is configured.
func (s *activityService) ListRecent(ctx context.Context, ownerID string, limit int) ([]domain.Activity, error) {
	if limit <= 0 || limit > feedCacheSize {
		limit = feedCacheSize
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, feedCacheKey(ownerID)).Bytes(); err == nil {
			var activities []domain.Activity
			if err := json.Unmarshal(cached, &activities); err == nil {
				if len(activities) > limit {
					activities = activities[:limit]
				}
				return activities, nil
			}
		}
	}

	activities, err := s.activityRepo.ListRecentActivities(ctx, ownerID, feedCacheSize)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(activities); err == nil {
			if err := s.cache.Set(ctx, feedCacheKey(ownerID), payload, feedCacheTTL).Err(); err != nil {
				s.LogWarn(ctx, "failed to cache activity feed", "ownerID", ownerID, "error", err)
			}
		}
	}

	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}
