package services

import (
	"log/slog"

	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// NewServiceContainer wires every service onto the repositories and optional
// collaborators. cache and publisher may be nil.
func NewServiceContainer(
	cfg *config.Config,
	repos *portsrepo.RepositoryProvider,
	cache *redis.Client,
	publisher ActivityPublisher,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo, repos.CategoryRepo)
	activitySvc := NewActivityService(repos.ActivityRepo, cache, publisher, logger)

	return &portssvc.ServiceContainer{
		User:        userSvc,
		Token:       NewTokenService(cfg, userSvc),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Category:    NewCategoryService(repos.CategoryRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.CategoryRepo, activitySvc),
		Goal:        NewGoalService(repos.GoalRepo, repos.CategoryRepo, activitySvc),
		Note:        NewNoteService(repos.NoteRepo, activitySvc),
		Reminder:    NewReminderService(repos.ReminderRepo, activitySvc),
		Activity:    activitySvc,
	}
}
