package services

import (
	"context"
	"time"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

// UserSvcFacade manages user accounts and registration.
type UserSvcFacade interface {
	// RegisterUser creates a local-credentials user and seeds the default
	// category set. A duplicate email fails with apperrors.ErrDuplicate and
	// leaves no partial state behind.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Authenticate verifies email+password, returning apperrors.ErrUnauthorized
	// on any mismatch without revealing which part failed.
	Authenticate(ctx context.Context, email string, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindOrCreateGoogleUser resolves an OAuth identity to a local user,
	// creating one (with seeded categories) on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
}
