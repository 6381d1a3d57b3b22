package repositories

import (
	"context"
	"time"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
)

// UserRepository persists users. Email is unique; SaveUser returns
// apperrors.ErrDuplicate on a conflict.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error)
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
}
