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
	"github.com/lifetrackhq/lifetrack_backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo     portsrepo.UserRepository
	categoryRepo portsrepo.CategoryRepository
}

// NewUserService creates a UserSvcFacade backed by the given repositories.
func NewUserService(userRepo portsrepo.UserRepository, categoryRepo portsrepo.CategoryRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, categoryRepo: categoryRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	_, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, fmt.Errorf("email %s already registered: %w", req.Email, apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to check for existing user", "email", req.Email)
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// SaveUser re-checks uniqueness at the database; a concurrent duplicate
	// surfaces as ErrDuplicate here and nothing else is written.
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "failed to save user", "email", req.Email)
		}
		return nil, err
	}

	if err := s.seedDefaultCategories(ctx, user.UserID, now); err != nil {
		// The account exists; category seeding is not worth failing it over.
		s.LogError(ctx, err, "failed to seed default categories", "userID", user.UserID)
	}

	s.LogInfo(ctx, "user registered", "userID", user.UserID)
	return &user, nil
}

func (s *userService) seedDefaultCategories(ctx context.Context, ownerID string, now time.Time) error {
	defaults := domain.DefaultCategories()
	for i := range defaults {
		defaults[i].CategoryID = uuid.NewString()
		defaults[i].OwnerID = ownerID
		defaults[i].CreatedAt = now
		defaults[i].LastUpdatedAt = now
	}
	return s.categoryRepo.SaveCategories(ctx, defaults)
}

func (s *userService) Authenticate(ctx context.Context, email string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "failed to look up user for authentication")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, string(domain.ProviderGoogle), info.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to look up google user")
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	// An existing local account with the same email keeps its identity; the
	// provider details are not linked silently.
	if _, err := s.userRepo.FindUserByEmail(ctx, info.Email); err == nil {
		return nil, fmt.Errorf("email %s already registered: %w", info.Email, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	now := time.Now().UTC()
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Name:           info.Name,
		Email:          info.Email,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: info.Subject,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "failed to save google user")
		return nil, err
	}
	if err := s.seedDefaultCategories(ctx, newUser.UserID, now); err != nil {
		s.LogError(ctx, err, "failed to seed default categories", "userID", newUser.UserID)
	}

	s.LogInfo(ctx, "google user created", "userID", newUser.UserID)
	return &newUser, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}
