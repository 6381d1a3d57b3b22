package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
	"github.com/lifetrackhq/lifetrack_backend/internal/platform/config"
	"github.com/lifetrackhq/lifetrack_backend/internal/utils"
)

// refreshTokenBytes sizes the opaque refresh token; 32 bytes of entropy
// hex-encodes to 64 characters.
const refreshTokenBytes = 32

type tokenService struct {
	BaseService
	cfg     *config.Config
	userSvc portssvc.UserSvcFacade
}

// NewTokenService creates a TokenSvcFacade issuing HS256 access tokens and
// opaque refresh tokens.
func NewTokenService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userSvc: userSvc}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to generate access token", "userID", user.UserID)
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiresAt, nil
}

// GenerateRefreshToken mints an opaque token, stores its hash on the user row
// and returns the plaintext to be set as a cookie.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, err := utils.GenerateSecureRandomString(refreshTokenBytes)
	if err != nil {
		s.LogError(ctx, err, "failed to generate refresh token", "userID", user.UserID)
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	expiresAt := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userSvc.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(token), expiresAt); err != nil {
		s.LogError(ctx, err, "failed to store refresh token hash", "userID", user.UserID)
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error) {
	user, err := s.userSvc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if user.RefreshTokenHash == "" || !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}
	if user.RefreshTokenExpiryTime == nil || time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	return user, nil
}

// BuildLoginResponse bundles a fresh access token with the user's public view.
func BuildLoginResponse(token string, expiresAt time.Time, user *domain.User) dto.LoginResponse {
	return dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}
}
