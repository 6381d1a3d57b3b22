package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
	"github.com/lifetrackhq/lifetrack_backend/internal/platform/config"
)

// AuthHandler serves registration, login and refresh-token endpoints.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService, cfg: cfg}
}

// Register creates a new local-credentials account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login verifies credentials, returns an access token and sets the refresh
// token cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	user, err := h.userService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondWithError(c, err)
		return
	}
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.setRefreshTokenCookie(c, user.UserID, refreshToken)
	c.JSON(http.StatusOK, services.BuildLoginResponse(accessToken, expiresAt, user))
}

// Refresh exchanges a valid refresh-token cookie for a new token pair. The
// old refresh token is rotated.
func (h *AuthHandler) Refresh(c *gin.Context) {
	userID, refreshToken, ok := h.readRefreshTokenCookie(c)
	if !ok {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}

	ctx := c.Request.Context()
	user, err := h.tokenService.ValidateAndParseRefreshToken(ctx, userID, refreshToken)
	if err != nil {
		h.clearRefreshTokenCookie(c)
		respondWithError(c, err)
		return
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondWithError(c, err)
		return
	}
	newRefreshToken, _, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.setRefreshTokenCookie(c, user.UserID, newRefreshToken)
	c.JSON(http.StatusOK, services.BuildLoginResponse(accessToken, expiresAt, user))
}

// Logout clears the stored refresh token and its cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if userID, _, ok := h.readRefreshTokenCookie(c); ok {
		// Best effort; an already-cleared token still logs the caller out.
		_ = h.userService.ClearRefreshToken(c.Request.Context(), userID)
	}
	h.clearRefreshTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// The cookie value carries the user id alongside the opaque token so refresh
// does not require a live access token. Neither part contains a dot.
func (h *AuthHandler) setRefreshTokenCookie(c *gin.Context, userID, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		userID+"."+token,
		int(h.cfg.RefreshTokenExpiryDuration.Seconds()),
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)
}

func (h *AuthHandler) readRefreshTokenCookie(c *gin.Context) (userID, token string, ok bool) {
	value, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || value == "" {
		return "", "", false
	}
	parts := strings.SplitN(value, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func (h *AuthHandler) clearRefreshTokenCookie(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}
