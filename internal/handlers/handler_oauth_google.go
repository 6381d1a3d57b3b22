package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/platform/config"
)

const oauthStateCookieName = "oauth_state"

// GoogleOAuthHandler drives the Google sign-in flow.
type GoogleOAuthHandler struct {
	oauthService portssvc.GoogleOAuthSvcFacade
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewGoogleOAuthHandler creates a GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	oauthService portssvc.GoogleOAuthSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cfg *config.Config,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		oauthService: oauthService,
		userService:  userService,
		tokenService: tokenService,
		cfg:          cfg,
	}
}

// Login redirects the browser to Google's consent screen with a CSRF state
// cookie set.
func (h *GoogleOAuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	state, err := h.oauthService.GenerateStateString(ctx)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.SetCookie(oauthStateCookieName, state, 300, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.GetLoginURL(ctx, state))
}

// Callback completes the flow: it validates the state, exchanges the code,
// resolves the user and redirects back to the frontend with a session.
func (h *GoogleOAuthHandler) Callback(c *gin.Context) {
	expectedState, err := c.Cookie(oauthStateCookieName)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code query parameter is required"})
		return
	}

	ctx := c.Request.Context()
	oauthToken, err := h.oauthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}
	info, err := h.oauthService.GetUserInfo(ctx, oauthToken)
	if err != nil {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, *info)
	if err != nil {
		respondWithError(c, err)
		return
	}

	refreshToken, _, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		user.UserID+"."+refreshToken,
		int(h.cfg.RefreshTokenExpiryDuration.Seconds()),
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)

	c.Redirect(http.StatusTemporaryRedirect, h.cfg.FrontendBaseURL+"/auth/callback")
}
