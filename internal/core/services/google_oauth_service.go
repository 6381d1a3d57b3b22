package services

import (
	"context"
	"fmt"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/platform/config"
	"github.com/lifetrackhq/lifetrack_backend/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// stateBytes sizes the OAuth state parameter.
const stateBytes = 16

type googleOAuthService struct {
	BaseService
	oauthConfig *oauth2.Config
	clientID    string
}

// NewGoogleOAuthService creates a GoogleOAuthSvcFacade from the configured
// client credentials.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		clientID: cfg.GoogleClientID,
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

func (s *googleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(stateBytes)
	if err != nil {
		s.LogError(ctx, err, "failed to generate oauth state")
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	return state, nil
}

func (s *googleOAuthService) GetLoginURL(ctx context.Context, state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "failed to exchange oauth code")
		return nil, fmt.Errorf("failed to exchange oauth code: %w", err)
	}
	return token, nil
}

// GetUserInfo validates the ID token that rides along with the access token
// and extracts the identity claims.
func (s *googleOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("oauth token response missing id_token")
	}
	payload, err := idtoken.Validate(ctx, rawIDToken, s.clientID)
	if err != nil {
		s.LogError(ctx, err, "failed to validate google id token")
		return nil, fmt.Errorf("failed to validate google id token: %w", err)
	}

	info := &domain.GoogleUserInfo{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	if info.Email == "" {
		return nil, fmt.Errorf("google id token missing email claim")
	}
	return info, nil
}
