package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

const (
	// TrainingPeaks token endpoint
	TokenURL = "https://oauth.trainingpeaks.com/oauth/token"
)

// Scopes requested at login (space-separated per the token endpoint)
var Scopes = []string{
	"workouts:read workouts:write athlete:profile",
}

// Config holds the OAuth client credentials
type Config struct {
	ClientID     string
	ClientSecret string
}

// NewOAuthConfig creates an oauth2.Config from our Config
func NewOAuthConfig(cfg Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: TokenURL,
		},
		Scopes: Scopes,
	}
}

// AuthResult contains the token and user info from a successful login
type AuthResult struct {
	Token  *oauth2.Token
	UserID int64
}

// Login authenticates with username and password via the resource-owner
// password grant. TrainingPeaks has no public authorization-code flow, so
// this is the direct REST equivalent of the website login form.
func Login(ctx context.Context, cfg *oauth2.Config, username, password string) (*AuthResult, error) {
	token, err := cfg.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("exchanging credentials for token: %w", err)
	}

	return &AuthResult{
		Token:  token,
		UserID: ExtractUserID(token),
	}, nil
}

// ExtractUserID extracts the user ID from the token extras
// TrainingPeaks includes user info in the token response
func ExtractUserID(token *oauth2.Token) int64 {
	if user, ok := token.Extra("user").(map[string]interface{}); ok {
		if id, ok := user["user_id"].(float64); ok {
			return int64(id)
		}
	}
	return 0
}
