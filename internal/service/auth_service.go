package service

import (
	"fmt"

	"escapehint/internal/security"
)

// AuthService authenticates the single shared admin credential and
// issues bearer tokens for it
type AuthService struct {
	passwordHash string
	tokens       *security.TokenIssuer
}

// NewAuthService hashes the configured admin password and wires the
// token issuer
func NewAuthService(adminPassword string, tokens *security.TokenIssuer) (*AuthService, error) {
	hash, err := security.HashPassword(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &AuthService{passwordHash: hash, tokens: tokens}, nil
}

// Login checks the admin password and returns a signed token
func (s *AuthService) Login(password string) (string, error) {
	if !security.CheckPassword(s.passwordHash, password) {
		return "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue()
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// VerifyToken checks a bearer token and returns its claims
func (s *AuthService) VerifyToken(token string) (*security.Claims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}
