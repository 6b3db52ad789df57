package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"eventdirectory/internal/domain"
)

const bcryptCost = 10

type authService struct {
	users        domain.UserDirectory
	tokens       domain.TokenIssuer
	passwordHash []byte
}

// NewAuthService creates an AuthService that checks the shared seeded
// credential and issues tokens for known users. The plaintext seed password is
// hashed once here and never retained.
func NewAuthService(users domain.UserDirectory, tokens domain.TokenIssuer, seedPassword string) (domain.AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}
	return &authService{users: users, tokens: tokens, passwordHash: hash}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user by email: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}
