package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgemunganga/venuehub-backend/internal/modules/user"
	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/georgemunganga/venuehub-backend/internal/platform/identity"
	"github.com/georgemunganga/venuehub-backend/internal/platform/validate"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperr.ErrUnauthorized)

type service struct {
	userRepo user.Repository
	tokens   *identity.Tokens
}

// NewService creates a new auth service.
func NewService(userRepo user.Repository, tokens *identity.Tokens) Service {
	return &service{userRepo: userRepo, tokens: tokens}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(identity.Principal{UserID: u.ID, Role: u.Role})
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: expiresAt, User: u}, nil
}

func (s *service) Me(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
