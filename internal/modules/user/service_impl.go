package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/georgemunganga/venuehub-backend/internal/platform/identity"
	"github.com/georgemunganga/venuehub-backend/internal/platform/validate"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RegisterUser(ctx context.Context, req RegisterRequest) (*User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	role := identity.RoleUser
	if req.Role != "" {
		role = identity.Role(req.Role)
	}
	return s.create(ctx, req.Email, req.Password, req.Name, req.Phone, role)
}

func (s *service) create(ctx context.Context, email, password, name, phone string, role identity.Role) (*User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hashedPassword),
		Name:         strings.TrimSpace(name),
		Phone:        strings.TrimSpace(phone),
		Role:         role,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *service) ListUsers(ctx context.Context, f ListFilter) ([]*User, int64, error) {
	return s.repo.ListUsers(ctx, f)
}

func (s *service) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}
	_, err := s.repo.GetUserByEmail(ctx, strings.ToLower(email))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return false, err
	}
	if _, err := s.create(ctx, email, password, "Administrator", "", identity.RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}
