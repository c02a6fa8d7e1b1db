// Package identity registers and authenticates users by display name and
// issues the session tokens the rest of the service trusts.
package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/monocle-dev/huddle/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByName(ctx context.Context, name string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type Service struct {
	users  UserStore
	cost   int
	logger *zap.Logger
}

func NewService(users UserStore, logger *zap.Logger) *Service {
	return &Service{users: users, cost: bcrypt.DefaultCost, logger: logger}
}

func (s *Service) Register(ctx context.Context, name, secret string) (Identity, error) {
	name = strings.TrimSpace(name)
	if name == "" || secret == "" {
		return Identity{}, apperrors.Validation(apperrors.MsgMissingFields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return Identity{}, apperrors.Validation(apperrors.MsgSecretTooLong)
	}
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return Identity{}, apperrors.Persistence(err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		DisplayName:  name,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return Identity{}, err
	}

	return Identity{ID: user.ID, Name: user.DisplayName}, nil
}

// Authenticate does not distinguish an unknown name from a wrong secret.
func (s *Service) Authenticate(ctx context.Context, name, secret string) (Identity, error) {
	user, err := s.users.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return Identity{}, apperrors.Auth(apperrors.MsgInvalidCredentials)
		}
		return Identity{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)); err != nil {
		return Identity{}, apperrors.Auth(apperrors.MsgInvalidCredentials)
	}

	return Identity{ID: user.ID, Name: user.DisplayName}, nil
}

func (s *Service) Lookup(ctx context.Context, id string) (Identity, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return Identity{}, err
	}
	return Identity{ID: user.ID, Name: user.DisplayName}, nil
}
