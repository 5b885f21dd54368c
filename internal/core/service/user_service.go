package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/losdealla/members-api/internal/core/domain"
	"github.com/losdealla/members-api/internal/core/ports"
)

const minPasswordLen = 6

// UserService implements admin-facing member management.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// UpdateByEmail applies the non-nil fields of update to the account.
func (s *UserService) UpdateByEmail(ctx context.Context, email string, update ports.UserUpdate) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Category != nil {
		cat := *update.Category
		if cat < 0 {
			cat = 0
		}
		user.Category = cat
	}
	if update.Discipline != nil {
		user.Discipline = strings.ToLower(strings.TrimSpace(*update.Discipline))
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", user.Email).Int("category", user.Category).Msg("user updated")
	return user, nil
}

func (s *UserService) DeleteByEmail(ctx context.Context, email string) error {
	if err := s.users.Delete(ctx, email); err != nil {
		return err
	}
	s.log.Info().Str("email", email).Msg("user deleted")
	return nil
}

// ChangePassword replaces the stored hash for the given user.
func (s *UserService) ChangePassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("email", user.Email).Msg("password changed")
	return nil
}
