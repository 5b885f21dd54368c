package ports

import (
	"context"

	"github.com/losdealla/members-api/internal/core/domain"
)

// UserService exposes admin-facing member management.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// UpdateByEmail applies the non-nil fields to the user with that email.
	UpdateByEmail(ctx context.Context, email string, update UserUpdate) (*domain.User, error)

	DeleteByEmail(ctx context.Context, email string) error

	// ChangePassword replaces the password of the given user.
	ChangePassword(ctx context.Context, userID, newPassword string) error
}

// UserUpdate carries optional field changes; nil means "leave unchanged".
type UserUpdate struct {
	Name       *string
	Category   *int
	Discipline *string
}
