package ports

import (
	"context"

	"github.com/losdealla/members-api/internal/core/domain"
)

// AuthService resolves bearer credentials to principals and manages the
// login/logout lifecycle.
type AuthService interface {
	// Authenticate turns a raw Authorization header value into a trusted
	// principal. When requiredRole is non-empty the resolved role must match
	// it exactly; there is no role hierarchy.
	Authenticate(ctx context.Context, rawHeader, requiredRole string) (*domain.Principal, error)

	// Login verifies email/password credentials and issues a signed token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Register creates a member account. Only admins reach this through the
	// transport layer.
	Register(ctx context.Context, user *domain.User, password string) (*domain.User, error)

	// Logout revokes the token carried by rawHeader until its expiry.
	Logout(ctx context.Context, rawHeader string) error
}
