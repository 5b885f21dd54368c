package ports

import (
	"context"

	"github.com/losdealla/members-api/internal/core/domain"
)

// TokenVerifier checks a raw bearer token and returns its verified claims.
// Implementations must return domain.ErrTokenExpired for expired credentials,
// domain.ErrTokenInvalid for structurally bad ones, and
// domain.ErrVerifierUnavailable when the backing service cannot be reached.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.ClaimSet, error)
}

// TokenIssuer mints a signed bearer token for a user. Only the HMAC backend
// issues tokens; delegated deployments receive them from the identity
// provider directly.
type TokenIssuer interface {
	Issue(user *domain.User) (token string, err error)
}

// TokenRevoker tracks revoked token IDs until their natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttlSeconds int64) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
