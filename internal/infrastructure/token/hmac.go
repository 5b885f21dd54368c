package token

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/losdealla/members-api/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// HMACVerifier validates self-issued HS256 tokens against a shared secret.
type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token signature and expiry claim.
func (v *HMACVerifier) Verify(_ context.Context, raw string) (*domain.ClaimSet, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	cs := &domain.ClaimSet{
		UserID:  stringClaim(claims, "sub"),
		Email:   stringClaim(claims, "email"),
		TokenID: stringClaim(claims, "jti"),
	}
	// Older tokens carried the id under "user_id".
	if cs.UserID == "" {
		cs.UserID = stringClaim(claims, "user_id")
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		cs.ExpiresAt = exp.Unix()
	}
	return cs, nil
}

// HMACIssuer mints HS256 tokens carrying the subject, email, role, a token
// ID for revocation, and an expiry claim.
type HMACIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewHMACIssuer(secret string, ttl time.Duration) *HMACIssuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &HMACIssuer{secret: []byte(secret), ttl: ttl}
}

func (i *HMACIssuer) Issue(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"rol":   user.Role,
		"jti":   uuid.NewString(),
		"exp":   time.Now().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
