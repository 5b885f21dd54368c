package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/losdealla/members-api/internal/core/domain"
	"github.com/losdealla/members-api/internal/core/ports"
)

// AuthService turns bearer credentials into trusted principals and manages
// the login/logout lifecycle. Authorization-sensitive fields (role,
// discipline, category) are always re-read from the user store: a still-valid
// token issued before a role downgrade must not keep its old privileges.
type AuthService struct {
	users    ports.UserRepository
	verifier ports.TokenVerifier
	issuer   ports.TokenIssuer
	revoker  ports.TokenRevoker
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, verifier ports.TokenVerifier, issuer ports.TokenIssuer, revoker ports.TokenRevoker, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, verifier: verifier, issuer: issuer, revoker: revoker, log: log}
}

// Authenticate resolves the Authorization header to a principal, enforcing
// the required role when one is given. Role comparison is exact-match only.
func (s *AuthService) Authenticate(ctx context.Context, rawHeader, requiredRole string) (*domain.Principal, error) {
	token, err := parseBearer(rawHeader)
	if err != nil {
		return nil, err
	}

	claims, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, domain.ErrTokenInvalid
	}

	if s.revoker != nil && claims.TokenID != "" {
		revoked, err := s.revoker.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			// Fail closed: an unreachable revocation store must not let a
			// possibly revoked token through.
			return nil, domain.ErrVerifierUnavailable
		}
		if revoked {
			return nil, domain.ErrTokenInvalid
		}
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	if requiredRole != "" && user.Role != requiredRole {
		s.log.Warn().
			Str("email", user.Email).
			Str("role", user.Role).
			Str("required_role", requiredRole).
			Msg("role gate rejected principal")
		return nil, domain.ErrPermissionDenied
	}

	s.log.Info().
		Str("email", user.Email).
		Str("role", user.Role).
		Str("discipline", user.Discipline).
		Int("category", user.Category).
		Msg("principal authenticated")

	return &domain.Principal{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		Discipline: user.Discipline,
		Category:   user.Category,
	}, nil
}

// Login verifies email/password credentials and returns a signed token.
// A missing account and a wrong password both yield ErrInvalidCredentials so
// the response does not reveal which one it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("login succeeded")
	return token, user, nil
}

// Register creates a member account with a bcrypt password hash.
func (s *AuthService) Register(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if user.Name == "" || user.Email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	if user.Role != domain.RoleAdmin && user.Role != domain.RoleUser {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Category < 0 {
		user.Category = 0
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user.PasswordHash = string(hash)
	user.Discipline = strings.ToLower(strings.TrimSpace(user.Discipline))
	user.CreatedAt = now
	user.UpdatedAt = now

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Logout revokes the token carried by rawHeader until its natural expiry.
// Tokens without a token ID or expiry cannot be revoked and are rejected.
func (s *AuthService) Logout(ctx context.Context, rawHeader string) error {
	token, err := parseBearer(rawHeader)
	if err != nil {
		return err
	}

	claims, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return err
	}
	if claims.TokenID == "" || claims.ExpiresAt == 0 {
		return domain.ErrTokenInvalid
	}

	ttl := claims.ExpiresAt - time.Now().Unix()
	if ttl <= 0 {
		return domain.ErrTokenExpired
	}
	if s.revoker == nil {
		return domain.ErrVerifierUnavailable
	}
	if err := s.revoker.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return domain.ErrVerifierUnavailable
	}

	s.log.Info().Str("email", claims.Email).Msg("token revoked")
	return nil
}

// parseBearer extracts the token from an "Authorization: Bearer <token>"
// header value.
func parseBearer(rawHeader string) (string, error) {
	if rawHeader == "" {
		return "", domain.ErrMalformedHeader
	}
	parts := strings.SplitN(rawHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", domain.ErrMalformedHeader
	}
	return parts[1], nil
}
