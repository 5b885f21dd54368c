package domain

import "errors"

// Authentication failures. Each branch of the authenticator surfaces a
// distinct kind so the transport can map them to distinct statuses and
// observability keeps the real cause even when the client message is generic.
var (
	ErrMalformedHeader    = errors.New("malformed authorization header")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Catalog failures.
var (
	ErrCatalogNotFound    = errors.New("catalog not found")
	ErrNoDisciplineAccess = errors.New("no access to this discipline")
)

// Downstream failures. Neither is retried by the core; a transient outage
// surfaces as an error rather than masking an authentication decision.
var (
	ErrVerifierUnavailable = errors.New("credential verification unavailable")
	ErrStoreUnavailable    = errors.New("user store unavailable")
)

// Persistence failures outside the auth path.
var (
	ErrUserExists   = errors.New("user already exists")
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidInput = errors.New("invalid input")
)
