package domain

// Principal is the request-scoped identity resolved from a bearer token.
// It is derived fresh on every request and never persisted; role, discipline
// and category come from the authoritative user store, not from token claims.
type Principal struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Discipline string `json:"discipline,omitempty"`
	Category   int    `json:"category"`
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// ClaimSet is the verified payload extracted from a credential, prior to the
// authoritative store lookup. UserID is the only field trusted for identity;
// TokenID, when present, supports revocation. ExpiresAt is zero for backends
// without an expiry claim (delegated verification).
type ClaimSet struct {
	UserID    string
	Email     string
	TokenID   string
	ExpiresAt int64
}
