package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/losdealla/members-api/internal/core/domain"
)

// RequireRole enforces role-based access control on routes behind Auth.
// Matching is exact and case-sensitive; admin does not implicitly satisfy
// other role literals.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := c.Get(PrincipalKey).(*domain.Principal)
			if principal == nil {
				return domain.ErrMalformedHeader
			}
			if _, ok := allowed[principal.Role]; !ok {
				return domain.ErrPermissionDenied
			}
			return next(c)
		}
	}
}
