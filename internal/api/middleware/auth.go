package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/losdealla/members-api/internal/api/metrics"
	"github.com/losdealla/members-api/internal/core/domain"
	"github.com/losdealla/members-api/internal/core/ports"
)

// PrincipalKey is the echo context key the Auth middleware stores the
// resolved principal under.
const PrincipalKey = "principal"

// Auth resolves the bearer token to a principal and injects it into the
// request context. Failures propagate as domain errors for the central
// error handler to map.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			principal, err := auth.Authenticate(c.Request().Context(), header, "")
			if err != nil {
				metrics.AuthAttemptsTotal.WithLabelValues(authResult(err)).Inc()
				return err
			}
			metrics.AuthAttemptsTotal.WithLabelValues("ok").Inc()

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

func authResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrMalformedHeader):
		return "malformed_header"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenInvalid):
		return "invalid"
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, domain.ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, domain.ErrVerifierUnavailable), errors.Is(err, domain.ErrStoreUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
