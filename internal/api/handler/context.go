package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/losdealla/members-api/internal/api/middleware"
	"github.com/losdealla/members-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// fast-fails before any service call: a missing principal means the route was
// wired without the middleware, which is a server bug, but the client still
// gets a clean 401 rather than a panic.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, _ := c.Get(middleware.PrincipalKey).(*domain.Principal)
	if principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return principal, nil
}
