package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/losdealla/members-api/internal/core/domain"
	"github.com/losdealla/members-api/internal/core/ports"
)

type UserHandler struct {
	authService ports.AuthService
	userService ports.UserService
}

func NewUserHandler(authService ports.AuthService, userService ports.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

type createUserRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"omitempty,oneof=admin user"`
	Discipline string `json:"discipline"`
	Category   int    `json:"category" validate:"gte=0"`
}

type updateUserRequest struct {
	Name       *string `json:"name"`
	Category   *int    `json:"category"`
	Discipline *string `json:"discipline"`
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// List returns all member accounts.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create registers a new member account.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := &domain.User{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Discipline: req.Discipline,
		Category:   req.Category,
	}

	created, err := h.authService.Register(c.Request().Context(), user, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update modifies the name, category or discipline of the user with the
// given email.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string             true  "User email"
// @Param        body   body      updateUserRequest  true  "Fields to change"
// @Success      200    {object}  domain.User
// @Failure      404    {object}  map[string]string
// @Router       /users/{email} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.userService.UpdateByEmail(c.Request().Context(), c.Param("email"), ports.UserUpdate{
		Name:       req.Name,
		Category:   req.Category,
		Discipline: req.Discipline,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes the user with the given email.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path  string  true  "User email"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{email} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.DeleteByEmail(c.Request().Context(), c.Param("email")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangePassword replaces the caller's own password.
//
// @Summary      Change own password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "New password"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/password [patch]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.ChangePassword(c.Request().Context(), principal.UserID, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
