package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/losdealla/members-api/internal/api/middleware"
	"github.com/losdealla/members-api/internal/core/domain"
	"github.com/losdealla/members-api/internal/core/ports"
)

type stubUserService struct {
	users       []*domain.User
	passwordFor string
	newPassword string
}

func (s *stubUserService) ListUsers(context.Context) ([]*domain.User, error) {
	return s.users, nil
}

func (s *stubUserService) UpdateByEmail(_ context.Context, email string, update ports.UserUpdate) (*domain.User, error) {
	u := &domain.User{Email: email}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Category != nil {
		u.Category = *update.Category
	}
	return u, nil
}

func (s *stubUserService) DeleteByEmail(context.Context, string) error {
	return nil
}

func (s *stubUserService) ChangePassword(_ context.Context, userID, newPassword string) error {
	s.passwordFor = userID
	s.newPassword = newPassword
	return nil
}

func TestUserHandler_Create_ValidationRejectsShortPassword(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(&stubAuthService{}, &stubUserService{})

	c, _ := jsonRequest(e, http.MethodPost, "/users", `{"name":"Bob","email":"bob@example.com","password":"abc"}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %v", err)
	}
}

func TestUserHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(&stubAuthService{}, &stubUserService{})

	c, rec := jsonRequest(e, http.MethodPost, "/users", `{"name":"Bob","email":"bob@example.com","password":"secret1","discipline":"casino","category":2}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Email != "bob@example.com" || body.Category != 2 {
		t.Fatalf("unexpected user: %+v", body)
	}
}

func TestUserHandler_Update_AppliesPartialFields(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(&stubAuthService{}, &stubUserService{})

	c, rec := jsonRequest(e, http.MethodPut, "/", `{"category":9}`)
	c.SetPath("/users/:email")
	c.SetParamNames("email")
	c.SetParamValues("alice@example.com")

	if err := h.Update(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	var body domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Email != "alice@example.com" || body.Category != 9 {
		t.Fatalf("unexpected user: %+v", body)
	}
}

func TestUserHandler_ChangePassword_UsesOwnIdentity(t *testing.T) {
	e := newTestEcho()
	svc := &stubUserService{}
	h := NewUserHandler(&stubAuthService{}, svc)

	c, rec := jsonRequest(e, http.MethodPatch, "/users/password", `{"password":"fresh-secret"}`)
	c.Set(middleware.PrincipalKey, &domain.Principal{UserID: "u1", Role: domain.RoleUser})

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if svc.passwordFor != "u1" || svc.newPassword != "fresh-secret" {
		t.Fatalf("password change not routed to caller: %s/%s", svc.passwordFor, svc.newPassword)
	}
}

func TestUserHandler_ChangePassword_RequiresPrincipal(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(&stubAuthService{}, &stubUserService{})

	c, _ := jsonRequest(e, http.MethodPatch, "/users/password", `{"password":"fresh-secret"}`)
	err := h.ChangePassword(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without principal, got %v", err)
	}
}
