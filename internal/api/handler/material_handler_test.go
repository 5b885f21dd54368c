package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/losdealla/members-api/internal/api/middleware"
	"github.com/losdealla/members-api/internal/core/domain"
)

type stubMaterialService struct {
	grant         *domain.MaterialGrant
	err           error
	gotDiscipline string
	gotPrincipal  *domain.Principal
}

func (s *stubMaterialService) Resolve(_ context.Context, principal *domain.Principal, discipline string) (*domain.MaterialGrant, error) {
	s.gotPrincipal = principal
	s.gotDiscipline = discipline
	if s.err != nil {
		return nil, s.err
	}
	return s.grant, nil
}

func materialContext(e *echo.Echo, discipline string, principal *domain.Principal) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/:discipline/material")
	c.SetParamNames("discipline")
	c.SetParamValues(discipline)
	if principal != nil {
		c.Set(middleware.PrincipalKey, principal)
	}
	return c, rec
}

func TestMaterialHandler_Success(t *testing.T) {
	e := echo.New()
	svc := &stubMaterialService{grant: &domain.MaterialGrant{
		Discipline: "yoga_facial",
		Level:      2,
		Material:   []string{"A", "B", "C"},
	}}
	h := NewMaterialHandler(svc)

	principal := &domain.Principal{UserID: "u1", Role: domain.RoleUser, Discipline: "yoga_facial", Category: 2}
	c, rec := materialContext(e, "yoga_facial", principal)

	if err := h.Material(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body domain.MaterialGrant
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Level != 2 || len(body.Material) != 3 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if svc.gotPrincipal.UserID != "u1" {
		t.Fatalf("principal not forwarded")
	}
}

func TestMaterialHandler_NormalizesURLDiscipline(t *testing.T) {
	e := echo.New()
	svc := &stubMaterialService{grant: &domain.MaterialGrant{Discipline: "yoga_facial", Material: []string{}}}
	h := NewMaterialHandler(svc)

	c, _ := materialContext(e, "Yoga-Facial", &domain.Principal{UserID: "u1", Role: domain.RoleUser})
	if err := h.Material(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.gotDiscipline != "yoga_facial" {
		t.Fatalf("URL discipline not normalized: %q", svc.gotDiscipline)
	}
}

func TestMaterialHandler_MissingPrincipal(t *testing.T) {
	e := echo.New()
	h := NewMaterialHandler(&stubMaterialService{})

	c, _ := materialContext(e, "casino", nil)
	err := h.Material(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without principal, got %v", err)
	}
}

func TestMaterialHandler_ServiceErrorPropagates(t *testing.T) {
	e := echo.New()
	svc := &stubMaterialService{err: domain.ErrNoDisciplineAccess}
	h := NewMaterialHandler(svc)

	c, _ := materialContext(e, "casino", &domain.Principal{UserID: "u1", Role: domain.RoleUser, Discipline: "yoga_facial"})
	if err := h.Material(c); err != domain.ErrNoDisciplineAccess {
		t.Fatalf("expected ErrNoDisciplineAccess to propagate, got %v", err)
	}
}

func TestMaterialGrant_EmptyMaterialMarshalsAsArray(t *testing.T) {
	data, err := json.Marshal(&domain.MaterialGrant{Discipline: "casino", Level: 0, Material: []string{}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"material":[]`) {
		t.Fatalf("empty material must marshal as [], got %s", data)
	}
}
