package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/losdealla/members-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrMalformedHeader, http.StatusUnauthorized, "missing or malformed authorization header"},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "token expired"},
		{domain.ErrTokenInvalid, http.StatusUnauthorized, "invalid token"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrPermissionDenied, http.StatusForbidden, "permission denied"},
		{domain.ErrNoDisciplineAccess, http.StatusForbidden, "no access to this discipline"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrCatalogNotFound, http.StatusNotFound, "unknown discipline"},
		{domain.ErrPostNotFound, http.StatusNotFound, "post not found"},
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{domain.ErrInvalidInput, http.StatusBadRequest, "invalid input"},
		{domain.ErrVerifierUnavailable, http.StatusServiceUnavailable, "service temporarily unavailable"},
		{domain.ErrStoreUnavailable, http.StatusServiceUnavailable, "service temporarily unavailable"},
		{errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.code, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%v: invalid JSON body: %v", tc.err, err)
		}
		if body["error"] != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, body["error"])
		}
	}
}

func TestHTTPErrorHandler_ExpiredAndInvalidAreDistinct(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	messages := make(map[string]bool)
	for _, err := range []error{domain.ErrTokenExpired, domain.ErrTokenInvalid} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler(err, e.NewContext(req, rec))

		var body map[string]string
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
		messages[body["error"]] = true
	}
	if len(messages) != 2 {
		t.Fatalf("expired and invalid tokens must yield distinct messages: %v", messages)
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	wrapped := errors.Join(errors.New("find user: dial tcp refused"), domain.ErrStoreUnavailable)
	handler(wrapped, e.NewContext(req, rec))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("wrapped store error: expected 503, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler(echo.NewHTTPError(http.StatusBadRequest, "bad payload"), e.NewContext(req, rec))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
