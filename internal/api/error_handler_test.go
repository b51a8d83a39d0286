package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/authbase/user-service/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"email exists", domain.ErrEmailExists, http.StatusBadRequest, "already exists"},
		{"missing identifier", domain.ErrMissingIdentifier, http.StatusBadRequest, "must be provided"},
		{"user not found", domain.ErrUserNotFound, http.StatusBadRequest, "could not find user"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"storage conflict", domain.ErrDuplicateUser, http.StatusInternalServerError, "an error occurred"},
		{"wrapped storage conflict", errors.Join(errors.New("insert user"), domain.ErrDuplicateUser), http.StatusInternalServerError, "an error occurred"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
		{"echo error", echo.NewHTTPError(http.StatusNotFound, "not found"), http.StatusNotFound, "not found"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/login", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Fatalf("expected body containing %q, got %s", tc.wantBody, rec.Body.String())
			}
		})
	}
}
