package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dbuhub/blog-admin-api/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", domain.ErrUserNotFound, http.StatusUnauthorized},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"post not found", domain.ErrPostNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := runErrorHandler(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if body["error"] == "" {
				t.Fatalf("expected error message in envelope")
			}
		})
	}
}

// Token and credential failures must share one message so causes cannot be
// probed from the outside.
func TestErrorHandler_CredentialFailuresIndistinguishable(t *testing.T) {
	_, bodyA := runErrorHandler(t, domain.ErrInvalidCredentials)
	_, bodyB := runErrorHandler(t, domain.ErrUserNotFound)

	if bodyA["error"] != bodyB["error"] {
		t.Fatalf("credential failures leak cause: %v vs %v", bodyA["error"], bodyB["error"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := runErrorHandler(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	if body["error"] != "short and stout" {
		t.Fatalf("unexpected message: %v", body["error"])
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec, body := runErrorHandler(t, errors.New("disk exploded"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// The broad-catch contract reports the underlying message.
	if body["error"] != "disk exploded" {
		t.Fatalf("unexpected message: %v", body["error"])
	}
}
