package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func protectedHandler(c echo.Context) error {
	return c.String(http.StatusOK, fmt.Sprintf("uid=%d", c.Get("uid").(uint)))
}

func request(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/guarded", protectedHandler, Auth(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuth_ValidToken(t *testing.T) {
	tok, err := Sign(testSecret, 42, time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	rec := request(t, "Bearer "+tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body)
	}
	if rec.Body.String() != "uid=42" {
		t.Errorf("body = %q, want uid=42", rec.Body.String())
	}
}

func TestAuth_Rejections(t *testing.T) {
	expired, err := Sign(testSecret, 42, -time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	wrongKey, err := Sign("other-secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := request(t, tt.header)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}
