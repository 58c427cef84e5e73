package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	pkgauth "github.com/addisavenue/storefront-backend/pkg/auth"
	"github.com/addisavenue/storefront-backend/pkg/config"
	"github.com/addisavenue/storefront-backend/pkg/logger"
)

type fakeChecker struct {
	present bool
	err     error
}

func (f *fakeChecker) HasSession(context.Context, string) (bool, error) {
	return f.present, f.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
}

func jwtCfg() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "storefront", ExpirationMinutes: 60}
}

func mintToken(t *testing.T) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(jwtCfg(), time.Now(), pkgauth.AccessTokenPayload{
		Email: "jane@example.com",
		Name:  "jane",
		JTI:   "session-1",
	})
	if err != nil {
		t.Fatalf("MintAccessToken: %v", err)
	}
	return token
}

func TestAuthRejectsMissingCredentials(t *testing.T) {
	handler := Auth(jwtCfg(), nil, testLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/account/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRejectsBadToken(t *testing.T) {
	handler := Auth(jwtCfg(), nil, testLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/account/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthSeedsContext(t *testing.T) {
	var gotEmail, gotAccessID string
	handler := Auth(jwtCfg(), nil, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail = UserEmailFromContext(r.Context())
		gotAccessID = AccessIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/account/me", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotEmail != "jane@example.com" {
		t.Fatalf("email = %q", gotEmail)
	}
	if gotAccessID != "session-1" {
		t.Fatalf("access id = %q", gotAccessID)
	}
}

func TestAuthHonorsSessionChecker(t *testing.T) {
	handler := Auth(jwtCfg(), &fakeChecker{present: false}, testLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/account/me", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
