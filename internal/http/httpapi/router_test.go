package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"adminapi/internal/http/handlers"
	"adminapi/internal/infra"
	"adminapi/internal/middleware"
)

// emptySQL satisfies infra.SQLExecutor with zero rows for every report.
type emptySQL struct{}

func (emptySQL) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (emptySQL) QueryRow(context.Context, string, ...any) pgx.Row {
	return handlers.NewSimpleRow(func(dest ...any) error {
		for _, d := range dest {
			if v, ok := d.(*int64); ok {
				*v = 0
			}
		}
		return nil
	})
}

func (emptySQL) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return handlers.NewValueRows(nil), nil
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &infra.Config{
		JWTSecret:       "router-test-secret",
		DefaultLocale:   "en",
		RateLimitPerMin: 1000,
	}
	app := handlers.NewApp(emptySQL{}, zerolog.Nop(), nil)
	return NewRouter(app, cfg, nil)
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := middleware.SignJWT("router-test-secret", middleware.TokenClaims{
		Sub:  "u-1",
		Role: role,
		Exp:  time.Now().Add(time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	return tok
}

func TestHealthzIsOpen(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rr, httptest.NewRequest("GET", "/v1/healthz", nil))
	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := testRouter(t)
	for _, path := range []string{
		"/admin/users",
		"/admin/users/u-1",
		"/admin/registrations",
		"/admin/logins",
		"/admin/online-duration",
		"/admin/overview",
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", path, nil))
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", path, rr.Code)
		}
	}
}

func TestAdminRoutesRejectNonAdminRole(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin/overview", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "user"))
	rr := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rr.Code)
	}
}

func TestAdminTokenReachesReport(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin/overview", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "admin"))
	rr := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var payload struct {
		Overview map[string]any `json:"overview"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Overview == nil {
		t.Fatalf("missing overview payload: %s", rr.Body.String())
	}
}
