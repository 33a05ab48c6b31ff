package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sustain-inventory/inventory-api/internal/domain"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	staff := &domain.Claims{UserID: "u1", UserRole: domain.RoleStaff}

	tests := []struct {
		name       string
		path       string
		header     string
		validator  fakeValidator
		wantStatus int
	}{
		{"rota pública sem token", "/v1/login", "", fakeValidator{}, http.StatusNoContent},
		{"sem header", "/v1/items", "", fakeValidator{}, http.StatusUnauthorized},
		{"sem prefixo Bearer", "/v1/items", "abc", fakeValidator{}, http.StatusUnauthorized},
		{"token inválido", "/v1/items", "Bearer abc", fakeValidator{err: errors.New("bad")}, http.StatusUnauthorized},
		{"token válido", "/v1/items", "Bearer abc", fakeValidator{claims: staff}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	run := func(role string) int {
		validator := fakeValidator{claims: &domain.Claims{UserID: "u1", UserRole: role}}
		req := httptest.NewRequest(http.MethodPost, "/v1/sales/seed", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		AuthMiddleware(validator)(AdminOnly()(okHandler())).ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, run(domain.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, run(domain.RoleStaff))
}

func TestRoleMiddleware_WithoutClaims(t *testing.T) {
	rec := httptest.NewRecorder()
	AllRoles()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/items", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/items", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/items", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()
	LoggingMiddleware()(LogPanicMiddleware()(panicking)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/items", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
