package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	authmocks "github.com/sustain-inventory/inventory-api/internal/usecases/authenticating/mocks"
	sellmocks "github.com/sustain-inventory/inventory-api/internal/usecases/selling/mocks"
	"github.com/sustain-inventory/inventory-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func testConfig() *config.Config {
	return &config.Config{
		App:    config.App{AllowedOrigins: []string{"http://localhost:3000"}},
		Server: config.Server{Host: "localhost", Port: "0"},
	}
}

func TestNewHandler_Authorization(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		setup      func(auth *authmocks.MockAuthenticator, seller *sellmocks.MockSeller)
		wantStatus int
	}{
		{
			name:       "healthcheck é público",
			method:     http.MethodGet,
			path:       "/healthcheck",
			setup:      func(auth *authmocks.MockAuthenticator, seller *sellmocks.MockSeller) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "sem token",
			method:     http.MethodGet,
			path:       "/v1/sales",
			setup:      func(auth *authmocks.MockAuthenticator, seller *sellmocks.MockSeller) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token inválido",
			method: http.MethodGet,
			path:   "/v1/sales",
			token:  "ruim",
			setup: func(auth *authmocks.MockAuthenticator, seller *sellmocks.MockSeller) {
				auth.EXPECT().ValidateToken("ruim").Return(nil, errors.New("expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "staff lista vendas",
			method: http.MethodGet,
			path:   "/v1/sales",
			token:  "staff",
			setup: func(auth *authmocks.MockAuthenticator, seller *sellmocks.MockSeller) {
				auth.EXPECT().ValidateToken("staff").Return(&domain.Claims{UserID: "u1", UserRole: domain.RoleStaff}, nil)
				seller.EXPECT().ListSales(gomock.Any()).Return(&domain.SalesListResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "staff não gera vendas de exemplo",
			method: http.MethodPost,
			path:   "/v1/sales/seed",
			token:  "staff",
			setup: func(auth *authmocks.MockAuthenticator, seller *sellmocks.MockSeller) {
				auth.EXPECT().ValidateToken("staff").Return(&domain.Claims{UserID: "u1", UserRole: domain.RoleStaff}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "rota inexistente",
			method: http.MethodGet,
			path:   "/v1/nada",
			token:  "staff",
			setup: func(auth *authmocks.MockAuthenticator, seller *sellmocks.MockSeller) {
				auth.EXPECT().ValidateToken("staff").Return(&domain.Claims{UserID: "u1", UserRole: domain.RoleStaff}, nil)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authmocks.NewMockAuthenticator(ctrl)
			seller := sellmocks.NewMockSeller(ctrl)
			tt.setup(auth, seller)

			h := NewHandler(testConfig(), Services{Authenticator: auth, Seller: seller})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNew_RequiresAuthenticator(t *testing.T) {
	_, err := New(testConfig(), Services{})
	assert.Error(t, err)
}
