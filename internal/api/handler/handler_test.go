package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/pkg/log"
	"github.com/sustain-inventory/inventory-api/pkg/middleware"
)

func init() {
	log.SetupTestLogger()
}

// newRequest monta a requisição com os parâmetros de rota e, opcionalmente, as claims do usuário
func newRequest(method, target, body string, params httprouter.Params, claims *domain.Claims) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	ctx := req.Context()
	if params != nil {
		ctx = context.WithValue(ctx, httprouter.ParamsKey, params)
	}
	if claims != nil {
		ctx = context.WithValue(ctx, middleware.ContextKeyUser, claims)
	}
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type fakeSnapshotService struct {
	triggered bool
	accept    bool
	snapshot  *domain.ForecastSnapshot
	err       error
}

func (f *fakeSnapshotService) TriggerManualSync(context.Context) bool {
	f.triggered = true
	return f.accept
}

func (f *fakeSnapshotService) GetStatus() map[string]any {
	return map[string]any{"sync_running": false, "sync_enabled": true}
}

func (f *fakeSnapshotService) GetLatestSnapshot(context.Context) (*domain.ForecastSnapshot, error) {
	return f.snapshot, f.err
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}
