package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name         string
		db           Pinger
		wantStatus   int
		wantDatabase string
	}{
		{name: "sem banco", db: nil, wantStatus: http.StatusOK},
		{name: "banco ok", db: fakePinger{}, wantStatus: http.StatusOK, wantDatabase: "ok"},
		{name: "banco fora", db: fakePinger{err: errors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable, wantDatabase: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tt.db).ServeHTTP(rec, newRequest(http.MethodGet, "/healthcheck", "", nil, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body HealthcheckResponse
			decodeBody(t, rec, &body)
			assert.Equal(t, tt.wantDatabase, body.Database)
		})
	}
}
