package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/forecasting"
	"github.com/sustain-inventory/inventory-api/internal/usecases/forecasting/mocks"
)

func TestPostForecast(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mocks.MockForecaster)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "previsão com sucesso",
			body: `{"sales":[10,20],"categorySales":{"Tops":[5,5]}}`,
			setup: func(m *mocks.MockForecaster) {
				m.EXPECT().Forecast(gomock.Any(), domain.ForecastRequest{
					Sales:         []float64{10, 20},
					CategorySales: map[string][]float64{"Tops": {5, 5}},
				}).Return(domain.ForecastResult{
					OverallForecast: []float64{21, 22},
					Analysis:        "alta",
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var result domain.ForecastResult
				decodeBody(t, rec, &result)
				assert.Equal(t, []float64{21, 22}, result.OverallForecast)
				assert.Equal(t, "alta", result.Analysis)
			},
		},
		{
			name: "categorySales ausente vira mapa vazio",
			body: `{"sales":[1]}`,
			setup: func(m *mocks.MockForecaster) {
				m.EXPECT().Forecast(gomock.Any(), domain.ForecastRequest{
					Sales:         []float64{1},
					CategorySales: map[string][]float64{},
				}).Return(domain.ForecastResult{}.WithDefaults(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "corpo inválido",
			body:       `{"sales":`,
			setup:      func(m *mocks.MockForecaster) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "chave ausente",
			body: `{"sales":[1]}`,
			setup: func(m *mocks.MockForecaster) {
				m.EXPECT().Forecast(gomock.Any(), gomock.Any()).Return(domain.ForecastResult{}, forecasting.NewProviderNotConfiguredError())
			},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body domain.ForecastErrorResponse
				decodeBody(t, rec, &body)
				assert.Equal(t, "Gemini API key missing.", body.Error)
				assert.Empty(t, body.Details)
			},
		},
		{
			name: "JSON inválido da IA",
			body: `{"sales":[1]}`,
			setup: func(m *mocks.MockForecaster) {
				m.EXPECT().Forecast(gomock.Any(), gomock.Any()).Return(domain.ForecastResult{}, forecasting.NewInvalidOutputError("unexpected token"))
			},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body domain.ForecastErrorResponse
				decodeBody(t, rec, &body)
				assert.Equal(t, "AI Forecasting failed", body.Error)
				assert.Equal(t, "Invalid AI JSON output", body.Details)
			},
		},
		{
			name: "tentativas esgotadas",
			body: `{"sales":[1]}`,
			setup: func(m *mocks.MockForecaster) {
				m.EXPECT().Forecast(gomock.Any(), gomock.Any()).Return(domain.ForecastResult{}, forecasting.NewRetriesExhaustedError(3, errors.New("429")))
			},
			wantStatus: http.StatusTooManyRequests,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body domain.ForecastErrorResponse
				decodeBody(t, rec, &body)
				assert.Equal(t, "AI Forecasting failed", body.Error)
				assert.Contains(t, body.Details, "retries exhausted")
			},
		},
		{
			name: "erro genérico",
			body: `{"sales":[1]}`,
			setup: func(m *mocks.MockForecaster) {
				m.EXPECT().Forecast(gomock.Any(), gomock.Any()).Return(domain.ForecastResult{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body domain.ForecastErrorResponse
				decodeBody(t, rec, &body)
				assert.Equal(t, "boom", body.Details)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			forecaster := mocks.NewMockForecaster(ctrl)
			tt.setup(forecaster)

			rec := httptest.NewRecorder()
			PostForecast(forecaster).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/forecast", tt.body, nil, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}
