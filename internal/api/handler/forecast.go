package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/forecasting"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
	"github.com/sustain-inventory/inventory-api/pkg/log"
)

const forecastFailedMessage = "AI Forecasting failed"

// PostForecast recebe as séries agregadas e devolve a previsão da IA.
// Falhas usam o corpo {error, details} esperado pelos clientes do endpoint.
func PostForecast(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ForecastRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, r, http.StatusBadRequest, domain.ForecastErrorResponse{
				Error:   "Invalid request body",
				Details: err.Error(),
			})
			return
		}
		if req.Sales == nil {
			req.Sales = []float64{}
		}
		if req.CategorySales == nil {
			req.CategorySales = map[string][]float64{}
		}

		result, err := service.Forecast(r.Context(), req)
		if err != nil {
			status, body := forecastFailure(err)
			log.ForContext(r.Context()).WithError(err).WithField("status", status).Error("Forecast API error")
			writeJSON(w, r, status, body)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func forecastFailure(err error) (int, domain.ForecastErrorResponse) {
	if errors.Is(err, forecasting.ErrProviderNotConfigured) {
		return http.StatusInternalServerError, domain.ForecastErrorResponse{Error: forecasting.ErrProviderNotConfigured.Error()}
	}

	details := err.Error()
	if errors.Is(err, forecasting.ErrInvalidAIOutput) {
		details = forecasting.ErrInvalidAIOutput.Error()
	}

	status := http.StatusInternalServerError
	var fe *forecasting.ForecastError
	if errors.As(err, &fe) {
		status = apiErrors.StatusFor(fe.Code)
	}

	return status, domain.ForecastErrorResponse{Error: forecastFailedMessage, Details: details}
}
