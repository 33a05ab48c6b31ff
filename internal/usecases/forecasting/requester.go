package forecasting

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/pkg/log"
)

const unavailablePrefix = "AI forecast unavailable"

// Requester envia as séries agregadas para a previsão. Nunca falha: qualquer erro
// vira um resultado degradado com overallForecast vazio e a análise explicando o motivo.
type Requester interface {
	RequestForecast(ctx context.Context, dailyTotals []float64, categorySeries map[string][]float64) domain.ForecastResult
}

// DegradedResult é o resultado vazio devolvido quando a previsão não pode ser feita
func DegradedResult(reason string) domain.ForecastResult {
	if reason == "" {
		reason = "Server error"
	}
	return domain.ForecastResult{
		OverallForecast:  []float64{},
		CategoryForecast: map[string][]float64{},
		Analysis:         unavailablePrefix + ": " + reason,
	}
}

// IsDegraded indica se o resultado veio de DegradedResult
func IsDegraded(result domain.ForecastResult) bool {
	return len(result.OverallForecast) == 0 && strings.HasPrefix(result.Analysis, unavailablePrefix)
}

// LocalRequester chama o Forecaster no próprio processo
type LocalRequester struct {
	forecaster Forecaster
}

func NewLocalRequester(forecaster Forecaster) *LocalRequester {
	return &LocalRequester{forecaster: forecaster}
}

func (r *LocalRequester) RequestForecast(ctx context.Context, dailyTotals []float64, categorySeries map[string][]float64) domain.ForecastResult {
	req := domain.ForecastRequest{
		Sales:         dailyTotals,
		CategorySales: categorySeries,
	}

	result, err := r.forecaster.Forecast(ctx, req)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("forecast: previsão indisponível, usando resultado degradado")

		var fe *ForecastError
		if errors.As(err, &fe) {
			return DegradedResult(fe.Error())
		}
		return DegradedResult(err.Error())
	}

	return result.WithDefaults()
}
