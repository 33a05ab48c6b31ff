package domain

import "time"

// DefaultForecastHorizon é a quantidade de dias pedida ao modelo
const DefaultForecastHorizon = 7

// ForecastRequest é o corpo enviado ao endpoint de previsão
type ForecastRequest struct {
	Sales         []float64            `json:"sales"`
	CategorySales map[string][]float64 `json:"categorySales"`
}

// ForecastResult é a resposta do endpoint de previsão. Todos os campos são best-effort.
type ForecastResult struct {
	OverallForecast  []float64            `json:"overallForecast"`
	CategoryForecast map[string][]float64 `json:"categoryForecast,omitempty"`
	Analysis         string               `json:"analysis"`
}

// WithDefaults garante sequências e mapas não nulos
func (r ForecastResult) WithDefaults() ForecastResult {
	if r.OverallForecast == nil {
		r.OverallForecast = []float64{}
	}
	if r.CategoryForecast == nil {
		r.CategoryForecast = map[string][]float64{}
	}
	return r
}

// ForecastErrorResponse é o corpo de falha do endpoint de previsão
type ForecastErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type ForecastSnapshot struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Dates       []string       `json:"dates"`
	Totals      []float64      `json:"totals"`
	Result      ForecastResult `json:"result"`
	Degraded    bool           `json:"degraded"`
}
