package forecasting

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sustain-inventory/inventory-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CleanModelOutput remove as cercas de código e os caracteres de controle da resposta do modelo
func CleanModelOutput(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.Map(func(r rune) rune {
		if r < 0x20 {
			return -1
		}
		return r
	}, cleaned)
	return strings.TrimSpace(cleaned)
}

// ParseForecast limpa e decodifica a resposta. Falha de parse é fatal e não deve ser repetida.
func ParseForecast(raw string) (domain.ForecastResult, error) {
	cleaned := CleanModelOutput(raw)
	if cleaned == "" {
		return domain.ForecastResult{}, NewInvalidOutputError("empty response")
	}

	var result domain.ForecastResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return domain.ForecastResult{}, NewInvalidOutputError(err.Error())
	}

	return result.WithDefaults(), nil
}
