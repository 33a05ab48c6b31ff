package forecasting

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/sustain-inventory/inventory-api/internal/domain"
)

// ForecastCache guarda previsões bem-sucedidas pelo corpo da requisição
type ForecastCache interface {
	Get(ctx context.Context, key string) (*domain.ForecastResult, error)
	Set(ctx context.Context, key string, result domain.ForecastResult, ttl time.Duration) error
}

// CacheKey é o SHA-256 do corpo serializado (chaves do mapa em ordem) junto com
// o horizonte e o modelo, para que mudar a configuração não devolva previsões antigas
func CacheKey(req domain.ForecastRequest, horizon int, model string) (string, error) {
	if horizon <= 0 {
		horizon = domain.DefaultForecastHorizon
	}

	body, err := json.Marshal(struct {
		Model   string                 `json:"model"`
		Horizon int                    `json:"horizon"`
		Request domain.ForecastRequest `json:"request"`
	}{
		Model:   model,
		Horizon: horizon,
		Request: req,
	})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(body)
	return "forecast:" + hex.EncodeToString(sum[:]), nil
}
