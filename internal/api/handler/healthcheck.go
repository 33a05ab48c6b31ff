package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sustain-inventory/inventory-api/pkg/log"
)

const healthcheckTimeout = 2 * time.Second

// Pinger é satisfeito pela conexão com o Postgres
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthcheckResponse struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Database string `json:"database,omitempty"`
}

// HealthcheckHandler responde 503 quando o banco não responde ao ping. db nulo pula a verificação.
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := HealthcheckResponse{Status: "ok", Time: time.Now().Format(time.RFC3339)}
		status := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			resp.Database = "ok"
			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("healthcheck: banco indisponível")
				resp.Status = "degraded"
				resp.Database = "unavailable"
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, r, status, resp)
	})
}
