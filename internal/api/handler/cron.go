package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
	"github.com/sustain-inventory/inventory-api/pkg/log"
)

// CronJobTypeForecastSnapshot é o job que grava a previsão diária
const CronJobTypeForecastSnapshot = "forecast-snapshot"

// SnapshotService é a parte do agendador de snapshots usada pelos handlers
type SnapshotService interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
	GetLatestSnapshot(ctx context.Context) (*domain.ForecastSnapshot, error)
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(service SnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType != CronJobTypeForecastSnapshot {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: forecast-snapshot", nil)
			return
		}

		if !service.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Sincronização já está em andamento", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Cron job disparada manualmente")
		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(service SnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			CronJobTypeForecastSnapshot: service.GetStatus(),
		})
	}
}
