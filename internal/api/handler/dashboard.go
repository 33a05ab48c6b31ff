package handler

import (
	"net/http"

	"github.com/sustain-inventory/inventory-api/internal/usecases/dashboarding"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
)

func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.GetDashboard(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao montar dashboard")
			return
		}

		writeJSON(w, r, http.StatusOK, dashboard)
	}
}

func GetAnalytics(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analytics, err := service.GetAnalytics(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao montar análise de vendas")
			return
		}

		writeJSON(w, r, http.StatusOK, analytics)
	}
}

// GetLatestForecastSnapshot devolve o último snapshot gerado pelo job agendado
func GetLatestForecastSnapshot(service SnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.GetLatestSnapshot(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao buscar snapshot de previsão")
			return
		}
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum snapshot de previsão gerado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	}
}
