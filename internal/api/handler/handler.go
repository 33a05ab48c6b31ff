package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/sustain-inventory/inventory-api/internal/usecases/authenticating"
	"github.com/sustain-inventory/inventory-api/internal/usecases/forecasting"
	"github.com/sustain-inventory/inventory-api/internal/usecases/inventory"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
	"github.com/sustain-inventory/inventory-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeUsecaseError converte os erros tipados dos usecases no corpo padrão da API
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		invErr  *inventory.InventoryError
		authErr *authenticating.AuthError
		fcErr   *forecasting.ForecastError
	)

	switch {
	case errors.As(err, &invErr):
		logUsecaseError(r, invErr.Code, err)
		apiErrors.WriteError(w, invErr.Code, invErr.Error(), nil)
	case errors.As(err, &authErr):
		logUsecaseError(r, authErr.Code, err)
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	case errors.As(err, &fcErr):
		logUsecaseError(r, fcErr.Code, err)
		apiErrors.WriteError(w, fcErr.Code, fcErr.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func logUsecaseError(r *http.Request, code string, err error) {
	logger := log.ForContext(r.Context()).WithError(err).WithField("code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("Erro ao processar requisição")
		return
	}
	logger.Warn("Requisição rejeitada")
}
