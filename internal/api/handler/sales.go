package handler

import (
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/selling"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
	"github.com/sustain-inventory/inventory-api/pkg/log"
)

func ListSales(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.ListSales(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao listar vendas")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

func DeleteSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteSale(r.Context(), id); err != nil {
			writeUsecaseError(w, r, err, "Erro ao remover venda")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// SeedSales gera vendas de exemplo. Corpo vazio usa a quantidade padrão.
func SeedSales(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SeedSalesRequest
		if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		sales, err := service.SeedSales(r.Context(), req.Count)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao gerar vendas de exemplo")
			return
		}

		log.ForContext(r.Context()).WithField("count", len(sales)).Info("Vendas de exemplo geradas")
		writeJSON(w, r, http.StatusCreated, map[string]any{
			"created": len(sales),
			"sales":   sales,
		})
	}
}
