package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/reserving"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
)

func ReserveItem(service reserving.Reserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ReserveItemRequest
		if err := decodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		itemID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		reservation, err := service.ReserveItem(r.Context(), itemID, req)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao reservar item")
			return
		}

		writeJSON(w, r, http.StatusCreated, reservation)
	}
}

func ListReservedItems(service reserving.Reserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.ListReservedItems(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao listar reservas")
			return
		}

		writeJSON(w, r, http.StatusOK, items)
	}
}

// FinalizeReservation recebe o id do item reservado e devolve a venda registrada
func FinalizeReservation(service reserving.Reserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		sale, err := service.FinalizeReservation(r.Context(), itemID)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao finalizar reserva")
			return
		}

		writeJSON(w, r, http.StatusOK, sale)
	}
}

func CancelReservation(service reserving.Reserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.CancelReservation(r.Context(), itemID); err != nil {
			writeUsecaseError(w, r, err, "Erro ao cancelar reserva")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListDeliveries(service reserving.Reserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deliveries, err := service.ListDeliveries(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao listar entregas")
			return
		}

		writeJSON(w, r, http.StatusOK, deliveries)
	}
}

func MarkDelivered(service reserving.Reserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reservationID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.MarkDelivered(r.Context(), reservationID); err != nil {
			writeUsecaseError(w, r, err, "Erro ao marcar entrega")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
