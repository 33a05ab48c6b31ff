package handler

import (
	"net/http"

	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/contact"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
)

func ListContacts(service contact.Contacter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := service.ListContacts(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao listar contatos")
			return
		}

		writeJSON(w, r, http.StatusOK, contacts)
	}
}

func AddContact(service contact.Contacter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c domain.Contact
		if err := decodeJSON(r, &c); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.AddContact(r.Context(), c)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao adicionar contato")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}
