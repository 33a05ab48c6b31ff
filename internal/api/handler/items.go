package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/inventory"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
)

type UpdateStatusRequest struct {
	Status domain.ItemStatus `json:"status"`
}

type CatalogEntryRequest struct {
	Name string `json:"name"`
}

// ListItems aceita os filtros ?search= e ?category= (All desativa o filtro de categoria)
func ListItems(service inventory.Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filters := domain.ItemFilters{
			Search:   query.Get("search"),
			Category: query.Get("category"),
		}

		items, err := service.ListItems(r.Context(), filters)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao listar itens")
			return
		}

		writeJSON(w, r, http.StatusOK, items)
	}
}

func GetItem(service inventory.Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		item, err := service.GetItem(r.Context(), id)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao buscar item")
			return
		}

		writeJSON(w, r, http.StatusOK, item)
	}
}

func CreateItem(service inventory.Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item domain.Item
		if err := decodeJSON(r, &item); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateItem(r.Context(), item)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao criar item")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

func UpdateItem(service inventory.Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item domain.Item
		if err := decodeJSON(r, &item); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		item.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateItem(r.Context(), item)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao atualizar item")
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}

// UpdateItemStatus muda só o status; a venda é registrada pelo usecase quando o item passa a Sold
func UpdateItemStatus(service inventory.Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateStatusRequest
		if err := decodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateItemStatus(r.Context(), id, req.Status)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao atualizar status do item")
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}

func DeleteItem(service inventory.Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteItem(r.Context(), id); err != nil {
			writeUsecaseError(w, r, err, "Erro ao remover item")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListCatalog(service inventory.Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := domain.CatalogKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))

		names, err := service.ListCatalog(r.Context(), kind)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao listar catálogo")
			return
		}

		writeJSON(w, r, http.StatusOK, names)
	}
}

func AddCatalogEntry(service inventory.Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CatalogEntryRequest
		if err := decodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		kind := domain.CatalogKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))

		entry, err := service.AddCatalogEntry(r.Context(), kind, req.Name)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao adicionar entrada no catálogo")
			return
		}

		writeJSON(w, r, http.StatusCreated, entry)
	}
}
