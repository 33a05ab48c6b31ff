package inventory

import (
	"errors"
	"fmt"

	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
)

var (
	ErrItemNotFound        = errors.New("item não encontrado")
	ErrReservationNotFound = errors.New("reserva não encontrada")
	ErrSaleNotFound        = errors.New("venda não encontrada")
	ErrInvalidItem         = errors.New("item inválido")
	ErrInvalidTransition   = errors.New("transição de status inválida")
	ErrInvalidCatalog      = errors.New("catálogo inválido")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// InventoryError carrega o código da API junto com o erro base
type InventoryError struct {
	Err     error
	Code    string
	Details string
}

func (e *InventoryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InventoryError) Unwrap() error {
	return e.Err
}

func NewInventoryError(baseErr error, code string, details string) *InventoryError {
	return &InventoryError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewNotFoundError(baseErr error, id string) *InventoryError {
	return NewInventoryError(baseErr, apiErrors.ErrNotFound, fmt.Sprintf("id %s", id))
}

func NewValidationError(details string) *InventoryError {
	return NewInventoryError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, details)
}

// NewDatabaseError embrulha falhas de repositório
func NewDatabaseError(err error) *InventoryError {
	return &InventoryError{
		Err:     fmt.Errorf("%w: %v", ErrDatabaseOperation, err),
		Code:    apiErrors.ErrDatabaseOperation,
		Details: "",
	}
}
