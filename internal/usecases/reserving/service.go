package reserving

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sustain-inventory/inventory-api/infrastructure/repository"
	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/inventory"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
	"github.com/sustain-inventory/inventory-api/pkg/log"
	"github.com/sustain-inventory/inventory-api/pkg/utils"
)

type Reserver interface {
	ReserveItem(ctx context.Context, itemID string, req domain.ReserveItemRequest) (*domain.Reservation, error)
	ListReservedItems(ctx context.Context) ([]domain.ReservedItem, error)
	FinalizeReservation(ctx context.Context, itemID string) (*domain.Sale, error)
	CancelReservation(ctx context.Context, itemID string) error
	ListDeliveries(ctx context.Context) ([]domain.Reservation, error)
	MarkDelivered(ctx context.Context, reservationID string) error
}

type Service struct {
	itemRepo        repository.ItemRepository
	saleRepo        repository.SaleRepository
	reservationRepo repository.ReservationRepository
	contactRepo     repository.ContactRepository
	loc             *time.Location
	now             func() time.Time
}

func NewService(
	itemRepo repository.ItemRepository,
	saleRepo repository.SaleRepository,
	reservationRepo repository.ReservationRepository,
	contactRepo repository.ContactRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		itemRepo:        itemRepo,
		saleRepo:        saleRepo,
		reservationRepo: reservationRepo,
		contactRepo:     contactRepo,
		loc:             cfg.SalesLocation(),
		now:             time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) getItem(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, inventory.NewDatabaseError(err)
	}
	if item == nil {
		return nil, inventory.NewNotFoundError(inventory.ErrItemNotFound, itemID)
	}
	return item, nil
}

func transitionError(item *domain.Item, action string) error {
	return inventory.NewInventoryError(
		inventory.ErrInvalidTransition,
		apiErrors.ErrConflict,
		"não é possível "+action+" item com status "+string(item.Status),
	)
}

// ReserveItem marca o item como reservado e cadastra o comprador quando o telefone é novo
func (s *Service) ReserveItem(ctx context.Context, itemID string, req domain.ReserveItemRequest) (*domain.Reservation, error) {
	logger := log.ForContext(ctx).WithField("item_id", itemID)

	req.ReservedBy = strings.TrimSpace(req.ReservedBy)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.ReservedBy == "" {
		return nil, inventory.NewValidationError("nome do comprador é obrigatório")
	}

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	switch item.Status {
	case domain.ItemStatusSold, domain.ItemStatusMissing, domain.ItemStatusReserved:
		return nil, transitionError(item, "reservar")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, inventory.NewInventoryError(err, apiErrors.ErrInternalServer, "erro ao gerar id")
	}

	reservation := domain.Reservation{
		ID:             id,
		ItemID:         item.ID,
		ItemName:       item.Name,
		ReservedBy:     req.ReservedBy,
		Phone:          req.Phone,
		Address:        strings.TrimSpace(req.Address),
		DeliveryDate:   req.DeliveryDate,
		Notes:          strings.TrimSpace(req.Notes),
		DeliveryStatus: domain.DeliveryStatusPending,
		Timestamp:      s.now().UnixMilli(),
	}

	if err := s.reservationRepo.CreateReservation(ctx, reservation); err != nil {
		return nil, inventory.NewDatabaseError(err)
	}
	if err := s.itemRepo.UpdateItemStatus(ctx, item.ID, domain.ItemStatusReserved); err != nil {
		return nil, inventory.NewDatabaseError(err)
	}

	// O contato é um efeito colateral: a reserva já está gravada
	if err := s.addContactIfNew(ctx, reservation); err != nil {
		logger.WithError(err).Warn("Erro ao cadastrar contato da reserva")
	}

	logger.WithField("reservation_id", reservation.ID).Info("Item reservado")
	return &reservation, nil
}

func (s *Service) addContactIfNew(ctx context.Context, reservation domain.Reservation) error {
	if reservation.Phone == "" {
		return nil
	}

	existing, err := s.contactRepo.GetContactByPhone(ctx, reservation.Phone)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		return err
	}

	return s.contactRepo.CreateContact(ctx, domain.Contact{
		ID:      id,
		Name:    reservation.ReservedBy,
		Phone:   reservation.Phone,
		Address: reservation.Address,
	})
}

// ListReservedItems junta cada item reservado com a sua reserva mais recente
func (s *Service) ListReservedItems(ctx context.Context) ([]domain.ReservedItem, error) {
	items, err := s.itemRepo.ListItemsByStatus(ctx, domain.ItemStatusReserved)
	if err != nil {
		return nil, inventory.NewDatabaseError(err)
	}

	reserved := make([]domain.ReservedItem, 0, len(items))
	for _, item := range items {
		entry := domain.ReservedItem{
			ID:         item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Category:   item.Category,
			Condition:  item.Condition,
			ReservedBy: domain.ContactMissing,
		}

		reservation, err := s.reservationRepo.GetReservationByItemID(ctx, item.ID)
		if err != nil {
			return nil, inventory.NewDatabaseError(err)
		}
		if reservation != nil {
			entry.ReservedBy = reservation.ReservedBy
			entry.ReservationTimestamp = reservation.Timestamp
			entry.ReservationID = reservation.ID
		}

		reserved = append(reserved, entry)
	}

	return reserved, nil
}

// FinalizeReservation vende o item reservado: registra a venda e apaga a reserva
func (s *Service) FinalizeReservation(ctx context.Context, itemID string) (*domain.Sale, error) {
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != domain.ItemStatusReserved {
		return nil, transitionError(item, "finalizar")
	}

	if err := s.itemRepo.UpdateItemStatus(ctx, item.ID, domain.ItemStatusSold); err != nil {
		return nil, inventory.NewDatabaseError(err)
	}

	sale, err := inventory.SaleFromItem(*item, s.now(), s.loc)
	if err != nil {
		return nil, inventory.NewInventoryError(err, apiErrors.ErrInternalServer, "erro ao gerar id da venda")
	}
	if err := s.saleRepo.CreateSale(ctx, sale); err != nil {
		return nil, inventory.NewDatabaseError(err)
	}

	if err := s.deleteReservationOf(ctx, item.ID); err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"item_id": item.ID,
		"sale_id": sale.ID,
	}).Info("Reserva finalizada")
	return &sale, nil
}

// CancelReservation devolve o item ao estoque
func (s *Service) CancelReservation(ctx context.Context, itemID string) error {
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item.Status != domain.ItemStatusReserved {
		return transitionError(item, "cancelar a reserva de")
	}

	if err := s.itemRepo.UpdateItemStatus(ctx, item.ID, domain.ItemStatusInStock); err != nil {
		return inventory.NewDatabaseError(err)
	}

	return s.deleteReservationOf(ctx, item.ID)
}

func (s *Service) deleteReservationOf(ctx context.Context, itemID string) error {
	reservation, err := s.reservationRepo.GetReservationByItemID(ctx, itemID)
	if err != nil {
		return inventory.NewDatabaseError(err)
	}
	if reservation == nil {
		return nil
	}

	err = s.reservationRepo.DeleteReservation(ctx, reservation.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return inventory.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) ListDeliveries(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.reservationRepo.ListReservations(ctx)
	if err != nil {
		return nil, inventory.NewDatabaseError(err)
	}
	return reservations, nil
}

func (s *Service) MarkDelivered(ctx context.Context, reservationID string) error {
	err := s.reservationRepo.MarkDelivered(ctx, reservationID, s.now().UnixMilli())
	if errors.Is(err, repository.ErrNotFound) {
		return inventory.NewNotFoundError(inventory.ErrReservationNotFound, reservationID)
	}
	if err != nil {
		return inventory.NewDatabaseError(err)
	}
	return nil
}
