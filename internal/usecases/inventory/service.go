package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sustain-inventory/inventory-api/infrastructure/repository"
	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
	"github.com/sustain-inventory/inventory-api/pkg/log"
	"github.com/sustain-inventory/inventory-api/pkg/utils"
)

type Inventory interface {
	ListItems(ctx context.Context, filters domain.ItemFilters) ([]domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error)
	UpdateItem(ctx context.Context, item domain.Item) (*domain.Item, error)
	UpdateItemStatus(ctx context.Context, id string, status domain.ItemStatus) (*domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
	ListCatalog(ctx context.Context, kind domain.CatalogKind) ([]string, error)
	AddCatalogEntry(ctx context.Context, kind domain.CatalogKind, name string) (*domain.CatalogEntry, error)
}

type Service struct {
	itemRepo    repository.ItemRepository
	saleRepo    repository.SaleRepository
	catalogRepo repository.CatalogRepository
	loc         *time.Location
	now         func() time.Time
}

func NewService(
	itemRepo repository.ItemRepository,
	saleRepo repository.SaleRepository,
	catalogRepo repository.CatalogRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		itemRepo:    itemRepo,
		saleRepo:    saleRepo,
		catalogRepo: catalogRepo,
		loc:         cfg.SalesLocation(),
		now:         time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) ListItems(ctx context.Context, filters domain.ItemFilters) ([]domain.Item, error) {
	filters.Search = strings.TrimSpace(filters.Search)
	items, err := s.itemRepo.ListItems(ctx, filters)
	if err != nil {
		return nil, NewDatabaseError(err)
	}
	return items, nil
}

func (s *Service) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.itemRepo.GetItem(ctx, id)
	if err != nil {
		return nil, NewDatabaseError(err)
	}
	if item == nil {
		return nil, NewNotFoundError(ErrItemNotFound, id)
	}
	return item, nil
}

func validateItem(item domain.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return NewValidationError("nome é obrigatório")
	}
	if item.Price.IsNegative() {
		return NewInventoryError(ErrInvalidItem, apiErrors.ErrInvalidFormat, "preço não pode ser negativo")
	}
	return nil
}

// CreateItem grava o item sempre como "In Stock"
func (s *Service) CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewInventoryError(err, apiErrors.ErrInternalServer, "erro ao gerar id")
	}

	item.ID = id
	item.Name = strings.TrimSpace(item.Name)
	item.Status = domain.ItemStatusInStock
	item.Timestamp = s.now().UnixMilli()

	if err := s.itemRepo.CreateItem(ctx, item); err != nil {
		return nil, NewDatabaseError(err)
	}

	log.ForContext(ctx).WithField("item_id", item.ID).Info("Item criado")
	return &item, nil
}

// UpdateItem substitui os campos editáveis. A entrada em "Sold" registra a venda.
func (s *Service) UpdateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(item.Status)) == "" {
		return nil, NewValidationError("status é obrigatório")
	}

	current, err := s.GetItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	item.Timestamp = current.Timestamp
	if err := s.itemRepo.UpdateItem(ctx, item); err != nil {
		return nil, NewDatabaseError(err)
	}

	if err := s.recordSaleOnTransition(ctx, *current, item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (s *Service) UpdateItemStatus(ctx context.Context, id string, status domain.ItemStatus) (*domain.Item, error) {
	if strings.TrimSpace(string(status)) == "" {
		return nil, NewValidationError("status é obrigatório")
	}

	current, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.UpdateItemStatus(ctx, id, status); err != nil {
		return nil, NewDatabaseError(err)
	}

	updated := *current
	updated.Status = status
	if err := s.recordSaleOnTransition(ctx, *current, updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// recordSaleOnTransition só grava a venda quando o item entra em "Sold" vindo de outro status
func (s *Service) recordSaleOnTransition(ctx context.Context, before, after domain.Item) error {
	if before.Status == domain.ItemStatusSold || after.Status != domain.ItemStatusSold {
		return nil
	}

	sale, err := SaleFromItem(after, s.now(), s.loc)
	if err != nil {
		return NewInventoryError(err, apiErrors.ErrInternalServer, "erro ao gerar id da venda")
	}

	if err := s.saleRepo.CreateSale(ctx, sale); err != nil {
		return NewDatabaseError(err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"item_id": after.ID,
		"sale_id": sale.ID,
	}).Info("Venda registrada")
	return nil
}

// SaleFromItem monta a venda de um item vendido agora
func SaleFromItem(item domain.Item, now time.Time, loc *time.Location) (domain.Sale, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return domain.Sale{}, err
	}

	category := strings.TrimSpace(item.Category)
	if category == "" {
		category = domain.UncategorizedCategory
	}

	timestamp := now.UnixMilli()
	return domain.Sale{
		ID:        id,
		Amount:    item.Price,
		Timestamp: timestamp,
		Date:      utils.DayOf(timestamp, loc),
		Category:  category,
	}, nil
}

func (s *Service) DeleteItem(ctx context.Context, id string) error {
	err := s.itemRepo.DeleteItem(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NewNotFoundError(ErrItemNotFound, id)
	}
	if err != nil {
		return NewDatabaseError(err)
	}
	return nil
}

func (s *Service) ListCatalog(ctx context.Context, kind domain.CatalogKind) ([]string, error) {
	if !kind.Valid() {
		return nil, NewInventoryError(ErrInvalidCatalog, apiErrors.ErrInvalidRequest, string(kind))
	}

	entries, err := s.catalogRepo.ListEntries(ctx, kind)
	if err != nil {
		return nil, NewDatabaseError(err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names, nil
}

func (s *Service) AddCatalogEntry(ctx context.Context, kind domain.CatalogKind, name string) (*domain.CatalogEntry, error) {
	if !kind.Valid() {
		return nil, NewInventoryError(ErrInvalidCatalog, apiErrors.ErrInvalidRequest, string(kind))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("nome é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewInventoryError(err, apiErrors.ErrInternalServer, "erro ao gerar id")
	}

	entry := domain.CatalogEntry{ID: id, Name: name}
	if err := s.catalogRepo.AddEntry(ctx, kind, entry); err != nil {
		return nil, NewDatabaseError(err)
	}
	return &entry, nil
}
