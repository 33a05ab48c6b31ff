package selling

import (
	"context"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/sustain-inventory/inventory-api/infrastructure/repository"
	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/aggregating"
	"github.com/sustain-inventory/inventory-api/internal/usecases/inventory"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
	"github.com/sustain-inventory/inventory-api/pkg/log"
	"github.com/sustain-inventory/inventory-api/pkg/utils"
)

const (
	DefaultSeedCount = 50
	MaxSeedCount     = 500
	seedDaysBack     = 30
	seedMinAmount    = 50
	seedAmountRange  = 300
)

// SeedCategories são as categorias usadas nas vendas de exemplo
var SeedCategories = []string{"Clothes", "Shoes", "Accessories", "Electronics", "Home Items"}

type Seller interface {
	ListSales(ctx context.Context) (*domain.SalesListResponse, error)
	DeleteSale(ctx context.Context, id string) error
	SeedSales(ctx context.Context, count int) ([]domain.Sale, error)
}

type Service struct {
	saleRepo   repository.SaleRepository
	normalizer *aggregating.Normalizer
	loc        *time.Location
	now        func() time.Time
	rnd        *rand.Rand
}

func NewService(saleRepo repository.SaleRepository, cfg *config.Config) *Service {
	loc := cfg.SalesLocation()
	return &Service{
		saleRepo:   saleRepo,
		normalizer: aggregating.NewNormalizer(loc),
		loc:        loc,
		now:        time.Now,
		rnd:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	s.normalizer.WithClock(now)
	return s
}

func (s *Service) WithRand(rnd *rand.Rand) *Service {
	s.rnd = rnd
	return s
}

// ListSales devolve as vendas da mais recente para a mais antiga, com o total
func (s *Service) ListSales(ctx context.Context) (*domain.SalesListResponse, error) {
	records, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, inventory.NewDatabaseError(err)
	}

	sales := s.normalizer.NormalizeAll(records)
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Timestamp > sales[j].Timestamp
	})

	return &domain.SalesListResponse{
		Sales:       sales,
		TotalAmount: aggregating.Total(sales),
	}, nil
}

func (s *Service) DeleteSale(ctx context.Context, id string) error {
	err := s.saleRepo.DeleteSale(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return inventory.NewNotFoundError(inventory.ErrSaleNotFound, id)
	}
	if err != nil {
		return inventory.NewDatabaseError(err)
	}
	return nil
}

// SeedSales gera vendas aleatórias dos últimos 30 dias para popular o dashboard
func (s *Service) SeedSales(ctx context.Context, count int) ([]domain.Sale, error) {
	if count <= 0 {
		count = DefaultSeedCount
	}
	if count > MaxSeedCount {
		return nil, inventory.NewInventoryError(inventory.ErrMissingRequiredData, apiErrors.ErrInvalidRequest, "quantidade máxima excedida")
	}

	now := s.now()
	sales := make([]domain.Sale, 0, count)
	for i := 0; i < count; i++ {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, inventory.NewInventoryError(err, apiErrors.ErrInternalServer, "erro ao gerar id")
		}

		when := now.AddDate(0, 0, -s.rnd.IntN(seedDaysBack))
		timestamp := when.UnixMilli()
		sales = append(sales, domain.Sale{
			ID:        id,
			Amount:    decimal.NewFromInt(int64(seedMinAmount + s.rnd.IntN(seedAmountRange))),
			Timestamp: timestamp,
			Date:      utils.DayOf(timestamp, s.loc),
			Category:  SeedCategories[s.rnd.IntN(len(SeedCategories))],
		})
	}

	if err := s.saleRepo.CreateSales(ctx, sales); err != nil {
		return nil, inventory.NewDatabaseError(err)
	}

	log.ForContext(ctx).Infof("%d vendas de exemplo adicionadas", len(sales))
	return sales, nil
}
