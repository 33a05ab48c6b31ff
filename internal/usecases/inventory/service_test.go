package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sustain-inventory/inventory-api/infrastructure/repository"
	"github.com/sustain-inventory/inventory-api/infrastructure/repository/mocks"
	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
)

var fixedNow = time.Date(2024, 1, 11, 15, 30, 0, 0, time.UTC)

type serviceMocks struct {
	items    *mocks.MockItemRepository
	sales    *mocks.MockSaleRepository
	catalogs *mocks.MockCatalogRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		items:    mocks.NewMockItemRepository(ctrl),
		sales:    mocks.NewMockSaleRepository(ctrl),
		catalogs: mocks.NewMockCatalogRepository(ctrl),
	}
	cfg := &config.Config{Sales: config.Sales{Timezone: "UTC"}}
	service := NewService(m.items, m.sales, m.catalogs, cfg).
		WithClock(func() time.Time { return fixedNow })
	return service, m
}

func lamp(status domain.ItemStatus) *domain.Item {
	return &domain.Item{
		ID:        "i1",
		Name:      "Lamp",
		Category:  "Home Items",
		Condition: "Good",
		Price:     decimal.RequireFromString("350.50"),
		Status:    status,
		Timestamp: 1704067200000,
	}
}

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var invErr *InventoryError
	require.True(t, errors.As(err, &invErr), "esperava *InventoryError, recebeu %v", err)
	return invErr.Code
}

func TestService_CreateItem(t *testing.T) {
	t.Run("status sempre In Stock", func(t *testing.T) {
		service, m := newTestService(t)
		m.items.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item domain.Item) error {
				assert.NotEmpty(t, item.ID)
				assert.Equal(t, domain.ItemStatusInStock, item.Status)
				assert.Equal(t, fixedNow.UnixMilli(), item.Timestamp)
				assert.Equal(t, "Lamp", item.Name)
				return nil
			})

		item, err := service.CreateItem(context.Background(), domain.Item{
			Name:   "  Lamp ",
			Price:  decimal.NewFromInt(100),
			Status: domain.ItemStatusSold,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.ItemStatusInStock, item.Status)
	})

	t.Run("nome em branco", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateItem(context.Background(), domain.Item{Name: " "})

		assert.Equal(t, apiErrors.ErrMissingRequiredData, codeOf(t, err))
	})

	t.Run("preço negativo", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateItem(context.Background(), domain.Item{Name: "Lamp", Price: decimal.NewFromInt(-1)})

		assert.ErrorIs(t, err, ErrInvalidItem)
	})
}

func TestService_UpdateItemStatus(t *testing.T) {
	tests := []struct {
		name     string
		from     domain.ItemStatus
		to       domain.ItemStatus
		setup    func(m serviceMocks)
		validate func(t *testing.T, item *domain.Item, err error)
	}{
		{
			name: "entrada em Sold registra a venda",
			from: domain.ItemStatusInStock,
			to:   domain.ItemStatusSold,
			setup: func(m serviceMocks) {
				m.items.EXPECT().UpdateItemStatus(gomock.Any(), "i1", domain.ItemStatusSold).Return(nil)
				m.sales.EXPECT().CreateSale(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sale domain.Sale) error {
						assert.NotEmpty(t, sale.ID)
						assert.Equal(t, "350.5", sale.Amount.String())
						assert.Equal(t, "Home Items", sale.Category)
						assert.Equal(t, fixedNow.UnixMilli(), sale.Timestamp)
						assert.Equal(t, "2024-01-11", sale.Date)
						return nil
					}).Times(1)
			},
			validate: func(t *testing.T, item *domain.Item, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ItemStatusSold, item.Status)
			},
		},
		{
			name: "Sold para Sold não duplica a venda",
			from: domain.ItemStatusSold,
			to:   domain.ItemStatusSold,
			setup: func(m serviceMocks) {
				m.items.EXPECT().UpdateItemStatus(gomock.Any(), "i1", domain.ItemStatusSold).Return(nil)
			},
			validate: func(t *testing.T, item *domain.Item, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "saída de Sold não mexe nas vendas",
			from: domain.ItemStatusSold,
			to:   domain.ItemStatusInStock,
			setup: func(m serviceMocks) {
				m.items.EXPECT().UpdateItemStatus(gomock.Any(), "i1", domain.ItemStatusInStock).Return(nil)
			},
			validate: func(t *testing.T, item *domain.Item, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ItemStatusInStock, item.Status)
			},
		},
		{
			name: "status definido pelo usuário é aceito",
			from: domain.ItemStatusInStock,
			to:   domain.ItemStatus("On Display"),
			setup: func(m serviceMocks) {
				m.items.EXPECT().UpdateItemStatus(gomock.Any(), "i1", domain.ItemStatus("On Display")).Return(nil)
			},
			validate: func(t *testing.T, item *domain.Item, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "falha ao gravar a venda",
			from: domain.ItemStatusReserved,
			to:   domain.ItemStatusSold,
			setup: func(m serviceMocks) {
				m.items.EXPECT().UpdateItemStatus(gomock.Any(), "i1", domain.ItemStatusSold).Return(nil)
				m.sales.EXPECT().CreateSale(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
			},
			validate: func(t *testing.T, item *domain.Item, err error) {
				assert.ErrorIs(t, err, ErrDatabaseOperation)
				assert.Nil(t, item)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			m.items.EXPECT().GetItem(gomock.Any(), "i1").Return(lamp(tt.from), nil)
			tt.setup(m)

			item, err := service.UpdateItemStatus(context.Background(), "i1", tt.to)

			tt.validate(t, item, err)
		})
	}
}

func TestService_UpdateItem(t *testing.T) {
	t.Run("item inexistente", func(t *testing.T) {
		service, m := newTestService(t)
		m.items.EXPECT().GetItem(gomock.Any(), "ghost").Return(nil, nil)

		_, err := service.UpdateItem(context.Background(), domain.Item{ID: "ghost", Name: "Lamp", Status: domain.ItemStatusInStock})

		assert.Equal(t, apiErrors.ErrNotFound, codeOf(t, err))
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("edição marcando como vendido registra a venda", func(t *testing.T) {
		service, m := newTestService(t)
		edited := *lamp(domain.ItemStatusSold)
		edited.Price = decimal.NewFromInt(300)
		edited.Timestamp = 0

		m.items.EXPECT().GetItem(gomock.Any(), "i1").Return(lamp(domain.ItemStatusInStock), nil)
		m.items.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item domain.Item) error {
				assert.Equal(t, int64(1704067200000), item.Timestamp)
				return nil
			})
		m.sales.EXPECT().CreateSale(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sale domain.Sale) error {
				assert.Equal(t, "300", sale.Amount.String())
				return nil
			})

		item, err := service.UpdateItem(context.Background(), edited)

		require.NoError(t, err)
		assert.Equal(t, domain.ItemStatusSold, item.Status)
	})
}

func TestService_DeleteItem(t *testing.T) {
	service, m := newTestService(t)
	m.items.EXPECT().DeleteItem(gomock.Any(), "i1").Return(nil)
	m.items.EXPECT().DeleteItem(gomock.Any(), "ghost").Return(repository.ErrNotFound)

	assert.NoError(t, service.DeleteItem(context.Background(), "i1"))
	assert.ErrorIs(t, service.DeleteItem(context.Background(), "ghost"), ErrItemNotFound)
}

func TestService_Catalogs(t *testing.T) {
	service, m := newTestService(t)
	m.catalogs.EXPECT().ListEntries(gomock.Any(), domain.CatalogCategories).
		Return([]domain.CatalogEntry{{ID: "c1", Name: "Books"}, {ID: "c2", Name: "Shoes"}}, nil)
	m.catalogs.EXPECT().AddEntry(gomock.Any(), domain.CatalogStatuses, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.CatalogKind, entry domain.CatalogEntry) error {
			assert.Equal(t, "On Display", entry.Name)
			return nil
		})

	names, err := service.ListCatalog(context.Background(), domain.CatalogCategories)
	require.NoError(t, err)
	assert.Equal(t, []string{"Books", "Shoes"}, names)

	entry, err := service.AddCatalogEntry(context.Background(), domain.CatalogStatuses, " On Display ")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)

	_, err = service.AddCatalogEntry(context.Background(), domain.CatalogConditions, "   ")
	assert.ErrorIs(t, err, ErrMissingRequiredData)

	_, err = service.ListCatalog(context.Background(), domain.CatalogKind("users"))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}
