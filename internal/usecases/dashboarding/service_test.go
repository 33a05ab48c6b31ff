package dashboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repoMocks "github.com/sustain-inventory/inventory-api/infrastructure/repository/mocks"
	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/forecasting"
	forecastMocks "github.com/sustain-inventory/inventory-api/internal/usecases/forecasting/mocks"
)

func ptr[T any](v T) *T {
	return &v
}

func testConfig() *config.Config {
	return &config.Config{
		Sales:    config.Sales{Timezone: "UTC", MovingAverageWindow: 2},
		Forecast: config.Forecast{HorizonDays: 3},
	}
}

func sampleRecords() []domain.SaleRecord {
	return []domain.SaleRecord{
		{ID: "s1", Amount: 100.0, Timestamp: ptr(int64(1704844800000)), Date: ptr("2024-01-10"), Category: ptr("Shoes")},
		{ID: "s2", Amount: "50", Timestamp: ptr(int64(1704844900000)), Date: ptr("2024-01-10")},
		{ID: "s3", Amount: 30.0, Timestamp: ptr(int64(1704931200000)), Date: ptr("2024-01-11"), Category: ptr("Shoes")},
	}
}

func sampleItems() []domain.Item {
	return []domain.Item{
		{ID: "i1", Status: domain.ItemStatusInStock},
		{ID: "i2", Status: domain.ItemStatusInStock},
		{ID: "i3", Status: domain.ItemStatusSold},
	}
}

func TestService_GetDashboard(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(sales *repoMocks.MockSaleRepository, items *repoMocks.MockItemRepository, requester *forecastMocks.MockRequester)
		validate func(t *testing.T, dashboard *domain.Dashboard, err error)
	}{
		{
			name: "histórico e previsão no mesmo eixo",
			setup: func(sales *repoMocks.MockSaleRepository, items *repoMocks.MockItemRepository, requester *forecastMocks.MockRequester) {
				items.EXPECT().ListItems(gomock.Any(), domain.ItemFilters{}).Return(sampleItems(), nil)
				sales.EXPECT().ListSales(gomock.Any()).Return(sampleRecords(), nil)
				requester.EXPECT().
					RequestForecast(gomock.Any(), []float64{150, 30}, map[string][]float64{
						"Shoes":         {100, 30},
						"Uncategorized": {50, 0},
					}).
					Return(domain.ForecastResult{OverallForecast: []float64{160, 170}, Analysis: "Upward trend"})
			},
			validate: func(t *testing.T, dashboard *domain.Dashboard, err error) {
				require.NoError(t, err)

				assert.Equal(t, 3, dashboard.KPIs.TotalItems)
				assert.Equal(t, 2, dashboard.KPIs.InStock)
				assert.Equal(t, 3, dashboard.KPIs.ItemsSold)
				assert.Equal(t, "180", dashboard.KPIs.TotalSalesAmount.String())

				chart := dashboard.SalesChart
				assert.Equal(t, []string{"2024-01-10", "2024-01-11", "2024-01-12", "2024-01-13"}, chart.Dates)
				assert.Equal(t, []string{"Jan 10", "Jan 11", "Jan 12", "Jan 13"}, chart.Labels)
				assert.Equal(t, []*float64{ptr(150.0), ptr(30.0), nil, nil}, chart.Actual)
				assert.Equal(t, []*float64{nil, nil, ptr(160.0), ptr(170.0)}, chart.Forecast)

				assert.Equal(t, map[string]int{"Shoes": 2, "Uncategorized": 1}, dashboard.CategoryCounts)
				assert.Equal(t, map[string][]float64{}, dashboard.CategoryForecast)
				assert.Equal(t, []float64{90, 90, 90}, dashboard.BaselineForecast)
				assert.Equal(t, "Upward trend", dashboard.Analysis)
			},
		},
		{
			name: "previsão degradada mantém o histórico",
			setup: func(sales *repoMocks.MockSaleRepository, items *repoMocks.MockItemRepository, requester *forecastMocks.MockRequester) {
				items.EXPECT().ListItems(gomock.Any(), gomock.Any()).Return(sampleItems(), nil)
				sales.EXPECT().ListSales(gomock.Any()).Return(sampleRecords(), nil)
				requester.EXPECT().RequestForecast(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(forecasting.DegradedResult("Network error."))
			},
			validate: func(t *testing.T, dashboard *domain.Dashboard, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"2024-01-10", "2024-01-11"}, dashboard.SalesChart.Dates)
				assert.Equal(t, []*float64{nil, nil}, dashboard.SalesChart.Forecast)
				assert.Equal(t, "AI forecast unavailable: Network error.", dashboard.Analysis)
				assert.Len(t, dashboard.BaselineForecast, 3)
			},
		},
		{
			name: "sem vendas não chama a previsão",
			setup: func(sales *repoMocks.MockSaleRepository, items *repoMocks.MockItemRepository, requester *forecastMocks.MockRequester) {
				items.EXPECT().ListItems(gomock.Any(), gomock.Any()).Return([]domain.Item{}, nil)
				sales.EXPECT().ListSales(gomock.Any()).Return([]domain.SaleRecord{}, nil)
			},
			validate: func(t *testing.T, dashboard *domain.Dashboard, err error) {
				require.NoError(t, err)
				assert.Empty(t, dashboard.SalesChart.Dates)
				assert.Empty(t, dashboard.SalesChart.Actual)
				assert.Equal(t, []float64{}, dashboard.BaselineForecast)
				assert.Equal(t, "AI forecast unavailable: no sales history", dashboard.Analysis)
				assert.True(t, dashboard.KPIs.TotalSalesAmount.IsZero())
			},
		},
		{
			name: "erro no banco é propagado",
			setup: func(sales *repoMocks.MockSaleRepository, items *repoMocks.MockItemRepository, requester *forecastMocks.MockRequester) {
				items.EXPECT().ListItems(gomock.Any(), gomock.Any()).Return(sampleItems(), nil)
				sales.EXPECT().ListSales(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, dashboard *domain.Dashboard, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "connection refused")
				assert.Nil(t, dashboard)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sales := repoMocks.NewMockSaleRepository(ctrl)
			items := repoMocks.NewMockItemRepository(ctrl)
			requester := forecastMocks.NewMockRequester(ctrl)
			tt.setup(sales, items, requester)

			service := NewService(sales, items, requester, testConfig())
			dashboard, err := service.GetDashboard(context.Background())

			tt.validate(t, dashboard, err)
		})
	}
}

func TestService_GetAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	sales := repoMocks.NewMockSaleRepository(ctrl)
	sales.EXPECT().ListSales(gomock.Any()).Return(sampleRecords(), nil)

	service := NewService(sales, repoMocks.NewMockItemRepository(ctrl), forecastMocks.NewMockRequester(ctrl), testConfig())
	analytics, err := service.GetAnalytics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-10", "2024-01-11"}, analytics.Dates)
	require.Len(t, analytics.Totals, 2)
	assert.Equal(t, "150", analytics.Totals[0].String())
	assert.Equal(t, "130", analytics.CategoryMix["Shoes"].String())
	assert.Equal(t, "50", analytics.CategoryMix["Uncategorized"].String())
}

func TestBuildSalesChart_InvalidLastDate(t *testing.T) {
	_, err := BuildSalesChart([]string{"not-a-date"}, []float64{1}, []float64{2})
	assert.Error(t, err)

	chart, err := BuildSalesChart([]string{"not-a-date"}, []float64{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"not-a-date"}, chart.Labels)
}
