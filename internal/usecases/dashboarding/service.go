package dashboarding

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/sustain-inventory/inventory-api/infrastructure/repository"
	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/aggregating"
	"github.com/sustain-inventory/inventory-api/internal/usecases/forecasting"
	"github.com/sustain-inventory/inventory-api/pkg/log"
)

type Dashboarder interface {
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)
	GetAnalytics(ctx context.Context) (*domain.Analytics, error)
	// BuildForecastSeries agrega as vendas e pede a previsão; usado também pelo job de snapshot
	BuildForecastSeries(ctx context.Context) (*ForecastSeries, error)
}

// ForecastSeries é o histórico agregado junto com a previsão devolvida pelo Requester
type ForecastSeries struct {
	Sales  []domain.Sale
	Dates  []string
	Totals []decimal.Decimal
	Result domain.ForecastResult
}

type Service struct {
	saleRepo   repository.SaleRepository
	itemRepo   repository.ItemRepository
	requester  forecasting.Requester
	normalizer *aggregating.Normalizer
	window     int
	horizon    int
}

func NewService(
	saleRepo repository.SaleRepository,
	itemRepo repository.ItemRepository,
	requester forecasting.Requester,
	cfg *config.Config,
) *Service {
	return &Service{
		saleRepo:   saleRepo,
		itemRepo:   itemRepo,
		requester:  requester,
		normalizer: aggregating.NewNormalizer(cfg.SalesLocation()),
		window:     cfg.Sales.MovingAverageWindow,
		horizon:    cfg.Forecast.HorizonDays,
	}
}

// WithClock fixa o relógio usado para vendas sem timestamp
func (s *Service) WithClock(now func() time.Time) *Service {
	s.normalizer.WithClock(now)
	return s
}

func (s *Service) loadSales(ctx context.Context) ([]domain.Sale, error) {
	records, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas")
	}
	return s.normalizer.NormalizeAll(records), nil
}

func (s *Service) BuildForecastSeries(ctx context.Context) (*ForecastSeries, error) {
	sales, err := s.loadSales(ctx)
	if err != nil {
		return nil, err
	}

	// A agregação termina antes da requisição: o corpo depende dela
	dates, totals := aggregating.AggregateDaily(sales)
	series := aggregating.AggregateByCategory(sales, dates)

	var result domain.ForecastResult
	if len(dates) == 0 {
		log.ForContext(ctx).Info("dashboard: nenhuma venda registrada, previsão ignorada")
		result = forecasting.DegradedResult(forecasting.ErrEmptyHistory.Error())
	} else {
		result = s.requester.RequestForecast(ctx, aggregating.ToFloats(totals), aggregating.CategoryFloats(series))
	}

	return &ForecastSeries{
		Sales:  sales,
		Dates:  dates,
		Totals: totals,
		Result: result.WithDefaults(),
	}, nil
}

func (s *Service) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	logger := log.ForContext(ctx)

	items, err := s.itemRepo.ListItems(ctx, domain.ItemFilters{})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar itens")
	}

	forecast, err := s.BuildForecastSeries(ctx)
	if err != nil {
		return nil, err
	}

	chart, err := BuildSalesChart(forecast.Dates, aggregating.ToFloats(forecast.Totals), forecast.Result.OverallForecast)
	if err != nil {
		// O gráfico sem previsão ainda é útil
		logger.WithError(err).Warn("dashboard: erro ao alinhar datas da previsão")
		chart, _ = BuildSalesChart(forecast.Dates, aggregating.ToFloats(forecast.Totals), nil)
	}

	averages := aggregating.MovingAverage(aggregating.ToFloats(forecast.Totals), s.window)

	return &domain.Dashboard{
		KPIs:             buildKPIs(items, forecast.Sales),
		SalesChart:       chart,
		CategoryCounts:   aggregating.CountByCategory(forecast.Sales),
		CategoryForecast: forecast.Result.CategoryForecast,
		BaselineForecast: aggregating.BaselineForecast(averages, s.horizon),
		Analysis:         forecast.Result.Analysis,
	}, nil
}

func (s *Service) GetAnalytics(ctx context.Context) (*domain.Analytics, error) {
	sales, err := s.loadSales(ctx)
	if err != nil {
		return nil, err
	}

	dates, totals := aggregating.AggregateDaily(sales)
	return &domain.Analytics{
		Dates:       dates,
		Totals:      totals,
		CategoryMix: aggregating.SumByCategory(sales),
	}, nil
}

func buildKPIs(items []domain.Item, sales []domain.Sale) domain.DashboardKPIs {
	kpis := domain.DashboardKPIs{
		TotalItems:       len(items),
		ItemsSold:        len(sales),
		TotalSalesAmount: aggregating.Total(sales),
	}
	for _, item := range items {
		if item.Status == domain.ItemStatusInStock {
			kpis.InStock++
		}
	}
	return kpis
}

// BuildSalesChart junta histórico e previsão no mesmo eixo. A série real é nula nos dias
// previstos e a previsão é nula nos dias históricos.
func BuildSalesChart(dates []string, actual []float64, forecast []float64) (domain.SalesChart, error) {
	chart := domain.SalesChart{
		Dates:    append([]string{}, dates...),
		Actual:   make([]*float64, 0, len(actual)+len(forecast)),
		Forecast: make([]*float64, 0, len(actual)+len(forecast)),
	}

	for i := range actual {
		chart.Actual = append(chart.Actual, &actual[i])
		chart.Forecast = append(chart.Forecast, nil)
	}

	if len(forecast) > 0 && len(dates) > 0 {
		future, err := forecasting.FutureDateLabels(dates[len(dates)-1], len(forecast))
		if err != nil {
			return domain.SalesChart{}, err
		}
		chart.Dates = append(chart.Dates, future...)
		for i := range forecast {
			chart.Actual = append(chart.Actual, nil)
			chart.Forecast = append(chart.Forecast, &forecast[i])
		}
	}

	chart.Labels = make([]string, 0, len(chart.Dates))
	for _, date := range chart.Dates {
		chart.Labels = append(chart.Labels, forecasting.DisplayLabel(date))
	}

	return chart, nil
}
