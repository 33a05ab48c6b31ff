package domain

import "github.com/shopspring/decimal"

type DashboardKPIs struct {
	TotalItems       int             `json:"total_items"`
	InStock          int             `json:"in_stock"`
	ItemsSold        int             `json:"items_sold"`
	TotalSalesAmount decimal.Decimal `json:"total_sales_amount"`
}

// SalesChart traz o histórico seguido da previsão, no mesmo eixo de datas.
// Posições sem valor são nulas.
type SalesChart struct {
	Dates    []string   `json:"dates"`
	Labels   []string   `json:"labels"`
	Actual   []*float64 `json:"actual"`
	Forecast []*float64 `json:"forecast"`
}

type Dashboard struct {
	KPIs             DashboardKPIs        `json:"kpis"`
	SalesChart       SalesChart           `json:"sales_chart"`
	CategoryCounts   map[string]int       `json:"category_counts"`
	CategoryForecast map[string][]float64 `json:"category_forecast"`
	BaselineForecast []float64            `json:"baseline_forecast"`
	Analysis         string               `json:"analysis"`
}

type Analytics struct {
	Dates       []string                   `json:"dates"`
	Totals      []decimal.Decimal          `json:"totals"`
	CategoryMix map[string]decimal.Decimal `json:"category_mix"`
}
