package domain

import "github.com/shopspring/decimal"

type ItemStatus string

const (
	ItemStatusInStock  ItemStatus = "In Stock"
	ItemStatusReserved ItemStatus = "Reserved"
	ItemStatusSold     ItemStatus = "Sold"
	ItemStatusMissing  ItemStatus = "Missing"
)

type Item struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Condition string          `json:"condition"`
	Price     decimal.Decimal `json:"price"`
	Status    ItemStatus      `json:"status"`
	Timestamp int64           `json:"timestamp"`
}

type ItemFilters struct {
	Search   string
	Category string
}

// AllCategories desativa o filtro por categoria
const AllCategories = "All"
