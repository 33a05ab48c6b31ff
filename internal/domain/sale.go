package domain

import (
	"github.com/shopspring/decimal"
)

// UncategorizedCategory recebe as vendas gravadas sem categoria
const UncategorizedCategory = "Uncategorized"

// SaleRecord é a venda como está armazenada, com campos opcionais.
// Amount aceita número, texto numérico ou decimal.
type SaleRecord struct {
	ID        string
	Amount    any
	Timestamp *int64
	Date      *string
	Category  *string
}

// Sale é a venda já normalizada, com todos os campos preenchidos
type Sale struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp int64           `json:"timestamp"`
	Date      string          `json:"date"`
	Category  string          `json:"category"`
}

type SalesListResponse struct {
	Sales       []Sale          `json:"sales"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type SeedSalesRequest struct {
	Count int `json:"count"`
}
