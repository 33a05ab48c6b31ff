package aggregating

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/pkg/utils"
)

// Normalizer aplica as regras de preenchimento das vendas antes de qualquer agregação
type Normalizer struct {
	loc *time.Location
	now func() time.Time
}

// NewNormalizer cria um normalizador que deriva o dia da venda no fuso informado
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{loc: loc, now: time.Now}
}

// WithClock substitui o relógio usado para vendas sem timestamp
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	n.now = now
	return n
}

// Normalize devolve uma venda com todos os campos preenchidos
func (n *Normalizer) Normalize(record domain.SaleRecord) domain.Sale {
	var timestamp int64
	if record.Timestamp != nil {
		timestamp = *record.Timestamp
	} else {
		timestamp = n.now().UnixMilli()
	}

	date := ""
	if record.Date != nil {
		date = strings.TrimSpace(*record.Date)
	}
	if !utils.IsISODate(date) {
		date = utils.DayOf(timestamp, n.loc)
	}

	category := domain.UncategorizedCategory
	if record.Category != nil && strings.TrimSpace(*record.Category) != "" {
		category = strings.TrimSpace(*record.Category)
	}

	return domain.Sale{
		ID:        record.ID,
		Amount:    coerceAmount(record.Amount),
		Timestamp: timestamp,
		Date:      date,
		Category:  category,
	}
}

func (n *Normalizer) NormalizeAll(records []domain.SaleRecord) []domain.Sale {
	sales := make([]domain.Sale, 0, len(records))
	for _, record := range records {
		sales = append(sales, n.Normalize(record))
	}
	return sales
}

// coerceAmount converte o valor armazenado em decimal. Ausente, inválido ou negativo vira zero.
func coerceAmount(raw any) decimal.Decimal {
	var amount decimal.Decimal

	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		amount = v
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero
		}
		amount = *v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero
		}
		amount = decimal.NewFromFloat(v)
	case float32:
		return coerceAmount(float64(v))
	case int:
		amount = decimal.NewFromInt(int64(v))
	case int64:
		amount = decimal.NewFromInt(v)
	case int32:
		amount = decimal.NewFromInt(int64(v))
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		amount = parsed
	case []byte:
		return coerceAmount(string(v))
	default:
		return decimal.Zero
	}

	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}
