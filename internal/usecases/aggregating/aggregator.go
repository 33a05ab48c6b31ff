package aggregating

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sustain-inventory/inventory-api/internal/domain"
)

// AggregateDaily soma as vendas por dia. As datas saem em ordem crescente e
// totals[i] corresponde a dates[i].
func AggregateDaily(sales []domain.Sale) ([]string, []decimal.Decimal) {
	byDate := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		byDate[sale.Date] = byDate[sale.Date].Add(sale.Amount)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	totals := make([]decimal.Decimal, len(dates))
	for i, date := range dates {
		totals[i] = byDate[date]
	}

	return dates, totals
}

// AggregateByCategory monta uma série por categoria alinhada ao eixo de datas recebido.
// Dias sem venda da categoria ficam com zero.
func AggregateByCategory(sales []domain.Sale, sortedDates []string) map[string][]decimal.Decimal {
	index := make(map[string]int, len(sortedDates))
	for i, date := range sortedDates {
		index[date] = i
	}

	series := make(map[string][]decimal.Decimal)
	for _, sale := range sales {
		pos, ok := index[sale.Date]
		if !ok {
			continue
		}

		category := categoryOf(sale)
		values, exists := series[category]
		if !exists {
			values = make([]decimal.Decimal, len(sortedDates))
			for i := range values {
				values[i] = decimal.Zero
			}
			series[category] = values
		}
		values[pos] = values[pos].Add(sale.Amount)
	}

	return series
}

// CountByCategory conta transações por categoria (gráfico de mix, não entra na previsão)
func CountByCategory(sales []domain.Sale) map[string]int {
	counts := make(map[string]int)
	for _, sale := range sales {
		counts[categoryOf(sale)]++
	}
	return counts
}

// SumByCategory soma os valores por categoria para a página de analytics
func SumByCategory(sales []domain.Sale) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		category := categoryOf(sale)
		sums[category] = sums[category].Add(sale.Amount)
	}
	return sums
}

// Total soma o valor de todas as vendas
func Total(sales []domain.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Amount)
	}
	return total
}

// ToFloats converte a série para o formato enviado ao endpoint de previsão
func ToFloats(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.InexactFloat64()
	}
	return out
}

func CategoryFloats(series map[string][]decimal.Decimal) map[string][]float64 {
	out := make(map[string][]float64, len(series))
	for category, values := range series {
		out[category] = ToFloats(values)
	}
	return out
}

func categoryOf(sale domain.Sale) string {
	if sale.Category == "" {
		return domain.UncategorizedCategory
	}
	return sale.Category
}
