package forecasting

import (
	"fmt"

	"github.com/sustain-inventory/inventory-api/internal/domain"
)

const promptTemplate = `You are an expert AI specializing in demand forecasting for retail surplus shops.

DATA:
- TOTAL DAILY SALES (chronological): %s
- CATEGORY SALES ({ category: [daily amounts] }, aligned with the total series): %s

TASKS:
1. Forecast the next %d days of total sales.
2. Forecast the next %d days of sales for EACH category.
3. Identify rising, falling and unstable categories.
4. Provide a 3-5 sentence analysis covering restocking advice, next week's priority category and low-demand risk areas.
5. Keep it organized and concise.

Return VALID JSON ONLY in this exact format:
{
  "overallForecast": [%d numbers],
  "categoryForecast": { "CategoryName": [%d numbers] },
  "analysis": "string"
}`

// BuildPrompt monta a instrução enviada ao modelo com as duas séries agregadas
func BuildPrompt(req domain.ForecastRequest, horizon int) (string, error) {
	if horizon <= 0 {
		horizon = domain.DefaultForecastHorizon
	}

	sales := req.Sales
	if sales == nil {
		sales = []float64{}
	}
	categorySales := req.CategorySales
	if categorySales == nil {
		categorySales = map[string][]float64{}
	}

	salesJSON, err := json.Marshal(sales)
	if err != nil {
		return "", err
	}
	categoryJSON, err := json.Marshal(categorySales)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(promptTemplate, salesJSON, categoryJSON, horizon, horizon, horizon, horizon), nil
}
