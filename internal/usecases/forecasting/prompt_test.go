package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustain-inventory/inventory-api/internal/domain"
)

func TestBuildPrompt(t *testing.T) {
	req := domain.ForecastRequest{
		Sales:         []float64{100, 250.5},
		CategorySales: map[string][]float64{"Shoes": {100, 0}, "Clothes": {0, 250.5}},
	}

	prompt, err := BuildPrompt(req, 7)

	require.NoError(t, err)
	assert.Contains(t, prompt, "[100,250.5]")
	assert.Contains(t, prompt, `{"Clothes":[0,250.5],"Shoes":[100,0]}`)
	assert.Contains(t, prompt, "next 7 days of total sales")
	assert.Contains(t, prompt, `"overallForecast": [7 numbers]`)
}

func TestBuildPrompt_EmptySeries(t *testing.T) {
	prompt, err := BuildPrompt(domain.ForecastRequest{}, 0)

	require.NoError(t, err)
	assert.Contains(t, prompt, "TOTAL DAILY SALES (chronological): []")
	assert.Contains(t, prompt, "aligned with the total series): {}")
	assert.Contains(t, prompt, "next 7 days")
}

func TestCacheKey(t *testing.T) {
	a := domain.ForecastRequest{Sales: []float64{1}, CategorySales: map[string][]float64{"A": {1}, "B": {0}}}
	b := domain.ForecastRequest{Sales: []float64{1}, CategorySales: map[string][]float64{"B": {0}, "A": {1}}}
	c := domain.ForecastRequest{Sales: []float64{2}}

	keyA, err := CacheKey(a, 7, "gemini-2.5-flash")
	require.NoError(t, err)
	keyB, _ := CacheKey(b, 7, "gemini-2.5-flash")
	keyC, _ := CacheKey(c, 7, "gemini-2.5-flash")

	assert.Equal(t, keyA, keyB)
	assert.NotEqual(t, keyA, keyC)
	assert.Len(t, keyA, len("forecast:")+64)

	otherHorizon, _ := CacheKey(a, 14, "gemini-2.5-flash")
	otherModel, _ := CacheKey(a, 7, "gemini-2.5-pro")
	defaultHorizon, _ := CacheKey(a, 0, "gemini-2.5-flash")

	assert.NotEqual(t, keyA, otherHorizon)
	assert.NotEqual(t, keyA, otherModel)
	assert.Equal(t, keyA, defaultHorizon)
}
