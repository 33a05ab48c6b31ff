package forecasting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/api/googleapi"

	geminimocks "github.com/sustain-inventory/inventory-api/infrastructure/integrator/gemini/mocks"
	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/forecasting/mocks"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
)

func testConfig() *config.Config {
	return &config.Config{
		Gemini:   config.Gemini{Model: "gemini-2.5-flash"},
		Forecast: config.Forecast{
			HorizonDays:       7,
			MaxAttempts:       3,
			InitialBackoff:    2 * time.Second,
			BackoffMultiplier: 2,
			CacheTTL:          time.Hour,
		},
	}
}

func newTestService(t *testing.T, gemini *geminimocks.MockGeminiIntegrator) (*Service, *recordingSleep) {
	t.Helper()
	sleeper := &recordingSleep{}
	svc := NewService(testConfig(), gemini).
		WithRetrier(NewRetrier(DefaultRetryPolicy()).WithSleep(sleeper.sleep))
	return svc, sleeper
}

var sampleRequest = domain.ForecastRequest{
	Sales:         []float64{120, 80},
	CategorySales: map[string][]float64{"Shoes": {120, 80}},
}

func TestService_Forecast(t *testing.T) {
	ctx := context.Background()

	t.Run("chave ausente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gemini := geminimocks.NewMockGeminiIntegrator(ctrl)
		gemini.EXPECT().Configured().Return(false)

		svc, _ := newTestService(t, gemini)
		_, err := svc.Forecast(ctx, sampleRequest)

		var fe *ForecastError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, apiErrors.ErrAIProviderMissing, fe.Code)
		assert.Equal(t, "Gemini API key missing.", err.Error())
	})

	t.Run("cota excedida esgota as três tentativas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gemini := geminimocks.NewMockGeminiIntegrator(ctrl)
		gemini.EXPECT().Configured().Return(true)
		gemini.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
			Return("", &googleapi.Error{Code: 429, Message: "RESOURCE_EXHAUSTED"}).
			Times(3)

		svc, sleeper := newTestService(t, gemini)
		_, err := svc.Forecast(ctx, sampleRequest)

		var fe *ForecastError
		require.ErrorAs(t, err, &fe)
		assert.ErrorIs(t, err, ErrRetriesExhausted)
		assert.Equal(t, apiErrors.ErrAIRateLimited, fe.Code)
		assert.Equal(t, 3, fe.Attempts)
		assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, sleeper.delays)
	})

	t.Run("erro não transitório não é repetido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gemini := geminimocks.NewMockGeminiIntegrator(ctrl)
		gemini.EXPECT().Configured().Return(true)
		gemini.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
			Return("", &googleapi.Error{Code: 400, Message: "invalid argument"}).
			Times(1)

		svc, sleeper := newTestService(t, gemini)
		_, err := svc.Forecast(ctx, sampleRequest)

		var fe *ForecastError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, apiErrors.ErrAIRequestFailed, fe.Code)
		assert.Equal(t, 1, fe.Attempts)
		assert.Empty(t, sleeper.delays)
	})

	t.Run("cada tentativa respeita o prazo configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gemini := geminimocks.NewMockGeminiIntegrator(ctrl)
		gemini.EXPECT().Configured().Return(true)
		gemini.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string) (string, error) {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				select {
				case <-ctx.Done():
					return "", ctx.Err()
				case <-time.After(2 * time.Second):
					return "", errors.New("provedor travado")
				}
			}).
			Times(1)

		cfg := testConfig()
		cfg.Forecast.RequestTimeout = 50 * time.Millisecond
		svc := NewService(cfg, gemini).WithRetrier(NewRetrier(RetryPolicy{MaxAttempts: 1}))

		start := time.Now()
		_, err := svc.Forecast(ctx, sampleRequest)
		elapsed := time.Since(start)

		var fe *ForecastError
		require.ErrorAs(t, err, &fe)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, apiErrors.ErrAIRequestFailed, fe.Code)
		assert.Less(t, elapsed, time.Second)
		assert.NoError(t, ctx.Err())
	})

	t.Run("resposta em cercas é decodificada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gemini := geminimocks.NewMockGeminiIntegrator(ctrl)
		gemini.EXPECT().Configured().Return(true)
		gemini.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
			Return("```json\n{\"overallForecast\":[10,11,12,13,14,15,16],\"analysis\":\"Shoes are rising.\"}\n```", nil)

		svc, _ := newTestService(t, gemini)
		result, err := svc.Forecast(ctx, sampleRequest)

		require.NoError(t, err)
		assert.Equal(t, []float64{10, 11, 12, 13, 14, 15, 16}, result.OverallForecast)
		assert.Equal(t, "Shoes are rising.", result.Analysis)
	})

	t.Run("JSON inválido é fatal e não repete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gemini := geminimocks.NewMockGeminiIntegrator(ctrl)
		gemini.EXPECT().Configured().Return(true)
		gemini.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
			Return("I think sales will go up!", nil).
			Times(1)

		svc, sleeper := newTestService(t, gemini)
		_, err := svc.Forecast(ctx, sampleRequest)

		assert.ErrorIs(t, err, ErrInvalidAIOutput)
		var exhausted *ExhaustedError
		assert.False(t, errors.As(err, &exhausted))
		assert.Empty(t, sleeper.delays)
	})

	t.Run("usa o cache quando existe resultado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gemini := geminimocks.NewMockGeminiIntegrator(ctrl)
		cache := mocks.NewMockForecastCache(ctrl)
		cached := &domain.ForecastResult{OverallForecast: []float64{1}, Analysis: "cached"}

		key, err := CacheKey(sampleRequest, 7, "gemini-2.5-flash")
		require.NoError(t, err)

		gemini.EXPECT().Configured().Return(true)
		cache.EXPECT().Get(gomock.Any(), key).Return(cached, nil)

		svc, _ := newTestService(t, gemini)
		result, err := svc.WithCache(cache).Forecast(ctx, sampleRequest)

		require.NoError(t, err)
		assert.Equal(t, "cached", result.Analysis)
	})

	t.Run("grava no cache após sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gemini := geminimocks.NewMockGeminiIntegrator(ctrl)
		cache := mocks.NewMockForecastCache(ctrl)

		gemini.EXPECT().Configured().Return(true)
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
		gemini.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return(`{"overallForecast":[5],"analysis":"ok"}`, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Hour).Return(nil)

		svc, _ := newTestService(t, gemini)
		result, err := svc.WithCache(cache).Forecast(ctx, sampleRequest)

		require.NoError(t, err)
		assert.Equal(t, []float64{5}, result.OverallForecast)
	})
}

func TestClassifyProviderError(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, ClassifyProviderError(nil))
	assert.Equal(t, OutcomeTransient, ClassifyProviderError(&googleapi.Error{Code: 429}))
	assert.Equal(t, OutcomeTransient, ClassifyProviderError(&googleapi.Error{Code: 503}))
	assert.Equal(t, OutcomeFatal, ClassifyProviderError(errors.New("boom")))
}
