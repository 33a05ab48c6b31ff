package forecasting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/sustain-inventory/inventory-api/infrastructure/integrator/gemini"
	geminidomain "github.com/sustain-inventory/inventory-api/infrastructure/integrator/gemini/domain"
	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/pkg/log"
)

// Forecaster gera a previsão a partir das séries agregadas.
// Erros são *ForecastError.
type Forecaster interface {
	Forecast(ctx context.Context, req domain.ForecastRequest) (domain.ForecastResult, error)
}

type Service struct {
	gemini         gemini.GeminiIntegrator
	retrier        *Retrier
	limiter        *rate.Limiter
	cache          ForecastCache
	cacheTTL       time.Duration
	horizon        int
	model          string
	requestTimeout time.Duration // prazo de cada tentativa; zero deixa só o contexto do chamador
}

func NewService(cfg *config.Config, geminiService gemini.GeminiIntegrator) *Service {
	policy := RetryPolicy{
		MaxAttempts:  cfg.Forecast.MaxAttempts,
		InitialDelay: cfg.Forecast.InitialBackoff,
		Multiplier:   cfg.Forecast.BackoffMultiplier,
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.Forecast.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.Forecast.RatePerMinute)), cfg.Forecast.RatePerMinute)
	}

	return &Service{
		gemini:         geminiService,
		retrier:        NewRetrier(policy),
		limiter:        limiter,
		cacheTTL:       cfg.Forecast.CacheTTL,
		horizon:        cfg.Forecast.HorizonDays,
		model:          cfg.Gemini.Model,
		requestTimeout: cfg.Forecast.RequestTimeout,
	}
}

// WithCache habilita o cache de previsões
func (s *Service) WithCache(cache ForecastCache) *Service {
	s.cache = cache
	return s
}

// WithRetrier troca a política de novas tentativas
func (s *Service) WithRetrier(retrier *Retrier) *Service {
	s.retrier = retrier
	return s
}

func (s *Service) Forecast(ctx context.Context, req domain.ForecastRequest) (domain.ForecastResult, error) {
	logger := log.ForContext(ctx)

	if s.gemini == nil || !s.gemini.Configured() {
		return domain.ForecastResult{}, NewProviderNotConfiguredError()
	}

	cached := s.cachedResult(ctx, req)
	if cached.hit != nil {
		logger.Debug("forecast: resultado encontrado no cache")
		return *cached.hit, nil
	}

	prompt, err := BuildPrompt(req, s.horizon)
	if err != nil {
		return domain.ForecastResult{}, NewRequestFailedError(0, errors.Wrap(err, "erro ao montar o prompt"))
	}

	var raw string
	attempts, err := s.retrier.Do(ctx, func(ctx context.Context) error {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
		if s.requestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
			defer cancel()
		}
		text, err := s.gemini.GenerateText(ctx, prompt)
		if err != nil {
			return err
		}
		raw = text
		return nil
	}, ClassifyProviderError)
	if err != nil {
		var exhausted *ExhaustedError
		if errors.As(err, &exhausted) {
			logger.WithField("attempt", attempts).WithError(err).Error("forecast: tentativas esgotadas")
			return domain.ForecastResult{}, NewRetriesExhaustedError(attempts, exhausted.Last)
		}
		if errors.Is(err, geminidomain.ErrMissingAPIKey) {
			return domain.ForecastResult{}, NewProviderNotConfiguredError()
		}
		logger.WithError(err).Error("forecast: falha no provedor")
		return domain.ForecastResult{}, NewRequestFailedError(attempts, err)
	}

	result, err := ParseForecast(raw)
	if err != nil {
		logger.WithError(err).Errorf("forecast: resposta da IA não é JSON válido: %q", raw)
		return domain.ForecastResult{}, err
	}

	if s.cache != nil && cached.key != "" {
		if err := s.cache.Set(ctx, cached.key, result, s.cacheTTL); err != nil {
			logger.WithError(err).Warn("forecast: erro ao gravar no cache")
		}
	}

	return result, nil
}

type cacheLookup struct {
	key string
	hit *domain.ForecastResult
}

// cachedResult consulta o cache. Falhas do cache não interrompem a previsão.
func (s *Service) cachedResult(ctx context.Context, req domain.ForecastRequest) cacheLookup {
	if s.cache == nil {
		return cacheLookup{}
	}

	key, err := CacheKey(req, s.horizon, s.model)
	if err != nil {
		return cacheLookup{}
	}

	hit, err := s.cache.Get(ctx, key)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("forecast: erro ao ler o cache")
		return cacheLookup{key: key}
	}
	return cacheLookup{key: key, hit: hit}
}

// ClassifyProviderError separa falhas de cota/sobrecarga das demais
func ClassifyProviderError(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}
	if geminidomain.IsTransient(err) {
		return OutcomeTransient
	}
	return OutcomeFatal
}
