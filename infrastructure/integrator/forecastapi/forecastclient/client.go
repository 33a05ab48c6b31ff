package forecastclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/forecasting"
	"github.com/sustain-inventory/inventory-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodySize limita a leitura da resposta do endpoint
const maxBodySize = 1 << 20

var errNetwork = errors.New("network error")

// statusError é uma resposta não 2xx do endpoint de previsão
type statusError struct {
	StatusCode int
	Body       domain.ForecastErrorResponse
}

func (e *statusError) Error() string {
	if e.Body.Error != "" {
		return e.Body.Error
	}
	return "Server error"
}

// Client envia as séries agregadas para um endpoint de previsão remoto
type Client struct {
	httpClient *http.Client
	endpoint   string
	retrier    *forecasting.Retrier
}

// NewClient cria o cliente a partir de FORECAST_ENDPOINT_URL
func NewClient(cfg *config.Config) (*Client, error) {
	endpoint, err := url.Parse(cfg.Forecast.EndpointURL)
	if err != nil || endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("URL do endpoint de previsão inválida: %q", cfg.Forecast.EndpointURL)
	}
	if endpoint.Path == "" || endpoint.Path == "/" {
		endpoint.Path = path.Join(endpoint.Path, "/v1/forecast")
	}

	timeout := cfg.Forecast.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	policy := forecasting.RetryPolicy{
		MaxAttempts:  cfg.Forecast.MaxAttempts,
		InitialDelay: cfg.Forecast.InitialBackoff,
		Multiplier:   cfg.Forecast.BackoffMultiplier,
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint.String(),
		retrier:    forecasting.NewRetrier(policy),
	}, nil
}

// WithRetrier troca a política de novas tentativas
func (c *Client) WithRetrier(retrier *forecasting.Retrier) *Client {
	c.retrier = retrier
	return c
}

// WithHTTPClient troca o cliente HTTP
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// RequestForecast envia {sales, categorySales}. Qualquer falha vira resultado degradado.
func (c *Client) RequestForecast(ctx context.Context, dailyTotals []float64, categorySeries map[string][]float64) domain.ForecastResult {
	logger := log.ForContext(ctx)

	if dailyTotals == nil {
		dailyTotals = []float64{}
	}
	if categorySeries == nil {
		categorySeries = map[string][]float64{}
	}
	body, err := json.Marshal(domain.ForecastRequest{Sales: dailyTotals, CategorySales: categorySeries})
	if err != nil {
		return forecasting.DegradedResult(err.Error())
	}

	var raw []byte
	attempts, err := c.retrier.Do(ctx, func(ctx context.Context) error {
		respBody, err := c.post(ctx, body)
		if err != nil {
			return err
		}
		raw = respBody
		return nil
	}, classify)
	if err != nil {
		logger.WithField("attempt", attempts).WithError(err).Warn("forecast: endpoint indisponível")
		return degradedFor(err)
	}

	result, err := forecasting.ParseForecast(string(raw))
	if err != nil {
		logger.WithError(err).Warn("forecast: resposta do endpoint não é JSON válido")
		return forecasting.DegradedResult(forecasting.ErrInvalidAIOutput.Error())
	}

	return result
}

func (c *Client) post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errNetwork, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.Wrap(errNetwork, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &statusError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(respBody, &statusErr.Body)
		return nil, statusErr
	}

	return respBody, nil
}

// classify trata apenas 429 como transitório
func classify(err error) forecasting.Outcome {
	var statusErr *statusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusTooManyRequests {
		return forecasting.OutcomeTransient
	}
	return forecasting.OutcomeFatal
}

func degradedFor(err error) domain.ForecastResult {
	if errors.Is(err, errNetwork) {
		return domain.ForecastResult{
			OverallForecast:  []float64{},
			CategoryForecast: map[string][]float64{},
			Analysis:         "AI forecast unavailable. Network error.",
		}
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return forecasting.DegradedResult(statusErr.Error())
	}
	return forecasting.DegradedResult(err.Error())
}
