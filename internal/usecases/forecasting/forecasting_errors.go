package forecasting

import (
	"errors"

	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
)

var (
	ErrProviderNotConfigured = errors.New("Gemini API key missing.")
	ErrInvalidAIOutput       = errors.New("Invalid AI JSON output")
	ErrRetriesExhausted      = errors.New("forecast provider is rate limited, retries exhausted")
	ErrEmptyHistory          = errors.New("no sales history")
)

// ForecastError carrega o código de API da falha e quantas tentativas foram feitas
type ForecastError struct {
	Err      error
	Code     string
	Attempts int
	Details  string
}

func (e *ForecastError) Error() string {
	if e.Details != "" {
		return e.Err.Error() + ": " + e.Details
	}
	return e.Err.Error()
}

func (e *ForecastError) Unwrap() error {
	return e.Err
}

func NewProviderNotConfiguredError() *ForecastError {
	return &ForecastError{Err: ErrProviderNotConfigured, Code: apiErrors.ErrAIProviderMissing}
}

func NewRetriesExhaustedError(attempts int, last error) *ForecastError {
	fe := &ForecastError{Err: ErrRetriesExhausted, Code: apiErrors.ErrAIRateLimited, Attempts: attempts}
	if last != nil {
		fe.Details = last.Error()
	}
	return fe
}

func NewInvalidOutputError(details string) *ForecastError {
	return &ForecastError{Err: ErrInvalidAIOutput, Code: apiErrors.ErrAIInvalidOutput, Details: details}
}

func NewRequestFailedError(attempts int, err error) *ForecastError {
	return &ForecastError{Err: err, Code: apiErrors.ErrAIRequestFailed, Attempts: attempts}
}
