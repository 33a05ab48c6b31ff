package geminidomain

import (
	"errors"
	"net/http"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
)

var (
	ErrMissingAPIKey = errors.New("Gemini API key missing.")
	ErrEmptyResponse = errors.New("no text content received from AI")
)

// Trechos que o provedor usa quando a cota estoura ou o modelo está sobrecarregado
var transientMarkers = []string{
	"RESOURCE_EXHAUSTED",
	"quota",
	"rate limit",
	"Error 429",
	"Error 503",
	"overloaded",
	"UNAVAILABLE",
}

// IsTransient indica se o erro do Gemini tende a sumir sozinho (limite de cota ou sobrecarga)
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return isTransientHTTPCode(gErr.Code)
	}

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		if isTransientHTTPCode(apiErr.HTTPCode()) {
			return true
		}
		if status := apiErr.GRPCStatus(); status != nil {
			return status.Code() == codes.ResourceExhausted || status.Code() == codes.Unavailable
		}
		return false
	}

	msg := err.Error()
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func isTransientHTTPCode(code int) bool {
	return code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable
}
