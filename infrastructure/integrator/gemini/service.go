package gemini

import (
	"context"

	"github.com/sustain-inventory/inventory-api/infrastructure/integrator/gemini/geminiclient"
	geminidomain "github.com/sustain-inventory/inventory-api/infrastructure/integrator/gemini/domain"
	"github.com/sustain-inventory/inventory-api/internal/config"
)

type GeminiIntegrator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

type GeminiService struct {
	cfg    *config.Config
	Client geminiclient.Client
}

// New cria o integrador. Client nulo significa chave ausente: toda chamada falha com ErrMissingAPIKey.
func New(cfg *config.Config, client geminiclient.Client) GeminiIntegrator {
	return &GeminiService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GeminiService) Configured() bool {
	return s.Client != nil && s.cfg.Gemini.APIKey != ""
}

func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if !s.Configured() {
		return "", geminidomain.ErrMissingAPIKey
	}

	return s.Client.GenerateText(ctx, s.cfg.Gemini.Model, prompt)
}
