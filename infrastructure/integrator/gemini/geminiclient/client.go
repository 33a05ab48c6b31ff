package geminiclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	geminidomain "github.com/sustain-inventory/inventory-api/infrastructure/integrator/gemini/domain"
	"github.com/sustain-inventory/inventory-api/internal/config"
	"google.golang.org/api/option"
)

type Client interface {
	GenerateText(ctx context.Context, model string, prompt string) (string, error)
	Close() error
}

type GenAIClient struct {
	client *genai.Client
}

// NewClient abre a conexão com o Gemini usando a chave da configuração
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, geminidomain.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}

	return &GenAIClient{client: client}, nil
}

func (c *GenAIClient) GenerateText(ctx context.Context, model string, prompt string) (string, error) {
	resp, err := c.client.GenerativeModel(model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	return extractText(resp)
}

func (c *GenAIClient) Close() error {
	return c.client.Close()
}

// extractText junta as partes de texto do primeiro candidato
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", geminidomain.ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", geminidomain.ErrEmptyResponse
	}
	return text, nil
}
