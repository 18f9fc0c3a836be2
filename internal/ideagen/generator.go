package ideagen

import (
	"context"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"ideator/internal/config"
	"ideator/internal/pkg/errors"
)

// CompletionClient is the slice of the OpenAI client the generator
// needs. Satisfied by *openai.Client.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator turns generation requests into normalized idea records via
// an external completion API.
type Generator struct {
	client CompletionClient
	model  string
}

// New creates a generator backed by the configured OpenAI endpoint
func New(cfg config.OpenAIConfig) *Generator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Generator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// NewWithClient wraps an existing client (used by tests)
func NewWithClient(client CompletionClient, model string) *Generator {
	return &Generator{client: client, model: model}
}

// Generate builds the prompt, calls the completion API and parses the
// response. Transport, quota and auth failures surface as a
// GenerationError.
func (g *Generator) Generate(ctx context.Context, contentType string, keywords []string, count int) (ParseResult, error) {
	prompt := PromptFor(contentType, keywords, count)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		return ParseResult{}, errors.GenerationError("Failed to generate ideas", err)
	}
	if len(resp.Choices) == 0 {
		return ParseResult{}, errors.GenerationError("Generation API returned no choices", nil)
	}

	return ParseResponse(resp.Choices[0].Message.Content), nil
}
