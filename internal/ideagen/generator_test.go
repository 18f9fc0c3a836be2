package ideagen

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"ideator/internal/config"
)

type fakeCompletionClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeCompletionClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if len(req.Messages) > 0 {
		f.prompt = req.Messages[0].Content
	}
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.response}},
		},
	}, nil
}

func TestGeneratorGenerate(t *testing.T) {
	fake := &fakeCompletionClient{
		response: `[{"title": "Idea One", "description": "Something"}]`,
	}
	g := NewWithClient(fake, "gpt-4o-mini")

	result, err := g.Generate(context.Background(), "blog", []string{"golang"}, 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if result.Mode != ModeStructured {
		t.Errorf("Expected structured mode, got %s", result.Mode)
	}
	if len(result.Ideas) != 1 || result.Ideas[0].Title != "Idea One" {
		t.Errorf("Unexpected result: %+v", result.Ideas)
	}
	if !strings.Contains(fake.prompt, "Generate 3 unique blog post ideas related to golang") {
		t.Errorf("Unexpected prompt sent upstream: %q", fake.prompt)
	}
}

func TestGeneratorTimeoutBoundsSlowUpstream(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer slow.Close()

	g := New(config.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: slow.URL + "/v1",
		Model:   "gpt-4o-mini",
		Timeout: 50 * time.Millisecond,
	})

	start := time.Now()
	if _, err := g.Generate(context.Background(), "blog", nil, 5); err == nil {
		t.Fatal("Expected a timeout error, got nil")
	}
	if elapsed := time.Since(start); elapsed > 400*time.Millisecond {
		t.Errorf("Call not bounded by the configured timeout, took %v", elapsed)
	}
}

func TestGeneratorUpstreamFailure(t *testing.T) {
	fake := &fakeCompletionClient{err: errors.New("quota exceeded")}
	g := NewWithClient(fake, "gpt-4o-mini")

	if _, err := g.Generate(context.Background(), "blog", nil, 5); err == nil {
		t.Fatal("Expected error, got nil")
	}
}
