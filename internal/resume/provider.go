package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/saulo-duarte/careercoach/internal/config"
	"google.golang.org/genai"
)

// Provider sends one prompt to a text-completion model and returns its raw
// answer.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ProviderError separates "the model could not be reached" from a bad answer.
type ProviderError struct {
	Reason  string
	Wrapped error
}

func (e *ProviderError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("ai provider: %s: %v", e.Reason, e.Wrapped)
	}
	return "ai provider: " + e.Reason
}

func (e *ProviderError) Unwrap() error {
	return e.Wrapped
}

// Generation tunes a provider for one kind of answer.
type Generation struct {
	Temperature float32
	MaxTokens   int
	// JSON asks the model for a JSON document where the backend supports it.
	JSON bool
}

// ScoringGeneration is used for ATS analyses.
var ScoringGeneration = Generation{Temperature: 0.3, MaxTokens: 1500, JSON: true}

// NewProvider picks the configured provider. It returns nil, without error,
// when no API key is set: callers then go straight to their fallback.
func NewProvider(ctx context.Context, s config.Settings, g Generation) (Provider, error) {
	switch s.AIProvider {
	case "openai":
		if s.OpenAIAPIKey == "" {
			return nil, nil
		}
		return NewChatCompletionsProvider(s.OpenAIBaseURL, s.OpenAIAPIKey, s.OpenAIModel, g, nil), nil
	case "gemini", "":
		if s.GeminiAPIKey == "" {
			return nil, nil
		}
		return NewGeminiProvider(ctx, s.GeminiAPIKey, s.GeminiModel, g)
	default:
		return nil, fmt.Errorf("unsupported AI_PROVIDER %q", s.AIProvider)
	}
}

type geminiProvider struct {
	client *genai.Client
	model  string
	gen    Generation
}

func NewGeminiProvider(ctx context.Context, apiKey, model string, g Generation) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model, gen: g}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	temp := p.gen.Temperature
	cfg := &genai.GenerateContentConfig{Temperature: &temp}
	if p.gen.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(p.gen.MaxTokens)
	}
	if p.gen.JSON {
		cfg.ResponseMIMEType = "application/json"
	}
	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", &ProviderError{Reason: "generate content", Wrapped: err}
	}

	raw := result.Text()
	config.WithContext(ctx).Debugf("Gemini raw answer: %d bytes", len(raw))
	if raw == "" {
		return "", &ProviderError{Reason: "empty answer"}
	}
	return raw, nil
}

// chatCompletionsProvider talks to any OpenAI-compatible /v1/chat/completions
// endpoint.
type chatCompletionsProvider struct {
	baseURL string
	apiKey  string
	model   string
	gen     Generation
	client  *http.Client
}

func NewChatCompletionsProvider(baseURL, apiKey, model string, g Generation, client *http.Client) Provider {
	if client == nil {
		client = &http.Client{}
	}
	return &chatCompletionsProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		gen:     g,
		client:  client,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *chatCompletionsProvider) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       p.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: p.gen.Temperature,
		MaxTokens:   p.gen.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &ProviderError{Reason: "request failed", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", &ProviderError{Reason: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &ProviderError{Reason: "undecodable envelope", Wrapped: err}
	}
	if len(out.Choices) == 0 {
		return "", &ProviderError{Reason: "no choices"}
	}
	content := out.Choices[0].Message.Content
	if content == "" {
		return "", &ProviderError{Reason: "empty content"}
	}
	return content, nil
}

var errNoProvider = errors.New("no AI provider configured")
