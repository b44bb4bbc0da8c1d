// Package providers holds the server-side adapters for the OpenAI and
// Anthropic generation APIs. Requests are shaped by hand over net/http;
// no vendor SDK is pulled in for two JSON endpoints.
package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"echo-lab/errors"
	"echo-lab/switchboard"
)

const (
	openAIEndpoint    = "https://api.openai.com/v1/chat/completions"
	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
	anthropicVersion  = "2023-06-01"

	// Generation knobs kept fixed across providers.
	temperature = 0.7
	maxTokens   = 800
)

// DefaultTimeout bounds a single provider round trip. The generation path has
// no retry: a timeout downgrades the reply to a template like any other failure.
const DefaultTimeout = 15 * time.Second

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type GenerateParams struct {
	Model    string
	Messages []Message
}

// Client dispatches generation calls to the configured provider.
type Client struct {
	http *http.Client
	log  *slog.Logger

	openAIURL    string
	anthropicURL string
}

func NewClient(log *slog.Logger, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:         &http.Client{Timeout: timeout},
		log:          log,
		openAIURL:    openAIEndpoint,
		anthropicURL: anthropicEndpoint,
	}
}

// Generate produces text with the given provider. The API key must be
// non-empty; provider errors carry the HTTP status and a body fragment.
func (c *Client) Generate(ctx context.Context, provider switchboard.ProviderID,
	apiKey string, params GenerateParams) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("%w: %s", errors.ErrMissingAPIKey, provider)
	}

	switch provider {
	case switchboard.ProviderOpenAI:
		return c.generateOpenAI(ctx, apiKey, params)
	case switchboard.ProviderAnthropic:
		return c.generateAnthropic(ctx, apiKey, params)
	default:
		return "", fmt.Errorf("%w: %s", errors.ErrUnsupportedProvider, provider)
	}
}

type openAIRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) generateOpenAI(ctx context.Context, apiKey string, params GenerateParams) (string, error) {
	payload := openAIRequest{
		Model:       params.Model,
		Messages:    params.Messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	body, err := c.post(ctx, c.openAIURL, payload, map[string]string{
		"Authorization": "Bearer " + apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	var parsed openAIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("openai: malformed response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: empty completion")
	}
	return parsed.Choices[0].Message.Content, nil
}

type anthropicRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	System      string    `json:"system,omitempty"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// generateAnthropic reshapes the OpenAI-style message list: a leading system
// message moves to the dedicated system field, any other system-role message
// is demoted to user.
func (c *Client) generateAnthropic(ctx context.Context, apiKey string, params GenerateParams) (string, error) {
	payload := anthropicRequest{
		Model:       params.Model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	messages := params.Messages
	if len(messages) > 0 && messages[0].Role == "system" {
		payload.System = messages[0].Content
		messages = messages[1:]
	}
	for _, m := range messages {
		role := m.Role
		if role != "assistant" {
			role = "user"
		}
		payload.Messages = append(payload.Messages, Message{Role: role, Content: m.Content})
	}

	body, err := c.post(ctx, c.anthropicURL, payload, map[string]string{
		"x-api-key":         apiKey,
		"anthropic-version": anthropicVersion,
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("anthropic: malformed response: %w", err)
	}
	if len(parsed.Content) == 0 || parsed.Content[0].Text == "" {
		return "", fmt.Errorf("anthropic: empty completion")
	}
	return parsed.Content[0].Text, nil
}

func (c *Client) post(ctx context.Context, url string, payload any, headers map[string]string) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("Provider returned non-OK status", "url", url, "status", resp.StatusCode)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}
	return body, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
