package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	errs "echo-lab/errors"
	"echo-lab/switchboard"
)

func testParams() GenerateParams {
	return GenerateParams{
		Model: "test-model",
		Messages: []Message{
			{Role: "system", Content: "You are Marcus."},
			{Role: "user", Content: "Say something."},
		},
	}
}

func TestClient_Generate_MissingKey(t *testing.T) {
	req := require.New(t)
	client := NewClient(slog.Default(), time.Second)

	_, err := client.Generate(context.Background(), switchboard.ProviderOpenAI, "", testParams())
	req.ErrorIs(err, errs.ErrMissingAPIKey)
}

func TestClient_Generate_UnsupportedProvider(t *testing.T) {
	req := require.New(t)
	client := NewClient(slog.Default(), time.Second)

	_, err := client.Generate(context.Background(), switchboard.ProviderSimulated, "key", testParams())
	req.ErrorIs(err, errs.ErrUnsupportedProvider)
}

func TestClient_GenerateOpenAI(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload openAIRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "test-model", payload.Model)
		require.Len(t, payload.Messages, 2)
		require.InDelta(t, 0.7, payload.Temperature, 0.001)
		require.Equal(t, 800, payload.MaxTokens)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Hello from the model"}}]}`))
	}))
	defer server.Close()

	client := NewClient(slog.Default(), time.Second)
	client.openAIURL = server.URL

	content, err := client.Generate(context.Background(), switchboard.ProviderOpenAI, "sk-test", testParams())
	req.NoError(err)
	req.Equal("Hello from the model", content)
}

func TestClient_GenerateAnthropic_ReshapesMessages(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "sk-ant", r.Header.Get("x-api-key"))
		require.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var payload anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		// The leading system message moved to the dedicated field
		require.Equal(t, "You are Marcus.", payload.System)
		require.Len(t, payload.Messages, 1)
		require.Equal(t, "user", payload.Messages[0].Role)

		_, _ = w.Write([]byte(`{"content":[{"text":"Hello from Claude"}]}`))
	}))
	defer server.Close()

	client := NewClient(slog.Default(), time.Second)
	client.anthropicURL = server.URL

	content, err := client.Generate(context.Background(), switchboard.ProviderAnthropic, "sk-ant", testParams())
	req.NoError(err)
	req.Equal("Hello from Claude", content)
}

func TestClient_GenerateAnthropic_DemotesOtherRoles(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		require.Len(t, payload.Messages, 3)
		require.Equal(t, "user", payload.Messages[0].Role)
		require.Equal(t, "assistant", payload.Messages[1].Role)
		require.Equal(t, "user", payload.Messages[2].Role)

		_, _ = w.Write([]byte(`{"content":[{"text":"ok"}]}`))
	}))
	defer server.Close()

	client := NewClient(slog.Default(), time.Second)
	client.anthropicURL = server.URL

	params := GenerateParams{
		Model: "test-model",
		Messages: []Message{
			{Role: "user", Content: "first"},
			{Role: "assistant", Content: "second"},
			{Role: "tool", Content: "third"},
		},
	}

	_, err := client.Generate(context.Background(), switchboard.ProviderAnthropic, "sk-ant", params)
	req.NoError(err)
}

func TestClient_NonOKStatusBecomesError(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	client := NewClient(slog.Default(), time.Second)
	client.openAIURL = server.URL

	_, err := client.Generate(context.Background(), switchboard.ProviderOpenAI, "sk-test", testParams())
	req.Error(err)
	req.Contains(err.Error(), "status 429")
	req.Contains(err.Error(), "rate limited")
}

func TestClient_EmptyCompletionIsAnError(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(slog.Default(), time.Second)
	client.openAIURL = server.URL

	_, err := client.Generate(context.Background(), switchboard.ProviderOpenAI, "sk-test", testParams())
	req.Error(err)
	req.Contains(err.Error(), "empty completion")
}

func TestClient_MalformedResponse(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient(slog.Default(), time.Second)
	client.anthropicURL = server.URL

	_, err := client.Generate(context.Background(), switchboard.ProviderAnthropic, "sk-ant", testParams())
	req.Error(err)
	req.Contains(err.Error(), "malformed response")
}
