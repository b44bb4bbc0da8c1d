package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"echo-lab/mocks"
	"echo-lab/providers"
	"echo-lab/switchboard"
)

func newGenerateAPI(t *testing.T) (*API, *mocks.MockITextGenerator) {
	ctrl := gomock.NewController(t)
	generator := mocks.NewMockITextGenerator(ctrl)

	api := New(slog.Default(), nil, switchboard.New(), generator, map[switchboard.ProviderID]string{
		switchboard.ProviderOpenAI: "sk-test",
	})
	return api, generator
}

func postGenerate(t *testing.T, api *API, body string) (*httptest.ResponseRecorder, generateResponse) {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	api.Routes().ServeHTTP(recorder, request)

	var parsed generateResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&parsed))
	return recorder, parsed
}

func TestHandleGenerate_MethodNotAllowed(t *testing.T) {
	req := require.New(t)
	api, _ := newGenerateAPI(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/generate", nil)
	api.Routes().ServeHTTP(recorder, request)

	req.Equal(http.StatusMethodNotAllowed, recorder.Code)

	var parsed generateResponse
	req.NoError(json.NewDecoder(recorder.Body).Decode(&parsed))
	req.False(parsed.OK)
	req.Equal("Method not allowed", parsed.Error)
}

func TestHandleGenerate_InvalidJSON(t *testing.T) {
	req := require.New(t)
	api, _ := newGenerateAPI(t)

	recorder, parsed := postGenerate(t, api, `{"provider": `)

	req.Equal(http.StatusBadRequest, recorder.Code)
	req.False(parsed.OK)
	req.Equal("Invalid JSON body", parsed.Error)
}

func TestHandleGenerate_Validation(t *testing.T) {
	tests := []struct {
		description string
		body        string
		wantError   string
	}{
		{
			"Should reject an unknown provider",
			`{"provider":"gemini","model":"m","prompt":"p"}`,
			"Invalid provider. Must be 'openai' or 'anthropic'",
		},
		{
			"Should require a model",
			`{"provider":"openai","prompt":"p"}`,
			"Model is required",
		},
		{
			"Should require a prompt",
			`{"provider":"openai","model":"gpt-4o-mini"}`,
			"Prompt is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			api, _ := newGenerateAPI(t)

			recorder, parsed := postGenerate(t, api, tt.body)

			req.Equal(http.StatusBadRequest, recorder.Code)
			req.False(parsed.OK)
			req.Equal(tt.wantError, parsed.Error)
		})
	}
}

func TestHandleGenerate_MissingAPIKey(t *testing.T) {
	req := require.New(t)
	api, _ := newGenerateAPI(t)

	// Anthropic has no key configured in this API instance
	recorder, parsed := postGenerate(t, api,
		`{"provider":"anthropic","model":"claude-3-haiku-20240307","prompt":"hello"}`)

	req.Equal(http.StatusUnauthorized, recorder.Code)
	req.False(parsed.OK)
	req.Equal("API key for anthropic is not configured", parsed.Error)
}

func TestHandleGenerate_Success(t *testing.T) {
	req := require.New(t)
	api, generator := newGenerateAPI(t)

	generator.EXPECT().
		Generate(gomock.Any(), switchboard.ProviderOpenAI, "sk-test", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ switchboard.ProviderID, _ string, params providers.GenerateParams) (string, error) {
			// system, context and prompt arrive as three ordered messages
			require.Len(t, params.Messages, 3)
			require.Equal(t, "system", params.Messages[0].Role)
			require.Equal(t, "You are a helper", params.Messages[0].Content)
			require.Equal(t, "earlier talk", params.Messages[1].Content)
			require.Equal(t, "hello", params.Messages[2].Content)
			return "generated text", nil
		})

	recorder, parsed := postGenerate(t, api,
		`{"provider":"openai","model":"gpt-4o-mini","system":"You are a helper","context":"earlier talk","prompt":"hello"}`)

	req.Equal(http.StatusOK, recorder.Code)
	req.True(parsed.OK)
	req.Equal("generated text", parsed.Content)
	req.Empty(parsed.Error)
}

func TestHandleGenerate_UpstreamFailure(t *testing.T) {
	req := require.New(t)
	api, generator := newGenerateAPI(t)

	generator.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("openai: status 500: upstream exploded"))

	recorder, parsed := postGenerate(t, api,
		`{"provider":"openai","model":"gpt-4o-mini","prompt":"hello"}`)

	req.Equal(http.StatusInternalServerError, recorder.Code)
	req.False(parsed.OK)
	req.Contains(parsed.Error, "upstream exploded")
}
