package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"echo-lab/providers"
	"echo-lab/switchboard"
)

var validate = validator.New()

type generateRequest struct {
	Provider string `json:"provider" validate:"required,oneof=openai anthropic"`
	Model    string `json:"model" validate:"required"`
	System   string `json:"system"`
	Context  string `json:"context"`
	Prompt   string `json:"prompt" validate:"required"`
}

type generateResponse struct {
	OK      bool   `json:"ok"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleGenerate proxies one generation call to the configured provider.
// Contract: 405 wrong method, 400 invalid provider/model/prompt, 401 missing
// API key, 500 upstream or unexpected failure. The body always carries
// {ok, content} or {ok, error}.
func (a *API) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, generateResponse{OK: false, Error: "Method not allowed"})
		return
	}

	var req generateRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, generateResponse{OK: false, Error: "Invalid JSON body"})
		return
	}

	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, generateResponse{OK: false, Error: validationMessage(req)})
		return
	}

	provider := switchboard.ProviderID(req.Provider)
	apiKey := a.apiKeys[provider]
	if apiKey == "" {
		writeJSON(w, http.StatusUnauthorized, generateResponse{
			OK:    false,
			Error: fmt.Sprintf("API key for %s is not configured", provider),
		})
		return
	}

	var messages []providers.Message
	if req.System != "" {
		messages = append(messages, providers.Message{Role: "system", Content: req.System})
	}
	if req.Context != "" {
		messages = append(messages, providers.Message{Role: "user", Content: req.Context})
	}
	messages = append(messages, providers.Message{Role: "user", Content: req.Prompt})

	content, err := a.generator.Generate(r.Context(), provider, apiKey, providers.GenerateParams{
		Model:    req.Model,
		Messages: messages,
	})
	if err != nil {
		a.log.Error("Text generation failed", "provider", provider, "model", req.Model, "error", err)
		writeJSON(w, http.StatusInternalServerError, generateResponse{OK: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{OK: true, Content: content})
}

// validationMessage mirrors the order of the original checks so callers get
// the most relevant complaint first.
func validationMessage(req generateRequest) string {
	switch {
	case req.Provider != "openai" && req.Provider != "anthropic":
		return "Invalid provider. Must be 'openai' or 'anthropic'"
	case req.Model == "":
		return "Model is required"
	case req.Prompt == "":
		return "Prompt is required"
	default:
		return "Invalid request"
	}
}
