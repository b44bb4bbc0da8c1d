// Package httpapi exposes the session service and the generation capability
// to the browser UI over JSON HTTP, plus a websocket event stream.
package httpapi

import (
	"log/slog"
	"net/http"

	"echo-lab/contract"
	"echo-lab/services"
	"echo-lab/switchboard"
)

// API wires the HTTP surface. One instance per server process.
type API struct {
	log       *slog.Logger
	sessions  services.ISessionService
	board     *switchboard.Switchboard
	generator contract.ITextGenerator
	apiKeys   map[switchboard.ProviderID]string
}

func New(log *slog.Logger, sessions services.ISessionService, board *switchboard.Switchboard,
	generator contract.ITextGenerator, apiKeys map[switchboard.ProviderID]string) *API {
	return &API{
		log:       log,
		sessions:  sessions,
		board:     board,
		generator: generator,
		apiKeys:   apiKeys,
	}
}

// Routes builds the mux. Method-qualified patterns take care of 405s for the
// session endpoints; /generate handles its own to keep the contract's body.
func (a *API) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/generate", a.handleGenerate)

	mux.HandleFunc("POST /sessions", a.handleCreateSession)
	mux.HandleFunc("GET /sessions", a.handleListSessions)
	mux.HandleFunc("GET /sessions/{id}", a.handleGetSession)
	mux.HandleFunc("POST /sessions/{id}/messages", a.handleSendMessage)
	mux.HandleFunc("POST /sessions/{id}/reactions", a.handleAddReaction)
	mux.HandleFunc("POST /sessions/{id}/pause", a.handlePauseSession)
	mux.HandleFunc("POST /sessions/{id}/resume", a.handleResumeSession)
	mux.HandleFunc("POST /sessions/{id}/end", a.handleEndSession)
	mux.HandleFunc("GET /sessions/{id}/events", a.handleSessionEvents)

	mux.HandleFunc("PUT /participants/{id}/provider", a.handleSetProvider)
	mux.HandleFunc("GET /participants/providers", a.handleAllProviders)

	return mux
}
