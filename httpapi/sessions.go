package httpapi

import (
	"net/http"

	"echo-lab/domain"
	"echo-lab/switchboard"
)

type createSessionRequest struct {
	Name             string `json:"name" validate:"required"`
	Topic            string `json:"topic" validate:"required"`
	Description      string `json:"description"`
	ParticipantCount int    `json:"participantCount"`
	SessionType      string `json:"sessionType"`
}

func (a *API) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if req.ParticipantCount == 0 {
		req.ParticipantCount = 4
	}
	sessionType := domain.SessionType(req.SessionType)
	if sessionType == "" {
		sessionType = domain.SessionExploration
	}

	session, err := a.sessions.CreateSession(r.Context(), domain.CreateSessionCommand{
		Name:             req.Name,
		Topic:            req.Topic,
		Description:      req.Description,
		ParticipantCount: req.ParticipantCount,
		SessionType:      sessionType,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (a *API) handleListSessions(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("status") == string(domain.StatusActive) {
		writeJSON(w, http.StatusOK, a.sessions.ActiveSessions())
		return
	}
	writeJSON(w, http.StatusOK, a.sessions.AllSessions())
}

func (a *API) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := a.sessions.Session(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

type sendMessageRequest struct {
	ParticipantID string `json:"participantId" validate:"required"`
	Content       string `json:"content" validate:"required"`
	Type          string `json:"type"`
	ReplyTo       string `json:"replyTo"`
}

func (a *API) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	message, err := a.sessions.SendMessage(r.Context(), domain.SendMessageCommand{
		SessionID:     r.PathValue("id"),
		ParticipantID: req.ParticipantID,
		Content:       req.Content,
		Type:          domain.MessageType(req.Type),
		ReplyTo:       req.ReplyTo,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

type addReactionRequest struct {
	MessageID     string `json:"messageId" validate:"required"`
	ParticipantID string `json:"participantId" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=agree disagree curious insight expand"`
}

func (a *API) handleAddReaction(w http.ResponseWriter, r *http.Request) {
	var req addReactionRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := a.sessions.AddReaction(domain.AddReactionCommand{
		SessionID:     r.PathValue("id"),
		MessageID:     req.MessageID,
		ParticipantID: req.ParticipantID,
		Type:          domain.ReactionType(req.Type),
	}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handlePauseSession(w http.ResponseWriter, r *http.Request) {
	a.transition(w, r, a.sessions.PauseSession)
}

func (a *API) handleResumeSession(w http.ResponseWriter, r *http.Request) {
	a.transition(w, r, a.sessions.ResumeSession)
}

func (a *API) handleEndSession(w http.ResponseWriter, r *http.Request) {
	a.transition(w, r, a.sessions.EndSession)
}

func (a *API) transition(w http.ResponseWriter, r *http.Request, op func(string) error) {
	sessionID := r.PathValue("id")
	if err := op(sessionID); err != nil {
		writeError(w, err)
		return
	}
	session, err := a.sessions.Session(sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

type setProviderRequest struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider" validate:"required,oneof=simulated openai anthropic"`
	Model    string `json:"model"`
}

func (a *API) handleSetProvider(w http.ResponseWriter, r *http.Request) {
	var req setProviderRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	a.board.Set(r.PathValue("id"), switchboard.Config{
		Enabled:  req.Enabled,
		Provider: switchboard.ProviderID(req.Provider),
		Model:    req.Model,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleAllProviders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.board.All())
}
