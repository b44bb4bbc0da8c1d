package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"echo-lab/domain"
)

const (
	eventBufferSize = 16
	writeDeadline   = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The UI is served from the same desktop shell; origin checks stay open.
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleSessionEvents streams full session snapshots to the UI after every
// mutation. Delivery is best effort: a slow consumer loses intermediate
// snapshots, never the connection.
func (a *API) handleSessionEvents(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if _, err := a.sessions.Session(sessionID); err != nil {
		writeError(w, err)
		return
	}

	updates := make(chan domain.GroupSession, eventBufferSize)
	unsubscribe := a.sessions.AddListener(func(session domain.GroupSession) {
		if session.ID != sessionID {
			return
		}
		select {
		case updates <- session:
		default:
			a.log.Debug("Session event dropped for slow consumer", "session_id", sessionID)
		}
	})
	defer unsubscribe()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer func() { _ = conn.Close() }()

	// Reader goroutine: its only job is to notice the client going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case snapshot := <-updates:
			if err := conn.SetWriteDeadline(time.Now().Add(writeDeadline)); err != nil {
				return
			}
			if err := conn.WriteJSON(snapshot); err != nil {
				a.log.Warn("Failed to push session snapshot", "session_id", sessionID, "error", err)
				return
			}
		}
	}
}
