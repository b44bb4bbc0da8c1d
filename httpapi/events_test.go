package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"echo-lab/domain"
)

func TestHandleSessionEvents_StreamsSnapshots(t *testing.T) {
	req := require.New(t)
	api, engine, _ := newSessionsAPI(t)
	session := createTestSession(t, api, engine)

	server := httptest.NewServer(api.Routes())
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/sessions/" + session.ID + "/events"
	conn, dialResp, err := websocket.DefaultDialer.Dial(url, nil)
	req.NoError(err)
	defer func() { _ = dialResp.Body.Close() }()
	defer func() { _ = conn.Close() }()

	// When a participant speaks, the stream delivers a fresh snapshot
	body := fmt.Sprintf(`{"participantId":%q,"content":"streaming works"}`, session.Participants[1].ID)
	resp, err := http.Post(server.URL+"/sessions/"+session.ID+"/messages", "application/json", strings.NewReader(body))
	req.NoError(err)
	_ = resp.Body.Close()
	req.Equal(http.StatusCreated, resp.StatusCode)

	req.NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var snapshot domain.GroupSession
	req.NoError(conn.ReadJSON(&snapshot))

	req.Equal(session.ID, snapshot.ID)
	last := snapshot.Messages[len(snapshot.Messages)-1]
	req.Equal("streaming works", last.Content)
}

func TestHandleSessionEvents_UnknownSession(t *testing.T) {
	req := require.New(t)
	api, _, _ := newSessionsAPI(t)

	recorder := do(t, api, http.MethodGet, "/sessions/unknown/events", "")
	req.Equal(http.StatusNotFound, recorder.Code)
}
