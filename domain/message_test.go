package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMessage_React_Upserts(t *testing.T) {
	req := require.New(t)
	msg := Message{ID: "msg-1"}
	now := time.Now()

	// Given two participants reacting
	msg.React("p1", ReactAgree, now)
	msg.React("p2", ReactCurious, now)
	req.Len(msg.Reactions, 2)

	// When the first one changes their mind
	later := now.Add(time.Minute)
	msg.React("p1", ReactDisagree, later)

	// Then the newer reaction replaced the older, the other stayed
	req.Len(msg.Reactions, 2)
	reactions := map[string]Reaction{}
	for _, r := range msg.Reactions {
		reactions[r.ParticipantID] = r
	}
	req.Equal(ReactDisagree, reactions["p1"].Type)
	req.Equal(later, reactions["p1"].Timestamp)
	req.Equal(ReactCurious, reactions["p2"].Type)
}

func TestNewID_Format(t *testing.T) {
	req := require.New(t)
	now := time.Now()

	id := NewMessageID(now)

	parts := strings.SplitN(id, "-", 3)
	req.Len(parts, 3)
	req.Equal("msg", parts[0])
	req.Contains(NewSessionID(now), "session-")
	req.Contains(NewParticipantID(now), "participant-")

	// Same-millisecond IDs still differ through the random suffix
	req.NotEqual(NewMessageID(now), NewMessageID(now))
}
