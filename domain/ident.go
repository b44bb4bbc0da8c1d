package domain

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// randomSuffix derives 7 base-36 characters from a cryptographic random source.
// Collisions within one millisecond are what the suffix protects against.
func randomSuffix() string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)

	var sb strings.Builder
	for _, b := range buf {
		sb.WriteString(strconv.FormatUint(uint64(b), 36))
	}
	s := sb.String()
	if len(s) > 7 {
		s = s[:7]
	}
	return s
}

func newID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), randomSuffix())
}

func NewSessionID(now time.Time) string     { return newID("session", now) }
func NewParticipantID(now time.Time) string { return newID("participant", now) }
func NewMessageID(now time.Time) string     { return newID("msg", now) }
