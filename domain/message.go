// Package domain contains core concepts of the group chat system.
// This file defines Message events and related rules.
// Messages are immutable once appended, except for their reaction list.
package domain

import (
	"time"
)

type MessageType string

const (
	TypeMessage   MessageType = "message"
	TypeThought   MessageType = "thought"
	TypeInsight   MessageType = "insight"
	TypeQuestion  MessageType = "question"
	TypeSynthesis MessageType = "synthesis"
)

type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

type ReactionType string

const (
	ReactAgree    ReactionType = "agree"
	ReactDisagree ReactionType = "disagree"
	ReactCurious  ReactionType = "curious"
	ReactInsight  ReactionType = "insight"
	ReactExpand   ReactionType = "expand"
)

// Reaction is one participant's stance on a message.
// A participant holds at most one reaction per message; a newer one replaces it.
type Reaction struct {
	ParticipantID string       `json:"participantId"`
	Type          ReactionType `json:"type"`
	Timestamp     time.Time    `json:"timestamp"`
}

// Message represents one entry of a session's append-only log.
type Message struct {
	ID            string      `json:"id"`
	ParticipantID string      `json:"participantId"`
	Content       string      `json:"content"`
	Timestamp     time.Time   `json:"timestamp"`
	Type          MessageType `json:"type"`
	ReplyTo       string      `json:"replyTo,omitempty"`
	Reactions     []Reaction  `json:"reactions"`
	Importance    Importance  `json:"importance"`
	Tags          []string    `json:"tags"`
}

// React upserts a reaction, keeping the one-reaction-per-participant invariant.
func (m *Message) React(participantID string, kind ReactionType, at time.Time) {
	kept := m.Reactions[:0]
	for _, r := range m.Reactions {
		if r.ParticipantID != participantID {
			kept = append(kept, r)
		}
	}
	m.Reactions = append(kept, Reaction{
		ParticipantID: participantID,
		Type:          kind,
		Timestamp:     at,
	})
}
