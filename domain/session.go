// Package domain contains core concepts of the group chat system.
// This file defines the GroupSession aggregate and its coordination rules.
package domain

import (
	"time"

	"github.com/samber/lo"
)

type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusPaused    SessionStatus = "paused"
	StatusCompleted SessionStatus = "completed"
)

type SessionType string

const (
	SessionExploration    SessionType = "exploration"
	SessionProblemSolving SessionType = "problem-solving"
	SessionBrainstorming  SessionType = "brainstorming"
	SessionSynthesis      SessionType = "synthesis"
)

type TurnOrder string

const (
	TurnRoundRobin        TurnOrder = "round-robin"
	TurnFreeFlow          TurnOrder = "free-flow"
	TurnFacilitatorGuided TurnOrder = "facilitator-guided"
)

// CoordinationRules are derived once from the session type at creation
// and never mutated afterwards.
type CoordinationRules struct {
	MaxParticipants          int           `json:"maxParticipants"`
	TurnOrder                TurnOrder     `json:"turnOrder"`
	MessageDelay             time.Duration `json:"messageDelay"`
	SynthesisFrequency       int           `json:"synthesisFrequency"`
	TopicDriftThreshold      float64       `json:"topicDriftThreshold"`
	EmergentInsightDetection bool          `json:"emergentInsightDetection"`
}

// DefaultCoordinationRules maps a session type onto its rule set.
func DefaultCoordinationRules(sessionType SessionType) CoordinationRules {
	rules := CoordinationRules{
		MaxParticipants:          7,
		TurnOrder:                TurnFreeFlow,
		MessageDelay:             2000 * time.Millisecond,
		SynthesisFrequency:       10,
		TopicDriftThreshold:      0.7,
		EmergentInsightDetection: true,
	}

	switch sessionType {
	case SessionExploration:
		rules.TurnOrder = TurnFreeFlow
		rules.MessageDelay = 3000 * time.Millisecond
		rules.SynthesisFrequency = 8
	case SessionProblemSolving:
		rules.TurnOrder = TurnRoundRobin
		rules.MessageDelay = 2000 * time.Millisecond
		rules.SynthesisFrequency = 6
	case SessionBrainstorming:
		rules.TurnOrder = TurnFreeFlow
		rules.MessageDelay = 1500 * time.Millisecond
		rules.SynthesisFrequency = 12
	case SessionSynthesis:
		rules.TurnOrder = TurnFacilitatorGuided
		rules.MessageDelay = 4000 * time.Millisecond
		rules.SynthesisFrequency = 5
	}
	return rules
}

// GroupSession is one bounded multi-party conversation: roster, rules and
// append-only message log. The session store is its single owner; everything
// handed to other components is a snapshot.
type GroupSession struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Topic             string            `json:"topic"`
	Description       string            `json:"description"`
	Participants      []Participant     `json:"participants"`
	Messages          []Message         `json:"messages"`
	StartTime         time.Time         `json:"startTime"`
	EndTime           *time.Time        `json:"endTime,omitempty"`
	Status            SessionStatus     `json:"status"`
	FacilitatorID     string            `json:"facilitatorId"`
	SessionType       SessionType       `json:"sessionType"`
	CoordinationRules CoordinationRules `json:"coordinationRules"`
}

// Participant returns a pointer into the roster, or nil if absent.
func (s *GroupSession) Participant(id string) *Participant {
	for i := range s.Participants {
		if s.Participants[i].ID == id {
			return &s.Participants[i]
		}
	}
	return nil
}

// Message returns a pointer into the log, or nil if absent.
func (s *GroupSession) Message(id string) *Message {
	for i := range s.Messages {
		if s.Messages[i].ID == id {
			return &s.Messages[i]
		}
	}
	return nil
}

// ActiveParticipants keeps roster order.
func (s *GroupSession) ActiveParticipants() []Participant {
	return lo.Filter(s.Participants, func(p Participant, _ int) bool {
		return p.IsActive
	})
}

// SystemParticipant returns the roster member speaking for the system,
// or nil when the roster was truncated before reaching one.
func (s *GroupSession) SystemParticipant() *Participant {
	for i := range s.Participants {
		if s.Participants[i].Platform == PlatformSystem {
			return &s.Participants[i]
		}
	}
	return nil
}

// Clone produces a deep snapshot safe to hand to listeners and API callers.
func (s *GroupSession) Clone() GroupSession {
	out := *s
	out.Participants = append([]Participant(nil), s.Participants...)
	out.Messages = make([]Message, len(s.Messages))
	for i, m := range s.Messages {
		m.Reactions = append([]Reaction(nil), m.Reactions...)
		m.Tags = append([]string(nil), m.Tags...)
		out.Messages[i] = m
	}
	if s.EndTime != nil {
		end := *s.EndTime
		out.EndTime = &end
	}
	return out
}
