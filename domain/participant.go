// Package domain contains core concepts of the group chat system.
// This file defines Participant entities and their persona templates.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"
)

type Platform string

const (
	PlatformCharacterAI Platform = "character.ai"
	PlatformOpenAI      Platform = "openai"
	PlatformAnthropic   Platform = "anthropic"
	PlatformSystem      Platform = "system"
)

type Role string

const (
	RoleFacilitator Role = "facilitator"
	RoleContributor Role = "contributor"
	RoleObserver    Role = "observer"
	RoleSynthesizer Role = "synthesizer"
)

// Style carries a persona's personalization traits: the avatar emoji prefix
// and an optional flourish appended to everything the persona says.
// Attaching it to the template avoids a separate name-keyed lookup table.
type Style struct {
	Emoji  string `yaml:"emoji" json:"emoji"`
	Suffix string `yaml:"suffix" json:"suffix"`
}

// Apply decorates raw text with the persona's voice.
// A zero Style passes text through untouched.
func (s Style) Apply(text string) string {
	out := text
	if s.Emoji != "" {
		out = s.Emoji + " " + out
	}
	if s.Suffix != "" {
		out = out + " " + s.Suffix
	}
	return out
}

// PersonaTemplate is one entry of the fixed persona catalog used to build
// session rosters. Role and specializations are immutable once instantiated.
type PersonaTemplate struct {
	Name            string   `yaml:"name"`
	Platform        Platform `yaml:"platform"`
	Role            Role     `yaml:"role"`
	Avatar          string   `yaml:"avatar"`
	Specializations []string `yaml:"specializations"`
	Style           Style    `yaml:"style"`
}

// Participant is a synthetic persona bound to one session.
// IsActive, LastActivity and MessageCount mutate on every message it sends;
// everything else is fixed at creation.
type Participant struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Platform        Platform  `json:"platform"`
	Avatar          string    `json:"avatar"`
	Role            Role      `json:"role"`
	IsActive        bool      `json:"isActive"`
	LastActivity    time.Time `json:"lastActivity"`
	MessageCount    int       `json:"messageCount"`
	Specializations []string  `json:"specializations"`
	Style           Style     `json:"style"`
}

// Instantiate builds a session participant from the template.
func (t PersonaTemplate) Instantiate(now time.Time) Participant {
	return Participant{
		ID:              NewParticipantID(now),
		Name:            t.Name,
		Platform:        t.Platform,
		Avatar:          t.Avatar,
		Role:            t.Role,
		IsActive:        true,
		LastActivity:    now,
		MessageCount:    0,
		Specializations: t.Specializations,
		Style:           t.Style,
	}
}
