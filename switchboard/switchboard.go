// Package switchboard controls which generation provider each participant
// uses. It keeps an in-memory map of participant configurations; absence or a
// disabled entry means the participant stays in simulated mode.
package switchboard

import (
	"sync"
)

type ProviderID string

const (
	ProviderSimulated ProviderID = "simulated"
	ProviderOpenAI    ProviderID = "openai"
	ProviderAnthropic ProviderID = "anthropic"
)

// DefaultModels picked when a real provider is enabled without a model.
var DefaultModels = map[ProviderID]string{
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-haiku-20240307",
}

type Config struct {
	Enabled  bool       `json:"enabled"`
	Provider ProviderID `json:"provider"`
	Model    string     `json:"model,omitempty"`
}

func defaultConfig() Config {
	return Config{Enabled: false, Provider: ProviderSimulated}
}

// Details is what the response generator needs to call a real provider.
type Details struct {
	Provider ProviderID `json:"provider"`
	Model    string     `json:"model,omitempty"`
}

// Switchboard is safe for concurrent use. It is constructed and injected,
// one instance per host process.
type Switchboard struct {
	mu      sync.RWMutex
	configs map[string]Config
}

func New() *Switchboard {
	return &Switchboard{configs: make(map[string]Config)}
}

// Set stores a participant's configuration, filling in the provider's default
// model when a real provider is selected without one.
func (s *Switchboard) Set(participantID string, config Config) {
	if config.Provider != ProviderSimulated && config.Model == "" {
		config.Model = DefaultModels[config.Provider]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[participantID] = config
}

// Get returns the explicit configuration, if any.
func (s *Switchboard) Get(participantID string) (Config, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	config, ok := s.configs[participantID]
	return config, ok
}

// GetWithDefault never misses: unset participants are simulated and disabled.
func (s *Switchboard) GetWithDefault(participantID string) Config {
	if config, ok := s.Get(participantID); ok {
		return config
	}
	return defaultConfig()
}

// SetMany applies a batch of configurations at once.
func (s *Switchboard) SetMany(configs map[string]Config) {
	for participantID, config := range configs {
		s.Set(participantID, config)
	}
}

// All snapshots every explicit configuration.
func (s *Switchboard) All() map[string]Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Config, len(s.configs))
	for id, config := range s.configs {
		out[id] = config
	}
	return out
}

func (s *Switchboard) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs = make(map[string]Config)
}

// HasRealProviderEnabled reports whether the participant is wired to an
// actual provider rather than templates.
func (s *Switchboard) HasRealProviderEnabled(participantID string) bool {
	config := s.GetWithDefault(participantID)
	return config.Enabled && config.Provider != ProviderSimulated
}

// ProviderDetails resolves what to call for a participant.
// Nil means simulated mode.
func (s *Switchboard) ProviderDetails(participantID string) *Details {
	config := s.GetWithDefault(participantID)
	if !config.Enabled {
		return nil
	}

	details := Details{Provider: config.Provider}
	if config.Provider != ProviderSimulated {
		details.Model = config.Model
		if details.Model == "" {
			details.Model = DefaultModels[config.Provider]
		}
	}
	return &details
}
