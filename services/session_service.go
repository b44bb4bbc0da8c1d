package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"echo-lab/classify"
	"echo-lab/contract"
	"echo-lab/domain"
	errs "echo-lab/errors"
)

const maxRosterSize = 7

type ISessionService interface {
	CreateSession(ctx context.Context, cmd domain.CreateSessionCommand) (domain.GroupSession, error)
	SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error)
	AddReaction(cmd domain.AddReactionCommand) error
	PauseSession(sessionID string) error
	ResumeSession(sessionID string) error
	EndSession(sessionID string) error
	Session(sessionID string) (domain.GroupSession, error)
	AllSessions() []domain.GroupSession
	ActiveSessions() []domain.GroupSession
	AddListener(listener contract.SessionListener) func()
}

// SessionService owns every GroupSession aggregate and all of their mutation;
// it is the single source of truth. The coordination engine only ever sees
// snapshots and feeds generated replies back through SendMessage.
type SessionService struct {
	log         *slog.Logger
	engine      contract.ICoordinationEngine
	classifier  *classify.Classifier
	synthesizer contract.ISynthesizer
	personas    []domain.PersonaTemplate

	mu       sync.Mutex
	sessions map[string]*domain.GroupSession

	listenersMu sync.RWMutex
	listeners   map[string]contract.SessionListener

	// schedule defers the engine's turn-processing pass; swapped in tests.
	schedule func(d time.Duration, fn func())
}

// Option tweaks a SessionService at construction.
type Option func(*SessionService)

// WithScheduler overrides how turn-processing passes are deferred.
// Tests run them inline instead of on a timer.
func WithScheduler(schedule func(d time.Duration, fn func())) Option {
	return func(s *SessionService) { s.schedule = schedule }
}

func NewSessionService(log *slog.Logger, engine contract.ICoordinationEngine,
	classifier *classify.Classifier, synthesizer contract.ISynthesizer,
	personas []domain.PersonaTemplate, opts ...Option) *SessionService {
	s := &SessionService{
		log:         log,
		engine:      engine,
		classifier:  classifier,
		synthesizer: synthesizer,
		personas:    personas,
		sessions:    make(map[string]*domain.GroupSession),
		listeners:   make(map[string]contract.SessionListener),
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSession builds a roster from the persona catalog, derives the
// coordination rules from the session type, emits the welcome message and
// starts the response cycle.
func (s *SessionService) CreateSession(ctx context.Context, cmd domain.CreateSessionCommand) (domain.GroupSession, error) {
	if cmd.ParticipantCount < 1 {
		return domain.GroupSession{}, errs.ErrInvalidParticipantCount
	}

	now := time.Now().UTC()
	count := min(cmd.ParticipantCount, maxRosterSize)
	if count > len(s.personas) {
		count = len(s.personas)
	}

	participants := lo.Map(s.personas[:count], func(t domain.PersonaTemplate, _ int) domain.Participant {
		return t.Instantiate(now)
	})

	facilitatorID := participants[0].ID
	if facilitator, ok := lo.Find(participants, func(p domain.Participant) bool {
		return p.Role == domain.RoleFacilitator
	}); ok {
		facilitatorID = facilitator.ID
	}

	session := &domain.GroupSession{
		ID:                domain.NewSessionID(now),
		Name:              cmd.Name,
		Topic:             cmd.Topic,
		Description:       cmd.Description,
		Participants:      participants,
		StartTime:         now,
		Status:            domain.StatusActive,
		FacilitatorID:     facilitatorID,
		SessionType:       cmd.SessionType,
		CoordinationRules: domain.DefaultCoordinationRules(cmd.SessionType),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	snapshot := session.Clone()
	s.mu.Unlock()

	s.log.Info("Session created",
		"session_id", session.ID,
		"session_type", session.SessionType,
		"participants", len(participants))

	// The welcome goes through the regular message path so it is classified,
	// broadcast and triggers the first turn selection.
	if system := snapshot.SystemParticipant(); system != nil {
		welcome := fmt.Sprintf("🌟 Welcome to %q - A collaborative consciousness exploration focused on: %s",
			cmd.Name, cmd.Topic)
		if _, err := s.SendMessage(ctx, domain.SendMessageCommand{
			SessionID:     session.ID,
			ParticipantID: system.ID,
			Content:       welcome,
		}); err != nil {
			return domain.GroupSession{}, err
		}
	}

	final, err := s.Session(session.ID)
	if err != nil {
		return domain.GroupSession{}, err
	}

	s.notifyListeners(final)
	s.engine.StartSession(final)
	return final, nil
}

// SendMessage appends a classified message, updates the sender's activity and
// schedules a turn-processing pass after the session's message delay.
func (s *SessionService) SendMessage(_ context.Context, cmd domain.SendMessageCommand) (domain.Message, error) {
	s.mu.Lock()
	session, ok := s.sessions[cmd.SessionID]
	if !ok {
		s.mu.Unlock()
		return domain.Message{}, errs.ErrSessionNotFound
	}
	sender := session.Participant(cmd.ParticipantID)
	if sender == nil {
		s.mu.Unlock()
		return domain.Message{}, errs.ErrParticipantNotFound
	}

	message := s.appendLocked(session, sender, cmd)
	delay := session.CoordinationRules.MessageDelay
	snapshot := session.Clone()
	s.mu.Unlock()

	s.notifyListeners(snapshot)

	s.schedule(delay, func() {
		fresh, err := s.Session(cmd.SessionID)
		if err != nil {
			return
		}
		s.engine.ProcessMessage(fresh, message)
	})

	return message, nil
}

// appendLocked builds and appends a message; the caller holds s.mu.
func (s *SessionService) appendLocked(session *domain.GroupSession,
	sender *domain.Participant, cmd domain.SendMessageCommand) domain.Message {
	now := time.Now().UTC()

	messageType := cmd.Type
	if messageType == "" {
		messageType = domain.TypeMessage
	}

	message := domain.Message{
		ID:            domain.NewMessageID(now),
		ParticipantID: cmd.ParticipantID,
		Content:       cmd.Content,
		Timestamp:     now,
		Type:          messageType,
		ReplyTo:       cmd.ReplyTo,
		Importance:    s.classifier.Importance(cmd.Content),
		Tags:          s.classifier.Tags(cmd.Content),
	}

	session.Messages = append(session.Messages, message)
	sender.LastActivity = now
	sender.MessageCount++
	return message
}

// AddReaction upserts: a participant's newer reaction replaces their older one.
func (s *SessionService) AddReaction(cmd domain.AddReactionCommand) error {
	s.mu.Lock()
	session, ok := s.sessions[cmd.SessionID]
	if !ok {
		s.mu.Unlock()
		return errs.ErrSessionNotFound
	}
	message := session.Message(cmd.MessageID)
	if message == nil {
		s.mu.Unlock()
		return errs.ErrMessageNotFound
	}

	message.React(cmd.ParticipantID, cmd.Type, time.Now().UTC())
	snapshot := session.Clone()
	s.mu.Unlock()

	s.notifyListeners(snapshot)
	return nil
}

func (s *SessionService) PauseSession(sessionID string) error {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return errs.ErrSessionNotFound
	}
	if session.Status != domain.StatusActive {
		s.mu.Unlock()
		return nil
	}

	session.Status = domain.StatusPaused
	snapshot := session.Clone()
	s.mu.Unlock()

	s.engine.PauseSession(sessionID)
	s.notifyListeners(snapshot)
	return nil
}

func (s *SessionService) ResumeSession(sessionID string) error {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return errs.ErrSessionNotFound
	}
	if session.Status != domain.StatusPaused {
		s.mu.Unlock()
		return nil
	}

	session.Status = domain.StatusActive
	snapshot := session.Clone()
	s.mu.Unlock()

	s.engine.ResumeSession(snapshot)
	s.notifyListeners(snapshot)
	return nil
}

// EndSession is terminal and idempotent: a completed session stays as it is.
// The synthesis is appended before the engine's cycle is torn down.
func (s *SessionService) EndSession(sessionID string) error {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return errs.ErrSessionNotFound
	}
	if session.Status == domain.StatusCompleted {
		s.mu.Unlock()
		return nil
	}

	now := time.Now().UTC()
	session.Status = domain.StatusCompleted
	session.EndTime = &now

	summary := s.synthesizer.Compose(session.Clone())
	if system := session.SystemParticipant(); system != nil {
		s.appendLocked(session, system, domain.SendMessageCommand{
			SessionID:     sessionID,
			ParticipantID: system.ID,
			Content:       summary,
			Type:          domain.TypeSynthesis,
		})
	}
	snapshot := session.Clone()
	s.mu.Unlock()

	s.engine.EndSession(sessionID)
	s.notifyListeners(snapshot)
	s.log.Info("Session completed", "session_id", sessionID, "messages", len(snapshot.Messages))
	return nil
}

// Session returns a deep snapshot; callers never touch live state.
func (s *SessionService) Session(sessionID string) (domain.GroupSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return domain.GroupSession{}, errs.ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (s *SessionService) AllSessions() []domain.GroupSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(lo.Values(s.sessions), func(session *domain.GroupSession, _ int) domain.GroupSession {
		return session.Clone()
	})
}

func (s *SessionService) ActiveSessions() []domain.GroupSession {
	return lo.Filter(s.AllSessions(), func(session domain.GroupSession, _ int) bool {
		return session.Status == domain.StatusActive
	})
}

// AddListener registers a callback invoked with a full session snapshot after
// every mutation. The returned function unsubscribes it.
func (s *SessionService) AddListener(listener contract.SessionListener) func() {
	id := uuid.NewString()

	s.listenersMu.Lock()
	s.listeners[id] = listener
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *SessionService) notifyListeners(snapshot domain.GroupSession) {
	s.listenersMu.RLock()
	listeners := lo.Values(s.listeners)
	s.listenersMu.RUnlock()

	for _, listener := range listeners {
		listener(snapshot)
	}
}
