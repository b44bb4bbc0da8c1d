package runtime

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/samber/lo"

	"echo-lab/domain"
)

// TurnSelector computes the ordered set of participants who should respond to
// a message, dispatching on the session's turn-order policy.
// Safe for concurrent use; randomness is injected for deterministic tests.
type TurnSelector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewTurnSelector(rnd *rand.Rand) *TurnSelector {
	return &TurnSelector{rnd: rnd}
}

func (s *TurnSelector) NextParticipants(session domain.GroupSession, message domain.Message) []string {
	switch session.CoordinationRules.TurnOrder {
	case domain.TurnRoundRobin:
		return s.roundRobinNext(session, message)
	case domain.TurnFacilitatorGuided:
		return s.facilitatorGuidedNext(session, message)
	default:
		return s.freeFlowNext(session, message)
	}
}

// roundRobinNext picks the next active participant cyclically after the
// sender, in roster order. A fully inactive roster yields no selection.
func (s *TurnSelector) roundRobinNext(session domain.GroupSession, message domain.Message) []string {
	active := session.ActiveParticipants()
	if len(active) == 0 {
		return nil
	}

	currentIndex := lo.IndexOf(lo.Map(active, func(p domain.Participant, _ int) string {
		return p.ID
	}), message.ParticipantID)

	nextIndex := (currentIndex + 1) % len(active)
	return []string{active[nextIndex].ID}
}

// facilitatorGuidedNext hands the turn back to the facilitator after every
// non-facilitator message; the facilitator's own messages pick one random
// active participant to speak.
func (s *TurnSelector) facilitatorGuidedNext(session domain.GroupSession, message domain.Message) []string {
	if message.ParticipantID != session.FacilitatorID {
		return []string{session.FacilitatorID}
	}

	others := lo.Filter(session.Participants, func(p domain.Participant, _ int) bool {
		return p.IsActive && p.ID != session.FacilitatorID
	})
	if len(others) == 0 {
		return nil
	}

	s.mu.Lock()
	picked := others[s.rnd.Intn(len(others))]
	s.mu.Unlock()
	return []string{picked.ID}
}

// freeFlowNext favors participants whose specializations overlap the message
// tags, falling back to the whole active set, and picks one or two at random.
func (s *TurnSelector) freeFlowNext(session domain.GroupSession, message domain.Message) []string {
	active := lo.Filter(session.Participants, func(p domain.Participant, _ int) bool {
		return p.IsActive && p.ID != message.ParticipantID
	})
	if len(active) == 0 {
		return nil
	}

	relevant := lo.Filter(active, func(p domain.Participant, _ int) bool {
		return matchesSpecialization(p, message.Tags)
	})

	count := min(2, max(1, len(relevant)))
	pool := relevant
	if len(pool) == 0 {
		pool = active
	}
	if count > len(pool) {
		count = len(pool)
	}

	shuffled := append([]domain.Participant(nil), pool...)
	s.mu.Lock()
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	return lo.Map(shuffled[:count], func(p domain.Participant, _ int) string {
		return p.ID
	})
}

// matchesSpecialization does a case-insensitive substring check, so the tag
// "synthesis" matches the specialization "knowledge-synthesis".
func matchesSpecialization(p domain.Participant, tags []string) bool {
	for _, spec := range p.Specializations {
		loweredSpec := strings.ToLower(spec)
		for _, tag := range tags {
			if strings.Contains(loweredSpec, strings.ToLower(tag)) {
				return true
			}
		}
	}
	return false
}
