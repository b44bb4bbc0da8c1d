package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"

	"github.com/samber/lo"

	"echo-lab/classify"
	"echo-lab/contract"
	"echo-lab/domain"
	"echo-lab/providers"
	"echo-lab/switchboard"
)

const contextWindow = 5

// roleTemplates back the simulated mode: one list per role, picked at random
// and personalized per participant.
var roleTemplates = map[domain.Role][]string{
	domain.RoleFacilitator: {
		"That's a fascinating perspective. How might we explore this further?",
		"I'm noticing a pattern here. Could we dig deeper into this connection?",
		"Let's pause and synthesize what we've discovered so far.",
	},
	domain.RoleContributor: {
		"Building on that thought, I wonder if we could consider...",
		"This reminds me of a similar pattern in...",
		"What if we approached this from a different angle?",
	},
	domain.RoleObserver: {
		"I'm observing an interesting dynamic in our conversation...",
		"The meta-pattern I'm seeing here is...",
		"From a systems perspective, this suggests...",
	},
	domain.RoleSynthesizer: {
		"Connecting the threads of our discussion, I see...",
		"The underlying theme emerging seems to be...",
		"Synthesizing our insights, a new understanding appears...",
	},
}

// APIKeyResolver maps a provider onto its configured key; empty means absent.
type APIKeyResolver func(provider switchboard.ProviderID) string

// Responder produces the text of the next reply: through a real provider when
// the switchboard has one enabled for the participant, otherwise from role
// templates. Provider failures never propagate; they downgrade to templates so
// a single outage cannot stall a session.
type Responder struct {
	log       *slog.Logger
	board     *switchboard.Switchboard
	generator contract.ITextGenerator
	apiKey    APIKeyResolver

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewResponder(log *slog.Logger, board *switchboard.Switchboard,
	generator contract.ITextGenerator, apiKey APIKeyResolver, rnd *rand.Rand) *Responder {
	return &Responder{
		log:       log,
		board:     board,
		generator: generator,
		apiKey:    apiKey,
		rnd:       rnd,
	}
}

func (r *Responder) ComposeReply(ctx context.Context, session domain.GroupSession,
	participant domain.Participant) (string, domain.MessageType) {
	if details := r.board.ProviderDetails(participant.ID); details != nil && details.Provider != switchboard.ProviderSimulated {
		if text, err := r.generateWithProvider(ctx, session, participant, details); err == nil {
			content := participant.Style.Apply(text)
			return content, classify.ReplyType(content)
		} else {
			r.log.Warn("Provider generation failed, falling back to template",
				"participant", participant.Name,
				"provider", details.Provider,
				"model", details.Model,
				"error", err)
		}
	}

	content := participant.Style.Apply(r.pickTemplate(participant.Role))
	return content, classify.ReplyType(content)
}

func (r *Responder) generateWithProvider(ctx context.Context, session domain.GroupSession,
	participant domain.Participant, details *switchboard.Details) (string, error) {
	systemPrompt := fmt.Sprintf(
		"You are %s, a %s in a group discussion about %q. "+
			"Your specializations are: %s. "+
			"Respond as %s would, keeping your response concise (max ~80 words).",
		participant.Name, participant.Role, session.Topic,
		strings.Join(participant.Specializations, ", "), participant.Name)

	prompt := fmt.Sprintf(
		"Based on the conversation so far, provide a thoughtful response as %s. "+
			"Be concise but insightful, and stay in character.", participant.Name)

	messages := []providers.Message{{Role: "system", Content: systemPrompt}}
	if conversation := formatContext(session); conversation != "" {
		messages = append(messages, providers.Message{Role: "user", Content: conversation})
	}
	messages = append(messages, providers.Message{Role: "user", Content: prompt})

	text, err := r.generator.Generate(ctx, details.Provider, r.apiKey(details.Provider), providers.GenerateParams{
		Model:    details.Model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty completion from %s", details.Provider)
	}
	return text, nil
}

// formatContext renders the last few messages as "name: content" lines.
func formatContext(session domain.GroupSession) string {
	recent := session.Messages
	if len(recent) > contextWindow {
		recent = recent[len(recent)-contextWindow:]
	}

	lines := lo.Map(recent, func(m domain.Message, _ int) string {
		name := "Unknown"
		if author := session.Participant(m.ParticipantID); author != nil {
			name = author.Name
		}
		return name + ": " + m.Content
	})
	return strings.Join(lines, "\n")
}

func (r *Responder) pickTemplate(role domain.Role) string {
	templates, ok := roleTemplates[role]
	if !ok {
		templates = roleTemplates[domain.RoleContributor]
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return templates[r.rnd.Intn(len(templates))]
}
