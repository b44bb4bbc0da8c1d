// Package classify derives message importance, discussion-theme tags and reply
// types from raw text. Everything here is pure keyword matching, deterministic
// and side-effect free.
package classify

import (
	"sort"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"echo-lab/domain"
)

// insightKeywords and questionKeywords drive importance scoring.
var insightKeywords = []string{"breakthrough", "discovery", "insight", "realize", "understand", "connect"}

var questionKeywords = []string{"why", "how", "what if", "consider", "explore"}

// themes is the fixed tag vocabulary. Tag output preserves this order.
var themes = []string{
	"consciousness", "ai", "philosophy", "ethics",
	"creativity", "logic", "emotion", "learning",
	"memory", "identity", "reality", "emergence",
	"complexity", "patterns", "systems", "feedback",
}

// Classifier holds one Aho-Corasick automaton per keyword set so a message is
// scanned in a single pass per concern instead of one strings.Contains per word.
type Classifier struct {
	insight  *goahocorasick.Machine
	question *goahocorasick.Machine
	themes   *goahocorasick.Machine
}

func New() (*Classifier, error) {
	insight, err := buildMachine(insightKeywords)
	if err != nil {
		return nil, err
	}
	question, err := buildMachine(questionKeywords)
	if err != nil {
		return nil, err
	}
	themeMachine, err := buildMachine(themes)
	if err != nil {
		return nil, err
	}
	return &Classifier{insight: insight, question: question, themes: themeMachine}, nil
}

func buildMachine(words []string) (*goahocorasick.Machine, error) {
	patterns := make([][]rune, len(words))
	for i, w := range words {
		patterns[i] = []rune(strings.ToLower(w))
	}
	// The underlying double-array trie expects lexicographically ordered keys.
	sort.Slice(patterns, func(i, j int) bool {
		return string(patterns[i]) < string(patterns[j])
	})

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return m, nil
}

// matches runs one automaton over the lowered text and reports every distinct
// pattern found. Matching is substring-based, mirroring the lenient heuristics
// the rest of the system expects ("ai" matches inside "maintain").
func matches(m *goahocorasick.Machine, lowered []rune) map[string]struct{} {
	found := make(map[string]struct{})
	for _, term := range m.MultiPatternSearch(lowered, false) {
		found[string(term.Word)] = struct{}{}
	}
	return found
}

func lower(content string) []rune {
	runes := []rune(content)
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = unicode.ToLower(r)
	}
	return out
}

// Importance scores a message: high needs an insight keyword in a substantial
// message (>100 runes); medium needs a question keyword or >200 runes.
func (c *Classifier) Importance(content string) domain.Importance {
	lowered := lower(content)
	length := len(lowered)

	if len(matches(c.insight, lowered)) > 0 && length > 100 {
		return domain.ImportanceHigh
	}
	if len(matches(c.question, lowered)) > 0 || length > 200 {
		return domain.ImportanceMedium
	}
	return domain.ImportanceLow
}

// Tags extracts every theme mentioned in the content, in vocabulary order,
// without duplicates.
func (c *Classifier) Tags(content string) []string {
	found := matches(c.themes, lower(content))
	if len(found) == 0 {
		return nil
	}

	var tags []string
	for _, theme := range themes {
		if _, ok := found[theme]; ok {
			tags = append(tags, theme)
		}
	}
	return tags
}

// ReplyType infers the message type of a generated reply from its text.
func ReplyType(content string) domain.MessageType {
	lowered := strings.ToLower(content)
	switch {
	case strings.Contains(lowered, "?"):
		return domain.TypeQuestion
	case strings.Contains(lowered, "insight"), strings.Contains(lowered, "breakthrough"):
		return domain.TypeInsight
	case strings.Contains(lowered, "wonder"), strings.Contains(lowered, "thinking"):
		return domain.TypeThought
	case strings.Contains(lowered, "synthesis"), strings.Contains(lowered, "connecting"):
		return domain.TypeSynthesis
	default:
		return domain.TypeMessage
	}
}
