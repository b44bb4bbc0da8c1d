// Package synthesis composes the end-of-session summary: discussion metrics,
// emergent themes, key-insight excerpts and follow-up directions.
package synthesis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"echo-lab/domain"
)

const (
	maxKeyInsights      = 10
	maxThemes           = 5
	maxFutureDirections = 3
	excerptRunes        = 100

	fallbackDirection = "• Continue exploring the themes that emerged"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Compose renders the synthesis block for a finished session.
// It is pure over the session snapshot; the caller appends the result
// as a synthesis-typed system message.
func (g *Generator) Compose(session domain.GroupSession) string {
	keyInsights := lastN(lo.Filter(session.Messages, func(m domain.Message, _ int) bool {
		return m.Importance == domain.ImportanceHigh || m.Type == domain.TypeInsight
	}), maxKeyInsights)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🌟 Session Synthesis: %q\n\n", session.Name))

	sb.WriteString("📊 **Discussion Metrics:**\n")
	sb.WriteString(fmt.Sprintf("- Duration: %s\n", duration(session)))
	sb.WriteString(fmt.Sprintf("- Messages: %d\n", len(session.Messages)))
	sb.WriteString(fmt.Sprintf("- Participants: %d\n", len(session.Participants)))
	sb.WriteString(fmt.Sprintf("- Key Insights: %d\n\n", len(keyInsights)))

	sb.WriteString("🔍 **Emergent Themes:**\n")
	sb.WriteString(emergentThemes(session.Messages))
	sb.WriteString("\n\n")

	sb.WriteString("💡 **Key Insights:**\n")
	sb.WriteString(strings.Join(lo.Map(keyInsights, func(m domain.Message, _ int) string {
		return "• " + excerpt(m.Content) + "..."
	}), "\n"))
	sb.WriteString("\n\n")

	sb.WriteString("🌱 **Future Exploration Directions:**\n")
	sb.WriteString(futureDirections(session.Messages))

	return sb.String()
}

// duration formats wall-clock session time as "XhYm".
// A still-open session measures up to now.
func duration(session domain.GroupSession) string {
	end := time.Now()
	if session.EndTime != nil {
		end = *session.EndTime
	}
	elapsed := end.Sub(session.StartTime)

	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// emergentThemes ranks tags by frequency, top five, ties broken by the order
// a tag was first encountered.
func emergentThemes(messages []domain.Message) string {
	counts := make(map[string]int)
	var order []string
	for _, m := range messages {
		for _, tag := range m.Tags {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxThemes {
		order = order[:maxThemes]
	}

	return strings.Join(lo.Map(order, func(tag string, _ int) string {
		return fmt.Sprintf("• %s (%d mentions)", tag, counts[tag])
	}), "\n")
}

// futureDirections reuses the last few open questions of the discussion,
// falling back to a generic continuation suggestion.
func futureDirections(messages []domain.Message) string {
	questions := lastN(lo.Filter(messages, func(m domain.Message, _ int) bool {
		return strings.Contains(m.Content, "?")
	}), maxFutureDirections)

	if len(questions) == 0 {
		return fallbackDirection
	}

	return strings.Join(lo.Map(questions, func(m domain.Message, _ int) string {
		head, _, _ := strings.Cut(m.Content, "?")
		return "• " + head + "?"
	}), "\n")
}

func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptRunes {
		runes = runes[:excerptRunes]
	}
	return string(runes)
}

func lastN(messages []domain.Message, n int) []domain.Message {
	if len(messages) > n {
		return messages[len(messages)-n:]
	}
	return messages
}
