package synthesis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"echo-lab/domain"
)

func TestGenerator_Compose_FullSession(t *testing.T) {
	req := require.New(t)
	generator := NewGenerator()

	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(1*time.Hour + 25*time.Minute)
	session := domain.GroupSession{
		Name:      "Emergence Deep Dive",
		StartTime: start,
		EndTime:   &end,
		Participants: []domain.Participant{
			{ID: "p1"}, {ID: "p2"}, {ID: "p3"},
		},
		Messages: []domain.Message{
			{Content: "Opening thoughts on emergence", Tags: []string{"emergence"}},
			{Content: "A key insight about feedback loops driving complex behavior across layered systems", Importance: domain.ImportanceHigh, Tags: []string{"feedback", "systems"}},
			{Content: "How do patterns stabilize?", Tags: []string{"patterns"}},
			{Content: "More on emergence and systems", Tags: []string{"emergence", "systems"}},
			{Content: "What role does memory play here?", Tags: []string{"memory"}},
		},
	}

	summary := generator.Compose(session)

	req.Contains(summary, `🌟 Session Synthesis: "Emergence Deep Dive"`)
	req.Contains(summary, "- Duration: 1h 25m")
	req.Contains(summary, "- Messages: 5")
	req.Contains(summary, "- Participants: 3")
	req.Contains(summary, "- Key Insights: 1")

	// Themes ranked by frequency, ties by first appearance
	themesIndex := strings.Index(summary, "• emergence (2 mentions)")
	systemsIndex := strings.Index(summary, "• systems (2 mentions)")
	feedbackIndex := strings.Index(summary, "• feedback (1 mentions)")
	req.Positive(themesIndex)
	req.Greater(systemsIndex, themesIndex)
	req.Greater(feedbackIndex, systemsIndex)

	// Insight excerpts are truncated content plus an ellipsis
	req.Contains(summary, "• A key insight about feedback loops")

	// Future directions reuse the open questions
	req.Contains(summary, "• How do patterns stabilize?")
	req.Contains(summary, "• What role does memory play here?")
	req.NotContains(summary, fallbackDirection)
}

func TestGenerator_Compose_EmptySession(t *testing.T) {
	req := require.New(t)
	generator := NewGenerator()

	end := time.Now()
	session := domain.GroupSession{
		Name:      "Quiet Room",
		StartTime: end.Add(-5 * time.Minute),
		EndTime:   &end,
	}

	summary := generator.Compose(session)

	req.Contains(summary, "- Duration: 0h 5m")
	req.Contains(summary, "- Messages: 0")
	req.Contains(summary, "- Key Insights: 0")
	req.Contains(summary, fallbackDirection)
}

func TestGenerator_Compose_TruncatesLongInsights(t *testing.T) {
	req := require.New(t)
	generator := NewGenerator()

	long := strings.Repeat("х", 150) // multi-byte runes, truncation is rune-based
	end := time.Now()
	session := domain.GroupSession{
		Name:      "Long Form",
		StartTime: end.Add(-time.Minute),
		EndTime:   &end,
		Messages: []domain.Message{
			{Content: long, Type: domain.TypeInsight},
		},
	}

	summary := generator.Compose(session)

	req.Contains(summary, "• "+strings.Repeat("х", 100)+"...")
	req.NotContains(summary, strings.Repeat("х", 101))
}

func TestGenerator_Compose_CapsThemesAtFive(t *testing.T) {
	req := require.New(t)
	generator := NewGenerator()

	end := time.Now()
	session := domain.GroupSession{
		Name:      "Theme Flood",
		StartTime: end.Add(-time.Minute),
		EndTime:   &end,
		Messages: []domain.Message{
			{Content: "a", Tags: []string{"ai", "logic", "memory", "identity", "reality", "emergence", "patterns"}},
		},
	}

	summary := generator.Compose(session)

	req.Equal(5, strings.Count(summary, "mentions)"))
}
