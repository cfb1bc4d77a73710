package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepcoach/internal/questiongen"
)

// Styles for question cards and result lines.
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(1, 2).
			Width(76)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22C55E"))

	wrongStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F43F5E"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))
)

// renderQuestion formats one question as a bordered card.
func renderQuestion(n int, q *questiongen.GeneratedQuestion) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n",
		headerStyle.Render(fmt.Sprintf("Q%d.", n)),
		dimStyle.Render(fmt.Sprintf("%s / %s / %s / %s", q.Subject, q.Topic, q.Difficulty, q.Type)))

	if q.IsFallback {
		b.WriteString(warnStyle.Render(fmt.Sprintf("(placeholder: %s)", q.GenerationStatus)))
		b.WriteString("\n")
	}
	if q.Duplicate {
		b.WriteString(warnStyle.Render("(possible duplicate of a known question)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(q.Text)
	b.WriteString("\n")

	for i, opt := range q.Options {
		fmt.Fprintf(&b, "\n  %s. %s", questiongen.OptionLabels[i], opt)
	}

	return cardStyle.Render(b.String())
}
