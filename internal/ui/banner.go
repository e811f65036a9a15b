// Package ui renders operator-facing terminal output: failure banners,
// success rules, and the interactive prompts of the sync stage.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	failureStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("9")).
			Foreground(lipgloss.Color("9")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true)
)

// FailureBanner renders a clearly delimited fatal-condition banner: a
// title plus supporting lines (reasons, report paths).
func FailureBanner(title string, lines ...string) string {
	body := title
	if len(lines) > 0 {
		body += "\n" + strings.Join(lines, "\n")
	}
	return failureStyle.Render(body)
}

// SuccessRule renders a delimited success message.
func SuccessRule(msg string) string {
	rule := strings.Repeat("-", 40)
	return successStyle.Render(rule + "\n" + msg + "\n" + rule)
}
