package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#6366F1")
	colorMuted   = lipgloss.Color("#64748B")
	colorError   = lipgloss.Color("#DC2626")
	colorNotes   = lipgloss.Color("#4F46E5")
	colorApplied = lipgloss.Color("#059669")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginBottom(1)

	spinnerStyle = lipgloss.NewStyle().Foreground(colorAccent)
	avatarStyle  = lipgloss.NewStyle().Foreground(colorMuted)

	bubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	noteStyle    = lipgloss.NewStyle().Foreground(colorNotes)
	appliedStyle = lipgloss.NewStyle().Foreground(colorApplied)
	videoStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	helpStyle    = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
)
