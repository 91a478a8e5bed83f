package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary = lipgloss.Color("#F43F5E") // Tomato
	Accent  = lipgloss.Color("#8B5CF6") // Purple
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#F97316") // Orange
	Gold    = lipgloss.Color("#EAB308") // Gold
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Styles
var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(Success)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	Prize = lipgloss.NewStyle().Bold(true).Foreground(Gold)
	Muted = lipgloss.NewStyle().Foreground(TextDim)
	Hint  = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

const (
	IconTomato = "🍅"
	IconTrophy = "🏆"
	IconBolt   = "⚡"
	IconCheck  = "✅"
	IconLock   = "🔒"
	IconBrain  = "🧠"
	IconCoffee = "☕"
	IconFlame  = "🔥"
)

// Heading renders an icon-prefixed section title.
func Heading(icon, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

// LabelValue renders a "Key: value" line with a styled key.
func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Bar renders a horizontal progress bar for a ratio in [0, 1].
func Bar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}
	filled := int(float64(width) * percent)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled

	return lipgloss.NewStyle().Foreground(Primary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("░", empty))
}
