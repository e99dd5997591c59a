package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: calm and clinical, readable on long shifts
var (
	Primary   = lipgloss.Color("#0EA5E9") // Sky Blue
	Secondary = lipgloss.Color("#2DD4BF") // Teal
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#34D399") // Emerald
	Warning   = lipgloss.Color("#FB923C") // Orange
	Error     = lipgloss.Color("#FB7185") // Rose
	Text      = lipgloss.Color("#F1F5F9") // Off-white
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1220") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Positive = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Negative = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
