package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: retro pixel pinks on a night-sky background.
var (
	Primary   = lipgloss.Color("#FF6EC7") // Hot Pink
	Secondary = lipgloss.Color("#7DF9FF") // Electric Blue
	Accent    = lipgloss.Color("#FFD166") // Pixel Gold
	Success   = lipgloss.Color("#39FF14") // Neon Green
	Error     = lipgloss.Color("#FF4D6D") // Rose
	Text      = lipgloss.Color("#FDF6FF") // Paper
	TextDim   = lipgloss.Color("#A89BC2") // Lavender Grey
	BgDark    = lipgloss.Color("#1A1030") // Night
	BgCard    = lipgloss.Color("#2A1B4A") // Plum
	Border    = lipgloss.Color("#5B3F8C") // Violet
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

	Big = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)
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
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Modal = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Primary).
		Padding(1, 3)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Highlight = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Accent).
			Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressDone = lipgloss.NewStyle().
			Background(Success)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	Tile = lipgloss.NewStyle().
		Width(5).
		Align(lipgloss.Center).
		Foreground(BgDark).
		Background(Secondary).
		Bold(true)

	TileEmpty = lipgloss.NewStyle().
			Width(5).
			Background(BgDark)

	Toast = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(Accent).
		Bold(true).
		Padding(0, 2)
)
