package modal

import "github.com/charmbracelet/lipgloss"

// Palette shared with the page renderer.
var (
	Primary      = lipgloss.Color("#a855f7") // purple-500
	Accent       = lipgloss.Color("#ec4899") // pink-500
	Muted        = lipgloss.Color("241")
	BgSecondary  = lipgloss.Color("#181028")
	BorderNormal = lipgloss.Color("#3b2a5c")
)

// Button styles
var (
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("#7e22ce")).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	ButtonHover = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("#9333ea")).
			Padding(0, 2)
)

// Text styles
var (
	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	MutedText  = lipgloss.NewStyle().Foreground(Muted)
	Body       = lipgloss.NewStyle()
	CardTitle  = lipgloss.NewStyle().Bold(true)
)

// Frame styles
var (
	Frame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	CardFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)

	CardFrameHover = CardFrame.BorderForeground(Accent)
)
