package pageview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/codenest/pkg/pageview/modal"
)

var (
	textColor   = lipgloss.Color("252")
	subtleColor = lipgloss.Color("246")
	badgeColor  = lipgloss.Color("#7e22ce") // purple-700
	headerBg    = lipgloss.Color("#120a1f")
)

// Header
var (
	brandStyle = lipgloss.NewStyle().Bold(true).Foreground(modal.Primary)

	navStyle = lipgloss.NewStyle().Foreground(textColor).Padding(0, 1)

	navHoverStyle = navStyle.Foreground(modal.Accent).Underline(true)

	headerStyle = lipgloss.NewStyle().
			Background(headerBg).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(modal.BorderNormal)
)

// Hero
var (
	headlineStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	highlightStyle = []lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c084fc")), // purple-400
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f472b6")), // pink-400
	}
	taglineStyle = lipgloss.NewStyle().Foreground(subtleColor)
	scrollHint   = lipgloss.NewStyle().Foreground(modal.Muted).Italic(true)
)

// Sections
var (
	sectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(modal.Primary)

	featureCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(modal.BorderNormal).
				Padding(0, 1)

	pathCardStyle = featureCardStyle

	pathCardFocusedStyle = pathCardStyle.BorderForeground(modal.Accent)

	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	cardTextStyle  = lipgloss.NewStyle().Foreground(subtleColor)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(badgeColor).
			Padding(0, 1)
)

// Footer
var (
	statusStyle = lipgloss.NewStyle().Foreground(modal.Accent)
)
