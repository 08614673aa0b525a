package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// textSection renders wrapped body text.
type textSection struct {
	text string
}

// Text returns a section of word-wrapped text.
func Text(s string) Section {
	return &textSection{text: s}
}

func (t *textSection) Render(contentWidth int, _, _ string) RenderedSection {
	return RenderedSection{Content: Body.Width(contentWidth).Render(t.text)}
}

func (t *textSection) Update(tea.Msg, string) (string, tea.Cmd) {
	return "", nil
}

type spacerSection struct{}

// Spacer returns a single blank line.
func Spacer() Section {
	return spacerSection{}
}

func (spacerSection) Render(int, string, string) RenderedSection {
	return RenderedSection{Content: ""}
}

func (spacerSection) Update(tea.Msg, string) (string, tea.Cmd) {
	return "", nil
}

// ButtonDef is one button in a Buttons section.
type ButtonDef struct {
	Label string
	ID    string
}

// Btn builds a ButtonDef.
func Btn(label, id string) ButtonDef {
	return ButtonDef{Label: label, ID: id}
}

type buttonsSection struct {
	buttons []ButtonDef
}

// Buttons returns a row of buttons.
func Buttons(buttons ...ButtonDef) Section {
	return &buttonsSection{buttons: buttons}
}

const buttonGap = "  "

func (b *buttonsSection) Render(_ int, focusID, hoverID string) RenderedSection {
	var parts []string
	var focusables []FocusableInfo
	x := 0
	for i, btn := range b.buttons {
		if i > 0 {
			parts = append(parts, buttonGap)
			x += len(buttonGap)
		}
		rendered := buttonStyle(btn.ID, focusID, hoverID).Render(btn.Label)
		w := lipgloss.Width(rendered)
		parts = append(parts, rendered)
		focusables = append(focusables, FocusableInfo{ID: btn.ID, OffsetX: x, Width: w, Height: 1})
		x += w
	}
	return RenderedSection{Content: strings.Join(parts, ""), Focusables: focusables}
}

func (b *buttonsSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	return activate(msg, focusID, b.ids())
}

func (b *buttonsSection) ids() []string {
	ids := make([]string, len(b.buttons))
	for i, btn := range b.buttons {
		ids[i] = btn.ID
	}
	return ids
}

// CardDef is one card in a Cards section. The whole card is clickable.
type CardDef struct {
	ID     string
	Icon   string
	Title  string
	Text   string
	Action string
}

// Card builds a CardDef.
func Card(id, icon, title, text, action string) CardDef {
	return CardDef{ID: id, Icon: icon, Title: title, Text: text, Action: action}
}

type cardsSection struct {
	cards []CardDef
}

// Cards returns cards laid out side by side, or stacked when the modal is
// too narrow for them.
func Cards(cards ...CardDef) Section {
	return &cardsSection{cards: cards}
}

const (
	minCardWidth = 22
	cardGap      = 2
)

// columns picks how many cards fit on one row.
func (c *cardsSection) columns(contentWidth int) int {
	n := len(c.cards)
	if n == 0 {
		return 0
	}
	if n*minCardWidth+(n-1)*cardGap <= contentWidth {
		return n
	}
	return 1
}

func (c *cardsSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	cols := c.columns(contentWidth)
	if cols == 0 {
		return RenderedSection{}
	}
	cardWidth := (contentWidth - cardGap*(cols-1)) / cols
	// Rounded border plus one column of padding each side.
	inner := max(1, cardWidth-4)

	bodies := make([][]string, len(c.cards))
	tallest := 0
	for i, card := range c.cards {
		center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)
		body := []string{
			center.Render(card.Icon),
			center.Render(CardTitle.Render(ansi.Truncate(card.Title, inner, "…"))),
			"",
		}
		body = append(body, strings.Split(center.Foreground(Muted).Render(card.Text), "\n")...)
		bodies[i] = body
		tallest = max(tallest, len(body))
	}

	blocks := make([]string, len(c.cards))
	for i, card := range c.cards {
		body := bodies[i]
		for len(body) < tallest {
			body = append(body, "")
		}
		btn := buttonStyle(card.ID, focusID, hoverID).Render(ansi.Truncate(card.Action, max(1, inner-4), "…"))
		body = append(body, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center, btn))

		frame := CardFrame
		if card.ID == hoverID || card.ID == focusID {
			frame = CardFrameHover
		}
		blocks[i] = frame.Width(inner + 2).Render(strings.Join(body, "\n"))
	}

	var focusables []FocusableInfo
	if cols == 1 {
		y := 0
		for i, card := range c.cards {
			h := lipgloss.Height(blocks[i])
			focusables = append(focusables, FocusableInfo{
				ID: card.ID, OffsetY: y, Width: lipgloss.Width(blocks[i]), Height: h,
			})
			y += h
		}
		return RenderedSection{Content: lipgloss.JoinVertical(lipgloss.Left, blocks...), Focusables: focusables}
	}

	var row []string
	x := 0
	for i, card := range c.cards {
		if i > 0 {
			row = append(row, strings.Repeat(" ", cardGap))
			x += cardGap
		}
		w := lipgloss.Width(blocks[i])
		row = append(row, blocks[i])
		focusables = append(focusables, FocusableInfo{
			ID: card.ID, OffsetX: x, Width: w, Height: lipgloss.Height(blocks[i]),
		})
		x += w
	}
	return RenderedSection{Content: lipgloss.JoinHorizontal(lipgloss.Top, row...), Focusables: focusables}
}

func (c *cardsSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	ids := make([]string, len(c.cards))
	for i, card := range c.cards {
		ids[i] = card.ID
	}
	return activate(msg, focusID, ids)
}

// activate returns focusID when enter or space is pressed on one of ids.
func activate(msg tea.Msg, focusID string, ids []string) (string, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", nil
	}
	switch key.String() {
	case "enter", " ":
		for _, id := range ids {
			if id == focusID {
				return id, nil
			}
		}
	}
	return "", nil
}

func buttonStyle(id, focusID, hoverID string) lipgloss.Style {
	switch id {
	case focusID:
		return ButtonFocused
	case hoverID:
		return ButtonHover
	}
	return Button
}
