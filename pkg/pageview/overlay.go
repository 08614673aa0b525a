package pageview

import (
	"strings"

	"github.com/marcus/codenest/internal/landing"
	"github.com/marcus/codenest/pkg/pageview/modal"
)

const overlayMaxWidth = 76

// panelID is the modal region ID of a panel.
func panelID(p landing.Panel) string {
	return strings.ToLower(p.Label)
}

// createPathModal builds the learning path overlay for title from the
// panels the modal controller provides. Call it when the selection opens,
// not at init time.
func createPathModal(title string, panels []landing.Panel, screenW int) *modal.Modal {
	width := min(overlayMaxWidth, max(screenW-4, 30))

	md := modal.New(title,
		modal.WithWidth(width),
		modal.WithCloseOnBackdropClick(true),
	)

	cards := make([]modal.CardDef, 0, len(panels))
	for _, p := range panels {
		cards = append(cards, modal.Card(panelID(p), p.Icon, p.Label, p.Text, p.Action))
	}
	md.AddSection(modal.Spacer())
	md.AddSection(modal.Cards(cards...))

	return md
}
