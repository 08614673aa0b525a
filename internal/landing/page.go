package landing

import "github.com/marcus/codenest/internal/content"

// Page is the interactive state of one landing page instance. Each host
// creates its own Page; nothing here is shared between instances.
type Page struct {
	Catalog    *content.Catalog
	Visibility *Visibility
	Reveal     *Reveal
	Modal      *Modal
}

// State is a point-in-time copy of a page's interactive state, used by
// renderers.
type State struct {
	Shown     bool
	Visible   []bool
	Selection Selection
}

// NewPage wires the page controllers to host. The reveal controller tracks
// one card per feature in the catalog.
func NewPage(host Host, catalog *content.Catalog) *Page {
	return &Page{
		Catalog:    catalog,
		Visibility: NewVisibility(host, ScrollThreshold),
		Reveal:     NewReveal(host, len(catalog.Features), RevealThreshold),
		Modal:      NewModal(catalog),
	}
}

// State returns the current state.
func (p *Page) State() State {
	return State{
		Shown:     p.Visibility.Shown(),
		Visible:   p.Reveal.Visible(),
		Selection: p.Modal.Selection(),
	}
}

// Close detaches every listener the page registered with its host.
func (p *Page) Close() {
	p.Visibility.Close()
	p.Reveal.Close()
}
