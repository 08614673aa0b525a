package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/marcus/codenest/internal/content"
	"github.com/marcus/codenest/internal/landing"
)

// MainContent wraps the sections that stay collapsed until the first scroll.
func MainContent(catalog *content.Catalog, state landing.State) g.Node {
	class := "transition-opacity duration-1000 opacity-0 pointer-events-none select-none h-0 overflow-hidden"
	if state.Shown {
		class = "transition-opacity duration-1000 opacity-100 pointer-events-auto select-auto"
	}

	return Div(
		ID("main-content"),
		Class(class),
		g.Attr("data-shown", strconv.FormatBool(state.Shown)),
		g.Attr("data-scroll-threshold", strconv.Itoa(landing.ScrollThreshold)),
		WhyChoose(catalog.Brand, catalog.Features, state.Visible),
		LearningPaths(catalog.Paths),
		CTA(catalog.CTA),
	)
}

// LandingPage renders the whole document for a page in the given state.
func LandingPage(catalog *content.Catalog, state landing.State) g.Node {
	return Layout(
		PageConfig{Description: catalog.Hero.Tagline},
		Topbar(catalog.Brand),
		Hero(catalog.Hero),
		MainContent(catalog, state),
		PathOverlay(state.Selection),
	)
}
