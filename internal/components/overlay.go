package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/marcus/codenest/internal/landing"
)

const closeIcon = `<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="2" stroke="currentColor" class="w-8 h-8"><path stroke-linecap="round" stroke-linejoin="round" d="M6 18L18 6M6 6l12 12" /></svg>`

var panelGradients = []string{"from-purple-500/20 to-pink-500/20", "from-pink-500/20 to-purple-500/20"}

func panel(i int, p landing.Panel) g.Node {
	return Div(
		Class("group bg-[#181028] rounded-2xl p-8 transform transition-all duration-500 hover:scale-105 hover:shadow-2xl relative overflow-hidden"),
		g.Attr("data-panel", p.Label),
		Div(Class("absolute inset-0 bg-gradient-to-br "+panelGradients[i%len(panelGradients)]+" opacity-0 group-hover:opacity-100 transition-opacity duration-500")),
		Div(
			Class("relative z-10"),
			Div(Class("mb-6 text-6xl text-center"), g.Text(p.Icon)),
			H3(Class("text-2xl font-bold mb-4 text-center"), g.Text(p.Label)),
			P(Class("text-gray-300 mb-6 text-center"), g.Text(p.Text)),
			Div(
				Class("flex justify-center"),
				Button(Type("button"), Class("btn-explore px-8 py-3 text-lg"), g.Text(p.Action)),
			),
		),
	)
}

// PathOverlay renders the learning path dialog. A closed selection renders
// nothing at all.
func PathOverlay(sel landing.Selection) g.Node {
	title, ok := sel.Title()
	if !ok {
		return nil
	}

	panels := landing.PanelsFor(title)
	nodes := make([]g.Node, len(panels))
	for i, p := range panels {
		nodes[i] = panel(i, p)
	}

	return Div(
		Class("fixed inset-0 bg-black/80 backdrop-blur-sm z-50 flex items-center justify-center p-4"),
		g.Attr("role", "dialog"),
		g.Attr("aria-label", title),
		Div(
			Class("relative w-full max-w-4xl"),
			A(
				Href(CloseHref()),
				Class("absolute -top-12 right-0 text-white hover:text-purple-400 transition-colors"),
				g.Attr("data-overlay-close", ""),
				g.Attr("aria-label", "Close"),
				g.Raw(closeIcon),
			),
			Div(Class("grid grid-cols-1 md:grid-cols-2 gap-8"), g.Group(nodes)),
		),
	)
}
