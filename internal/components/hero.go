package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/marcus/codenest/internal/content"
)

var highlightClasses = []string{"text-purple-400", "text-pink-400"}

// headline splits the headline into words and colors the highlighted ones,
// alternating purple and pink.
func headline(text string, highlights []string) []g.Node {
	marked := make(map[string]bool, len(highlights))
	for _, h := range highlights {
		marked[h] = true
	}

	var nodes []g.Node
	n := 0
	for i, word := range strings.Fields(text) {
		if i > 0 {
			nodes = append(nodes, g.Text(" "))
		}
		if marked[word] {
			nodes = append(nodes, Span(Class(highlightClasses[n%len(highlightClasses)]), g.Text(word)))
			n++
			continue
		}
		nodes = append(nodes, g.Text(word))
	}
	return nodes
}

func Hero(hero content.Hero) g.Node {
	return Section(
		Class("bg-gradient-to-b from-[#1a102e] to-black min-h-screen flex items-center py-24 md:py-32 relative overflow-hidden"),
		Div(Class("absolute left-1/2 top-1/2 -translate-x-1/2 -translate-y-1/2 w-[700px] h-[400px] bg-gradient-to-br from-purple-700/40 via-pink-500/20 to-transparent rounded-full blur-3xl opacity-60 pointer-events-none z-0")),
		Div(
			Class("max-w-7xl mx-auto flex flex-col md:flex-row items-center justify-between px-4 gap-12 w-full relative z-10"),
			Div(
				Class("flex-1 text-center md:text-left"),
				H1(
					Class("text-5xl md:text-7xl font-extrabold mb-6 leading-tight drop-shadow-lg"),
					g.Group(headline(hero.Headline, hero.Highlights)),
				),
				P(
					Class("max-w-2xl text-2xl text-gray-200 mb-10 mx-auto md:mx-0 font-medium drop-shadow"),
					g.Text(hero.Tagline),
				),
				scrollButton(learningPathsID, "btn-gradient animate-pulse", hero.Button),
			),
			g.If(hero.ImageURL != "",
				Div(
					Class("flex-1 flex justify-center md:justify-end w-full"),
					Img(
						Src(hero.ImageURL),
						Alt("Developer at computer"),
						Class("rounded-3xl shadow-2xl w-full max-w-lg object-cover border-4 border-purple-900/40"),
						Style("max-height: 420px"),
					),
				),
			),
		),
	)
}
