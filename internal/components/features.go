package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/marcus/codenest/internal/content"
	"github.com/marcus/codenest/internal/landing"
)

func revealClass(visible bool) string {
	if visible {
		return "opacity-100 translate-y-0"
	}
	return "opacity-0 translate-y-10"
}

// FeatureCard renders card i of the "Why Choose" section. Hidden cards carry
// the reveal data attributes the page script observes.
func FeatureCard(i int, f content.Feature, visible bool) g.Node {
	return Div(
		Class("bg-[#181028] rounded-2xl p-10 shadow-lg text-center transform transition-all duration-700 relative overflow-hidden group hover:scale-105 hover:shadow-2xl hover:ring-4 hover:ring-purple-500/30 "+revealClass(visible)),
		Style("box-shadow: 0 4px 24px 0 rgba(80, 0, 200, 0.10)"),
		g.Attr("data-reveal-index", strconv.Itoa(i)),
		g.If(!visible, g.Attr("data-reveal-threshold", strconv.FormatFloat(landing.RevealThreshold, 'f', -1, 64))),
		Div(Class("mb-6 text-5xl drop-shadow-lg transition-transform duration-300 group-hover:scale-125"), g.Text(f.Icon)),
		H3(Class("text-2xl font-bold mb-3"), g.Text(f.Title)),
		P(Class("text-gray-300 text-lg"), g.Text(f.Description)),
	)
}

func WhyChoose(brand string, features []content.Feature, visible []bool) g.Node {
	cards := make([]g.Node, len(features))
	for i, f := range features {
		cards[i] = FeatureCard(i, f, i < len(visible) && visible[i])
	}

	return Section(
		ID(whyChooseID),
		Class("py-20 bg-black"),
		H2(Class("text-4xl font-extrabold text-center mb-14 tracking-tight"), g.Textf("Why Choose %s?", brand)),
		Div(
			Class("max-w-5xl mx-auto grid grid-cols-1 md:grid-cols-3 gap-10"),
			g.Group(cards),
		),
	)
}
