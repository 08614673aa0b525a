package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/marcus/codenest/internal/content"
)

func CTA(cta content.CallToAction) g.Node {
	return Section(
		Class("py-16 bg-gradient-to-t from-[#1a102e] to-black text-center"),
		H2(Class("text-3xl font-bold mb-4"), g.Text(cta.Heading)),
		P(Class("text-gray-300 mb-8"), g.Text(cta.Body)),
		scrollButton(learningPathsID, "bg-purple-500 hover:bg-purple-600 text-white px-8 py-3 rounded-lg font-semibold text-lg transition", cta.Button),
	)
}
