package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	whyChooseID     = "why-choose"
	learningPathsID = "learning-paths"
)

const brandIcon = `<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" class="w-7 h-7 text-purple-400"><path stroke-linecap="round" stroke-linejoin="round" d="M16.5 4.5L19.5 7.5M19.5 7.5L16.5 10.5M19.5 7.5H9.75M7.5 19.5L4.5 16.5M4.5 16.5L7.5 13.5M4.5 16.5H14.25" /></svg>`

// scrollButton scrolls the section with the given id into view.
func scrollButton(target, class, label string) g.Node {
	return Button(
		Type("button"),
		Class(class),
		g.Attr("data-scroll-to", target),
		g.Text(label),
	)
}

func Topbar(brand string) g.Node {
	return Header(
		Class("bg-black border-b border-gray-800"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 flex justify-between h-16 items-center"),
			Div(
				Class("flex items-center space-x-2"),
				Span(Class("text-2xl"), g.Raw(brandIcon)),
				Span(Class("text-2xl font-bold"), g.Text(brand)),
			),
			Nav(
				Class("flex items-center space-x-6"),
				scrollButton(whyChooseID, "btn-nav", "Features"),
				scrollButton(learningPathsID, "btn-nav", "Learning Paths"),
			),
		),
	)
}
