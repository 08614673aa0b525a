package components

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/marcus/codenest/internal/content"
)

const (
	// PathQueryParam selects the open learning path overlay.
	PathQueryParam = "path"

	// ShownQueryParam marks a page whose main content was already shown
	// before the link was followed.
	ShownQueryParam = "shown"
)

// ExploreHref links to the page with the overlay for title open. Explore
// buttons only exist once the content is shown, so the link carries that
// state along.
func ExploreHref(title string) string {
	q := url.Values{}
	q.Set(PathQueryParam, title)
	q.Set(ShownQueryParam, "1")
	return "/?" + q.Encode() + "#" + learningPathsID
}

// CloseHref links back to the page with the overlay closed and the content
// still shown.
func CloseHref() string {
	q := url.Values{}
	q.Set(ShownQueryParam, "1")
	return "/?" + q.Encode() + "#" + learningPathsID
}

func PathCard(p content.Path) g.Node {
	return Div(
		Class("group bg-[#181028] rounded-2xl overflow-hidden shadow-lg transform transition-all duration-300 hover:scale-105 hover:shadow-2xl relative cursor-pointer"),
		Style("box-shadow: 0 4px 24px 0 rgba(80, 0, 200, 0.10)"),
		Div(
			Class("relative"),
			Img(Src(p.ImageURL), Alt(p.Title), Class("w-full h-48 object-cover transition-all duration-300 group-hover:brightness-110")),
			Div(Class("absolute top-0 left-0 w-full h-full opacity-0 group-hover:opacity-100 transition-opacity duration-300 bg-gradient-to-br from-purple-500/60 to-pink-400/60")),
		),
		Div(
			Class("p-6"),
			Span(Class("inline-block bg-purple-700 text-xs px-2 py-1 rounded-full mb-2"), g.Text(string(p.Level))),
			H3(Class("text-xl font-semibold mb-1"), g.Text(p.Title)),
			P(Class("text-gray-400 mb-3"), g.Text(p.Description)),
			A(Class("btn-explore"), Href(ExploreHref(p.Title)), g.Text("Explore →")),
		),
	)
}

func LearningPaths(paths []content.Path) g.Node {
	return Section(
		ID(learningPathsID),
		Class("py-16 bg-black"),
		H2(Class("text-4xl font-extrabold text-center mb-14 tracking-tight"), g.Text("Learning Paths")),
		Div(
			Class("max-w-6xl mx-auto grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-8"),
			g.Group(g.Map(paths, PathCard)),
		),
	)
}
