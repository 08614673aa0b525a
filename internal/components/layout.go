// Package components renders the landing page as HTML with gomponents.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
}

const pageStyles = `
.btn-gradient{background:linear-gradient(90deg,#a855f7,#ec4899);color:#fff;padding:.875rem 2.25rem;border-radius:.75rem;font-weight:700;font-size:1.125rem}
.btn-explore{background:#7e22ce;color:#fff;padding:.5rem 1.25rem;border-radius:.5rem;font-weight:600;display:inline-block}
.btn-explore:hover{background:#9333ea}
.btn-nav{color:#d1d5db;font-weight:500}
.btn-nav:hover{color:#c084fc}
`

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Code Nest - Master DSA Through Interactive Learning"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),
				Script(Src("https://cdn.tailwindcss.com")),
				StyleEl(g.Raw(pageStyles)),
			),
			Body(
				Class("min-h-screen bg-black text-white"),
				g.Group(content),
				Script(g.Raw(revealScript)),
			),
		),
	})
}
