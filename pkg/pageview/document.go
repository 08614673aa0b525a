package pageview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/codenest/internal/content"
	"github.com/marcus/codenest/internal/landing"
	"github.com/marcus/codenest/pkg/pageview/modal"
)

// Button IDs used in the document and header hit regions.
const (
	btnHeroStart   = "hero-start"
	btnCTAStart    = "cta-start"
	btnNavFeatures = "nav-features"
	btnNavPaths    = "nav-paths"
	btnExplore     = "explore"

	exploreLabel = "Explore →"
)

const (
	heroMinRows    = 12
	maxContentW    = 110
	minFeatureW    = 24
	minPathW       = 28
	gridGap        = 2
	sectionSpacing = 1
)

// hitRect is a rectangle in document rows and columns.
type hitRect struct {
	Row, Col, W, H int
}

// docButton is a clickable element of the document.
type docButton struct {
	ID   string
	Rect hitRect
	// Index is the path index for explore buttons.
	Index int
}

// docLayout records where things ended up in the rendered document.
type docLayout struct {
	Height    int
	Features  int // first row of the Why Choose section, -1 while hidden
	Paths     int // first row of the Learning Paths section, -1 while hidden
	Cards     []span
	PathCards []span
	Buttons   []docButton
}

// cardBounds resolves a feature card element to its rows.
func (l docLayout) cardBounds(el landing.Element) (span, bool) {
	i, ok := el.(cardElement)
	if !ok || int(i) < 0 || int(i) >= len(l.Cards) {
		return span{}, false
	}
	return l.Cards[i], true
}

// docOptions controls document rendering.
type docOptions struct {
	Width    int
	HeroRows int
	Focus    int // focused path index, -1 for none
	Hover    string
}

// docBuilder accumulates document lines.
type docBuilder struct {
	width  int
	lines  []string
	layout docLayout
}

func (b *docBuilder) row() int {
	return len(b.lines)
}

func (b *docBuilder) blank(n int) {
	for range n {
		b.lines = append(b.lines, "")
	}
}

// centered appends line centered in the document and returns its left column.
func (b *docBuilder) centered(line string) int {
	col := max(0, (b.width-lipgloss.Width(line))/2)
	b.lines = append(b.lines, strings.Repeat(" ", col)+line)
	return col
}

// button appends a centered button and records its region.
func (b *docBuilder) button(id, label string, style lipgloss.Style, index int) {
	rendered := style.Render(label)
	row := b.row()
	col := b.centered(rendered)
	b.layout.Buttons = append(b.layout.Buttons, docButton{
		ID:    id,
		Rect:  hitRect{Row: row, Col: col, W: lipgloss.Width(rendered), H: 1},
		Index: index,
	})
}

// block appends a multi-line block at column col.
func (b *docBuilder) block(s string, col int) span {
	top := b.row()
	pad := strings.Repeat(" ", col)
	for _, l := range strings.Split(s, "\n") {
		b.lines = append(b.lines, pad+l)
	}
	return span{Top: top, Height: b.row() - top}
}

// wrapLines word-wraps s to width and returns the lines.
func wrapLines(s string, width int) []string {
	return strings.Split(ansi.Wrap(s, max(1, width), ""), "\n")
}

// renderDocument renders the scrollable part of the page: the hero and,
// once shown, the main content.
func renderDocument(cat *content.Catalog, state landing.State, opts docOptions) (string, docLayout) {
	b := &docBuilder{width: max(1, opts.Width)}
	b.layout.Features, b.layout.Paths = -1, -1

	renderHero(b, cat.Hero, opts)

	if state.Shown {
		renderFeatures(b, cat, state.Visible)
		renderPaths(b, cat.Paths, opts)
		renderCTA(b, cat.CTA, opts)
	}

	b.layout.Height = b.row()
	return strings.Join(b.lines, "\n"), b.layout
}

func buttonStyle(id string, hover string, focused bool) lipgloss.Style {
	switch {
	case focused:
		return modal.ButtonFocused
	case id == hover:
		return modal.ButtonHover
	}
	return modal.Button
}

// renderHero fills exactly opts.HeroRows rows.
func renderHero(b *docBuilder, hero content.Hero, opts docOptions) {
	textW := max(1, min(b.width-4, 72))

	marked := make(map[string]bool, len(hero.Highlights))
	for _, h := range hero.Highlights {
		marked[h] = true
	}
	var headline []string
	n := 0
	for _, line := range wrapLines(hero.Headline, textW) {
		words := strings.Fields(line)
		for i, w := range words {
			if marked[w] {
				words[i] = highlightStyle[n%len(highlightStyle)].Render(w)
				n++
				continue
			}
			words[i] = headlineStyle.Render(w)
		}
		headline = append(headline, strings.Join(words, " "))
	}
	tagline := wrapLines(hero.Tagline, textW)

	// headline, blank, tagline, blank, button
	blockRows := len(headline) + 1 + len(tagline) + 1 + 1
	top := max(1, (opts.HeroRows-blockRows)/2)
	start := b.row()

	b.blank(top)
	for _, l := range headline {
		b.centered(l)
	}
	b.blank(1)
	for _, l := range tagline {
		b.centered(taglineStyle.Render(l))
	}
	b.blank(1)
	b.button(btnHeroStart, hero.Button, buttonStyle(btnHeroStart, opts.Hover, false), -1)

	for b.row()-start < opts.HeroRows-1 {
		b.blank(1)
	}
	b.centered(scrollHint.Render("↓ scroll to explore"))
}

// gridColumns returns how many cells of at least minW fit in width.
func gridColumns(n, width, minW, maxCols int) int {
	cols := min(n, maxCols)
	for cols > 1 && cols*minW+(cols-1)*gridGap > width {
		cols--
	}
	return max(cols, 1)
}

// frameCells pads each cell body to the tallest and frames it, so every
// block in a row has the same size.
func frameCells(bodies [][]string, inner int, styles []lipgloss.Style) []string {
	tallest := 0
	for _, body := range bodies {
		tallest = max(tallest, len(body))
	}
	out := make([]string, len(bodies))
	for i, body := range bodies {
		for len(body) < tallest {
			body = append(body, "")
		}
		out[i] = styles[i].Width(inner + 2).Render(strings.Join(body, "\n"))
	}
	return out
}

// joinRow places equal-height blocks side by side.
func joinRow(blocks []string) string {
	var parts []string
	for i, blk := range blocks {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", gridGap))
		}
		parts = append(parts, blk)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderFeatures(b *docBuilder, cat *content.Catalog, visible []bool) {
	b.blank(sectionSpacing)
	b.layout.Features = b.row()
	b.centered(sectionTitleStyle.Render(fmt.Sprintf("Why Choose %s?", cat.Brand)))
	b.blank(1)

	avail := max(1, min(b.width-2, maxContentW))
	cols := gridColumns(len(cat.Features), avail, minFeatureW, 3)
	cellW := (avail - gridGap*(cols-1)) / cols
	inner := max(1, cellW-4)

	bodies := make([][]string, len(cat.Features))
	styles := make([]lipgloss.Style, len(cat.Features))
	for i, f := range cat.Features {
		center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)
		body := []string{
			center.Render(f.Icon),
			center.Render(cardTitleStyle.Render(ansi.Truncate(f.Title, inner, "…"))),
			"",
		}
		for _, l := range wrapLines(f.Description, inner) {
			body = append(body, center.Render(cardTextStyle.Render(l)))
		}
		bodies[i] = body
		styles[i] = featureCardStyle
	}
	framed := frameCells(bodies, inner, styles)

	// Cards not yet revealed keep their space but draw nothing.
	for i := range framed {
		if i < len(visible) && visible[i] {
			continue
		}
		w, h := lipgloss.Width(framed[i]), lipgloss.Height(framed[i])
		framed[i] = strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", w)+"\n", h), "\n")
	}

	b.layout.Cards = make([]span, len(framed))
	for start := 0; start < len(framed); start += cols {
		end := min(start+cols, len(framed))
		row := joinRow(framed[start:end])
		col := max(0, (b.width-lipgloss.Width(row))/2)
		s := b.block(row, col)
		for i := start; i < end; i++ {
			b.layout.Cards[i] = s
		}
		if end < len(framed) {
			b.blank(1)
		}
	}
}

func renderPaths(b *docBuilder, paths []content.Path, opts docOptions) {
	b.blank(sectionSpacing + 1)
	b.layout.Paths = b.row()
	b.centered(sectionTitleStyle.Render("Learning Paths"))
	b.blank(1)

	avail := max(1, min(b.width-2, maxContentW))
	cols := gridColumns(len(paths), avail, minPathW, 3)
	cellW := (avail - gridGap*(cols-1)) / cols
	inner := max(1, cellW-4)

	b.layout.PathCards = make([]span, len(paths))
	for start := 0; start < len(paths); start += cols {
		end := min(start+cols, len(paths))

		bodies := make([][]string, 0, end-start)
		styles := make([]lipgloss.Style, 0, end-start)
		for i := start; i < end; i++ {
			p := paths[i]
			body := []string{
				badgeStyle.Render(string(p.Level)),
				cardTitleStyle.Render(ansi.Truncate(p.Title, inner, "…")),
			}
			for _, l := range wrapLines(p.Description, inner) {
				body = append(body, cardTextStyle.Render(l))
			}
			bodies = append(bodies, body)
			style := pathCardStyle
			if i == opts.Focus {
				style = pathCardFocusedStyle
			}
			styles = append(styles, style)
		}

		// Explore buttons share the last line of every card in the row.
		tallest := 0
		for _, body := range bodies {
			tallest = max(tallest, len(body))
		}
		btnLine := tallest + 1
		for j := range bodies {
			for len(bodies[j]) < tallest {
				bodies[j] = append(bodies[j], "")
			}
			idx := start + j
			id := exploreID(idx)
			bodies[j] = append(bodies[j], "", buttonStyle(id, opts.Hover, idx == opts.Focus).Render(exploreLabel))
		}

		framed := frameCells(bodies, inner, styles)
		row := joinRow(framed)
		col := max(0, (b.width-lipgloss.Width(row))/2)
		s := b.block(row, col)

		btnW := lipgloss.Width(modal.Button.Render(exploreLabel))
		for j := range framed {
			idx := start + j
			b.layout.PathCards[idx] = s
			cellCol := col + j*(lipgloss.Width(framed[0])+gridGap)
			b.layout.Buttons = append(b.layout.Buttons, docButton{
				ID: exploreID(idx),
				// Border row plus the body lines; border column plus padding.
				Rect:  hitRect{Row: s.Top + 1 + btnLine, Col: cellCol + 2, W: btnW, H: 1},
				Index: idx,
			})
		}
		if end < len(paths) {
			b.blank(1)
		}
	}
}

func exploreID(i int) string {
	return fmt.Sprintf("%s:%d", btnExplore, i)
}

func renderCTA(b *docBuilder, cta content.CallToAction, opts docOptions) {
	b.blank(sectionSpacing + 1)
	ruleW := max(0, min(b.width-4, 60))
	b.centered(lipgloss.NewStyle().Foreground(modal.BorderNormal).Render(strings.Repeat("─", ruleW)))
	b.blank(1)
	b.centered(sectionTitleStyle.Render(cta.Heading))
	b.blank(1)
	for _, l := range wrapLines(cta.Body, max(1, min(b.width-4, 72))) {
		b.centered(cardTextStyle.Render(l))
	}
	b.blank(1)
	b.button(btnCTAStart, cta.Button, buttonStyle(btnCTAStart, opts.Hover, false), -1)
	b.blank(2)
}
