// Package pageview renders the landing page in a terminal and hosts its
// interactive controllers. The viewport's scroll offset drives the
// visibility latch, feature cards are observed against the visible rows,
// and the learning path overlay is drawn as a modal.
package pageview

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/codenest/internal/content"
	"github.com/marcus/codenest/internal/landing"
	"github.com/marcus/codenest/pkg/pageview/modal"
	"github.com/marcus/codenest/pkg/pageview/mouse"
)

const (
	headerRows       = 2 // title line plus bottom border
	wheelStep        = 3
	defaultRowPixels = 16
)

// Options configures a Model.
type Options struct {
	// RowPixels is how many pixels of scroll one terminal row counts as.
	RowPixels int
	// Mouse enables click and hover handling.
	Mouse bool
	// Copy puts text on the system clipboard. Nil disables copying.
	Copy func(string) error
}

// Model is the bubbletea model for the terminal landing page.
type Model struct {
	page *landing.Page
	host *terminalHost
	opts Options

	keys     keyMap
	help     help.Model
	mouse    *mouse.Handler
	viewport viewport.Model
	layout   docLayout

	overlay      *modal.Modal
	overlayTitle string

	width, height int
	ready         bool
	focus         int // focused path index, -1 for none
	hover         string
	status        string
}

// New creates a model for catalog. Call Close once the program exits.
func New(catalog *content.Catalog, opts Options) Model {
	if opts.RowPixels <= 0 {
		opts.RowPixels = defaultRowPixels
	}
	host := newTerminalHost(opts.RowPixels)
	return Model{
		page:  landing.NewPage(host, catalog),
		host:  host,
		opts:  opts,
		keys:  defaultKeyMap(),
		help:  help.New(),
		mouse: mouse.NewHandler(),
		focus: -1,
	}
}

// Page returns the controllers driven by this model.
func (m Model) Page() *landing.Page {
	return m.page
}

// Close detaches the page from the terminal host.
func (m Model) Close() {
	m.page.Close()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.overlay != nil {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.opts.Mouse || !m.ready {
			return m, nil
		}
		if m.overlay != nil {
			return m.handleOverlayMouse(msg)
		}
		return m.handleMouse(msg)
	}
	return m, nil
}

// footerRows is the height of the help/status area.
func (m Model) footerRows() int {
	if m.help.ShowAll {
		return lipgloss.Height(m.help.View(m.keys))
	}
	return 1
}

// heroRows sizes the hero so the page can always scroll past the
// visibility threshold.
func (m Model) heroRows() int {
	slack := landing.ScrollThreshold/m.opts.RowPixels + 1
	return max(heroMinRows, m.viewport.Height+slack)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	vpH := max(1, h-headerRows-m.footerRows())
	if !m.ready {
		m.viewport = viewport.New(w, vpH)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = vpH
	}
	m.sync()
}

// render redraws the document for the current state.
func (m *Model) render() {
	doc, layout := renderDocument(m.page.Catalog, m.page.State(), docOptions{
		Width:    m.width,
		HeroRows: m.heroRows(),
		Focus:    m.focus,
		Hover:    m.hover,
	})
	m.layout = layout
	m.viewport.SetContent(doc)
}

// sync feeds the viewport position to the host and redraws whatever the
// controllers changed.
func (m *Model) sync() {
	if !m.ready {
		return
	}
	m.render()

	wasShown := m.page.Visibility.Shown()
	m.host.scrolled(m.viewport.YOffset)
	if !wasShown && m.page.Visibility.Shown() {
		slog.Debug("content shown", "offset", m.viewport.YOffset*m.opts.RowPixels)
		m.render()
	}

	if m.layout.Features >= 0 {
		for i, h := range m.page.Reveal.Handles() {
			h.Bind(cardElement(i))
		}
	}
	m.host.observe(m.viewport.YOffset, m.viewport.Height, m.layout.cardBounds)
	m.render()
}

// scrollTo moves the viewport so row is at the top.
func (m *Model) scrollTo(row int) {
	m.viewport.SetYOffset(row)
	m.sync()
}

func (m *Model) scrollBy(rows int) {
	m.scrollTo(m.viewport.YOffset + rows)
}

// scrollToSection jumps to a section of the main content, scrolling past the
// hero first when the content is still hidden.
func (m *Model) scrollToSection(id string) {
	if !m.page.Visibility.Shown() {
		m.scrollTo(m.layout.Height)
	}
	switch id {
	case btnNavFeatures:
		if m.layout.Features >= 0 {
			m.scrollTo(m.layout.Features)
		}
	default:
		if m.layout.Paths >= 0 {
			m.scrollTo(m.layout.Paths)
		}
	}
}

// setFocus focuses path i and keeps its card on screen.
func (m *Model) setFocus(i int) {
	n := len(m.page.Catalog.Paths)
	if n == 0 {
		return
	}
	m.focus = (i%n + n) % n
	if m.focus < len(m.layout.PathCards) {
		s := m.layout.PathCards[m.focus]
		switch {
		case s.Top < m.viewport.YOffset:
			m.scrollTo(s.Top)
			return
		case s.Top+s.Height > m.viewport.YOffset+m.viewport.Height:
			m.scrollTo(s.Top + s.Height - m.viewport.Height)
			return
		}
	}
	m.render()
}

// explore opens the overlay for path i.
func (m *Model) explore(i int) {
	if i < 0 || i >= len(m.page.Catalog.Paths) {
		return
	}
	m.focus = i
	title := m.page.Catalog.Paths[i].Title
	if !m.page.Modal.SelectEntry(title) {
		slog.Warn("unknown learning path", "title", title)
		return
	}
	m.syncOverlay()
	m.render()
}

// syncOverlay rebuilds the modal whenever the selection changes.
func (m *Model) syncOverlay() {
	title, open := m.page.Modal.Selection().Title()
	if !open {
		m.overlay, m.overlayTitle = nil, ""
		return
	}
	if m.overlay != nil && m.overlayTitle == title {
		return
	}
	m.overlay = createPathModal(title, m.page.Modal.Panels(), m.width)
	m.overlayTitle = title
}

func (m *Model) closeOverlay() {
	m.page.Modal.Close()
	m.syncOverlay()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.ready {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.viewport.Height)
	case key.Matches(msg, m.keys.Top):
		m.scrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.scrollTo(m.layout.Height)
	case key.Matches(msg, m.keys.Features):
		m.scrollToSection(btnNavFeatures)
	case key.Matches(msg, m.keys.Paths):
		m.scrollToSection(btnNavPaths)
	case key.Matches(msg, m.keys.Next):
		m.revealPaths()
		m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Prev):
		m.revealPaths()
		m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.Open):
		if m.focus >= 0 {
			m.explore(m.focus)
		}
	case key.Matches(msg, m.keys.Copy):
		if m.focus >= 0 {
			m.copyPath(m.page.Catalog.Paths[m.focus])
		}
	}
	return m, nil
}

// revealPaths makes sure the paths grid exists before focusing into it.
func (m *Model) revealPaths() {
	if m.layout.Paths < 0 {
		m.scrollToSection(btnNavPaths)
	}
}

func (m *Model) copyPath(p content.Path) {
	if m.opts.Copy == nil {
		return
	}
	if err := m.opts.Copy(p.Markdown()); err != nil {
		slog.Error("copy path", "title", p.Title, "err", err)
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("copied %q to clipboard", p.Title)
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Copy) {
		if p, ok := m.page.Catalog.Lookup(m.overlayTitle); ok {
			m.copyPath(p)
		}
		return m, nil
	}
	action, cmd := m.overlay.HandleKey(msg)
	m.handleOverlayAction(action)
	return m, cmd
}

func (m Model) handleOverlayMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := m.overlay.HandleMouse(msg, m.mouse)
	m.handleOverlayAction(action)
	return m, nil
}

func (m *Model) handleOverlayAction(action string) {
	switch action {
	case "":
	case modal.ActionClose:
		m.closeOverlay()
		m.render()
	default:
		m.status = fmt.Sprintf("%s: %s", strings.ToLower(m.overlayTitle), panelLabel(m.page.Modal.Panels(), action))
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := m.mouse.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionScrollUp:
		m.scrollBy(-wheelStep)
	case mouse.ActionScrollDown:
		m.scrollBy(wheelStep)
	case mouse.ActionHover:
		hover := ""
		if action.Region != nil {
			hover = action.Region.ID
		}
		if hover != m.hover {
			m.hover = hover
			m.render()
		}
	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region == nil {
			return m, nil
		}
		m.status = ""
		switch id := action.Region.ID; id {
		case btnNavFeatures:
			m.scrollToSection(btnNavFeatures)
		case btnNavPaths, btnHeroStart, btnCTAStart:
			m.scrollToSection(btnNavPaths)
		default:
			if i, ok := action.Region.Data.(int); ok && strings.HasPrefix(id, btnExplore) {
				m.explore(i)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}
	m.mouse.Clear()

	header := m.renderHeader()
	footer := m.renderFooter()
	m.registerDocumentRegions()

	if m.overlay != nil {
		// The overlay covers the page; the footer stays for status messages.
		return m.overlay.Render(m.width, m.height-1, m.mouse) + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
}

func (m Model) renderHeader() string {
	brand := brandStyle.Render("⇄ " + m.page.Catalog.Brand)

	navFeatures := navStyle
	if m.hover == btnNavFeatures {
		navFeatures = navHoverStyle
	}
	navPaths := navStyle
	if m.hover == btnNavPaths {
		navPaths = navHoverStyle
	}
	features := navFeatures.Render("Features")
	paths := navPaths.Render("Learning Paths")
	nav := features + paths

	gap := max(1, m.width-lipgloss.Width(brand)-lipgloss.Width(nav)-2)
	line := " " + brand + strings.Repeat(" ", gap) + nav + " "
	line = ansi.Truncate(line, m.width, "")

	navCol := 1 + lipgloss.Width(brand) + gap
	m.mouse.HitMap.AddRect(btnNavFeatures, navCol, 0, lipgloss.Width(features), 1, nil)
	m.mouse.HitMap.AddRect(btnNavPaths, navCol+lipgloss.Width(features), 0, lipgloss.Width(paths), 1, nil)

	return headerStyle.Width(m.width).Render(line)
}

func (m Model) renderFooter() string {
	switch {
	case m.status != "":
		return statusStyle.Render(ansi.Truncate(m.status, m.width, "…"))
	case m.overlay != nil:
		return modal.MutedText.Render(ansi.Truncate("y: copy path • ctrl+c: quit", m.width, "…"))
	}
	return m.help.View(m.keys)
}

// registerDocumentRegions maps the document's buttons onto screen rows,
// skipping anything scrolled out of the viewport.
func (m Model) registerDocumentRegions() {
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	for _, btn := range m.layout.Buttons {
		r := btn.Rect
		if r.Row < top || r.Row >= bottom {
			continue
		}
		var data any
		if btn.Index >= 0 {
			data = btn.Index
		}
		m.mouse.HitMap.AddRect(btn.ID, r.Col, headerRows+r.Row-top, r.W, r.H, data)
	}
}

func panelLabel(panels []landing.Panel, id string) string {
	for _, p := range panels {
		if panelID(p) == id {
			return p.Label + " coming soon"
		}
	}
	return id
}
