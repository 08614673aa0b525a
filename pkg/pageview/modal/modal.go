package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/codenest/pkg/pageview/mouse"
)

// Region IDs and actions reserved by the modal.
const (
	ActionClose    = "close"
	regionBackdrop = "modal-backdrop"
	regionBody     = "modal-body"
	defaultWidth   = 50
	minWidth       = 24
	closeGlyph     = "✕"
	hintText       = "tab: focus • enter: select • esc: close"
)

// Section is one block of modal content.
type Section interface {
	// Render draws the section at the given width. focusID and hoverID
	// name the focused and hovered elements.
	Render(contentWidth int, focusID, hoverID string) RenderedSection
	// Update handles a message while focusID is focused and returns an
	// action ID, or "".
	Update(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// RenderedSection is the output of Section.Render.
type RenderedSection struct {
	Content    string
	Focusables []FocusableInfo
}

// FocusableInfo is a focusable element, positioned relative to the top-left
// of its section.
type FocusableInfo struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// Option is a functional option for New.
type Option func(*Modal)

// WithWidth sets the total modal width, border included.
func WithWidth(w int) Option {
	return func(m *Modal) {
		if w > 0 {
			m.width = w
		}
	}
}

// WithHints toggles the keyboard hint line.
func WithHints(show bool) Option {
	return func(m *Modal) {
		m.showHints = show
	}
}

// WithCloseOnBackdropClick makes a click outside the modal return
// ActionClose.
func WithCloseOnBackdropClick(close bool) Option {
	return func(m *Modal) {
		m.closeOnBackdrop = close
	}
}

// Modal is a centred dialog made of sections.
type Modal struct {
	title           string
	width           int
	showHints       bool
	closeOnBackdrop bool
	sections        []Section

	focusIdx int
	hoverID  string
}

// New creates an empty modal.
func New(title string, opts ...Option) *Modal {
	m := &Modal{
		title:     title,
		width:     defaultWidth,
		showHints: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSection appends a section and returns the modal for chaining.
func (m *Modal) AddSection(s Section) *Modal {
	m.sections = append(m.sections, s)
	return m
}

// Title returns the modal title.
func (m *Modal) Title() string {
	return m.title
}

// effectiveWidth clamps the configured width to the screen.
func (m *Modal) effectiveWidth(screenW int) int {
	w := m.width
	if screenW > 0 && w > screenW-2 {
		w = screenW - 2
	}
	return max(w, minWidth)
}

// contentWidth is the width inside the border and padding.
func contentWidth(width int) int {
	return width - 4
}

// focusOrder renders the sections off-screen and returns the focusable IDs
// in tab order.
func (m *Modal) focusOrder(width int) []string {
	var ids []string
	for _, s := range m.sections {
		for _, f := range s.Render(contentWidth(width), "", "").Focusables {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// FocusedID returns the ID of the focused element, or "".
func (m *Modal) FocusedID() string {
	return m.focusedID(m.focusOrder(m.width))
}

func (m *Modal) focusedID(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	if m.focusIdx < 0 || m.focusIdx >= len(ids) {
		m.focusIdx = 0
	}
	return ids[m.focusIdx]
}

// Render draws the modal centred on a screenW x screenH canvas and
// registers its hit regions with handler (if non-nil). Regions are added
// backdrop first so the dialog and its focusables sit on top.
func (m *Modal) Render(screenW, screenH int, handler *mouse.Handler) string {
	width := m.effectiveWidth(screenW)
	cw := contentWidth(width)
	focusID := m.focusedID(m.focusOrder(width))

	var lines []string
	var focusables []FocusableInfo

	title := ModalTitle.Render(ansi.Truncate(m.title, cw-2, "…"))
	gap := max(1, cw-lipgloss.Width(title)-lipgloss.Width(closeGlyph))
	lines = append(lines, title+strings.Repeat(" ", gap)+closeGlyph, "")

	for _, s := range m.sections {
		rs := s.Render(cw, focusID, m.hoverID)
		top := len(lines)
		for _, f := range rs.Focusables {
			f.OffsetY += top
			focusables = append(focusables, f)
		}
		lines = append(lines, strings.Split(rs.Content, "\n")...)
	}

	if m.showHints {
		lines = append(lines, "", MutedText.Render(ansi.Truncate(hintText, cw, "…")))
	}

	for i, l := range lines {
		if w := lipgloss.Width(l); w < cw {
			lines[i] = l + strings.Repeat(" ", cw-w)
		}
	}
	box := Frame.Render(strings.Join(lines, "\n"))

	boxW, boxH := lipgloss.Width(box), lipgloss.Height(box)
	left := max(0, (screenW-boxW)/2)
	top := max(0, (screenH-boxH)/2)

	if handler != nil {
		handler.HitMap.AddRect(regionBackdrop, 0, 0, screenW, screenH, nil)
		handler.HitMap.AddRect(regionBody, left, top, boxW, boxH, nil)
		// Border and left padding put content at (+2, +1).
		handler.HitMap.AddRect(ActionClose, left+2+cw-lipgloss.Width(closeGlyph), top+1, lipgloss.Width(closeGlyph), 1, nil)
		for _, f := range focusables {
			handler.HitMap.AddRect(f.ID, left+2+f.OffsetX, top+1+f.OffsetY, f.Width, f.Height, nil)
		}
	}

	return place(box, left, top, screenH)
}

// place indents box by left columns and top rows, padding the result to
// screenH rows.
func place(box string, left, top, screenH int) string {
	pad := strings.Repeat(" ", left)
	var sb strings.Builder
	rows := 0
	for i := 0; i < top; i++ {
		sb.WriteString("\n")
		rows++
	}
	for i, l := range strings.Split(box, "\n") {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(pad + l)
		rows++
	}
	for ; rows < screenH; rows++ {
		sb.WriteString("\n")
	}
	return sb.String()
}

// HandleKey processes a key press and returns the triggered action, if any.
func (m *Modal) HandleKey(msg tea.KeyMsg) (string, tea.Cmd) {
	ids := m.focusOrder(m.width)
	focusID := m.focusedID(ids)

	switch msg.String() {
	case "esc":
		return ActionClose, nil
	case "tab", "right", "l":
		if len(ids) > 0 {
			m.focusIdx = (m.focusIdx + 1) % len(ids)
		}
		return "", nil
	case "shift+tab", "left", "h":
		if len(ids) > 0 {
			m.focusIdx = (m.focusIdx - 1 + len(ids)) % len(ids)
		}
		return "", nil
	}

	for _, s := range m.sections {
		if action, cmd := s.Update(msg, focusID); action != "" || cmd != nil {
			return action, cmd
		}
	}
	return "", nil
}

// HandleMouse processes a mouse event using the regions registered by the
// last Render and returns the triggered action, if any.
func (m *Modal) HandleMouse(msg tea.MouseMsg, handler *mouse.Handler) string {
	action := handler.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionHover:
		m.hoverID = ""
		if action.Region != nil && action.Region.ID != regionBackdrop && action.Region.ID != regionBody {
			m.hoverID = action.Region.ID
		}
		return ""

	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region == nil {
			return ""
		}
		switch action.Region.ID {
		case regionBackdrop:
			if m.closeOnBackdrop {
				return ActionClose
			}
			return ""
		case regionBody:
			return ""
		}
		m.focus(action.Region.ID)
		return action.Region.ID
	}
	return ""
}

// focus moves keyboard focus to id if it is focusable.
func (m *Modal) focus(id string) {
	for i, fid := range m.focusOrder(m.width) {
		if fid == id {
			m.focusIdx = i
			return
		}
	}
}
