package landing

import (
	"fmt"
	"strings"
)

// ModalState is the tag of a Selection.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

func (s ModalState) String() string {
	switch s {
	case ModalClosed:
		return "closed"
	case ModalOpen:
		return "open"
	default:
		return fmt.Sprintf("ModalState(%d)", int(s))
	}
}

// Selection is the active learning path overlay: either Closed or
// Open(title). The zero value is Closed. An open selection always carries a
// title; the fields are unexported so no other combination can be built.
type Selection struct {
	state ModalState
	title string
}

// Closed returns the closed selection.
func Closed() Selection {
	return Selection{}
}

// Open returns a selection for the given title.
func Open(title string) Selection {
	return Selection{state: ModalOpen, title: title}
}

// State returns the selection tag.
func (s Selection) State() ModalState {
	return s.state
}

// IsOpen reports whether an overlay is shown.
func (s Selection) IsOpen() bool {
	return s.state == ModalOpen
}

// Title returns the selected title and whether the selection is open.
func (s Selection) Title() (string, bool) {
	return s.title, s.state == ModalOpen
}

func (s Selection) String() string {
	if s.state == ModalOpen {
		return fmt.Sprintf("open(%q)", s.title)
	}
	return "closed"
}

// Entries is the set of titles a selection may refer to.
type Entries interface {
	Has(title string) bool
}

// Modal holds at most one active selection.
type Modal struct {
	entries Entries
	sel     Selection
}

// NewModal returns a closed modal whose selections are restricted to
// entries.
func NewModal(entries Entries) *Modal {
	return &Modal{entries: entries}
}

// Selection returns the current selection.
func (m *Modal) Selection() Selection {
	return m.sel
}

// IsOpen reports whether an overlay is shown.
func (m *Modal) IsOpen() bool {
	return m.sel.IsOpen()
}

// SelectEntry opens the overlay for title, replacing any open selection.
// Titles that are not in the catalog leave the state unchanged and return
// false.
func (m *Modal) SelectEntry(title string) bool {
	if m.entries == nil || !m.entries.Has(title) {
		return false
	}
	m.sel = Open(title)
	return true
}

// Close returns the modal to the closed state. Closing a closed modal is a
// no-op.
func (m *Modal) Close() {
	m.sel = Closed()
}

// Panel is one of the informational cards shown in an open overlay.
type Panel struct {
	Icon   string
	Label  string
	Text   string
	Action string
}

// PanelsFor returns the Study and Quiz panels for a learning path title.
func PanelsFor(title string) []Panel {
	t := strings.ToLower(title)
	return []Panel{
		{
			Icon:   "📚",
			Label:  "Study",
			Text:   fmt.Sprintf("Dive deep into %s concepts with interactive lessons and visualizations.", t),
			Action: "Start Learning →",
		},
		{
			Icon:   "🎯",
			Label:  "Quiz",
			Text:   fmt.Sprintf("Test your knowledge of %s with interactive quizzes and challenges.", t),
			Action: "Take Quiz →",
		},
	}
}

// Panels returns the panels for the open selection, or nil when closed.
func (m *Modal) Panels() []Panel {
	title, ok := m.sel.Title()
	if !ok {
		return nil
	}
	return PanelsFor(title)
}
