package modal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/codenest/pkg/pageview/mouse"
)

func newTestModal(opts ...Option) *Modal {
	return New("Trees", opts...).
		AddSection(Text("Pick how you want to learn.")).
		AddSection(Spacer()).
		AddSection(Cards(
			Card("study", "📚", "Study", "Dive deep into trees concepts.", "Start Learning →"),
			Card("quiz", "🎯", "Quiz", "Test your knowledge of trees.", "Take Quiz →"),
		))
}

func regionByID(t *testing.T, h *mouse.Handler, id string) mouse.Region {
	t.Helper()
	for _, r := range h.HitMap.Regions() {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("region %q not registered", id)
	return mouse.Region{}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestRenderContainsContent(t *testing.T) {
	m := newTestModal(WithWidth(70))
	out := m.Render(100, 40, nil)

	for _, want := range []string{"Trees", "Study", "Quiz", "Start Learning", "Take Quiz", closeGlyph} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if got := strings.Count(out, "\n") + 1; got != 40 {
		t.Errorf("render height = %d, want 40", got)
	}
}

func TestRenderHints(t *testing.T) {
	with := New("T").Render(80, 20, nil)
	without := New("T", WithHints(false)).Render(80, 20, nil)

	if !strings.Contains(with, "esc: close") {
		t.Error("expected hint line by default")
	}
	if strings.Contains(without, "esc: close") {
		t.Error("hint line should be hidden")
	}
}

func TestRenderRegistersRegions(t *testing.T) {
	m := newTestModal(WithWidth(70))
	h := mouse.NewHandler()
	m.Render(100, 40, h)

	regions := h.HitMap.Regions()
	if len(regions) == 0 || regions[0].ID != regionBackdrop {
		t.Fatalf("first region should be the backdrop, got %+v", regions)
	}
	body := regionByID(t, h, regionBody)
	for _, id := range []string{"study", "quiz", ActionClose} {
		r := regionByID(t, h, id)
		if r.Rect.X < body.Rect.X || r.Rect.X+r.Rect.W > body.Rect.X+body.Rect.W {
			t.Errorf("region %q %+v outside body %+v", id, r.Rect, body.Rect)
		}
	}

	study := regionByID(t, h, "study")
	quiz := regionByID(t, h, "quiz")
	if study.Rect.Y != quiz.Rect.Y {
		t.Errorf("wide modal should place cards on one row: study y=%d quiz y=%d", study.Rect.Y, quiz.Rect.Y)
	}
}

func TestCardsStackWhenNarrow(t *testing.T) {
	m := newTestModal(WithWidth(30))
	h := mouse.NewHandler()
	m.Render(100, 60, h)

	study := regionByID(t, h, "study")
	quiz := regionByID(t, h, "quiz")
	if quiz.Rect.Y < study.Rect.Y+study.Rect.H {
		t.Errorf("narrow modal should stack cards: study %+v quiz %+v", study.Rect, quiz.Rect)
	}
}

func TestHandleKey(t *testing.T) {
	m := newTestModal()

	if got := m.FocusedID(); got != "study" {
		t.Fatalf("initial focus = %q, want study", got)
	}

	tests := []struct {
		name       string
		key        tea.KeyMsg
		wantAction string
		wantFocus  string
	}{
		{"tab moves forward", tea.KeyMsg{Type: tea.KeyTab}, "", "quiz"},
		{"tab wraps", tea.KeyMsg{Type: tea.KeyTab}, "", "study"},
		{"shift+tab wraps back", tea.KeyMsg{Type: tea.KeyShiftTab}, "", "quiz"},
		{"enter activates focus", tea.KeyMsg{Type: tea.KeyEnter}, "quiz", "quiz"},
		{"esc closes", tea.KeyMsg{Type: tea.KeyEsc}, ActionClose, "quiz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, _ := m.HandleKey(tt.key)
			if action != tt.wantAction {
				t.Errorf("action = %q, want %q", action, tt.wantAction)
			}
			if got := m.FocusedID(); got != tt.wantFocus {
				t.Errorf("focus = %q, want %q", got, tt.wantFocus)
			}
		})
	}
}

func TestHandleMouseClicks(t *testing.T) {
	tests := []struct {
		name     string
		backdrop bool
		target   string
		want     string
	}{
		{"card click", false, "quiz", "quiz"},
		{"close glyph", false, ActionClose, ActionClose},
		{"backdrop ignored", false, regionBackdrop, ""},
		{"backdrop closes", true, regionBackdrop, ActionClose},
		{"body ignored", true, regionBody, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModal(WithWidth(70), WithCloseOnBackdropClick(tt.backdrop))
			h := mouse.NewHandler()
			m.Render(100, 40, h)

			var x, y int
			switch tt.target {
			case regionBackdrop:
				x, y = 0, 0
			case regionBody:
				// Top-left corner of the border belongs to no focusable.
				r := regionByID(t, h, regionBody)
				x, y = r.Rect.X, r.Rect.Y
			default:
				r := regionByID(t, h, tt.target)
				x, y = r.Rect.X+r.Rect.W/2, r.Rect.Y+r.Rect.H/2
			}

			if got := m.HandleMouse(click(x, y), h); got != tt.want {
				t.Errorf("HandleMouse = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClickMovesFocus(t *testing.T) {
	m := newTestModal(WithWidth(70))
	h := mouse.NewHandler()
	m.Render(100, 40, h)

	r := regionByID(t, h, "quiz")
	m.HandleMouse(click(r.Rect.X+1, r.Rect.Y+1), h)
	if got := m.FocusedID(); got != "quiz" {
		t.Errorf("focus after click = %q, want quiz", got)
	}
}

func TestHoverTracksRegion(t *testing.T) {
	m := newTestModal(WithWidth(70))
	h := mouse.NewHandler()
	m.Render(100, 40, h)

	r := regionByID(t, h, "study")
	m.HandleMouse(tea.MouseMsg{X: r.Rect.X + 1, Y: r.Rect.Y + 1, Action: tea.MouseActionMotion}, h)
	if m.hoverID != "study" {
		t.Errorf("hoverID = %q, want study", m.hoverID)
	}

	m.HandleMouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion}, h)
	if m.hoverID != "" {
		t.Errorf("hoverID over backdrop = %q, want empty", m.hoverID)
	}
}

func TestButtonsSection(t *testing.T) {
	s := Buttons(Btn(" OK ", "ok"), Btn("Cancel", "cancel"))
	rs := s.Render(40, "cancel", "")

	if len(rs.Focusables) != 2 {
		t.Fatalf("focusables = %d, want 2", len(rs.Focusables))
	}
	first, second := rs.Focusables[0], rs.Focusables[1]
	if second.OffsetX != first.Width+len(buttonGap) {
		t.Errorf("second button offset = %d, want %d", second.OffsetX, first.Width+len(buttonGap))
	}

	if action, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter}, "cancel"); action != "cancel" {
		t.Errorf("enter on cancel = %q", action)
	}
	if action, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter}, "elsewhere"); action != "" {
		t.Errorf("enter with foreign focus = %q, want empty", action)
	}
}

func TestEmptyModalHasNoFocus(t *testing.T) {
	m := New("Empty")
	if got := m.FocusedID(); got != "" {
		t.Errorf("FocusedID = %q, want empty", got)
	}
	if action, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}); action != "" {
		t.Errorf("enter on empty modal = %q", action)
	}
}
