package pageview

import (
	"slices"

	"github.com/marcus/codenest/internal/landing"
)

// cardElement identifies a feature card in the rendered document.
type cardElement int

// span is a vertical range of document rows.
type span struct {
	Top    int
	Height int
}

// visibleFraction returns how much of s lies inside the rows
// [viewTop, viewTop+viewHeight).
func (s span) visibleFraction(viewTop, viewHeight int) float64 {
	if s.Height <= 0 {
		return 0
	}
	overlap := min(s.Top+s.Height, viewTop+viewHeight) - max(s.Top, viewTop)
	if overlap <= 0 {
		return 0
	}
	return float64(overlap) / float64(s.Height)
}

type observation struct {
	el           landing.Element
	threshold    float64
	fn           func(bool)
	intersecting bool
}

// terminalHost implements landing.Host on top of a scrolling viewport.
// Scroll offsets are reported in pixels, one row counting as rowPixels.
// All callbacks run synchronously from scrolled and observe, which the model
// calls from Update.
type terminalHost struct {
	rowPixels int

	nextSub int
	subs    map[int]func(int)

	nextObs      landing.ObservationID
	observations map[landing.ObservationID]*observation
}

func newTerminalHost(rowPixels int) *terminalHost {
	if rowPixels <= 0 {
		rowPixels = 1
	}
	return &terminalHost{
		rowPixels:    rowPixels,
		subs:         make(map[int]func(int)),
		observations: make(map[landing.ObservationID]*observation),
	}
}

type hostSubscription struct {
	h  *terminalHost
	id int
}

func (s hostSubscription) Unsubscribe() {
	delete(s.h.subs, s.id)
}

func (h *terminalHost) OnScroll(fn func(offset int)) landing.Subscription {
	h.nextSub++
	h.subs[h.nextSub] = fn
	return hostSubscription{h: h, id: h.nextSub}
}

func (h *terminalHost) Observe(el landing.Element, threshold float64, fn func(bool)) landing.ObservationID {
	h.nextObs++
	h.observations[h.nextObs] = &observation{el: el, threshold: threshold, fn: fn}
	return h.nextObs
}

func (h *terminalHost) Cancel(id landing.ObservationID) {
	delete(h.observations, id)
}

// subscribers returns the number of live scroll subscriptions.
func (h *terminalHost) subscribers() int {
	return len(h.subs)
}

// observing returns the number of live observations.
func (h *terminalHost) observing() int {
	return len(h.observations)
}

// scrolled notifies scroll subscribers of a new viewport offset in rows.
func (h *terminalHost) scrolled(rows int) {
	offset := rows * h.rowPixels
	ids := make([]int, 0, len(h.subs))
	for id := range h.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := h.subs[id]; ok {
			fn(offset)
		}
	}
}

// observe re-evaluates every observation against the viewport rows
// [viewTop, viewTop+viewHeight). bounds resolves an element to its rows.
// Callbacks fire only when an element crosses its threshold.
func (h *terminalHost) observe(viewTop, viewHeight int, bounds func(landing.Element) (span, bool)) {
	ids := make([]landing.ObservationID, 0, len(h.observations))
	for id := range h.observations {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		// An earlier callback may have cancelled this one.
		o, ok := h.observations[id]
		if !ok {
			continue
		}
		s, ok := bounds(o.el)
		if !ok {
			continue
		}
		in := s.visibleFraction(viewTop, viewHeight) >= o.threshold
		if in == o.intersecting {
			continue
		}
		o.intersecting = in
		o.fn(in)
	}
}
