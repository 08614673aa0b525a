package landing

// fakeHost records listeners and lets tests fire events by hand.
type fakeHost struct {
	scrolls      map[int]func(int)
	nextScroll   int
	unsubscribed int

	observations map[ObservationID]*fakeObservation
	nextObs      ObservationID
	cancelled    []ObservationID
}

type fakeObservation struct {
	el        Element
	threshold float64
	fn        func(bool)
}

type fakeSubscription struct {
	h  *fakeHost
	id int
}

func (s fakeSubscription) Unsubscribe() {
	if _, ok := s.h.scrolls[s.id]; ok {
		delete(s.h.scrolls, s.id)
		s.h.unsubscribed++
	}
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		scrolls:      make(map[int]func(int)),
		observations: make(map[ObservationID]*fakeObservation),
	}
}

func (h *fakeHost) OnScroll(fn func(int)) Subscription {
	h.nextScroll++
	h.scrolls[h.nextScroll] = fn
	return fakeSubscription{h: h, id: h.nextScroll}
}

func (h *fakeHost) Observe(el Element, threshold float64, fn func(bool)) ObservationID {
	h.nextObs++
	h.observations[h.nextObs] = &fakeObservation{el: el, threshold: threshold, fn: fn}
	return h.nextObs
}

func (h *fakeHost) Cancel(id ObservationID) {
	if _, ok := h.observations[id]; ok {
		delete(h.observations, id)
		h.cancelled = append(h.cancelled, id)
	}
}

// scroll delivers offset to every live scroll listener.
func (h *fakeHost) scroll(offset int) {
	fns := make([]func(int), 0, len(h.scrolls))
	for _, fn := range h.scrolls {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn(offset)
	}
}

// intersect delivers an intersection change for el to its live observation.
// It returns false when nothing is observing el.
func (h *fakeHost) intersect(el Element, intersecting bool) bool {
	for _, o := range h.observations {
		if o.el == el {
			o.fn(intersecting)
			return true
		}
	}
	return false
}

// observationFor returns the live observation for el, if any.
func (h *fakeHost) observationFor(el Element) *fakeObservation {
	for _, o := range h.observations {
		if o.el == el {
			return o
		}
	}
	return nil
}
