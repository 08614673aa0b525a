package landing

// Reveal latches a visible flag per card the first time that card enters
// the viewport. The number of cards is fixed at construction.
type Reveal struct {
	obs       Observer
	threshold float64
	visible   []bool
	handles   []*Handle
	closed    bool
}

// Handle binds one tracked card to the element the host rendered for it.
type Handle struct {
	r      *Reveal
	index  int
	bound  bool
	active bool
	id     ObservationID
}

// NewReveal creates a controller for n cards, all initially hidden.
func NewReveal(obs Observer, n int, threshold float64) *Reveal {
	if n < 0 {
		n = 0
	}
	r := &Reveal{
		obs:       obs,
		threshold: threshold,
		visible:   make([]bool, n),
		handles:   make([]*Handle, n),
	}
	for i := range r.handles {
		r.handles[i] = &Handle{r: r, index: i}
	}
	return r
}

// Len returns the number of tracked cards.
func (r *Reveal) Len() int {
	return len(r.visible)
}

// Handles returns the per-card handles, indexed by card position.
func (r *Reveal) Handles() []*Handle {
	return r.handles
}

// Handle returns the handle for card i, or nil if i is out of range.
func (r *Reveal) Handle(i int) *Handle {
	if i < 0 || i >= len(r.handles) {
		return nil
	}
	return r.handles[i]
}

// Visible returns a copy of the per-card flags.
func (r *Reveal) Visible() []bool {
	out := make([]bool, len(r.visible))
	copy(out, r.visible)
	return out
}

// IsVisible reports whether card i has been revealed.
func (r *Reveal) IsVisible(i int) bool {
	return i >= 0 && i < len(r.visible) && r.visible[i]
}

// Active returns the number of observations still registered.
func (r *Reveal) Active() int {
	n := 0
	for _, h := range r.handles {
		if h.active {
			n++
		}
	}
	return n
}

// Index returns the card position of the handle.
func (h *Handle) Index() int {
	return h.index
}

// Bound reports whether the handle has been bound to an element.
func (h *Handle) Bound() bool {
	return h.bound
}

// Bind attaches the handle to a live element and starts observing it. Only
// the first bind has an effect; a nil element or a closed controller is a
// no-op.
func (h *Handle) Bind(el Element) {
	r := h.r
	if r.closed || h.bound || el == nil {
		return
	}
	h.bound = true
	if r.visible[h.index] {
		return
	}
	h.active = true
	h.id = r.obs.Observe(el, r.threshold, func(intersecting bool) {
		r.handleIntersection(h, intersecting)
	})
}

func (r *Reveal) handleIntersection(h *Handle, intersecting bool) {
	if r.closed || !h.active || !intersecting {
		return
	}
	if !r.visible[h.index] {
		r.visible[h.index] = true
	}
	r.cancel(h)
}

func (r *Reveal) cancel(h *Handle) {
	if !h.active {
		return
	}
	h.active = false
	r.obs.Cancel(h.id)
}

// Close cancels every observation that has not fired yet. Callbacks that
// arrive afterwards are ignored. Safe to call more than once.
func (r *Reveal) Close() {
	if r.closed {
		return
	}
	for _, h := range r.handles {
		r.cancel(h)
	}
	r.closed = true
}
