package landing

// Visibility tracks whether the main content block should render. It flips
// to shown the first time the page is scrolled past its threshold and never
// flips back.
type Visibility struct {
	threshold int
	shown     bool
	sub       Subscription
}

// NewVisibility subscribes to src and returns a controller in the hidden
// state.
func NewVisibility(src ScrollSource, threshold int) *Visibility {
	v := &Visibility{threshold: threshold}
	v.sub = src.OnScroll(v.handleScroll)
	return v
}

// Shown reports whether the content block has been revealed.
func (v *Visibility) Shown() bool {
	return v.shown
}

func (v *Visibility) handleScroll(offset int) {
	if v.shown || offset <= v.threshold {
		return
	}
	v.shown = true
	// Nothing left to wait for.
	v.release()
}

// Close detaches the scroll listener. Safe to call more than once.
func (v *Visibility) Close() {
	v.release()
}

func (v *Visibility) release() {
	if v.sub == nil {
		return
	}
	v.sub.Unsubscribe()
	v.sub = nil
}
