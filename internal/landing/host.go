// Package landing holds the per-page interactive state of the landing page:
// whether the main content has been revealed by scrolling, which feature
// cards have scrolled into view, and which learning path overlay is open.
//
// The controllers never talk to a terminal or a browser directly. A host
// supplies a scroll signal and a viewport-intersection primitive through the
// Host interface and drives the controllers from its own event loop. All
// methods are expected to be called from that single loop.
package landing

const (
	// ScrollThreshold is the scroll offset, in pixels, past which the main
	// content is shown.
	ScrollThreshold = 50

	// RevealThreshold is the fraction of a card that must be inside the
	// viewport for it to count as intersecting.
	RevealThreshold = 0.2
)

// Subscription is a registered scroll listener.
type Subscription interface {
	Unsubscribe()
}

// ScrollSource delivers the current vertical scroll offset, in pixels, every
// time the page scrolls.
type ScrollSource interface {
	OnScroll(fn func(offset int)) Subscription
}

// Element is a host-defined reference to a rendered element.
type Element any

// ObservationID identifies a registered intersection observation.
type ObservationID uint64

// Observer is the viewport-intersection primitive. Observe calls fn with
// intersecting=true once at least threshold of el is inside the viewport,
// and with false when it leaves again. Cancel detaches the observation; no
// callback for it may be delivered afterwards.
type Observer interface {
	Observe(el Element, threshold float64, fn func(intersecting bool)) ObservationID
	Cancel(id ObservationID)
}

// Host is everything the page needs from its rendering environment.
type Host interface {
	ScrollSource
	Observer
}

// NopHost is a host that never scrolls and never reports intersections. It
// is used when a page is rendered once, in its initial state.
type NopHost struct{}

type nopSubscription struct{}

func (nopSubscription) Unsubscribe() {}

func (NopHost) OnScroll(func(int)) Subscription { return nopSubscription{} }

func (NopHost) Observe(Element, float64, func(bool)) ObservationID { return 0 }

func (NopHost) Cancel(ObservationID) {}
