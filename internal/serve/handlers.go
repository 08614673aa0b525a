package serve

import (
	"log/slog"
	"net/http"

	"github.com/marcus/codenest/internal/components"
	"github.com/marcus/codenest/internal/landing"
)

// requestHost serves a single render. It never reports intersections, but
// it can replay a scroll the visitor already made on the previous page.
type requestHost struct {
	landing.NopHost
	listeners []func(int)
}

type requestSubscription struct {
	host *requestHost
	i    int
}

func (s requestSubscription) Unsubscribe() { s.host.listeners[s.i] = nil }

func (h *requestHost) OnScroll(fn func(int)) landing.Subscription {
	h.listeners = append(h.listeners, fn)
	return requestSubscription{host: h, i: len(h.listeners) - 1}
}

func (h *requestHost) scrollTo(offset int) {
	for _, fn := range h.listeners {
		if fn != nil {
			fn(offset)
		}
	}
}

// handlePage renders a fresh page. ?shown= restores the revealed content
// and ?path= opens the overlay for that learning path; unknown titles
// render closed.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	host := &requestHost{}
	page := landing.NewPage(host, s.catalog)
	defer page.Close()

	q := r.URL.Query()
	if q.Get(components.ShownQueryParam) != "" {
		host.scrollTo(landing.ScrollThreshold + 1)
	}
	if title := q.Get(components.PathQueryParam); title != "" {
		if !page.Modal.SelectEntry(title) {
			slog.Debug("unknown learning path", "title", title)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := components.LandingPage(s.catalog, page.State()).Render(w); err != nil {
		slog.Error("render page", "err", err)
	}
}
