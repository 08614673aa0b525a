package serve

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/marcus/codenest/internal/content"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	c, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	return NewServer(c, ServeConfig{Addr: "127.0.0.1"})
}

func get(t *testing.T, ts *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestLandingPage(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	status, body := get(t, ts, "/")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"Code Nest",
		"Why Choose Code Nest?",
		"Learning Paths",
		"Stacks &amp; Queues",
		`data-shown="false"`,
		`data-scroll-threshold="50"`,
		`data-reveal-threshold="0.2"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}

	if strings.Contains(body, `role="dialog"`) {
		t.Error("overlay rendered without a selection")
	}
}

func TestLandingPageContentType(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestLandingPageOverlay(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	tests := []struct {
		name     string
		query    string
		open     bool
		contains []string
	}{
		{
			name:  "known path opens overlay",
			query: "Trees",
			open:  true,
			contains: []string{
				"Dive deep into trees concepts with interactive lessons and visualizations.",
				"Test your knowledge of trees with interactive quizzes and challenges.",
				`data-panel="Study"`,
				`data-panel="Quiz"`,
			},
		},
		{
			name:     "title with ampersand",
			query:    "Stacks & Queues",
			open:     true,
			contains: []string{"Dive deep into stacks &amp; queues concepts"},
		},
		{name: "unknown path stays closed", query: "Graphs"},
		{name: "case mismatch stays closed", query: "trees"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, body := get(t, ts, "/?path="+url.QueryEscape(tt.query))
			if got := strings.Contains(body, `role="dialog"`); got != tt.open {
				t.Errorf("overlay rendered = %v, want %v", got, tt.open)
			}
			if !tt.open && strings.Contains(body, "Take Quiz") {
				t.Error("closed overlay leaked panel content")
			}
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("page missing %q", want)
				}
			}
		})
	}
}

func TestLandingPageRestoresShownContent(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	tests := []struct {
		name   string
		query  string
		shown  bool
		dialog bool
	}{
		{name: "fresh page", query: "", shown: false},
		{name: "close link", query: "?shown=1", shown: true},
		{name: "explore link", query: "?path=Trees&shown=1", shown: true, dialog: true},
		{name: "path alone", query: "?path=Trees", shown: false, dialog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, body := get(t, ts, "/"+tt.query)
			want := `data-shown="false"`
			if tt.shown {
				want = `data-shown="true"`
			}
			if !strings.Contains(body, want) {
				t.Errorf("page missing %q", want)
			}
			if got := strings.Contains(body, `role="dialog"`); got != tt.dialog {
				t.Errorf("overlay rendered = %v, want %v", got, tt.dialog)
			}
		})
	}
}

func TestRequestHostReplaysScroll(t *testing.T) {
	host := &requestHost{}
	var got []int
	sub := host.OnScroll(func(offset int) { got = append(got, offset) })

	host.scrollTo(51)
	sub.Unsubscribe()
	host.scrollTo(80)

	if len(got) != 1 || got[0] != 51 {
		t.Errorf("offsets = %v, want [51]", got)
	}
}

func TestListenUsesConfig(t *testing.T) {
	ln, err := newTestServer(t).Listen()
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	addr := ln.Addr().(*net.TCPAddr)
	if !addr.IP.IsLoopback() || addr.Port == 0 {
		t.Errorf("listener addr = %v, want loopback with assigned port", addr)
	}
}

func TestOnlyRootRoute(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	for _, path := range []string{"/health", "/static/app.js", "/paths"} {
		if status, _ := get(t, ts, path); status != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, status)
		}
	}

	resp, err := http.Post(ts.URL+"/", "text/plain", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST / status = %d, want 405", resp.StatusCode)
	}
}

func TestHeadRoot(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	resp, err := http.Head(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("HEAD / status = %d, want 200", resp.StatusCode)
	}
}

func TestRequestIDHeaderPassedThrough(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/", nil)
	req.Header.Set("X-Request-Id", "req-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := recoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestLoggingMiddlewareKeepsStatus(t *testing.T) {
	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t)
	ln, err := srv.Listen()
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	pageURL := "http://" + ln.Addr().String() + "/"
	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get(pageURL)
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET %s: %v", pageURL, err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestShutdownBeforeStart(t *testing.T) {
	if err := newTestServer(t).Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() = %v, want nil", err)
	}
}
