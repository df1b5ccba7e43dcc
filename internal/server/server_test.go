package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/ziadkadry99/abx-navigator/internal/content"
	"github.com/ziadkadry99/abx-navigator/internal/i18n"
	"github.com/ziadkadry99/abx-navigator/internal/metrics"
)

func testContent() fstest.MapFS {
	return fstest.MapFS{
		"data/meta/guides.json": {Data: []byte(`{
			"app": {"title": "Navigator", "about": ["about"], "disclaimer": ["careful"]},
			"guides": {"parts": [
				{"title": "Part 1", "path": "data/parts/p1.json"},
				{"title": "Part 2", "path": "data/parts/p2.json"}
			]}
		}`)},
		"data/parts/p1.json": {Data: []byte(`{"title": "Part 1", "summary": "first part",
			"sections": [{"title": "A", "path": "data/docs/a.json"}, {"title": "B"}]}`)},
		"data/parts/p2.json": {Data: []byte(`{"title": "Part 2", "sections": []}`)},
		"data/docs/a.json": {Data: []byte(`{"title": "Doc A", "chapters": [{"title": "Ch", "sections": [
			{"title": "Sec", "items": [{"title": "Flu", "summary": ["line1"], "note": ["<script>alert(1)</script>"]}]}]}]}`)},
	}
}

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := metrics.NewPrometheusRecorder(nil)
	loader := content.NewLoader(content.NewFSFetcher(testContent()), content.WithRecorder(rec))
	return New(cfg, loader, i18n.MustNew("en"), logger, rec.Handler())
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0})

	w := get(t, srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0, AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestIndexLanding(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"<h2>About</h2>", "Part 1", "Part 2", `href="/nav/part/data/parts/p1.json"`} {
		if !strings.Contains(body, want) {
			t.Errorf("landing page missing %q", want)
		}
	}
	if strings.Contains(body, "history.replaceState") {
		t.Error("bootstrap pages must not rewrite the address")
	}
}

func TestIndexDeepLink(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/?doc=data/docs/a.json")
	body := w.Body.String()
	if !strings.Contains(body, "<h1>Doc A</h1>") {
		t.Errorf("deep link should render the document:\n%s", body)
	}
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Error("content must be escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Error("escaped note text missing")
	}
}

func locationOf(t *testing.T, body string) url.Values {
	t.Helper()
	const marker = `history.replaceState(null, "", "`
	i := strings.Index(body, marker)
	if i < 0 {
		t.Fatalf("no replaceState in page:\n%s", body)
	}
	rest := body[i+len(marker):]
	raw := rest[:strings.Index(rest, `"`)]
	raw = strings.ReplaceAll(raw, `\u0026`, "&")
	raw = strings.ReplaceAll(raw, `\/`, "/")
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse location %q: %v", raw, err)
	}
	return u.Query()
}

func TestPartThenDocumentFlow(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/nav/part/data/parts/p1.json")
	body := w.Body.String()
	if !strings.Contains(body, "<h1>Part 1</h1>") || !strings.Contains(body, "first part") {
		t.Errorf("part overview missing:\n%s", body)
	}
	if !strings.Contains(body, `class="nav-section disabled">B</li>`) {
		t.Error("section B should be rendered disabled")
	}
	q := locationOf(t, body)
	if q.Get("part") != "data/parts/p1.json" || q.Has("doc") {
		t.Errorf("location after part = %v", q)
	}

	w = get(t, srv, "/nav/doc/data/docs/a.json?part=data%2Fparts%2Fp1.json")
	body = w.Body.String()
	if !strings.Contains(body, "<h1>Doc A</h1>") {
		t.Errorf("document missing:\n%s", body)
	}
	if !strings.Contains(body, "<h3>Part 1</h3>") {
		t.Error("sidebar should keep the part's sections")
	}
	q = locationOf(t, body)
	if q.Get("part") != "data/parts/p1.json" || q.Get("doc") != "data/docs/a.json" {
		t.Errorf("location after doc = %v", q)
	}

	w = get(t, srv, "/nav/part/data/parts/p2.json?part=data%2Fparts%2Fp1.json&doc=data%2Fdocs%2Fa.json")
	q = locationOf(t, w.Body.String())
	if q.Get("part") != "data/parts/p2.json" || q.Has("doc") {
		t.Errorf("location after new part = %v", q)
	}
}

func TestDocumentFailure(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/nav/doc/data/docs/missing.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Could not load the document: data/docs/missing.json") {
		t.Errorf("error message missing:\n%s", w.Body.String())
	}
}

func TestItemAndBack(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/nav/item/0/0/0?doc=data%2Fdocs%2Fa.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<h1>Flu</h1>") || !strings.Contains(body, "Ch ＞ Sec") {
		t.Errorf("item detail missing:\n%s", body)
	}
	if !strings.Contains(body, `href="/nav/back?doc=data%2Fdocs%2Fa.json"`) {
		t.Errorf("back link missing:\n%s", body)
	}

	w = get(t, srv, "/nav/item/0/0/9?doc=data%2Fdocs%2Fa.json")
	if w.Code != http.StatusNotFound {
		t.Errorf("out of range item: expected 404, got %d", w.Code)
	}
	w = get(t, srv, "/nav/item/x/0/0?doc=data%2Fdocs%2Fa.json")
	if w.Code != http.StatusNotFound {
		t.Errorf("malformed item: expected 404, got %d", w.Code)
	}

	w = get(t, srv, "/nav/back?doc=data%2Fdocs%2Fa.json")
	if !strings.Contains(w.Body.String(), "<h1>Doc A</h1>") {
		t.Error("back should re-render the document")
	}

	w = get(t, srv, "/nav/back")
	if w.Code != http.StatusSeeOther {
		t.Errorf("back without document: expected 303, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, Config{})
	get(t, srv, "/")
	get(t, srv, "/")

	w := get(t, srv, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "abxnav_content_cache_hits_total 1") {
		t.Errorf("expected one cache hit:\n%s", w.Body.String())
	}
}

func TestEscapePath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"data/parts/p1.json", "data/parts/p1.json"},
		{"/data/a b.json", "%2Fdata/a%20b.json"},
		{"data/抗菌薬.json", "data/%E6%8A%97%E8%8F%8C%E8%96%AC.json"},
	}
	for _, tt := range tests {
		if got := escapePath(tt.in); got != tt.want {
			t.Errorf("escapePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLeadingSlashPaths(t *testing.T) {
	fsys := fstest.MapFS{
		"data/meta/guides.json": {Data: []byte(`{"guides": {"parts": [{"title": "Part 1", "path": "/data/parts/p1.json"}]}}`)},
		"data/parts/p1.json":    {Data: []byte(`{"title": "Part 1", "sections": [{"title": "A", "path": "/data/docs/a.json"}]}`)},
		"data/docs/a.json":      {Data: []byte(`{"title": "Doc A"}`)},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(Config{}, content.NewLoader(content.NewFSFetcher(fsys)), i18n.MustNew("en"), logger, nil)

	w := get(t, srv, "/")
	if !strings.Contains(w.Body.String(), `href="/nav/part/%2Fdata/parts/p1.json"`) {
		t.Fatalf("part link should keep the leading slash:\n%s", w.Body.String())
	}

	w = get(t, srv, "/nav/part/%2Fdata/parts/p1.json")
	body := w.Body.String()
	if q := locationOf(t, body); q.Get("part") != "/data/parts/p1.json" {
		t.Errorf("location part = %q, want %q", q.Get("part"), "/data/parts/p1.json")
	}
	if !strings.Contains(body, `class="nav-part selected"`) {
		t.Errorf("part entry should be selected:\n%s", body)
	}
	if !strings.Contains(body, `href="/nav/doc/%2Fdata/docs/a.json?part=%2Fdata%2Fparts%2Fp1.json"`) {
		t.Errorf("document link should keep the leading slash:\n%s", body)
	}

	w = get(t, srv, "/nav/doc/%2Fdata/docs/a.json?part=%2Fdata%2Fparts%2Fp1.json")
	body = w.Body.String()
	if q := locationOf(t, body); q.Get("doc") != "/data/docs/a.json" || q.Get("part") != "/data/parts/p1.json" {
		t.Errorf("location after doc = %v", q)
	}
	if !strings.Contains(body, `class="nav-section selected"`) {
		t.Errorf("section entry should be selected:\n%s", body)
	}
}

func TestDeepLinkStaysOnContentSource(t *testing.T) {
	var foreignHits atomic.Int32
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		foreignHits.Add(1)
		w.Write([]byte(`{"title": "INTERNAL-SECRET"}`))
	}))
	defer foreign.Close()

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/content/data/meta/guides.json":
			w.Write([]byte(`{"guides": {"parts": [{"title": "Part 1", "path": "data/parts/p1.json"}]}}`))
		case "/outside.json":
			w.Write([]byte(`{"title": "OUTSIDE-CONTENT-ROOT"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer origin.Close()

	fetcher, err := content.NewHTTPFetcher(origin.URL+"/content/", 0)
	if err != nil {
		t.Fatalf("NewHTTPFetcher: %v", err)
	}
	loader := content.NewLoader(fetcher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(Config{}, loader, i18n.MustNew("en"), logger, nil)

	for _, doc := range []string{foreign.URL + "/latest/meta-data", "../outside.json"} {
		w := get(t, srv, "/?doc="+url.QueryEscape(doc))
		body := w.Body.String()
		if strings.Contains(body, "INTERNAL-SECRET") || strings.Contains(body, "OUTSIDE-CONTENT-ROOT") {
			t.Errorf("doc=%s rendered content from outside the source:\n%s", doc, body)
		}
		if !strings.Contains(body, "Could not load the document") {
			t.Errorf("doc=%s should render the load error:\n%s", doc, body)
		}
		if loader.Cached(doc) {
			t.Errorf("doc=%s must not be cached", doc)
		}
	}
	if n := foreignHits.Load(); n != 0 {
		t.Errorf("foreign host was contacted %d times", n)
	}
}
