package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestHTTPFetcher(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/site/data/meta/guides.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"guides":{"parts":[]}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	f, err := NewHTTPFetcher(ts.URL+"/site", 0)
	if err != nil {
		t.Fatalf("NewHTTPFetcher: %v", err)
	}
	ctx := context.Background()

	body, err := f.Fetch(ctx, "data/meta/guides.json")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(body) != `{"guides":{"parts":[]}}` {
		t.Errorf("unexpected body %q", body)
	}

	_, err = f.Fetch(ctx, "data/missing.json")
	var le *LoadError
	if !errors.As(err, &le) || le.Status != http.StatusNotFound {
		t.Errorf("expected 404 LoadError, got %v", err)
	}
}

func TestHTTPFetcherRejectsScheme(t *testing.T) {
	if _, err := NewHTTPFetcher("ftp://example.com", 0); err == nil {
		t.Error("expected error for ftp scheme")
	}
}

func TestHTTPFetcherConfinesPaths(t *testing.T) {
	var foreignHits int
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		foreignHits++
		w.Write([]byte(`{"title":"foreign"}`))
	}))
	defer foreign.Close()

	var contentHits int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentHits++
		w.Write([]byte(`{"title":"outside"}`))
	}))
	defer ts.Close()

	f, err := NewHTTPFetcher(ts.URL+"/content/", 0)
	if err != nil {
		t.Fatalf("NewHTTPFetcher: %v", err)
	}
	l := NewLoader(f)
	ctx := context.Background()

	tests := []string{
		foreign.URL + "/latest/meta-data",
		"//" + foreign.Listener.Addr().String() + "/x.json",
		"../outside.json",
		"data/../../outside.json",
		"data//a.json",
	}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			_, err := l.Load(ctx, path)
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("expected LoadError, got %v", err)
			}
			if l.Cached(path) {
				t.Error("rejected path must not be cached")
			}
		})
	}
	if foreignHits != 0 || contentHits != 0 {
		t.Errorf("rejected paths reached a server: foreign=%d content=%d", foreignHits, contentHits)
	}
}

func TestDirFetcher(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data", "a.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	f := NewDirFetcher(dir)
	ctx := context.Background()

	if _, err := f.Fetch(ctx, "data/a.json"); err != nil {
		t.Errorf("Fetch: %v", err)
	}
	if _, err := f.Fetch(ctx, "/data/a.json"); err != nil {
		t.Errorf("Fetch with leading slash: %v", err)
	}
	if _, err := f.Fetch(ctx, "../etc/passwd"); err == nil {
		t.Error("expected error for path escaping the root")
	}
}

func TestNewFetcher(t *testing.T) {
	if f, err := NewFetcher("https://example.com/guide", 0); err != nil {
		t.Errorf("https source: %v", err)
	} else if _, ok := f.(*HTTPFetcher); !ok {
		t.Errorf("expected *HTTPFetcher, got %T", f)
	}

	if f, err := NewFetcher(t.TempDir(), 0); err != nil {
		t.Errorf("dir source: %v", err)
	} else if _, ok := f.(*DirFetcher); !ok {
		t.Errorf("expected *DirFetcher, got %T", f)
	}

	if _, err := NewFetcher(filepath.Join(t.TempDir(), "nope"), 0); err == nil {
		t.Error("expected error for missing directory")
	}
}
