package content

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"
)

func TestCheck(t *testing.T) {
	fsys := fstest.MapFS{
		"data/meta/guides.json": {Data: []byte(`{"guides": {"parts": [
			{"title": "P1", "path": "data/parts/p1.json"},
			{"title": "Broken", "path": "data/parts/missing.json"},
			{"title": "No path"}
		]}}`)},
		"data/parts/p1.json": {Data: []byte(`{"title": "P1", "sections": [
			{"title": "A", "path": "data/docs/a.json"},
			{"title": "A twice", "path": "data/docs/a.json"},
			{"title": "Bad", "path": "data/docs/bad.json"},
			{"title": "Untitled", "path": "data/docs/untitled.json"},
			{"title": "Disabled"}
		]}`)},
		"data/docs/a.json": {Data: []byte(`{"title": "A", "chapters": [{"title": "C", "sections": [
			{"title": "S", "items": [{"title": "i1"}, {"title": "i2"}]}]}]}`)},
		"data/docs/bad.json":      {Data: []byte(`{not json`)},
		"data/docs/untitled.json": {Data: []byte(`{"summary": "no title"}`)},
	}
	l := NewLoader(NewFSFetcher(fsys))

	r, err := Check(context.Background(), l, "data/meta/guides.json")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if r.OK() {
		t.Fatal("expected problems")
	}
	if r.Parts != 1 || r.Documents != 2 || r.Items != 2 {
		t.Errorf("counts = %d parts, %d documents, %d items", r.Parts, r.Documents, r.Items)
	}

	var paths []string
	for _, p := range r.Problems {
		paths = append(paths, p.Path)
	}
	want := "data/docs/bad.json,data/docs/untitled.json,data/parts/missing.json,data/meta/guides.json"
	if got := strings.Join(paths, ","); got != want {
		t.Errorf("problem paths = %s, want %s", got, want)
	}
}

func TestCheckEmptyManifest(t *testing.T) {
	fsys := fstest.MapFS{"m.json": {Data: []byte(`{"guides": {"parts": []}}`)}}
	r, err := Check(context.Background(), NewLoader(NewFSFetcher(fsys)), "m.json")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(r.Problems) != 1 || !strings.Contains(r.Problems[0].String(), "guides.parts is empty") {
		t.Errorf("problems = %v", r.Problems)
	}
}
