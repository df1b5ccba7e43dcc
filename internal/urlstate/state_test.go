package urlstate

import (
	"net/url"
	"testing"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u
}

func TestRead(t *testing.T) {
	tests := []struct {
		raw     string
		part    string
		hasPart bool
		doc     string
		hasDoc  bool
		empty   bool
	}{
		{"/", "", false, "", false, true},
		{"/?part=p1.json", "p1.json", true, "", false, false},
		{"/?doc=d.json&part=p.json", "p.json", true, "d.json", true, false},
		{"/?doc=", "", false, "", true, false},
		{"/?other=1", "", false, "", false, true},
	}
	for _, tt := range tests {
		s := Read(mustParse(t, tt.raw))
		part, hasPart := s.Part()
		doc, hasDoc := s.Doc()
		if part != tt.part || hasPart != tt.hasPart {
			t.Errorf("%s: Part() = %q,%v want %q,%v", tt.raw, part, hasPart, tt.part, tt.hasPart)
		}
		if doc != tt.doc || hasDoc != tt.hasDoc {
			t.Errorf("%s: Doc() = %q,%v want %q,%v", tt.raw, doc, hasDoc, tt.doc, tt.hasDoc)
		}
		if s.Empty() != tt.empty {
			t.Errorf("%s: Empty() = %v, want %v", tt.raw, s.Empty(), tt.empty)
		}
	}
}

func TestMerge(t *testing.T) {
	base := mustParse(t, "/?part=a.json&doc=x.json&lang=ja")

	got := Merge(base, Set(KeyPart, "b.json"), Clear(KeyDoc))
	q := got.Query()
	if q.Get("part") != "b.json" {
		t.Errorf("part = %q, want b.json", q.Get("part"))
	}
	if q.Has("doc") {
		t.Error("doc should be removed")
	}
	if q.Get("lang") != "ja" {
		t.Error("unrelated keys must be preserved")
	}

	// The input is not modified.
	if base.Query().Get("part") != "a.json" {
		t.Error("Merge must not mutate its input")
	}

	// Unrecognised keys are ignored.
	got = Merge(base, Set("lang", "en"))
	if got.Query().Get("lang") != "ja" {
		t.Error("Merge must not write unrecognised keys")
	}
}

func TestMergeNil(t *testing.T) {
	got := Merge(nil, Set(KeyDoc, "d.json"))
	if got.Path != "/" || got.Query().Get("doc") != "d.json" {
		t.Errorf("unexpected URL %s", got)
	}
}

func TestAddressBar(t *testing.T) {
	b := NewAddressBar(mustParse(t, "/"))

	b.Write(Set(KeyPart, "p1.json"), Clear(KeyDoc))
	b.Write(Set(KeyDoc, "d1.json"))

	s := b.Read()
	if p, _ := s.Part(); p != "p1.json" {
		t.Errorf("part = %q, want p1.json", p)
	}
	if d, _ := s.Doc(); d != "d1.json" {
		t.Errorf("doc = %q, want d1.json", d)
	}

	b.Write(Set(KeyPart, "p2.json"), Clear(KeyDoc))
	s = b.Read()
	if p, _ := s.Part(); p != "p2.json" {
		t.Errorf("part = %q, want p2.json", p)
	}
	if _, ok := s.Doc(); ok {
		t.Error("selecting a new part must clear doc")
	}

	if n := len(b.History()); n != 3 {
		t.Errorf("history entries = %d, want 3", n)
	}

	u := b.URL()
	u.RawQuery = ""
	if b.Read().Empty() {
		t.Error("URL() must return a copy")
	}
}
