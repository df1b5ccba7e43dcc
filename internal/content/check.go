package content

import (
	"context"
	"errors"
	"fmt"
)

// Problem is one defect found while checking a content tree.
type Problem struct {
	Path    string
	Message string
}

func (p Problem) String() string { return fmt.Sprintf("%s: %s", p.Path, p.Message) }

// Report summarises a content tree check.
type Report struct {
	Parts     int
	Documents int
	Items     int
	Problems  []Problem
}

// OK reports whether the check found no problems.
func (r *Report) OK() bool { return len(r.Problems) == 0 }

func (r *Report) add(path, format string, args ...any) {
	r.Problems = append(r.Problems, Problem{Path: path, Message: fmt.Sprintf(format, args...)})
}

// Check loads the manifest and every part and document it reaches, in
// manifest order, and reports everything the navigator could not display.
// Only a cancelled context aborts the walk.
func Check(ctx context.Context, l *Loader, manifestPath string) (*Report, error) {
	r := &Report{}

	m, err := LoadManifest(ctx, l, manifestPath)
	if err != nil {
		if ctx.Err() != nil {
			return r, ctx.Err()
		}
		if errors.Is(err, ErrNoParts) {
			r.add(manifestPath, "guides.parts is empty")
		} else {
			r.add(manifestPath, "%v", err)
		}
		return r, nil
	}

	seen := make(map[string]bool)
	for i, ref := range m.Guides.Parts {
		if ref.Path == "" {
			r.add(manifestPath, "part %d (%q) has no path", i, ref.Title)
			continue
		}
		if ref.Title == "" {
			r.add(manifestPath, "part %d (%s) has no title", i, ref.Path)
		}
		part, err := LoadPart(ctx, l, ref.Path)
		if err != nil {
			if ctx.Err() != nil {
				return r, ctx.Err()
			}
			r.add(ref.Path, "%v", err)
			continue
		}
		r.Parts++

		for _, sec := range part.Sections {
			if !sec.Navigable() || seen[sec.Path] {
				continue
			}
			seen[sec.Path] = true
			doc, err := LoadDocument(ctx, l, sec.Path)
			if err != nil {
				if ctx.Err() != nil {
					return r, ctx.Err()
				}
				r.add(sec.Path, "%v", err)
				continue
			}
			r.Documents++
			if doc.DocumentTitle() == "" {
				r.add(sec.Path, "document has no title")
			}
			if cd, ok := doc.(*ChapteredDocument); ok {
				for _, ch := range cd.Chapters {
					for _, cs := range ch.Sections {
						r.Items += len(cs.Items)
					}
				}
			}
		}
	}
	return r, nil
}
