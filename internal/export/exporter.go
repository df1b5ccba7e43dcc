// Package export writes the guide as a static site: an index page, one
// page per part and one page per document, linked with relative hrefs.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/abx-navigator/internal/content"
	"github.com/ziadkadry99/abx-navigator/internal/i18n"
	"github.com/ziadkadry99/abx-navigator/internal/navigator"
	"github.com/ziadkadry99/abx-navigator/internal/progress"
	"github.com/ziadkadry99/abx-navigator/internal/urlstate"
	"github.com/ziadkadry99/abx-navigator/internal/view"
)

// Options configures an Exporter.
type Options struct {
	OutputDir    string
	ManifestPath string
	Filter       Filter
	Messages     *i18n.Messages
	Reporter     progress.Reporter
	Logger       *slog.Logger
}

// Exporter renders every reachable page of the guide to disk.
type Exporter struct {
	loader *content.Loader
	opts   Options
}

// Result summarises an export run.
type Result struct {
	Pages []string
	// Failed lists resources whose load failed; their pages carry the
	// error message in place of content.
	Failed []string
}

type page struct {
	file     string
	query    url.Values
	part     string
	document string
}

// New creates an Exporter reading through loader.
func New(loader *content.Loader, opts Options) *Exporter {
	if opts.ManifestPath == "" {
		opts.ManifestPath = navigator.DefaultManifestPath
	}
	if opts.Messages == nil {
		opts.Messages = i18n.MustNew(i18n.DefaultLocale)
	}
	if opts.Reporter == nil {
		opts.Reporter = progress.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Exporter{loader: loader, opts: opts}
}

// Export writes the site. A manifest failure still produces index.html
// showing the error, and is returned.
func (e *Exporter) Export(ctx context.Context) (*Result, error) {
	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	res := &Result{}
	index := e.navigator(nil)
	bootErr := index.Bootstrap(ctx)
	if err := e.write(res, "index.html", index); err != nil {
		return res, err
	}
	if bootErr != nil {
		return res, fmt.Errorf("loading manifest: %w", bootErr)
	}

	pages := e.plan(ctx, index.Manifest(), res)
	e.opts.Reporter.Start(len(pages))
	defer e.opts.Reporter.Finish()

	for i, p := range pages {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		nav := e.navigator(p.query)
		if err := nav.Restore(ctx); err != nil {
			return res, fmt.Errorf("restoring %s: %w", p.file, err)
		}

		var err error
		if p.document != "" {
			err = nav.SelectDocument(ctx, p.document)
		} else {
			err = nav.SelectPart(ctx, p.part)
		}
		if err != nil {
			failed := p.part
			if p.document != "" {
				failed = p.document
			}
			e.opts.Logger.Warn("export: resource failed", slog.String("resource", failed), slog.String("error", err.Error()))
			res.Failed = append(res.Failed, failed)
		}

		if err := e.write(res, p.file, nav); err != nil {
			return res, err
		}
		e.opts.Reporter.Update(i+1, p.file)
	}
	return res, nil
}

// plan lists the part and document pages to write. A document referenced
// by several parts is written once, under the first part.
func (e *Exporter) plan(ctx context.Context, m *content.Manifest, res *Result) []page {
	var pages []page
	seen := make(map[string]bool)
	for _, ref := range m.Guides.Parts {
		if ref.Path == "" || !e.opts.Filter.Allows(ref.Path) || seen[ref.Path] {
			continue
		}
		seen[ref.Path] = true
		pages = append(pages, page{file: PagePath(ref.Path), part: ref.Path})

		part, err := content.LoadPart(ctx, e.loader, ref.Path)
		if err != nil {
			// The part page itself records the failure.
			continue
		}
		for _, sec := range part.Sections {
			if !sec.Navigable() || !e.opts.Filter.Allows(sec.Path) || seen[sec.Path] {
				continue
			}
			seen[sec.Path] = true
			pages = append(pages, page{
				file:     PagePath(sec.Path),
				query:    url.Values{urlstate.KeyPart: {ref.Path}},
				part:     ref.Path,
				document: sec.Path,
			})
		}
	}
	return pages
}

func (e *Exporter) navigator(q url.Values) *navigator.Navigator {
	u := &url.URL{Path: "/", RawQuery: q.Encode()}
	return navigator.New(e.loader, urlstate.NewAddressBar(u), navigator.Options{
		ManifestPath: e.opts.ManifestPath,
		Messages:     e.opts.Messages,
		Logger:       e.opts.Logger,
	})
}

func (e *Exporter) write(res *Result, file string, nav *navigator.Navigator) error {
	var buf bytes.Buffer
	err := view.Page(&buf, nav.View(), view.PageOptions{
		Lang:  nav.Messages().Lang(),
		Links: linksFor(file, e.opts.Filter),
	})
	if err != nil {
		return fmt.Errorf("rendering %s: %w", file, err)
	}

	dest := filepath.Join(e.opts.OutputDir, filepath.FromSlash(file))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	res.Pages = append(res.Pages, file)
	return nil
}
