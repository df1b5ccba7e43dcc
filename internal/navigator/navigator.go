// Package navigator drives the guide's views: it loads content through the
// shared loader, renders it into a view model and keeps the address bar in
// step with what is shown.
package navigator

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ziadkadry99/abx-navigator/internal/content"
	"github.com/ziadkadry99/abx-navigator/internal/i18n"
	"github.com/ziadkadry99/abx-navigator/internal/urlstate"
	"github.com/ziadkadry99/abx-navigator/internal/view"
)

// DefaultManifestPath is the manifest location used when none is configured.
const DefaultManifestPath = "data/meta/guides.json"

var (
	// ErrNoDocument is returned by Back when no document has been loaded.
	ErrNoDocument = errors.New("no document loaded")
	// ErrItemNotFound is returned by ShowItem for indices outside the
	// current document.
	ErrItemNotFound = errors.New("item not found")
)

// Options configures a Navigator.
type Options struct {
	ManifestPath string
	Messages     *i18n.Messages
	Logger       *slog.Logger
}

// Navigator owns one view, its address bar and the current part and
// document. The loader cache behind it is shared; a Navigator itself is
// used from one goroutine at a time.
type Navigator struct {
	loader       *content.Loader
	bar          *urlstate.AddressBar
	msgs         *i18n.Messages
	logger       *slog.Logger
	manifestPath string

	view        *view.View
	manifest    *content.Manifest
	currentPart string
	currentDoc  string
	doc         content.Document
}

// New creates a Navigator with an empty view and no current selection.
func New(loader *content.Loader, bar *urlstate.AddressBar, opts Options) *Navigator {
	if opts.ManifestPath == "" {
		opts.ManifestPath = DefaultManifestPath
	}
	if opts.Messages == nil {
		opts.Messages = i18n.MustNew(i18n.DefaultLocale)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Navigator{
		loader:       loader,
		bar:          bar,
		msgs:         opts.Messages,
		logger:       opts.Logger,
		manifestPath: opts.ManifestPath,
		view:         &view.View{},
	}
}

// View returns the view model.
func (n *Navigator) View() *view.View { return n.view }

// AddressBar returns the address bar.
func (n *Navigator) AddressBar() *urlstate.AddressBar { return n.bar }

// Messages returns the messages used for rendering.
func (n *Navigator) Messages() *i18n.Messages { return n.msgs }

// Manifest returns the loaded manifest, or nil before a successful load.
func (n *Navigator) Manifest() *content.Manifest { return n.manifest }

// CurrentPart returns the path of the last selected part.
func (n *Navigator) CurrentPart() string { return n.currentPart }

// CurrentDoc returns the path of the last loaded document.
func (n *Navigator) CurrentDoc() string { return n.currentDoc }

// Bootstrap builds the initial view from the address bar. The manifest is
// always loaded and the landing view rendered; a "doc" parameter then loads
// that document. A "part" parameter alone does not load the part.
func (n *Navigator) Bootstrap(ctx context.Context) error {
	state := n.bar.Read()

	if err := n.loadGuides(ctx, true); err != nil {
		return err
	}
	if state.Empty() {
		return nil
	}
	if doc, ok := state.Doc(); ok {
		return n.loadDocument(ctx, doc)
	}
	return nil
}

// Restore rebuilds the header and sidebar for the address bar's state
// without touching the content region: the parts of the guide, plus the
// sections of the selected part. The current part and document are seeded
// from the URL.
func (n *Navigator) Restore(ctx context.Context) error {
	state := n.bar.Read()

	if err := n.loadGuides(ctx, false); err != nil {
		return err
	}

	if path, ok := state.Part(); ok {
		n.currentPart = path
		part, err := content.LoadPart(ctx, n.loader, path)
		if err != nil {
			n.logger.Debug("restoring part sections failed", slog.String("part", path), slog.String("error", err.Error()))
		} else {
			n.showSections(path, part)
		}
	}
	if path, ok := state.Doc(); ok {
		n.currentDoc = path
		n.view.SelectSection(path)
	}
	return nil
}

// SelectPart loads the part at path, lists its sections, renders its
// overview and records it in the address bar, clearing any document.
func (n *Navigator) SelectPart(ctx context.Context, path string) error {
	n.currentPart = path

	part, err := content.LoadPart(ctx, n.loader, path)
	if err != nil {
		n.view.Replace(view.Error(n.msgs.PartLoadFailed(path)))
	} else {
		n.showSections(path, part)
		n.view.Replace(view.Part(part))
	}

	n.bar.Write(urlstate.Set(urlstate.KeyPart, path), urlstate.Clear(urlstate.KeyDoc))
	return err
}

// SelectSection opens the section's document. Disabled sections are inert:
// nothing is loaded and the address bar is unchanged.
func (n *Navigator) SelectSection(ctx context.Context, sec content.Section) error {
	if !sec.Navigable() {
		return nil
	}
	return n.SelectDocument(ctx, sec.Path)
}

// SelectDocument loads and renders the document at path and records it in
// the address bar, leaving the part untouched.
func (n *Navigator) SelectDocument(ctx context.Context, path string) error {
	err := n.loadDocument(ctx, path)
	n.bar.Write(urlstate.Set(urlstate.KeyDoc, path))
	return err
}

// Back re-renders the last loaded document.
func (n *Navigator) Back(ctx context.Context) error {
	if n.currentDoc == "" {
		return ErrNoDocument
	}
	return n.loadDocument(ctx, n.currentDoc)
}

// ShowItem renders the detail view of one item of the current document.
func (n *Navigator) ShowItem(ctx context.Context, chapter, section, item int) error {
	if n.doc == nil {
		if n.currentDoc == "" {
			return ErrNoDocument
		}
		doc, err := content.LoadDocument(ctx, n.loader, n.currentDoc)
		if err != nil {
			n.view.Replace(view.Error(n.msgs.DocumentLoadFailed(n.currentDoc)))
			return err
		}
		n.doc = doc
	}

	cd, ok := n.doc.(*content.ChapteredDocument)
	if !ok {
		return ErrItemNotFound
	}
	it, sec, ch, ok := cd.ItemAt(chapter, section, item)
	if !ok {
		return ErrItemNotFound
	}
	n.ShowItemDetail(it, sec.Title, ch.Title)
	return nil
}

// ShowItemDetail renders item with its owning section and chapter titles.
func (n *Navigator) ShowItemDetail(item content.Item, sectionTitle, chapterTitle string) {
	n.view.Replace(view.ItemDetail(n.msgs, item, sectionTitle, chapterTitle))
}

// loadGuides loads the manifest into the header and the top-level
// navigation. A failed load or an empty parts list leaves the navigation
// empty and shows one error message.
func (n *Navigator) loadGuides(ctx context.Context, landing bool) error {
	m, err := content.LoadManifest(ctx, n.loader, n.manifestPath)
	if m != nil {
		n.view.Header = view.Header{
			Title:       m.App.DisplayTitle(),
			Description: m.App.Description,
			Disclaimer:  strings.Join(m.App.Disclaimer, " "),
		}
	} else {
		n.view.Header = view.Header{Title: content.DefaultAppTitle}
	}

	switch {
	case errors.Is(err, content.ErrNoParts):
		n.view.Replace(view.Error(n.msgs.NoParts()))
		return err
	case err != nil:
		n.view.Replace(view.Error(n.msgs.ManifestLoadFailed(n.manifestPath)))
		return err
	}

	n.manifest = m
	entries := make([]view.NavEntry, 0, len(m.Guides.Parts))
	for _, p := range m.Guides.Parts {
		entries = append(entries, view.NavEntry{Title: p.Title, Path: p.Path})
	}
	n.view.SetParts(entries)

	if landing {
		n.view.Replace(view.Landing(n.msgs, m.App))
	}
	return nil
}

func (n *Navigator) showSections(path string, part *content.Part) {
	entries := make([]view.NavEntry, 0, len(part.Sections))
	for _, s := range part.Sections {
		entries = append(entries, view.NavEntry{Title: s.Title, Path: s.Path, Disabled: !s.Navigable()})
	}
	n.view.SetSections(part.Title, entries)
	n.view.SelectPart(path)
}

func (n *Navigator) loadDocument(ctx context.Context, path string) error {
	n.currentDoc = path
	n.doc = nil

	doc, err := content.LoadDocument(ctx, n.loader, path)
	if err != nil {
		n.view.Replace(view.Error(n.msgs.DocumentLoadFailed(path)))
		return err
	}
	n.doc = doc
	n.view.Replace(view.Document(doc))
	n.view.SelectSection(path)
	return nil
}
