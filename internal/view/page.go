package view

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

// Links builds the hrefs of the page's navigation affordances.
type Links interface {
	Part(path string) string
	Document(path string) string
	Back() string
}

// PageOptions carries per-page rendering settings.
type PageOptions struct {
	Lang string
	// Location, when set, is written to the browser's address bar with
	// history.replaceState once the page loads.
	Location string
	Links    Links
}

type navLink struct {
	Title    string
	Href     string
	Disabled bool
	Selected bool
}

type blockData struct {
	Block
	BackHref string
}

func (b blockData) IsHeading() bool   { return b.Kind == KindHeading }
func (b blockData) IsParagraph() bool { return b.Kind == KindParagraph }
func (b blockData) IsSummary() bool   { return b.Kind == KindSummary }
func (b blockData) IsNote() bool      { return b.Kind == KindNote }
func (b blockData) IsError() bool     { return b.Kind == KindError }
func (b blockData) IsMeta() bool      { return b.Kind == KindMeta }
func (b blockData) IsBack() bool      { return b.Kind == KindBack }

type pageData struct {
	Lang         string
	Location     string
	Header       Header
	Parts        []navLink
	PartTitle    string
	Sections     []navLink
	SectionsOpen bool
	Content      []blockData
	CSS          template.CSS
}

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// Page writes v as a complete HTML document. Every string taken from the
// view is escaped by html/template.
func Page(w io.Writer, v *View, opts PageOptions) error {
	data := pageData{
		Lang:         opts.Lang,
		Location:     opts.Location,
		Header:       v.Header,
		PartTitle:    v.Nav.PartTitle,
		SectionsOpen: v.Nav.SectionsOpen,
		CSS:          template.CSS(pageCSS),
	}
	for _, p := range v.Nav.Parts {
		data.Parts = append(data.Parts, navLink{Title: p.Title, Href: opts.Links.Part(p.Path), Selected: p.Selected})
	}
	for _, s := range v.Nav.Sections {
		link := navLink{Title: s.Title, Disabled: s.Disabled, Selected: s.Selected}
		if !s.Disabled {
			link.Href = opts.Links.Document(s.Path)
		}
		data.Sections = append(data.Sections, link)
	}
	for _, b := range v.Content {
		bd := blockData{Block: b}
		if b.Kind == KindBack {
			bd.BackHref = opts.Links.Back()
		}
		data.Content = append(data.Content, bd)
	}

	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// Text renders blocks as plain text, one block per line, with headings
// prefixed by markdown-style hashes.
func Text(blocks []Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		switch blk.Kind {
		case KindHeading:
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(strings.Repeat("#", blk.Level))
			b.WriteString(" ")
			b.WriteString(blk.Text)
		case KindNote:
			b.WriteString("Note: ")
			b.WriteString(blk.Text)
		case KindError:
			b.WriteString("Error: ")
			b.WriteString(blk.Text)
		case KindBack:
			continue
		default:
			b.WriteString(blk.Text)
		}
		b.WriteString("\n")
	}
	return b.String()
}
