// Package view holds the navigator's view model and the renderers that turn
// loaded content into it. A View is rendered to HTML by Page and to plain
// text by Text.
package view

// Kind identifies the type of a content block.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindSummary
	KindNote
	KindError
	KindMeta
	KindBack
)

// Block is one element of the content region. Text is always plain text;
// it is escaped when rendered.
type Block struct {
	Kind  Kind
	Level int // heading level, 1-4
	Text  string
	Muted bool // secondary styling for paragraphs
}

// Heading returns a heading block.
func Heading(level int, text string) Block { return Block{Kind: KindHeading, Level: level, Text: text} }

// Paragraph returns a paragraph block.
func Paragraph(text string) Block { return Block{Kind: KindParagraph, Text: text} }

// MutedParagraph returns a paragraph block with secondary styling.
func MutedParagraph(text string) Block { return Block{Kind: KindParagraph, Text: text, Muted: true} }

// Header is the page banner.
type Header struct {
	Title       string
	Description string
	Disclaimer  string
}

// NavEntry is one sidebar entry. Disabled entries are shown but inert.
type NavEntry struct {
	Title    string
	Path     string
	Disabled bool
	Selected bool
}

// Nav is the sidebar: the parts of the guide and, once a part is loaded,
// its sections.
type Nav struct {
	Parts        []NavEntry
	PartTitle    string
	Sections     []NavEntry
	PartsLoaded  bool
	SectionsOpen bool
}

// View is everything a page shows.
type View struct {
	Header  Header
	Nav     Nav
	Content []Block
}

// Replace swaps the content region for blocks. Prior content is discarded.
func (v *View) Replace(blocks []Block) {
	v.Content = append([]Block(nil), blocks...)
}

// Clear empties the content region.
func (v *View) Clear() { v.Content = nil }

// SetParts replaces the top-level navigation, in the given order.
func (v *View) SetParts(entries []NavEntry) {
	v.Nav.Parts = entries
	v.Nav.PartsLoaded = true
}

// SetSections replaces the second-level navigation.
func (v *View) SetSections(partTitle string, entries []NavEntry) {
	v.Nav.PartTitle = partTitle
	v.Nav.Sections = entries
	v.Nav.SectionsOpen = true
}

// SelectPart marks the part entry with the given path as selected.
func (v *View) SelectPart(path string) {
	for i := range v.Nav.Parts {
		v.Nav.Parts[i].Selected = v.Nav.Parts[i].Path == path
	}
}

// SelectSection marks the section entry with the given path as selected.
func (v *View) SelectSection(path string) {
	for i := range v.Nav.Sections {
		v.Nav.Sections[i].Selected = !v.Nav.Sections[i].Disabled && v.Nav.Sections[i].Path == path
	}
}
