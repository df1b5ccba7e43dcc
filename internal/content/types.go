package content

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultAppTitle is shown when the manifest does not name the guide.
const DefaultAppTitle = "Antimicrobial Navigator"

// ErrNoParts is returned when a manifest has no guides.parts entries.
var ErrNoParts = errors.New("manifest has no parts")

// Lines is a list of text lines. Content defines these fields as arrays of
// strings; a bare string is also accepted and becomes one line rather than
// being ignored. null decodes to nil, which renderers treat as absent.
type Lines []string

func (l *Lines) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = Lines{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("lines must be a string or an array of strings: %w", err)
	}
	*l = many
	return nil
}

// Manifest is the root guide resource.
type Manifest struct {
	App    App    `json:"app"`
	Guides Guides `json:"guides"`
}

// App describes the guide itself.
type App struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	About       Lines  `json:"about"`
	Disclaimer  Lines  `json:"disclaimer"`
}

// DisplayTitle returns the title, falling back to DefaultAppTitle.
func (a App) DisplayTitle() string {
	if a.Title == "" {
		return DefaultAppTitle
	}
	return a.Title
}

// Guides holds the ordered list of parts.
type Guides struct {
	Parts []PartRef `json:"parts"`
}

// PartRef is a manifest entry pointing at a part resource.
type PartRef struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Part is a loaded part resource.
type Part struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Summary     string    `json:"summary"`
	Sections    []Section `json:"sections"`
}

// Section is an entry of a part. Sections without a path are disabled.
type Section struct {
	Title string `json:"title"`
	Path  string `json:"path,omitempty"`
}

// Navigable reports whether the section points at a document.
func (s Section) Navigable() bool { return s.Path != "" }

// Document is either a *GenericDocument or a *ChapteredDocument.
type Document interface {
	DocumentTitle() string
	isDocument()
}

// GenericDocument is a document without chapters.
type GenericDocument struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
}

func (d *GenericDocument) DocumentTitle() string { return d.Title }
func (*GenericDocument) isDocument()             {}

// ChapteredDocument is a document organised in chapters.
type ChapteredDocument struct {
	Title    string    `json:"title"`
	Chapters []Chapter `json:"chapters"`
}

func (d *ChapteredDocument) DocumentTitle() string { return d.Title }
func (*ChapteredDocument) isDocument()             {}

// Chapter groups sections of a chaptered document.
type Chapter struct {
	Title    string           `json:"title"`
	Sections []ChapterSection `json:"sections"`
}

// ChapterSection groups items inside a chapter.
type ChapterSection struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Note    string `json:"note"`
	Items   []Item `json:"items"`
}

// Item is the leaf clinical content unit.
type Item struct {
	Title   string `json:"title"`
	Summary Lines  `json:"summary"`
	Note    Lines  `json:"note"`
}

// DecodeManifest decodes a manifest and enforces that it lists parts.
func DecodeManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if len(m.Guides.Parts) == 0 {
		return &m, ErrNoParts
	}
	return &m, nil
}

// DecodePart decodes a part resource.
func DecodePart(data []byte) (*Part, error) {
	var p Part
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding part: %w", err)
	}
	return &p, nil
}

// DecodeDocument decodes a document, choosing the chaptered form whenever a
// non-null "chapters" member is present.
func DecodeDocument(data []byte) (Document, error) {
	var probe struct {
		Chapters json.RawMessage `json:"chapters"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	if len(probe.Chapters) > 0 && string(probe.Chapters) != "null" {
		var d ChapteredDocument
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("decoding chaptered document: %w", err)
		}
		return &d, nil
	}

	var d GenericDocument
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &d, nil
}

// ItemAt returns the item at the given chapter, section and item indices
// together with its owning chapter and section.
func (d *ChapteredDocument) ItemAt(chapter, section, item int) (Item, ChapterSection, Chapter, bool) {
	if chapter < 0 || chapter >= len(d.Chapters) {
		return Item{}, ChapterSection{}, Chapter{}, false
	}
	ch := d.Chapters[chapter]
	if section < 0 || section >= len(ch.Sections) {
		return Item{}, ChapterSection{}, Chapter{}, false
	}
	sec := ch.Sections[section]
	if item < 0 || item >= len(sec.Items) {
		return Item{}, ChapterSection{}, Chapter{}, false
	}
	return sec.Items[item], sec, ch, true
}
