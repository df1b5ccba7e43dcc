// Package i18n holds the navigator's user-facing strings. English keys are
// translated through the golang.org/x/text message catalog; Japanese is the
// default locale of the guide.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "ja"

const (
	keyAbout              = "About"
	keyDisclaimer         = "Disclaimer"
	keySummary            = "Summary"
	keyNotes              = "Notes"
	keyBack               = "← Back"
	keyNoParts            = "No parts were found in the guide manifest."
	keyManifestLoadFailed = "Could not load the guide: %s"
	keyPartLoadFailed     = "Could not load the part: %s"
	keyDocLoadFailed      = "Could not load the document: %s"
)

var japanese = map[string]string{
	keyAbout:              "本ナビゲーションについて",
	keyDisclaimer:         "免責事項",
	keySummary:            "概要",
	keyNotes:              "備考",
	keyBack:               "← 戻る",
	keyNoParts:            "guides.json に parts が見つかりません。",
	keyManifestLoadFailed: "ガイドを読み込めませんでした：%s",
	keyPartLoadFailed:     "パートを読み込めませんでした：%s",
	keyDocLoadFailed:      "ドキュメントを読み込めませんでした：%s",
}

var supported = []language.Tag{language.Japanese, language.English}

var matcher = language.NewMatcher(supported)

func init() {
	for key, msg := range japanese {
		if err := message.SetString(language.Japanese, key, msg); err != nil {
			panic(err)
		}
		if err := message.SetString(language.English, key, key); err != nil {
			panic(err)
		}
	}
}

// Messages renders the navigator's strings for one locale.
type Messages struct {
	tag language.Tag
	p   *message.Printer
}

// New returns the messages for locale, matched against the supported
// locales. An empty locale selects DefaultLocale.
func New(locale string) (*Messages, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	_, idx, _ := matcher.Match(tag)
	chosen := supported[idx]
	return &Messages{tag: chosen, p: message.NewPrinter(chosen)}, nil
}

// MustNew is New for locales known to be valid.
func MustNew(locale string) *Messages {
	m, err := New(locale)
	if err != nil {
		panic(err)
	}
	return m
}

// Supported reports whether locale parses and matches a supported locale
// with at least low confidence.
func Supported(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	_, _, conf := matcher.Match(tag)
	return conf != language.No
}

// Lang returns the BCP 47 tag of the selected locale, e.g. for the html
// lang attribute.
func (m *Messages) Lang() string { return m.tag.String() }

func (m *Messages) About() string      { return m.p.Sprintf(keyAbout) }
func (m *Messages) Disclaimer() string { return m.p.Sprintf(keyDisclaimer) }
func (m *Messages) Summary() string    { return m.p.Sprintf(keySummary) }
func (m *Messages) Notes() string      { return m.p.Sprintf(keyNotes) }
func (m *Messages) Back() string       { return m.p.Sprintf(keyBack) }
func (m *Messages) NoParts() string    { return m.p.Sprintf(keyNoParts) }

func (m *Messages) ManifestLoadFailed(path string) string {
	return m.p.Sprintf(keyManifestLoadFailed, path)
}

func (m *Messages) PartLoadFailed(path string) string {
	return m.p.Sprintf(keyPartLoadFailed, path)
}

func (m *Messages) DocumentLoadFailed(path string) string {
	return m.p.Sprintf(keyDocLoadFailed, path)
}
