package urlstate

import "net/url"

// AddressBar models the browser's address bar: a current URL plus the
// history entries pushed by Write. It is owned by a single navigator and is
// not safe for concurrent use.
type AddressBar struct {
	current *url.URL
	history []*url.URL
}

// NewAddressBar starts at u.
func NewAddressBar(u *url.URL) *AddressBar {
	return &AddressBar{current: Merge(u)}
}

// Read returns the recognised state of the current URL.
func (b *AddressBar) Read() State { return Read(b.current) }

// Write merges updates into the current URL and pushes the result as a new
// history entry.
func (b *AddressBar) Write(updates ...Update) {
	next := Merge(b.current, updates...)
	b.history = append(b.history, next)
	b.current = next
}

// URL returns a copy of the current URL.
func (b *AddressBar) URL() *url.URL {
	cp := *b.current
	return &cp
}

// History returns the entries pushed since creation, oldest first.
func (b *AddressBar) History() []*url.URL {
	out := make([]*url.URL, len(b.history))
	copy(out, b.history)
	return out
}
