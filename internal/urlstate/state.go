// Package urlstate reads and writes the navigator's address-bar state: the
// selected part and document, carried as the "part" and "doc" query
// parameters.
package urlstate

import "net/url"

// Recognised query keys.
const (
	KeyPart = "part"
	KeyDoc  = "doc"
)

func recognised(key string) bool { return key == KeyPart || key == KeyDoc }

// State is the recognised subset of a URL's query.
type State struct {
	values map[string]string
}

// Read extracts the recognised keys from u.
func Read(u *url.URL) State {
	s := State{values: make(map[string]string, 2)}
	if u == nil {
		return s
	}
	q := u.Query()
	for _, key := range []string{KeyPart, KeyDoc} {
		if q.Has(key) {
			s.values[key] = q.Get(key)
		}
	}
	return s
}

// Get returns the value of a recognised key and whether it is present.
func (s State) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Part returns the selected part path.
func (s State) Part() (string, bool) { return s.Get(KeyPart) }

// Doc returns the selected document path.
func (s State) Doc() (string, bool) { return s.Get(KeyDoc) }

// Empty reports whether neither key is present.
func (s State) Empty() bool { return len(s.values) == 0 }

// Update sets or removes one key.
type Update struct {
	Key   string
	Value string
	Clear bool
}

// Set returns an update assigning value to key.
func Set(key, value string) Update { return Update{Key: key, Value: value} }

// Clear returns an update removing key.
func Clear(key string) Update { return Update{Key: key, Clear: true} }

// Merge returns a copy of u with the updates applied to its query. Updates
// for unrecognised keys are ignored; other query parameters are kept.
func Merge(u *url.URL, updates ...Update) *url.URL {
	out := &url.URL{Path: "/"}
	if u != nil {
		cp := *u
		out = &cp
	}
	q := out.Query()
	for _, up := range updates {
		if !recognised(up.Key) {
			continue
		}
		if up.Clear {
			q.Del(up.Key)
		} else {
			q.Set(up.Key, up.Value)
		}
	}
	out.RawQuery = q.Encode()
	return out
}
