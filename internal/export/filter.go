package export

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter selects which part and document resources are exported.
type Filter struct {
	Include []string
	Exclude []string
}

// Allows reports whether a resource path passes the include and exclude
// patterns. An empty include list admits everything.
func (f Filter) Allows(resource string) bool {
	p := strings.TrimPrefix(resource, "/")
	if len(f.Include) > 0 && !matchesAny(p, f.Include) {
		return false
	}
	return !matchesAny(p, f.Exclude)
}

// matchesAny checks the full path and then the base name against each
// doublestar pattern.
func matchesAny(p string, patterns []string) bool {
	base := path.Base(p)
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, p); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
