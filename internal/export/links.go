package export

import (
	"path"
	"strings"
)

// PagePath maps a resource path onto the exported page path by swapping
// its extension for .html.
func PagePath(resource string) string {
	p := strings.TrimPrefix(path.Clean("/"+resource), "/")
	return strings.TrimSuffix(p, path.Ext(p)) + ".html"
}

// staticLinks resolves navigation hrefs relative to the page being written.
type staticLinks struct {
	base   string
	export Filter
}

func linksFor(page string, f Filter) staticLinks {
	depth := strings.Count(page, "/")
	return staticLinks{base: strings.Repeat("../", depth), export: f}
}

func (l staticLinks) Part(p string) string {
	if !l.export.Allows(p) {
		return "#"
	}
	return l.base + PagePath(p)
}

func (l staticLinks) Document(p string) string {
	if !l.export.Allows(p) {
		return "#"
	}
	return l.base + PagePath(p)
}

// Back is never rendered: item detail pages are not exported.
func (l staticLinks) Back() string { return l.base + "index.html" }
