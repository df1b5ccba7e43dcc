package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/abx-navigator/internal/navigator"
	"github.com/ziadkadry99/abx-navigator/internal/urlstate"
	"github.com/ziadkadry99/abx-navigator/internal/view"
)

func (s *Server) registerRoutes(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Get("/nav/part/*", s.handlePart)
	r.Get("/nav/doc/*", s.handleDocument)
	r.Get("/nav/back", s.handleBack)
	r.Get("/nav/item/{chapter}/{section}/{item}", s.handleItem)
}

// actionLinks points navigation entries at the action endpoints, carrying
// the current address-bar query so unrelated keys survive the merge.
type actionLinks struct {
	query string
}

func (l actionLinks) withQuery(p string) string {
	if l.query == "" {
		return p
	}
	return p + "?" + l.query
}

func (l actionLinks) Part(path string) string     { return l.withQuery("/nav/part/" + escapePath(path)) }
func (l actionLinks) Document(path string) string { return l.withQuery("/nav/doc/" + escapePath(path)) }
func (l actionLinks) Back() string                { return l.withQuery("/nav/back") }

// escapePath escapes each segment of a resource path, keeping the slashes.
// A leading slash is encoded as %2F so it survives the wildcard route and
// wildcardPath returns the path exactly as the manifest spells it.
func escapePath(p string) string {
	prefix := ""
	if strings.HasPrefix(p, "/") {
		prefix = "%2F"
		p = p[1:]
	}
	segs := strings.Split(p, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return prefix + strings.Join(segs, "/")
}

// addressFor maps a request onto the navigator's canonical address: the
// root path with the request's query.
func addressFor(r *http.Request) *url.URL {
	return &url.URL{Path: "/", RawQuery: r.URL.RawQuery}
}

func (s *Server) newNavigator(r *http.Request) *navigator.Navigator {
	return navigator.New(s.loader, urlstate.NewAddressBar(addressFor(r)), navigator.Options{
		ManifestPath: s.cfg.ManifestPath,
		Messages:     s.msgs,
		Logger:       s.logger,
	})
}

// handleIndex renders the view for a (possibly deep-linked) address.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	nav := s.newNavigator(r)
	if err := nav.Bootstrap(r.Context()); err != nil {
		s.logger.Warn("bootstrap failed", slog.String("url", r.URL.String()), slog.String("error", err.Error()))
	}
	s.writePage(w, http.StatusOK, nav, false)
}

func (s *Server) handlePart(w http.ResponseWriter, r *http.Request) {
	path, ok := wildcardPath(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	nav := s.newNavigator(r)
	if err := nav.Restore(r.Context()); err != nil {
		s.logger.Warn("restore failed", slog.String("error", err.Error()))
		s.writePage(w, http.StatusOK, nav, false)
		return
	}
	if err := nav.SelectPart(r.Context(), path); err != nil {
		s.logger.Warn("part load failed", slog.String("part", path), slog.String("error", err.Error()))
	}
	s.writePage(w, http.StatusOK, nav, true)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	path, ok := wildcardPath(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	nav := s.newNavigator(r)
	if err := nav.Restore(r.Context()); err != nil {
		s.logger.Warn("restore failed", slog.String("error", err.Error()))
		s.writePage(w, http.StatusOK, nav, false)
		return
	}
	if err := nav.SelectDocument(r.Context(), path); err != nil {
		s.logger.Warn("document load failed", slog.String("doc", path), slog.String("error", err.Error()))
	}
	s.writePage(w, http.StatusOK, nav, true)
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	nav := s.newNavigator(r)
	if err := nav.Restore(r.Context()); err != nil {
		s.writePage(w, http.StatusOK, nav, false)
		return
	}
	if err := nav.Back(r.Context()); err != nil {
		if errors.Is(err, navigator.ErrNoDocument) {
			http.Redirect(w, r, addressFor(r).String(), http.StatusSeeOther)
			return
		}
		s.logger.Warn("back failed", slog.String("error", err.Error()))
	}
	s.writePage(w, http.StatusOK, nav, true)
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	var idx [3]int
	for i, key := range []string{"chapter", "section", "item"} {
		n, err := strconv.Atoi(chi.URLParam(r, key))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		idx[i] = n
	}

	nav := s.newNavigator(r)
	if err := nav.Restore(r.Context()); err != nil {
		s.writePage(w, http.StatusOK, nav, false)
		return
	}
	err := nav.ShowItem(r.Context(), idx[0], idx[1], idx[2])
	switch {
	case errors.Is(err, navigator.ErrItemNotFound), errors.Is(err, navigator.ErrNoDocument):
		http.NotFound(w, r)
		return
	case err != nil:
		s.logger.Warn("item load failed", slog.String("error", err.Error()))
	}
	s.writePage(w, http.StatusOK, nav, true)
}

// wildcardPath returns the resource path captured by a trailing wildcard.
func wildcardPath(r *http.Request) (string, bool) {
	p := chi.URLParam(r, "*")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(p)
		if err != nil {
			return "", false
		}
		p = unescaped
	}
	return p, p != ""
}

// writePage renders the navigator's view. Action responses also replace the
// browser's address with the navigator's canonical URL.
func (s *Server) writePage(w http.ResponseWriter, status int, nav *navigator.Navigator, action bool) {
	current := nav.AddressBar().URL()
	opts := view.PageOptions{
		Lang:  nav.Messages().Lang(),
		Links: actionLinks{query: current.RawQuery},
	}
	if action {
		opts.Location = current.String()
	}

	var buf bytes.Buffer
	if err := view.Page(&buf, nav.View(), opts); err != nil {
		s.logger.Error("page render failed", slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
