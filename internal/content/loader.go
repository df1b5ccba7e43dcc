package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ziadkadry99/abx-navigator/internal/metrics"
)

// LoadError reports a resource that could not be loaded.
type LoadError struct {
	Path   string
	Status int // HTTP status when the fetch got a response, otherwise 0
	Err    error
}

func (e *LoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to load %s: status %d", e.Path, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to load %s", e.Path)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Resource is a parsed JSON resource. Resources are immutable once loaded.
type Resource struct {
	Path string
	Data json.RawMessage
}

// Fetcher retrieves the raw bytes of a resource.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// Loader fetches JSON resources and memoizes them by path for the lifetime
// of the process. Entries are never evicted.
type Loader struct {
	fetcher  Fetcher
	recorder metrics.Recorder
	logger   *slog.Logger

	mu    sync.RWMutex
	cache map[string]*Resource
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) LoaderOption {
	return func(l *Loader) { l.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a Loader with an empty cache.
func NewLoader(f Fetcher, opts ...LoaderOption) *Loader {
	l := &Loader{
		fetcher:  f,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		cache:    make(map[string]*Resource),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the resource at path, fetching it on first use. Concurrent
// first loads of the same path each fetch; the last one stored wins.
func (l *Loader) Load(ctx context.Context, path string) (*Resource, error) {
	l.mu.RLock()
	res, ok := l.cache[path]
	l.mu.RUnlock()
	if ok {
		l.recorder.IncCacheHit()
		return res, nil
	}
	l.recorder.IncCacheMiss()

	start := time.Now()
	data, err := l.fetcher.Fetch(ctx, path)
	if err == nil && !json.Valid(data) {
		err = errors.New("invalid JSON")
	}
	l.recorder.ObserveFetchDuration(time.Since(start), err == nil)
	if err != nil {
		l.logger.Debug("content load failed", slog.String("path", path), slog.String("error", err.Error()))
		var le *LoadError
		if errors.As(err, &le) {
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}

	res = &Resource{Path: path, Data: data}
	l.mu.Lock()
	l.cache[path] = res
	l.mu.Unlock()

	l.logger.Debug("content loaded", slog.String("path", path), slog.Int("bytes", len(data)))
	return res, nil
}

// Cached reports whether path is already in the cache.
func (l *Loader) Cached(path string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.cache[path]
	return ok
}

// LoadManifest loads and decodes the root manifest. An empty parts list is
// reported as ErrNoParts together with the decoded manifest.
func LoadManifest(ctx context.Context, l *Loader, path string) (*Manifest, error) {
	res, err := l.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return DecodeManifest(res.Data)
}

// LoadPart loads and decodes a part resource.
func LoadPart(ctx context.Context, l *Loader, path string) (*Part, error) {
	res, err := l.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	p, err := DecodePart(res.Data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return p, nil
}

// LoadDocument loads and decodes a document resource.
func LoadDocument(ctx context.Context, l *Loader, path string) (Document, error) {
	res, err := l.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	d, err := DecodeDocument(res.Data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return d, nil
}
