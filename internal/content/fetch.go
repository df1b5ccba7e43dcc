package content

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// maxResourceSize bounds a single fetched resource.
const maxResourceSize = 16 << 20

// DirFetcher reads resources from a file system, typically os.DirFS of the
// content root.
type DirFetcher struct {
	fsys fs.FS
}

// NewDirFetcher creates a DirFetcher rooted at dir.
func NewDirFetcher(dir string) *DirFetcher {
	return &DirFetcher{fsys: os.DirFS(dir)}
}

// NewFSFetcher creates a DirFetcher over an arbitrary fs.FS.
func NewFSFetcher(fsys fs.FS) *DirFetcher {
	return &DirFetcher{fsys: fsys}
}

func (f *DirFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(path, "/")
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid resource path %q", path)
	}
	return fs.ReadFile(f.fsys, name)
}

// HTTPFetcher retrieves resources relative to a base URL.
type HTTPFetcher struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher. A zero timeout means no client
// timeout beyond the request context.
func NewHTTPFetcher(baseURL string, timeout time.Duration) (*HTTPFetcher, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL %q must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &HTTPFetcher{base: u, client: &http.Client{Timeout: timeout}}, nil
}

// Fetch resolves path against the base URL. Paths are confined to the base
// the same way DirFetcher confines them to its root: no scheme or host, no
// ".." or empty elements.
func (f *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	name := strings.TrimPrefix(path, "/")
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid resource path %q", path)
	}
	ref, err := url.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("parsing resource path: %w", err)
	}
	if ref.IsAbs() || ref.Host != "" {
		return nil, fmt.Errorf("invalid resource path %q: must be relative to the content source", path)
	}
	target := f.base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Path: path, Status: resp.StatusCode}
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxResourceSize))
}

// NewFetcher picks an HTTPFetcher for http(s) sources and a DirFetcher for
// everything else.
func NewFetcher(source string, timeout time.Duration) (Fetcher, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return NewHTTPFetcher(source, timeout)
	}
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("content source %s: %w", source, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content source %s is not a directory", source)
	}
	return NewDirFetcher(source), nil
}
