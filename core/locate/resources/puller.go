package resources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/npillmayer/ivy/core"
)

// DefaultMaxSize is the default upper limit for the size of a pulled resource.
const DefaultMaxSize = 64 << 20

// Puller fetches resources from the local file system or from HTTP(S) servers.
//
// A Puller with CacheDir set will store copies of remote resources in that
// folder and serve later requests for the same URL from there. CacheDirPath
// may be used to set up a cache folder.
type Puller struct {
	AllowLocalFS bool         // permit pulling from file:// URLs
	MaxSize      int64        // upper limit for resource size in bytes
	CacheDir     string       // folder for cached remote resources; empty to disable
	Client       *http.Client // HTTP client to use; nil means a client with timeout
}

// NewPuller creates a Puller with default settings.
// Access to the local file system is permitted, caching is off.
func NewPuller() *Puller {
	return &Puller{
		AllowLocalFS: true,
		MaxSize:      DefaultMaxSize,
		Client:       &http.Client{Timeout: 30 * time.Second},
	}
}

// ParseURL parses a raw URL. Strings without a scheme are interpreted as
// paths in the local file system.
func ParseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse URL %q", raw)
	}
	if u.Scheme == "" {
		abs, err := filepath.Abs(raw)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot make path %q absolute", raw)
		}
		u = &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	}
	return u, nil
}

// PullString pulls a textual resource.
func (p *Puller) PullString(ctx context.Context, u *url.URL) (string, error) {
	bytez, err := p.PullBytes(ctx, u)
	return string(bytez), err
}

// PullBytes pulls the resource located at u.
func (p *Puller) PullBytes(ctx context.Context, u *url.URL) ([]byte, error) {
	if u == nil {
		return nil, core.Error(core.EINVALID, "no URL to pull from")
	}
	tracer().Debugf("pulling %s", u)
	switch u.Scheme {
	case "file":
		return p.pullFile(u)
	case "http", "https":
		if p.CacheDir != "" {
			return p.pullCached(ctx, u)
		}
		return p.pullHTTP(ctx, u)
	}
	return nil, core.Error(core.EINVALID, "unsupported URL scheme %q", u.Scheme)
}

func (p *Puller) pullFile(u *url.URL) ([]byte, error) {
	if !p.AllowLocalFS {
		return nil, core.Error(core.EFORBIDDEN, "access to local file system not permitted: %s", u)
	}
	fpath := filepath.FromSlash(u.Path)
	f, err := os.Open(fpath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.WrapError(err, core.EMISSING, "file not found: %s", fpath)
		}
		return nil, core.WrapError(err, core.EINVALID, "cannot open file %s", fpath)
	}
	defer f.Close()
	return p.readLimited(f, u)
}

func (p *Puller) pullHTTP(ctx context.Context, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot create request for %s", u)
	}
	resp, err := p.client().Do(req)
	if err != nil {
		tracer().Errorf("pulling %s: %v", u, err)
		return nil, core.WrapError(err, core.ECONNECTION, "cannot connect to %s", u.Host)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, NotFound(u.String(), unknownResourceType)
	case resp.StatusCode >= 300:
		e := fmt.Errorf("HTTP status %s", resp.Status)
		return nil, core.WrapError(e, core.ECONNECTION, "server returned %s for %s", resp.Status, u)
	}
	return p.readLimited(resp.Body, u)
}

func (p *Puller) readLimited(r io.Reader, u *url.URL) ([]byte, error) {
	max := p.MaxSize
	if max <= 0 {
		max = DefaultMaxSize
	}
	bytez, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, core.WrapError(err, core.ECONNECTION, "cannot read %s", u)
	}
	if int64(len(bytez)) > max {
		return nil, core.Error(core.EINVALID, "resource %s exceeds maximum size of %d bytes", u, max)
	}
	tracer().Debugf("pulled %d bytes from %s", len(bytez), u)
	return bytez, nil
}

func (p *Puller) client() *http.Client {
	if p.Client == nil {
		return http.DefaultClient
	}
	return p.Client
}
