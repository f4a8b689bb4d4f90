package resources

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/npillmayer/ivy/core"
	"github.com/npillmayer/schuko/gconf"
)

// pullCached serves a remote resource from the cache folder, downloading it
// first if it is not cached yet.
func (p *Puller) pullCached(ctx context.Context, u *url.URL) ([]byte, error) {
	fpath := p.cachedFilePath(u)
	if f, err := os.Open(fpath); err == nil {
		defer f.Close()
		tracer().Debugf("serving %s from cache", u)
		return p.readLimited(f, u)
	}
	bytez, err := p.pullHTTP(ctx, u)
	if err != nil {
		return nil, err
	}
	if err = os.WriteFile(fpath, bytez, 0644); err != nil {
		tracer().Errorf("cannot cache %s: %v", u, err)
	}
	return bytez, nil
}

func (p *Puller) cachedFilePath(u *url.URL) string {
	h := sha1.Sum([]byte(u.String()))
	name := hex.EncodeToString(h[:])
	if ext := path.Ext(u.Path); ext != "" && len(ext) <= 6 {
		name += ext
	}
	return filepath.Join(p.CacheDir, name)
}

// DownloadCachedFile will download a url to a local file (usually located in the
// user's cache directory).
func (p *Puller) DownloadCachedFile(ctx context.Context, fpath string, u *url.URL) error {
	bytez, err := p.pullHTTP(ctx, u)
	if err != nil {
		return err
	}
	if err = os.WriteFile(fpath, bytez, 0644); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot write cache file %s", fpath)
	}
	return nil
}

// CacheDirPath checks and possibly creates a folder in the user's cache
// directory. The base cache directory is taken from `os.UserCacheDir()`, plus
// an application specific key, taken as `app-key` from the global configuration.
// Clients may specify a sequence of folder names, which will be appended to
// the base cache path. Non-existing sub-folders will be created as necessary
// (with permissions 755).
func CacheDirPath(subfolders ...string) (string, error) {
	appkey := gconf.GetString("app-key")
	tracer().Debugf("config[%s] = %s", "app-key", appkey)
	if appkey == "" {
		tracer().Errorf("application key is not set")
	}
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "user cache directory not set")
	}
	subs := filepath.Join(subfolders...)
	cachedir = filepath.Join(cachedir, appkey, subs)
	tracer().Infof("caching in %s", cachedir)
	_, err = os.Stat(cachedir)
	if os.IsNotExist(err) {
		err = os.MkdirAll(cachedir, 0755)
		if err != nil {
			return "", core.WrapError(err, core.EINVALID, "cannot create cache folder %s", cachedir)
		}
	}
	return cachedir, nil
}
