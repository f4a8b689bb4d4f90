package resources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/ivy/core"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
)

func TestCacheDirPath(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"app-key": "ivy-test",
	})
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	//
	cachedir, err := CacheDirPath("css")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "css", filepath.Base(cachedir))
	assert.Equal(t, "ivy-test", filepath.Base(filepath.Dir(cachedir)))
	info, err := os.Stat(cachedir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCachedPull(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, "div { display: flex; }")
	}))
	defer ts.Close()
	p := NewPuller()
	p.CacheDir = t.TempDir()
	u, _ := url.Parse(ts.URL + "/a/site.css")
	for i := 0; i < 3; i++ {
		s, err := p.PullString(context.Background(), u)
		assert.NoError(t, err)
		assert.Equal(t, "div { display: flex; }", s)
	}
	assert.Equal(t, int32(1), hits.Load(), "expected resource to be served from cache")
	assert.Equal(t, ".css", filepath.Ext(p.cachedFilePath(u)))
	//
	fpath := filepath.Join(t.TempDir(), "copy.css")
	err := p.DownloadCachedFile(context.Background(), fpath, u)
	assert.NoError(t, err)
	bytez, _ := os.ReadFile(fpath)
	assert.Equal(t, "div { display: flex; }", string(bytez))
}

func TestCachedPullRespectsMaxSize(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, "p { color: red; }")
	}))
	defer ts.Close()
	p := NewPuller()
	p.CacheDir = t.TempDir()
	u, _ := url.Parse(ts.URL + "/big.css")
	// a cached copy which has grown beyond the limit
	big := make([]byte, 1024)
	for i := range big {
		big[i] = ' '
	}
	assert.NoError(t, os.WriteFile(p.cachedFilePath(u), big, 0644))
	p.MaxSize = 100
	_, err := p.PullBytes(context.Background(), u)
	assert.True(t, core.Is(err, core.EINVALID), "expected size limit error, err = %v", err)
	assert.Equal(t, int32(0), hits.Load())
	//
	p.MaxSize = 2048
	bytez, err := p.PullBytes(context.Background(), u)
	assert.NoError(t, err)
	assert.Len(t, bytez, 1024)
}
