package resources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/ivy/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPackagedStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ivy.resources")
	defer teardown()
	//
	css, err := PackagedStylesheet("default.css")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(css), "ThemeLinkColor") {
		t.Errorf("expected default stylesheet to reference theme colors")
	}
	_, err = PackagedStylesheet("nope.css")
	assert.True(t, core.Is(err, core.EMISSING))
}

func TestPullFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ivy.resources")
	defer teardown()
	//
	fpath := filepath.Join(t.TempDir(), "page.html")
	err := os.WriteFile(fpath, []byte("<p>hello</p>"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	u, err := ParseURL(fpath)
	assert.NoError(t, err)
	assert.Equal(t, "file", u.Scheme)
	p := NewPuller()
	s, err := p.PullString(context.Background(), u)
	assert.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", s)
	//
	p.AllowLocalFS = false
	_, err = p.PullString(context.Background(), u)
	assert.True(t, core.Is(err, core.EFORBIDDEN), "expected access to be forbidden, err = %v", err)
	//
	p.AllowLocalFS = true
	u.Path += ".missing"
	_, err = p.PullString(context.Background(), u)
	assert.True(t, core.Is(err, core.EMISSING), "expected file to be missing, err = %v", err)
}

func TestPullHTTP(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ivy.resources")
	defer teardown()
	//
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/style.css" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "p { color: red; }")
	}))
	defer ts.Close()
	//
	p := NewPuller()
	u, _ := url.Parse(ts.URL + "/style.css")
	s, err := p.PullString(context.Background(), u)
	assert.NoError(t, err)
	assert.Equal(t, "p { color: red; }", s)
	//
	u, _ = url.Parse(ts.URL + "/other.css")
	_, err = p.PullString(context.Background(), u)
	assert.True(t, core.Is(err, core.EMISSING), "expected 404 to map to EMISSING, err = %v", err)
	//
	p.MaxSize = 4
	u, _ = url.Parse(ts.URL + "/style.css")
	_, err = p.PullBytes(context.Background(), u)
	assert.True(t, core.Is(err, core.EINVALID), "expected size limit to be enforced, err = %v", err)
	//
	u, _ = url.Parse("gopher://example.com/")
	_, err = p.PullBytes(context.Background(), u)
	assert.True(t, core.Is(err, core.EINVALID))
}

func TestResolvePromise(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ivy.resources")
	defer teardown()
	//
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		fmt.Fprint(w, "<html></html>")
	}))
	defer ts.Close()
	u, _ := url.Parse(ts.URL)
	p := NewPuller()
	//
	promise := p.Resolve(context.Background(), u)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := promise.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(release)
	text, err := promise.Text()
	assert.NoError(t, err)
	assert.Equal(t, "<html></html>", text)
}
