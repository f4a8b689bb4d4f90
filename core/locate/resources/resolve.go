package resources

import (
	"context"
	"embed"
	"fmt"
	"net/url"
	"path"

	"github.com/npillmayer/ivy/core"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	stylesheetResourceType
	documentResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case stylesheetResourceType:
		s = fmt.Sprintf("stylesheet not found: %s", res)
	case documentResourceType:
		s = fmt.Sprintf("document not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, s)
}

//go:embed packaged/*
var packaged embed.FS

// PackagedStylesheet returns the contents of a stylesheet packaged with
// the application, e.g. "default.css".
func PackagedStylesheet(name string) ([]byte, error) {
	bytez, err := packaged.ReadFile(path.Join("packaged", name))
	if err != nil {
		tracer().Debugf("packaged stylesheet %s: %v", name, err)
		return nil, NotFound(name, stylesheetResourceType)
	}
	return bytez, nil
}

// --- Text resources --------------------------------------------------------

type textPlusErr struct {
	text string
	err  error
}

// TextPromise is a promise for a textual resource, such as an HTML document
// or a stylesheet.
type TextPromise interface {
	Text() (string, error)
	Await(ctx context.Context) (string, error)
}

type textLoader struct {
	await func(ctx context.Context) (string, error)
}

func (loader textLoader) Text() (string, error) {
	return loader.await(context.Background())
}

func (loader textLoader) Await(ctx context.Context) (string, error) {
	return loader.await(ctx)
}

// Resolve starts pulling the resource at u in the background and returns
// a promise for its textual content. Cancelling ctx aborts the transfer.
func (p *Puller) Resolve(ctx context.Context, u *url.URL) TextPromise {
	ch := make(chan textPlusErr, 1)
	go func(ch chan<- textPlusErr) {
		result := textPlusErr{}
		result.text, result.err = p.PullString(ctx, u)
		ch <- result
		close(ch)
	}(ch)
	return textLoader{
		await: func(ctx context.Context) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case r := <-ch:
				return r.text, r.err
			}
		},
	}
}
