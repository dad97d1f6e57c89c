package templates

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/valyala/fasttemplate"

	oerrors "github.com/freshmaven/cli/internal/errors"
)

// Placeholder delimiters.
const (
	StartTag = "${"
	EndTag   = "}"
)

// Merger renders templates against a rendering context.
type Merger interface {
	// Merge renders the template identified by name.
	Merge(name string, ctx *Context) (string, error)

	// MergeString renders src as an inline template.
	MergeString(src string, ctx *Context) (string, error)
}

// Engine is a Merger over one or more template file systems.
// Earlier layers shadow later ones, so a user template directory placed
// first overrides the built-in templates by name.
type Engine struct {
	layers []fs.FS
}

// NewEngine creates an engine that looks templates up in layers, in order.
// With no layers the built-in templates are used.
func NewEngine(layers ...fs.FS) *Engine {
	if len(layers) == 0 {
		layers = []fs.FS{BuiltinFS()}
	}
	return &Engine{layers: layers}
}

// Merge renders the template identified by name.
func (e *Engine) Merge(name string, ctx *Context) (string, error) {
	src, err := e.load(name)
	if err != nil {
		return "", err
	}
	out, err := e.MergeString(src, ctx)
	if err != nil {
		return "", fmt.Errorf("template %s: %w", name, err)
	}
	return out, nil
}

// MergeString renders src. Placeholders whose key is not in ctx are
// written back unchanged, which lets callers detect unresolved references.
// A trailing ${ without a closing } is copied verbatim as well.
func (e *Engine) MergeString(src string, ctx *Context) (string, error) {
	src, tail := splitUnterminated(src)
	if !strings.Contains(src, StartTag) {
		return src + tail, nil
	}

	t, err := fasttemplate.NewTemplate(src, StartTag, EndTag)
	if err != nil {
		return "", fmt.Errorf("%w: %w", oerrors.ErrTemplate, err)
	}

	out, err := t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		if v, ok := ctx.Get(tag); ok {
			return io.WriteString(w, v)
		}
		return io.WriteString(w, StartTag+tag+EndTag)
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", oerrors.ErrTemplate, err)
	}
	return out + tail, nil
}

// splitUnterminated cuts src before the first start tag that has no end
// tag after it.
func splitUnterminated(src string) (head, tail string) {
	off := 0
	for {
		i := strings.Index(src[off:], StartTag)
		if i < 0 {
			return src, ""
		}
		start := off + i
		j := strings.Index(src[start+len(StartTag):], EndTag)
		if j < 0 {
			return src[:start], src[start:]
		}
		off = start + len(StartTag) + j + len(EndTag)
	}
}

func (e *Engine) load(name string) (string, error) {
	for _, layer := range e.layers {
		data, err := fs.ReadFile(layer, name)
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("reading template %s: %w: %w", name, oerrors.ErrTemplate, err)
		}
	}
	return "", fmt.Errorf("template %s: %w: %w", name, oerrors.ErrTemplate, fs.ErrNotExist)
}

// HasPlaceholder reports whether s still contains a placeholder marker.
func HasPlaceholder(s string) bool {
	return strings.Contains(s, StartTag)
}
