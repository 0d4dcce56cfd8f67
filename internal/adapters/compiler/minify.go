package compiler

import (
	"bytes"
	"context"
	"regexp"
	"strconv"

	"github.com/tdewolff/minify"
	minhtml "github.com/tdewolff/minify/html"
	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/fergus/internal/core/ports"
	"go.trai.ch/zerr"
)

// actionMarker prefixes the placeholders that stand in for template actions
// while the HTML is minified. Placeholders are lowercase alphanumerics so the
// minifier keeps them as written in text, attribute names and values.
const actionMarker = "fergusaction"

var templateAction = regexp.MustCompile(`(?s)\{\{.*?\}\}`)

// Minifier decorates a compiler and minifies its HTML output.
// Template actions pass through byte for byte.
type Minifier struct {
	next ports.Compiler
	min  *minify.M
}

// NewMinifier wraps next.
func NewMinifier(next ports.Compiler) *Minifier {
	m := minify.New()
	m.AddFunc("text/html", minhtml.Minify)
	return &Minifier{next: next, min: m}
}

// Compile compiles source with the wrapped compiler and minifies the result.
// Output that already contains the placeholder marker is returned unminified.
func (m *Minifier) Compile(ctx context.Context, source []byte, label string, opts domain.CompileOptions) ([]byte, error) {
	out, err := m.next.Compile(ctx, source, label, opts)
	if err != nil {
		return nil, err
	}
	if bytes.Contains(out, []byte(actionMarker)) {
		return out, nil
	}

	masked, actions := maskActions(out)

	var b bytes.Buffer
	if err := m.min.Minify("text/html", &b, bytes.NewReader(masked)); err != nil {
		return nil, zerr.Wrap(err, "minify compiled template")
	}
	return unmaskActions(b.Bytes(), actions)
}

func placeholder(i int) []byte {
	return []byte(actionMarker + strconv.Itoa(i) + "x")
}

// maskActions replaces every {{...}} action with a numbered placeholder.
func maskActions(src []byte) ([]byte, [][]byte) {
	var actions [][]byte
	masked := templateAction.ReplaceAllFunc(src, func(action []byte) []byte {
		actions = append(actions, bytes.Clone(action))
		return placeholder(len(actions) - 1)
	})
	return masked, actions
}

// unmaskActions restores the actions replaced by maskActions. Every
// placeholder must survive minification exactly once.
func unmaskActions(src []byte, actions [][]byte) ([]byte, error) {
	for i, action := range actions {
		p := placeholder(i)
		if bytes.Count(src, p) != 1 {
			return nil, zerr.With(zerr.New("minifier altered a template action"), "action", string(action))
		}
		src = bytes.Replace(src, p, action, 1)
	}
	return src, nil
}
