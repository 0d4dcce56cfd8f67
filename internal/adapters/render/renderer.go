// Package render executes resolved templates with the host template engine.
package render

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io"
	"path/filepath"

	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/fergus/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*HTMLRenderer)(nil)

// HTMLRenderer implements ports.Renderer with html/template.
type HTMLRenderer struct {
	funcs template.FuncMap
}

// NewHTMLRenderer creates a renderer. funcs are made available to every template.
func NewHTMLRenderer(funcs template.FuncMap) *HTMLRenderer {
	return &HTMLRenderer{funcs: funcs}
}

// Render parses the template file at path and executes it with data.
// Nothing is written to w when parsing or execution fails.
func (r *HTMLRenderer) Render(ctx context.Context, w io.Writer, path string, data map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmpl, err := template.New(filepath.Base(path)).Funcs(r.funcs).ParseFiles(path)
	if err != nil {
		return renderFailed(err, "parse template", path)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return renderFailed(err, "execute template", path)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return renderFailed(err, "write rendered output", path)
	}
	return nil
}

func renderFailed(err error, msg, path string) error {
	return errors.Join(domain.ErrRenderFailed, zerr.With(zerr.Wrap(err, msg), "path", path))
}
