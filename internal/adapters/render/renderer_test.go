package render_test

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fergus/internal/adapters/render"
	"go.trai.ch/fergus/internal/core/domain"
)

func TestHTMLRenderer_Render(t *testing.T) {
	data, err := render.LoadData(filepath.Join("testdata", "page.yaml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	r := render.NewHTMLRenderer(nil)
	require.NoError(t, r.Render(context.Background(), &buf, filepath.Join("testdata", "page.gohtml"), data))

	g := goldie.New(t)
	g.Assert(t, "page", buf.Bytes())
}

func TestHTMLRenderer_Render_EscapesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "escape.gohtml")
	require.NoError(t, os.WriteFile(path, []byte(`<p>{{ .body }}</p>`), 0o600))

	var buf bytes.Buffer
	r := render.NewHTMLRenderer(nil)
	require.NoError(t, r.Render(context.Background(), &buf, path, map[string]any{"body": "<b>"}))
	assert.Equal(t, "<p>&lt;b&gt;</p>", buf.String())
}

func TestHTMLRenderer_Render_Funcs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funcs.gohtml")
	require.NoError(t, os.WriteFile(path, []byte(`{{ upper .name }}`), 0o600))

	var buf bytes.Buffer
	r := render.NewHTMLRenderer(template.FuncMap{"upper": strings.ToUpper})
	require.NoError(t, r.Render(context.Background(), &buf, path, map[string]any{"name": "fergus"}))
	assert.Equal(t, "FERGUS", buf.String())
}

func TestHTMLRenderer_Render_Errors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.gohtml")
	require.NoError(t, os.WriteFile(broken, []byte(`{{ if }}`), 0o600))
	failing := filepath.Join(dir, "failing.gohtml")
	require.NoError(t, os.WriteFile(failing, []byte(`before{{ template "missing" }}`), 0o600))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.gohtml")},
		{name: "parse error", path: broken},
		{name: "execution error", path: failing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := render.NewHTMLRenderer(nil).Render(context.Background(), &buf, tt.path, nil)
			require.ErrorIs(t, err, domain.ErrRenderFailed)
			assert.Empty(t, buf.String())
		})
	}
}

func TestHTMLRenderer_Render_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := render.NewHTMLRenderer(nil).Render(ctx, &bytes.Buffer{}, filepath.Join("testdata", "page.gohtml"), nil)
	require.ErrorIs(t, err, context.Canceled)
}
