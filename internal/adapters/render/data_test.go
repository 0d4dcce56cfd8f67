package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fergus/internal/adapters/render"
	"go.trai.ch/fergus/internal/core/domain"
)

func TestLoadData(t *testing.T) {
	want := map[string]any{"title": "Home", "items": []any{"one", "two"}}

	for _, name := range []string{"page.yaml", "page.json"} {
		t.Run(name, func(t *testing.T) {
			data, err := render.LoadData(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, want, data)
		})
	}
}

func TestLoadData_EmptyPath(t *testing.T) {
	data, err := render.LoadData("")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoadData_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	data, err := render.LoadData(path)
	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}

func TestLoadData_Errors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("title: [unclosed"), 0o600))

	_, err := render.LoadData(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, domain.ErrDataReadFailed)

	_, err = render.LoadData(invalid)
	require.ErrorIs(t, err, domain.ErrDataReadFailed)
}
