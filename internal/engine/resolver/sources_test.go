package resolver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fergus/internal/adapters/fs"
	"go.trai.ch/fergus/internal/engine/resolver"
)

func TestResolver_Sources(t *testing.T) {
	t.Parallel()

	theme := newTheme(t)
	// Keep the cache inside the template root to check it is skipped.
	theme.CacheRoot = filepath.Join(theme.Root, "cache")
	mod := time.Now().Add(-time.Hour)
	writeSource(t, theme, "partials/nav.haml", "%nav", mod)
	writeSource(t, theme, "index.haml", "%p", mod)
	writeSource(t, theme, "about.haml", "%p", mod)
	writeSource(t, theme, "style.css", "p {}", mod)
	writeSource(t, theme, "cache/leftover.haml", "%p", mod)

	r := resolver.New(theme, fs.NewOSFS(nil), &upperCompiler{})

	sources, err := r.Sources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"about.haml", "index.haml", "partials/nav.haml"}, sources)
}

func TestResolver_Sources_MissingRoot(t *testing.T) {
	t.Parallel()

	theme := newTheme(t)
	require.NoError(t, os.RemoveAll(theme.Root))
	r := resolver.New(theme, fs.NewOSFS(nil), &upperCompiler{})

	_, err := r.Sources(context.Background())
	assert.Error(t, err)
}

func TestResolver_Sources_Cancelled(t *testing.T) {
	t.Parallel()

	theme := newTheme(t)
	writeSource(t, theme, "index.haml", "%p", time.Now())
	r := resolver.New(theme, fs.NewOSFS(nil), &upperCompiler{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Sources(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDigest(t *testing.T) {
	t.Parallel()

	assert.Equal(t, resolver.Digest([]byte("a")), resolver.Digest([]byte("a")))
	assert.NotEqual(t, resolver.Digest([]byte("a")), resolver.Digest([]byte("b")))
	assert.NotEmpty(t, resolver.Digest(nil))
}
