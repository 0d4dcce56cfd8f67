package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fergus/internal/adapters/cas"
	"go.trai.ch/fergus/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()

	record := domain.CompileRecord{
		Rel:          "partials/nav.haml",
		Source:       "/theme/partials/nav.haml",
		Artifact:     "/theme/.fergus/cache/partials/nav.gohtml",
		SourceHash:   "abc",
		ArtifactHash: "def",
		CompiledAt:   time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
	}

	require.NoError(t, store.Put(root, record))

	got, err := store.Get(root, "partials/nav.haml")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, *got)
}

func TestStore_PutOverwrites(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(root, domain.CompileRecord{Rel: "index.haml", SourceHash: "1"}))
	require.NoError(t, store.Put(root, domain.CompileRecord{Rel: "index.haml", SourceHash: "2"}))

	got, err := store.Get(root, "index.haml")
	require.NoError(t, err)
	assert.Equal(t, "2", got.SourceHash)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	got, err := cas.NewStore().Get(t.TempDir(), "missing.haml")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetCorrupt(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()
	require.NoError(t, store.Put(root, domain.CompileRecord{Rel: "index.haml"}))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(root, entries[0].Name()), []byte("{not json"), 0o600))

	_, err = store.Get(root, "index.haml")
	assert.ErrorIs(t, err, domain.ErrRecordUnmarshalFailed)
}

func TestStore_PutUnwritable(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "records")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	err := cas.NewStore().Put(file, domain.CompileRecord{Rel: "index.haml"})
	assert.ErrorIs(t, err, domain.ErrRecordWriteFailed)
}
