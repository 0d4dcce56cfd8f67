package resolver

import (
	"context"
	"path/filepath"
	"slices"

	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/zerr"
)

// Sources returns the root-relative, slash-separated paths of every markup
// source of the theme, sorted. The cache and record directories are skipped.
func (r *Resolver) Sources(ctx context.Context) ([]string, error) {
	exclude := []string{r.cacheRoot, r.theme.RecordsRoot()}

	var rels []string
	for path, err := range r.fs.WalkSources(r.root, r.theme.SourceExt, exclude) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "list sources"), "root", r.root)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rel, err := filepath.Rel(r.root, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPathOutsideRoot.Error()), "path", path)
		}
		rels = append(rels, filepath.ToSlash(rel))
	}

	slices.Sort(rels)
	return rels, nil
}
