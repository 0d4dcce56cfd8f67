package resolver

import (
	"errors"
	"path/filepath"
	"strings"

	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/zerr"
)

// Derive maps a template request to its source and artifact paths.
//
// The request may be absolute or relative to the template root. Its extension
// is replaced by the source extension, or the source extension is appended when
// it has none, so requests for the host template and for the markup source land
// on the same source. Requests escaping the root fail with ErrPathOutsideRoot.
func (r *Resolver) Derive(request string) (domain.TemplatePath, error) {
	if strings.TrimSpace(request) == "" {
		return domain.TemplatePath{}, domain.ErrEmptyRequest
	}

	abs := request
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(r.root, abs)
	}
	abs = filepath.Clean(abs)

	rel, err := filepath.Rel(r.root, abs)
	if err != nil || !isLocal(rel) {
		return domain.TemplatePath{}, errors.Join(
			domain.ErrPathOutsideRoot,
			zerr.With(zerr.New("derive template path"), "request", request),
		)
	}

	rel = r.sourceRel(rel)

	return domain.TemplatePath{
		Request:  request,
		Rel:      filepath.ToSlash(rel),
		Source:   filepath.Join(r.root, rel),
		Artifact: filepath.Join(r.cacheRoot, strings.TrimSuffix(rel, r.theme.SourceExt)+r.theme.ArtifactExt),
	}, nil
}

func (r *Resolver) sourceRel(rel string) string {
	ext := filepath.Ext(rel)
	switch ext {
	case r.theme.SourceExt:
		return rel
	case "":
		return rel + r.theme.SourceExt
	default:
		return strings.TrimSuffix(rel, ext) + r.theme.SourceExt
	}
}

// isLocal reports whether a cleaned relative path names a file below the root.
func isLocal(rel string) bool {
	if rel == "." || rel == ".." || filepath.IsAbs(rel) {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
