package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// toolDirs are never descended into.
var toolDirs = map[string]struct{}{
	".git":    {},
	".jj":     {},
	".fergus": {},
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkSources yields the absolute path of every regular file under root whose
// name ends in ext. Directories whose cleaned path appears in exclude are
// skipped, as are tool directories. Walk errors are yielded once and end the
// iteration.
func (w *Walker) WalkSources(root, ext string, exclude []string) iter.Seq2[string, error] {
	skip := make(map[string]struct{}, len(exclude))
	for _, dir := range exclude {
		skip[filepath.Clean(dir)] = struct{}{}
	}

	return func(yield func(string, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if w.shouldSkipDir(path, d, root, skip) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), ext) {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

func (w *Walker) shouldSkipDir(path string, d fs.DirEntry, root string, skip map[string]struct{}) bool {
	if path == root {
		return false
	}
	if _, ok := toolDirs[d.Name()]; ok {
		return true
	}
	_, ok := skip[filepath.Clean(path)]
	return ok
}
