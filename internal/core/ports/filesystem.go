package ports

import (
	"io/fs"
	"iter"
)

// Filesystem abstracts the file operations used by the resolver.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Filesystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// MkdirAll creates a directory and all missing parents.
	MkdirAll(path string) error
	// CheckWritable returns an error if files cannot be created in dir.
	CheckWritable(dir string) error
	// WriteFileAtomic replaces the file at path with data in a single step.
	WriteFileAtomic(path string, data []byte) error
	// WalkSources yields absolute paths of the files under root whose name
	// ends in ext. Directories in exclude and tool directories are skipped.
	WalkSources(root, ext string, exclude []string) iter.Seq2[string, error]
	// RemoveAll removes path and any children it contains.
	RemoveAll(path string) error
}
