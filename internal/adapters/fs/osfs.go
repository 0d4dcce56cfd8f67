// Package fs provides the file system adapter used by the template cache.
package fs

import (
	"bytes"
	"io/fs"
	"iter"
	"os"

	"github.com/natefinch/atomic"
	"go.trai.ch/fergus/internal/core/domain"
)

// OSFS implements ports.Filesystem on top of the operating system.
type OSFS struct {
	walker *Walker
}

// NewOSFS creates a new OSFS.
func NewOSFS(walker *Walker) *OSFS {
	if walker == nil {
		walker = NewWalker()
	}
	return &OSFS{walker: walker}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is derived from the template root by the resolver
	return os.ReadFile(path)
}

// MkdirAll creates path and every missing parent.
func (o *OSFS) MkdirAll(path string) error {
	return os.MkdirAll(path, domain.DirPerm)
}

// CheckWritable creates and removes a probe file in dir.
func (o *OSFS) CheckWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".fergus-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	return os.Remove(name)
}

// WriteFileAtomic writes data to a temporary file next to path and renames it
// into place, so readers never observe a partial artifact.
func (o *OSFS) WriteFileAtomic(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Chmod(path, domain.FilePerm)
}

// WalkSources yields the files under root whose name ends in ext.
func (o *OSFS) WalkSources(root, ext string, exclude []string) iter.Seq2[string, error] {
	return o.walker.WalkSources(root, ext, exclude)
}

// RemoveAll removes path and any children it contains.
func (o *OSFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
