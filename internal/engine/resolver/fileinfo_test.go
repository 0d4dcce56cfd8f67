package resolver_test

import (
	"io/fs"
	"time"
)

type fileInfo struct {
	mod time.Time
	dir bool
}

func (f fileInfo) Name() string       { return "stub" }
func (f fileInfo) Size() int64        { return 0 }
func (f fileInfo) Mode() fs.FileMode  { return 0o644 }
func (f fileInfo) ModTime() time.Time { return f.mod }
func (f fileInfo) IsDir() bool        { return f.dir }
func (f fileInfo) Sys() any           { return nil }
