package domain

import "path/filepath"

const (
	// FergusDirName is the name of the internal theme directory.
	FergusDirName = ".fergus"

	// CacheDirName is the name of the compiled artifact directory.
	CacheDirName = "cache"

	// RecordsDirName is the name of the compile record directory.
	RecordsDirName = "records"

	// ConfigFileName is the name of the theme configuration file.
	ConfigFileName = "fergus.yaml"

	// DefaultSourceExt is the extension of markup sources.
	DefaultSourceExt = ".haml"

	// DefaultArtifactExt is the extension of compiled artifacts.
	DefaultArtifactExt = ".gohtml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default cache root relative to the theme directory.
// It joins .fergus and cache.
func DefaultCachePath() string {
	return filepath.Join(FergusDirName, CacheDirName)
}

// RecordsPath returns the directory holding compile records for a cache root.
// Records live next to the cache root so that removing one never removes the other by accident.
func RecordsPath(cacheRoot string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(cacheRoot)), RecordsDirName)
}
