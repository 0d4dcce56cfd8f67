package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceNotFound is returned when no markup source exists at the derived source path.
	// It is not a failure for the host: the request is not a markup template.
	ErrSourceNotFound = zerr.New("markup source not found")

	// ErrCacheNotWritable is returned when the cache root or an artifact directory cannot be written.
	ErrCacheNotWritable = zerr.New("cache root is not writable")

	// ErrCompileFailed is returned when the external compiler rejects a markup source.
	ErrCompileFailed = zerr.New("failed to compile markup source")

	// ErrPathOutsideRoot is returned when a requested template resolves outside the template root.
	ErrPathOutsideRoot = zerr.New("template path is outside template root")

	// ErrEmptyRequest is returned when an empty template path is requested.
	ErrEmptyRequest = zerr.New("empty template path")

	// ErrCompilerNotConfigured is returned when the theme does not declare a compiler command.
	ErrCompilerNotConfigured = zerr.New("no compiler command configured")

	// ErrInvalidExtension is returned when a configured file extension is malformed.
	ErrInvalidExtension = zerr.New("invalid file extension, expected a leading dot")

	// ErrSameExtension is returned when the source and artifact extensions are identical.
	ErrSameExtension = zerr.New("source and artifact extensions must differ")

	// ErrSourceReadFailed is returned when a markup source exists but cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read markup source")

	// ErrSourceStatFailed is returned when stating a markup source fails for a reason other than absence.
	ErrSourceStatFailed = zerr.New("failed to stat markup source")

	// ErrArtifactStatFailed is returned when stating a compiled artifact fails for a reason other than absence.
	ErrArtifactStatFailed = zerr.New("failed to stat compiled artifact")

	// ErrConfigNotFound is returned when no fergus.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find fergus.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedVersion is returned when the config file declares an unknown version.
	ErrUnsupportedVersion = zerr.New("unsupported config version")

	// ErrRecordReadFailed is returned when a compile record cannot be read.
	ErrRecordReadFailed = zerr.New("failed to read compile record")

	// ErrRecordUnmarshalFailed is returned when a compile record cannot be decoded.
	ErrRecordUnmarshalFailed = zerr.New("failed to unmarshal compile record")

	// ErrRecordMarshalFailed is returned when a compile record cannot be encoded.
	ErrRecordMarshalFailed = zerr.New("failed to marshal compile record")

	// ErrRecordWriteFailed is returned when a compile record cannot be written.
	ErrRecordWriteFailed = zerr.New("failed to write compile record")

	// ErrRenderFailed is returned when the host renderer cannot execute a template.
	ErrRenderFailed = zerr.New("failed to render template")

	// ErrDataReadFailed is returned when template data cannot be loaded.
	ErrDataReadFailed = zerr.New("failed to read template data")

	// ErrBuildFailed is returned when precompiling the theme fails.
	ErrBuildFailed = zerr.New("theme build failed")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch template root")

	// ErrCleanFailed is returned when the cache cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean cache")
)
