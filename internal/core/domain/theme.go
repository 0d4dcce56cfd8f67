package domain

// CompilerSpec describes how to invoke the external markup compiler.
type CompilerSpec struct {
	// Cmd is the command and its arguments. The source is written to stdin.
	Cmd []string
	// Env holds extra environment variables for the compiler process.
	Env map[string]string
	// Dir is the working directory of the compiler process.
	Dir string
}

// Theme is the resolved configuration of one theme.
type Theme struct {
	Name        string
	Root        string
	CacheRoot   string
	SourceExt   string
	ArtifactExt string
	Options     CompileOptions
	Compiler    CompilerSpec
	Minify      bool
}

// RecordsRoot returns the directory holding compile records for the theme.
func (t Theme) RecordsRoot() string {
	return RecordsPath(t.CacheRoot)
}
