package domain

import "time"

// CompileRecord describes the last successful compile of a markup source.
type CompileRecord struct {
	Rel          string    `json:"rel"`
	Source       string    `json:"source"`
	Artifact     string    `json:"artifact"`
	SourceHash   string    `json:"source_hash"`
	ArtifactHash string    `json:"artifact_hash"`
	CompiledAt   time.Time `json:"compiled_at"`
}
