// Package domain contains the core types of the template cache.
package domain

import "time"

// TemplatePath is a template request resolved into its source and artifact locations.
type TemplatePath struct {
	// Request is the path as requested by the host.
	Request string
	// Rel is the slash-separated source path relative to the template root.
	Rel string
	// Source is the absolute path of the markup source.
	Source string
	// Artifact is the absolute path of the compiled artifact under the cache root.
	Artifact string
}

// Freshness describes whether a compiled artifact can be used as is.
type Freshness uint8

const (
	// Missing indicates that no artifact exists yet.
	Missing Freshness = iota
	// Stale indicates that the artifact is not newer than its source.
	Stale
	// Fresh indicates that the artifact is strictly newer than its source.
	Fresh
)

// String returns the lowercase name of the freshness state.
func (f Freshness) String() string {
	switch f {
	case Missing:
		return "missing"
	case Stale:
		return "stale"
	case Fresh:
		return "fresh"
	default:
		return "unknown"
	}
}

// CheckFreshness compares the modification times of a source and its artifact.
// An artifact is fresh only when it exists and is strictly newer than the source;
// equal timestamps count as stale.
func CheckFreshness(sourceMod, artifactMod time.Time, artifactExists bool) Freshness {
	if !artifactExists {
		return Missing
	}
	if artifactMod.After(sourceMod) {
		return Fresh
	}
	return Stale
}
