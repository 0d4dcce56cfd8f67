// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/fergus/internal/core/domain"
)

// Compiler defines the interface of the external markup compiler.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile translates markup source into host template text.
	// label identifies the source in diagnostics, typically its path.
	// Compilation must be a pure function of source and opts.
	Compile(ctx context.Context, source []byte, label string, opts domain.CompileOptions) ([]byte, error)
}

// CompilerProvider builds the compiler configured for a theme.
type CompilerProvider interface {
	// CompilerFor returns the compiler chain for the given theme.
	CompilerFor(theme domain.Theme) (Compiler, error)
}
