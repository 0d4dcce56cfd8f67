package compiler

import (
	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/fergus/internal/core/ports"
)

// Provider builds the compiler chain of a theme.
type Provider struct{}

// NewProvider creates a new Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// CompilerFor returns the exec compiler of theme, wrapped in a Minifier when
// the theme asks for minified output.
func (p *Provider) CompilerFor(theme domain.Theme) (ports.Compiler, error) {
	base, err := NewExecCompiler(theme.Compiler)
	if err != nil {
		return nil, err
	}
	if theme.Minify {
		return NewMinifier(base), nil
	}
	return base, nil
}
