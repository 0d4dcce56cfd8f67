package ports

import (
	"context"
	"io"
)

// Renderer is the host template engine that executes resolved templates.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render executes the template file at path with data and writes the result to w.
	Render(ctx context.Context, w io.Writer, path string, data map[string]any) error
}
