package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fergus/internal/core/ports"
)

// NodeID is the unique identifier for the compiler provider Graft node.
const NodeID graft.ID = "adapter.compiler_provider"

func init() {
	graft.Register(graft.Node[ports.CompilerProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CompilerProvider, error) {
			return NewProvider(), nil
		},
	})
}
