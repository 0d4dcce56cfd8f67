package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fergus/internal/adapters/cas"      //nolint:depguard // Wired in app layer
	"go.trai.ch/fergus/internal/adapters/compiler" //nolint:depguard // Wired in app layer
	"go.trai.ch/fergus/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fergus/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/fergus/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fergus/internal/adapters/render"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fergus/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/fergus/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			compiler.NodeID,
			fs.NodeID,
			cas.NodeID,
			render.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[ports.CompilerProvider](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.Filesystem](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RecordStore](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, provider, fsys, store, renderer, w, log), nil
}
