// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fergus/internal/adapters/cas"
	_ "go.trai.ch/fergus/internal/adapters/compiler"
	_ "go.trai.ch/fergus/internal/adapters/config"
	_ "go.trai.ch/fergus/internal/adapters/fs"
	_ "go.trai.ch/fergus/internal/adapters/logger"
	_ "go.trai.ch/fergus/internal/adapters/render"
	_ "go.trai.ch/fergus/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/fergus/internal/app"
)
