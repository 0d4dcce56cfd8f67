package ports

import "go.trai.ch/fergus/internal/core/domain"

// ConfigLoader defines the interface for loading the theme configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the theme configuration from the given working directory and resolves it.
	Load(cwd string) (*domain.Theme, error)
}
