package ports

import "go.nivo.ch/panelctl/internal/core/domain"

// ConfigLoader defines the interface for loading the client configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load locates and reads the configuration, starting the file search in
	// the given working directory.
	Load(cwd string) (*domain.ClientConfig, error)
}
