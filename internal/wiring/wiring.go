// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.nivo.ch/panelctl/internal/adapters/config"
	_ "go.nivo.ch/panelctl/internal/adapters/httpapi"
	_ "go.nivo.ch/panelctl/internal/adapters/logger"
	_ "go.nivo.ch/panelctl/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.nivo.ch/panelctl/internal/app"
)
