// Package ports defines the core interfaces of the panel client.
package ports

import (
	"context"

	"go.nivo.ch/panelctl/internal/core/domain"
)

// Transport invokes named commands against the panel API. Both variants are
// synchronous and block for the full round trip. A reply whose embedded error
// indicator is non-zero is surfaced as domain.ErrCommandRejected; transport
// level failures are returned unchanged.
//
//go:generate mockgen -source=transport.go -destination=mocks/mock_transport.go -package=mocks
type Transport interface {
	// Query invokes a read-only command.
	Query(ctx context.Context, command string, params map[string]string) (*domain.Response, error)

	// Apply invokes a mutating command.
	Apply(ctx context.Context, command string, params map[string]string) (*domain.Response, error)
}

// TransportFactory builds a Transport for a loaded client configuration. The
// configuration is only available at command time, after the loader has run,
// so adapters are registered as factories rather than finished transports.
type TransportFactory func(cfg *domain.ClientConfig) Transport
