package httpapi

import (
	"context"

	"github.com/grindlemire/graft"
	"go.nivo.ch/panelctl/internal/adapters/logger"
	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
)

// NodeID is the unique identifier for the transport factory Graft node.
const NodeID graft.ID = "adapter.transport"

func init() {
	graft.Register(graft.Node[ports.TransportFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.TransportFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func(cfg *domain.ClientConfig) ports.Transport {
				return NewClient(cfg, log)
			}, nil
		},
	})
}
