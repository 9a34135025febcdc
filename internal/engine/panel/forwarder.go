package panel

import (
	"context"

	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
)

// Forwarder routes mail for one address below a domain to a list of targets.
// It owns no cache; mutations clear the owning domain's listings.
type Forwarder struct {
	dom       *Domain
	transport ports.Transport

	source  string
	targets []string
	active  bool
}

func newForwarder(dom *Domain, snap domain.Snapshot) (*Forwarder, error) {
	source, err := snap.Field("source")
	if err != nil {
		return nil, err
	}
	targets, err := snap.ListField("targets")
	if err != nil {
		return nil, err
	}
	active, err := snap.BoolField("active")
	if err != nil {
		return nil, err
	}

	return &Forwarder{
		dom:       dom,
		transport: dom.transport,
		source:    source,
		targets:   targets,
		active:    active,
	}, nil
}

// Source returns the forwarded address.
func (f *Forwarder) Source() string {
	return f.source + "@" + f.dom.Name()
}

// Targets returns the forwarding destinations.
func (f *Forwarder) Targets() []string { return f.targets }

// Active reports whether the forwarder is enabled.
func (f *Forwarder) Active() bool { return f.active }

// Delete removes the forwarder. A rejection by the panel reports false.
func (f *Forwarder) Delete(ctx context.Context) (bool, error) {
	return applySoft(ctx, f.transport, cmdDeleteForwarder, map[string]string{
		"domain": f.dom.Name(),
		"source": f.source,
	}, f.dom.ClearCache)
}
