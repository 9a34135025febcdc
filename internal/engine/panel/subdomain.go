package panel

import (
	"context"

	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
)

// Subdomain is one host below a domain. It owns no cache; mutations clear
// the owning domain's listings.
type Subdomain struct {
	dom       *Domain
	transport ports.Transport

	host   string
	path   string
	active bool
}

func newSubdomain(dom *Domain, snap domain.Snapshot) (*Subdomain, error) {
	host, err := snap.Field("host")
	if err != nil {
		return nil, err
	}
	path, err := snap.Field("path")
	if err != nil {
		return nil, err
	}
	active, err := snap.BoolField("active")
	if err != nil {
		return nil, err
	}

	return &Subdomain{
		dom:       dom,
		transport: dom.transport,
		host:      host,
		path:      path,
		active:    active,
	}, nil
}

// Name returns the fully qualified subdomain name.
func (s *Subdomain) Name() string {
	return s.host + "." + s.dom.Name()
}

// Host returns the host label below the domain.
func (s *Subdomain) Host() string { return s.host }

// Path returns the document root relative to the domain's root.
func (s *Subdomain) Path() string { return s.path }

// Active reports whether the subdomain is served.
func (s *Subdomain) Active() bool { return s.active }

// Delete removes the subdomain. A rejection by the panel reports false.
func (s *Subdomain) Delete(ctx context.Context) (bool, error) {
	return applySoft(ctx, s.transport, cmdDeleteSubdomain, map[string]string{
		"domain":    s.dom.Name(),
		"subdomain": s.host,
	}, s.dom.ClearCache)
}
