package panel

import (
	"context"

	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
)

// DNSRecord is one record of a domain's zone. It owns no cache; mutations
// clear the owning domain's listings.
type DNSRecord struct {
	dom       *Domain
	transport ports.Transport

	id       string
	typ      string
	host     string
	content  string
	priority int64
}

func newDNSRecord(dom *Domain, snap domain.Snapshot) (*DNSRecord, error) {
	id, err := snap.Field("record_id")
	if err != nil {
		return nil, err
	}
	typ, err := snap.Field("type")
	if err != nil {
		return nil, err
	}
	host, err := snap.Field("host")
	if err != nil {
		return nil, err
	}
	content, err := snap.Field("content")
	if err != nil {
		return nil, err
	}
	priority, err := snap.IntField("priority")
	if err != nil {
		return nil, err
	}

	return &DNSRecord{
		dom:       dom,
		transport: dom.transport,
		id:        id,
		typ:       typ,
		host:      host,
		content:   content,
		priority:  priority,
	}, nil
}

// ID returns the panel's identifier for the record.
func (r *DNSRecord) ID() string { return r.id }

// Type returns the record type, e.g. "A" or "MX".
func (r *DNSRecord) Type() string { return r.typ }

// Host returns the record's host label.
func (r *DNSRecord) Host() string { return r.host }

// Content returns the record's value.
func (r *DNSRecord) Content() string { return r.content }

// Priority returns the record priority; zero for types without one.
func (r *DNSRecord) Priority() int64 { return r.priority }

// Delete removes the record from the zone. A rejection by the panel reports
// false.
func (r *DNSRecord) Delete(ctx context.Context) (bool, error) {
	return applySoft(ctx, r.transport, cmdDeleteDNSRecord, map[string]string{
		"domain":    r.dom.Name(),
		"record_id": r.id,
	}, r.dom.ClearCache)
}
