package panel

import (
	"context"

	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
	"go.trai.ch/zerr"
)

// Domain is one hosted domain of the account. It owns the caches for its
// subdomain, mailbox, forwarder and DNS listings and holds a non-owning
// back-reference to the account, used only to propagate invalidation.
type Domain struct {
	owner     *Account
	transport ports.Transport
	cache     *domain.Cache

	name         string
	diskQuota    domain.Quota
	trafficQuota domain.Quota
	active       bool
}

// newDomain hydrates a domain from a listing row. The row's declared owner
// must match the session account; a mismatched snapshot is rejected rather
// than silently attached to the wrong account.
func newDomain(owner *Account, snap domain.Snapshot) (*Domain, error) {
	declared, err := snap.Field("owner")
	if err != nil {
		return nil, err
	}
	if declared != owner.Login() {
		return nil, zerr.With(zerr.With(domain.ErrOwnerMismatch, "declared", declared), "account", owner.Login())
	}

	name, err := snap.Field("name")
	if err != nil {
		return nil, err
	}
	disk, err := snap.QuotaField("disk_quota")
	if err != nil {
		return nil, err
	}
	traffic, err := snap.QuotaField("traffic_quota")
	if err != nil {
		return nil, err
	}
	active, err := snap.BoolField("active")
	if err != nil {
		return nil, err
	}

	return &Domain{
		owner:        owner,
		transport:    owner.transport,
		cache:        domain.NewCache(),
		name:         name,
		diskQuota:    disk,
		trafficQuota: traffic,
		active:       active,
	}, nil
}

// Name returns the fully qualified domain name.
func (d *Domain) Name() string { return d.name }

// DiskQuota returns the domain's disk usage and limit.
func (d *Domain) DiskQuota() domain.Quota { return d.diskQuota }

// TrafficQuota returns the domain's traffic usage and limit.
func (d *Domain) TrafficQuota() domain.Quota { return d.trafficQuota }

// Active reports whether the domain is live.
func (d *Domain) Active() bool { return d.active }

// Owner returns the account the domain belongs to.
func (d *Domain) Owner() *Account { return d.owner }

// ClearCache drops every cached listing on the domain.
func (d *Domain) ClearCache() {
	d.cache.Clear()
}

// invalidate clears the domain's own listings and the account's aggregate
// listings, which may embed stale per-domain data.
func (d *Domain) invalidate() {
	d.cache.Clear()
	d.owner.ClearCache()
}

// Subdomains returns the domain's subdomains, cached until the next
// invalidation.
func (d *Domain) Subdomains(ctx context.Context) ([]*Subdomain, error) {
	return domain.Lookup(d.cache, domain.KeySubdomains, func() ([]*Subdomain, error) {
		resp, err := d.transport.Query(ctx, cmdGetSubdomains, d.params(nil))
		if err != nil {
			return nil, err
		}

		subs := make([]*Subdomain, 0, len(resp.Rows))
		for _, row := range resp.Rows {
			s, err := newSubdomain(d, row)
			if err != nil {
				return nil, err
			}
			subs = append(subs, s)
		}
		return subs, nil
	})
}

// Mailboxes returns the domain's mail accounts, cached until the next
// invalidation.
func (d *Domain) Mailboxes(ctx context.Context) ([]*Mailbox, error) {
	return domain.Lookup(d.cache, domain.KeyMailboxes, func() ([]*Mailbox, error) {
		resp, err := d.transport.Query(ctx, cmdGetMailboxes, d.params(nil))
		if err != nil {
			return nil, err
		}

		boxes := make([]*Mailbox, 0, len(resp.Rows))
		for _, row := range resp.Rows {
			m, err := newMailbox(d, row)
			if err != nil {
				return nil, err
			}
			boxes = append(boxes, m)
		}
		return boxes, nil
	})
}

// Forwarders returns the domain's mail forwarders, cached until the next
// invalidation.
func (d *Domain) Forwarders(ctx context.Context) ([]*Forwarder, error) {
	return domain.Lookup(d.cache, domain.KeyForwarders, func() ([]*Forwarder, error) {
		resp, err := d.transport.Query(ctx, cmdGetForwarders, d.params(nil))
		if err != nil {
			return nil, err
		}

		fwds := make([]*Forwarder, 0, len(resp.Rows))
		for _, row := range resp.Rows {
			f, err := newForwarder(d, row)
			if err != nil {
				return nil, err
			}
			fwds = append(fwds, f)
		}
		return fwds, nil
	})
}

// FtpAccounts returns the FTP accounts rooted below this domain, cached
// until the next invalidation.
func (d *Domain) FtpAccounts(ctx context.Context) ([]*FtpAccount, error) {
	return domain.Lookup(d.cache, domain.KeyFtp, func() ([]*FtpAccount, error) {
		resp, err := d.transport.Query(ctx, cmdGetFtpAccounts, d.params(nil))
		if err != nil {
			return nil, err
		}

		accounts := make([]*FtpAccount, 0, len(resp.Rows))
		for _, row := range resp.Rows {
			f, err := newFtpAccount(d.owner, d, row)
			if err != nil {
				return nil, err
			}
			accounts = append(accounts, f)
		}
		return accounts, nil
	})
}

// DNSRecords returns the domain's DNS records, cached until the next
// invalidation.
func (d *Domain) DNSRecords(ctx context.Context) ([]*DNSRecord, error) {
	return domain.Lookup(d.cache, domain.KeyDNSRecords, func() ([]*DNSRecord, error) {
		resp, err := d.transport.Query(ctx, cmdGetDNSRecords, d.params(nil))
		if err != nil {
			return nil, err
		}

		records := make([]*DNSRecord, 0, len(resp.Rows))
		for _, row := range resp.Rows {
			r, err := newDNSRecord(d, row)
			if err != nil {
				return nil, err
			}
			records = append(records, r)
		}
		return records, nil
	})
}

// CreateSubdomain registers host below the domain. A rejection by the panel
// reports false.
func (d *Domain) CreateSubdomain(ctx context.Context, host, path string) (bool, error) {
	return applySoft(ctx, d.transport, cmdAddSubdomain, d.params(map[string]string{
		"subdomain": host,
		"path":      path,
	}), d.invalidate)
}

// CreateMailbox provisions a mail account local@domain. A rejection by the
// panel reports false.
func (d *Domain) CreateMailbox(ctx context.Context, local, password string, quotaMB int64) (bool, error) {
	return applySoft(ctx, d.transport, cmdAddMailbox, d.params(map[string]string{
		"local":    local,
		"password": password,
		"quota":    formatInt(quotaMB),
	}), d.invalidate)
}

// CreateForwarder routes source@domain to the given targets. A rejection by
// the panel reports false.
func (d *Domain) CreateForwarder(ctx context.Context, source string, targets []string) (bool, error) {
	return applySoft(ctx, d.transport, cmdAddForwarder, d.params(map[string]string{
		"source":  source,
		"targets": joinList(targets),
	}), d.invalidate)
}

// CreateFtpAccount provisions an FTP login rooted at directory below the
// domain. A rejection by the panel reports false.
func (d *Domain) CreateFtpAccount(ctx context.Context, username, password, directory string) (bool, error) {
	return applySoft(ctx, d.transport, cmdAddFtpAccount, d.params(map[string]string{
		"username":  username,
		"password":  password,
		"directory": directory,
	}), d.invalidate)
}

// AddDNSRecord creates a DNS record on the domain's zone. A rejection by the
// panel reports false.
func (d *Domain) AddDNSRecord(ctx context.Context, recordType, host, content string, priority int64) (bool, error) {
	return applySoft(ctx, d.transport, cmdAddDNSRecord, d.params(map[string]string{
		"type":     recordType,
		"host":     host,
		"content":  content,
		"priority": formatInt(priority),
	}), d.invalidate)
}

// Delete removes the domain and everything below it. A rejection by the
// panel reports false.
func (d *Domain) Delete(ctx context.Context) (bool, error) {
	return applySoft(ctx, d.transport, cmdDeleteDomain, d.params(nil), d.invalidate)
}

// InstallCertificate deploys a TLS certificate for the domain. Certificate
// operations are exceptional: a panel rejection raises instead of failing
// softly, carrying the panel's details message.
func (d *Domain) InstallCertificate(ctx context.Context, certPEM, keyPEM, chainPEM string) error {
	_, err := d.transport.Apply(ctx, cmdAddCertificate, d.params(map[string]string{
		"certificate": certPEM,
		"key":         keyPEM,
		"chain":       chainPEM,
	}))
	if err != nil {
		return zerr.Wrap(err, "certificate install failed")
	}

	d.invalidate()
	return nil
}

// params merges the domain selector into extra command parameters.
func (d *Domain) params(extra map[string]string) map[string]string {
	p := map[string]string{"domain": d.name}
	for k, v := range extra {
		p[k] = v
	}
	return p
}
