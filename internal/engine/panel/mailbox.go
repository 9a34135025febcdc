package panel

import (
	"context"

	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
)

// Mailbox is one mail account below a domain. It owns no cache; mutations
// clear the owning domain's listings.
type Mailbox struct {
	dom       *Domain
	transport ports.Transport

	local  string
	quota  domain.Quota
	active bool
}

func newMailbox(dom *Domain, snap domain.Snapshot) (*Mailbox, error) {
	local, err := snap.Field("local")
	if err != nil {
		return nil, err
	}
	quota, err := snap.QuotaField("quota")
	if err != nil {
		return nil, err
	}
	active, err := snap.BoolField("active")
	if err != nil {
		return nil, err
	}

	return &Mailbox{
		dom:       dom,
		transport: dom.transport,
		local:     local,
		quota:     quota,
		active:    active,
	}, nil
}

// Address returns the full mail address.
func (m *Mailbox) Address() string {
	return m.local + "@" + m.dom.Name()
}

// Local returns the local part of the address.
func (m *Mailbox) Local() string { return m.local }

// Quota returns the mailbox's storage usage and limit.
func (m *Mailbox) Quota() domain.Quota { return m.quota }

// Active reports whether the mailbox accepts mail.
func (m *Mailbox) Active() bool { return m.active }

// ChangePassword sets a new password for the mailbox. A rejection by the
// panel reports false.
func (m *Mailbox) ChangePassword(ctx context.Context, password string) (bool, error) {
	return applySoft(ctx, m.transport, cmdUpdateMailbox, map[string]string{
		"domain":   m.dom.Name(),
		"local":    m.local,
		"password": password,
	}, m.dom.ClearCache)
}

// Delete removes the mailbox and its stored mail. A rejection by the panel
// reports false.
func (m *Mailbox) Delete(ctx context.Context) (bool, error) {
	return applySoft(ctx, m.transport, cmdDeleteMailbox, map[string]string{
		"domain": m.dom.Name(),
		"local":  m.local,
	}, m.dom.ClearCache)
}
