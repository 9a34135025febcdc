package panel

import (
	"context"

	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
	"go.trai.ch/zerr"
)

// Account is the session's user context. It is the root of the ownership
// chain: domains, account-scoped FTP accounts and databases are hydrated
// through it, and child mutations propagate their invalidation here.
type Account struct {
	transport ports.Transport
	login     string
	cache     *domain.Cache
}

// NewAccount creates the user context for login. No remote call is made;
// listings are fetched lazily on first access.
func NewAccount(transport ports.Transport, login string) *Account {
	return &Account{
		transport: transport,
		login:     login,
		cache:     domain.NewCache(),
	}
}

// Login returns the account name the session runs against.
func (a *Account) Login() string {
	return a.login
}

// ClearCache drops every cached listing on the account. Child resources call
// this after a successful mutation; it is the only way a child touches its
// owner.
func (a *Account) ClearCache() {
	a.cache.Clear()
}

// AccountSettings is the account-wide configuration snapshot.
type AccountSettings struct {
	DiskQuota    domain.Quota
	TrafficQuota domain.Quota
	MaxDomains   int64
	MaxMailboxes int64
	MaxDatabases int64
}

// Settings returns the account settings, cached until the next invalidation.
func (a *Account) Settings(ctx context.Context) (*AccountSettings, error) {
	return domain.Lookup(a.cache, domain.KeySettings, func() (*AccountSettings, error) {
		resp, err := a.transport.Query(ctx, cmdGetSettings, nil)
		if err != nil {
			return nil, err
		}
		return newAccountSettings(resp.Fields)
	})
}

func newAccountSettings(snap domain.Snapshot) (*AccountSettings, error) {
	disk, err := snap.QuotaField("disk_quota")
	if err != nil {
		return nil, err
	}
	traffic, err := snap.QuotaField("traffic_quota")
	if err != nil {
		return nil, err
	}
	maxDomains, err := snap.IntField("max_domains")
	if err != nil {
		return nil, err
	}
	maxMailboxes, err := snap.IntField("max_mailaccounts")
	if err != nil {
		return nil, err
	}
	maxDatabases, err := snap.IntField("max_databases")
	if err != nil {
		return nil, err
	}

	return &AccountSettings{
		DiskQuota:    disk,
		TrafficQuota: traffic,
		MaxDomains:   maxDomains,
		MaxMailboxes: maxMailboxes,
		MaxDatabases: maxDatabases,
	}, nil
}

// Domains returns every domain of the account, cached until the next
// invalidation.
func (a *Account) Domains(ctx context.Context) ([]*Domain, error) {
	return domain.Lookup(a.cache, domain.KeyDomains, func() ([]*Domain, error) {
		resp, err := a.transport.Query(ctx, cmdGetDomains, nil)
		if err != nil {
			return nil, err
		}

		domains := make([]*Domain, 0, len(resp.Rows))
		for _, row := range resp.Rows {
			d, err := newDomain(a, row)
			if err != nil {
				return nil, err
			}
			domains = append(domains, d)
		}
		return domains, nil
	})
}

// Domain returns the account's domain with the given name.
func (a *Account) Domain(ctx context.Context, name string) (*Domain, error) {
	domains, err := a.Domains(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range domains {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, zerr.With(domain.ErrResourceNotFound, "domain", name)
}

// CreateDomain registers a new domain on the account. A rejection by the
// panel (quota reached, name taken) reports false.
func (a *Account) CreateDomain(ctx context.Context, name string) (bool, error) {
	return applySoft(ctx, a.transport, cmdAddDomain, map[string]string{
		"domain": name,
	}, a.cache.Clear)
}

// FtpAccounts returns every FTP account of the account, cached until the
// next invalidation.
func (a *Account) FtpAccounts(ctx context.Context) ([]*FtpAccount, error) {
	return domain.Lookup(a.cache, domain.KeyFtp, func() ([]*FtpAccount, error) {
		resp, err := a.transport.Query(ctx, cmdGetFtpAccounts, nil)
		if err != nil {
			return nil, err
		}

		accounts := make([]*FtpAccount, 0, len(resp.Rows))
		for _, row := range resp.Rows {
			f, err := newFtpAccount(a, nil, row)
			if err != nil {
				return nil, err
			}
			accounts = append(accounts, f)
		}
		return accounts, nil
	})
}

// Databases returns every database of the account, cached until the next
// invalidation.
func (a *Account) Databases(ctx context.Context) ([]*Database, error) {
	return domain.Lookup(a.cache, domain.KeyDatabases, func() ([]*Database, error) {
		resp, err := a.transport.Query(ctx, cmdGetDatabases, nil)
		if err != nil {
			return nil, err
		}

		dbs := make([]*Database, 0, len(resp.Rows))
		for _, row := range resp.Rows {
			db, err := newDatabase(a, row)
			if err != nil {
				return nil, err
			}
			dbs = append(dbs, db)
		}
		return dbs, nil
	})
}

// CreateDatabase provisions a new database. A rejection by the panel reports
// false.
func (a *Account) CreateDatabase(ctx context.Context, name, password string) (bool, error) {
	return applySoft(ctx, a.transport, cmdAddDatabase, map[string]string{
		"database": name,
		"password": password,
	}, a.cache.Clear)
}
