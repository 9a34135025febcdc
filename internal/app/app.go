// Package app implements the application layer for panelctl.
package app

import (
	"context"
	"sync"

	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
	"go.nivo.ch/panelctl/internal/engine/panel"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// overviewConcurrency bounds the per-domain detail fetches during Overview.
const overviewConcurrency = 4

// App represents the main application logic. It owns one panel session per
// process; the session's object model and its caches live for the duration of
// a command invocation.
type App struct {
	configLoader ports.ConfigLoader
	newTransport ports.TransportFactory
	logger       ports.Logger

	mu      sync.Mutex
	account *panel.Account
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, factory ports.TransportFactory, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		newTransport: factory,
		logger:       log,
	}
}

// session returns the account object model, creating it on first use. The
// configuration is loaded from the working directory and environment; the
// account carries the caches, so all operations of one invocation must share
// it.
func (a *App) session(_ context.Context) (*panel.Account, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.account != nil {
		return a.account, nil
	}

	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	a.logger.Debug("session opened account=" + cfg.Login)
	a.account = panel.NewAccount(a.newTransport(cfg), cfg.Login)
	return a.account, nil
}

// rejected converts a soft mutation result into an error the CLI can exit on.
func rejected(done bool, err error, operation, subject string) error {
	if err != nil {
		return err
	}
	if !done {
		return zerr.With(zerr.With(domain.ErrOperationRejected, "operation", operation), "subject", subject)
	}
	return nil
}

// Settings returns the account-wide configuration snapshot.
func (a *App) Settings(ctx context.Context) (*panel.AccountSettings, error) {
	account, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	return account.Settings(ctx)
}

// Domains lists the account's domains.
func (a *App) Domains(ctx context.Context) ([]*panel.Domain, error) {
	account, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	return account.Domains(ctx)
}

// CreateDomain registers a new domain on the account.
func (a *App) CreateDomain(ctx context.Context, name string) error {
	account, err := a.session(ctx)
	if err != nil {
		return err
	}

	done, err := account.CreateDomain(ctx, name)
	return rejected(done, err, "create domain", name)
}

// DeleteDomain removes a domain and everything below it.
func (a *App) DeleteDomain(ctx context.Context, name string) error {
	dom, err := a.domain(ctx, name)
	if err != nil {
		return err
	}

	done, err := dom.Delete(ctx)
	return rejected(done, err, "delete domain", name)
}

// InstallCertificate deploys a TLS certificate for a domain.
func (a *App) InstallCertificate(ctx context.Context, domainName, certPEM, keyPEM, chainPEM string) error {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return err
	}
	return dom.InstallCertificate(ctx, certPEM, keyPEM, chainPEM)
}

// Subdomains lists the subdomains of a domain.
func (a *App) Subdomains(ctx context.Context, domainName string) ([]*panel.Subdomain, error) {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return dom.Subdomains(ctx)
}

// CreateSubdomain registers host below a domain, served from path.
func (a *App) CreateSubdomain(ctx context.Context, domainName, host, path string) error {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return err
	}

	done, err := dom.CreateSubdomain(ctx, host, path)
	return rejected(done, err, "create subdomain", host+"."+domainName)
}

// DeleteSubdomain removes a subdomain.
func (a *App) DeleteSubdomain(ctx context.Context, domainName, host string) error {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return err
	}

	subs, err := dom.Subdomains(ctx)
	if err != nil {
		return err
	}
	for _, s := range subs {
		if s.Host() == host {
			done, err := s.Delete(ctx)
			return rejected(done, err, "delete subdomain", s.Name())
		}
	}
	return zerr.With(zerr.With(domain.ErrResourceNotFound, "subdomain", host), "domain", domainName)
}

// Mailboxes lists the mail accounts of a domain.
func (a *App) Mailboxes(ctx context.Context, domainName string) ([]*panel.Mailbox, error) {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return dom.Mailboxes(ctx)
}

// CreateMailbox provisions local@domain with the given quota.
func (a *App) CreateMailbox(ctx context.Context, domainName, local, password string, quotaMB int64) error {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return err
	}

	done, err := dom.CreateMailbox(ctx, local, password, quotaMB)
	return rejected(done, err, "create mailbox", local+"@"+domainName)
}

// ChangeMailboxPassword rotates the password of local@domain.
func (a *App) ChangeMailboxPassword(ctx context.Context, domainName, local, password string) error {
	box, err := a.mailbox(ctx, domainName, local)
	if err != nil {
		return err
	}

	done, err := box.ChangePassword(ctx, password)
	return rejected(done, err, "change mailbox password", box.Address())
}

// DeleteMailbox removes local@domain.
func (a *App) DeleteMailbox(ctx context.Context, domainName, local string) error {
	box, err := a.mailbox(ctx, domainName, local)
	if err != nil {
		return err
	}

	done, err := box.Delete(ctx)
	return rejected(done, err, "delete mailbox", box.Address())
}

// Forwarders lists the mail forwarders of a domain.
func (a *App) Forwarders(ctx context.Context, domainName string) ([]*panel.Forwarder, error) {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return dom.Forwarders(ctx)
}

// CreateForwarder routes source@domain to the given targets.
func (a *App) CreateForwarder(ctx context.Context, domainName, source string, targets []string) error {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return err
	}

	done, err := dom.CreateForwarder(ctx, source, targets)
	return rejected(done, err, "create forwarder", source+"@"+domainName)
}

// DeleteForwarder removes the forwarder source@domain.
func (a *App) DeleteForwarder(ctx context.Context, domainName, source string) error {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return err
	}

	fwds, err := dom.Forwarders(ctx)
	if err != nil {
		return err
	}
	for _, f := range fwds {
		if f.Source() == source+"@"+domainName {
			done, err := f.Delete(ctx)
			return rejected(done, err, "delete forwarder", f.Source())
		}
	}
	return zerr.With(zerr.With(domain.ErrResourceNotFound, "forwarder", source), "domain", domainName)
}

// FtpAccounts lists FTP accounts. With a domain name the listing is scoped to
// that domain; without one it covers the whole account.
func (a *App) FtpAccounts(ctx context.Context, domainName string) ([]*panel.FtpAccount, error) {
	if domainName != "" {
		dom, err := a.domain(ctx, domainName)
		if err != nil {
			return nil, err
		}
		return dom.FtpAccounts(ctx)
	}

	account, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	return account.FtpAccounts(ctx)
}

// CreateFtpAccount provisions an FTP login below a domain.
func (a *App) CreateFtpAccount(ctx context.Context, domainName, username, password, directory string) error {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return err
	}

	done, err := dom.CreateFtpAccount(ctx, username, password, directory)
	return rejected(done, err, "create ftp account", username)
}

// ChangeFtpPassword rotates an FTP account's password.
func (a *App) ChangeFtpPassword(ctx context.Context, username, password string) error {
	ftp, err := a.ftpAccount(ctx, username)
	if err != nil {
		return err
	}

	done, err := ftp.ChangePassword(ctx, password)
	return rejected(done, err, "change ftp password", username)
}

// SetFtpQuota sets an FTP account's disk limit in megabytes.
func (a *App) SetFtpQuota(ctx context.Context, username string, limitMB int64) error {
	ftp, err := a.ftpAccount(ctx, username)
	if err != nil {
		return err
	}

	done, err := ftp.SetQuota(ctx, limitMB)
	return rejected(done, err, "set ftp quota", username)
}

// DeleteFtpAccount removes an FTP account.
func (a *App) DeleteFtpAccount(ctx context.Context, username string) error {
	ftp, err := a.ftpAccount(ctx, username)
	if err != nil {
		return err
	}

	done, err := ftp.Delete(ctx)
	return rejected(done, err, "delete ftp account", username)
}

// Databases lists the account's databases.
func (a *App) Databases(ctx context.Context) ([]*panel.Database, error) {
	account, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	return account.Databases(ctx)
}

// CreateDatabase provisions a new database.
func (a *App) CreateDatabase(ctx context.Context, name, password string) error {
	account, err := a.session(ctx)
	if err != nil {
		return err
	}

	done, err := account.CreateDatabase(ctx, name, password)
	return rejected(done, err, "create database", name)
}

// ChangeDatabasePassword rotates a database's password.
func (a *App) ChangeDatabasePassword(ctx context.Context, name, password string) error {
	db, err := a.database(ctx, name)
	if err != nil {
		return err
	}

	done, err := db.ChangePassword(ctx, password)
	return rejected(done, err, "change database password", name)
}

// DeleteDatabase removes a database.
func (a *App) DeleteDatabase(ctx context.Context, name string) error {
	db, err := a.database(ctx, name)
	if err != nil {
		return err
	}

	done, err := db.Delete(ctx)
	return rejected(done, err, "delete database", name)
}

// DNSRecords lists the DNS records of a domain's zone.
func (a *App) DNSRecords(ctx context.Context, domainName string) ([]*panel.DNSRecord, error) {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return dom.DNSRecords(ctx)
}

// AddDNSRecord creates a DNS record on a domain's zone.
func (a *App) AddDNSRecord(ctx context.Context, domainName, recordType, host, content string, priority int64) error {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return err
	}

	done, err := dom.AddDNSRecord(ctx, recordType, host, content, priority)
	return rejected(done, err, "add dns record", host)
}

// DeleteDNSRecord removes a DNS record by its panel-assigned identifier.
func (a *App) DeleteDNSRecord(ctx context.Context, domainName, id string) error {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return err
	}

	records, err := dom.DNSRecords(ctx)
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.ID() == id {
			done, err := r.Delete(ctx)
			return rejected(done, err, "delete dns record", id)
		}
	}
	return zerr.With(zerr.With(domain.ErrResourceNotFound, "record", id), "domain", domainName)
}

// Overview is a condensed account summary for the default command.
type Overview struct {
	Login       string
	Settings    *panel.AccountSettings
	Domains     []DomainOverview
	FtpAccounts int
	Databases   int
}

// DomainOverview summarizes one domain within an Overview.
type DomainOverview struct {
	Name       string
	Active     bool
	Subdomains int
	Mailboxes  int
	Forwarders int
}

// Overview assembles the account summary. The account-level listings share
// one cache and are fetched sequentially; the per-domain details each live in
// their own cache and are fetched concurrently.
func (a *App) Overview(ctx context.Context) (*Overview, error) {
	account, err := a.session(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := account.Settings(ctx)
	if err != nil {
		return nil, err
	}
	domains, err := account.Domains(ctx)
	if err != nil {
		return nil, err
	}
	ftp, err := account.FtpAccounts(ctx)
	if err != nil {
		return nil, err
	}
	dbs, err := account.Databases(ctx)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		Login:       account.Login(),
		Settings:    settings,
		Domains:     make([]DomainOverview, len(domains)),
		FtpAccounts: len(ftp),
		Databases:   len(dbs),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(overviewConcurrency)

	for i, dom := range domains {
		g.Go(func() error {
			subs, err := dom.Subdomains(ctx)
			if err != nil {
				return err
			}
			boxes, err := dom.Mailboxes(ctx)
			if err != nil {
				return err
			}
			fwds, err := dom.Forwarders(ctx)
			if err != nil {
				return err
			}

			overview.Domains[i] = DomainOverview{
				Name:       dom.Name(),
				Active:     dom.Active(),
				Subdomains: len(subs),
				Mailboxes:  len(boxes),
				Forwarders: len(fwds),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}

func (a *App) domain(ctx context.Context, name string) (*panel.Domain, error) {
	account, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	return account.Domain(ctx, name)
}

func (a *App) mailbox(ctx context.Context, domainName, local string) (*panel.Mailbox, error) {
	dom, err := a.domain(ctx, domainName)
	if err != nil {
		return nil, err
	}

	boxes, err := dom.Mailboxes(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range boxes {
		if m.Local() == local {
			return m, nil
		}
	}
	return nil, zerr.With(zerr.With(domain.ErrResourceNotFound, "mailbox", local), "domain", domainName)
}

// ftpAccount resolves an FTP login through the account-wide listing, which
// covers both account-scoped and domain-scoped entries.
func (a *App) ftpAccount(ctx context.Context, username string) (*panel.FtpAccount, error) {
	account, err := a.session(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := account.FtpAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range accounts {
		if f.Username() == username {
			return f, nil
		}
	}
	return nil, zerr.With(domain.ErrResourceNotFound, "ftp", username)
}

func (a *App) database(ctx context.Context, name string) (*panel.Database, error) {
	account, err := a.session(ctx)
	if err != nil {
		return nil, err
	}

	dbs, err := account.Databases(ctx)
	if err != nil {
		return nil, err
	}
	for _, db := range dbs {
		if db.Name() == name {
			return db, nil
		}
	}
	return nil, zerr.With(domain.ErrResourceNotFound, "database", name)
}
