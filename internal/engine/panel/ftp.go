package panel

import (
	"context"

	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
	"go.trai.ch/zerr"
)

// FtpAccount is one FTP login. It owns no cache of its own; mutations clear
// the listings of the domain it was hydrated under (when domain scoped) and
// of the account.
type FtpAccount struct {
	account   *Account
	dom       *Domain // nil when hydrated from the account-wide listing
	transport ports.Transport

	username  string
	directory string
	quota     domain.Quota
	active    bool
}

// newFtpAccount hydrates an FTP account from a listing row. As with domains,
// a snapshot declaring a foreign owner is rejected.
func newFtpAccount(account *Account, dom *Domain, snap domain.Snapshot) (*FtpAccount, error) {
	declared, err := snap.Field("owner")
	if err != nil {
		return nil, err
	}
	if declared != account.Login() {
		return nil, zerr.With(zerr.With(domain.ErrOwnerMismatch, "declared", declared), "account", account.Login())
	}

	username, err := snap.Field("username")
	if err != nil {
		return nil, err
	}
	directory, err := snap.Field("directory")
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

	return &FtpAccount{
		account:   account,
		dom:       dom,
		transport: account.transport,
		username:  username,
		directory: directory,
		quota:     quota,
		active:    active,
	}, nil
}

// Username returns the FTP login name.
func (f *FtpAccount) Username() string { return f.username }

// Directory returns the login's root directory.
func (f *FtpAccount) Directory() string { return f.directory }

// Quota returns the login's disk usage and limit.
func (f *FtpAccount) Quota() domain.Quota { return f.quota }

// Active reports whether the login is enabled.
func (f *FtpAccount) Active() bool { return f.active }

// invalidate clears the listings that contain this login: the scoping
// domain's, if any, and the account's.
func (f *FtpAccount) invalidate() {
	if f.dom != nil {
		f.dom.ClearCache()
	}
	f.account.ClearCache()
}

// ChangePassword sets a new password for the login. A rejection by the panel
// reports false.
func (f *FtpAccount) ChangePassword(ctx context.Context, password string) (bool, error) {
	return applySoft(ctx, f.transport, cmdUpdateFtpAccount, map[string]string{
		"username": f.username,
		"password": password,
	}, f.invalidate)
}

// SetQuota changes the login's disk limit in megabytes. A rejection by the
// panel reports false.
func (f *FtpAccount) SetQuota(ctx context.Context, limitMB int64) (bool, error) {
	return applySoft(ctx, f.transport, cmdUpdateFtpAccount, map[string]string{
		"username": f.username,
		"quota":    formatInt(limitMB),
	}, f.invalidate)
}

// Delete removes the login. A rejection by the panel reports false.
func (f *FtpAccount) Delete(ctx context.Context) (bool, error) {
	return applySoft(ctx, f.transport, cmdDeleteFtpAccount, map[string]string{
		"username": f.username,
	}, f.invalidate)
}
