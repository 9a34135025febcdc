package panel

import (
	"context"

	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
	"go.trai.ch/zerr"
)

// Database is one database of the account. It owns no cache; mutations clear
// the account's listings.
type Database struct {
	account   *Account
	transport ports.Transport

	name   string
	sizeMB int64
}

func newDatabase(account *Account, snap domain.Snapshot) (*Database, error) {
	declared, err := snap.Field("owner")
	if err != nil {
		return nil, err
	}
	if declared != account.Login() {
		return nil, zerr.With(zerr.With(domain.ErrOwnerMismatch, "declared", declared), "account", account.Login())
	}

	name, err := snap.Field("name")
	if err != nil {
		return nil, err
	}
	size, err := snap.IntField("size")
	if err != nil {
		return nil, err
	}

	return &Database{
		account:   account,
		transport: account.transport,
		name:      name,
		sizeMB:    size,
	}, nil
}

// Name returns the database name.
func (db *Database) Name() string { return db.name }

// SizeMB returns the database size in megabytes.
func (db *Database) SizeMB() int64 { return db.sizeMB }

// ChangePassword sets a new password for the database user. A rejection by
// the panel reports false.
func (db *Database) ChangePassword(ctx context.Context, password string) (bool, error) {
	return applySoft(ctx, db.transport, cmdUpdateDatabase, map[string]string{
		"database": db.name,
		"password": password,
	}, db.account.ClearCache)
}

// Delete drops the database. A rejection by the panel reports false.
func (db *Database) Delete(ctx context.Context) (bool, error) {
	return applySoft(ctx, db.transport, cmdDeleteDatabase, map[string]string{
		"database": db.name,
	}, db.account.ClearCache)
}
