package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.nivo.ch/panelctl/internal/app"
	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
	"go.nivo.ch/panelctl/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const testLogin = "alice"

// newApp wires an App against a mocked loader and transport. The loader is
// expected to run at most once: the session must be shared across operations.
func newApp(t *testing.T) (*app.App, *mocks.MockTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(&domain.ClientConfig{
		Endpoint: "https://panel.example.com/api",
		Login:    testLogin,
		Password: "hunter2",
	}, nil).MaxTimes(1)

	transport := mocks.NewMockTransport(ctrl)
	factory := ports.TransportFactory(func(_ *domain.ClientConfig) ports.Transport {
		return transport
	})

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	return app.New(loader, factory, logger), transport
}

func okResponse() *domain.Response {
	return &domain.Response{Fields: domain.Snapshot{"error": "0"}}
}

func listResponse(rows ...domain.Snapshot) *domain.Response {
	return &domain.Response{Fields: domain.Snapshot{"error": "0"}, Rows: rows}
}

func domainRow(name string) domain.Snapshot {
	return domain.Snapshot{
		"owner":         testLogin,
		"name":          name,
		"disk_quota":    "100/1000",
		"traffic_quota": "5/unlimited",
		"active":        "1",
	}
}

func mailboxRow(local string) domain.Snapshot {
	return domain.Snapshot{"local": local, "quota": "10/100", "active": "1"}
}

func TestApp_CreateDomain(t *testing.T) {
	a, transport := newApp(t)

	transport.EXPECT().
		Apply(gomock.Any(), "add_domain", map[string]string{"domain": "example.org"}).
		Return(okResponse(), nil)

	require.NoError(t, a.CreateDomain(context.Background(), "example.org"))
}

func TestApp_CreateDomain_Rejected(t *testing.T) {
	a, transport := newApp(t)

	transport.EXPECT().
		Apply(gomock.Any(), "add_domain", gomock.Any()).
		Return(nil, zerr.With(domain.ErrCommandRejected, "details", "domain limit reached"))

	err := a.CreateDomain(context.Background(), "example.org")
	assert.ErrorIs(t, err, domain.ErrOperationRejected)
}

func TestApp_SessionIsShared(t *testing.T) {
	a, transport := newApp(t)

	// Two listings, one config load (enforced by MaxTimes on the loader) and
	// one fetch (enforced here).
	transport.EXPECT().
		Query(gomock.Any(), "get_domains", gomock.Nil()).
		Return(listResponse(domainRow("example.org")), nil).
		Times(1)

	first, err := a.Domains(context.Background())
	require.NoError(t, err)
	second, err := a.Domains(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestApp_DeleteMailbox_NotFound(t *testing.T) {
	a, transport := newApp(t)

	transport.EXPECT().
		Query(gomock.Any(), "get_domains", gomock.Nil()).
		Return(listResponse(domainRow("example.org")), nil)
	transport.EXPECT().
		Query(gomock.Any(), "get_mailaccounts", map[string]string{"domain": "example.org"}).
		Return(listResponse(), nil)

	err := a.DeleteMailbox(context.Background(), "example.org", "ghost")
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}

func TestApp_ChangeMailboxPassword(t *testing.T) {
	a, transport := newApp(t)

	transport.EXPECT().
		Query(gomock.Any(), "get_domains", gomock.Nil()).
		Return(listResponse(domainRow("example.org")), nil)
	transport.EXPECT().
		Query(gomock.Any(), "get_mailaccounts", map[string]string{"domain": "example.org"}).
		Return(listResponse(mailboxRow("info")), nil)
	transport.EXPECT().
		Apply(gomock.Any(), "update_mailaccount", gomock.Any()).
		Return(okResponse(), nil)

	require.NoError(t, a.ChangeMailboxPassword(context.Background(), "example.org", "info", "s3cret"))
}

func TestApp_ConfigLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)

	logger := mocks.NewMockLogger(ctrl)
	a := app.New(loader, func(_ *domain.ClientConfig) ports.Transport {
		t.Fatal("transport must not be built without configuration")
		return nil
	}, logger)

	_, err := a.Domains(context.Background())
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestApp_Overview(t *testing.T) {
	a, transport := newApp(t)

	transport.EXPECT().
		Query(gomock.Any(), "get_accountsettings", gomock.Nil()).
		Return(&domain.Response{Fields: domain.Snapshot{
			"error":            "0",
			"disk_quota":       "100/1000",
			"traffic_quota":    "5/unlimited",
			"max_domains":      "10",
			"max_mailaccounts": "50",
			"max_databases":    "5",
		}}, nil)
	transport.EXPECT().
		Query(gomock.Any(), "get_domains", gomock.Nil()).
		Return(listResponse(domainRow("example.org"), domainRow("example.net")), nil)
	transport.EXPECT().
		Query(gomock.Any(), "get_ftpusers", gomock.Nil()).
		Return(listResponse(), nil)
	transport.EXPECT().
		Query(gomock.Any(), "get_databases", gomock.Nil()).
		Return(listResponse(), nil)

	// Per-domain details, one fetch per domain.
	transport.EXPECT().
		Query(gomock.Any(), "get_subdomains", gomock.Any()).
		Return(listResponse(), nil).
		Times(2)
	transport.EXPECT().
		Query(gomock.Any(), "get_mailaccounts", gomock.Any()).
		Return(listResponse(mailboxRow("info")), nil).
		Times(2)
	transport.EXPECT().
		Query(gomock.Any(), "get_mailforwards", gomock.Any()).
		Return(listResponse(), nil).
		Times(2)

	overview, err := a.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testLogin, overview.Login)
	assert.Equal(t, int64(10), overview.Settings.MaxDomains)
	require.Len(t, overview.Domains, 2)
	assert.Equal(t, "example.org", overview.Domains[0].Name)
	assert.Equal(t, 1, overview.Domains[0].Mailboxes)
	assert.Equal(t, "example.net", overview.Domains[1].Name)
}
