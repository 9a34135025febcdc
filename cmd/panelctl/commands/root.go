// Package commands implements the CLI commands for panelctl.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.nivo.ch/panelctl/internal/app"
	"go.nivo.ch/panelctl/internal/build"
	"go.nivo.ch/panelctl/internal/engine/panel"
)

// CLI represents the command line interface for panelctl.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Overview(ctx context.Context) (*app.Overview, error)
	Settings(ctx context.Context) (*panel.AccountSettings, error)

	Domains(ctx context.Context) ([]*panel.Domain, error)
	CreateDomain(ctx context.Context, name string) error
	DeleteDomain(ctx context.Context, name string) error
	InstallCertificate(ctx context.Context, domainName, certPEM, keyPEM, chainPEM string) error

	Subdomains(ctx context.Context, domainName string) ([]*panel.Subdomain, error)
	CreateSubdomain(ctx context.Context, domainName, host, path string) error
	DeleteSubdomain(ctx context.Context, domainName, host string) error

	Mailboxes(ctx context.Context, domainName string) ([]*panel.Mailbox, error)
	CreateMailbox(ctx context.Context, domainName, local, password string, quotaMB int64) error
	ChangeMailboxPassword(ctx context.Context, domainName, local, password string) error
	DeleteMailbox(ctx context.Context, domainName, local string) error

	Forwarders(ctx context.Context, domainName string) ([]*panel.Forwarder, error)
	CreateForwarder(ctx context.Context, domainName, source string, targets []string) error
	DeleteForwarder(ctx context.Context, domainName, source string) error

	FtpAccounts(ctx context.Context, domainName string) ([]*panel.FtpAccount, error)
	CreateFtpAccount(ctx context.Context, domainName, username, password, directory string) error
	ChangeFtpPassword(ctx context.Context, username, password string) error
	SetFtpQuota(ctx context.Context, username string, limitMB int64) error
	DeleteFtpAccount(ctx context.Context, username string) error

	Databases(ctx context.Context) ([]*panel.Database, error)
	CreateDatabase(ctx context.Context, name, password string) error
	ChangeDatabasePassword(ctx context.Context, name, password string) error
	DeleteDatabase(ctx context.Context, name string) error

	DNSRecords(ctx context.Context, domainName string) ([]*panel.DNSRecord, error)
	AddDNSRecord(ctx context.Context, domainName, recordType, host, content string, priority int64) error
	DeleteDNSRecord(ctx context.Context, domainName, id string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "panelctl",
		Short:         "Manage hosting accounts from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newOverviewCmd())
	rootCmd.AddCommand(c.newAccountCmd())
	rootCmd.AddCommand(c.newDomainsCmd())
	rootCmd.AddCommand(c.newSubdomainsCmd())
	rootCmd.AddCommand(c.newMailCmd())
	rootCmd.AddCommand(c.newFtpCmd())
	rootCmd.AddCommand(c.newDatabasesCmd())
	rootCmd.AddCommand(c.newDNSCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// domainFlag registers the required --domain flag on cmd.
func domainFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("domain", "d", "", "Domain the command operates on")
	_ = cmd.MarkFlagRequired("domain")
}

func domainArg(cmd *cobra.Command) string {
	d, _ := cmd.Flags().GetString("domain")
	return d
}
