package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.nivo.ch/panelctl/internal/ui/render"
	"go.trai.ch/zerr"
)

func (c *CLI) newDomainsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Manage the account's domains",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all domains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			domains, err := c.app.Domains(cmd.Context())
			if err != nil {
				return err
			}

			table := render.NewTable("DOMAIN", "DISK", "TRAFFIC", "STATUS")
			for _, d := range domains {
				table.Row(d.Name(), d.DiskQuota().String(), d.TrafficQuota().String(), render.Active(d.Active()))
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), table.String())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Register a new domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.CreateDomain(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a domain and everything below it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.DeleteDomain(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	})

	cert := &cobra.Command{
		Use:   "cert <name>",
		Short: "Install a TLS certificate for a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			certPEM, err := readPEMFlag(cmd, "cert")
			if err != nil {
				return err
			}
			keyPEM, err := readPEMFlag(cmd, "key")
			if err != nil {
				return err
			}
			chainPEM, err := readPEMFlag(cmd, "chain")
			if err != nil {
				return err
			}

			if err := c.app.InstallCertificate(cmd.Context(), args[0], certPEM, keyPEM, chainPEM); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "certificate installed for %s\n", args[0])
			return nil
		},
	}
	cert.Flags().String("cert", "", "Path to the certificate PEM file")
	cert.Flags().String("key", "", "Path to the private key PEM file")
	cert.Flags().String("chain", "", "Path to the intermediate chain PEM file")
	_ = cert.MarkFlagRequired("cert")
	_ = cert.MarkFlagRequired("key")
	cmd.AddCommand(cert)

	return cmd
}

// readPEMFlag loads the PEM file named by the flag. An empty flag yields an
// empty string; the chain is optional.
func readPEMFlag(cmd *cobra.Command, name string) (string, error) {
	path, _ := cmd.Flags().GetString(name)
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read "+name+" file")
	}
	return string(data), nil
}
