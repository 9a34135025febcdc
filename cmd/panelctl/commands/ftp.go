package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.nivo.ch/panelctl/internal/ui/render"
)

func (c *CLI) newFtpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ftp",
		Short: "Manage FTP accounts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List FTP accounts, optionally scoped to one domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scope, _ := cmd.Flags().GetString("domain")
			accounts, err := c.app.FtpAccounts(cmd.Context(), scope)
			if err != nil {
				return err
			}

			table := render.NewTable("USERNAME", "DIRECTORY", "QUOTA", "STATUS")
			for _, f := range accounts {
				table.Row(f.Username(), f.Directory(), f.Quota().String(), render.Active(f.Active()))
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), table.String())
			return nil
		},
	}
	list.Flags().StringP("domain", "d", "", "Restrict the listing to one domain")
	cmd.AddCommand(list)

	create := &cobra.Command{
		Use:   "create <username>",
		Short: "Provision an FTP login below a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := resolvePassword(cmd)
			if err != nil {
				return err
			}
			dir, _ := cmd.Flags().GetString("dir")

			if err := c.app.CreateFtpAccount(cmd.Context(), domainArg(cmd), args[0], password, dir); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", args[0])
			return nil
		},
	}
	domainFlag(create)
	passwordFlag(create)
	create.Flags().String("dir", "/", "Directory the login is rooted at")
	cmd.AddCommand(create)

	passwd := &cobra.Command{
		Use:   "passwd <username>",
		Short: "Change an FTP account's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := resolvePassword(cmd)
			if err != nil {
				return err
			}

			if err := c.app.ChangeFtpPassword(cmd.Context(), args[0], password); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "password changed for %s\n", args[0])
			return nil
		},
	}
	passwordFlag(passwd)
	cmd.AddCommand(passwd)

	cmd.AddCommand(&cobra.Command{
		Use:   "quota <username> <limit-mb>",
		Short: "Set an FTP account's disk limit in megabytes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[1], err)
			}

			if err := c.app.SetFtpQuota(cmd.Context(), args[0], limit); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "quota set for %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <username>",
		Short: "Remove an FTP account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.DeleteFtpAccount(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	})

	return cmd
}
