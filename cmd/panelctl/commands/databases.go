package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.nivo.ch/panelctl/internal/ui/render"
)

func (c *CLI) newDatabasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "databases",
		Aliases: []string{"db"},
		Short:   "Manage the account's databases",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all databases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbs, err := c.app.Databases(cmd.Context())
			if err != nil {
				return err
			}

			table := render.NewTable("DATABASE", "SIZE")
			for _, db := range dbs {
				table.Row(db.Name(), fmt.Sprintf("%d MB", db.SizeMB()))
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), table.String())
			return nil
		},
	})

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Provision a new database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := resolvePassword(cmd)
			if err != nil {
				return err
			}

			if err := c.app.CreateDatabase(cmd.Context(), args[0], password); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", args[0])
			return nil
		},
	}
	passwordFlag(create)
	cmd.AddCommand(create)

	passwd := &cobra.Command{
		Use:   "passwd <name>",
		Short: "Change a database's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := resolvePassword(cmd)
			if err != nil {
				return err
			}

			if err := c.app.ChangeDatabasePassword(cmd.Context(), args[0], password); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "password changed for %s\n", args[0])
			return nil
		},
	}
	passwordFlag(passwd)
	cmd.AddCommand(passwd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.DeleteDatabase(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	})

	return cmd
}
