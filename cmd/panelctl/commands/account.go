package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.nivo.ch/panelctl/internal/ui/render"
)

func (c *CLI) newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect the account",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "settings",
		Short: "Show the account-wide limits and usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := c.app.Settings(cmd.Context())
			if err != nil {
				return err
			}

			table := render.NewTable("SETTING", "VALUE").
				Row("disk quota", settings.DiskQuota.String()+" MB").
				Row("traffic quota", settings.TrafficQuota.String()+" MB").
				Row("max domains", fmt.Sprint(settings.MaxDomains)).
				Row("max mailboxes", fmt.Sprint(settings.MaxMailboxes)).
				Row("max databases", fmt.Sprint(settings.MaxDatabases))
			_, _ = fmt.Fprint(cmd.OutOrStdout(), table.String())
			return nil
		},
	})

	return cmd
}
