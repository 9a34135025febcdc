package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.nivo.ch/panelctl/internal/ui/render"
)

func (c *CLI) newOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Summarize the account and its domains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview, err := c.app.Overview(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Account %s\n", overview.Login)
			_, _ = fmt.Fprintf(out, "  disk %s MB, traffic %s MB\n",
				overview.Settings.DiskQuota, overview.Settings.TrafficQuota)
			_, _ = fmt.Fprintf(out, "  %d domains (max %d), %d ftp accounts, %d databases (max %d)\n\n",
				len(overview.Domains), overview.Settings.MaxDomains,
				overview.FtpAccounts, overview.Databases, overview.Settings.MaxDatabases)

			table := render.NewTable("DOMAIN", "SUBDOMAINS", "MAILBOXES", "FORWARDERS", "STATUS")
			for _, d := range overview.Domains {
				table.Row(d.Name,
					fmt.Sprint(d.Subdomains),
					fmt.Sprint(d.Mailboxes),
					fmt.Sprint(d.Forwarders),
					render.Active(d.Active))
			}
			_, _ = fmt.Fprint(out, table.String())
			return nil
		},
	}
}
