package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.nivo.ch/panelctl/internal/ui/render"
)

func (c *CLI) newDNSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage DNS records",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the domain's DNS records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := c.app.DNSRecords(cmd.Context(), domainArg(cmd))
			if err != nil {
				return err
			}

			table := render.NewTable("ID", "TYPE", "HOST", "CONTENT", "PRIORITY")
			for _, r := range records {
				priority := ""
				if r.Type() == "MX" || r.Type() == "SRV" {
					priority = fmt.Sprint(r.Priority())
				}
				table.Row(r.ID(), r.Type(), r.Host(), r.Content(), priority)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), table.String())
			return nil
		},
	}
	domainFlag(list)
	cmd.AddCommand(list)

	add := &cobra.Command{
		Use:   "add <type> <host> <content>",
		Short: "Create a DNS record on the domain's zone",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			priority, _ := cmd.Flags().GetInt64("priority")

			if err := c.app.AddDNSRecord(cmd.Context(), domainArg(cmd), args[0], args[1], args[2], priority); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s record for %s\n", args[0], args[1])
			return nil
		},
	}
	domainFlag(add)
	add.Flags().Int64("priority", 0, "Record priority (MX and SRV records)")
	cmd.AddCommand(add)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a DNS record by its identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.DeleteDNSRecord(cmd.Context(), domainArg(cmd), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted record %s\n", args[0])
			return nil
		},
	}
	domainFlag(del)
	cmd.AddCommand(del)

	return cmd
}
