package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.nivo.ch/panelctl/internal/ui/render"
)

func (c *CLI) newSubdomainsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subdomains",
		Aliases: []string{"subdomain"},
		Short:   "Manage subdomains below a domain",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the domain's subdomains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			subs, err := c.app.Subdomains(cmd.Context(), domainArg(cmd))
			if err != nil {
				return err
			}

			table := render.NewTable("SUBDOMAIN", "PATH", "STATUS")
			for _, s := range subs {
				table.Row(s.Name(), s.Path(), render.Active(s.Active()))
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), table.String())
			return nil
		},
	}
	domainFlag(list)
	cmd.AddCommand(list)

	create := &cobra.Command{
		Use:   "create <host> <path>",
		Short: "Register a subdomain served from a path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.CreateSubdomain(cmd.Context(), domainArg(cmd), args[0], args[1]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s.%s\n", args[0], domainArg(cmd))
			return nil
		},
	}
	domainFlag(create)
	cmd.AddCommand(create)

	del := &cobra.Command{
		Use:   "delete <host>",
		Short: "Remove a subdomain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.DeleteSubdomain(cmd.Context(), domainArg(cmd), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s.%s\n", args[0], domainArg(cmd))
			return nil
		},
	}
	domainFlag(del)
	cmd.AddCommand(del)

	return cmd
}
