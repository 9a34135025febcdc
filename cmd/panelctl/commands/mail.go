package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.nivo.ch/panelctl/internal/ui/render"
)

func (c *CLI) newMailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Manage mailboxes and forwarders",
	}

	cmd.AddCommand(c.newMailboxesCmd())
	cmd.AddCommand(c.newForwardersCmd())

	return cmd
}

func (c *CLI) newMailboxesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "boxes",
		Aliases: []string{"box"},
		Short:   "Manage mail accounts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the domain's mail accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			boxes, err := c.app.Mailboxes(cmd.Context(), domainArg(cmd))
			if err != nil {
				return err
			}

			table := render.NewTable("ADDRESS", "QUOTA", "STATUS")
			for _, m := range boxes {
				table.Row(m.Address(), m.Quota().String(), render.Active(m.Active()))
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), table.String())
			return nil
		},
	}
	domainFlag(list)
	cmd.AddCommand(list)

	create := &cobra.Command{
		Use:   "create <local>",
		Short: "Provision a mail account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := resolvePassword(cmd)
			if err != nil {
				return err
			}
			quota, _ := cmd.Flags().GetInt64("quota")

			if err := c.app.CreateMailbox(cmd.Context(), domainArg(cmd), args[0], password, quota); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s@%s\n", args[0], domainArg(cmd))
			return nil
		},
	}
	domainFlag(create)
	passwordFlag(create)
	create.Flags().Int64("quota", 1024, "Mailbox quota in megabytes")
	cmd.AddCommand(create)

	passwd := &cobra.Command{
		Use:   "passwd <local>",
		Short: "Change a mail account's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := resolvePassword(cmd)
			if err != nil {
				return err
			}

			if err := c.app.ChangeMailboxPassword(cmd.Context(), domainArg(cmd), args[0], password); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "password changed for %s@%s\n", args[0], domainArg(cmd))
			return nil
		},
	}
	domainFlag(passwd)
	passwordFlag(passwd)
	cmd.AddCommand(passwd)

	del := &cobra.Command{
		Use:   "delete <local>",
		Short: "Remove a mail account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.DeleteMailbox(cmd.Context(), domainArg(cmd), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s@%s\n", args[0], domainArg(cmd))
			return nil
		},
	}
	domainFlag(del)
	cmd.AddCommand(del)

	return cmd
}

func (c *CLI) newForwardersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "forwards",
		Aliases: []string{"forward"},
		Short:   "Manage mail forwarders",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the domain's forwarders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fwds, err := c.app.Forwarders(cmd.Context(), domainArg(cmd))
			if err != nil {
				return err
			}

			table := render.NewTable("SOURCE", "TARGETS", "STATUS")
			for _, f := range fwds {
				table.Row(f.Source(), strings.Join(f.Targets(), ", "), render.Active(f.Active()))
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), table.String())
			return nil
		},
	}
	domainFlag(list)
	cmd.AddCommand(list)

	create := &cobra.Command{
		Use:   "create <source> <target>...",
		Short: "Route an address to one or more targets",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.CreateForwarder(cmd.Context(), domainArg(cmd), args[0], args[1:]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s@%s\n", args[0], domainArg(cmd))
			return nil
		},
	}
	domainFlag(create)
	cmd.AddCommand(create)

	del := &cobra.Command{
		Use:   "delete <source>",
		Short: "Remove a forwarder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.DeleteForwarder(cmd.Context(), domainArg(cmd), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s@%s\n", args[0], domainArg(cmd))
			return nil
		},
	}
	domainFlag(del)
	cmd.AddCommand(del)

	return cmd
}
