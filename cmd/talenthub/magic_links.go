package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mrraghuvarun/talent/internal/bootstrap"
)

func newMagicLinksCmd(a *app) *cobra.Command {
	var of outputFlags
	cmd := &cobra.Command{
		Use:   "magic-links",
		Short: "List sent onboarding invites.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := of.validate(); err != nil {
				return err
			}
			return a.withServices(cmd, func(ctx context.Context, _ *bootstrap.Runtime, svc *bootstrap.ServiceContainer) error {
				links, err := svc.MagicLinks.List(ctx)
				if err != nil {
					return err
				}
				return of.render(cmd.OutOrStdout(), links, func(tw *tabwriter.Writer) {
					if len(links) == 0 {
						fmt.Fprintln(tw, "no magic links")
						return
					}
					row(tw, "ID", "EMAIL", "CREATED", "EXPIRES", "USED")
					for _, l := range links {
						row(tw, dash(l.ID.String()), l.Email, dash(l.CreatedAt), dash(l.ExpiresAt), fmt.Sprint(l.Used))
					}
				})
			})
		},
	}
	bindOutputFlags(cmd, &of)
	return cmd
}
