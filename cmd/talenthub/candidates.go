package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mrraghuvarun/talent/internal/bootstrap"
	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	"github.com/mrraghuvarun/talent/internal/domain/authz"
	"github.com/mrraghuvarun/talent/internal/domain/model"
	apperrors "github.com/mrraghuvarun/talent/internal/errors"
	"github.com/mrraghuvarun/talent/internal/service"
	"github.com/mrraghuvarun/talent/internal/ui/viewmodel"
)

func newCandidatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candidates",
		Aliases: []string{"c"},
		Short:   "List and manage candidates visible to the current viewer.",
	}
	cmd.AddCommand(
		newCandidatesListCmd(a),
		newRoleChangeCmd(a, "promote", "Make a user a power user.", authz.ActionPromote),
		newRoleChangeCmd(a, "demote", "Make a power user a plain user.", authz.ActionDemote),
		newCandidatesDeleteCmd(a),
		newCandidatesInviteCmd(a),
	)
	return cmd
}

func newCandidatesListCmd(a *app) *cobra.Command {
	var (
		of       outputFlags
		search   string
		page     int
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List candidates with the actions available on each.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := of.validate(); err != nil {
				return err
			}
			return a.withServices(cmd, func(ctx context.Context, _ *bootstrap.Runtime, svc *bootstrap.ServiceContainer) error {
				if err := svc.Candidates.Refresh(ctx); err != nil {
					return err
				}
				d := viewmodel.BuildDashboard(viewmodel.DashboardInput{
					Viewer:    svc.Viewer,
					Rows:      svc.Candidates.View(svc.Viewer, search),
					Query:     search,
					Page:      page,
					PageSize:  pageSize,
					ResumeURL: svc.FileURL,
				})
				return of.render(cmd.OutOrStdout(), d, func(tw *tabwriter.Writer) {
					if d.Empty() {
						fmt.Fprintln(tw, "no candidates")
						return
					}
					row(tw, "ID", "NAME", "EMAIL", "ROLE", "ACTIONS", "RESUME")
					for _, r := range d.Rows {
						row(tw, r.ID.String(), r.Name, dash(r.Email), r.RoleLabel, joinActions(r.Actions), dash(r.ResumeURL))
					}
					if d.Pagination.HasNext || d.Pagination.HasPrev {
						fmt.Fprintf(tw, "page %d (%d-%d of %d)\n", d.Pagination.Page,
							d.Pagination.StartIndex+1, d.Pagination.EndIndex, d.Pagination.TotalCount)
					}
				})
			})
		},
	}
	bindOutputFlags(cmd, &of)
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive match on name or email")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "rows per page (0 shows all)")
	return cmd
}

func joinActions(actions []authz.Action) string {
	parts := make([]string, len(actions))
	for i, act := range actions {
		parts[i] = string(act)
	}
	return dash(strings.Join(parts, ","))
}

// loadAndAuthorize refreshes the list and checks action against every id.
func loadAndAuthorize(ctx context.Context, svc *bootstrap.ServiceContainer, action authz.Action, ids []string) error {
	if err := svc.Candidates.Refresh(ctx); err != nil {
		return err
	}
	for _, id := range ids {
		if err := svc.Candidates.Authorize(svc.Viewer, model.CandidateID(id), action); err != nil {
			return err
		}
	}
	return nil
}

func newRoleChangeCmd(a *app, use, short string, action authz.Action) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(cmd, func(ctx context.Context, _ *bootstrap.Runtime, svc *bootstrap.ServiceContainer) error {
				if err := loadAndAuthorize(ctx, svc, action, args); err != nil {
					return err
				}
				id := model.CandidateID(args[0])
				var err error
				target := domainauth.RoleUser
				if action == authz.ActionPromote {
					target = domainauth.RolePowerUser
					err = svc.Candidates.Promote(ctx, id)
				} else {
					err = svc.Candidates.Demote(ctx, id)
				}
				if err != nil {
					return err
				}
				cmd.Printf("%s: %s is now %s\n", use, id, viewmodel.RoleLabel(target))
				return nil
			})
		},
	}
}

type deleteOutcome struct {
	ID     model.CandidateID     `json:"id"`
	Status string                `json:"status"`
	Step   string                `json:"failed_step,omitempty"`
	Error  string                `json:"error,omitempty"`
	Report service.CascadeReport `json:"report"`
}

func newCandidatesDeleteCmd(a *app) *cobra.Command {
	var (
		of  outputFlags
		yes bool
	)
	cmd := &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete candidates and every record that depends on them.",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := of.validate(); err != nil {
				return err
			}
			ids := dedupe(args)
			return a.withServices(cmd, func(ctx context.Context, rt *bootstrap.Runtime, svc *bootstrap.ServiceContainer) error {
				if err := loadAndAuthorize(ctx, svc, authz.ActionDelete, ids); err != nil {
					return err
				}
				if !yes {
					ok, err := confirm(cmd, a.io, fmt.Sprintf("Delete %d candidate(s) %s and all their records?", len(ids), strings.Join(ids, ", ")))
					if err != nil {
						return err
					}
					if !ok {
						return &exitError{code: 1, err: errAborted}
					}
				}

				outcomes, err := removeAll(ctx, svc.Candidates, ids, rt.Config.Bulk.Concurrency)
				renderErr := of.render(cmd.OutOrStdout(), outcomes, func(tw *tabwriter.Writer) {
					row(tw, "ID", "STATUS", "FAILED STEP", "ERROR")
					for _, o := range outcomes {
						row(tw, o.ID.String(), o.Status, dash(o.Step), dash(o.Error))
					}
				})
				return errors.Join(err, renderErr)
			})
		},
	}
	bindOutputFlags(cmd, &of)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// removeAll runs one cascade per id with at most limit in flight. Each cascade
// is sequential; a failure in one never cancels the others.
func removeAll(ctx context.Context, store *service.CandidateStore, ids []string, limit int) ([]deleteOutcome, error) {
	outcomes := make([]deleteOutcome, len(ids))
	var (
		mu   sync.Mutex
		errs []error
		g    errgroup.Group
	)
	g.SetLimit(max(limit, 1))
	for i, raw := range ids {
		g.Go(func() error {
			id := model.CandidateID(raw)
			report, err := store.Remove(ctx, id)
			o := deleteOutcome{ID: id, Status: "deleted", Report: report}
			if err != nil {
				o.Status = "failed"
				if apperrors.IsPartialCascadeFailure(err) {
					o.Status = "partial"
				}
				o.Step = apperrors.GetStep(err)
				o.Error = err.Error()
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			outcomes[i] = o
			return nil
		})
	}
	_ = g.Wait()
	return outcomes, errors.Join(errs...)
}

func confirm(cmd *cobra.Command, cio cliIO, prompt string) (bool, error) {
	cmd.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(cio.in).ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func newCandidatesInviteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "invite EMAIL",
		Short: "Send an onboarding magic link.",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(cmd, func(ctx context.Context, _ *bootstrap.Runtime, svc *bootstrap.ServiceContainer) error {
				if !viewmodel.LayoutFor(svc.Viewer).CanInvite {
					return apperrors.Unauthorized(fmt.Sprintf("%s may not send invites", svc.Viewer.Role))
				}
				if err := svc.Candidates.Invite(ctx, args[0]); err != nil {
					return err
				}
				cmd.Printf("magic link sent to %s\n", strings.TrimSpace(args[0]))
				return nil
			})
		},
	}
}
