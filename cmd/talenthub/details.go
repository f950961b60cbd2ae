package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mrraghuvarun/talent/internal/bootstrap"
	"github.com/mrraghuvarun/talent/internal/domain/authz"
	"github.com/mrraghuvarun/talent/internal/domain/model"
	"github.com/mrraghuvarun/talent/internal/service"
)

func newDetailsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details",
		Short: "Show and edit a candidate profile.",
	}
	cmd.AddCommand(
		newDetailsShowCmd(a),
		newSetPersonalCmd(a),
		newSetListCmd(a, "set-skills", service.SectionSkills),
		newSetListCmd(a, "set-certifications", service.SectionCertifications),
		newSetQualificationCmd(a),
		newDetailsResumeCmd(a),
	)
	return cmd
}

func newDetailsShowCmd(a *app) *cobra.Command {
	var of outputFlags
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a candidate's full profile.",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := of.validate(); err != nil {
				return err
			}
			return a.withServices(cmd, func(ctx context.Context, _ *bootstrap.Runtime, svc *bootstrap.ServiceContainer) error {
				if err := loadAndAuthorize(ctx, svc, authz.ActionView, args); err != nil {
					return err
				}
				details, err := svc.Details.Get(ctx, model.CandidateID(args[0]))
				if err != nil {
					return err
				}
				out := struct {
					model.CandidateDetails
					ResumeURL string `json:"resume_url,omitempty"`
				}{CandidateDetails: details, ResumeURL: svc.Details.ResumeURL(details)}
				return of.render(cmd.OutOrStdout(), out, func(tw *tabwriter.Writer) {
					writeDetailsTable(tw, details, out.ResumeURL)
				})
			})
		},
	}
	bindOutputFlags(cmd, &of)
	return cmd
}

func newDetailsResumeCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "resume ID",
		Short: "Download a candidate's resume.",
		Long:  "Download a candidate's resume with the stored session. --out defaults to the uploaded file name; \"-\" writes to stdout.",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(cmd, func(ctx context.Context, _ *bootstrap.Runtime, svc *bootstrap.ServiceContainer) error {
				if err := loadAndAuthorize(ctx, svc, authz.ActionView, args); err != nil {
					return err
				}
				details, err := svc.Details.Get(ctx, model.CandidateID(args[0]))
				if err != nil {
					return err
				}
				if out == "-" {
					_, err := svc.Details.DownloadResume(ctx, details, cmd.OutOrStdout())
					return err
				}
				if out == "" {
					out = resumeFileName(details, args[0])
				}
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				n, err := svc.Details.DownloadResume(ctx, details, f)
				if cerr := f.Close(); err == nil {
					err = cerr
				}
				if err != nil {
					_ = os.Remove(out)
					return err
				}
				cmd.Printf("saved resume for candidate %s to %s (%d bytes)\n", args[0], out, n)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "destination file (\"-\" for stdout)")
	return cmd
}

func resumeFileName(d model.CandidateDetails, id string) string {
	if base := filepath.Base(d.PersonalDetails.ResumePath); d.PersonalDetails.ResumePath != "" && base != "." && base != "/" {
		return base
	}
	return "resume-" + id
}

func writeDetailsTable(tw *tabwriter.Writer, d model.CandidateDetails, resumeURL string) {
	fmt.Fprintln(tw, "PERSONAL")
	for _, f := range d.PersonalDetails.FormFields() {
		row(tw, "  "+f.Name, dash(f.Value))
	}
	row(tw, "  resume", dash(resumeURL))

	fmt.Fprintln(tw, "QUALIFICATIONS")
	if len(d.Qualifications) == 0 {
		fmt.Fprintln(tw, "  -")
	}
	for i, q := range d.Qualifications {
		row(tw, fmt.Sprintf("  [%d] recent_job", i), dash(q.RecentJob))
		row(tw, "      preferred_roles", dash(q.PreferredRoles))
		row(tw, "      availability", dash(q.Availability))
		row(tw, "      work_permit_status", dash(q.WorkPermitStatus))
		row(tw, "      preferred_role_type", dash(q.PreferredRoleType))
		row(tw, "      preferred_work_arrangement", dash(q.PreferredWorkArrangement))
		row(tw, "      compensation", dash(q.Compensation))
	}

	row(tw, "SKILLS", dash(strings.Join(d.Skills, ", ")))
	row(tw, "CERTIFICATIONS", dash(strings.Join(d.Certifications, ", ")))
}

// openEditor authorizes an edit on id and returns an editor over its profile.
func openEditor(ctx context.Context, svc *bootstrap.ServiceContainer, id string) (*service.DetailsEditor, error) {
	if err := loadAndAuthorize(ctx, svc, authz.ActionEdit, []string{id}); err != nil {
		return nil, err
	}
	return svc.Details.Open(ctx, model.CandidateID(id))
}

func submitSection(ctx context.Context, cmd *cobra.Command, e *service.DetailsEditor, id string, section service.Section) error {
	e.Toggle(section)
	if err := e.Submit(ctx, section); err != nil {
		return err
	}
	cmd.Printf("updated %s for candidate %s\n", section, id)
	return nil
}

// parseAssignments splits key=value pairs.
func parseAssignments(pairs []string) ([][2]string, error) {
	out := make([][2]string, 0, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, usageError("invalid --set %q (want key=value)", p)
		}
		out = append(out, [2]string{strings.TrimSpace(k), v})
	}
	return out, nil
}

func newSetPersonalCmd(a *app) *cobra.Command {
	var (
		sets   []string
		resume string
	)
	cmd := &cobra.Command{
		Use:   "set-personal ID",
		Short: "Update personal fields and optionally upload a resume.",
		Long:  "Fields: " + strings.Join(model.PersonalFieldNames(), ", "),
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := parseAssignments(sets)
			if err != nil {
				return err
			}
			if len(assignments) == 0 && resume == "" {
				return usageError("nothing to update (use --set or --resume)")
			}
			var upload *model.ResumeUpload
			if resume != "" {
				content, err := os.ReadFile(resume)
				if err != nil {
					return fmt.Errorf("read resume: %w", err)
				}
				upload = &model.ResumeUpload{FileName: filepath.Base(resume), Content: content}
			}

			return a.withServices(cmd, func(ctx context.Context, _ *bootstrap.Runtime, svc *bootstrap.ServiceContainer) error {
				e, err := openEditor(ctx, svc, args[0])
				if err != nil {
					return err
				}
				for _, kv := range assignments {
					if err := e.SetPersonal(kv[0], kv[1]); err != nil {
						return usageError("%v", err)
					}
				}
				if upload != nil {
					e.AttachResume(*upload)
				}
				return submitSection(ctx, cmd, e, args[0], service.SectionPersonal)
			})
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field assignment key=value (repeatable)")
	cmd.Flags().StringVar(&resume, "resume", "", "resume file to upload")
	return cmd
}

func newSetListCmd(a *app, use string, section service.Section) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID VALUE...",
		Short: fmt.Sprintf("Replace the candidate's %s.", section),
		Args:  usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(cmd, func(ctx context.Context, _ *bootstrap.Runtime, svc *bootstrap.ServiceContainer) error {
				e, err := openEditor(ctx, svc, args[0])
				if err != nil {
					return err
				}
				if section == service.SectionSkills {
					e.SetSkills(args[1:])
				} else {
					e.SetCertifications(args[1:])
				}
				return submitSection(ctx, cmd, e, args[0], section)
			})
		},
	}
}

func newSetQualificationCmd(a *app) *cobra.Command {
	var (
		index int
		sets  []string
	)
	cmd := &cobra.Command{
		Use:   "set-qualification ID",
		Short: "Update one qualification entry.",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := parseAssignments(sets)
			if err != nil {
				return err
			}
			if len(assignments) == 0 {
				return usageError("nothing to update (use --set)")
			}
			return a.withServices(cmd, func(ctx context.Context, _ *bootstrap.Runtime, svc *bootstrap.ServiceContainer) error {
				e, err := openEditor(ctx, svc, args[0])
				if err != nil {
					return err
				}
				for _, kv := range assignments {
					if err := e.SetQualification(index, kv[0], kv[1]); err != nil {
						return usageError("%v", err)
					}
				}
				return submitSection(ctx, cmd, e, args[0], service.SectionQualifications)
			})
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "qualification index (0-based)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field assignment key=value (repeatable)")
	return cmd
}
