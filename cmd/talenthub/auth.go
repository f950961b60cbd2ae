package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrraghuvarun/talent/internal/bootstrap"
	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
)

func newLoginCmd(a *app) *cobra.Command {
	var (
		email         string
		passwordStdin bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session under --profile.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reader := bufio.NewReader(a.io.in)
			if strings.TrimSpace(email) == "" {
				if passwordStdin {
					return usageError("--email is required with --password-stdin")
				}
				cmd.Print("Email: ")
				line, err := reader.ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read email: %w", err)
				}
				email = strings.TrimSpace(line)
			}
			password, err := readPassword(cmd, a.io, reader, passwordStdin)
			if err != nil {
				return err
			}

			return a.withRuntime(cmd, func(ctx context.Context, rt *bootstrap.Runtime) error {
				res, err := rt.Auth.Login(ctx, a.profile, domainauth.Credentials{Email: email, Password: password})
				if err != nil {
					return err
				}
				v := res.Session.Viewer
				cmd.Printf("logged in as %s (%s); landing view: %s\n", dash(v.Email), dash(string(v.Role)), dash(string(res.Dashboard)))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

func readPassword(cmd *cobra.Command, cio cliIO, reader *bufio.Reader, fromStdin bool) (string, error) {
	if fromStdin {
		raw, err := reader.ReadString('\n')
		if err != nil && raw == "" {
			return "", fmt.Errorf("read password: %w", err)
		}
		password := strings.TrimRight(raw, "\r\n")
		if password == "" {
			return "", errors.New("password is empty")
		}
		return password, nil
	}

	if cio.stdinFd < 0 || !term.IsTerminal(cio.stdinFd) {
		return "", usageError("no terminal for password prompt (use --password-stdin)")
	}
	cmd.Print("Password: ")
	pass, err := term.ReadPassword(cio.stdinFd)
	cmd.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(pass) == 0 {
		return "", errors.New("password is empty")
	}
	return string(pass), nil
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session stored under --profile.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withRuntime(cmd, func(ctx context.Context, rt *bootstrap.Runtime) error {
				if err := rt.Auth.Logout(ctx, a.profile); err != nil {
					return err
				}
				cmd.Println("logged out")
				return nil
			})
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	var of outputFlags
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the viewer of the current session.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := of.validate(); err != nil {
				return err
			}
			return a.withRuntime(cmd, func(ctx context.Context, rt *bootstrap.Runtime) error {
				sess, err := rt.Auth.Current(ctx, a.profile)
				if err != nil {
					return err
				}
				out := struct {
					Profile   string                   `json:"profile"`
					Viewer    domainauth.ViewerContext `json:"viewer"`
					Dashboard domainauth.Dashboard     `json:"dashboard"`
					ExpiresAt string                   `json:"expires_at"`
				}{
					Profile:   a.profile,
					Viewer:    sess.Viewer,
					Dashboard: sess.Viewer.Role.Dashboard(),
					ExpiresAt: sess.ExpiresAt.UTC().Format(time.RFC3339),
				}
				return of.render(cmd.OutOrStdout(), out, func(tw *tabwriter.Writer) {
					row(tw, "PROFILE", "ID", "EMAIL", "ROLE", "EXPIRES")
					row(tw, out.Profile, dash(out.Viewer.UserID), dash(out.Viewer.Email), dash(string(out.Viewer.Role)), out.ExpiresAt)
				})
			})
		},
	}
	bindOutputFlags(cmd, &of)
	return cmd
}
