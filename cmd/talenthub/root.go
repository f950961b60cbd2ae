package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrraghuvarun/talent/internal/bootstrap"
)

const defaultProfile = "default"

// cliIO is the process surface commands read from and write to.
type cliIO struct {
	in  io.Reader
	out io.Writer
	err io.Writer
	// stdinFd is used for terminal detection; -1 when in is not a file.
	stdinFd int
}

func defaultIO() cliIO {
	return cliIO{in: os.Stdin, out: os.Stdout, err: os.Stderr, stdinFd: int(os.Stdin.Fd())}
}

// app carries global flags and the runtime factory shared by every command.
type app struct {
	io      cliIO
	profile string

	newRuntime func(ctx context.Context) (*bootstrap.Runtime, error)
}

func (a *app) defaultRuntime(ctx context.Context) (*bootstrap.Runtime, error) {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := bootstrap.InitLogger(cfg.Log, a.io.err)
	return bootstrap.NewRuntime(ctx, bootstrap.RuntimeDeps{Config: cfg, Logger: logger})
}

// withRuntime opens the runtime, runs fn and always closes the runtime. Any
// error fn returns is counted under the command's name.
func (a *app) withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *bootstrap.Runtime) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rt, err := a.newRuntime(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rt.Close(); closeErr != nil {
			rt.Logger.Warn("runtime close failed", "error", closeErr)
		}
	}()

	if err := fn(ctx, rt); err != nil {
		rt.Metrics.ObserveError(cmd.CommandPath(), err)
		rt.Logger.Debug("command failed", "command", cmd.CommandPath(), "error", err)
		return err
	}
	return nil
}

// withServices is withRuntime for commands that need a logged-in viewer.
func (a *app) withServices(cmd *cobra.Command, fn func(ctx context.Context, rt *bootstrap.Runtime, svc *bootstrap.ServiceContainer) error) error {
	return a.withRuntime(cmd, func(ctx context.Context, rt *bootstrap.Runtime) error {
		svc, err := rt.Services(ctx, a.profile)
		if err != nil {
			return err
		}
		return fn(ctx, rt, svc)
	})
}

func newRootCmd(cio cliIO) *cobra.Command {
	a := &app{io: cio}
	a.newRuntime = a.defaultRuntime
	return newRootCmdWithApp(a)
}

func newRootCmdWithApp(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "talenthub",
		Short:         "TalentHub recruiting console: manage candidates, roles and invites.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetIn(a.io.in)
	root.SetOut(a.io.out)
	root.SetErr(a.io.err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitError{code: 2, err: err}
	})

	root.PersistentFlags().StringVar(&a.profile, "profile", envOr("TALENTHUB_PROFILE", defaultProfile),
		"session profile to act as")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newCandidatesCmd(a),
		newMagicLinksCmd(a),
		newDetailsCmd(a),
	)
	return root
}

// usageArgs marks positional-argument errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &exitError{code: 2, err: err}
		}
		return nil
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

var errAborted = errors.New("aborted")
