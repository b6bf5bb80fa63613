// Package cli is the flowx command tree. Every command runs against the same
// container the HTTP server uses, so state written here is visible to the
// server and the other way round.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"flowx/config"
	"flowx/internal/app"
	"flowx/internal/model"
	"flowx/pkg/datemath"
	"flowx/pkg/log"
)

// Builder creates the container a command runs against.
type Builder func(ctx context.Context, cfgFile string, verbose bool) (*app.Container, error)

type runtime struct {
	build   Builder
	cfgFile string
	verbose bool

	container *app.Container
}

type commandContextKey struct{}

// DefaultBuilder loads the config file, initializes the logger and opens the
// container.
func DefaultBuilder(ctx context.Context, cfgFile string, verbose bool) (*app.Container, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	level := cfg.Logger.Level
	if verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return app.NewContainer(ctx, cfg, logger)
}

// resolveDate turns a date expression into a calendar date in the
// configured location.
func (rt *runtime) resolveDate(expr string) (model.Date, error) {
	c := rt.container
	d, err := datemath.NewParser(c.Location).Date(expr, time.Now())
	if err != nil {
		return "", err
	}
	return model.Date(d), nil
}

// close releases the container of the last command, if one was built.
func (rt *runtime) close() error {
	if rt.container == nil {
		return nil
	}
	err := rt.container.Close()
	rt.container = nil
	return err
}

// newRootCmd assembles the command tree. A nil build uses DefaultBuilder.
func newRootCmd(build Builder) (*cobra.Command, *runtime) {
	if build == nil {
		build = DefaultBuilder
	}
	rt := &runtime{build: build}

	rootCmd := &cobra.Command{
		Use:   "flowx",
		Short: "flowx - daily task planner",
		Long: `flowx schedules tasks on a daily calendar, tracks them through
Pending, Completed, Completed Late and Not Completed, and keeps a
per-day efficiency score weighted by priority.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			c, err := rt.build(ctx, rt.cfgFile, rt.verbose)
			if err != nil {
				return fmt.Errorf("application not initialized: %w", err)
			}
			rt.container = c

			ctx = context.WithValue(ctx, commandContextKey{}, uuid.NewString())
			cmd.SetContext(ctx)
			c.Logger.Debugf(ctx, "command start: %s id=%s", cmd.CommandPath(), ctx.Value(commandContextKey{}))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			rt.container.Logger.Debugf(cmd.Context(), "command end: %s id=%s", cmd.CommandPath(), cmd.Context().Value(commandContextKey{}))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&rt.cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newServeCmd(rt),
		newLoginCmd(rt),
		newLogoutCmd(rt),
		newWhoamiCmd(rt),
		newOnboardCmd(rt),
		newSuggestCmd(rt),
		newTaskCmd(rt),
		newDayCmd(rt),
		newHistoryCmd(rt),
		newCalendarCmd(rt),
	)
	return rootCmd, rt
}

// Execute runs the command tree with ctx and closes the container afterwards.
func Execute(ctx context.Context) error {
	cmd, rt := newRootCmd(nil)
	err := cmd.ExecuteContext(ctx)
	if cerr := rt.close(); err == nil {
		err = cerr
	}
	return err
}
