// SPDX-License-Identifier: MIT

// Package cli wires the emptytab commands: flags and environment through
// viper, logging through zerolog, and the report driver.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/husonlab/emptytab/render"
	"github.com/husonlab/emptytab/report"
)

// app carries the per-invocation state shared by the commands.
type app struct {
	v        *viper.Viper
	settings Settings
	log      zerolog.Logger
}

// NewRootCmd builds the command tree. Output goes to the command's out
// writer, diagnostics to its err writer.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "emptytab",
		Short: "Render empty-intersection reports as markdown adjacency tables",
		Long: `emptytab reads report blocks of "<A> vs <B> is empty" lines, builds one
symmetric 0/1 matrix per block over a fixed genome universe and prints each
matrix as a markdown table.

Without --dataset the built-in seed reports (seed10 .. seed50) are used.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRender(cmd.Context(), cmd.OutOrStdout())
		},
	}
	registerFlags(root.PersistentFlags())

	v, err := newViper(root.PersistentFlags())
	if err != nil {
		// Binding a freshly declared flag set cannot fail.
		panic(err)
	}
	a.v = v

	root.AddCommand(newValidateCmd(a), newFormatsCmd())

	return root
}

// setup resolves settings and the logger before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	s, err := loadSettings(a.v)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd.ErrOrStderr(), s.LogLevel)
	if err != nil {
		return err
	}
	a.settings = s
	a.log = log

	return nil
}

func (a *app) runRender(ctx context.Context, out io.Writer) error {
	ds, err := a.settings.loadDataset()
	if err != nil {
		return err
	}
	cfg := a.settings.reportConfig()
	cfg.Logger = a.log

	sum, err := report.Run(ctx, ds, out, cfg)
	if err != nil {
		return err
	}
	a.log.Info().Int("blocks", len(sum.Blocks)).Msg("done")

	return nil
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Parse and build every block without rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.settings.loadDataset()
			if err != nil {
				return err
			}
			sum, err := report.Check(cmd.Context(), ds, a.settings.reportConfig())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, b := range sum.Blocks {
				fmt.Fprintf(out, "%s\t%d lines\t%d pairs\n", b.Name, b.Pairs, b.Marked)
			}

			return nil
		},
	}
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range render.Formats() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}

			return nil
		},
	}
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	root := NewRootCmd()
	// A nil slice would make cobra fall back to os.Args.
	root.SetArgs(append([]string{}, args...))
	if err := root.ExecuteContext(ctx); err != nil {
		log, _ := newLogger(os.Stderr, zerolog.ErrorLevel.String())
		log.Error().Err(err).Msg("emptytab failed")

		return 1
	}

	return 0
}
