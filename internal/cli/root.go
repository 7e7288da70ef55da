// Package cli wires the puzzle runner to its command-line surface.
package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/config"
	"github.com/roach88/advent/internal/input"
	"github.com/roach88/advent/internal/runner"
	"github.com/roach88/advent/internal/solutions"
)

// Options holds the flags of one CLI invocation.
type Options struct {
	Verbosity int
	List      bool
	Day       int
	RunAll    bool
	Part      int
	Test      int

	// ConfigPath overrides the config file location. If empty,
	// config.DefaultPath is used.
	ConfigPath string
}

// NewRootCommand creates the root command for the advent CLI.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "advent",
		Short: "Advent of Code puzzle runner",
		Long: `Run Advent of Code puzzle solutions against cached, downloaded, or
user-supplied test input, timing each part and checking the answer
against the expected result when one is known.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Part != 0 && opts.Part != 1 && opts.Part != 2 {
				return NewExitError(ExitUsage, "invalid part: must be 1 or 2")
			}
			setupLogging(cmd.ErrOrStderr(), opts.Verbosity)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().CountVarP(&opts.Verbosity, "verbosity", "v", "increase output verbosity")
	cmd.Flags().BoolVarP(&opts.List, "list", "l", false, "list available days")
	cmd.Flags().IntVarP(&opts.Day, "run", "r", 0, "run the puzzle for a specific day")
	cmd.Flags().BoolVarP(&opts.RunAll, "run-all", "a", false, "run all puzzles")
	cmd.Flags().IntVarP(&opts.Part, "part", "p", 0, "only run a single part of the puzzle(s)")
	cmd.Flags().IntVarP(&opts.Test, "test", "t", 0, "use test fixture N instead of real input")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to config file")

	cmd.MarkFlagsMutuallyExclusive("list", "run", "run-all")
	cmd.MarkFlagsOneRequired("list", "run", "run-all")

	return cmd
}

func run(cmd *cobra.Command, opts *Options) error {
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	prompter := &input.TerminalPrompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	loader := input.NewLoader(cfg, opts.Test, prompter, nil)
	r := runner.New(loader, solutions.Default(), cmd.OutOrStdout())

	switch {
	case opts.List:
		r.List(cmd.OutOrStdout())
		return nil
	case opts.RunAll:
		slog.Info("running all puzzles")
		return classify(r.RunAll(opts.Part))
	default:
		return classify(r.RunDay(opts.Day, opts.Part))
	}
}

// classify splits runner errors into command errors (bad data or
// configuration, exit 3) and solver failures (exit 1).
func classify(err error) error {
	if err == nil {
		return nil
	}
	var loadErr *input.LoadError
	var unknownDay *runner.UnknownDayError
	if errors.As(err, &loadErr) || errors.As(err, &unknownDay) {
		return WrapExitError(ExitCommandError, "failed to load puzzle", err)
	}
	return WrapExitError(ExitFailure, "puzzle failed", err)
}

func setupLogging(w io.Writer, verbosity int) {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	slog.Debug("verbosity configured", "count", verbosity)
}
