// Package main is the entry point for the undolog demonstration.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/undolog/internal/config"
	"github.com/dshills/undolog/internal/logging"
	"github.com/dshills/undolog/internal/script"
	"github.com/dshills/undolog/internal/undo"
	"github.com/dshills/undolog/internal/wave"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	configPath string
	logLevel   string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "undodemo",
		Short:         "Undo/redo transaction log demonstration",
		Long:          "undodemo commits sine wave snapshots to an undo log and walks through the history.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := setup(opts, stderr)
			if err != nil {
				return err
			}
			return wave.RunScenario(stdout, app, wave.DefaultEdits)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file (.toml, .yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	scriptCmd := &cobra.Command{
		Use:   "script FILE",
		Short: "Run a Lua script against the wave app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, logger, err := setup(opts, stderr)
			if err != nil {
				return err
			}
			runner := script.NewRunner(app, stdout, script.WithLogger(logger))
			defer runner.Close()
			return runner.DoFile(cmd.Context(), args[0])
		},
	}
	root.AddCommand(scriptCmd)

	return root
}

// setup loads configuration and builds the logger, undo log and app.
func setup(opts options, stderr io.Writer) (*wave.App, *logging.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.logLevel != "" {
		if _, ok := logging.LookupLevel(opts.logLevel); !ok {
			return nil, nil, fmt.Errorf("invalid log level %q", opts.logLevel)
		}
		cfg.Log.Level = opts.logLevel
	}

	logger := cfg.Logger()
	logger.SetOutput(stderr)

	log := undo.New(
		undo.WithLogger(logger),
		undo.WithMaxEntries(cfg.History.MaxEntries),
		undo.WithChangeHandler(func(l *undo.Log) {
			logger.Debug("history changed: %d entries, cursor %d, undo=%t redo=%t",
				l.Len(), l.Cursor(), l.HasUndo(), l.HasRedo())
		}),
	)

	app := wave.NewApp(wave.Params{
		Amplitude: cfg.Wave.Amplitude,
		Frequency: cfg.Wave.Frequency,
		Cycles:    cfg.Wave.Cycles,
	}, log)
	return app, logger, nil
}
