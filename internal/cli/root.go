// Package cli defines the command-line interface for sweepctl.
package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/prsweep/sweepctl/internal/config"
	"github.com/prsweep/sweepctl/internal/githubapi"
	"github.com/prsweep/sweepctl/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	ConfigPath string
	EnvFiles   []string
	Timeout    time.Duration
	LogLevel   logging.Level

	// newAPI builds the GitHub client; tests replace it with a mock factory.
	newAPI apiFactory
}

// Execute builds the root command, runs it with the provided args and logger,
// and returns any error. Returned errors are fatal (exit 1); non-fatal
// mutation failures are logged inside the commands and swallowed.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{
		ConfigPath: config.DefaultPolicyPath,
		Timeout:    githubapi.DefaultCallTimeout,
		LogLevel:   logging.LevelInfo,
		newAPI:     defaultAPIFactory,
	}

	rootCmd := newRootCommand(rootOpts, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and the
// three comment-lifecycle subcommands.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweepctl",
		Short: "sweepctl manages GitHub PR review comment lifecycle from CI",
		Long: "sweepctl is a one-shot CLI invoked from CI pipelines to keep pull-request\n" +
			"conversations tidy: it minimizes outdated bot comments and resolves review\n" +
			"threads through the GitHub REST and GraphQL APIs.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.ParseLevel(cmd.Flag("log-level").Value.String())
			opts.LogLevel = level
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))

			if err := config.LoadEnvFiles(opts.EnvFiles); err != nil {
				return err
			}
			logger.Debug("logger initialized", "level", level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", config.DefaultPolicyPath, "Path to optional sweep policy file")
	cmd.PersistentFlags().StringSliceVar(&opts.EnvFiles, "env-file", nil, "Extra .env files to load before running")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", githubapi.DefaultCallTimeout, "Timeout for each GitHub API call")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newMinimizeOneCommand(opts),
		newResolveThreadCommand(opts),
		newMinimizeBulkCommand(opts),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a
// default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
