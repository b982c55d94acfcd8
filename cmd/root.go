// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the rawterm command-line interface. Each subcommand
// drives one or more operations of internal/terminal against the current
// terminal, so failures from every layer can be seen the way the library
// reports them.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"rawterm/cli/internal/config"
	rterrors "rawterm/cli/internal/errors"
	"rawterm/cli/internal/logging"
	"rawterm/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	showVersion bool
	verbose     bool
	logLevel    string

	cfg     = config.Default()
	logger  = logging.NewLogger(cfg.LogLevel, os.Stderr)
	logFile *os.File
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "rawterm",
	Short:         "Inspect and exercise the current terminal",
	Long:          `rawterm runs low-level terminal operations (raw mode, size, echo, reads and writes) and reports failures with their full cause chain.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cmd.Flags().Changed("verbose") {
			loaded.Verbose = verbose
		}
		if cmd.Flags().Changed("log-level") {
			loaded.LogLevel = logLevel
		}
		if loaded.Verbose && !cmd.Flags().Changed("log-level") && logging.ParseLevel(loaded.LogLevel) > pterm.LogLevelDebug {
			loaded.LogLevel = "debug"
		}
		cfg = loaded
		logger = logging.NewLogger(cfg.LogLevel, os.Stderr)
		if cfg.LogFile {
			f, err := openLogFile()
			if err != nil {
				logger.Warn("log file unavailable, logging to stderr", logger.Args("error", err.Error()))
			} else {
				logFile = f
				logger = logging.NewLogger(cfg.LogLevel, f)
			}
		}
		logger.Trace("config loaded", logger.Args("log_level", cfg.LogLevel, "verbose", cfg.Verbose))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "rawterm %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. Terminal failures are rendered with
// hints and exit with a status derived from their category.
func Execute() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		var termErr *rterrors.Error
		if errors.As(err, &termErr) {
			fmt.Fprintln(os.Stderr, logging.FormatTerminalError(err, cfg.Verbose))
		} else {
			fmt.Fprintln(os.Stderr, "Error:", logging.Sanitize(err.Error()))
		}
		os.Exit(logging.ExitCode(err))
	}
}

// openLogFile opens the debug log in the XDG state dir for appending.
func openLogFile() (*os.File, error) {
	path, err := config.LogPath()
	if err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// openTerminal returns a Terminal over stdin/stdout configured from cfg.
func openTerminal() *terminal.Terminal {
	return terminal.Stdio(
		terminal.WithLogger(logger),
		terminal.WithFallbackSize(cfg.FallbackWidth, cfg.FallbackHeight),
	)
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show full cause chains and debug logs")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, disabled)")
}
