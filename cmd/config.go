// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"rawterm/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// configCmd groups the commands that read and edit the config file.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change rawterm settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config file: %s\n", path)
		return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(configTable(cfg)).Render()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting and save the config file",
	Long: `The set command updates one setting and writes the config file with private
permissions. Keys: log_level, verbose, log_file, fallback_width, fallback_height.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadFile()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := c.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(c); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		logger.Debug("config saved", logger.Args("key", args[0], "value", args[1]))
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
		return nil
	},
}

func configTable(c config.Config) pterm.TableData {
	return pterm.TableData{
		{"Key", "Value"},
		{"log_level", c.LogLevel},
		{"verbose", strconv.FormatBool(c.Verbose)},
		{"log_file", strconv.FormatBool(c.LogFile)},
		{"fallback_width", strconv.Itoa(c.FallbackWidth)},
		{"fallback_height", strconv.Itoa(c.FallbackHeight)},
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd)
}
