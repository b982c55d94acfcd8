// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"unicode/utf8"

	"rawterm/cli/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	readPrompt string
	readNoEcho bool
	readClear  bool
)

// readCmd reads one line of UTF-8 text from the terminal.
var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read and validate one line of input",
	Long: `The read command prompts for a single line, validates that it is UTF-8 and
reports how many characters it contains. With --no-echo the input is hidden
and only its length is printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := openTerminal()

		if _, err := t.WriteString(readPrompt); err != nil {
			return err
		}
		if readNoEcho {
			if err := t.SetEcho(false); err != nil {
				return err
			}
			defer func() {
				if err := t.SetEcho(true); err != nil {
					logger.Warn("could not re-enable echo", logger.Args("error", err.Error()))
				}
			}()
		}

		line, err := t.ReadLine()
		if readNoEcho {
			// The newline typed by the user was not echoed either.
			if _, werr := t.WriteString("\n"); werr != nil && err == nil {
				err = werr
			}
		}
		if err != nil {
			return err
		}

		if readClear {
			if err := t.ClearLines(shownLength(readPrompt, line, !readNoEcho)); err != nil {
				return err
			}
		}

		runes := utf8.RuneCountInString(line)
		if readNoEcho {
			pterm.Success.Println(fmt.Sprintf("read %d characters", runes))
			return nil
		}
		pterm.Success.Println(fmt.Sprintf("read %d characters: %s", runes, logging.Sanitize(line)))
		return nil
	},
}

// shownLength returns how many characters the prompt and the echoed input
// took on screen.
func shownLength(prompt, line string, echoed bool) int {
	n := utf8.RuneCountInString(prompt)
	if echoed {
		n += utf8.RuneCountInString(line)
	}
	return n
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().StringVarP(&readPrompt, "prompt", "p", "> ", "Prompt to show before reading")
	readCmd.Flags().BoolVar(&readNoEcho, "no-echo", false, "Hide the input while it is typed")
	readCmd.Flags().BoolVar(&readClear, "clear", false, "Clear the prompt and input after reading")
}
