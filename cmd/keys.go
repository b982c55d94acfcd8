// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"io"

	"rawterm/cli/internal/logging"
	"rawterm/cli/internal/terminal"

	"atomicgo.dev/cursor"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
)

const ctrlC = 0x03

// keysCmd switches the terminal to raw mode and prints every character it
// decodes until q or Ctrl-C is pressed.
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show decoded key presses in raw mode",
	Long: `The keys command puts the terminal into raw mode and prints each decoded
character with its code point. Bytes that are not valid UTF-8 are reported
and skipped. Press q or Ctrl-C to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := openTerminal()
		if err := t.MakeRaw(); err != nil {
			return err
		}
		cursor.Hide()
		defer func() {
			cursor.Show()
			if err := t.Restore(); err != nil {
				logger.Warn("could not restore terminal", logger.Args("error", err.Error()))
			}
		}()

		if _, err := t.WriteString("Press keys to see them decoded, q or Ctrl-C to quit.\r\n"); err != nil {
			return err
		}
		return echoKeys(t)
	},
}

// echoKeys reads runes until q, Ctrl-C or end of input. Decoding failures are
// printed and reading continues; any other failure stops the loop.
func echoKeys(t *terminal.Terminal) error {
	for {
		r, err := t.ReadRune()
		switch {
		case errors.Is(err, encoding.ErrInvalidUTF8):
			if _, werr := t.WriteString(logging.Describe(err, true) + "\r\n"); werr != nil {
				return werr
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		if r == 'q' || r == ctrlC {
			return nil
		}
		if _, err := t.WriteString(describeRune(r) + "\r\n"); err != nil {
			return err
		}
	}
}

func describeRune(r rune) string {
	return fmt.Sprintf("%-8s U+%04X", logging.Sanitize(string(r)), r)
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
