// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"strconv"

	rterrors "rawterm/cli/internal/errors"
	"rawterm/cli/internal/logging"
	"rawterm/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var probeStrict bool

// probeResult is the outcome of one terminal operation.
type probeResult struct {
	Op      string
	Err     error
	Skipped bool
	Detail  string
}

// probeCmd runs each terminal operation once and shows how every failure is
// reported: description, immediate cause and errno.
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Run every terminal operation and report the results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results := runProbes(openTerminal())

		if err := pterm.DefaultTable.WithHasHeader().WithData(probeTable(results)).Render(); err != nil {
			return fmt.Errorf("render results: %w", err)
		}

		if probeStrict {
			for _, r := range results {
				if r.Err != nil {
					return fmt.Errorf("probe %s: %w", r.Op, r.Err)
				}
			}
		}
		return nil
	},
}

// runProbes exercises the terminal without reading input.
func runProbes(t *terminal.Terminal) []probeResult {
	var results []probeResult

	results = append(results, probeResult{Op: "isatty", Detail: strconv.FormatBool(t.IsTerminal())})

	w, h, err := t.Size()
	results = append(results, probeResult{Op: "size", Err: err, Detail: fmt.Sprintf("%dx%d", w, h)})

	on, err := t.Echo()
	results = append(results, probeResult{Op: "echo", Err: err, Detail: strconv.FormatBool(on)})

	err = t.MakeRaw()
	results = append(results, probeResult{Op: "make raw", Err: err})
	if err != nil {
		results = append(results, probeResult{Op: "restore", Skipped: true})
	} else {
		results = append(results, probeResult{Op: "restore", Err: t.Restore()})
	}

	_, err = t.WriteString("")
	results = append(results, probeResult{Op: "write", Err: err})

	return results
}

// probeTable renders results as rows of operation, status, description,
// cause and errno.
func probeTable(results []probeResult) pterm.TableData {
	data := pterm.TableData{{"Operation", "Status", "Description", "Cause", "Errno"}}
	for _, r := range results {
		switch {
		case r.Skipped:
			data = append(data, []string{r.Op, "skipped", "", "", ""})
		case r.Err == nil:
			data = append(data, []string{r.Op, "ok", r.Detail, "", ""})
		default:
			data = append(data, failureRow(r.Op, r.Err))
		}
	}
	return data
}

func failureRow(op string, err error) []string {
	row := []string{op, "failed", logging.Sanitize(err.Error()), "", ""}

	var e *rterrors.Error
	if !errors.As(err, &e) {
		return row
	}
	if cause := e.Cause(); cause != nil {
		row[3] = logging.Sanitize(cause.Error())
	}
	if errno, ok := e.Errno(); ok {
		row[4] = strconv.Itoa(int(errno))
	}
	return row
}

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().BoolVar(&probeStrict, "strict", false, "Exit with an error when any operation fails")
}
