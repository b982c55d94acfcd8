// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"os"
	"strings"
	"syscall"

	rterrors "rawterm/cli/internal/errors"

	"github.com/pterm/pterm"
	"golang.org/x/text/encoding"
)

// Category groups terminal failures by what the user can do about them.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryPermission
	CategoryNotTerminal
	CategoryInterrupted
	CategoryBrokenPipe
	CategoryClosed
	CategoryDecoding
	CategoryIO
)

func (c Category) String() string {
	switch c {
	case CategoryPermission:
		return "permission"
	case CategoryNotTerminal:
		return "not_terminal"
	case CategoryInterrupted:
		return "interrupted"
	case CategoryBrokenPipe:
		return "broken_pipe"
	case CategoryClosed:
		return "closed"
	case CategoryDecoding:
		return "decoding"
	case CategoryIO:
		return "io"
	default:
		return "unknown"
	}
}

// Classify categorizes err by searching its whole cause chain.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	switch {
	case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return CategoryPermission
	case errors.Is(err, syscall.ENOTTY), errors.Is(err, syscall.ENODEV):
		return CategoryNotTerminal
	case errors.Is(err, syscall.EINTR):
		return CategoryInterrupted
	case errors.Is(err, syscall.EPIPE):
		return CategoryBrokenPipe
	case errors.Is(err, os.ErrClosed), errors.Is(err, syscall.EBADF):
		return CategoryClosed
	case errors.Is(err, encoding.ErrInvalidUTF8):
		return CategoryDecoding
	}

	var e *rterrors.Error
	if errors.As(err, &e) && e.Description() == rterrors.DescIO {
		return CategoryIO
	}
	return CategoryUnknown
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch Classify(err) {
	case CategoryDecoding:
		return 2
	case CategoryPermission:
		return 5
	case CategoryNotTerminal:
		return 6
	case CategoryInterrupted:
		return 130
	default:
		return 1
	}
}

// FormatTerminalError formats a terminal failure for the user: a title, a
// few hints for the category, and the technical details. With verbose set
// the details include the whole cause chain.
func FormatTerminalError(err error, verbose bool) string {
	if err == nil {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Terminal Error"))
	builder.WriteString("\n\n")

	switch Classify(err) {
	case CategoryPermission:
		builder.WriteString("The terminal refused the operation.\n")
		builder.WriteString("This usually happens when:\n")
		builder.WriteString("  • The device belongs to another user or session\n")
		builder.WriteString("  • The process runs in the background of a job-controlled shell\n")

	case CategoryNotTerminal:
		builder.WriteString("The input or output is not a terminal.\n")
		builder.WriteString("This usually happens when:\n")
		builder.WriteString("  • Input is piped or redirected from a file\n")
		builder.WriteString("  • The command runs under a service manager or CI without a TTY\n")

	case CategoryInterrupted:
		builder.WriteString("The operation was interrupted by a signal.\n")

	case CategoryBrokenPipe:
		builder.WriteString("The other end of the output stopped reading.\n")
		builder.WriteString("This usually happens when output is piped into a command that exited early.\n")

	case CategoryClosed:
		builder.WriteString("The terminal was already closed.\n")

	case CategoryDecoding:
		builder.WriteString("The input contained bytes that are not valid UTF-8.\n")
		builder.WriteString("Check that:\n")
		builder.WriteString("  • The terminal encoding is set to UTF-8 (see the LANG and LC_ALL variables)\n")
		builder.WriteString("  • Binary data is not being pasted or piped in\n")

	default:
		builder.WriteString("A terminal operation failed.\n")
	}

	builder.WriteString("\n")
	builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Describe(err, verbose)))

	return builder.String()
}
