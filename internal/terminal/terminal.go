// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal provides the terminal operations used by rawterm: raw mode
// switching, size and echo control through ioctls, buffered reads of bytes,
// runes and lines, and writes.
//
// Every failure is returned as an *errors.Error from internal/errors, so
// callers see a single error type no matter which layer failed.
package terminal

import (
	"bufio"
	stderrors "errors"
	"os"

	"rawterm/cli/internal/errors"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Terminal wraps an input and output file pair.
type Terminal struct {
	in     *os.File
	out    *os.File
	reader *bufio.Reader
	state  *term.State
	offset int64
	opts   options
}

// Open returns a Terminal reading from in and writing to out.
// No system calls are made until an operation is invoked.
func Open(in, out *os.File, userOpts ...Option) *Terminal {
	opts := defaultOptions()
	for _, o := range userOpts {
		o(&opts)
	}
	return &Terminal{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
		opts:   opts,
	}
}

// Stdio returns a Terminal over os.Stdin and os.Stdout.
func Stdio(userOpts ...Option) *Terminal {
	return Open(os.Stdin, os.Stdout, userOpts...)
}

// IsTerminal reports whether the input is connected to a terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.inFd())
}

// Offset returns the number of bytes consumed from the input so far.
func (t *Terminal) Offset() int64 {
	return t.offset
}

func (t *Terminal) inFd() int  { return int(t.in.Fd()) }
func (t *Terminal) outFd() int { return int(t.out.Fd()) }

// fail converts err and logs it at debug level under op.
func (t *Terminal) fail(op string, err error) error {
	err = errors.Convert(err)
	if err == nil {
		return nil
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return err
	}
	args := []any{"op", op, "description", e.Description()}
	if errno, ok := e.Errno(); ok {
		args = append(args, "errno", int(errno))
	}
	if cause := e.Cause(); cause != nil {
		args = append(args, "cause", cause.Error())
	}
	t.opts.logger.Debug("terminal operation failed", t.opts.logger.Args(args...))
	return err
}

func discardLogger() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
}
