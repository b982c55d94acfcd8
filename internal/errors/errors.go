// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines the single error type returned by terminal operations.
// Failures from three sources are normalized into it: OS call failures (bare
// errno values from ioctl-style calls), buffered I/O failures, and UTF-8
// decoding failures. Each value carries a short description and, for the I/O
// and decoding sources, the original error as its cause.
//
// Display shows the description only. Callers that need more depth walk the
// cause chain with Cause, errors.Unwrap or Chain.
package errors

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Descriptions used by the conversion rules.
const (
	DescIO       = "internal io error"
	DescDecode   = "utf8 translation error"
	descFallback = "terminal error"
)

// Error is a terminal operation failure.
type Error struct {
	description string
	cause       error
	errno       syscall.Errno
	hasErrno    bool
}

// New creates an Error with the given description and no cause.
func New(desc string) *Error {
	if desc == "" {
		desc = descFallback
	}
	return &Error{description: desc}
}

// Description returns the short failure description.
func (e *Error) Description() string {
	return e.description
}

// Cause returns the immediate underlying error, or nil.
func (e *Error) Cause() error {
	return e.cause
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Errno returns the numeric code of an OS call failure.
// The second result is false for errors from other sources.
func (e *Error) Errno() (syscall.Errno, bool) {
	return e.errno, e.hasErrno
}

// Is reports whether target is the errno this OS call failure was built
// from, so errors.Is matches it even though no cause is attached.
func (e *Error) Is(target error) bool {
	errno, ok := target.(syscall.Errno)
	return ok && e != nil && e.hasErrno && e.errno == errno
}

func (e *Error) Error() string {
	return e.description
}

// Format writes the description for %s, %v and %q.
// %+v also writes every error in the cause chain, one per line.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, e.description)
			for _, c := range Chain(e.cause) {
				fmt.Fprintf(s, "\n  caused by: %s", c.Error())
			}
			return
		}
		io.WriteString(s, e.description)
	case 's':
		io.WriteString(s, e.description)
	case 'q':
		fmt.Fprintf(s, "%q", e.description)
	default:
		fmt.Fprintf(s, "%%!%c(errors.Error=%s)", verb, e.description)
	}
}

// Chain returns err followed by each error reachable through Unwrap,
// outermost first. A nil err yields an empty chain.
func Chain(err error) []error {
	var chain []error
	for err != nil {
		chain = append(chain, err)
		err = errors.Unwrap(err)
	}
	return chain
}
