// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package errors

import (
	"errors"
	"syscall"

	"golang.org/x/text/encoding"
)

// FromErrno converts an OS call failure. The errno text becomes the
// description; no cause is attached. The numeric value stays available
// through Errno.
func FromErrno(errno syscall.Errno) *Error {
	e := New(errno.Error())
	e.errno = errno
	e.hasErrno = true
	return e
}

// FromIO converts a buffered I/O failure, keeping err as the cause.
func FromIO(err error) *Error {
	return &Error{description: DescIO, cause: err}
}

// FromDecode converts a text decoding failure, keeping err as the cause.
func FromDecode(err error) *Error {
	return &Error{description: DescDecode, cause: err}
}

// Convert normalizes err at a propagation boundary.
//
// A nil err, including a nil *Error, returns a nil interface. An error that
// already has an *Error in its chain is returned unchanged, wrappers included.
// A bare errno is an OS call failure. Anything wrapping
// encoding.ErrInvalidUTF8 is a decoding failure. Everything else is treated
// as an I/O failure.
func Convert(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		if e == nil {
			return nil
		}
		return e
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return err
	}
	if errno, ok := err.(syscall.Errno); ok {
		return FromErrno(errno)
	}
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return FromDecode(err)
	}
	return FromIO(err)
}

// Result converts the error half of a two-value return:
//
//	fd, err := errors.Result(unix.Open(path, unix.O_RDWR, 0))
func Result[T any](v T, err error) (T, error) {
	return v, Convert(err)
}
