// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"rawterm/cli/internal/errors"

	"golang.org/x/term"
)

// MakeRaw puts the input into raw mode. The previous state is kept for
// Restore. Calling MakeRaw twice keeps the original state.
func (t *Terminal) MakeRaw() error {
	state, err := term.MakeRaw(t.inFd())
	if err != nil {
		return t.fail("make raw", err)
	}
	if t.state == nil {
		t.state = state
	}
	return nil
}

// Restore returns the input to the state saved by MakeRaw.
func (t *Terminal) Restore() error {
	if t.state == nil {
		return t.fail("restore", errors.New("terminal not in raw mode"))
	}
	if err := term.Restore(t.inFd(), t.state); err != nil {
		return t.fail("restore", err)
	}
	t.state = nil
	return nil
}

// IsRaw reports whether MakeRaw succeeded without a matching Restore.
func (t *Terminal) IsRaw() bool {
	return t.state != nil
}

// Size returns the output's width and height in cells.
func (t *Terminal) Size() (width, height int, err error) {
	width, height, err = windowSize(t.outFd())
	if err != nil {
		return 0, 0, t.fail("size", err)
	}
	return width, height, nil
}

// SizeOrDefault returns Size, or the fallback size when the query fails or
// reports a zero dimension.
func (t *Terminal) SizeOrDefault() (width, height int) {
	width, height, err := t.Size()
	if err != nil || width <= 0 || height <= 0 {
		return t.opts.fallbackWidth, t.opts.fallbackHeight
	}
	return width, height
}

// SetEcho turns input echo on or off.
func (t *Terminal) SetEcho(on bool) error {
	if err := setEcho(t.inFd(), on); err != nil {
		return t.fail("set echo", err)
	}
	return nil
}

// Echo reports whether input echo is on.
func (t *Terminal) Echo() (bool, error) {
	on, err := echo(t.inFd())
	if err != nil {
		return false, t.fail("echo", err)
	}
	return on, nil
}
