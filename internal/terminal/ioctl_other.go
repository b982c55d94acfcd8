//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package terminal

import (
	"rawterm/cli/internal/errors"

	"golang.org/x/term"
)

func windowSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

func echo(int) (bool, error) {
	return false, errors.New("echo control unsupported on this platform")
}

func setEcho(int, bool) error {
	return errors.New("echo control unsupported on this platform")
}
