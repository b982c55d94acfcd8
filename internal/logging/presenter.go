// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"fmt"
	"strings"

	rterrors "rawterm/cli/internal/errors"
)

// PresentError formats an error for user display with sanitizing.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", context, Sanitize(err.Error()))
}

// Describe returns the error's description. With verbose set, each error in
// the cause chain follows on its own indented line, along with the errno of
// an OS call failure.
func Describe(err error, verbose bool) string {
	if err == nil {
		return ""
	}
	if !verbose {
		return Sanitize(err.Error())
	}

	var b strings.Builder
	b.WriteString(Sanitize(err.Error()))

	var e *rterrors.Error
	if errors.As(err, &e) {
		if errno, ok := e.Errno(); ok {
			fmt.Fprintf(&b, " (errno %d)", int(errno))
		}
	}
	for _, cause := range rterrors.Chain(errors.Unwrap(err)) {
		b.WriteString("\n  caused by: ")
		b.WriteString(Sanitize(cause.Error()))
	}
	return b.String()
}
