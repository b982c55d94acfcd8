// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the rawterm logger and the helpers that turn
// terminal errors into text for users. Error text that came from the
// terminal itself is sanitized first so stray escape sequences cannot move
// the cursor or recolor the screen while an error is being shown.
package logging

import (
	"regexp"
	"strings"
)

var (
	reCSI = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)      // cursor movement, colors
	reOSC = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)?`) // window title etc.
	reESC = regexp.MustCompile(`\x1b[@-Z\\-_]`)                    // two-byte escapes
)

// Sanitize removes ANSI escape sequences and control characters from s.
// Tabs and newlines are kept; other control characters are replaced by their
// caret notation (e.g. "^C").
func Sanitize(s string) string {
	out := reOSC.ReplaceAllString(s, "")
	out = reCSI.ReplaceAllString(out, "")
	out = reESC.ReplaceAllString(out, "")

	var b strings.Builder
	b.Grow(len(out))
	for _, r := range out {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r < 0x20:
			b.WriteByte('^')
			b.WriteRune(r + '@')
		case r == 0x7f:
			b.WriteString("^?")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
