// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"math"
	"strings"
)

const (
	eraseLine = "\r\x1b[2K"
	lineUp    = "\x1b[1A"
)

// ClearLines clears text that was previously printed to the output.
// It works out how many lines textLength characters occupied at the current
// width, then moves up and erases each of them.
//
// One extra line is cleared for the newline the user typed after the input,
// so a prompt plus its answer disappears completely.
func (t *Terminal) ClearLines(textLength int) error {
	_, err := t.WriteString(clearSequence(textLength, t.widthOrDefault()))
	return err
}

func (t *Terminal) widthOrDefault() int {
	width, _ := t.SizeOrDefault()
	return width
}

// clearSequence builds the escape sequence that erases textLength characters
// wrapped at width columns, plus the line the cursor sits on.
func clearSequence(textLength, width int) string {
	if width <= 0 {
		width = 80
	}
	totalLines := int(math.Ceil(float64(textLength) / float64(width)))
	if totalLines < 1 {
		totalLines = 1
	}
	linesToClear := totalLines + 1

	var b strings.Builder
	for i := 0; i < linesToClear; i++ {
		b.WriteString(eraseLine)
		if i < linesToClear-1 {
			b.WriteString(lineUp)
		}
	}
	return b.String()
}
