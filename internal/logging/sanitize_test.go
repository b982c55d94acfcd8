// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain text is unchanged",
			input:    "internal io error",
			expected: "internal io error",
		},
		{
			name:     "Color sequences removed",
			input:    "\x1b[31mpermission denied\x1b[0m",
			expected: "permission denied",
		},
		{
			name:     "Cursor movement removed",
			input:    "\r\x1b[2K\x1b[1Abroken pipe",
			expected: "^Mbroken pipe",
		},
		{
			name:     "Window title removed",
			input:    "\x1b]0;owned\x07read failed",
			expected: "read failed",
		},
		{
			name:     "Control characters shown in caret notation",
			input:    "got \x03 and \x7f",
			expected: "got ^C and ^?",
		},
		{
			name:     "Newlines and tabs kept",
			input:    "line one\n\tline two",
			expected: "line one\n\tline two",
		},
		{
			name:     "Non-ASCII text kept",
			input:    "héllo wörld",
			expected: "héllo wörld",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Sanitize(tt.input)
			if result != tt.expected {
				t.Errorf("Sanitize() = %q, want %q", result, tt.expected)
			}
		})
	}
}
