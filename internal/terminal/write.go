// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

// Write writes p to the output.
func (t *Terminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, t.fail("write", err)
	}
	return n, nil
}

// WriteString writes s to the output.
func (t *Terminal) WriteString(s string) (int, error) {
	n, err := t.out.WriteString(s)
	if err != nil {
		return n, t.fail("write", err)
	}
	return n, nil
}
