// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DecodeError reports input bytes that are not valid UTF-8.
type DecodeError struct {
	// Offset is the input position of the first invalid byte.
	Offset int64
	// Bytes holds the rejected input, at most utf8.UTFMax bytes.
	Bytes []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid utf-8 sequence % x at offset %d", e.Bytes, e.Offset)
}

// Unwrap returns encoding.ErrInvalidUTF8.
func (e *DecodeError) Unwrap() error {
	return encoding.ErrInvalidUTF8
}

// ReadByte reads a single byte.
func (t *Terminal) ReadByte() (byte, error) {
	b, err := t.reader.ReadByte()
	if err != nil {
		return 0, t.fail("read byte", err)
	}
	t.offset++
	return b, nil
}

// ReadRune reads a single UTF-8 encoded character. An invalid byte is
// consumed and reported as a decoding failure.
func (t *Terminal) ReadRune() (rune, error) {
	r, size, err := t.reader.ReadRune()
	if err != nil {
		return 0, t.fail("read rune", err)
	}
	start := t.offset
	t.offset += int64(size)
	if r == utf8.RuneError && size == 1 {
		if err := t.reader.UnreadRune(); err == nil {
			b, _ := t.reader.ReadByte()
			return 0, t.fail("read rune", &DecodeError{Offset: start, Bytes: []byte{b}})
		}
		return 0, t.fail("read rune", &DecodeError{Offset: start})
	}
	return r, nil
}

// ReadLine reads up to and including the next newline and returns the line
// without its "\n" or "\r\n" terminator. A final line without a newline is
// returned as is; io.EOF is only reported when no bytes remain.
func (t *Terminal) ReadLine() (string, error) {
	raw, err := t.reader.ReadBytes('\n')
	start := t.offset
	t.offset += int64(len(raw))
	if err != nil && (err != io.EOF || len(raw) == 0) {
		return "", t.fail("read line", err)
	}

	if _, n, verr := transform.Bytes(encoding.UTF8Validator, raw); verr != nil {
		end := n + utf8.UTFMax
		if end > len(raw) {
			end = len(raw)
		}
		return "", t.fail("read line", &DecodeError{Offset: start + int64(n), Bytes: raw[n:end]})
	}

	line := strings.TrimSuffix(string(raw), "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
