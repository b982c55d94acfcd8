// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package errors

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want string
	}{
		{name: "plain description", desc: "terminal not in raw mode", want: "terminal not in raw mode"},
		{name: "io literal", desc: DescIO, want: DescIO},
		{name: "empty falls back", desc: "", want: "terminal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.desc)
			assert.Equal(t, tt.want, err.Description())
			assert.Equal(t, tt.want, err.Error())
			assert.Nil(t, err.Cause())
			assert.Nil(t, errors.Unwrap(err))

			_, ok := err.Errno()
			assert.False(t, ok)
		})
	}
}

func TestNew_DescriptionIsStable(t *testing.T) {
	err := New("read timeout")
	assert.Equal(t, err.Description(), err.Description())
	assert.Nil(t, err.Cause())
}

func TestFromErrno(t *testing.T) {
	tests := []struct {
		name  string
		errno syscall.Errno
	}{
		{name: "permission denied", errno: syscall.EACCES},
		{name: "not a tty", errno: syscall.ENOTTY},
		{name: "interrupted", errno: syscall.EINTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromErrno(tt.errno)
			assert.Equal(t, tt.errno.Error(), err.Description())
			assert.Nil(t, err.Cause())

			errno, ok := err.Errno()
			require.True(t, ok)
			assert.Equal(t, tt.errno, errno)
		})
	}
}

func TestFromErrno_MatchesErrno(t *testing.T) {
	err := FromErrno(syscall.ENOTTY)

	assert.True(t, errors.Is(err, syscall.ENOTTY))
	assert.False(t, errors.Is(err, syscall.EACCES))
	assert.True(t, errors.Is(fmt.Errorf("size: %w", err), syscall.ENOTTY))
	assert.Nil(t, err.Cause())

	assert.False(t, errors.Is(New("permission denied"), syscall.EACCES))
	assert.False(t, errors.Is(FromIO(errors.New("x")), syscall.Errno(0)))
}

func TestFromErrno_PermissionDenied(t *testing.T) {
	err := FromErrno(syscall.EACCES)
	assert.Equal(t, "permission denied", err.Description())
	assert.Nil(t, err.Cause())
}

func TestFromIO(t *testing.T) {
	cause := errors.New("broken pipe")
	err := FromIO(cause)

	assert.Equal(t, "internal io error", err.Description())
	require.NotNil(t, err.Cause())
	assert.Equal(t, "broken pipe", err.Cause().Error())
	assert.Same(t, cause, err.Cause())

	_, ok := err.Errno()
	assert.False(t, ok)
}

func TestFromIO_EmbeddedErrnoReachable(t *testing.T) {
	pathErr := &os.PathError{Op: "write", Path: "/dev/tty", Err: syscall.EPIPE}
	err := FromIO(pathErr)

	assert.Equal(t, DescIO, err.Description())
	assert.True(t, errors.Is(err, syscall.EPIPE))

	var target *os.PathError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "/dev/tty", target.Path)
}

func TestFromDecode(t *testing.T) {
	cause := fmt.Errorf("byte 0xff at offset 3: %w", encoding.ErrInvalidUTF8)
	err := FromDecode(cause)

	assert.Equal(t, "utf8 translation error", err.Description())
	require.NotNil(t, err.Cause())
	assert.Equal(t, cause.Error(), err.Cause().Error())
	assert.True(t, errors.Is(err, encoding.ErrInvalidUTF8))
}

func TestDisplay_ShowsDescriptionOnly(t *testing.T) {
	err := FromIO(errors.New("broken pipe"))

	assert.Equal(t, "internal io error", fmt.Sprint(err))
	assert.Equal(t, "internal io error", fmt.Sprintf("%v", err))
	assert.Equal(t, "internal io error", fmt.Sprintf("%s", err))
	assert.Equal(t, `"internal io error"`, fmt.Sprintf("%q", err))
	assert.Equal(t, "read: internal io error", fmt.Errorf("read: %w", err).Error())
}

func TestDisplay_VerboseWalksChain(t *testing.T) {
	pathErr := &os.PathError{Op: "read", Path: "/dev/tty", Err: syscall.EIO}
	err := FromIO(pathErr)

	want := "internal io error" +
		"\n  caused by: read /dev/tty: input/output error" +
		"\n  caused by: input/output error"
	assert.Equal(t, want, fmt.Sprintf("%+v", err))
	assert.Equal(t, "permission denied", fmt.Sprintf("%+v", FromErrno(syscall.EACCES)))
}

func TestConvert(t *testing.T) {
	existing := New("already converted")
	wrapped := fmt.Errorf("restore: %w", FromErrno(syscall.EACCES))
	decodeErr := fmt.Errorf("line 1: %w", encoding.ErrInvalidUTF8)
	pathErr := &os.PathError{Op: "read", Path: "/dev/tty", Err: syscall.EBADF}

	tests := []struct {
		name      string
		in        error
		wantDesc  string
		wantCause error
		wantErrno bool
	}{
		{name: "bare errno", in: syscall.ENOTTY, wantDesc: syscall.ENOTTY.Error(), wantErrno: true},
		{name: "decoding failure", in: decodeErr, wantDesc: DescDecode, wantCause: decodeErr},
		{name: "sentinel decoding failure", in: encoding.ErrInvalidUTF8, wantDesc: DescDecode, wantCause: encoding.ErrInvalidUTF8},
		{name: "path error", in: pathErr, wantDesc: DescIO, wantCause: pathErr},
		{name: "eof", in: io.EOF, wantDesc: DescIO, wantCause: io.EOF},
		{name: "existing", in: existing, wantDesc: "already converted"},
		{name: "wrapped existing", in: wrapped, wantDesc: syscall.EACCES.Error(), wantErrno: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.in)

			var e *Error
			require.True(t, errors.As(got, &e))
			assert.Equal(t, tt.wantDesc, e.Description())
			assert.Equal(t, tt.wantCause, e.Cause())

			_, ok := e.Errno()
			assert.Equal(t, tt.wantErrno, ok)
		})
	}
}

func TestConvert_NilStaysNil(t *testing.T) {
	assert.NoError(t, Convert(nil))
	assert.True(t, Convert(nil) == nil)
}

func TestConvert_ReturnsSameValue(t *testing.T) {
	e := FromIO(io.ErrUnexpectedEOF)
	assert.Same(t, e, Convert(e))

	wrapped := fmt.Errorf("restore: %w", FromErrno(syscall.EACCES))
	got := Convert(wrapped)
	assert.Same(t, wrapped, got)
	assert.True(t, errors.Is(got, syscall.EACCES))
}

func TestConvert_TypedNil(t *testing.T) {
	var e *Error
	assert.True(t, Convert(e) == nil)
	assert.True(t, Convert(fmt.Errorf("wrapped: %w", e)) != nil)
}

func TestResult(t *testing.T) {
	n, err := Result(42, nil)
	assert.Equal(t, 42, n)
	assert.NoError(t, err)

	n, err = Result(0, syscall.EAGAIN)
	assert.Equal(t, 0, n)
	assert.EqualError(t, err, syscall.EAGAIN.Error())
}

func TestChain(t *testing.T) {
	pathErr := &os.PathError{Op: "read", Path: "/dev/tty", Err: syscall.EIO}
	err := FromIO(pathErr)

	chain := Chain(err)
	require.Len(t, chain, 3)
	assert.Same(t, err, chain[0])
	assert.Same(t, pathErr, chain[1])
	assert.Equal(t, syscall.EIO, chain[2])

	assert.Empty(t, Chain(nil))
	assert.Len(t, Chain(New("x")), 1)
}
