package errors_test

import (
	"fmt"
	"os"
	"syscall"

	"rawterm/cli/internal/errors"
)

func ExampleConvert() {
	err := errors.Convert(&os.PathError{Op: "write", Path: "/dev/tty", Err: syscall.EPIPE})

	fmt.Println(err)
	fmt.Println(err.(*errors.Error).Cause())
	// Output:
	// internal io error
	// write /dev/tty: broken pipe
}

func ExampleFromErrno() {
	err := errors.FromErrno(syscall.EACCES)
	errno, _ := err.Errno()

	fmt.Println(err.Description(), err.Cause() == nil, int(errno))
	// Output: permission denied true 13
}
