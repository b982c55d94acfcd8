// Package main is the entry point for the rawterm CLI.
// It exercises the terminal library in internal/terminal from the command line.
package main

import (
	"rawterm/cli/cmd"
)

func main() {
	cmd.Execute()
}
