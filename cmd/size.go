package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sizeFallback bool

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Print the terminal size as WIDTHxHEIGHT",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := openTerminal()
		if sizeFallback {
			w, h := t.SizeOrDefault()
			fmt.Fprintf(cmd.OutOrStdout(), "%dx%d\n", w, h)
			return nil
		}
		w, h, err := t.Size()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%dx%d\n", w, h)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
	sizeCmd.Flags().BoolVar(&sizeFallback, "fallback", false, "Print the configured fallback size instead of failing when not a terminal")
}
