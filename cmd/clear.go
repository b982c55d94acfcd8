package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear N",
	Short: "Clear N characters of previously printed output",
	Long: `The clear command erases the lines that N characters of previous output
occupied at the current terminal width, plus the line the cursor is on.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid character count %q", args[0])
		}
		return openTerminal().ClearLines(n)
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
