package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <name>",
	Short: "Revert a theme to its file defaults",
	Long: `Clear all overrides for a theme and reload, reverting every attribute
to the value in the theme file.`,
	Args: cobra.ExactArgs(1),
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	report := themeStore.Reset(args[0])
	if !report.OK() {
		return report.Err()
	}
	fmt.Printf("reset %s\n", args[0])
	return nil
}
