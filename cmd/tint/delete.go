package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a theme",
	Long: `Delete a theme's file from the themes directory, along with its
stored overrides. If the deleted theme was the last one, the bundled
default theme is bootstrapped on the next load.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	report := themeStore.Delete(args[0])
	if !report.OK() {
		return report.Err()
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}
