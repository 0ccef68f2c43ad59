package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select <name>",
	Short: "Select a theme",
	Long: `Select a theme by name. The selection is persisted and re-resolved
on every load; if the selected theme later disappears, tint falls back
to the first theme by name.`,
	Args: cobra.ExactArgs(1),
	RunE: runSelect,
}

func init() {
	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	if err := themeStore.Select(args[0]); err != nil {
		return err
	}
	fmt.Printf("selected %s\n", args[0])
	return nil
}
