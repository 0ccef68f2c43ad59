package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tintd/tint/internal/theme"
)

var setOpts struct {
	bold      bool
	italic    bool
	underline bool
}

var setCmd = &cobra.Command{
	Use:   "set <theme> <group.key> <color>",
	Short: "Override a theme attribute",
	Long: `Override one attribute of a theme. The theme file is left untouched;
the change is stored as an override in the preferences file and applied
on every load. An attribute set back to the file's value drops out of
the overrides on the next save.

The attribute is addressed as <group>.<key>, e.g. editor.background or
terminal.red.

Examples:
  # Change the editor background
  tint set gruvbox editor.background '#1d2021'

  # Make keywords bold
  tint set gruvbox editor.keyword '#fb4934' --bold`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().BoolVar(&setOpts.bold, "bold", false, "Set the bold flag")
	setCmd.Flags().BoolVar(&setOpts.italic, "italic", false, "Set the italic flag")
	setCmd.Flags().BoolVar(&setOpts.underline, "underline", false, "Set the underline flag")
}

func runSet(cmd *cobra.Command, args []string) error {
	themeName := args[0]

	group, key, ok := strings.Cut(args[1], ".")
	if !ok {
		return fmt.Errorf("attribute must be <group>.<key>, got %q", args[1])
	}

	attr := theme.Attribute{
		Color:     args[2],
		Bold:      setOpts.bold,
		Italic:    setOpts.italic,
		Underline: setOpts.underline,
	}

	report, err := themeStore.SetAttribute(themeName, group, key, attr)
	if err != nil {
		return err
	}
	if !report.OK() {
		return report.Err()
	}

	fmt.Printf("set %s %s.%s = %s\n", themeName, group, key, attr.Color)
	return nil
}
