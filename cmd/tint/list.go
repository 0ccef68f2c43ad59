package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tintd/tint/internal/core"
	"github.com/tintd/tint/internal/output"
	"github.com/tintd/tint/internal/theme"
)

var listOpts struct {
	appearance string
	filter     string
	sortField  string
	sortOrder  string
	format     string
	showPath   bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List themes",
	Long: `List the themes in the themes directory.

The selected theme is marked with an asterisk in plain output.

Examples:
  # List all themes
  tint list

  # List only dark themes
  tint list --appearance dark

  # Filter and sort
  tint list --filter "name~gruv" --sort modified --order desc

  # Machine-readable output
  tint list --format json`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listOpts.appearance, "appearance", "",
		"Filter by appearance (dark or light)")
	listCmd.Flags().StringVar(&listOpts.filter, "filter", "",
		"Filter expression, e.g. \"name~gruv,appearance=dark\"")
	listCmd.Flags().StringVar(&listOpts.sortField, "sort", "name",
		"Sort field: name, appearance, modified")
	listCmd.Flags().StringVar(&listOpts.sortOrder, "order", "asc",
		"Sort order: asc, desc")
	listCmd.Flags().StringVar(&listOpts.format, "format", "",
		"Output format: plain, json, yaml (default from config)")
	listCmd.Flags().BoolVar(&listOpts.showPath, "path", false,
		"Show theme file paths")
}

func runList(cmd *cobra.Command, args []string) error {
	themes := themeStore.Themes()

	if listOpts.appearance != "" {
		a := theme.Appearance(listOpts.appearance)
		if !a.Valid() {
			return fmt.Errorf("unknown appearance %q (want dark or light)", listOpts.appearance)
		}
		themes = themeStore.ByAppearance(a)
	}

	expr, err := core.ParseFilter(listOpts.filter)
	if err != nil {
		return err
	}
	themes = core.Filter(themes, expr)

	core.Sort(themes, core.SortOptions{
		Field: core.ParseSortField(listOpts.sortField),
		Order: core.ParseSortOrder(listOpts.sortOrder),
	})

	selected := ""
	if t := themeStore.Selected(); t != nil {
		selected = t.Name
	}

	formatter := output.NewFormatter(resolveFormat(listOpts.format), output.FormatterOptions{
		Selected: selected,
		ShowPath: listOpts.showPath,
		ShowTime: true,
	})

	return formatter.Format(os.Stdout, themes)
}

// resolveFormat picks the output format from the flag, falling back to
// the configured default.
func resolveFormat(flag string) output.FormatType {
	if flag != "" {
		return output.FormatType(flag)
	}
	return output.FormatType(cfg.Output.Format)
}
