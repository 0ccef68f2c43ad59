package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tintd/tint/internal/output"
	"github.com/tintd/tint/internal/preview"
	"github.com/tintd/tint/internal/theme"
)

var showOpts struct {
	format string
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a theme's attributes",
	Long: `Show one theme with its attribute values, including any overrides
currently applied. Without a name, shows the selected theme.

By default the theme is rendered as colored swatches. Use --format to
dump the theme document instead.

Examples:
  # Preview the selected theme
  tint show

  # Preview a specific theme
  tint show gruvbox

  # Dump a theme as YAML
  tint show gruvbox --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVar(&showOpts.format, "format", "",
		"Output format: json or yaml (default: swatch preview)")
}

func runShow(cmd *cobra.Command, args []string) error {
	var t *theme.Theme
	if len(args) == 1 {
		var ok bool
		t, ok = themeStore.Theme(args[0])
		if !ok {
			return fmt.Errorf("theme %q not found", args[0])
		}
	} else {
		t = themeStore.Selected()
		if t == nil {
			return fmt.Errorf("no theme selected")
		}
	}

	switch output.FormatType(showOpts.format) {
	case output.FormatJSON:
		return output.NewJSONFormatter(output.FormatterOptions{}).FormatSingle(os.Stdout, t)
	case output.FormatYAML:
		return output.NewYAMLFormatter(output.FormatterOptions{}).FormatSingle(os.Stdout, t)
	case "":
		rendered, err := preview.Render(t)
		if err != nil {
			return err
		}
		fmt.Print(rendered)
		return nil
	default:
		return fmt.Errorf("unknown format %q", showOpts.format)
	}
}
