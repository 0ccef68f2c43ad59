// Package preview renders a theme as colored terminal swatches.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tintd/tint/internal/theme"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	groupStyle = lipgloss.NewStyle().Underline(true)
	keyStyle   = lipgloss.NewStyle().Width(16)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

const swatchBlock = "██████"

// Render produces a terminal rendering of the theme: one swatch line
// per attribute, grouped by attribute group.
func Render(t *theme.Theme) (string, error) {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(t.Name))
	sb.WriteString(dimStyle.Render(fmt.Sprintf(" (%s)", t.Appearance)))
	sb.WriteString("\n")

	for _, g := range theme.Groups(t) {
		fields, err := theme.Fields(g.Group)
		if err != nil {
			return "", err
		}

		sb.WriteString("\n")
		sb.WriteString(groupStyle.Render(g.Name))
		sb.WriteString("\n")

		for _, f := range fields {
			sb.WriteString("  ")
			sb.WriteString(keyStyle.Render(f.Key))
			sb.WriteString(swatch(*f.Value))
			sb.WriteString("  ")
			sb.WriteString(f.Value.Color)
			if flags := flagNames(*f.Value); flags != "" {
				sb.WriteString(dimStyle.Render("  " + flags))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

// swatch renders a color block for one attribute.
func swatch(a theme.Attribute) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(a.Color)).
		Render(swatchBlock)
}

// flagNames lists the style flags set on an attribute.
func flagNames(a theme.Attribute) string {
	var flags []string
	if a.Bold {
		flags = append(flags, "bold")
	}
	if a.Italic {
		flags = append(flags, "italic")
	}
	if a.Underline {
		flags = append(flags, "underline")
	}
	return strings.Join(flags, " ")
}
