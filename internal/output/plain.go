package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/tintd/tint/internal/theme"
)

// PlainFormatter formats themes as an aligned plain-text table.
type PlainFormatter struct {
	opts FormatterOptions
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

// Format writes one line per theme.
func (f *PlainFormatter) Format(w io.Writer, themes []*theme.Theme) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, t := range themes {
		marker := " "
		if t.Name == f.opts.Selected {
			marker = "*"
		}

		fmt.Fprintf(tw, "%s %s\t%s", marker, t.Name, t.Appearance)

		if f.opts.ShowTime && !t.ModTime.IsZero() {
			fmt.Fprintf(tw, "\t%s", humanize.Time(t.ModTime))
		}
		if f.opts.ShowPath {
			fmt.Fprintf(tw, "\t%s", t.Path)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
