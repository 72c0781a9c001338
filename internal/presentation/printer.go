package presentation

import (
	"fmt"
	"io"
	"time"

	"exifedit/editor"
)

// Printer renders command output for the non-interactive CLI commands.
type Printer struct {
	Writer io.Writer
}

func (p Printer) PrintTags(entries []editor.TagEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(p.Writer, "No tags found")
		return
	}
	width := 0
	for _, entry := range entries {
		if len(entry.Name) > width {
			width = len(entry.Name)
		}
	}
	for _, line := range formatTagLines(entries, width) {
		fmt.Fprintln(p.Writer, line)
	}
}

func (p Printer) PrintTag(name string, value string, ok bool) {
	if !ok {
		fmt.Fprintf(p.Writer, "%s: (not set)\n", name)
		return
	}
	fmt.Fprintf(p.Writer, "%s: %s\n", name, value)
}

func (p Printer) PrintKeywords(keywords []string) {
	if len(keywords) == 0 {
		fmt.Fprintln(p.Writer, "No keywords")
		return
	}
	for _, keyword := range keywords {
		fmt.Fprintf(p.Writer, "  %s\n", keyword)
	}
}

func (p Printer) PrintDate(label string, t time.Time, ok bool) {
	if !ok {
		fmt.Fprintf(p.Writer, "%s: (not set)\n", label)
		return
	}
	fmt.Fprintf(p.Writer, "%s: %s\n", label, t.Format(editor.TimeLayout))
}

func formatTagLines(entries []editor.TagEntry, width int) []string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%-*s  %s", width, entry.Name, entry.ValueString()))
	}
	return lines
}
