package presentation

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"exifedit/editor"
)

func TestPrintTagsAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintTags([]editor.TagEntry{
		{Name: "Artist", Value: "Jane Doe"},
		{Name: "ImageDescription", Value: "Dunes at dusk"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Artist            ") {
		t.Fatalf("expected padded name column, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "Dunes at dusk") {
		t.Fatalf("expected value, got %q", lines[1])
	}
}

func TestPrintTagsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintTags(nil)
	if !strings.Contains(buf.String(), "No tags found") {
		t.Fatalf("expected placeholder, got %q", buf.String())
	}
}

func TestPrintTagAbsent(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintTag("Artist", "", false)
	if !strings.Contains(buf.String(), "(not set)") {
		t.Fatalf("expected (not set), got %q", buf.String())
	}
}

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintKeywords([]string{"sunset", "beach"})
	output := buf.String()
	if !strings.Contains(output, "sunset") || !strings.Contains(output, "beach") {
		t.Fatalf("expected both keywords, got %q", output)
	}

	buf.Reset()
	printer.PrintKeywords(nil)
	if !strings.Contains(buf.String(), "No keywords") {
		t.Fatalf("expected placeholder, got %q", buf.String())
	}
}

func TestPrintDateUsesExifLayout(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	when := time.Date(2023, 4, 5, 6, 7, 8, 0, time.Local)
	printer.PrintDate("DateTimeOriginal", when, true)
	if !strings.Contains(buf.String(), "2023:04:05 06:07:08") {
		t.Fatalf("expected EXIF layout, got %q", buf.String())
	}
}
