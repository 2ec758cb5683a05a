package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/phobologic/widgetlint/internal/fix"
	"github.com/phobologic/widgetlint/internal/rule"
)

func init() {
	color.NoColor = true
}

func sampleDiags() []rule.Diagnostic {
	return []rule.Diagnostic{
		{
			Rule:     "positioned_outside_stack",
			Severity: rule.SeverityError,
			Message:  "Positioned is not placed inside a Stack",
			Path:     "lib/app.dart",
			Line:     3,
			Col:      5,
		},
		{
			Rule:     "image_missing_label",
			Severity: rule.SeverityWarning,
			Message:  "Image has no semanticLabel",
			Path:     "lib/app.dart",
			Line:     9,
			Col:      7,
		},
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &TextWriter{Out: &buf}
	if err := w.Write(sampleDiags()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.String()
	want := "lib/app.dart:3:5: error: Positioned is not placed inside a Stack (positioned_outside_stack)"
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("want 2 lines, got %d:\n%s", got, out)
	}
}

func TestTextWriterFixPreview(t *testing.T) {
	src := []byte("Container(child: Text('hi'))")
	d := rule.Diagnostic{
		Rule:     "avoid_unnecessary_container",
		Severity: rule.SeverityInfo,
		Message:  "Container wraps a single child and configures nothing; remove it",
		Path:     "lib/app.dart",
		Line:     1,
		Col:      1,
		Fix:      &fix.Edit{Start: 0, End: uint(len(src)), Replacement: "Text('hi')"},
	}

	var buf bytes.Buffer
	w := &TextWriter{
		Out:       &buf,
		ShowFixes: true,
		Sources:   map[string][]byte{"lib/app.dart": src},
	}
	if err := w.Write([]rule.Diagnostic{d}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Text('hi')") {
		t.Errorf("preview missing replacement text:\n%s", out)
	}
}

func TestTextWriterNoPreviewWithoutSource(t *testing.T) {
	d := sampleDiags()[0]
	d.Fix = &fix.Edit{Start: 0, End: 1, Replacement: "x"}

	var buf bytes.Buffer
	w := &TextWriter{Out: &buf, ShowFixes: true}
	if err := w.Write([]rule.Diagnostic{d}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("want the diagnostic line only, got %d lines:\n%s", got, buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleDiags()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var wire []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &wire); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(wire) != 2 {
		t.Fatalf("want 2 entries, got %d", len(wire))
	}
	if wire[0]["severity"] != "error" {
		t.Errorf("severity = %v, want error", wire[0]["severity"])
	}
	if wire[0]["rule"] != "positioned_outside_stack" {
		t.Errorf("rule = %v", wire[0]["rule"])
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty run = %q, want []", got)
	}
}

func TestWriteSummary(t *testing.T) {
	diags := append(sampleDiags(), sampleDiags()[0])

	var buf bytes.Buffer
	WriteSummary(&buf, diags)

	out := buf.String()
	for _, want := range []string{"positioned_outside_stack", "image_missing_label", "total", "3"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	// The double-count rule sorts first.
	if strings.Index(out, "positioned_outside_stack") > strings.Index(out, "image_missing_label") {
		t.Errorf("rows not sorted by count:\n%s", out)
	}
}
