// Package report renders diagnostics for terminals and machines.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/phobologic/widgetlint/internal/fix"
	"github.com/phobologic/widgetlint/internal/rule"
)

var severityColors = map[rule.Severity]*color.Color{
	rule.SeverityInfo:     color.New(color.FgCyan),
	rule.SeverityWarning:  color.New(color.FgYellow),
	rule.SeverityError:    color.New(color.FgRed),
	rule.SeverityCritical: color.New(color.FgRed, color.Bold),
}

// TextWriter writes human-readable diagnostics, one per line, optionally
// followed by a fix preview.
type TextWriter struct {
	Out       io.Writer
	ShowFixes bool
	// Sources provides file contents for fix previews, keyed by path.
	Sources map[string][]byte
}

// Write renders all diagnostics.
func (w *TextWriter) Write(diags []rule.Diagnostic) error {
	for _, d := range diags {
		sev := severityColors[d.Severity].Sprint(d.Severity.String())
		if _, err := fmt.Fprintf(w.Out, "%s:%d:%d: %s: %s (%s)\n",
			d.Path, d.Line, d.Col, sev, d.Message, d.Rule); err != nil {
			return err
		}
		if !w.ShowFixes || d.Fix == nil {
			continue
		}
		src, ok := w.Sources[d.Path]
		if !ok {
			continue
		}
		if preview := fix.Preview(src, *d.Fix); preview != "" {
			if _, err := fmt.Fprintln(w.Out, indent(preview, "    ")); err != nil {
				return err
			}
		}
	}
	return nil
}

func indent(s, prefix string) string {
	out := prefix
	for _, r := range s {
		out += string(r)
		if r == '\n' {
			out += prefix
		}
	}
	return out
}
