package report

import (
	"encoding/json"
	"io"

	"github.com/phobologic/widgetlint/internal/rule"
)

// jsonDiagnostic is the stable wire shape; Severity serializes as its
// string form rather than the internal enum value.
type jsonDiagnostic struct {
	rule.Diagnostic
	Severity string `json:"severity"`
}

// WriteJSON renders diagnostics as a JSON array. An empty run emits [].
func WriteJSON(out io.Writer, diags []rule.Diagnostic) error {
	wire := make([]jsonDiagnostic, len(diags))
	for i, d := range diags {
		wire[i] = jsonDiagnostic{Diagnostic: d, Severity: d.Severity.String()}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(wire)
}
