package fix

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Preview renders an edit as a compact colored-free diff of the affected
// region, for terminal display alongside the diagnostic.
func Preview(src []byte, e Edit) string {
	before := string(src)
	after := string(e.Apply(src))
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeMarked(&b, d.Text, "-")
		case diffmatchpatch.DiffInsert:
			writeMarked(&b, d.Text, "+")
		case diffmatchpatch.DiffEqual:
			// Unchanged context is elided; the anchor locates the edit.
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeMarked(b *strings.Builder, text, mark string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintf(b, "%s %s\n", mark, line)
	}
}
