package layout

import (
	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/rule"
	"github.com/phobologic/widgetlint/internal/walker"
)

func init() {
	rule.Register(&spacerInsideWrap{})
}

// spacerInsideWrap flags a Spacer whose nearest layout parent is a Wrap.
// Wrap lays its children out on run lines and gives a Spacer no main axis
// to fill. An exclusion rule: only WrongParent reports, so a Spacer that
// legitimately sits in a Row nested within a Wrap stays silent.
type spacerInsideWrap struct{}

func (r *spacerInsideWrap) Name() string            { return "spacer_inside_wrap" }
func (r *spacerInsideWrap) Severity() rule.Severity { return rule.SeverityWarning }
func (r *spacerInsideWrap) Description() string {
	return "Spacer inside a Wrap has no flex axis to fill"
}
func (r *spacerInsideWrap) Kinds() []ast.Kind { return []ast.Kind{ast.KindInstanceCreation} }

func (r *spacerInsideWrap) Check(ctx *rule.Context, node ast.NodeID) []rule.Diagnostic {
	if !classify.IsInstanceOf(ctx.Tree, node, "Spacer") {
		return nil
	}
	q := ctx.Query("Row", "Column", "Flex")
	q.StopAt = []string{"Wrap"}
	if walker.FindAncestor(ctx.Tree, node, q) != walker.WrongParent {
		return nil
	}
	d := ctx.Diag(r, node, "Spacer is placed inside a Wrap; it needs a Row, Column or Flex")
	return []rule.Diagnostic{d}
}
