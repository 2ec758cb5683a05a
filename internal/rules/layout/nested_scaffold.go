package layout

import (
	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/rule"
	"github.com/phobologic/widgetlint/internal/walker"
)

func init() {
	rule.Register(&nestedScaffold{})
}

// nestedScaffold flags a Scaffold built inside another Scaffold. An
// inverse-containment rule: the walker searches for the forbidden type as
// if it were a target and the rule reports on Found.
type nestedScaffold struct{}

func (r *nestedScaffold) Name() string            { return "nested_scaffold" }
func (r *nestedScaffold) Severity() rule.Severity { return rule.SeverityWarning }
func (r *nestedScaffold) Description() string {
	return "a Scaffold nested in another Scaffold duplicates app chrome; use a nested Navigator or plain widgets instead"
}
func (r *nestedScaffold) Kinds() []ast.Kind { return []ast.Kind{ast.KindInstanceCreation} }

func (r *nestedScaffold) Check(ctx *rule.Context, node ast.NodeID) []rule.Diagnostic {
	if !classify.IsInstanceOf(ctx.Tree, node, "Scaffold") {
		return nil
	}
	if walker.FindAncestor(ctx.Tree, node, ctx.Query("Scaffold")) != walker.Found {
		return nil
	}
	d := ctx.Diag(r, node, "Scaffold is nested inside another Scaffold")
	return []rule.Diagnostic{d}
}
