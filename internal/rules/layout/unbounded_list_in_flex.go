package layout

import (
	"fmt"

	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/rule"
	"github.com/phobologic/widgetlint/internal/walker"
)

func init() {
	rule.Register(&unboundedListInFlex{})
}

// unboundedListInFlex flags a scrollable placed directly in a Column or Row
// without an intervening Expanded, Flexible or SizedBox to bound it. The
// unbounded main axis is the classic "Vertical viewport was given unbounded
// height" crash.
type unboundedListInFlex struct{}

func (r *unboundedListInFlex) Name() string            { return "unbounded_list_in_flex" }
func (r *unboundedListInFlex) Severity() rule.Severity { return rule.SeverityError }
func (r *unboundedListInFlex) Description() string {
	return "a scrollable inside a Column or Row needs an Expanded, Flexible or SizedBox to bound it"
}
func (r *unboundedListInFlex) Kinds() []ast.Kind { return []ast.Kind{ast.KindInstanceCreation} }

func (r *unboundedListInFlex) Check(ctx *rule.Context, node ast.NodeID) []rule.Diagnostic {
	if !classify.IsInstanceOf(ctx.Tree, node, "ListView", "GridView", "CustomScrollView") {
		return nil
	}
	// shrinkWrap trades the crash for layout cost; either way the
	// constraint problem is handled.
	if classify.HasNamedArg(ctx.Tree, node, "shrinkWrap") {
		return nil
	}
	q := ctx.Query("Expanded", "Flexible", "SizedBox")
	q.StopAt = []string{"Column", "Row"}
	if walker.FindAncestor(ctx.Tree, node, q) != walker.WrongParent {
		return nil
	}
	name, _ := classify.TypeName(ctx.Tree, node)
	d := ctx.Diag(r, node, fmt.Sprintf("%s inside a flex parent has unbounded extent; wrap it in Expanded, Flexible or SizedBox", name))
	return []rule.Diagnostic{d}
}
