package layout

import (
	"fmt"

	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/rule"
	"github.com/phobologic/widgetlint/internal/walker"
)

func init() {
	rule.Register(&flexChildOutsideFlex{})
}

// flexChildOutsideFlex flags Expanded, Flexible and Spacer used outside a
// Row, Column or Flex. Supertype matching is on so custom flex subclasses
// count as valid parents.
type flexChildOutsideFlex struct{}

func (r *flexChildOutsideFlex) Name() string            { return "flex_child_outside_flex" }
func (r *flexChildOutsideFlex) Severity() rule.Severity { return rule.SeverityError }
func (r *flexChildOutsideFlex) Description() string {
	return "Expanded, Flexible and Spacer only work inside a Row, Column or Flex"
}
func (r *flexChildOutsideFlex) Kinds() []ast.Kind { return []ast.Kind{ast.KindInstanceCreation} }

func (r *flexChildOutsideFlex) Check(ctx *rule.Context, node ast.NodeID) []rule.Diagnostic {
	if !classify.IsInstanceOf(ctx.Tree, node, "Expanded", "Flexible", "Spacer") {
		return nil
	}
	q := ctx.Query("Row", "Column", "Flex")
	q.CheckSuperTypes = true
	switch walker.FindAncestor(ctx.Tree, node, q) {
	case walker.NotFound, walker.WrongParent:
		name, _ := classify.TypeName(ctx.Tree, node)
		d := ctx.Diag(r, node, fmt.Sprintf("%s has no enclosing Row, Column or Flex", name))
		return []rule.Diagnostic{d}
	default:
		return nil
	}
}
