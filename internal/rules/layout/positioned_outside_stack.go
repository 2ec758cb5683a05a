// Package layout contains the structural rules: widgets whose correctness
// depends on what encloses them. Every rule here is a thin instantiation of
// the ancestor walker with a specific target/stop set; reporting follows the
// walker's fail-open contract, so Indeterminate is always silence.
package layout

import (
	"fmt"

	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/rule"
	"github.com/phobologic/widgetlint/internal/walker"
)

func init() {
	rule.Register(&positionedOutsideStack{})
}

// positionedOutsideStack flags Positioned widgets that are not descendants
// of a Stack. Positioned is a parent-data widget; outside a Stack it throws
// at runtime.
type positionedOutsideStack struct{}

func (r *positionedOutsideStack) Name() string            { return "positioned_outside_stack" }
func (r *positionedOutsideStack) Severity() rule.Severity { return rule.SeverityError }
func (r *positionedOutsideStack) Description() string {
	return "Positioned must be placed inside a Stack"
}
func (r *positionedOutsideStack) Kinds() []ast.Kind { return []ast.Kind{ast.KindInstanceCreation} }

func (r *positionedOutsideStack) Check(ctx *rule.Context, node ast.NodeID) []rule.Diagnostic {
	if !classify.IsInstanceOf(ctx.Tree, node, "Positioned", "PositionedDirectional") {
		return nil
	}
	q := ctx.Query("Stack", "IndexedStack")
	q.CheckSuperTypes = true
	switch walker.FindAncestor(ctx.Tree, node, q) {
	case walker.NotFound, walker.WrongParent:
		name, _ := classify.TypeName(ctx.Tree, node)
		d := ctx.Diag(r, node, fmt.Sprintf("%s is not placed inside a Stack", name))
		return []rule.Diagnostic{d}
	default:
		return nil
	}
}
