package layout

import (
	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/rule"
	"github.com/phobologic/widgetlint/internal/walker"
)

func init() {
	rule.Register(&tableCellOutsideTable{})
}

// tableCellOutsideTable flags TableCell widgets without an enclosing Table.
type tableCellOutsideTable struct{}

func (r *tableCellOutsideTable) Name() string            { return "table_cell_outside_table" }
func (r *tableCellOutsideTable) Severity() rule.Severity { return rule.SeverityError }
func (r *tableCellOutsideTable) Description() string {
	return "TableCell must be placed inside a Table"
}
func (r *tableCellOutsideTable) Kinds() []ast.Kind { return []ast.Kind{ast.KindInstanceCreation} }

func (r *tableCellOutsideTable) Check(ctx *rule.Context, node ast.NodeID) []rule.Diagnostic {
	if !classify.IsInstanceOf(ctx.Tree, node, "TableCell") {
		return nil
	}
	switch walker.FindAncestor(ctx.Tree, node, ctx.Query("Table")) {
	case walker.NotFound, walker.WrongParent:
		d := ctx.Diag(r, node, "TableCell is not placed inside a Table")
		return []rule.Diagnostic{d}
	default:
		return nil
	}
}
