// Package style contains classifier-only rules: anti-patterns recognizable
// from a single node and its immediate children, no ancestor walk needed.
package style

import (
	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/fix"
	"github.com/phobologic/widgetlint/internal/rule"
)

func init() {
	rule.Register(&avoidUnnecessaryContainer{})
}

// avoidUnnecessaryContainer flags a Container that forwards a single child
// and configures nothing else. The fix unwraps the child in place.
type avoidUnnecessaryContainer struct{}

func (r *avoidUnnecessaryContainer) Name() string            { return "avoid_unnecessary_container" }
func (r *avoidUnnecessaryContainer) Severity() rule.Severity { return rule.SeverityInfo }
func (r *avoidUnnecessaryContainer) Description() string {
	return "a Container with only a child adds nothing; use the child directly"
}
func (r *avoidUnnecessaryContainer) Kinds() []ast.Kind {
	return []ast.Kind{ast.KindInstanceCreation}
}

func (r *avoidUnnecessaryContainer) Check(ctx *rule.Context, node ast.NodeID) []rule.Diagnostic {
	if !classify.IsInstanceOf(ctx.Tree, node, "Container") {
		return nil
	}
	if classify.ArgCount(ctx.Tree, node) != 1 {
		return nil
	}
	child, ok := classify.NamedArg(ctx.Tree, node, "child")
	if !ok {
		return nil
	}
	d := ctx.Diag(r, node, "Container wraps a single child and configures nothing; remove it")
	d.Fix = fix.Unwrap(ctx.Tree, node, child)
	return []rule.Diagnostic{d}
}
