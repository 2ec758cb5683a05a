package style

import (
	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/fix"
	"github.com/phobologic/widgetlint/internal/rule"
)

func init() {
	rule.Register(&sizedBoxForWhitespace{})
}

// sizedBoxForWhitespace flags a Container used purely for sizing. SizedBox
// is a const-able, cheaper equivalent; the fix rewrites the constructor
// name and keeps the arguments.
type sizedBoxForWhitespace struct{}

var sizingArgs = map[string]struct{}{
	"width":  {},
	"height": {},
	"child":  {},
	"key":    {},
}

func (r *sizedBoxForWhitespace) Name() string            { return "sized_box_for_whitespace" }
func (r *sizedBoxForWhitespace) Severity() rule.Severity { return rule.SeverityInfo }
func (r *sizedBoxForWhitespace) Description() string {
	return "use SizedBox instead of Container when only sizing a child or gap"
}
func (r *sizedBoxForWhitespace) Kinds() []ast.Kind { return []ast.Kind{ast.KindInstanceCreation} }

func (r *sizedBoxForWhitespace) Check(ctx *rule.Context, node ast.NodeID) []rule.Diagnostic {
	if !classify.IsInstanceOf(ctx.Tree, node, "Container") {
		return nil
	}
	names := classify.NamedArgNames(ctx.Tree, node)
	if len(names) == 0 || len(classify.PositionalArgs(ctx.Tree, node)) > 0 {
		return nil
	}
	sized := false
	for _, n := range names {
		if _, ok := sizingArgs[n]; !ok {
			return nil
		}
		if n == "width" || n == "height" {
			sized = true
		}
	}
	if !sized {
		return nil
	}
	d := ctx.Diag(r, node, "Container is used only for whitespace; use SizedBox")
	d.Fix = fix.ReplaceName(ctx.Tree, node, "Container", "SizedBox")
	return []rule.Diagnostic{d}
}
