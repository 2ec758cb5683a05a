package style

import (
	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/fix"
	"github.com/phobologic/widgetlint/internal/rule"
)

func init() {
	rule.Register(&preferConstConstructor{})
}

// preferConstConstructor suggests a const keyword on instantiations whose
// arguments are all literals. Without type resolution the rule cannot prove
// the constructor is const-able, so it stays at info severity and only
// fires on the unambiguous shape: every argument a literal, nothing
// implicitly const already.
type preferConstConstructor struct{}

func (r *preferConstConstructor) Name() string            { return "prefer_const_constructor" }
func (r *preferConstConstructor) Severity() rule.Severity { return rule.SeverityInfo }
func (r *preferConstConstructor) Description() string {
	return "instantiations with all-literal arguments can usually be const, letting the framework cache the widget"
}
func (r *preferConstConstructor) Kinds() []ast.Kind { return []ast.Kind{ast.KindInstanceCreation} }

func (r *preferConstConstructor) Check(ctx *rule.Context, node ast.NodeID) []rule.Diagnostic {
	t := ctx.Tree
	if classify.IsConstInvocation(t, node) || classify.IsConstContext(t, node) {
		return nil
	}
	args, allLiteral := literalArgs(ctx, node)
	if args == 0 || !allLiteral {
		return nil
	}
	d := ctx.Diag(r, node, "instantiation with all-literal arguments could be const")
	d.Fix = fix.InsertPrefix(t, node, "const ")
	return []rule.Diagnostic{d}
}

func literalArgs(ctx *rule.Context, node ast.NodeID) (count int, allLiteral bool) {
	t := ctx.Tree
	exprs := classify.PositionalArgs(t, node)
	for _, name := range classify.NamedArgNames(t, node) {
		if v, ok := classify.NamedArg(t, node, name); ok {
			exprs = append(exprs, v)
		}
	}
	for _, e := range exprs {
		switch t.Kind(e) {
		case ast.KindNumberLiteral, ast.KindStringLiteral:
		default:
			return len(exprs), false
		}
	}
	return len(exprs), true
}
