package access

import (
	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/rule"
)

func init() {
	rule.Register(&missingSafeArea{})
}

// missingSafeArea flags a Scaffold body that can extend under notches and
// system bars: no appBar to absorb the top inset and no SafeArea (or
// scroll view, which applies its own insets) as the body's root widget.
// The check is local by design; a SafeArea buried deeper in the body is a
// judgment call this rule does not second-guess.
type missingSafeArea struct{}

var safeBodyRoots = []string{"SafeArea", "CustomScrollView", "ListView", "NestedScrollView"}

func (r *missingSafeArea) Name() string            { return "missing_safe_area" }
func (r *missingSafeArea) Severity() rule.Severity { return rule.SeverityInfo }
func (r *missingSafeArea) Description() string {
	return "a Scaffold body without an appBar should start with SafeArea to avoid notches and system bars"
}
func (r *missingSafeArea) Kinds() []ast.Kind { return []ast.Kind{ast.KindInstanceCreation} }

func (r *missingSafeArea) Check(ctx *rule.Context, node ast.NodeID) []rule.Diagnostic {
	t := ctx.Tree
	if !classify.IsInstanceOf(t, node, "Scaffold") {
		return nil
	}
	if classify.HasNamedArg(t, node, "appBar") {
		return nil
	}
	body, ok := classify.NamedArg(t, node, "body")
	if !ok {
		return nil
	}
	if t.Kind(body) != ast.KindInstanceCreation {
		// Body built elsewhere (variable, helper call) is out of static
		// reach; decline rather than guess.
		return nil
	}
	if classify.IsInstanceOf(t, body, safeBodyRoots...) {
		return nil
	}
	d := ctx.Diag(r, body, "Scaffold body is not wrapped in SafeArea")
	return []rule.Diagnostic{d}
}
