// Package access contains accessibility and safe-area rules.
package access

import (
	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/fix"
	"github.com/phobologic/widgetlint/internal/rule"
)

func init() {
	rule.Register(&imageMissingLabel{})
}

// imageMissingLabel flags Image widgets without a semanticLabel. Screen
// readers skip unlabeled images entirely. Images explicitly excluded from
// semantics are respected.
type imageMissingLabel struct{}

func (r *imageMissingLabel) Name() string            { return "image_missing_label" }
func (r *imageMissingLabel) Severity() rule.Severity { return rule.SeverityWarning }
func (r *imageMissingLabel) Description() string {
	return "Image needs a semanticLabel (or excludeFromSemantics) for screen readers"
}
func (r *imageMissingLabel) Kinds() []ast.Kind { return []ast.Kind{ast.KindInstanceCreation} }

func (r *imageMissingLabel) Check(ctx *rule.Context, node ast.NodeID) []rule.Diagnostic {
	if !classify.IsInstanceOf(ctx.Tree, node, "Image") {
		return nil
	}
	if classify.HasNamedArg(ctx.Tree, node, "semanticLabel") ||
		classify.HasNamedArg(ctx.Tree, node, "excludeFromSemantics") {
		return nil
	}
	d := ctx.Diag(r, node, "Image has no semanticLabel")
	d.Fix = fix.InsertNamedArg(ctx.Tree, node, "semanticLabel", "''")
	return []rule.Diagnostic{d}
}
