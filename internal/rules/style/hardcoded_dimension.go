package style

import (
	"fmt"

	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/rule"
)

func init() {
	rule.Register(&hardcodedDimension{})
}

// dimensionThreshold is the smallest literal that plausibly encodes a whole
// screen edge rather than a spacing value. Small literals (paddings, icon
// sizes) are idiomatic and stay silent.
const dimensionThreshold = 400

// hardcodedDimension flags width/height literals large enough to be screen
// dimensions baked in at one device's size.
type hardcodedDimension struct{}

func (r *hardcodedDimension) Name() string            { return "hardcoded_dimension" }
func (r *hardcodedDimension) Severity() rule.Severity { return rule.SeverityWarning }
func (r *hardcodedDimension) Description() string {
	return "large hardcoded width/height values break on other screen sizes; derive them from constraints or MediaQuery"
}
func (r *hardcodedDimension) Kinds() []ast.Kind { return []ast.Kind{ast.KindInstanceCreation} }

func (r *hardcodedDimension) Check(ctx *rule.Context, node ast.NodeID) []rule.Diagnostic {
	var diags []rule.Diagnostic
	for _, argName := range []string{"width", "height"} {
		val, ok := classify.NamedArg(ctx.Tree, node, argName)
		if !ok {
			continue
		}
		n, ok := classify.NumberValue(ctx.Tree, val)
		if !ok || n < dimensionThreshold {
			continue
		}
		msg := fmt.Sprintf("hardcoded %s of %g will not adapt to other screens", argName, n)
		diags = append(diags, ctx.Diag(r, val, msg))
	}
	return diags
}
