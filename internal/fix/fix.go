// Package fix computes literal source-text replacements for diagnostics.
// Edits are pure descriptors; applying them to files is the caller's job,
// and no semantic re-validation happens here. The replacement text is
// trusted to be valid for the pattern that triggered the rule.
package fix

import (
	"strings"

	"github.com/phobologic/widgetlint/internal/ast"
)

// Edit is a single replacement of the half-open byte range [Start, End)
// with Replacement.
type Edit struct {
	Start       uint   `json:"start"`
	End         uint   `json:"end"`
	Replacement string `json:"replacement"`
}

// Apply returns a copy of src with the edit applied. Out-of-range edits
// return src unchanged.
func (e Edit) Apply(src []byte) []byte {
	if e.Start > e.End || e.End > uint(len(src)) {
		return src
	}
	out := make([]byte, 0, len(src)-int(e.End-e.Start)+len(e.Replacement))
	out = append(out, src[:e.Start]...)
	out = append(out, e.Replacement...)
	out = append(out, src[e.End:]...)
	return out
}

// Unwrap replaces a wrapper node's full text with the text of one of its
// descendants, removing the wrapper. Returns nil when either span is
// unusable.
func Unwrap(t *ast.Tree, wrapper, inner ast.NodeID) *Edit {
	outer := t.Span(wrapper)
	child := t.Text(inner)
	if child == "" || outer.End <= outer.Start {
		return nil
	}
	return &Edit{Start: outer.Start, End: outer.End, Replacement: child}
}

// InsertNamedArg inserts `name: value` as the final argument of a call or
// instantiation. Returns nil when the node's text is not call-shaped.
func InsertNamedArg(t *ast.Tree, call ast.NodeID, name, value string) *Edit {
	sp := t.Span(call)
	text := t.Text(call)
	if !strings.HasSuffix(text, ")") {
		return nil
	}
	arg := name + ": " + value
	inner := strings.TrimSpace(text[strings.IndexByte(text, '(')+1 : len(text)-1])
	if inner != "" {
		if strings.HasSuffix(inner, ",") {
			arg = " " + arg
		} else {
			arg = ", " + arg
		}
	}
	return &Edit{Start: sp.End - 1, End: sp.End - 1, Replacement: arg}
}

// InsertPrefix prepends text to a node, e.g. a `const ` keyword.
func InsertPrefix(t *ast.Tree, id ast.NodeID, prefix string) *Edit {
	sp := t.Span(id)
	if sp.End < sp.Start {
		return nil
	}
	return &Edit{Start: sp.Start, End: sp.Start, Replacement: prefix}
}

// ReplaceName substitutes the leading type name of an instantiation, e.g.
// rewriting Container(...) to SizedBox(...). Returns nil when the node text
// does not begin with oldName.
func ReplaceName(t *ast.Tree, id ast.NodeID, oldName, newName string) *Edit {
	sp := t.Span(id)
	text := t.Text(id)
	if !strings.HasPrefix(text, oldName) {
		return nil
	}
	return &Edit{Start: sp.Start, End: sp.Start + uint(len(oldName)), Replacement: newName}
}
