// Package classify provides stateless predicates over single AST nodes and
// their immediate children. Every function is total: absence is reported
// through a boolean or zero value, never an error, and nothing here touches
// state outside the passed-in tree.
package classify

import (
	"strconv"
	"strings"

	"github.com/phobologic/widgetlint/internal/ast"
)

// constContextDepth bounds the short upward scan IsConstContext performs.
// This is intentionally distinct from (and much smaller than) the ancestor
// walker's depth bound: const promotion is only decidable a few levels up.
const constContextDepth = 8

// TypeName returns the constructor type's simple name for an instantiation
// node. The second return is false when the node is not an instantiation.
func TypeName(t *ast.Tree, id ast.NodeID) (string, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != ast.KindInstanceCreation || n.Name == "" {
		return "", false
	}
	return n.Name, true
}

// IsInstanceOf reports whether id instantiates any of the named types.
func IsInstanceOf(t *ast.Tree, id ast.NodeID, names ...string) bool {
	name, ok := TypeName(t, id)
	if !ok {
		return false
	}
	for _, want := range names {
		if name == want {
			return true
		}
	}
	return false
}

// argumentList returns the argument-list child of a call or instantiation.
func argumentList(t *ast.Tree, id ast.NodeID) (ast.NodeID, bool) {
	for _, c := range t.Children(id) {
		if t.Kind(c) == ast.KindArgumentList {
			return c, true
		}
	}
	return ast.None, false
}

// NamedArg returns the value expression bound to the named parameter on a
// call or instantiation node, or false if no such argument is present.
func NamedArg(t *ast.Tree, id ast.NodeID, name string) (ast.NodeID, bool) {
	args, ok := argumentList(t, id)
	if !ok {
		return ast.None, false
	}
	for _, c := range t.Children(args) {
		arg := t.Node(c)
		if arg == nil || arg.Kind != ast.KindNamedArgument || arg.Name != name {
			continue
		}
		if len(arg.Children) == 0 {
			return ast.None, false
		}
		return arg.Children[len(arg.Children)-1], true
	}
	return ast.None, false
}

// HasNamedArg reports whether the named parameter is passed at all.
func HasNamedArg(t *ast.Tree, id ast.NodeID, name string) bool {
	_, ok := NamedArg(t, id, name)
	return ok
}

// NamedArgNames returns the labels of all named arguments on id, in source
// order.
func NamedArgNames(t *ast.Tree, id ast.NodeID) []string {
	args, ok := argumentList(t, id)
	if !ok {
		return nil
	}
	var names []string
	for _, c := range t.Children(args) {
		if arg := t.Node(c); arg != nil && arg.Kind == ast.KindNamedArgument {
			names = append(names, arg.Name)
		}
	}
	return names
}

// PositionalArgs returns the positional argument expressions of a call or
// instantiation, in source order.
func PositionalArgs(t *ast.Tree, id ast.NodeID) []ast.NodeID {
	args, ok := argumentList(t, id)
	if !ok {
		return nil
	}
	var out []ast.NodeID
	for _, c := range t.Children(args) {
		if t.Kind(c) != ast.KindNamedArgument {
			out = append(out, c)
		}
	}
	return out
}

// ArgCount returns the total number of arguments passed to id.
func ArgCount(t *ast.Tree, id ast.NodeID) int {
	args, ok := argumentList(t, id)
	if !ok {
		return 0
	}
	return len(t.Children(args))
}

// IsListLiteral reports whether id is a collection literal.
func IsListLiteral(t *ast.Tree, id ast.NodeID) bool {
	return t.Kind(id) == ast.KindListLiteral
}

// NumberValue returns the numeric value of a number-literal node.
func NumberValue(t *ast.Tree, id ast.NodeID) (float64, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != ast.KindNumberLiteral {
		return 0, false
	}
	text := strings.TrimSpace(t.Text(id))
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsConstContext reports whether id sits in a context that already forces
// compile-time constness: a const variable declaration, a const constructor
// invocation or collection literal, an enum declaration, or an annotation.
// The scan is bounded and walks only the immediate enclosing chain; it is
// not the ancestor walker.
func IsConstContext(t *ast.Tree, id ast.NodeID) bool {
	cur := t.Parent(id)
	for depth := 0; t.Valid(cur) && depth < constContextDepth; depth++ {
		n := t.Node(cur)
		switch n.Kind {
		case ast.KindVariableDecl:
			return n.Const
		case ast.KindInstanceCreation, ast.KindListLiteral:
			if n.Const {
				return true
			}
		case ast.KindEnumDecl, ast.KindAnnotation:
			return true
		case ast.KindMethodDecl, ast.KindFunctionDecl, ast.KindFunctionExpr:
			return false
		}
		cur = t.Parent(cur)
	}
	return false
}

// IsConstInvocation reports whether id is already a const instantiation or
// const collection literal.
func IsConstInvocation(t *ast.Tree, id ast.NodeID) bool {
	n := t.Node(id)
	return n != nil && (n.Kind == ast.KindInstanceCreation || n.Kind == ast.KindListLiteral) && n.Const
}
