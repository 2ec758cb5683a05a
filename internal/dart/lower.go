package dart

import (
	"strings"
	"unicode"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/phobologic/widgetlint/internal/ast"
)

// kindMap maps tree-sitter-dart node types onto arena kinds. Types not
// listed lower to KindOther but keep their arena slot, so the walker sees
// ancestor distances matching the real syntax tree. The table mirrors the
// capture-map approach: grammar knowledge lives in data, not control flow.
var kindMap = map[string]ast.Kind{
	"class_definition":                ast.KindClassDecl,
	"enum_declaration":                ast.KindEnumDecl,
	"annotation":                      ast.KindAnnotation,
	"marker_annotation":               ast.KindAnnotation,
	"return_statement":                ast.KindReturn,
	"assignment_expression":           ast.KindAssignment,
	"local_variable_declaration":      ast.KindVariableDecl,
	"top_level_variable_declaration":  ast.KindVariableDecl,
	"static_final_declaration_list":   ast.KindVariableDecl,
	"initialized_variable_definition": ast.KindVariableDecl,
	"list_literal":                    ast.KindListLiteral,
	"set_or_map_literal":              ast.KindListLiteral,
	"arguments":                       ast.KindArgumentList,
	"named_argument":                  ast.KindNamedArgument,
	"if_statement":                    ast.KindIf,
	"conditional_expression":          ast.KindConditional,
	"spread_element":                  ast.KindSpread,
	"function_expression":             ast.KindFunctionExpr,
	"new_expression":                  ast.KindInstanceCreation,
	"const_object_expression":         ast.KindInstanceCreation,
	"identifier":                      ast.KindIdentifier,
	"decimal_integer_literal":         ast.KindNumberLiteral,
	"decimal_floating_point_literal":  ast.KindNumberLiteral,
	"string_literal":                  ast.KindStringLiteral,
}

// signatureTypes are declaration heads the grammar splits from their bodies.
// The lowering re-joins each head with the function_body sibling that
// follows it into a single MethodDecl/FunctionDecl arena node, because the
// walker needs declarations on the ancestor chain of their bodies.
var signatureTypes = map[string]struct{}{
	"function_signature": {},
	"method_signature":   {},
	"getter_signature":   {},
	"setter_signature":   {},
}

type lowerer struct {
	tree *ast.Tree
	src  []byte
}

// lower converts a parsed sitter tree into an arena tree.
func lower(path string, src []byte, root sitter.Node) *ast.Tree {
	lw := &lowerer{tree: ast.NewTree(path, src), src: src}
	fileID := lw.tree.Add(ast.None, ast.Node{Kind: ast.KindFile, Span: span(root)})
	lw.lowerChildren(fileID, root, false)
	return lw.tree
}

func span(n sitter.Node) ast.Span {
	p := n.StartPoint()
	return ast.Span{
		Start: n.StartByte(),
		End:   n.EndByte(),
		Line:  uint(p.Row) + 1,
		Col:   uint(p.Column) + 1,
	}
}

func (lw *lowerer) text(n sitter.Node) string {
	start, end := n.StartByte(), n.EndByte()
	if end > uint(len(lw.src)) || start > end {
		return ""
	}
	return string(lw.src[start:end])
}

// lowerChildren walks n's named children, synthesizing the two arena shapes
// the raw grammar does not provide directly: declaration nodes joined from
// signature+body sibling pairs, and call nodes grouped from
// identifier+selector runs.
func (lw *lowerer) lowerChildren(parent ast.NodeID, n sitter.Node, inClass bool) {
	count := n.NamedChildCount()
	for i := uint32(0); i < count; i++ {
		child := n.NamedChild(i)
		typ := child.Type()

		if _, sig := signatureTypes[typ]; sig && i+1 < count && n.NamedChild(i+1).Type() == "function_body" {
			body := n.NamedChild(i + 1)
			lw.lowerDeclaration(parent, child, body, inClass)
			i++
			continue
		}

		if isCallHead(typ) && i+1 < count && isSelector(n.NamedChild(i+1)) {
			end := i + 1
			for end+1 < count && isSelector(n.NamedChild(end+1)) {
				end++
			}
			lw.lowerCall(parent, n, i, end)
			i = end
			continue
		}

		lw.lowerNode(parent, child, inClass)
	}
}

func (lw *lowerer) lowerNode(parent ast.NodeID, n sitter.Node, inClass bool) {
	typ := n.Type()
	kind := kindMap[typ]

	node := ast.Node{Kind: kind, Span: span(n)}

	switch kind {
	case ast.KindClassDecl:
		node.Name = lw.fieldText(n, "name")
		node.Super = lw.superclassName(n)
	case ast.KindVariableDecl:
		head := strings.TrimSpace(lw.text(n))
		node.Const = strings.HasPrefix(head, "const ") || strings.HasPrefix(head, "static const ")
	case ast.KindListLiteral:
		node.Const = lw.precededByConst(n)
	case ast.KindInstanceCreation:
		// new_expression / const_object_expression carry the type
		// inside; pull the first identifier as the constructor name.
		node.Name = lw.firstIdentifier(n)
		node.Const = typ == "const_object_expression" || lw.precededByConst(n)
	case ast.KindNamedArgument:
		node.Name = lw.namedArgLabel(n)
	case ast.KindIdentifier:
		node.Name = lw.text(n)
	}

	// Some grammar revisions expose named arguments as plain arguments
	// with a leading label child.
	if kind == ast.KindOther && typ == "argument" {
		if label := lw.labelChild(n); label != "" {
			node.Kind = ast.KindNamedArgument
			node.Name = label
		}
	}

	id := lw.tree.Add(parent, node)
	lw.lowerChildren(id, n, inClass || node.Kind == ast.KindClassDecl)
}

// lowerDeclaration joins a signature node and its function_body sibling
// into one declaration arena node.
func (lw *lowerer) lowerDeclaration(parent ast.NodeID, sig, body sitter.Node, inClass bool) {
	kind := ast.KindFunctionDecl
	if inClass {
		kind = ast.KindMethodDecl
	}
	name := lw.fieldText(sig, "name")
	if name == "" {
		name = lw.firstIdentifier(sig)
	}
	sp := span(sig)
	sp.End = body.EndByte()
	id := lw.tree.Add(parent, ast.Node{Kind: kind, Span: sp, Name: name})
	lw.lowerNode(id, sig, inClass)
	lw.lowerNode(id, body, inClass)
}

// lowerCall groups the children of n from head (an identifier) through end
// (the last selector) into one call or instantiation arena node.
func (lw *lowerer) lowerCall(parent ast.NodeID, n sitter.Node, head, end uint32) {
	first := n.NamedChild(head)
	last := n.NamedChild(end)

	sp := span(first)
	sp.End = last.EndByte()

	name := lw.text(first)
	hasArgs := false
	for i := head + 1; i <= end; i++ {
		sel := n.NamedChild(i)
		if id := lw.selectorIdentifier(sel); id != "" {
			name = id
		}
		if !lw.selectorArguments(sel).IsNull() {
			hasArgs = true
		}
	}

	kind := ast.KindCall
	if isTypeName(name) {
		kind = ast.KindInstanceCreation
	}
	if !hasArgs {
		// Property access chain, not a call; lower children plainly.
		for i := head; i <= end; i++ {
			lw.lowerNode(parent, n.NamedChild(i), false)
		}
		return
	}

	node := ast.Node{Kind: kind, Span: sp, Name: simpleName(name), Const: lw.precededByConst(first)}
	id := lw.tree.Add(parent, node)
	for i := head; i <= end; i++ {
		lw.lowerNode(id, n.NamedChild(i), false)
	}
}

func isCallHead(typ string) bool {
	switch typ {
	case "identifier", "scoped_identifier", "qualified":
		return true
	}
	return false
}

func isSelector(n sitter.Node) bool {
	return n.Type() == "selector"
}

// selectorIdentifier returns the member name a selector accesses, if any.
func (lw *lowerer) selectorIdentifier(sel sitter.Node) string {
	var name string
	walkNamed(sel, func(d sitter.Node) bool {
		if d.Type() == "arguments" {
			return false
		}
		if d.Type() == "identifier" {
			name = lw.text(d)
		}
		return true
	})
	return name
}

// selectorArguments returns the arguments node nested in a selector, or a
// null node.
func (lw *lowerer) selectorArguments(sel sitter.Node) sitter.Node {
	var args sitter.Node
	walkNamed(sel, func(d sitter.Node) bool {
		if d.Type() == "arguments" {
			args = d
			return false
		}
		return true
	})
	return args
}

// walkNamed visits named descendants of n in preorder; visit returning
// false prunes that subtree.
func walkNamed(n sitter.Node, visit func(sitter.Node) bool) {
	count := n.NamedChildCount()
	for i := uint32(0); i < count; i++ {
		child := n.NamedChild(i)
		if visit(child) {
			walkNamed(child, visit)
		}
	}
}

func (lw *lowerer) fieldText(n sitter.Node, field string) string {
	f := n.ChildByFieldName(field)
	if f.IsNull() {
		return ""
	}
	return lw.text(f)
}

func (lw *lowerer) firstIdentifier(n sitter.Node) string {
	var name string
	walkNamed(n, func(d sitter.Node) bool {
		if name != "" {
			return false
		}
		if d.Type() == "identifier" || d.Type() == "type_identifier" {
			name = lw.text(d)
			return false
		}
		return true
	})
	return name
}

func (lw *lowerer) superclassName(class sitter.Node) string {
	count := class.NamedChildCount()
	for i := uint32(0); i < count; i++ {
		child := class.NamedChild(i)
		if child.Type() == "superclass" {
			return lw.lastIdentifier(child)
		}
	}
	return ""
}

func (lw *lowerer) lastIdentifier(n sitter.Node) string {
	var name string
	walkNamed(n, func(d sitter.Node) bool {
		if d.Type() == "identifier" || d.Type() == "type_identifier" {
			name = lw.text(d)
		}
		return true
	})
	return name
}

func (lw *lowerer) namedArgLabel(n sitter.Node) string {
	if lbl := lw.labelChild(n); lbl != "" {
		return lbl
	}
	return lw.firstIdentifier(n)
}

func (lw *lowerer) labelChild(n sitter.Node) string {
	count := n.NamedChildCount()
	for i := uint32(0); i < count; i++ {
		child := n.NamedChild(i)
		if child.Type() == "label" {
			return strings.TrimSuffix(strings.TrimSpace(lw.text(child)), ":")
		}
	}
	return ""
}

// precededByConst reports whether the token stream immediately before n is
// the const keyword. The keyword is an anonymous token, so the source is
// consulted directly.
func (lw *lowerer) precededByConst(n sitter.Node) bool {
	return constBefore(lw.src, n.StartByte())
}

func constBefore(src []byte, offset uint) bool {
	head := strings.TrimRight(string(src[:min(offset, uint(len(src)))]), " \t\n")
	if !strings.HasSuffix(head, "const") {
		return false
	}
	rest := head[:len(head)-len("const")]
	if rest == "" {
		return true
	}
	c := rest[len(rest)-1]
	return !(c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9')
}

// isTypeName applies Dart's universal convention: type names start with an
// uppercase letter. Without resolution this is how an instantiation is told
// apart from a function call.
func isTypeName(name string) bool {
	name = simpleName(name)
	if name == "" {
		return false
	}
	return unicode.IsUpper(rune(name[0]))
}

// simpleName strips any prefix qualifier, keeping the final path segment.
func simpleName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
