// Package ast defines the arena-backed syntax tree the linter analyzes.
//
// Nodes live in a flat slice indexed by NodeID and store their parent as an
// ID rather than a pointer, so upward walks are plain array lookups and the
// tree carries no ownership cycles. A Tree is immutable once built; every
// analysis pass reads it concurrently without synchronization.
package ast

// NodeID indexes a node within a Tree's arena.
type NodeID int32

// None is the null NodeID, used for the root's parent and failed lookups.
const None NodeID = -1

// Kind tags a node with its syntactic category. Kinds the walker and
// classifier never inspect are lowered to KindOther; they still occupy an
// arena slot so ancestor distances match the real syntax tree.
type Kind uint8

const (
	KindOther Kind = iota
	KindFile
	KindInstanceCreation
	KindCall
	KindArgumentList
	KindNamedArgument
	KindListLiteral
	KindVariableDecl
	KindAssignment
	KindReturn
	KindMethodDecl
	KindFunctionDecl
	KindFunctionExpr
	KindClassDecl
	KindEnumDecl
	KindAnnotation
	KindIdentifier
	KindNumberLiteral
	KindStringLiteral
	KindIf
	KindConditional
	KindSpread
)

var kindNames = [...]string{
	KindOther:            "Other",
	KindFile:             "File",
	KindInstanceCreation: "InstanceCreation",
	KindCall:             "Call",
	KindArgumentList:     "ArgumentList",
	KindNamedArgument:    "NamedArgument",
	KindListLiteral:      "ListLiteral",
	KindVariableDecl:     "VariableDecl",
	KindAssignment:       "Assignment",
	KindReturn:           "Return",
	KindMethodDecl:       "MethodDecl",
	KindFunctionDecl:     "FunctionDecl",
	KindFunctionExpr:     "FunctionExpr",
	KindClassDecl:        "ClassDecl",
	KindEnumDecl:         "EnumDecl",
	KindAnnotation:       "Annotation",
	KindIdentifier:       "Identifier",
	KindNumberLiteral:    "NumberLiteral",
	KindStringLiteral:    "StringLiteral",
	KindIf:               "If",
	KindConditional:      "Conditional",
	KindSpread:           "Spread",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Other"
}

// Span is a half-open byte range within the source, with the 1-based line
// and column of its start for diagnostics.
type Span struct {
	Start uint
	End   uint
	Line  uint
	Col   uint
}

// Node is a single arena entry.
//
// Name holds the kind-specific identifier: the constructor type name for an
// instantiation, the invoked method's simple name for a call, the parameter
// label for a named argument, the declared name for method/function/class
// declarations. Super holds the extends-clause name on class declarations.
// Const marks const instantiations, const collection literals and const
// variable declarations.
type Node struct {
	Kind     Kind
	Parent   NodeID
	Children []NodeID
	Span     Span
	Name     string
	Super    string
	Const    bool
}

// Tree is an immutable arena of nodes for one source file. Nodes are stored
// in preorder: a node's ID is always greater than its parent's.
type Tree struct {
	Path  string
	src   []byte
	nodes []Node
}

// NewTree creates an empty tree for the given file path and source bytes.
func NewTree(path string, src []byte) *Tree {
	return &Tree{Path: path, src: src}
}

// Add appends a node under parent and returns its ID. Pass None for the root.
func (t *Tree) Add(parent NodeID, n Node) NodeID {
	id := NodeID(len(t.nodes))
	n.Parent = parent
	t.nodes = append(t.nodes, n)
	if t.Valid(parent) {
		p := &t.nodes[parent]
		p.Children = append(p.Children, id)
	}
	return id
}

// Valid reports whether id addresses a node in this tree.
func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the root node's ID, or None for an empty tree.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return None
	}
	return 0
}

// Node returns the node for id, or nil if id is invalid.
func (t *Tree) Node(id NodeID) *Node {
	if !t.Valid(id) {
		return nil
	}
	return &t.nodes[id]
}

// Kind returns id's kind, or KindOther for an invalid id.
func (t *Tree) Kind(id NodeID) Kind {
	if !t.Valid(id) {
		return KindOther
	}
	return t.nodes[id].Kind
}

// Parent returns id's parent, or None.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Valid(id) {
		return None
	}
	return t.nodes[id].Parent
}

// Children returns id's child IDs in source order. The returned slice is
// owned by the tree and must not be mutated.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.Valid(id) {
		return nil
	}
	return t.nodes[id].Children
}

// Span returns id's source span, or the zero Span.
func (t *Tree) Span(id NodeID) Span {
	if !t.Valid(id) {
		return Span{}
	}
	return t.nodes[id].Span
}

// Text returns the source text covered by id's span.
func (t *Tree) Text(id NodeID) string {
	if !t.Valid(id) {
		return ""
	}
	sp := t.nodes[id].Span
	if sp.End > uint(len(t.src)) || sp.Start > sp.End {
		return ""
	}
	return string(t.src[sp.Start:sp.End])
}

// Source returns the raw source bytes backing the tree.
func (t *Tree) Source() []byte { return t.src }

// Walk visits every node in preorder. Arena order is preorder by
// construction, so this is a flat iteration.
func (t *Tree) Walk(visit func(NodeID)) {
	for i := range t.nodes {
		visit(NodeID(i))
	}
}
