// Package walker implements the ancestor walk at the heart of every
// structural rule: starting from a node's parent, classify each enclosing
// construct against an ordered table of boundary predicates until one of
// four outcomes is reached.
//
// The table is deliberately biased toward Indeterminate. Once a value
// escapes into a variable, a helper method, a collection transform or a
// callback, its eventual placement cannot be tracked statically, and the
// walker assumes correct usage rather than risking a false positive. A
// stricter walk that resolved ambiguity to WrongParent or NotFound would
// flag correct code and is treated as a regression here, not an improvement.
package walker

import (
	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
)

// Result is the outcome of an ancestor walk. Exactly one is produced per
// walk.
type Result uint8

const (
	// NotFound means the walk exhausted its depth bound or reached the
	// root without locating a target parent.
	NotFound Result = iota
	// Found means a target parent encloses the node with no indeterminate
	// boundary in between.
	Found
	// WrongParent means a stop-set type was encountered strictly before
	// any target parent.
	WrongParent
	// Indeterminate means the walk hit a boundary past which static
	// reasoning is unreliable; callers must treat the usage as correct.
	Indeterminate
)

var resultNames = [...]string{
	NotFound:      "NotFound",
	Found:         "Found",
	WrongParent:   "WrongParent",
	Indeterminate: "Indeterminate",
}

func (r Result) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "NotFound"
}

// DefaultMaxDepth bounds a walk when the query does not set its own limit.
const DefaultMaxDepth = 20

// Boundaries carries the framework-idiom name sets the decision table
// consults. They are query data rather than package constants so the trusted
// set can follow the host framework's conventions without code changes.
type Boundaries struct {
	// BuilderParams are callback parameter labels trusted to pass their
	// ancestor context through unchanged (the standard builder pattern).
	BuilderParams []string
	// CollectionOps are collection-transform method names whose produced
	// values' placement is the caller's responsibility.
	CollectionOps []string
	// RenderMethods are the framework's render entry-point names.
	RenderMethods []string
}

// DefaultBoundaries returns the Flutter conventions.
func DefaultBoundaries() Boundaries {
	return Boundaries{
		BuilderParams: []string{"builder", "itemBuilder"},
		CollectionOps: []string{"generate", "map"},
		RenderMethods: []string{"build"},
	}
}

// Query describes a target relationship for FindAncestor. The zero value is
// usable: empty stop set, exact-name matching, default depth bound and
// default boundaries.
type Query struct {
	// TargetParents are the type names that constitute Found.
	TargetParents []string
	// StopAt are the type names that constitute WrongParent when met
	// before any target.
	StopAt []string
	// CheckSuperTypes widens target matching to the ancestor type's full
	// supertype chain, resolved through Hierarchy.
	CheckSuperTypes bool
	// Hierarchy resolves supertype chains when CheckSuperTypes is set.
	Hierarchy classify.Hierarchy
	// MaxDepth bounds the number of ancestors inspected; 0 means
	// DefaultMaxDepth.
	MaxDepth int
	// Bounds configures the trust-boundary name sets; zero fields fall
	// back to DefaultBoundaries.
	Bounds Boundaries
}

// decision is the verdict a single table entry renders for one ancestor.
type decision uint8

const (
	// decideSkip: the entry does not apply to this ancestor.
	decideSkip decision = iota
	// decideNext: the entry applies and the walk advances to the next
	// ancestor.
	decideNext
	decideFound
	decideWrongParent
	decideIndeterminate
	decideNotFound
)

// walkState threads the walk's accumulators explicitly so the walker stays
// reentrant: no package-level state survives a call.
type walkState struct {
	tree    *ast.Tree
	targets map[string]struct{}
	stops   map[string]struct{}
	supers  bool
	hier    classify.Hierarchy

	builders map[string]struct{}
	collOps  map[string]struct{}
	renders  map[string]struct{}

	// crossedWidget records whether at least one instantiation boundary
	// was passed on the way up; the render-method entry needs it to tell
	// a directly-returned root value from a nested one.
	crossedWidget bool
}

// tableEntry is one ordered predicate of the decision table. Keeping the
// table an enumerable slice (rather than a switch) keeps the
// precision/recall tradeoff auditable and testable entry by entry.
type tableEntry struct {
	name string
	eval func(s *walkState, a, from ast.NodeID) decision
}

// decisionTable is evaluated in order at each ancestor; the first entry that
// does not skip wins.
var decisionTable = []tableEntry{
	{"variable-binding", evalVariableBinding},
	{"assignment", evalAssignment},
	{"helper-return", evalHelperReturn},
	{"collection-transform", evalCollectionTransform},
	{"callback-literal", evalCallbackLiteral},
	{"instantiation", evalInstantiation},
	{"method-boundary", evalMethodBoundary},
	{"function-boundary", evalFunctionBoundary},
}

// FindAncestor walks the parent chain of start, applying the decision table
// at each ancestor, and returns the first terminal outcome. It never fails:
// malformed input degrades to NotFound.
func FindAncestor(t *ast.Tree, start ast.NodeID, q Query) Result {
	if t == nil || !t.Valid(start) {
		return NotFound
	}

	maxDepth := q.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	bounds := q.Bounds
	if bounds.BuilderParams == nil {
		bounds.BuilderParams = DefaultBoundaries().BuilderParams
	}
	if bounds.CollectionOps == nil {
		bounds.CollectionOps = DefaultBoundaries().CollectionOps
	}
	if bounds.RenderMethods == nil {
		bounds.RenderMethods = DefaultBoundaries().RenderMethods
	}

	s := &walkState{
		tree:     t,
		targets:  toSet(q.TargetParents),
		stops:    toSet(q.StopAt),
		supers:   q.CheckSuperTypes,
		hier:     q.Hierarchy,
		builders: toSet(bounds.BuilderParams),
		collOps:  toSet(bounds.CollectionOps),
		renders:  toSet(bounds.RenderMethods),
	}

	from := start
	for a, depth := t.Parent(start), 1; t.Valid(a); a, depth = t.Parent(a), depth+1 {
		if depth > maxDepth {
			return NotFound
		}
		verdict := decideSkip
		for _, entry := range decisionTable {
			if v := entry.eval(s, a, from); v != decideSkip {
				verdict = v
				break
			}
		}
		switch verdict {
		case decideFound:
			return Found
		case decideWrongParent:
			return WrongParent
		case decideIndeterminate:
			return Indeterminate
		case decideNotFound:
			return NotFound
		}
		from = a
	}
	return NotFound
}

// evalVariableBinding: the value is being stored into a named local or
// field. Every later use site is invisible to a single walk.
func evalVariableBinding(s *walkState, a, _ ast.NodeID) decision {
	if s.tree.Kind(a) == ast.KindVariableDecl {
		return decideIndeterminate
	}
	return decideSkip
}

// evalAssignment: same escape as a variable binding, through an existing
// name.
func evalAssignment(s *walkState, a, _ ast.NodeID) decision {
	if s.tree.Kind(a) == ast.KindAssignment {
		return decideIndeterminate
	}
	return decideSkip
}

// evalHelperReturn: a return inside anything but a render entry point means
// the value's placement is the caller's concern. Returns inside the render
// method itself, or inside a closure, stay on the walk; the closure or
// method boundary further up renders the verdict.
func evalHelperReturn(s *walkState, a, _ ast.NodeID) decision {
	if s.tree.Kind(a) != ast.KindReturn {
		return decideSkip
	}
	encl, ok := enclosingCallable(s.tree, a)
	if !ok {
		return decideNext
	}
	n := s.tree.Node(encl)
	if n.Kind == ast.KindFunctionExpr {
		return decideNext
	}
	if _, render := s.renders[n.Name]; render {
		return decideNext
	}
	return decideIndeterminate
}

// evalCollectionTransform: generate/map style calls are idiomatic child-list
// builders; the produced values land wherever the caller puts them.
func evalCollectionTransform(s *walkState, a, _ ast.NodeID) decision {
	n := s.tree.Node(a)
	if n.Kind != ast.KindCall {
		return decideSkip
	}
	if _, ok := s.collOps[n.Name]; ok {
		return decideIndeterminate
	}
	return decideSkip
}

// evalCallbackLiteral: a closure hides its eventual call context, with one
// exception: the framework's standard builder parameter is trusted to
// preserve ancestor semantics transparently, so the walk continues through
// it.
func evalCallbackLiteral(s *walkState, a, _ ast.NodeID) decision {
	if s.tree.Kind(a) != ast.KindFunctionExpr {
		return decideSkip
	}
	if p := s.tree.Parent(a); s.tree.Kind(p) == ast.KindNamedArgument {
		if _, trusted := s.builders[s.tree.Node(p).Name]; trusted {
			return decideNext
		}
	}
	return decideIndeterminate
}

// evalInstantiation: the target/stop check itself, plus bookkeeping for the
// render-method entry below.
func evalInstantiation(s *walkState, a, _ ast.NodeID) decision {
	name, ok := classify.TypeName(s.tree, a)
	if !ok {
		return decideSkip
	}
	if s.matchesTarget(name) {
		return decideFound
	}
	if _, stop := s.stops[name]; stop {
		return decideWrongParent
	}
	s.crossedWidget = true
	return decideNext
}

// evalMethodBoundary: a named method ends the walk. Helpers are trusted; a
// render method reached without crossing a single widget boundary means the
// start node is the directly-returned root, whose placement depends on the
// caller.
func evalMethodBoundary(s *walkState, a, _ ast.NodeID) decision {
	n := s.tree.Node(a)
	if n.Kind != ast.KindMethodDecl {
		return decideSkip
	}
	if _, render := s.renders[n.Name]; !render {
		return decideIndeterminate
	}
	if !s.crossedWidget {
		return decideIndeterminate
	}
	return decideNotFound
}

// evalFunctionBoundary: free functions are composed by callers the walk
// cannot see.
func evalFunctionBoundary(s *walkState, a, _ ast.NodeID) decision {
	if s.tree.Kind(a) == ast.KindFunctionDecl {
		return decideIndeterminate
	}
	return decideSkip
}

func (s *walkState) matchesTarget(name string) bool {
	if _, ok := s.targets[name]; ok {
		return true
	}
	if !s.supers || s.hier == nil {
		return false
	}
	return s.hier.IsSubtypeOfAny(name, s.targets)
}

// enclosingCallable finds the nearest method, function or closure enclosing
// id. The scan shares the walker's depth bound.
func enclosingCallable(t *ast.Tree, id ast.NodeID) (ast.NodeID, bool) {
	cur := t.Parent(id)
	for depth := 0; t.Valid(cur) && depth < DefaultMaxDepth; depth++ {
		switch t.Kind(cur) {
		case ast.KindMethodDecl, ast.KindFunctionDecl, ast.KindFunctionExpr:
			return cur, true
		}
		cur = t.Parent(cur)
	}
	return ast.None, false
}

func toSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
