package classify

import "github.com/phobologic/widgetlint/internal/ast"

// Hierarchy maps a type name to its direct supertypes. Chains are resolved
// transitively by Chain. The linter runs without a type checker, so the
// hierarchy is a curated table of the framework's widget tree merged with
// extends clauses found in the analyzed file; unknown types simply have an
// empty chain, which fails supertype matches and therefore biases every rule
// toward silence.
type Hierarchy map[string][]string

// FlutterHierarchy returns the built-in widget hierarchy. Only the classes
// the built-in rules reason about are listed; Merge extends it per file.
func FlutterHierarchy() Hierarchy {
	return Hierarchy{
		"Row":                    {"Flex"},
		"Column":                 {"Flex"},
		"Flex":                   {"MultiChildRenderObjectWidget"},
		"Wrap":                   {"MultiChildRenderObjectWidget"},
		"Stack":                  {"MultiChildRenderObjectWidget"},
		"IndexedStack":           {"Stack"},
		"Positioned":             {"ParentDataWidget"},
		"PositionedDirectional":  {"StatelessWidget"},
		"Expanded":               {"Flexible"},
		"Flexible":               {"ParentDataWidget"},
		"Spacer":                 {"StatelessWidget"},
		"ListView":               {"BoxScrollView"},
		"GridView":               {"BoxScrollView"},
		"BoxScrollView":          {"ScrollView"},
		"CustomScrollView":       {"ScrollView"},
		"ScrollView":             {"StatelessWidget"},
		"SingleChildScrollView":  {"StatelessWidget"},
		"Container":              {"StatelessWidget"},
		"SafeArea":               {"StatelessWidget"},
		"Scaffold":               {"StatefulWidget"},
		"SizedBox":               {"SingleChildRenderObjectWidget"},
		"Table":                  {"RenderObjectWidget"},
		"TableCell":              {"ParentDataWidget"},
		"TextButton":             {"ButtonStyleButton"},
		"ElevatedButton":         {"ButtonStyleButton"},
		"OutlinedButton":         {"ButtonStyleButton"},
		"ButtonStyleButton":      {"StatefulWidget"},
		"StatelessWidget":        {"Widget"},
		"StatefulWidget":         {"Widget"},
		"ParentDataWidget":       {"ProxyWidget"},
		"ProxyWidget":            {"Widget"},
		"RenderObjectWidget":     {"Widget"},
		"SingleChildRenderObjectWidget": {"RenderObjectWidget"},
		"MultiChildRenderObjectWidget":  {"RenderObjectWidget"},
	}
}

// FromTree extracts a Hierarchy from the extends clauses of class
// declarations in t.
func FromTree(t *ast.Tree) Hierarchy {
	h := Hierarchy{}
	t.Walk(func(id ast.NodeID) {
		n := t.Node(id)
		if n.Kind == ast.KindClassDecl && n.Name != "" && n.Super != "" {
			h[n.Name] = append(h[n.Name], n.Super)
		}
	})
	return h
}

// Merge folds other into h, keeping existing entries first. h is returned
// for chaining.
func (h Hierarchy) Merge(other Hierarchy) Hierarchy {
	for name, supers := range other {
	next:
		for _, s := range supers {
			for _, have := range h[name] {
				if have == s {
					continue next
				}
			}
			h[name] = append(h[name], s)
		}
	}
	return h
}

// chainDepthLimit guards against malformed cyclic extends clauses.
const chainDepthLimit = 32

// Chain returns the full supertype chain of name, nearest first. The name
// itself is not included.
func (h Hierarchy) Chain(name string) []string {
	var chain []string
	seen := map[string]struct{}{name: {}}
	frontier := h[name]
	for len(frontier) > 0 && len(chain) < chainDepthLimit {
		var next []string
		for _, s := range frontier {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			chain = append(chain, s)
			next = append(next, h[s]...)
		}
		frontier = next
	}
	return chain
}

// IsSubtypeOfAny reports whether name, or any entry in its supertype chain,
// appears in targets.
func (h Hierarchy) IsSubtypeOfAny(name string, targets map[string]struct{}) bool {
	if _, ok := targets[name]; ok {
		return true
	}
	for _, s := range h.Chain(name) {
		if _, ok := targets[s]; ok {
			return true
		}
	}
	return false
}
