// Package engine dispatches arena nodes to the rules interested in their
// kind, one synchronous pass per file.
package engine

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/dart"
	"github.com/phobologic/widgetlint/internal/rule"
	"github.com/phobologic/widgetlint/internal/walker"
)

// Options configures an Engine.
type Options struct {
	// Bounds overrides the walker's trust-boundary name sets.
	Bounds walker.Boundaries
	// MaxDepth overrides the walker's depth bound; 0 keeps the default.
	MaxDepth int
	// Severities overrides per-rule severities by rule name.
	Severities map[string]rule.Severity
	// Hierarchy is the base type hierarchy; nil selects the built-in
	// Flutter table. Per-file extends clauses are merged on top.
	Hierarchy classify.Hierarchy
}

// Engine runs a fixed rule set over trees. It holds no per-file state and
// is safe for concurrent use.
type Engine struct {
	rules      []rule.Rule
	dispatch   map[ast.Kind][]rule.Rule
	bounds     walker.Boundaries
	maxDepth   int
	severities map[string]rule.Severity
	hierarchy  classify.Hierarchy
}

// New builds an engine over the given rules.
func New(rules []rule.Rule, opts Options) *Engine {
	dispatch := make(map[ast.Kind][]rule.Rule)
	for _, r := range rules {
		for _, k := range r.Kinds() {
			dispatch[k] = append(dispatch[k], r)
		}
	}
	hier := opts.Hierarchy
	if hier == nil {
		hier = classify.FlutterHierarchy()
	}
	return &Engine{
		rules:      rules,
		dispatch:   dispatch,
		bounds:     opts.Bounds,
		maxDepth:   opts.MaxDepth,
		severities: opts.Severities,
		hierarchy:  hier,
	}
}

// Rules returns the engine's rule set.
func (e *Engine) Rules() []rule.Rule { return e.rules }

// LintTree runs every applicable rule over the tree and returns the
// diagnostics sorted by position.
func (e *Engine) LintTree(t *ast.Tree) []rule.Diagnostic {
	ctx := &rule.Context{
		Tree:      t,
		Hierarchy: classify.Hierarchy{}.Merge(e.hierarchy).Merge(classify.FromTree(t)),
		Bounds:    e.bounds,
		MaxDepth:  e.maxDepth,
	}

	var diags []rule.Diagnostic
	t.Walk(func(id ast.NodeID) {
		for _, r := range e.dispatch[t.Kind(id)] {
			for _, d := range r.Check(ctx, id) {
				if sev, ok := e.severities[d.Rule]; ok {
					d.Severity = sev
				}
				diags = append(diags, d)
			}
		}
	})

	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Span.Start != diags[j].Span.Start {
			return diags[i].Span.Start < diags[j].Span.Start
		}
		return diags[i].Rule < diags[j].Rule
	})
	return diags
}

// LintFile reads, parses and lints a single Dart file.
func (e *Engine) LintFile(ctx context.Context, path string) ([]rule.Diagnostic, *ast.Tree, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return e.LintSource(ctx, path, source)
}

// LintSource parses and lints source attributed to path.
func (e *Engine) LintSource(ctx context.Context, path string, source []byte) ([]rule.Diagnostic, *ast.Tree, error) {
	tree, err := dart.Parse(ctx, path, source)
	if err != nil {
		return nil, nil, err
	}
	return e.LintTree(tree), tree, nil
}
