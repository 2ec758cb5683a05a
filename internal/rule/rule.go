// Package rule defines the lint-rule contract: the Rule interface, the
// Diagnostic a rule produces, and the registry rules install themselves
// into at init time.
package rule

import (
	"fmt"

	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/fix"
	"github.com/phobologic/widgetlint/internal/walker"
)

// Severity grades a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a config string to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "info":
		return SeverityInfo, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "critical":
		return SeverityCritical, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity %q", s)
	}
}

// Diagnostic is one finding, anchored at a source span. Diagnostics are
// transient: created during a pass, handed to a reporter, never persisted
// by the core.
type Diagnostic struct {
	Rule     string    `json:"rule"`
	Severity Severity  `json:"-"`
	Message  string    `json:"message"`
	Path     string    `json:"path"`
	Line     uint      `json:"line"`
	Col      uint      `json:"col"`
	Span     ast.Span  `json:"span"`
	Fix      *fix.Edit `json:"fix,omitempty"`
}

// Context carries the per-file analysis inputs every rule sees: the tree,
// the merged type hierarchy, and the configured walker boundaries. It is
// read-only during a pass.
type Context struct {
	Tree      *ast.Tree
	Hierarchy classify.Hierarchy
	Bounds    walker.Boundaries
	MaxDepth  int
}

// Query builds a walker query against the context's hierarchy and
// boundaries for the given target parents.
func (c *Context) Query(targets ...string) walker.Query {
	return walker.Query{
		TargetParents: targets,
		Hierarchy:     c.Hierarchy,
		MaxDepth:      c.MaxDepth,
		Bounds:        c.Bounds,
	}
}

// Diag constructs a diagnostic anchored at node.
func (c *Context) Diag(r Rule, node ast.NodeID, message string) Diagnostic {
	sp := c.Tree.Span(node)
	return Diagnostic{
		Rule:     r.Name(),
		Severity: r.Severity(),
		Message:  message,
		Path:     c.Tree.Path,
		Line:     sp.Line,
		Col:      sp.Col,
		Span:     sp,
	}
}

// Rule is implemented by every lint rule. Check must be pure over the
// context: a rule that cannot classify a node silently declines by
// returning nil, never an error.
type Rule interface {
	Name() string
	Severity() Severity
	Description() string
	// Kinds returns the node kinds the rule wants to be invoked for; the
	// engine builds its dispatch table from them.
	Kinds() []ast.Kind
	Check(ctx *Context, node ast.NodeID) []Diagnostic
}
