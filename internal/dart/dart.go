// Package dart parses Dart source with tree-sitter and lowers the resulting
// syntax tree into the linter's arena AST.
package dart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexaandru/go-sitter-forest/dart"
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/phobologic/widgetlint/internal/ast"
)

var errNoRootNode = errors.New("dart: parse produced no root node")

var (
	langOnce sync.Once
	language *sitter.Language
)

// Language returns the shared Dart grammar. The grammar object is immutable
// and safe to share; parsers are not, hence the pool below.
func Language() *sitter.Language {
	langOnce.Do(func() {
		language = sitter.NewLanguage(dart.GetLanguage())
	})
	return language
}

// parserPool hands out one tree-sitter parser per concurrent caller.
var parserPool = sync.Pool{
	New: func() any {
		p := sitter.NewParser()
		p.SetLanguage(Language())
		return p
	},
}

// Parse parses source and returns the lowered arena tree for path.
func Parse(ctx context.Context, path string, source []byte) (*ast.Tree, error) {
	parser, ok := parserPool.Get().(*sitter.Parser)
	if !ok {
		return nil, errors.New("dart: unexpected pool entry")
	}
	defer parserPool.Put(parser)

	tree, err := parser.ParseString(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("dart: parsing %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, errNoRootNode
	}

	return lower(path, source, root), nil
}
