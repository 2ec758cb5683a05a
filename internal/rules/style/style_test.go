package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/widgetlint/internal/ast"
	"github.com/phobologic/widgetlint/internal/classify"
	"github.com/phobologic/widgetlint/internal/rule"
)

func newCtx(t *ast.Tree) *rule.Context {
	return &rule.Context{Tree: t, Hierarchy: classify.FlutterHierarchy()}
}

func get(t *testing.T, name string) rule.Rule {
	t.Helper()
	r, ok := rule.GlobalRegistry().Get(name)
	require.True(t, ok, "rule %s must be registered", name)
	return r
}

func span(start, end int) ast.Span {
	return ast.Span{Start: uint(start), End: uint(end), Line: 1, Col: uint(start) + 1}
}

func TestAvoidUnnecessaryContainer(t *testing.T) {
	t.Parallel()

	src := []byte("Container(child: Text('hi'))")
	tr := ast.NewTree("app.dart", src)
	file := tr.Add(ast.None, ast.Node{Kind: ast.KindFile, Span: span(0, len(src))})
	cont := tr.Add(file, ast.Node{Kind: ast.KindInstanceCreation, Name: "Container", Span: span(0, 28)})
	args := tr.Add(cont, ast.Node{Kind: ast.KindArgumentList, Span: span(9, 28)})
	child := tr.Add(args, ast.Node{Kind: ast.KindNamedArgument, Name: "child", Span: span(10, 27)})
	tr.Add(child, ast.Node{Kind: ast.KindInstanceCreation, Name: "Text", Span: span(17, 27)})

	r := get(t, "avoid_unnecessary_container")
	diags := r.Check(newCtx(tr), cont)
	require.Len(t, diags, 1)
	require.NotNil(t, diags[0].Fix)

	fixed := string(diags[0].Fix.Apply(src))
	assert.Equal(t, "Text('hi')", fixed)
	assert.False(t, strings.Contains(fixed, "Container("))
}

func TestAvoidUnnecessaryContainerKeepsConfiguredContainer(t *testing.T) {
	t.Parallel()

	src := []byte("Container(color: red, child: Text('hi'))")
	tr := ast.NewTree("app.dart", src)
	file := tr.Add(ast.None, ast.Node{Kind: ast.KindFile, Span: span(0, len(src))})
	cont := tr.Add(file, ast.Node{Kind: ast.KindInstanceCreation, Name: "Container", Span: span(0, len(src))})
	args := tr.Add(cont, ast.Node{Kind: ast.KindArgumentList})
	color := tr.Add(args, ast.Node{Kind: ast.KindNamedArgument, Name: "color"})
	tr.Add(color, ast.Node{Kind: ast.KindIdentifier, Name: "red"})
	child := tr.Add(args, ast.Node{Kind: ast.KindNamedArgument, Name: "child"})
	tr.Add(child, ast.Node{Kind: ast.KindInstanceCreation, Name: "Text"})

	r := get(t, "avoid_unnecessary_container")
	assert.Empty(t, r.Check(newCtx(tr), cont))
}

func TestSizedBoxForWhitespace(t *testing.T) {
	t.Parallel()

	src := []byte("Container(width: 8)")
	tr := ast.NewTree("app.dart", src)
	file := tr.Add(ast.None, ast.Node{Kind: ast.KindFile, Span: span(0, len(src))})
	cont := tr.Add(file, ast.Node{Kind: ast.KindInstanceCreation, Name: "Container", Span: span(0, len(src))})
	args := tr.Add(cont, ast.Node{Kind: ast.KindArgumentList})
	w := tr.Add(args, ast.Node{Kind: ast.KindNamedArgument, Name: "width"})
	tr.Add(w, ast.Node{Kind: ast.KindNumberLiteral, Name: "8"})

	r := get(t, "sized_box_for_whitespace")
	diags := r.Check(newCtx(tr), cont)
	require.Len(t, diags, 1)
	require.NotNil(t, diags[0].Fix)
	assert.Equal(t, "SizedBox(width: 8)", string(diags[0].Fix.Apply(src)))
}

func TestSizedBoxForWhitespaceNeedsSizingArg(t *testing.T) {
	t.Parallel()

	// child alone is avoid_unnecessary_container territory, not this rule.
	tr := ast.NewTree("app.dart", nil)
	file := tr.Add(ast.None, ast.Node{Kind: ast.KindFile})
	cont := tr.Add(file, ast.Node{Kind: ast.KindInstanceCreation, Name: "Container"})
	args := tr.Add(cont, ast.Node{Kind: ast.KindArgumentList})
	child := tr.Add(args, ast.Node{Kind: ast.KindNamedArgument, Name: "child"})
	tr.Add(child, ast.Node{Kind: ast.KindInstanceCreation, Name: "Text"})

	r := get(t, "sized_box_for_whitespace")
	assert.Empty(t, r.Check(newCtx(tr), cont))
}

func TestSizedBoxForWhitespaceRejectsNonSizingArgs(t *testing.T) {
	t.Parallel()

	tr := ast.NewTree("app.dart", nil)
	file := tr.Add(ast.None, ast.Node{Kind: ast.KindFile})
	cont := tr.Add(file, ast.Node{Kind: ast.KindInstanceCreation, Name: "Container"})
	args := tr.Add(cont, ast.Node{Kind: ast.KindArgumentList})
	w := tr.Add(args, ast.Node{Kind: ast.KindNamedArgument, Name: "width"})
	tr.Add(w, ast.Node{Kind: ast.KindNumberLiteral, Name: "8"})
	pad := tr.Add(args, ast.Node{Kind: ast.KindNamedArgument, Name: "padding"})
	tr.Add(pad, ast.Node{Kind: ast.KindIdentifier, Name: "insets"})

	r := get(t, "sized_box_for_whitespace")
	assert.Empty(t, r.Check(newCtx(tr), cont))
}

func TestHardcodedDimension(t *testing.T) {
	t.Parallel()

	src := []byte("SizedBox(width: 412, height: 16)")
	tr := ast.NewTree("app.dart", src)
	file := tr.Add(ast.None, ast.Node{Kind: ast.KindFile, Span: span(0, len(src))})
	box := tr.Add(file, ast.Node{Kind: ast.KindInstanceCreation, Name: "SizedBox", Span: span(0, len(src))})
	args := tr.Add(box, ast.Node{Kind: ast.KindArgumentList})
	w := tr.Add(args, ast.Node{Kind: ast.KindNamedArgument, Name: "width"})
	wv := tr.Add(w, ast.Node{Kind: ast.KindNumberLiteral, Span: span(16, 19)})
	h := tr.Add(args, ast.Node{Kind: ast.KindNamedArgument, Name: "height"})
	tr.Add(h, ast.Node{Kind: ast.KindNumberLiteral, Span: span(29, 31)})

	r := get(t, "hardcoded_dimension")
	diags := r.Check(newCtx(tr), box)
	require.Len(t, diags, 1, "only the large width fires, not the small height")
	assert.Contains(t, diags[0].Message, "width")
	assert.Equal(t, tr.Span(wv).Start, diags[0].Span.Start, "diagnostic anchors at the literal")
}

func TestHardcodedDimensionBelowThreshold(t *testing.T) {
	t.Parallel()

	src := []byte("SizedBox(width: 399)")
	tr := ast.NewTree("app.dart", src)
	file := tr.Add(ast.None, ast.Node{Kind: ast.KindFile, Span: span(0, len(src))})
	box := tr.Add(file, ast.Node{Kind: ast.KindInstanceCreation, Name: "SizedBox", Span: span(0, len(src))})
	args := tr.Add(box, ast.Node{Kind: ast.KindArgumentList})
	w := tr.Add(args, ast.Node{Kind: ast.KindNamedArgument, Name: "width"})
	tr.Add(w, ast.Node{Kind: ast.KindNumberLiteral, Span: span(16, 19)})

	r := get(t, "hardcoded_dimension")
	assert.Empty(t, r.Check(newCtx(tr), box))
}

func TestPreferConstConstructor(t *testing.T) {
	t.Parallel()

	src := []byte("Text('hi')")
	tr := ast.NewTree("app.dart", src)
	file := tr.Add(ast.None, ast.Node{Kind: ast.KindFile, Span: span(0, len(src))})
	text := tr.Add(file, ast.Node{Kind: ast.KindInstanceCreation, Name: "Text", Span: span(0, len(src))})
	args := tr.Add(text, ast.Node{Kind: ast.KindArgumentList})
	tr.Add(args, ast.Node{Kind: ast.KindStringLiteral, Name: "'hi'"})

	r := get(t, "prefer_const_constructor")
	diags := r.Check(newCtx(tr), text)
	require.Len(t, diags, 1)
	require.NotNil(t, diags[0].Fix)
	assert.Equal(t, "const Text('hi')", string(diags[0].Fix.Apply(src)))
}

func TestPreferConstConstructorSkipsConst(t *testing.T) {
	t.Parallel()

	tr := ast.NewTree("app.dart", nil)
	file := tr.Add(ast.None, ast.Node{Kind: ast.KindFile})
	text := tr.Add(file, ast.Node{Kind: ast.KindInstanceCreation, Name: "Text", Const: true})
	args := tr.Add(text, ast.Node{Kind: ast.KindArgumentList})
	tr.Add(args, ast.Node{Kind: ast.KindStringLiteral, Name: "'hi'"})

	r := get(t, "prefer_const_constructor")
	assert.Empty(t, r.Check(newCtx(tr), text))
}

func TestPreferConstConstructorSkipsConstContext(t *testing.T) {
	t.Parallel()

	// Nested inside a const instantiation: already implicitly const.
	tr := ast.NewTree("app.dart", nil)
	file := tr.Add(ast.None, ast.Node{Kind: ast.KindFile})
	outer := tr.Add(file, ast.Node{Kind: ast.KindInstanceCreation, Name: "Padding", Const: true})
	oargs := tr.Add(outer, ast.Node{Kind: ast.KindArgumentList})
	child := tr.Add(oargs, ast.Node{Kind: ast.KindNamedArgument, Name: "child"})
	text := tr.Add(child, ast.Node{Kind: ast.KindInstanceCreation, Name: "Text"})
	args := tr.Add(text, ast.Node{Kind: ast.KindArgumentList})
	tr.Add(args, ast.Node{Kind: ast.KindStringLiteral, Name: "'hi'"})

	r := get(t, "prefer_const_constructor")
	assert.Empty(t, r.Check(newCtx(tr), text))
}

func TestPreferConstConstructorNonLiteralArg(t *testing.T) {
	t.Parallel()

	tr := ast.NewTree("app.dart", nil)
	file := tr.Add(ast.None, ast.Node{Kind: ast.KindFile})
	text := tr.Add(file, ast.Node{Kind: ast.KindInstanceCreation, Name: "Text"})
	args := tr.Add(text, ast.Node{Kind: ast.KindArgumentList})
	tr.Add(args, ast.Node{Kind: ast.KindIdentifier, Name: "title"})

	r := get(t, "prefer_const_constructor")
	assert.Empty(t, r.Check(newCtx(tr), text))
}
