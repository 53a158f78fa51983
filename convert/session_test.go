package convert

import (
	"context"
	"slices"
	"testing"

	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/java"
	"github.com/heshanpadmasiri/codeconv/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTextStatement(t *testing.T) {
	res, err := NewSession(JavaToGo(nil)).ConvertText("int x = 5;")
	require.NoError(t, err)
	assert.Equal(t, syntax.SurroundWithMethod, res.Shape)
	require.Len(t, res.Nodes, 1)
	assert.Equal(t, gosrc.KindShortVarDecl, res.Nodes[0].Kind)
	assert.Equal(t, "x := 5", res.Text)
	assert.NotContains(t, res.Text, java.SurroundingSub)
}

func TestConvertTextStatements(t *testing.T) {
	res, err := NewSession(JavaToGo(nil)).ConvertText("int total = 0;\nfor (int i = 0; i < 3; i++) {\n    total += i;\n}")
	require.NoError(t, err)
	assert.Equal(t, syntax.SurroundWithMethod, res.Shape)
	require.Len(t, res.Nodes, 2)
	assert.Equal(t, gosrc.KindShortVarDecl, res.Nodes[0].Kind)
	assert.Equal(t, gosrc.KindFor, res.Nodes[1].Kind)
	assert.Contains(t, res.Text, "for i := 0; (i < 3); i++ {")
}

func TestConvertTextMethod(t *testing.T) {
	res, err := NewSession(JavaToGo(nil)).ConvertText("public int twice(int x) {\n    return x * 2;\n}")
	require.NoError(t, err)
	assert.Equal(t, syntax.SurroundWithClass, res.Shape)
	require.Len(t, res.Nodes, 1)
	assert.Equal(t, gosrc.KindMethodBlock, res.Nodes[0].Kind)
	assert.Contains(t, res.Text, "Twice(x int) int {")
	assert.Contains(t, res.Text, "return (x * 2)")
	assert.NotContains(t, res.Text, "type ")
}

func TestConvertTextField(t *testing.T) {
	res, err := NewSession(JavaToGo(nil)).ConvertText("private int count;")
	require.NoError(t, err)
	assert.Equal(t, syntax.SurroundWithClass, res.Shape)
	require.Len(t, res.Nodes, 1)
	assert.Equal(t, gosrc.KindField, res.Nodes[0].Kind)
	assert.Equal(t, "count int", res.Text)
}

func TestConvertTextWholeUnit(t *testing.T) {
	res, err := NewSession(JavaToGo(nil)).ConvertText("class Box {\n    int size;\n}")
	require.NoError(t, err)
	assert.Equal(t, syntax.WrapNone, res.Shape)
	require.Len(t, res.Nodes, 1)
	assert.Equal(t, gosrc.KindSourceFile, res.Nodes[0].Kind)
	assert.Contains(t, res.Text, "type box struct {\n\tsize int\n}")
}

func TestConvertTextParseError(t *testing.T) {
	_, err := NewSession(JavaToGo(nil)).ConvertText("int = ;")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, snippetName, parseErr.Tree)
	assert.NotEmpty(t, parseErr.Diagnostics)
}

func TestConvertTextStrictFailure(t *testing.T) {
	strict := JavaToGo(&java.Converter{Config: gosrc.DefaultConfig(), Strict: true})
	_, err := NewSession(strict).ConvertText("try { work(); } finally { done(); }")
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.ErrorIs(t, err, java.ErrStrict)
}

func TestConvertTextMatchesEmbeddedConversion(t *testing.T) {
	session := NewSession(JavaToGo(nil))
	embedded := func(t *testing.T, unit string, kind syntax.Kind) *syntax.Node {
		t.Helper()
		res, err := session.ConvertText(unit)
		require.NoError(t, err)
		require.Equal(t, syntax.WrapNone, res.Shape)
		n, ok := syntax.Find(syntax.Descendants(res.Nodes[0]), syntax.OfKind(kind))
		require.True(t, ok, "no %s in %s", kind, res.Text)
		return n
	}

	t.Run("statement", func(t *testing.T) {
		res, err := session.ConvertText("int x = 5;")
		require.NoError(t, err)
		want := embedded(t, "class K { void m() { int x = 5; } }", gosrc.KindShortVarDecl)
		require.Len(t, res.Nodes, 1)
		assert.Equal(t, want.Kind, res.Nodes[0].Kind)
		assert.Equal(t, want.Text, res.Nodes[0].Text)
	})

	t.Run("field", func(t *testing.T) {
		res, err := session.ConvertText("private int count;")
		require.NoError(t, err)
		want := embedded(t, "class K { private int count; }", gosrc.KindField)
		require.Len(t, res.Nodes, 1)
		assert.Equal(t, want.Kind, res.Nodes[0].Kind)
		assert.Equal(t, want.Text, res.Nodes[0].Text)
	})

	t.Run("method", func(t *testing.T) {
		res, err := session.ConvertText("public int twice(int x) {\n    return x * 2;\n}")
		require.NoError(t, err)
		want := embedded(t, "class K {\n    public int twice(int x) {\n        return x * 2;\n    }\n}", gosrc.KindMethodBlock)
		require.Len(t, res.Nodes, 1)
		got := res.Nodes[0]
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.ChildByField("body").Text, got.ChildByField("body").Text)
	})
}

func TestConvertTextGroupsMembersLikeTheRenderedStruct(t *testing.T) {
	res, err := NewSession(JavaToGo(nil)).ConvertText("int size() {\n    return 0;\n}\nint count;")
	require.NoError(t, err)
	assert.Equal(t, syntax.SurroundWithClass, res.Shape)
	require.Len(t, res.Nodes, 2)
	assert.Equal(t, gosrc.KindField, res.Nodes[0].Kind)
	assert.Equal(t, gosrc.KindMethodBlock, res.Nodes[1].Kind)
}

func TestConvertTextReportsSnippetPositions(t *testing.T) {
	res, err := NewSession(JavaToGo(nil)).ConvertText("int x = 5")
	require.NoError(t, err)
	assert.Equal(t, syntax.SurroundWithMethod, res.Shape)
	assert.Contains(t, res.Warnings, "snippet:1:10: missing ;")
}

func TestWrapperLines(t *testing.T) {
	conv := JavaToGo(nil)
	assert.Equal(t, 2, wrapperLines(conv, syntax.SurroundWithMethod))
	assert.Equal(t, 1, wrapperLines(conv, syntax.SurroundWithClass))
	assert.Equal(t, 0, wrapperLines(conv, syntax.WrapNone))
}

func TestConvertFilesRejectsTargetNameCollisions(t *testing.T) {
	res, err := NewSession(JavaToGo(nil)).ConvertFiles([]SourceFile{
		{Name: "X.java", Text: "class X { int a; }"},
		{Name: "X", Text: "class Y { int b; }"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"X.java"}, sources(res))
	require.Len(t, res.Failed, 1)
	assert.Contains(t, res.Failed[0].Error(), "duplicate file X: X.java also converts to X.go")
}

func TestConvertFilesOrdersByDependency(t *testing.T) {
	res, err := NewSession(JavaToGo(nil)).ConvertFiles([]SourceFile{
		{Name: "Sub.java", Text: "public class Sub extends Base {\n    public Sub() { super(1); }\n}"},
		{Name: "Base.java", Text: "public class Base {\n    private int x;\n    public Base(int x) { this.x = x; }\n}"},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Failed)
	require.Len(t, res.Files, 2)
	assert.Equal(t, "Base.java", res.Files[0].Source)
	assert.Equal(t, "Base.go", res.Files[0].Name)
	assert.Equal(t, "Sub.java", res.Files[1].Source)
	assert.Contains(t, res.Files[1].Text, "type Sub struct {\n\tBase\n}")
	assert.Contains(t, res.Files[1].Text, "this.Base = (*NewBaseFromInt(1))")
	assert.Equal(t, res.Files[1].Root.Text, res.Files[1].Text)
}

func TestConvertFilesBreaksCycles(t *testing.T) {
	res, err := NewSession(JavaToGo(nil)).ConvertFiles([]SourceFile{
		{Name: "B.java", Text: "class B { A a; }"},
		{Name: "A.java", Text: "class A { B b; }"},
		{Name: "C.java", Text: "class C { }"},
	})
	require.NoError(t, err)
	order := sources(res)
	require.Len(t, order, 3)
	// B's use of A is seen first; A's use of B would close the cycle
	assert.Less(t, slices.Index(order, "A.java"), slices.Index(order, "B.java"))
}

func TestConvertFilesFailuresAreLocal(t *testing.T) {
	strict := JavaToGo(&java.Converter{Config: gosrc.DefaultConfig(), Strict: true})
	res, err := NewSession(strict).ConvertFiles([]SourceFile{
		{Name: "Broken.java", Text: "class Broken { void m( }"},
		{Name: "Risky.java", Text: "class Risky { void m() { try { m(); } finally { m(); } } }"},
		{Name: "Fine.java", Text: "class Fine { int n; }"},
		{Name: "Fine.java", Text: "class Other { }"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fine.java"}, sources(res))
	require.Len(t, res.Failed, 3)

	var parseErr *ParseError
	require.ErrorAs(t, res.Failed[0], &parseErr)
	assert.Equal(t, "Broken.java", parseErr.Tree)
	assert.Contains(t, res.Failed[1].Error(), "duplicate file Fine.java")
	var convErr *ConversionError
	require.ErrorAs(t, res.Failed[2], &convErr)
	assert.Equal(t, "Risky.java", convErr.Tree)
}

func TestRunSessions(t *testing.T) {
	batches := []Batch{
		{Name: "one", Files: []SourceFile{{Name: "A.java", Text: "class A { int a; }"}}},
		{Name: "two", Files: []SourceFile{
			{Name: "B.java", Text: "class B { int b; }"},
			{Name: "C.java", Text: "class C { int c; }"},
		}},
		{Name: "three", Files: nil},
	}
	results, err := RunSessions(context.Background(), JavaToGo(nil), 2, batches)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []string{"A.java"}, sources(results[0]))
	assert.Equal(t, []string{"B.java", "C.java"}, sources(results[1]))
	assert.Empty(t, results[2].Files)
}

func TestRunSessionsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunSessions(ctx, JavaToGo(nil), 1, []Batch{{Name: "one"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func sources(res *FilesResult) []string {
	var out []string
	for _, f := range res.Files {
		out = append(out, f.Source)
	}
	return out
}
