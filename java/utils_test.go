package java

import (
	"testing"

	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tree := Parse("A.java", "class A {\n  void m() {}\n}\n")
	assert.Equal(t, "A.java", tree.Name)
	assert.Equal(t, Language, tree.Language)
	assert.Empty(t, tree.Diagnostics)
	assert.Equal(t, syntax.Kind("program"), tree.Root.Kind)

	seen := map[syntax.NodeID]bool{tree.Root.ID: true}
	for n := range syntax.Descendants(tree.Root) {
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
	}

	method, ok := syntax.Find(syntax.Descendants(tree.Root), syntax.OfKind("method_declaration"))
	require.True(t, ok)
	assert.Equal(t, "m", method.Name)
	assert.Equal(t, syntax.Position{Line: 2, Column: 3}, method.Start)
	assert.True(t, method.Named)
	assert.Equal(t, "body", method.ChildByField("body").Field)
}

func TestParseReportsSyntaxErrors(t *testing.T) {
	tree := Parse("Broken.java", "class A { void m() { int = ; } }")
	assert.NotEmpty(t, tree.Diagnostics)
	for _, d := range tree.Diagnostics {
		assert.Equal(t, "Broken.java", d.Tree)
		assert.Positive(t, d.Position.Line)
	}
}

func TestConvertedName(t *testing.T) {
	assert.Equal(t, "Foo.go", ConvertedName("Foo.java"))
	assert.Equal(t, "dir/Foo.go", ConvertedName("dir/Foo.java"))
	assert.Equal(t, "snippet.go", ConvertedName("snippet"))
}

func TestConstructorName(t *testing.T) {
	assert.Equal(t, "newFoo", constructorName(false, "Foo"))
	assert.Equal(t, "NewFooFromIntString", constructorName(true, "Foo",
		gosrc.Param{Name: "a", Ty: gosrc.TypeInt},
		gosrc.Param{Name: "b", Ty: gosrc.TypeString},
	))
	assert.Equal(t, "newFooFromSliceIntBar", constructorName(false, "Foo",
		gosrc.Param{Name: "a", Ty: "[]int"},
		gosrc.Param{Name: "b", Ty: "*Bar"},
	))
}
