package java

import (
	"testing"

	"github.com/heshanpadmasiri/codeconv/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.Equal(t, "class SurroundingClass {\nvoid surroundingSub() {\nx = 1;\n}\n}", Wrap("x = 1;", syntax.SurroundWithMethod))
	assert.Equal(t, "class SurroundingClass {\nint f;\n}", Wrap("int f;", syntax.SurroundWithClass))
	assert.Equal(t, "class A {}", Wrap("class A {}", syntax.WrapNone))
}

func TestWrappedSnippetParses(t *testing.T) {
	tree := Parse("snippet.java", Wrap("int x = 5;\nx++;", syntax.SurroundWithMethod))
	require.False(t, tree.HasErrors(), "%v", tree.Diagnostics)

	method, ok := syntax.Find(syntax.Descendants(tree.Root), func(n *syntax.Node) bool {
		return IsSurroundedKind(syntax.SurroundWithMethod, n.Kind)
	})
	require.True(t, ok)
	assert.Equal(t, SurroundingSub, method.Name)

	class, ok := syntax.Find(syntax.Descendants(tree.Root), func(n *syntax.Node) bool {
		return IsSurroundedKind(syntax.SurroundWithClass, n.Kind)
	})
	require.True(t, ok)
	assert.Equal(t, SurroundingClass, class.Name)
}

func TestIsSurroundedKind(t *testing.T) {
	assert.True(t, IsSurroundedKind(syntax.SurroundWithMethod, "method_declaration"))
	assert.False(t, IsSurroundedKind(syntax.SurroundWithMethod, "class_declaration"))
	for _, kind := range []syntax.Kind{"class_declaration", "interface_declaration", "enum_declaration", "record_declaration"} {
		assert.True(t, IsSurroundedKind(syntax.SurroundWithClass, kind), kind)
	}
	assert.False(t, IsSurroundedKind(syntax.SurroundWithClass, "method_declaration"))
	assert.False(t, IsSurroundedKind(syntax.WrapNone, "class_declaration"))
}
