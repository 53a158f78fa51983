package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclaredAndReferencedTypes(t *testing.T) {
	tree := Parse("Sub.java", `
class Sub extends Base implements Shape {
    Helper helper;
    static class Inner {}
    Inner make(List<Item> items) { return new Inner(); }
}
`)
	require.False(t, tree.HasErrors())
	assert.Equal(t, []string{"Sub", "Inner"}, DeclaredTypes(tree))
	assert.Equal(t, []string{"Base", "Shape", "Helper", "List", "Item"}, ReferencedTypes(tree))
}

func TestNewCompilationReportsParseDiagnostics(t *testing.T) {
	broken := Parse("Broken.java", "class A { void m() { int = ; } }")
	c := NewCompilation("source", nil).AddTree(broken)
	assert.Equal(t, Language, c.Language())
	assert.Equal(t, broken.Diagnostics, c.Diagnostics())
}
