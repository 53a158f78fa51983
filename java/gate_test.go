package java

import (
	"testing"

	"github.com/heshanpadmasiri/codeconv/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withModifiers(kind syntax.Kind, mods ...string) *syntax.Node {
	modifiers := &syntax.Node{Kind: "modifiers", Named: true}
	for _, mod := range mods {
		modifiers.Children = append(modifiers.Children, &syntax.Node{Kind: syntax.Kind(mod), Text: mod})
	}
	n := &syntax.Node{Kind: kind, Named: true}
	if len(mods) > 0 {
		n.Children = append(n.Children, modifiers)
	}
	n.Children = append(n.Children,
		&syntax.Node{Kind: "type_identifier", Field: "type", Text: "var", Named: true},
		&syntax.Node{Kind: "variable_declarator", Field: "declarator", Named: true},
	)
	return n
}

func TestClassify(t *testing.T) {
	annotationOnly := withModifiers("local_variable_declaration")
	annotationOnly.Children = append([]*syntax.Node{{Kind: "modifiers", Named: true, Children: []*syntax.Node{
		{Kind: "marker_annotation", Named: true, Text: "@Nullable"},
	}}}, annotationOnly.Children...)

	tests := []struct {
		name string
		node *syntax.Node
		want syntax.Category
	}{
		{"method", &syntax.Node{Kind: "method_declaration"}, syntax.CategoryMemberLevelDeclaration},
		{"constructor", &syntax.Node{Kind: "constructor_declaration"}, syntax.CategoryMemberLevelDeclaration},
		{"annotation element", &syntax.Node{Kind: "annotation_type_element_declaration"}, syntax.CategoryMemberLevelDeclaration},
		{"private local", withModifiers("local_variable_declaration", "private"), syntax.CategoryMemberLevelDeclaration},
		{"static local", withModifiers("local_variable_declaration", "static"), syntax.CategoryMemberLevelDeclaration},
		{"final local", withModifiers("local_variable_declaration", "final"), syntax.CategoryStatementLevelConstruct},
		{"plain local", withModifiers("local_variable_declaration"), syntax.CategoryAmbiguousDeclaration},
		{"annotated local", annotationOnly, syntax.CategoryAmbiguousDeclaration},
		{"plain field", withModifiers("field_declaration"), syntax.CategoryAmbiguousDeclaration},
		{"public field", withModifiers("field_declaration", "public"), syntax.CategoryMemberLevelDeclaration},
		{"expression statement", &syntax.Node{Kind: "expression_statement"}, syntax.CategoryStatementLevelConstruct},
		{"if", &syntax.Node{Kind: "if_statement"}, syntax.CategoryStatementLevelConstruct},
		{"block", &syntax.Node{Kind: "block"}, syntax.CategoryStatementLevelConstruct},
		{"incomplete member", &syntax.Node{Kind: "ERROR"}, syntax.CategoryStatementLevelConstruct},
		{"class", &syntax.Node{Kind: "class_declaration"}, syntax.CategoryOther},
		{"import", &syntax.Node{Kind: "import_declaration"}, syntax.CategoryOther},
		{"comment", &syntax.Node{Kind: "line_comment"}, syntax.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.node))
		})
	}
}

func TestClassifyContainment(t *testing.T) {
	assert.Equal(t, syntax.MustBeInType, ClassifyContainment(&syntax.Node{Kind: "method_declaration"}))
	assert.Equal(t, syntax.CanBeInMethod, ClassifyContainment(withModifiers("local_variable_declaration")))
	assert.Equal(t, syntax.CanBeInMethod, ClassifyContainment(&syntax.Node{Kind: "return_statement"}))
	assert.Equal(t, syntax.Neither, ClassifyContainment(&syntax.Node{Kind: "package_declaration"}))
}

func TestClassifyParsedLocal(t *testing.T) {
	tree := Parse("snippet.java", "int x = 5;")
	require.False(t, tree.HasErrors())
	require.Len(t, tree.Root.Children, 1)
	assert.Equal(t, syntax.Kind("local_variable_declaration"), tree.Root.Children[0].Kind)
	assert.Equal(t, syntax.CategoryAmbiguousDeclaration, Classify(tree.Root.Children[0]))
}

func TestIsTrivia(t *testing.T) {
	assert.True(t, IsTrivia(&syntax.Node{Kind: "line_comment"}))
	assert.True(t, IsTrivia(&syntax.Node{Kind: "block_comment"}))
	assert.False(t, IsTrivia(&syntax.Node{Kind: "expression_statement"}))
}
