package java

import (
	"slices"

	"github.com/heshanpadmasiri/codeconv/syntax"
)

var typeDeclarationKinds = []syntax.Kind{
	"class_declaration",
	"interface_declaration",
	"enum_declaration",
	"record_declaration",
	"annotation_type_declaration",
}

// NewCompilation creates an empty Java compilation. Java trees are only
// checked syntactically, so its diagnostics are the parse diagnostics of its
// trees.
func NewCompilation(name string, references []string) *syntax.Compilation {
	return syntax.NewCompilation(name, Language, references, syntax.OutputLibrary, syntax.TreeDiagnostics)
}

// DeclaredTypes lists the names of every type declared in tree, nested ones
// included, in source order
func DeclaredTypes(tree *syntax.Tree) []string {
	var names []string
	for n := range syntax.Descendants(tree.Root) {
		if n.Is(typeDeclarationKinds...) && n.Name != "" && !slices.Contains(names, n.Name) {
			names = append(names, n.Name)
		}
	}
	return names
}

// ReferencedTypes lists the simple type names tree refers to but does not
// declare itself
func ReferencedTypes(tree *syntax.Tree) []string {
	declared := DeclaredTypes(tree)
	var names []string
	for n := range syntax.Descendants(tree.Root) {
		if n.Kind != "type_identifier" {
			continue
		}
		name := n.Text
		if slices.Contains(declared, name) || slices.Contains(names, name) {
			continue
		}
		names = append(names, name)
	}
	return names
}
