package java

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/syntax"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// Language tags trees produced by Parse
const Language = "java"

// Parse parses Java source code into a syntax tree. Syntax errors do not fail
// the parse; they are reported as diagnostics on the tree.
func Parse(name, text string) *syntax.Tree {
	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_java.Language())); err != nil {
		panic(fmt.Sprintf("loading java grammar: %v", err))
	}
	source := []byte(text)
	tsTree := parser.Parse(source, nil)
	defer tsTree.Close()

	b := &treeBuilder{name: name, source: source}
	root := b.build(tsTree.RootNode(), "")
	return &syntax.Tree{
		Name:        name,
		Language:    Language,
		Text:        text,
		Root:        root,
		Diagnostics: b.diagnostics,
	}
}

type treeBuilder struct {
	name        string
	source      []byte
	last        syntax.NodeID
	diagnostics []syntax.Diagnostic
}

func (b *treeBuilder) build(tsNode *tree_sitter.Node, field string) *syntax.Node {
	b.last++
	n := &syntax.Node{
		ID:    b.last,
		Kind:  syntax.Kind(tsNode.Kind()),
		Field: field,
		Text:  string(b.source[tsNode.StartByte():tsNode.EndByte()]),
		Start: b.position(tsNode),
		Named: tsNode.IsNamed(),
	}
	switch {
	case tsNode.IsError():
		b.report(n, syntax.SeverityError, fmt.Sprintf("syntax error near %q", firstLine(n.Text)))
	case tsNode.IsMissing():
		b.report(n, syntax.SeverityWarning, "missing "+tsNode.Kind())
	}
	for i := uint(0); i < tsNode.ChildCount(); i++ {
		child := tsNode.Child(i)
		if child == nil {
			continue
		}
		childField := tsNode.FieldNameForChild(uint32(i))
		n.Children = append(n.Children, b.build(child, childField))
	}
	n.Name = declaredName(n)
	return n
}

func (b *treeBuilder) position(tsNode *tree_sitter.Node) syntax.Position {
	point := tsNode.StartPosition()
	row, err := safecast.Conv[int](point.Row)
	if err != nil {
		row = 0
	}
	col, err := safecast.Conv[int](point.Column)
	if err != nil {
		col = 0
	}
	return syntax.Position{Line: row + 1, Column: col + 1}
}

func (b *treeBuilder) report(n *syntax.Node, severity syntax.Severity, msg string) {
	b.diagnostics = append(b.diagnostics, syntax.Diagnostic{
		Tree:     b.name,
		Position: n.Start,
		Severity: severity,
		Message:  msg,
	})
}

func declaredName(n *syntax.Node) string {
	switch n.Kind {
	case "field_declaration", "local_variable_declaration":
		if decl := n.ChildByField("declarator"); decl != nil {
			return textOf(decl.ChildByField("name"))
		}
	default:
		if name := n.ChildByField("name"); name != nil && strings.HasSuffix(string(n.Kind), "_declaration") {
			return name.Text
		}
	}
	return ""
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}

func textOf(n *syntax.Node) string {
	if n == nil {
		return ""
	}
	return n.Text
}

// ConvertedName is the name of the Go tree produced from a Java tree
func ConvertedName(name string) string {
	if base, ok := strings.CutSuffix(name, ".java"); ok {
		return base + ".go"
	}
	return name + ".go"
}

// unhandledChild aborts the conversion of the current member
func unhandledChild(ctx *MigrationContext, node *syntax.Node, parentName string) {
	fatalError(ctx, node, fmt.Sprintf("unhandled %s child node kind: %s", parentName, node.Kind), string(node.Kind))
}

func ensure(ctx *MigrationContext, node *syntax.Node, msg string, condition bool) {
	if condition {
		return
	}
	fatalError(ctx, node, "assertion failed: "+msg, string(node.Kind))
}

func mustField(ctx *MigrationContext, node *syntax.Node, field string) *syntax.Node {
	child := node.ChildByField(field)
	if child == nil {
		fatalError(ctx, node, fmt.Sprintf("%s missing %s field", node.Kind, field), string(node.Kind))
	}
	return child
}

// isIgnored reports tokens and trivia that carry nothing for the conversion
func isIgnored(node *syntax.Node) bool {
	switch node.Kind {
	case "{", "}", "(", ")", ",", ";", "line_comment", "block_comment":
		return true
	}
	return false
}

func constructorName(isPublic bool, ty gosrc.Type, params ...gosrc.Param) string {
	nameBuilder := strings.Builder{}
	nameBuilder.WriteString(gosrc.ToIdentifier("new", isPublic))
	nameBuilder.WriteString(gosrc.CapitalizeFirstLetter(ty.ToSource()))
	if len(params) > 0 {
		nameBuilder.WriteString("From")
		for _, param := range params {
			nameBuilder.WriteString(typeWord(param.Ty))
		}
	}
	return nameBuilder.String()
}

// typeWord turns a Go type into something usable inside an identifier:
// "[]int" becomes "SliceInt", "map[string]*Foo" becomes "MapStringFoo"
func typeWord(ty gosrc.Type) string {
	replacer := strings.NewReplacer("[]", " Slice ", "map[", " Map ", "]", " ", "*", " ", "...", " Variadic ", ".", " ")
	var sb strings.Builder
	for _, word := range strings.Fields(replacer.Replace(string(ty))) {
		sb.WriteString(gosrc.CapitalizeFirstLetter(word))
	}
	return sb.String()
}
