package gosrc

import (
	"strings"

	"github.com/heshanpadmasiri/codeconv/syntax"
)

// Node kinds of the Go side syntax view
const (
	KindSourceFile  syntax.Kind = "source_file"
	KindTypeBlock   syntax.Kind = "type_block"
	KindTypeHeader  syntax.Kind = "type_header"
	KindField       syntax.Kind = "field_declaration"
	KindInterface   syntax.Kind = "interface_type"
	KindVar         syntax.Kind = "var_declaration"
	KindMethodBlock syntax.Kind = "method_block"
	KindSignature   syntax.Kind = "func_signature"
	KindBlock       syntax.Kind = "block"
	KindFailed      syntax.Kind = "failed_migration"

	KindShortVarDecl syntax.Kind = "short_var_declaration"
	KindAssignment   syntax.Kind = "assignment_statement"
	KindCall         syntax.Kind = "call_statement"
	KindReturn       syntax.Kind = "return_statement"
	KindIf           syntax.Kind = "if_statement"
	KindFor          syntax.Kind = "for_statement"
	KindBlockStmt    syntax.Kind = "block_statement"
	KindComment      syntax.Kind = "comment"
	KindStatement    syntax.Kind = "statement"
)

// Tree renders the file and exposes it as a syntax tree. Structs are grouped
// with the methods and functions they own into a type block, mirroring the
// class they were converted from.
func (s *GoSource) Tree(name string, config Config) *syntax.Tree {
	b := &treeBuilder{}
	root := b.node(KindSourceFile, s.ToSource(config))

	owned := map[string]bool{}
	for _, strct := range s.Structs {
		owned[strct.Name] = true
	}
	for _, iface := range s.Interfaces {
		n := b.node(KindInterface, iface.ToSource())
		n.Name, n.Symbol, n.Origin = ToIdentifier(iface.Name, iface.Public), iface.JavaName, iface.Origin
		root.Children = append(root.Children, n)
	}
	for _, strct := range s.Structs {
		root.Children = append(root.Children, b.typeBlock(s, strct))
	}
	for _, v := range s.Vars {
		if owned[v.Owner] {
			continue
		}
		root.Children = append(root.Children, b.moduleVar(v))
	}
	for _, fn := range s.Functions {
		if owned[fn.Owner] {
			continue
		}
		root.Children = append(root.Children, b.function(&fn))
	}
	for _, method := range s.Methods {
		if owned[method.Owner] {
			continue
		}
		root.Children = append(root.Children, b.method(&method))
	}
	for _, failed := range s.FailedMigrations {
		root.Children = append(root.Children, b.node(KindFailed, failed.ToSource()))
	}
	return &syntax.Tree{
		Name:     name,
		Language: Language,
		Text:     root.Text,
		Root:     root,
	}
}

type treeBuilder struct {
	last syntax.NodeID
}

func (b *treeBuilder) node(kind syntax.Kind, text string) *syntax.Node {
	b.last++
	return &syntax.Node{ID: b.last, Kind: kind, Text: text}
}

func (b *treeBuilder) typeBlock(s *GoSource, strct Struct) *syntax.Node {
	block := b.node(KindTypeBlock, "")
	block.Name = ToIdentifier(strct.Name, strct.Public)
	block.Symbol = strct.JavaName
	block.Origin = strct.Origin

	header := b.node(KindTypeHeader, strct.ToSource())
	header.Name = block.Name
	block.Children = append(block.Children, header)
	texts := []string{header.Text}
	add := func(n *syntax.Node) {
		block.Children = append(block.Children, n)
		texts = append(texts, n.Text)
	}
	for _, field := range strct.Fields {
		n := b.node(KindField, field.ToSource())
		n.Name, n.Origin = ToIdentifier(field.Name, field.Public), field.Origin
		add(n)
	}
	for _, v := range s.Vars {
		if v.Owner == strct.Name {
			add(b.moduleVar(v))
		}
	}
	for _, fn := range s.Functions {
		if fn.Owner == strct.Name {
			add(b.function(&fn))
		}
	}
	for _, method := range s.Methods {
		if method.Owner == strct.Name {
			add(b.method(&method))
		}
	}
	block.Text = strings.Join(texts, "\n")
	return block
}

func (b *treeBuilder) moduleVar(v ModuleVar) *syntax.Node {
	n := b.node(KindVar, v.ToSource())
	n.Name, n.Origin = v.Name, v.Origin
	return n
}

func (b *treeBuilder) function(fn *Function) *syntax.Node {
	return b.methodBlock(fn.Signature(), fn.ToSource(), fn)
}

func (b *treeBuilder) method(m *Method) *syntax.Node {
	return b.methodBlock(m.Signature(), m.ToSource(), &m.Function)
}

func (b *treeBuilder) methodBlock(signature, text string, fn *Function) *syntax.Node {
	n := b.node(KindMethodBlock, text)
	n.Name, n.Symbol, n.Origin = ToIdentifier(fn.Name, fn.Public), fn.JavaName, fn.Origin

	sig := b.node(KindSignature, signature)
	sig.Field = "signature"
	body := b.node(KindBlock, "")
	body.Field = "body"
	lines := make([]string, 0, len(fn.Body))
	for _, stmt := range fn.Body {
		child := b.node(statementKind(stmt), stmt.ToSource())
		body.Children = append(body.Children, child)
		lines = append(lines, child.Text)
	}
	body.Text = strings.Join(lines, "\n")
	n.Children = []*syntax.Node{sig, body}
	return n
}

func statementKind(stmt Statement) syntax.Kind {
	switch s := stmt.(type) {
	case *VarDeclaration:
		if s.Value != nil {
			return KindShortVarDecl
		}
		return KindVar
	case *AssignStatement:
		return KindAssignment
	case *CallStatement:
		return KindCall
	case *ReturnStatement:
		return KindReturn
	case *IfStatement:
		return KindIf
	case *ForStatement, *RangeForStatement:
		return KindFor
	case *BlockStatement:
		return KindBlockStmt
	case *CommentStmt:
		return KindComment
	default:
		return KindStatement
	}
}

// ImportantChildren exposes the meaningful contents of a container node: the members of
// a type block (without its header) or the statements of a function body.
// Type block members come in rendering order, so fields precede package vars,
// then functions, then methods, whatever their order in the source class.
// Other kinds are not containers.
func ImportantChildren(node *syntax.Node) ([]*syntax.Node, bool) {
	switch node.Kind {
	case KindTypeBlock:
		var members []*syntax.Node
		for _, child := range node.Children {
			if child.Kind != KindTypeHeader {
				members = append(members, child)
			}
		}
		return members, true
	case KindMethodBlock:
		body := node.ChildByField("body")
		if body == nil {
			return nil, false
		}
		return append([]*syntax.Node(nil), body.Children...), true
	default:
		return nil, false
	}
}
