// Package syntax is the language neutral model shared by both sides of a
// conversion: trees, nodes, diagnostics and compilations.
package syntax

import (
	"iter"
	"slices"
	"strings"
)

type (
	// Kind is the language specific tag of a node (e.g. "method_declaration")
	Kind string

	// NodeID identifies a node inside one tree. Zero means "no node".
	NodeID uint64

	// Position is a 1-based line/column location
	Position struct {
		Line   int
		Column int
	}

	// Node is an immutable syntax node. Converted nodes carry the ID of the
	// source node they were produced from in Origin. Named is false for
	// punctuation and keyword tokens.
	Node struct {
		ID       NodeID
		Kind     Kind
		Field    string
		Name     string
		Symbol   string
		Text     string
		Start    Position
		Named    bool
		Children []*Node
		Origin   NodeID
	}
)

// ChildByField returns the first child attached to the given grammar field
func (n *Node) ChildByField(field string) *Node {
	for _, child := range n.Children {
		if child.Field == field {
			return child
		}
	}
	return nil
}

// ChildrenOfKind returns the direct children with one of the given kinds
func (n *Node) ChildrenOfKind(kinds ...Kind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if slices.Contains(kinds, child.Kind) {
			result = append(result, child)
		}
	}
	return result
}

// Is reports whether the node has one of the given kinds
func (n *Node) Is(kinds ...Kind) bool {
	return n != nil && slices.Contains(kinds, n.Kind)
}

// Descendants yields every node below n in pre-order. n itself is not yielded.
func Descendants(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walk(n, yield)
	}
}

func walk(n *Node, yield func(*Node) bool) bool {
	for _, child := range n.Children {
		if !yield(child) {
			return false
		}
		if !walk(child, yield) {
			return false
		}
	}
	return true
}

// Find returns the first node of seq accepted by pred
func Find(seq iter.Seq[*Node], pred func(*Node) bool) (*Node, bool) {
	for n := range seq {
		if pred(n) {
			return n, true
		}
	}
	return nil, false
}

// OfKind builds a predicate matching any of kinds
func OfKind(kinds ...Kind) func(*Node) bool {
	return func(n *Node) bool {
		return n.Is(kinds...)
	}
}

// WithOrigin builds a predicate matching nodes converted from the source node id
func WithOrigin(id NodeID) func(*Node) bool {
	return func(n *Node) bool {
		return id != 0 && n.Origin == id
	}
}

// SExpr renders the named structure of n, e.g. "(program (class_declaration))"
func SExpr(n *Node) string {
	sb := strings.Builder{}
	writeSExpr(&sb, n)
	return sb.String()
}

func writeSExpr(sb *strings.Builder, n *Node) {
	sb.WriteString("(")
	sb.WriteString(string(n.Kind))
	for _, child := range n.Children {
		if !child.Named {
			continue
		}
		sb.WriteString(" ")
		if child.Field != "" {
			sb.WriteString(child.Field)
			sb.WriteString(": ")
		}
		writeSExpr(sb, child)
	}
	sb.WriteString(")")
}
