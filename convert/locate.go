package convert

import (
	"iter"
	"slices"

	"github.com/heshanpadmasiri/codeconv/syntax"
)

// ChooseShape decides how a snippet has to be wrapped from the top level nodes
// of its bare parse. Statements and ambiguous declarations fit in a method
// body; anything that must live in a type gets a class. Trivia is ignored.
func ChooseShape(children []*syntax.Node, classify func(*syntax.Node) syntax.Category, isTrivia func(*syntax.Node) bool) syntax.WrapShape {
	allInMethod := true
	anyInType := false
	for _, child := range children {
		if isTrivia(child) {
			continue
		}
		switch syntax.ContainmentOf(classify(child)) {
		case syntax.CanBeInMethod:
		case syntax.MustBeInType:
			allInMethod = false
			anyInType = true
		default:
			allInMethod = false
		}
	}
	switch {
	case allInMethod:
		return syntax.SurroundWithMethod
	case anyInType:
		return syntax.SurroundWithClass
	default:
		return syntax.WrapNone
	}
}

// FindSurroundedNode returns the first node that is the synthetic declaration
// for shape
func FindSurroundedNode(nodes iter.Seq[*syntax.Node], shape syntax.WrapShape, isSurrounded func(syntax.WrapShape, syntax.Kind) bool) (*syntax.Node, error) {
	n, ok := syntax.Find(nodes, func(n *syntax.Node) bool {
		return isSurrounded(shape, n.Kind)
	})
	if !ok {
		return nil, ErrWrapMismatch
	}
	return n, nil
}

// FindSingleImportantChild unwraps a converted wrapper. Nodes with at most one
// child give their children back; containers with more give their
// meaningful contents as reported by important.
func FindSingleImportantChild(node *syntax.Node, important func(*syntax.Node) ([]*syntax.Node, bool)) []*syntax.Node {
	if len(node.Children) > 1 {
		if contents, ok := important(node); ok {
			return contents
		}
	}
	return slices.Clone(node.Children)
}
