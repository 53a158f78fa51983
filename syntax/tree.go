package syntax

import "fmt"

// Severity of a diagnostic
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is an informational message attributed to a tree
type Diagnostic struct {
	Tree     string
	Position Position
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.Tree, d.Position.Line, d.Position.Column, d.Message)
}

// Tree is the parsed (or converted) representation of one unit of source text
type Tree struct {
	Name        string
	Language    string
	Text        string
	Root        *Node
	Diagnostics []Diagnostic
}

// HasErrors reports whether the tree has any error level diagnostic
func (t *Tree) HasErrors() bool {
	for _, d := range t.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only the error level diagnostics of the tree
func (t *Tree) Errors() []Diagnostic {
	var errs []Diagnostic
	for _, d := range t.Diagnostics {
		if d.Severity == SeverityError {
			errs = append(errs, d)
		}
	}
	return errs
}

// Node returns the node with the given id, if any
func (t *Tree) Node(id NodeID) (*Node, bool) {
	if t.Root == nil {
		return nil, false
	}
	if t.Root.ID == id {
		return t.Root, true
	}
	return Find(Descendants(t.Root), func(n *Node) bool { return n.ID == id })
}

// ShiftLines returns a copy of the tree with every node and diagnostic
// position moved up by n lines. Positions never go above line 1.
func (t *Tree) ShiftLines(n int) *Tree {
	next := *t
	next.Root = shiftNode(t.Root, n)
	next.Diagnostics = make([]Diagnostic, len(t.Diagnostics))
	for i, d := range t.Diagnostics {
		d.Position = d.Position.shift(n)
		next.Diagnostics[i] = d
	}
	return &next
}

func (p Position) shift(n int) Position {
	p.Line = max(p.Line-n, 1)
	return p
}

func shiftNode(node *Node, n int) *Node {
	if node == nil {
		return nil
	}
	next := *node
	next.Start = node.Start.shift(n)
	next.Children = make([]*Node, len(node.Children))
	for i, child := range node.Children {
		next.Children[i] = shiftNode(child, n)
	}
	return &next
}
