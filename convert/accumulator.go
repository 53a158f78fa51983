package convert

import (
	"fmt"
	"strings"

	"github.com/heshanpadmasiri/codeconv/syntax"
)

// Accumulator owns the target compilation of one conversion session. Every
// successful first pass appends exactly one tree to it; failed conversions
// leave it untouched. An Accumulator is not safe for concurrent use.
type Accumulator struct {
	converter TreeConverter
	source    *syntax.Compilation
	target    *syntax.Compilation
}

// NewAccumulator creates an accumulator that converts with converter
func NewAccumulator(converter TreeConverter) *Accumulator {
	return &Accumulator{converter: converter}
}

// Initialize starts a session with an empty target compilation
func (a *Accumulator) Initialize(target *syntax.Compilation) {
	a.source = nil
	a.target = target
}

// ConvertFirstPass converts tree and appends the result to the target
func (a *Accumulator) ConvertFirstPass(source *syntax.Compilation, tree *syntax.Tree) (*syntax.Tree, error) {
	a.source = source
	converted, err := a.converter.Convert(source, tree, a.target)
	if err != nil {
		return nil, &ConversionError{Tree: tree.Name, Err: err}
	}
	a.target = a.target.AddTree(converted)
	return converted, nil
}

// ConvertSecondPass returns the root of a converted tree once every tree of
// the session went through the first pass. name identifies the tree in the
// target compilation.
func (a *Accumulator) ConvertSecondPass(name string, tree *syntax.Tree) (*syntax.Node, error) {
	held, ok := a.target.Tree(name)
	if !ok || (tree != nil && held != tree) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTree, name)
	}
	return held.Root, nil
}

// CollectWarnings renders the diagnostics of the source and target
// compilations. It is empty when neither has anything to report.
func (a *Accumulator) CollectWarnings() string {
	var sections []string
	for _, c := range []struct {
		origin      string
		compilation *syntax.Compilation
	}{
		{"source", a.source},
		{"target", a.target},
	} {
		if section := warningsFor(c.compilation, c.origin); section != "" {
			sections = append(sections, section)
		}
	}
	return strings.Join(sections, "\n")
}

func warningsFor(c *syntax.Compilation, origin string) string {
	diags := c.Diagnostics()
	if len(diags) == 0 {
		return ""
	}
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%d %s compilation errors:\n", len(diags), origin)
	for _, d := range diags {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Target is the compilation accumulated so far
func (a *Accumulator) Target() *syntax.Compilation {
	return a.target
}
