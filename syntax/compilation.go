package syntax

import "slices"

// OutputKind is the kind of artifact a compilation would produce
type OutputKind int

const (
	OutputLibrary OutputKind = iota
	OutputExecutable
)

// Checker computes the diagnostics of a whole compilation
type Checker func(c *Compilation) []Diagnostic

// Compilation is an immutable set of trees of one language together with the
// references they are analysed against. AddTree returns a new value.
type Compilation struct {
	name       string
	language   string
	references []string
	kind       OutputKind
	trees      []*Tree
	check      Checker
}

// NewCompilation creates an empty compilation
func NewCompilation(name, language string, references []string, kind OutputKind, check Checker) *Compilation {
	return &Compilation{
		name:       name,
		language:   language,
		references: slices.Clone(references),
		kind:       kind,
		check:      check,
	}
}

func (c *Compilation) Name() string { return c.name }

func (c *Compilation) Language() string { return c.language }

func (c *Compilation) Kind() OutputKind { return c.kind }

func (c *Compilation) References() []string { return slices.Clone(c.references) }

// Len is the number of trees in the compilation
func (c *Compilation) Len() int { return len(c.trees) }

// Trees returns the trees in the order they were added
func (c *Compilation) Trees() []*Tree { return slices.Clone(c.trees) }

// AddTree returns a copy of the compilation with tree appended
func (c *Compilation) AddTree(tree *Tree) *Compilation {
	next := *c
	next.trees = append(slices.Clone(c.trees), tree)
	return &next
}

// Tree looks a tree up by name
func (c *Compilation) Tree(name string) (*Tree, bool) {
	for _, t := range c.trees {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Diagnostics runs the compilation's checker. A compilation without a
// checker never reports anything.
func (c *Compilation) Diagnostics() []Diagnostic {
	if c == nil || c.check == nil {
		return nil
	}
	return c.check(c)
}

// TreeDiagnostics is a Checker that reports the diagnostics already attached
// to each tree, in tree order
func TreeDiagnostics(c *Compilation) []Diagnostic {
	var diags []Diagnostic
	for _, t := range c.trees {
		diags = append(diags, t.Diagnostics...)
	}
	return diags
}
