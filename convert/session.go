package convert

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/heshanpadmasiri/codeconv/syntax"
	"golang.org/x/sync/errgroup"
)

const snippetName = "snippet"

// Session converts text with one Conversion. Every call runs with its own
// accumulator.
type Session struct {
	conv Conversion
}

// NewSession creates a session for conv
func NewSession(conv Conversion) *Session {
	return &Session{conv: conv}
}

// TextResult is a converted snippet
type TextResult struct {
	Text     string
	Shape    syntax.WrapShape
	Nodes    []*syntax.Node
	Warnings string
}

// ConvertText converts a snippet that need not be a complete compilation
// unit. The snippet is wrapped in the smallest context that makes it one, the
// whole wrapped tree is converted, and the converted counterpart of the
// snippet is cut back out.
func (s *Session) ConvertText(text string) (*TextResult, error) {
	shape, tree := s.chooseShape(text)
	if tree.HasErrors() {
		return nil, &ParseError{Tree: tree.Name, Diagnostics: tree.Errors()}
	}

	var surrounded *syntax.Node
	if shape != syntax.WrapNone {
		var err error
		surrounded, err = FindSurroundedNode(syntax.Descendants(tree.Root), shape, s.conv.IsSurroundedKind)
		if err != nil {
			return nil, err
		}
	}

	acc := NewAccumulator(s.conv.Converter())
	acc.Initialize(s.conv.NewTargetCompilation(snippetName))
	converted, err := acc.ConvertFirstPass(s.conv.NewSourceCompilation(snippetName).AddTree(tree), tree)
	if err != nil {
		return nil, err
	}

	result := &TextResult{Shape: shape, Warnings: acc.CollectWarnings()}
	if surrounded == nil {
		result.Text = converted.Text
		result.Nodes = []*syntax.Node{converted.Root}
		return result, nil
	}
	wrapper, ok := syntax.Find(syntax.Descendants(converted.Root), syntax.WithOrigin(surrounded.ID))
	if !ok {
		return nil, fmt.Errorf("%w: no converted node for %s", ErrWrapMismatch, surrounded.Kind)
	}
	result.Nodes = FindSingleImportantChild(wrapper, s.conv.ImportantChildren)
	texts := make([]string, 0, len(result.Nodes))
	for _, n := range result.Nodes {
		texts = append(texts, n.Text)
	}
	result.Text = strings.Join(texts, "\n")
	return result, nil
}

// chooseShape parses text bare and picks the wrapping from its top level
// nodes. When the bare text does not parse and the method wrapping does not
// help, a class wrapping that does parse wins. The returned tree is the parse
// of the wrapped text, with positions relative to the snippet.
func (s *Session) chooseShape(text string) (syntax.WrapShape, *syntax.Tree) {
	bare := s.conv.Parse(snippetName, text)
	shape := ChooseShape(bare.Root.Children, s.conv.Classify, s.conv.IsTrivia)
	if shape == syntax.WrapNone {
		return shape, bare
	}
	wrapped := s.parseWrapped(text, shape)
	if shape == syntax.SurroundWithMethod && bare.HasErrors() && wrapped.HasErrors() {
		inClass := s.parseWrapped(text, syntax.SurroundWithClass)
		if !inClass.HasErrors() {
			return syntax.SurroundWithClass, inClass
		}
	}
	return shape, wrapped
}

func (s *Session) parseWrapped(text string, shape syntax.WrapShape) *syntax.Tree {
	tree := s.conv.Parse(snippetName, s.conv.Wrap(text, shape))
	return tree.ShiftLines(wrapperLines(s.conv, shape))
}

// wrapperLines is the number of lines Wrap puts before the snippet
func wrapperLines(conv Conversion, shape syntax.WrapShape) int {
	const marker = "\x00"
	wrapped := conv.Wrap(marker, shape)
	i := strings.Index(wrapped, marker)
	if i < 0 {
		return 0
	}
	return strings.Count(wrapped[:i], "\n")
}

// SourceFile is one input of ConvertFiles
type SourceFile struct {
	Name string
	Text string
}

// ConvertedFile is one output of ConvertFiles
type ConvertedFile struct {
	Source string
	Name   string
	Text   string
	Root   *syntax.Node
}

// FilesResult is the outcome of converting a set of files. Files that failed
// are listed in Failed and have no converted counterpart.
type FilesResult struct {
	Files    []ConvertedFile
	Failed   []error
	Warnings string
}

// ConvertFiles converts files as one session. All files that parse form the
// source compilation; they are converted so that files declaring a type come
// before the files using it.
func (s *Session) ConvertFiles(files []SourceFile) (*FilesResult, error) {
	result := &FilesResult{}
	source := s.conv.NewSourceCompilation("Conversion")
	var trees []*syntax.Tree
	seen := map[string]bool{}
	targets := map[string]string{}
	for _, f := range files {
		if seen[f.Name] {
			result.Failed = append(result.Failed, fmt.Errorf("duplicate file %s", f.Name))
			continue
		}
		target := s.conv.TargetName(f.Name)
		if prev, ok := targets[target]; ok {
			result.Failed = append(result.Failed, fmt.Errorf("duplicate file %s: %s also converts to %s", f.Name, prev, target))
			continue
		}
		seen[f.Name] = true
		targets[target] = f.Name
		tree := s.conv.Parse(f.Name, f.Text)
		if tree.HasErrors() {
			result.Failed = append(result.Failed, &ParseError{Tree: f.Name, Diagnostics: tree.Errors()})
			continue
		}
		source = source.AddTree(tree)
		trees = append(trees, tree)
	}

	ordered, err := s.order(trees)
	if err != nil {
		return nil, err
	}

	acc := NewAccumulator(s.conv.Converter())
	acc.Initialize(s.conv.NewTargetCompilation("Conversion"))
	type pending struct {
		source string
		tree   *syntax.Tree
	}
	var done []pending
	for _, tree := range ordered {
		converted, err := acc.ConvertFirstPass(source, tree)
		if err != nil {
			result.Failed = append(result.Failed, err)
			continue
		}
		done = append(done, pending{source: tree.Name, tree: converted})
	}
	for _, p := range done {
		root, err := acc.ConvertSecondPass(p.tree.Name, p.tree)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, ConvertedFile{Source: p.source, Name: p.tree.Name, Text: root.Text, Root: root})
	}
	result.Warnings = acc.CollectWarnings()
	return result, nil
}

// order sorts trees so that declarations precede their uses. Dependencies are
// added in input order and one that would close a cycle is dropped. Ties are
// broken by input order.
func (s *Session) order(trees []*syntax.Tree) ([]*syntax.Tree, error) {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())
	index := map[string]int{}
	byName := map[string]*syntax.Tree{}
	declaredIn := map[string]string{}
	for i, tree := range trees {
		index[tree.Name] = i
		byName[tree.Name] = tree
		if err := g.AddVertex(tree.Name); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, err
		}
		for _, name := range s.conv.Declares(tree) {
			if _, ok := declaredIn[name]; !ok {
				declaredIn[name] = tree.Name
			}
		}
	}
	for _, tree := range trees {
		for _, dep := range s.conv.Dependencies(tree) {
			from, ok := declaredIn[dep]
			if !ok || from == tree.Name {
				continue
			}
			err := g.AddEdge(from, tree.Name)
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) && !errors.Is(err, graph.ErrEdgeCreatesCycle) {
				return nil, err
			}
		}
	}
	names, err := graph.StableTopologicalSort(g, func(a, b string) bool {
		return index[a] < index[b]
	})
	if err != nil {
		return nil, fmt.Errorf("ordering files: %w", err)
	}
	ordered := make([]*syntax.Tree, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, byName[name])
	}
	return ordered, nil
}

// Batch is a set of files converted together in one session
type Batch struct {
	Name  string
	Files []SourceFile
}

// RunSessions converts independent batches concurrently, at most jobs at a
// time. Results are in batch order. Conversion failures of single files are
// reported per batch; only internal errors abort the run.
func RunSessions(ctx context.Context, conv Conversion, jobs int, batches []Batch) ([]*FilesResult, error) {
	results := make([]*FilesResult, len(batches))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, batch := range batches {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := NewSession(conv).ConvertFiles(batch.Files)
			if err != nil {
				return fmt.Errorf("batch %s: %w", batch.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
