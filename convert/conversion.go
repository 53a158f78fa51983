// Package convert drives the conversion of snippets and whole file sets from
// one language to another. The language specific parts are supplied by a
// Conversion; this package owns wrapping, locating and accumulation.
package convert

import (
	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/java"
	"github.com/heshanpadmasiri/codeconv/project"
	"github.com/heshanpadmasiri/codeconv/syntax"
)

// TreeConverter rewrites one source tree into a target tree. Declarations of
// every tree in source are visible; target holds the trees converted so far.
type TreeConverter interface {
	Convert(source *syntax.Compilation, tree *syntax.Tree, target *syntax.Compilation) (*syntax.Tree, error)
}

// Conversion bundles everything that is specific to one language pair
type Conversion interface {
	Name() string
	SourceLanguage() string
	TargetLanguage() string

	Parse(name, text string) *syntax.Tree
	NewSourceCompilation(name string) *syntax.Compilation
	NewTargetCompilation(name string) *syntax.Compilation

	Classify(node *syntax.Node) syntax.Category
	IsTrivia(node *syntax.Node) bool
	Wrap(text string, shape syntax.WrapShape) string
	IsSurroundedKind(shape syntax.WrapShape, kind syntax.Kind) bool

	Converter() TreeConverter
	// TargetName is the name Converter gives the tree converted from the
	// source tree called name
	TargetName(name string) string
	ImportantChildren(node *syntax.Node) ([]*syntax.Node, bool)

	// Declares lists the type names a source tree declares
	Declares(tree *syntax.Tree) []string
	// Dependencies lists the type names a source tree uses
	Dependencies(tree *syntax.Tree) []string

	Project() project.Profile
}

type javaToGo struct {
	converter *java.Converter
	profile   project.Profile
}

// JavaToGo converts Java into Go with converter. A nil converter uses the
// default Go configuration in non-strict mode.
func JavaToGo(converter *java.Converter) Conversion {
	if converter == nil {
		converter = &java.Converter{Config: gosrc.DefaultConfig()}
	}
	profile, err := project.Lookup("java2go")
	if err != nil {
		panic(err)
	}
	return &javaToGo{converter: converter, profile: profile}
}

func (c *javaToGo) Name() string { return "java2go" }

func (c *javaToGo) SourceLanguage() string { return java.Language }

func (c *javaToGo) TargetLanguage() string { return gosrc.Language }

func (c *javaToGo) Parse(name, text string) *syntax.Tree { return java.Parse(name, text) }

func (c *javaToGo) NewSourceCompilation(name string) *syntax.Compilation {
	return java.NewCompilation(name, nil)
}

func (c *javaToGo) NewTargetCompilation(name string) *syntax.Compilation {
	return gosrc.NewCompilation(name, nil, syntax.OutputLibrary)
}

func (c *javaToGo) Classify(node *syntax.Node) syntax.Category { return java.Classify(node) }

func (c *javaToGo) IsTrivia(node *syntax.Node) bool { return java.IsTrivia(node) }

func (c *javaToGo) Wrap(text string, shape syntax.WrapShape) string { return java.Wrap(text, shape) }

func (c *javaToGo) IsSurroundedKind(shape syntax.WrapShape, kind syntax.Kind) bool {
	return java.IsSurroundedKind(shape, kind)
}

func (c *javaToGo) Converter() TreeConverter { return c.converter }

func (c *javaToGo) TargetName(name string) string { return java.ConvertedName(name) }

func (c *javaToGo) ImportantChildren(node *syntax.Node) ([]*syntax.Node, bool) {
	return gosrc.ImportantChildren(node)
}

func (c *javaToGo) Declares(tree *syntax.Tree) []string { return java.DeclaredTypes(tree) }

func (c *javaToGo) Dependencies(tree *syntax.Tree) []string { return java.ReferencedTypes(tree) }

func (c *javaToGo) Project() project.Profile { return c.profile }
