package gosrc

import (
	"errors"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"

	"github.com/heshanpadmasiri/codeconv/syntax"
)

// NewCompilation creates an empty Go compilation whose diagnostics come from
// type checking all of its trees as a single package
func NewCompilation(name string, references []string, kind syntax.OutputKind) *syntax.Compilation {
	return syntax.NewCompilation(name, Language, references, kind, Check)
}

// Check parses every tree of the compilation and type checks them together.
// Files that do not parse are reported and left out of type checking. The
// diagnostics the converter attached to each tree come first.
func Check(c *syntax.Compilation) []syntax.Diagnostic {
	fset := token.NewFileSet()
	var diags []syntax.Diagnostic
	var files []*ast.File
	for _, tree := range c.Trees() {
		diags = append(diags, tree.Diagnostics...)
	}
	for _, tree := range c.Trees() {
		file, err := parser.ParseFile(fset, tree.Name, tree.Text, parser.AllErrors|parser.SkipObjectResolution)
		if err != nil {
			diags = append(diags, parseDiagnostics(tree.Name, err)...)
			continue
		}
		files = append(files, file)
	}
	if len(files) == 0 {
		return diags
	}

	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error: func(err error) {
			var typeErr types.Error
			if !errors.As(err, &typeErr) {
				diags = append(diags, syntax.Diagnostic{Severity: syntax.SeverityError, Message: err.Error()})
				return
			}
			severity := syntax.SeverityError
			if typeErr.Soft {
				severity = syntax.SeverityWarning
			}
			pos := typeErr.Fset.Position(typeErr.Pos)
			diags = append(diags, syntax.Diagnostic{
				Tree:     pos.Filename,
				Position: syntax.Position{Line: pos.Line, Column: pos.Column},
				Severity: severity,
				Message:  typeErr.Msg,
			})
		},
	}
	// Errors are delivered through conf.Error
	_, _ = conf.Check(c.Name(), fset, files, nil)
	return diags
}

func parseDiagnostics(treeName string, err error) []syntax.Diagnostic {
	var list scanner.ErrorList
	if !errors.As(err, &list) {
		return []syntax.Diagnostic{{Tree: treeName, Severity: syntax.SeverityError, Message: err.Error()}}
	}
	diags := make([]syntax.Diagnostic, 0, len(list))
	for _, e := range list {
		diags = append(diags, syntax.Diagnostic{
			Tree:     treeName,
			Position: syntax.Position{Line: e.Pos.Line, Column: e.Pos.Column},
			Severity: syntax.SeverityError,
			Message:  e.Msg,
		})
	}
	return diags
}
