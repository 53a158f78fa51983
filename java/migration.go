package java

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/syntax"
)

// MigrationContext holds state during Java to Go migration of one tree
type MigrationContext struct {
	Source         gosrc.GoSource
	Tree           *syntax.Tree
	SourceFilePath string
	StrictMode     bool
	Errors         []MigrationError
	TypeMappings   map[string]string

	symbols *symbolTable
	target  *syntax.Compilation
	class   *classInfo      // class whose body is being converted
	locals  map[string]bool // names declared in the current method

	// declaredType is the type of the variable whose initializer is being
	// converted, used to complete "new ArrayList<>()"
	declaredType gosrc.Type
}

// MigrationError represents an error that occurred during migration
type MigrationError struct {
	Location   string // e.g., "class Foo"
	JavaSource string // The Java code that failed
	SExpr      string // The S-expression
	Message    string // Error message
	NodeKind   string // Type of node (for debugging)
	Position   syntax.Position
}

func (e MigrationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// ErrStrict is returned when strict mode refuses a tree with failed members
var ErrStrict = errors.New("strict mode: migration errors")

// migrationPanic unwinds the conversion of a single member
type migrationPanic struct {
	node    *syntax.Node
	message string
	kind    string
}

// NewMigrationContext creates and initializes a new MigrationContext
func NewMigrationContext(tree *syntax.Tree, strictMode bool) *MigrationContext {
	return &MigrationContext{
		Tree:           tree,
		SourceFilePath: tree.Name,
		StrictMode:     strictMode,
		TypeMappings:   map[string]string{},
		symbols:        newSymbolTable(),
	}
}

// Converter rewrites Java trees into Go trees
type Converter struct {
	Config       gosrc.Config
	Strict       bool
	TypeMappings map[string]string
}

// Convert migrates one Java tree. Declarations of every tree in source are
// visible, and base types already converted into target are referred to by
// their Go names. In strict mode any member that fails to migrate fails the
// whole tree; otherwise failures become FIXME blocks and warnings.
func (c *Converter) Convert(source *syntax.Compilation, tree *syntax.Tree, target *syntax.Compilation) (*syntax.Tree, error) {
	ctx := NewMigrationContext(tree, c.Strict)
	for k, v := range c.TypeMappings {
		ctx.TypeMappings[k] = v
	}
	ctx.target = target
	for _, t := range source.Trees() {
		ctx.symbols.collect(t.Root)
	}
	ctx.symbols.collect(tree.Root)
	ctx.symbols.resolveConstructors(ctx.TypeMappings)

	MigrateTree(ctx, tree.Root)
	if c.Strict && len(ctx.Errors) > 0 {
		errs := make([]error, 0, len(ctx.Errors)+1)
		errs = append(errs, ErrStrict)
		for _, e := range ctx.Errors {
			errs = append(errs, e)
		}
		return nil, errors.Join(errs...)
	}

	converted := ctx.Source.Tree(ConvertedName(tree.Name), c.Config)
	for _, e := range ctx.Errors {
		converted.Diagnostics = append(converted.Diagnostics, syntax.Diagnostic{
			Tree:     tree.Name,
			Position: e.Position,
			Severity: syntax.SeverityWarning,
			Message:  e.Error(),
		})
	}
	return converted, nil
}

// MigrateTree migrates a Java tree into ctx.Source
func MigrateTree(ctx *MigrationContext, root *syntax.Node) {
	migrateNode(ctx, root)
}

// migrateNode dispatches node migration based on node kind
func migrateNode(ctx *MigrationContext, node *syntax.Node) {
	switch node.Kind {
	case "program":
		for _, child := range node.Children {
			ctx.recoverMember("<root>", child, func() {
				migrateNode(ctx, child)
			})
		}
	case "class_declaration":
		migrateClassDeclaration(ctx, node)
	case "interface_declaration":
		migrateInterfaceDeclaration(ctx, node)
	case "enum_declaration":
		migrateEnumDeclaration(ctx, node)
	case "record_declaration":
		migrateRecordDeclaration(ctx, node)
	// Ignored
	case "block_comment":
	case "line_comment":
	case "package_declaration":
	case "import_declaration":
	default:
		unhandledChild(ctx, node, "<root>")
	}
}

// fatalError aborts the current member. The panic is recovered by
// recoverMember which records the failure.
func fatalError(ctx *MigrationContext, node *syntax.Node, message, kind string) {
	panic(migrationPanic{node: node, message: message, kind: kind})
}

// recoverMember runs fn and turns a migration failure inside it into a
// MigrationError and a FailedMigration, so siblings still get converted.
func (ctx *MigrationContext) recoverMember(location string, node *syntax.Node, fn func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		p, ok := r.(migrationPanic)
		if !ok {
			panic(r)
		}
		failed := node
		if p.node != nil {
			failed = p.node
		}
		err := MigrationError{
			Location:   location,
			JavaSource: node.Text,
			SExpr:      syntax.SExpr(node),
			Message:    p.message,
			NodeKind:   p.kind,
			Position:   failed.Start,
		}
		ctx.Errors = append(ctx.Errors, err)
		ctx.Source.FailedMigrations = append(ctx.Source.FailedMigrations, gosrc.FailedMigration{
			ErrorMessage: err.Message,
			JavaSource:   err.JavaSource,
			SExpr:        err.SExpr,
			Location:     fmt.Sprintf("%s:%d:%d (%s)", ctx.SourceFilePath, failed.Start.Line, failed.Start.Column, location),
		})
	}()
	fn()
}

// getMigrationComment creates a comment indicating the source location in the Java file
func getMigrationComment(ctx *MigrationContext, node *syntax.Node) string {
	return fmt.Sprintf("migrated from %s:%d:%d", ctx.SourceFilePath, node.Start.Line, node.Start.Column)
}

// enterMethod resets local scope for a method, constructor or initializer
func (ctx *MigrationContext) enterMethod(params []gosrc.Param) {
	ctx.locals = map[string]bool{}
	for _, p := range params {
		ctx.locals[p.Name] = true
	}
}

func (ctx *MigrationContext) declareLocal(name string) {
	if ctx.locals == nil {
		ctx.locals = map[string]bool{}
	}
	ctx.locals[name] = true
}

// goTypeName resolves the Go name of a Java class or interface. Types already
// converted into the target compilation win over declarations that are only
// known from source.
func (ctx *MigrationContext) goTypeName(javaName string) string {
	if ctx.target != nil {
		for _, tree := range ctx.target.Trees() {
			node, ok := syntax.Find(syntax.Descendants(tree.Root), func(n *syntax.Node) bool {
				return n.Is(gosrc.KindTypeBlock, gosrc.KindInterface) && n.Symbol == javaName
			})
			if ok {
				return node.Name
			}
		}
	}
	if info, ok := ctx.symbols.classes[javaName]; ok {
		return info.goName
	}
	return toGoType(ctx, javaName)
}

func location(kind, name string) string {
	return strings.TrimSpace(kind + " " + name)
}
