// Package gosrc provide type safe way to represent go source code along with way
// to convert them to actual go source code
package gosrc

import "github.com/heshanpadmasiri/codeconv/syntax"

const (
	SelfRef     = "this"
	PackageName = "converted"
	Language    = "go"
)

// Interfaces for source elements

type (
	// SourceElement represents any element that can be converted to Go source
	SourceElement interface {
		ToSource() string
	}

	// Statement represents a Go statement
	Statement interface {
		SourceElement
	}

	// Expression represents a Go expression
	Expression interface {
		SourceElement
	}
)

// Core Go source structures. Declarations remember the source node they were
// converted from (Origin) and the source-language name (JavaName) so that
// converted fragments can be found again.

type (
	// GoSource represents a complete Go source file
	GoSource struct {
		Imports          []Import
		Interfaces       []Interface
		Structs          []Struct
		Vars             []ModuleVar
		Functions        []Function
		Methods          []Method
		FailedMigrations []FailedMigration
	}

	// Import represents a package import
	Import struct {
		PackagePath string
		Alias       *string
	}

	// Interface represents a Go interface definition
	Interface struct {
		Name     string
		JavaName string
		Embeds   []Type
		Methods  []InterfaceMethod
		Public   bool
		Comments []string
		Origin   syntax.NodeID
	}

	// InterfaceMethod represents a method signature in an interface
	InterfaceMethod struct {
		Name       string
		Params     []Param
		ReturnType *Type
		Public     bool
	}

	// Struct represents a Go struct definition
	Struct struct {
		Name     string
		JavaName string
		Includes []Type
		Fields   []StructField
		Public   bool
		Comments []string
		Origin   syntax.NodeID
	}

	// StructField represents a field in a struct
	StructField struct {
		Name     string
		Ty       Type
		Public   bool
		Comments []string
		Origin   syntax.NodeID
	}

	// Function represents a Go function. Owner is the name of the struct the
	// function was declared in (constructors, static methods), empty for free
	// functions.
	Function struct {
		Name        string
		JavaName    string
		Params      []Param
		ReturnType  *Type
		Body        []Statement
		Comments    []string
		Public      bool
		Owner       string
		Constructor bool
		Origin      syntax.NodeID
	}

	// Method represents a Go method with a receiver
	Method struct {
		Function
		Receiver Param
	}

	// Param represents a function or method parameter
	Param struct {
		Name string
		Ty   Type
	}

	// ModuleVar represents a module-level variable
	ModuleVar struct {
		Name   string
		Ty     Type
		Value  Expression
		Owner  string
		Origin syntax.NodeID
	}

	// FailedMigration represents a migration that failed
	FailedMigration struct {
		ErrorMessage string
		JavaSource   string
		SExpr        string
		Location     string
	}
)

// Statement implementations

type (
	// GoStatement represents a raw Go statement string
	GoStatement struct {
		Source string
	}

	// IfStatement represents an if-else statement
	IfStatement struct {
		Condition Expression
		Body      []Statement
		ElseIf    []IfStatement
		ElseStmts []Statement
	}

	// ForStatement represents a traditional for loop. A nil Init and Post
	// gives a condition-only loop.
	ForStatement struct {
		Init      Statement
		Condition Expression
		Post      Statement
		Body      []Statement
	}

	// RangeForStatement represents a range-based for loop
	RangeForStatement struct {
		IndexVar       string
		ValueVar       string
		CollectionExpr Expression
		Body           []Statement
	}

	// ReturnStatement represents a return statement
	ReturnStatement struct {
		Value Expression
	}

	// VarDeclaration represents a variable declaration
	VarDeclaration struct {
		Name  string
		Ty    Type
		Value Expression
	}

	// AssignStatement represents an assignment
	AssignStatement struct {
		Ref   VarRef
		Value Expression
	}

	// CallStatement represents a function call statement
	CallStatement struct {
		Exp Expression
	}

	// BlockStatement represents a nested block
	BlockStatement struct {
		Body []Statement
	}

	// CommentStmt represents comment statements
	CommentStmt struct {
		Comments []string
	}
)

// Expression implementations

type (
	// GoExpression represents a raw Go expression string
	GoExpression struct {
		Source string
	}

	// CastExpression represents a type cast
	CastExpression struct {
		Ty    Type
		Value Expression
	}

	// CallExpression represents a function call
	CallExpression struct {
		Function string
		Args     []Expression
	}

	// VarRef represents a variable reference
	VarRef struct {
		Ref string
	}

	// BooleanLiteral represents a boolean literal
	BooleanLiteral struct {
		Value bool
	}

	// IntLiteral represents an integer literal
	IntLiteral struct {
		Value int
	}

	// CharLiteral represents a character literal
	CharLiteral struct {
		Value string
	}

	// ArrayLiteral represents an array/slice literal
	ArrayLiteral struct {
		ElementType Type
		Elements    []Expression
	}

	// BinaryExpression represents a binary operation
	BinaryExpression struct {
		Left     Expression
		Operator string
		Right    Expression
	}

	// UnaryExpression represents a unary operation
	UnaryExpression struct {
		Operator string
		Operand  Expression
	}

	// UnhandledExpression represents an unhandled expression (fallback)
	UnhandledExpression struct {
		Text string
	}
)

// Type represents a Go type
type Type string

// Type constants
const (
	TypeInt     Type = "int"
	TypeInt64   Type = "int64"
	TypeString  Type = "string"
	TypeBool    Type = "bool"
	TypeFloat64 Type = "float64"
	TypeRune    Type = "rune"
	TypeAny     Type = "any"
)

// NIL is a predefined nil expression
var NIL = VarRef{Ref: "nil"}

// Config represents migration configuration
type Config struct {
	PackageName   string `toml:"package_name"`
	LicenseHeader string `toml:"license_header"`
}

// DefaultConfig is used when no configuration is supplied
func DefaultConfig() Config {
	return Config{PackageName: PackageName}
}
