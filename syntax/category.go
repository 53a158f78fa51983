package syntax

import "fmt"

// Category is the syntactic role of a node as far as snippet wrapping is
// concerned. Languages map their node kinds onto it.
type Category int

const (
	CategoryOther Category = iota
	CategoryMemberLevelDeclaration
	CategoryStatementLevelConstruct
	CategoryAmbiguousDeclaration
)

func (c Category) String() string {
	switch c {
	case CategoryOther:
		return "other"
	case CategoryMemberLevelDeclaration:
		return "member-level declaration"
	case CategoryStatementLevelConstruct:
		return "statement-level construct"
	case CategoryAmbiguousDeclaration:
		return "ambiguous declaration"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Containment says which synthetic container a node can live in
type Containment int

const (
	Neither Containment = iota
	CanBeInMethod
	MustBeInType
)

func (c Containment) String() string {
	switch c {
	case Neither:
		return "neither"
	case CanBeInMethod:
		return "can be in method"
	case MustBeInType:
		return "must be in type"
	default:
		return fmt.Sprintf("Containment(%d)", int(c))
	}
}

// ContainmentOf maps a category to the container it needs. Ambiguous
// declarations (field or local) are allowed inside a method body.
func ContainmentOf(c Category) Containment {
	switch c {
	case CategoryMemberLevelDeclaration:
		return MustBeInType
	case CategoryStatementLevelConstruct, CategoryAmbiguousDeclaration:
		return CanBeInMethod
	case CategoryOther:
		return Neither
	default:
		panic(fmt.Sprintf("unhandled category %v", c))
	}
}

// WrapShape is the synthetic context a snippet is embedded in before parsing
type WrapShape int

const (
	WrapNone WrapShape = iota
	SurroundWithMethod
	SurroundWithClass
)

func (s WrapShape) String() string {
	switch s {
	case WrapNone:
		return "none"
	case SurroundWithMethod:
		return "surround with method"
	case SurroundWithClass:
		return "surround with class"
	default:
		return fmt.Sprintf("WrapShape(%d)", int(s))
	}
}
