package java

import "github.com/heshanpadmasiri/codeconv/syntax"

// Names of the synthetic declarations snippets are embedded in
const (
	SurroundingClass = "SurroundingClass"
	SurroundingSub   = "surroundingSub"
)

// Wrap embeds a snippet in the smallest Java context that makes it a
// complete compilation unit
func Wrap(text string, shape syntax.WrapShape) string {
	switch shape {
	case syntax.SurroundWithMethod:
		return "class " + SurroundingClass + " {\nvoid " + SurroundingSub + "() {\n" + text + "\n}\n}"
	case syntax.SurroundWithClass:
		return "class " + SurroundingClass + " {\n" + text + "\n}"
	default:
		return text
	}
}

// IsSurroundedKind reports whether node kind is the synthetic declaration Wrap
// puts around a snippet for shape
func IsSurroundedKind(shape syntax.WrapShape, kind syntax.Kind) bool {
	switch shape {
	case syntax.SurroundWithMethod:
		return kind == "method_declaration"
	case syntax.SurroundWithClass:
		switch kind {
		case "class_declaration",
			"interface_declaration",
			"enum_declaration",
			"record_declaration",
			"annotation_type_declaration":
			return true
		}
	}
	return false
}
