package java

import "github.com/heshanpadmasiri/codeconv/syntax"

// Classify decides, from syntax alone, where a top level node of a snippet
// may live
func Classify(node *syntax.Node) syntax.Category {
	switch node.Kind {
	case "method_declaration",
		"constructor_declaration",
		"compact_constructor_declaration",
		"annotation_type_element_declaration":
		return syntax.CategoryMemberLevelDeclaration
	case "field_declaration":
		if !hasModifierNode(node) {
			return syntax.CategoryAmbiguousDeclaration
		}
		return syntax.CategoryMemberLevelDeclaration
	case "local_variable_declaration":
		// "private int x;" parses as a local declaration but can only be a field
		switch {
		case modifiersOf(node)&memberOnly != 0:
			return syntax.CategoryMemberLevelDeclaration
		case !hasModifierNode(node):
			return syntax.CategoryAmbiguousDeclaration
		default:
			return syntax.CategoryStatementLevelConstruct
		}
	case "ERROR",
		"block",
		";",
		"expression_statement",
		"assert_statement",
		"break_statement",
		"continue_statement",
		"do_statement",
		"enhanced_for_statement",
		"for_statement",
		"if_statement",
		"labeled_statement",
		"return_statement",
		"switch_expression",
		"synchronized_statement",
		"throw_statement",
		"try_statement",
		"try_with_resources_statement",
		"while_statement",
		"yield_statement",
		"local_class_declaration",
		"explicit_constructor_invocation":
		return syntax.CategoryStatementLevelConstruct
	default:
		return syntax.CategoryOther
	}
}

// ClassifyContainment maps a node straight to the container it needs
func ClassifyContainment(node *syntax.Node) syntax.Containment {
	return syntax.ContainmentOf(Classify(node))
}

// IsTrivia reports nodes that do not take part in choosing a wrapper
func IsTrivia(node *syntax.Node) bool {
	return node.Is("line_comment", "block_comment")
}
