package java

import (
	"strings"

	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/syntax"
)

// Modifier bit flags
const (
	PUBLIC modifiers = 1 << iota
	PRIVATE
	PROTECTED
	STATIC
	FINAL
	ABSTRACT
	DEFAULT
	TRANSIENT
	VOLATILE
	SYNCHRONIZED
	NATIVE
)

// memberOnly are the modifiers a local variable can never carry
const memberOnly = PUBLIC | PRIVATE | PROTECTED | STATIC | ABSTRACT | TRANSIENT | VOLATILE | SYNCHRONIZED | NATIVE

// modifiers represents Java modifiers as a bitmask
type modifiers uint16

var modifierNames = []struct {
	flag modifiers
	name string
}{
	{PUBLIC, "public"},
	{PRIVATE, "private"},
	{PROTECTED, "protected"},
	{STATIC, "static"},
	{FINAL, "final"},
	{ABSTRACT, "abstract"},
	{DEFAULT, "default"},
	{TRANSIENT, "transient"},
	{VOLATILE, "volatile"},
	{SYNCHRONIZED, "synchronized"},
	{NATIVE, "native"},
}

func (m modifiers) String() string {
	var parts []string
	for _, each := range modifierNames {
		if m&each.flag != 0 {
			parts = append(parts, each.name)
		}
	}
	return strings.Join(parts, " ")
}

func (m modifiers) isPublic() bool {
	return m&PUBLIC != 0
}

// ParseModifiers parses modifier string into a modifiers bitmask
func ParseModifiers(source string) modifiers {
	var mods modifiers
	for _, part := range strings.Fields(source) {
		for _, each := range modifierNames {
			if part == each.name {
				mods |= each.flag
			}
		}
	}
	return mods
}

// modifiersOf reads the keyword modifiers of a declaration. Annotations are
// not modifiers for this purpose.
func modifiersOf(node *syntax.Node) modifiers {
	var mods modifiers
	for _, child := range node.ChildrenOfKind("modifiers") {
		for _, token := range child.Children {
			if token.Named {
				continue
			}
			mods |= ParseModifiers(token.Text)
		}
	}
	return mods
}

// hasModifierNode reports whether the declaration has any keyword modifier
func hasModifierNode(node *syntax.Node) bool {
	for _, child := range node.ChildrenOfKind("modifiers") {
		for _, token := range child.Children {
			if !token.Named {
				return true
			}
		}
	}
	return false
}

func hasAccessModifier(node *syntax.Node) bool {
	return modifiersOf(node)&(PUBLIC|PRIVATE|PROTECTED) != 0
}

// TryParseType attempts to parse a node into a Go type
func TryParseType(ctx *MigrationContext, node *syntax.Node) (gosrc.Type, bool) {
	if node == nil {
		return "", false
	}
	switch node.Kind {
	case "scoped_type_identifier":
		// Go has no nested types: Outer.Inner is referred to as Inner
		var typeName string
		for _, child := range node.Children {
			if child.Kind == "type_identifier" {
				typeName = child.Text
			}
		}
		if typeName == "" {
			return "", false
		}
		return gosrc.Type(toGoType(ctx, typeName)), true
	case "type_identifier":
		return gosrc.Type(toGoType(ctx, node.Text)), true
	case "integral_type":
		switch node.Text {
		case "long":
			return gosrc.TypeInt64, true
		case "char":
			return gosrc.TypeRune, true
		case "byte":
			return gosrc.Type("byte"), true
		default:
			return gosrc.TypeInt, true
		}
	case "boolean_type":
		return gosrc.TypeBool, true
	case "floating_point_type":
		return gosrc.TypeFloat64, true
	case "array_type":
		elementNode := node.ChildByField("element")
		ty, ok := TryParseType(ctx, elementNode)
		if !ok {
			fatalError(ctx, node, "unable to parse element type in array_type", "type parsing")
		}
		return gosrc.Type("[]" + ty), true
	case "generic_type":
		return parseGenericType(ctx, node), true
	}
	return "", false
}

func parseGenericType(ctx *MigrationContext, node *syntax.Node) gosrc.Type {
	var typeName string
	var typeParams []gosrc.Type
	for _, child := range node.Children {
		switch child.Kind {
		case "type_identifier", "scoped_type_identifier":
			typeName = lastSegment(child.Text)
		case "type_arguments":
			for _, typeArg := range child.Children {
				if ty, ok := TryParseType(ctx, typeArg); ok {
					typeParams = append(typeParams, ty)
				}
			}
		}
	}
	switch typeName {
	// Array types
	case "ArrayDeque",
		"Deque",
		"Collection",
		"ArrayList",
		"LinkedList",
		"List":
		ensure(ctx, node, "List can have only one type param", len(typeParams) < 2)
		if len(typeParams) == 0 {
			return gosrc.Type("[]" + gosrc.TypeAny)
		}
		return "[]" + typeParams[0]
	// Map types
	case "HashMap", "TreeMap", "Map":
		ensure(ctx, node, "Map can have at most two type params", len(typeParams) < 3)
		switch len(typeParams) {
		case 0:
			return gosrc.Type("map[any]any")
		case 1:
			return gosrc.Type("map[" + typeParams[0] + "]any")
		default:
			return gosrc.Type("map[" + typeParams[0] + "]" + typeParams[1])
		}
	case "HashSet", "Set":
		if len(typeParams) == 0 {
			return gosrc.Type("map[any]bool")
		}
		return gosrc.Type("map[" + typeParams[0] + "]bool")
	default:
		fatalError(ctx, node, "unhandled generic type : "+typeName, "type parsing")
	}
	panic("unreachable")
}

func toGoType(ctx *MigrationContext, javaTy string) (goType string) {
	if configTy, ok := ctx.TypeMappings[javaTy]; ok {
		return configTy
	}
	switch javaTy {
	case "Object":
		goType = string(gosrc.TypeAny)
	case "String", "CharSequence":
		goType = string(gosrc.TypeString)
	case "Integer", "Short":
		goType = string(gosrc.TypeInt)
	case "Long":
		goType = string(gosrc.TypeInt64)
	case "Boolean":
		goType = string(gosrc.TypeBool)
	case "Double", "Float":
		goType = string(gosrc.TypeFloat64)
	case "Character":
		goType = string(gosrc.TypeRune)
	default:
		if info, ok := ctx.symbols.classes[javaTy]; ok {
			// converted classes are handled through pointers
			goType = info.goName
			if !info.isInterface {
				goType = "*" + goType
			}
		} else {
			goType = javaTy
		}
	}
	return goType
}

func lastSegment(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// IsArrayOrSliceType checks if a type is an array or slice
func IsArrayOrSliceType(ty gosrc.Type) bool {
	return strings.HasPrefix(string(ty), "[]")
}
