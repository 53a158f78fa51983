package java

import (
	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/syntax"
)

func convertFormalParameters(ctx *MigrationContext, paramsNode *syntax.Node) []gosrc.Param {
	if paramsNode == nil {
		return nil
	}
	var params []gosrc.Param
	for _, child := range paramsNode.Children {
		switch child.Kind {
		case "formal_parameter":
			typeNode := mustField(ctx, child, "type")
			nameNode := mustField(ctx, child, "name")
			ty, ok := TryParseType(ctx, typeNode)
			if !ok {
				fatalError(ctx, typeNode, "unable to parse type in formal_parameter", "type parsing")
			}
			params = append(params, gosrc.Param{
				Name: nameNode.Text,
				Ty:   ty,
			})
		case "spread_parameter":
			var ty gosrc.Type
			var name string
			for _, spreadChild := range child.Children {
				switch spreadChild.Kind {
				case "variable_declarator":
					name = mustField(ctx, spreadChild, "name").Text
				case "...", "modifiers":
				default:
					if goTy, ok := TryParseType(ctx, spreadChild); ok {
						ty = goTy
					}
				}
			}
			params = append(params, gosrc.Param{
				Name: name,
				Ty:   "..." + ty,
			})
		case "receiver_parameter":
			unhandledChild(ctx, child, "formal_parameters")
		default:
			if !isIgnored(child) {
				unhandledChild(ctx, child, "formal_parameters")
			}
		}
	}
	return params
}

type fieldDeclaration struct {
	field    gosrc.StructField
	initExpr gosrc.Expression
}

// convertFieldDeclaration converts every declarator of a field declaration:
// "int a = 1, b;" declares two fields
func convertFieldDeclaration(ctx *MigrationContext, fieldNode *syntax.Node) ([]fieldDeclaration, modifiers) {
	mods := modifiersOf(fieldNode)
	typeNode := mustField(ctx, fieldNode, "type")
	ty, ok := TryParseType(ctx, typeNode)
	if !ok {
		fatalError(ctx, typeNode, "unable to parse type in field_declaration", "type parsing")
	}
	var result []fieldDeclaration
	for _, child := range fieldNode.Children {
		switch child.Kind {
		case "variable_declarator":
			decl := convertVariableDecl(ctx, child, ty)
			result = append(result, fieldDeclaration{
				field: gosrc.StructField{
					Name:   decl.name,
					Ty:     ty,
					Public: mods.isPublic(),
					Origin: fieldNode.ID,
				},
				initExpr: decl.value,
			})
		case "modifiers":
		default:
			if child.Field == "type" || isIgnored(child) {
				continue
			}
			unhandledChild(ctx, child, "field_declaration")
		}
	}
	return result, mods
}

type variableDeclResult struct {
	name  string
	value gosrc.Expression
}

// convertVariableDecl converts a declarator. The declared type is needed for
// the shorthand array initializer "{ 1, 2, 3 }".
func convertVariableDecl(ctx *MigrationContext, declNode *syntax.Node, ty gosrc.Type) variableDeclResult {
	name := mustField(ctx, declNode, "name").Text
	valueNode := declNode.ChildByField("value")
	if valueNode == nil {
		return variableDeclResult{name: name}
	}
	if valueNode.Kind == "array_initializer" {
		return variableDeclResult{
			name:  name,
			value: &gosrc.ArrayLiteral{ElementType: ty, Elements: convertArrayInitializer(ctx, valueNode)},
		}
	}
	if valueNode.Kind == "object_creation_expression" {
		ctx.declaredType = ty
	}
	value := convertSimpleExpression(ctx, valueNode, "variable declaration")
	return variableDeclResult{
		name:  name,
		value: value,
	}
}

// convertSimpleExpression converts an expression that must not need
// preceding statements
func convertSimpleExpression(ctx *MigrationContext, node *syntax.Node, where string) gosrc.Expression {
	value, init := convertExpression(ctx, node)
	ensure(ctx, node, "unexpected statements in "+where, len(init) == 0)
	return value
}

func isVarPlaceholder(typeNode *syntax.Node) bool {
	return typeNode != nil && typeNode.Kind == "type_identifier" && typeNode.Text == "var"
}
