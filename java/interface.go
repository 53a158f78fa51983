package java

import (
	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/syntax"
)

func migrateInterfaceDeclaration(ctx *MigrationContext, interfaceNode *syntax.Node) {
	interfaceName := mustField(ctx, interfaceNode, "name").Text
	goName := gosrc.CapitalizeFirstLetter(interfaceName)
	var superInterfaces []gosrc.Type
	var regularMethods []gosrc.InterfaceMethod
	outer := ctx.class
	ctx.class = ctx.symbols.classes[interfaceName]
	defer func() { ctx.class = outer }()

	for _, child := range interfaceNode.Children {
		switch child.Kind {
		case "extends_interfaces":
			for _, typeList := range child.ChildrenOfKind("type_list") {
				for _, typeNode := range typeList.Children {
					if typeNode.Named {
						superInterfaces = append(superInterfaces, referencedType(ctx, typeNode))
					}
				}
			}
		case "interface_body":
			loc := location("interface", interfaceName)
			for _, bodyChild := range child.Children {
				ctx.recoverMember(loc, bodyChild, func() {
					if method, ok := convertInterfaceMember(ctx, goName, bodyChild); ok {
						regularMethods = append(regularMethods, method)
					}
				})
			}
		case "type_parameters":
			fatalError(ctx, child, "generic interfaces are not supported", string(child.Kind))
		// ignored
		case "modifiers", "interface", "identifier", "line_comment", "block_comment":
		default:
			unhandledChild(ctx, child, "interface_declaration")
		}
	}

	ctx.Source.Interfaces = append(ctx.Source.Interfaces, gosrc.Interface{
		Name:     goName,
		JavaName: interfaceName,
		Embeds:   superInterfaces,
		Methods:  regularMethods,
		Public:   true, // Java interfaces are always public
		Comments: []string{getMigrationComment(ctx, interfaceNode)},
		Origin:   interfaceNode.ID,
	})
}

// convertInterfaceMember converts one member of an interface body. Abstract
// methods are returned for the interface itself; default and static methods
// become package functions and constants become package variables.
func convertInterfaceMember(ctx *MigrationContext, goName string, member *syntax.Node) (gosrc.InterfaceMethod, bool) {
	switch member.Kind {
	case "method_declaration":
		mods := modifiersOf(member)
		switch {
		case mods&DEFAULT != 0:
			ctx.Source.Functions = append(ctx.Source.Functions, convertMethodDeclarationToFunction(ctx, member, goName))
		case mods&STATIC != 0:
			ctx.Source.Functions = append(ctx.Source.Functions, convertMethodDeclarationToFunction(ctx, member, ""))
		default:
			metadata := parseMethodSignature(ctx, member)
			return gosrc.InterfaceMethod{
				Name:       gosrc.CapitalizeFirstLetter(metadata.name),
				Params:     metadata.params,
				ReturnType: metadata.returnTy,
				Public:     true, // All interface methods are public
			}, true
		}
	case "constant_declaration":
		fields, _ := convertFieldDeclaration(ctx, member)
		for _, each := range fields {
			ctx.Source.Vars = append(ctx.Source.Vars, gosrc.ModuleVar{
				Name:   each.field.Name,
				Ty:     each.field.Ty,
				Value:  each.initExpr,
				Origin: member.ID,
			})
		}
	case "class_declaration":
		migrateClassDeclaration(ctx, member)
	case "interface_declaration":
		migrateInterfaceDeclaration(ctx, member)
	case "enum_declaration":
		migrateEnumDeclaration(ctx, member)
	case "record_declaration":
		migrateRecordDeclaration(ctx, member)
	default:
		if !isIgnored(member) {
			unhandledChild(ctx, member, "interface_body")
		}
	}
	return gosrc.InterfaceMethod{}, false
}

// convertMethodDeclarationToFunction converts a default or static interface
// method. Default methods take the receiving interface value as "this".
func convertMethodDeclarationToFunction(ctx *MigrationContext, methodNode *syntax.Node, defaultOf string) gosrc.Function {
	metadata := parseMethodSignature(ctx, methodNode)
	params := metadata.params
	if defaultOf != "" {
		params = append([]gosrc.Param{{Name: gosrc.SelfRef, Ty: gosrc.Type(defaultOf)}}, params...)
	}
	ctx.enterMethod(params)
	var body []gosrc.Statement
	if blockNode := methodNode.ChildByField("body"); blockNode != nil {
		body = convertStatementBlock(ctx, blockNode)
	}
	return gosrc.Function{
		Name:       gosrc.CapitalizeFirstLetter(metadata.name),
		JavaName:   metadata.name,
		Params:     params,
		ReturnType: metadata.returnTy,
		Body:       body,
		Comments:   []string{getMigrationComment(ctx, methodNode)},
		Public:     true,
		Origin:     methodNode.ID,
	}
}
