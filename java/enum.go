package java

import (
	"fmt"

	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/syntax"
)

// enumConstantName is the package variable an enum constant becomes
func enumConstantName(enumTypeName, constant string) string {
	return enumTypeName + "_" + constant
}

// migrateEnumDeclaration converts an enum into a struct with one package
// variable per constant. Constants are distinct pointers, so they compare by
// identity like Java enum constants do. Constant arguments go through the
// enum's constructors.
func migrateEnumDeclaration(ctx *MigrationContext, enumNode *syntax.Node) {
	mods := modifiersOf(enumNode)
	header := classHeader{
		javaName: mustField(ctx, enumNode, "name").Text,
		// Enums without an access modifier are treated as public
		public: mods.isPublic() || !hasAccessModifier(enumNode),
	}
	header.structName = gosrc.ToIdentifier(header.javaName, header.public)
	for _, child := range enumNode.ChildrenOfKind("super_interfaces") {
		for _, typeList := range child.ChildrenOfKind("type_list") {
			for _, typeNode := range typeList.Children {
				if typeNode.Named {
					header.implements = append(header.implements, referencedType(ctx, typeNode))
				}
			}
		}
	}

	info, ok := ctx.symbols.classes[header.javaName]
	if !ok {
		ctx.symbols.collectType(enumNode, false)
		info = ctx.symbols.classes[header.javaName]
	}
	outer := ctx.class
	ctx.class = info
	defer func() { ctx.class = outer }()

	body := mustField(ctx, enumNode, "body")
	var constants []*syntax.Node
	members := &syntax.Node{Kind: "class_body"}
	for _, child := range bodyMembers(body) {
		if child.Kind == "enum_constant" {
			constants = append(constants, child)
			continue
		}
		members.Children = append(members.Children, child)
	}
	result := convertClassBody(ctx, header, members)

	ctx.Source.Structs = append(ctx.Source.Structs, gosrc.Struct{
		Name:     header.structName,
		JavaName: header.javaName,
		Fields:   result.Fields,
		Public:   header.public,
		Comments: []string{getMigrationComment(ctx, enumNode)},
		Origin:   enumNode.ID,
	})
	loc := location("enum", header.javaName)
	for _, constant := range constants {
		ctx.recoverMember(loc, constant, func() {
			ctx.Source.Vars = append(ctx.Source.Vars, convertEnumConstant(ctx, header, info, constant))
		})
	}
	ctx.Source.Vars = append(ctx.Source.Vars, result.Vars...)
	ctx.Source.Functions = append(ctx.Source.Functions, result.Functions...)
	ctx.Source.Methods = append(ctx.Source.Methods, result.Methods...)
	for _, ifaceType := range header.implements {
		ctx.Source.Vars = append(ctx.Source.Vars, gosrc.ModuleVar{
			Name:   "_",
			Ty:     ifaceType,
			Value:  &gosrc.VarRef{Ref: "&" + header.structName + "{}"},
			Owner:  header.structName,
			Origin: enumNode.ID,
		})
	}
}

func convertEnumConstant(ctx *MigrationContext, header classHeader, info *classInfo, constant *syntax.Node) gosrc.ModuleVar {
	if body := constant.ChildByField("body"); body != nil {
		fatalError(ctx, body, "enum constants with a body are not supported", string(body.Kind))
	}
	name := mustField(ctx, constant, "name").Text
	ctx.enterMethod(nil)
	var args []gosrc.Expression
	if argsNode := constant.ChildByField("arguments"); argsNode != nil {
		args = convertArgumentList(ctx, argsNode)
	}
	var value gosrc.Expression = &gosrc.VarRef{Ref: "&" + header.structName + "{}"}
	if ctor, ok := info.constructorFor(len(args)); ok {
		value = &gosrc.CallExpression{Function: ctor, Args: args}
	} else if len(args) > 0 {
		fatalError(ctx, constant, fmt.Sprintf("%s has no constructor taking %d arguments", header.javaName, len(args)), string(constant.Kind))
	}
	return gosrc.ModuleVar{
		Name:   enumConstantName(header.structName, name),
		Value:  value,
		Owner:  header.structName,
		Origin: constant.ID,
	}
}
