package java

import (
	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/syntax"
)

// migrateRecordDeclaration converts a record into a struct with one private
// field per component, a canonical constructor and public accessor methods.
// A compact constructor runs before the components are stored.
func migrateRecordDeclaration(ctx *MigrationContext, recordNode *syntax.Node) {
	mods := modifiersOf(recordNode)
	header := classHeader{
		javaName: mustField(ctx, recordNode, "name").Text,
		public:   mods.isPublic(),
	}
	header.structName = gosrc.ToIdentifier(header.javaName, header.public)
	for _, child := range recordNode.Children {
		switch child.Kind {
		case "super_interfaces":
			for _, typeList := range child.ChildrenOfKind("type_list") {
				for _, typeNode := range typeList.Children {
					if typeNode.Named {
						header.implements = append(header.implements, referencedType(ctx, typeNode))
					}
				}
			}
		case "type_parameters":
			fatalError(ctx, child, "generic records are not supported", string(child.Kind))
		}
	}

	info, ok := ctx.symbols.classes[header.javaName]
	if !ok {
		ctx.symbols.collectType(recordNode, false)
		info = ctx.symbols.classes[header.javaName]
	}
	outer := ctx.class
	ctx.class = info
	defer func() { ctx.class = outer }()

	components := convertFormalParameters(ctx, mustField(ctx, recordNode, "parameters"))
	var fields []gosrc.StructField
	for _, component := range components {
		fields = append(fields, gosrc.StructField{Name: component.Name, Ty: component.Ty, Origin: recordNode.ID})
	}

	members := &syntax.Node{Kind: "class_body"}
	var compact *syntax.Node
	explicitAccessors := map[string]bool{}
	if body := recordNode.ChildByField("body"); body != nil {
		for _, child := range body.Children {
			switch child.Kind {
			case "compact_constructor_declaration":
				compact = child
				continue
			case "method_declaration":
				explicitAccessors[child.Name] = true
			}
			members.Children = append(members.Children, child)
		}
	}
	result := convertClassBody(ctx, header, members)

	ctx.Source.Structs = append(ctx.Source.Structs, gosrc.Struct{
		Name:     header.structName,
		JavaName: header.javaName,
		Fields:   append(fields, result.Fields...),
		Public:   header.public,
		Comments: []string{getMigrationComment(ctx, recordNode)},
		Origin:   recordNode.ID,
	})
	loc := location("record", header.javaName)
	ctx.recoverMember(loc, recordNode, func() {
		ctx.Source.Functions = append(ctx.Source.Functions, convertCanonicalConstructor(ctx, header, recordNode, components, compact))
	})
	for _, component := range components {
		if explicitAccessors[component.Name] {
			continue
		}
		ctx.Source.Methods = append(ctx.Source.Methods, recordAccessor(header, component, recordNode.ID))
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
			Origin: recordNode.ID,
		})
	}
}

func convertCanonicalConstructor(ctx *MigrationContext, header classHeader, recordNode *syntax.Node, components []gosrc.Param, compact *syntax.Node) gosrc.Function {
	ctx.enterMethod(components)
	body := []gosrc.Statement{
		&gosrc.GoStatement{Source: gosrc.SelfRef + " := &" + header.structName + "{}"},
	}
	if compact != nil {
		body = append(body, convertStatementBlock(ctx, mustField(ctx, compact, "body"))...)
	}
	for _, component := range components {
		body = append(body, &gosrc.AssignStatement{
			Ref:   gosrc.VarRef{Ref: gosrc.SelfRef + "." + component.Name},
			Value: &gosrc.VarRef{Ref: component.Name},
		})
	}
	body = append(body, &gosrc.ReturnStatement{Value: &gosrc.VarRef{Ref: gosrc.SelfRef}})
	retTy := gosrc.Type("*" + header.structName)
	return gosrc.Function{
		Name:        constructorName(header.public, gosrc.Type(header.structName), components...),
		JavaName:    header.javaName,
		Params:      components,
		ReturnType:  &retTy,
		Body:        body,
		Comments:    []string{getMigrationComment(ctx, recordNode)},
		Public:      header.public,
		Owner:       header.structName,
		Constructor: true,
		Origin:      recordNode.ID,
	}
}

func recordAccessor(header classHeader, component gosrc.Param, origin syntax.NodeID) gosrc.Method {
	retTy := component.Ty
	return gosrc.Method{
		Function: gosrc.Function{
			Name:       component.Name,
			JavaName:   component.Name,
			ReturnType: &retTy,
			Body:       []gosrc.Statement{&gosrc.ReturnStatement{Value: &gosrc.VarRef{Ref: gosrc.SelfRef + "." + component.Name}}},
			Public:     true,
			Owner:      header.structName,
			Origin:     origin,
		},
		Receiver: gosrc.Param{Name: gosrc.SelfRef, Ty: gosrc.Type("*" + header.structName)},
	}
}
