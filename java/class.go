package java

import (
	"fmt"

	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/syntax"
)

// classConversionResult holds the result of converting a class body
type classConversionResult struct {
	Fields         []gosrc.StructField
	Vars           []gosrc.ModuleVar
	Functions      []gosrc.Function
	Methods        []gosrc.Method
	fieldInits     []fieldInit
	hasConstructor bool
}

type fieldInit struct {
	name  string
	value gosrc.Expression
	ref   string
}

// classHeader is what a class declaration says about itself before its body
type classHeader struct {
	javaName   string
	structName string
	public     bool
	abstract   bool
	includes   []gosrc.Type
	implements []gosrc.Type
	base       *classInfo
}

func migrateClassDeclaration(ctx *MigrationContext, classNode *syntax.Node) {
	header := parseClassHeader(ctx, classNode)
	info, ok := ctx.symbols.classes[header.javaName]
	if !ok {
		ctx.symbols.collectType(classNode, false)
		info = ctx.symbols.classes[header.javaName]
	}
	outer := ctx.class
	ctx.class = info
	defer func() { ctx.class = outer }()

	body := mustField(ctx, classNode, "body")
	result := convertClassBody(ctx, header, body)
	ctx.Source.Structs = append(ctx.Source.Structs, gosrc.Struct{
		Name:     header.structName,
		JavaName: header.javaName,
		Includes: header.includes,
		Fields:   result.Fields,
		Public:   header.public,
		Comments: []string{getMigrationComment(ctx, classNode)},
		Origin:   classNode.ID,
	})
	ctx.Source.Vars = append(ctx.Source.Vars, result.Vars...)
	ctx.Source.Functions = append(ctx.Source.Functions, result.Functions...)
	ctx.Source.Methods = append(ctx.Source.Methods, result.Methods...)
	// Generate type assertions for implemented interfaces
	for _, ifaceType := range header.implements {
		ctx.Source.Vars = append(ctx.Source.Vars, gosrc.ModuleVar{
			Name:   "_",
			Ty:     ifaceType,
			Value:  &gosrc.VarRef{Ref: "&" + header.structName + "{}"},
			Owner:  header.structName,
			Origin: classNode.ID,
		})
	}
}

func parseClassHeader(ctx *MigrationContext, classNode *syntax.Node) classHeader {
	mods := modifiersOf(classNode)
	header := classHeader{
		javaName: mustField(ctx, classNode, "name").Text,
		public:   mods.isPublic(),
		abstract: mods&ABSTRACT != 0,
	}
	header.structName = gosrc.ToIdentifier(header.javaName, header.public)
	for _, child := range classNode.Children {
		switch child.Kind {
		case "superclass":
			for _, typeNode := range child.Children {
				if !typeNode.Named {
					continue
				}
				header.includes = append(header.includes, referencedType(ctx, typeNode))
				header.base = ctx.symbols.classes[typeNode.Text]
			}
		case "super_interfaces":
			for _, typeList := range child.ChildrenOfKind("type_list") {
				for _, typeNode := range typeList.Children {
					if typeNode.Named {
						header.implements = append(header.implements, referencedType(ctx, typeNode))
					}
				}
			}
		case "type_parameters":
			fatalError(ctx, child, "generic classes are not supported", string(child.Kind))
		// ignored
		case "modifiers", "identifier", "class_body", "class", "line_comment", "block_comment":
		default:
			unhandledChild(ctx, child, "class_declaration")
		}
	}
	return header
}

// referencedType resolves a base class or interface to its Go name
func referencedType(ctx *MigrationContext, typeNode *syntax.Node) gosrc.Type {
	if typeNode.Kind == "type_identifier" {
		return gosrc.Type(ctx.goTypeName(typeNode.Text))
	}
	ty, ok := TryParseType(ctx, typeNode)
	if !ok {
		fatalError(ctx, typeNode, "unable to parse referenced type", "type parsing")
	}
	return ty
}

func convertClassBody(ctx *MigrationContext, header classHeader, classBody *syntax.Node) classConversionResult {
	var result classConversionResult
	loc := location("class", header.javaName)
	// Fields first: every constructor runs all field initializers
	for _, child := range classBody.Children {
		if child.Kind == "field_declaration" {
			ctx.recoverMember(loc, child, func() {
				convertClassMember(ctx, header, child, &result)
			})
		}
	}
	for _, child := range classBody.Children {
		if child.Kind != "field_declaration" {
			ctx.recoverMember(loc, child, func() {
				convertClassMember(ctx, header, child, &result)
			})
		}
	}
	if !result.hasConstructor && !header.abstract && len(result.fieldInits) > 0 {
		result.Functions = append(result.Functions, convertConstructor(ctx, header, nil, result.fieldInits))
	}
	return result
}

func convertClassMember(ctx *MigrationContext, header classHeader, child *syntax.Node, result *classConversionResult) {
	switch child.Kind {
	case "class_declaration":
		migrateClassDeclaration(ctx, child)
	case "interface_declaration":
		migrateInterfaceDeclaration(ctx, child)
	case "enum_declaration":
		migrateEnumDeclaration(ctx, child)
	case "record_declaration":
		migrateRecordDeclaration(ctx, child)
	case "field_declaration":
		fields, mods := convertFieldDeclaration(ctx, child)
		for _, each := range fields {
			if mods&STATIC != 0 {
				result.Vars = append(result.Vars, gosrc.ModuleVar{
					Name:   each.field.Name,
					Ty:     each.field.Ty,
					Value:  each.initExpr,
					Owner:  header.structName,
					Origin: child.ID,
				})
				continue
			}
			result.Fields = append(result.Fields, each.field)
			if each.initExpr != nil {
				result.fieldInits = append(result.fieldInits, fieldInit{
					name:  each.field.Name,
					value: each.initExpr,
					ref:   gosrc.SelfRef + "." + gosrc.ToIdentifier(each.field.Name, each.field.Public),
				})
			}
		}
	case "constructor_declaration":
		result.Functions = append(result.Functions, convertConstructor(ctx, header, child, result.fieldInits))
		result.hasConstructor = true
	case "method_declaration":
		function, isStatic := convertMethodDeclaration(ctx, header, child)
		if isStatic {
			result.Functions = append(result.Functions, function)
			return
		}
		result.Methods = append(result.Methods, gosrc.Method{
			Function: function,
			Receiver: gosrc.Param{
				Name: gosrc.SelfRef,
				Ty:   gosrc.Type("*" + header.structName),
			},
		})
	default:
		if !isIgnored(child) {
			unhandledChild(ctx, child, "class_body")
		}
	}
}

type methodMetadata struct {
	name       string
	params     []gosrc.Param
	returnTy   *gosrc.Type
	isPublic   bool
	isStatic   bool
	isAbstract bool
}

func parseMethodSignature(ctx *MigrationContext, methodNode *syntax.Node) methodMetadata {
	mods := modifiersOf(methodNode)
	var params []gosrc.Param
	var name string
	var returnType *gosrc.Type
	var hasThrows bool
	for _, child := range methodNode.Children {
		if child.Field == "type" {
			if ty, ok := TryParseType(ctx, child); ok {
				returnType = &ty
				continue
			}
		}
		switch child.Kind {
		case "formal_parameters":
			params = convertFormalParameters(ctx, child)
		case "identifier":
			name = child.Text
		case "void_type":
			returnType = nil
		case "throws":
			hasThrows = true
		case "type_parameters":
			fatalError(ctx, child, "generic methods are not supported", string(child.Kind))
		// ignored
		case "modifiers", "block":
		default:
			if !isIgnored(child) {
				unhandledChild(ctx, child, "method_declaration")
			}
		}
	}

	// Methods that throw report the failure through an error result
	if hasThrows {
		if returnType == nil {
			errorType := gosrc.Type("error")
			returnType = &errorType
		} else {
			tupleType := gosrc.Type("(" + returnType.ToSource() + ", error)")
			returnType = &tupleType
		}
	}

	return methodMetadata{
		name:       name,
		params:     params,
		returnTy:   returnType,
		isPublic:   mods.isPublic(),
		isStatic:   mods&STATIC != 0,
		isAbstract: mods&ABSTRACT != 0,
	}
}

func convertMethodDeclaration(ctx *MigrationContext, header classHeader, methodNode *syntax.Node) (gosrc.Function, bool) {
	metadata := parseMethodSignature(ctx, methodNode)
	ctx.enterMethod(metadata.params)

	var body []gosrc.Statement
	if blockNode := methodNode.ChildByField("body"); blockNode != nil {
		body = convertStatementBlock(ctx, blockNode)
	}
	if metadata.isAbstract && len(body) == 0 {
		body = append(body, &gosrc.GoStatement{Source: "panic(\"implemented in concrete class\")"})
	}
	return gosrc.Function{
		Name:       metadata.name,
		JavaName:   metadata.name,
		Params:     metadata.params,
		ReturnType: metadata.returnTy,
		Body:       body,
		Comments:   []string{getMigrationComment(ctx, methodNode)},
		Public:     metadata.isPublic,
		Owner:      header.structName,
		Origin:     methodNode.ID,
	}, metadata.isStatic
}

// convertConstructor converts a constructor into a function returning a
// pointer to the struct. A nil constructorNode builds the default
// constructor that only runs the field initializers.
func convertConstructor(ctx *MigrationContext, header classHeader, constructorNode *syntax.Node, inits []fieldInit) gosrc.Function {
	public := header.public
	var params []gosrc.Param
	var origin syntax.NodeID
	comment := fmt.Sprintf("default constructor of %s", header.javaName)
	if constructorNode != nil {
		public = modifiersOf(constructorNode).isPublic()
		params = convertFormalParameters(ctx, constructorNode.ChildByField("parameters"))
		origin = constructorNode.ID
		comment = getMigrationComment(ctx, constructorNode)
	}
	ctx.enterMethod(params)

	body := []gosrc.Statement{
		&gosrc.GoStatement{Source: fmt.Sprintf("%s := &%s{}", gosrc.SelfRef, header.structName)},
	}
	body = append(body, fieldInitStmts(inits)...)
	if constructorNode != nil {
		body = append(body, convertConstructorBody(ctx, header, mustField(ctx, constructorNode, "body"))...)
	}
	body = append(body, &gosrc.ReturnStatement{Value: &gosrc.VarRef{Ref: gosrc.SelfRef}})

	retTy := gosrc.Type("*" + header.structName)
	return gosrc.Function{
		Name:        constructorName(public, gosrc.Type(header.structName), params...),
		JavaName:    header.javaName,
		Params:      params,
		ReturnType:  &retTy,
		Body:        body,
		Comments:    []string{comment},
		Public:      public,
		Owner:       header.structName,
		Constructor: true,
		Origin:      origin,
	}
}

func convertConstructorBody(ctx *MigrationContext, header classHeader, bodyNode *syntax.Node) []gosrc.Statement {
	var body []gosrc.Statement
	for _, child := range bodyNode.Children {
		switch child.Kind {
		case "explicit_constructor_invocation":
			body = append(body, convertExplicitConstructorInvocation(ctx, header, child)...)
		default:
			if !isIgnored(child) {
				body = append(body, convertStatement(ctx, child)...)
			}
		}
	}
	return body
}

func fieldInitStmts(inits []fieldInit) []gosrc.Statement {
	if len(inits) == 0 {
		return nil
	}
	body := []gosrc.Statement{&gosrc.CommentStmt{Comments: []string{"Default field initializations"}}}
	for _, each := range inits {
		body = append(body, &gosrc.AssignStatement{Ref: gosrc.VarRef{Ref: each.ref}, Value: each.value})
	}
	return body
}

// convertExplicitConstructorInvocation turns super(...) into an assignment of
// the embedded base struct and this(...) into a call of the sibling
// constructor
func convertExplicitConstructorInvocation(ctx *MigrationContext, header classHeader, invocationNode *syntax.Node) []gosrc.Statement {
	var target string
	var args []gosrc.Expression
	for _, child := range invocationNode.Children {
		switch child.Kind {
		case "this", "super":
			target = string(child.Kind)
		case "argument_list":
			args = convertArgumentList(ctx, child)
		default:
			if !isIgnored(child) {
				unhandledChild(ctx, child, "explicit_constructor_invocation")
			}
		}
	}
	switch target {
	case "super":
		if header.base == nil {
			if len(args) == 0 {
				return nil
			}
			fatalError(ctx, invocationNode, "super call to an unknown base class", string(invocationNode.Kind))
		}
		ctor, ok := header.base.constructorFor(len(args))
		if !ok {
			if len(args) == 0 {
				return nil
			}
			fatalError(ctx, invocationNode, fmt.Sprintf("%s has no constructor taking %d arguments", header.base.javaName, len(args)), string(invocationNode.Kind))
		}
		return []gosrc.Statement{&gosrc.AssignStatement{
			Ref:   gosrc.VarRef{Ref: gosrc.SelfRef + "." + ctx.goTypeName(header.base.javaName)},
			Value: &gosrc.UnaryExpression{Operator: "*", Operand: &gosrc.CallExpression{Function: ctor, Args: args}},
		}}
	case "this":
		ctor, ok := ctx.class.constructorFor(len(args))
		if !ok {
			fatalError(ctx, invocationNode, fmt.Sprintf("%s has no constructor taking %d arguments", header.javaName, len(args)), string(invocationNode.Kind))
		}
		return []gosrc.Statement{&gosrc.AssignStatement{
			Ref:   gosrc.VarRef{Ref: gosrc.SelfRef},
			Value: &gosrc.CallExpression{Function: ctor, Args: args},
		}}
	default:
		unhandledChild(ctx, invocationNode, "constructor_body")
		return nil
	}
}
