package java

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/syntax"
)

func convertArgumentList(ctx *MigrationContext, argList *syntax.Node) []gosrc.Expression {
	var args []gosrc.Expression
	for _, child := range argList.Children {
		if isIgnored(child) {
			continue
		}
		args = append(args, convertSimpleExpression(ctx, child, "argument list"))
	}
	return args
}

func convertArrayInitializer(ctx *MigrationContext, initNode *syntax.Node) []gosrc.Expression {
	var elements []gosrc.Expression
	for _, child := range initNode.Children {
		if isIgnored(child) {
			continue
		}
		if child.Kind == "array_initializer" {
			fatalError(ctx, child, "nested array initializers are not supported", string(child.Kind))
		}
		elements = append(elements, convertSimpleExpression(ctx, child, "array initializer"))
	}
	return elements
}

// convertAssignmentExpression emits the assignment as a statement. The
// assigned reference is the value of the expression so chained assignments
// ("a = b = 0") still work.
func convertAssignmentExpression(ctx *MigrationContext, expression *syntax.Node) (gosrc.Expression, []gosrc.Statement) {
	refNode := mustField(ctx, expression, "left")
	valueNode := mustField(ctx, expression, "right")
	operator := mustField(ctx, expression, "operator").Text

	leftExp, leftInit := convertExpression(ctx, refNode)
	rightExp, rightInit := convertExpression(ctx, valueNode)
	stmts := append(leftInit, rightInit...)
	valueExp := rightExp
	if operator != "=" {
		// x op= y -> x = x op y
		valueExp = &gosrc.BinaryExpression{
			Left:     leftExp,
			Operator: goOperator(strings.TrimSuffix(operator, "=")),
			Right:    rightExp,
		}
	}
	stmts = append(stmts, &gosrc.AssignStatement{
		Ref:   gosrc.VarRef{Ref: leftExp.ToSource()},
		Value: valueExp,
	})
	return leftExp, stmts
}

// goOperator maps Java operators without a Go spelling
func goOperator(operator string) string {
	switch operator {
	case ">>>":
		return ">>"
	case "~":
		return "^"
	}
	return operator
}

func convertUpdateExpression(ctx *MigrationContext, expression *syntax.Node) string {
	var operand gosrc.Expression
	var operator string
	for _, child := range expression.Children {
		switch child.Kind {
		case "++", "--":
			operator = string(child.Kind)
		default:
			operand = convertSimpleExpression(ctx, child, "update expression")
		}
	}
	ensure(ctx, expression, "update expression operator not found", operator != "" && operand != nil)
	return operand.ToSource() + operator
}

func convertArrayCreationExpression(ctx *MigrationContext, expression *syntax.Node) (gosrc.Expression, []gosrc.Statement) {
	typeNode := mustField(ctx, expression, "type")
	ty, ok := TryParseType(ctx, typeNode)
	if !ok {
		fatalError(ctx, typeNode, "unable to parse type in array_creation_expression", "type parsing")
	}
	var sizes []*syntax.Node
	depth := 0
	for _, child := range expression.Children {
		switch child.Kind {
		case "dimensions_expr":
			sizes = append(sizes, firstNamedChild(ctx, child))
			depth++
		case "dimensions":
			depth += strings.Count(child.Text, "[")
		}
	}
	sliceTy := gosrc.Type(strings.Repeat("[]", depth) + string(ty))
	if len(sizes) > 0 {
		ensure(ctx, expression, "only the outer dimension of an array may be sized", len(sizes) == 1)
		size, init := convertExpression(ctx, sizes[0])
		return &gosrc.CallExpression{
			Function: "make",
			Args:     []gosrc.Expression{&gosrc.VarRef{Ref: string(sliceTy)}, size},
		}, init
	}
	valueNode := mustField(ctx, expression, "value")
	return &gosrc.ArrayLiteral{
		ElementType: sliceTy,
		Elements:    convertArrayInitializer(ctx, valueNode),
	}, nil
}

func convertObjectCreationExpression(ctx *MigrationContext, expression *syntax.Node) (gosrc.Expression, []gosrc.Statement) {
	if body := expression.ChildrenOfKind("class_body"); len(body) > 0 {
		fatalError(ctx, body[0], "anonymous classes are not supported", string(body[0].Kind))
	}
	declared := ctx.declaredType
	ctx.declaredType = ""
	typeNode := mustField(ctx, expression, "type")
	var args []gosrc.Expression
	if argsNode := expression.ChildByField("arguments"); argsNode != nil {
		args = convertArgumentList(ctx, argsNode)
	}

	if typeNode.Kind == "generic_type" {
		ty := parseGenericType(ctx, typeNode)
		if isDiamond(typeNode) && declared != "" {
			ty = declared
		}
		if ty.IsArray() {
			return &gosrc.GoExpression{Source: fmt.Sprintf("make(%s, 0)", ty)}, nil
		}
		return &gosrc.GoExpression{Source: fmt.Sprintf("make(%s)", ty)}, nil
	}

	javaName := lastSegment(typeNode.Text)
	if info, ok := ctx.symbols.classes[javaName]; ok {
		ctor, ok := info.constructorFor(len(args))
		switch {
		case ok:
			return &gosrc.CallExpression{Function: ctor, Args: args}, nil
		case len(args) == 0:
			return &gosrc.VarRef{Ref: "&" + ctx.goTypeName(javaName) + "{}"}, nil
		default:
			fatalError(ctx, expression, fmt.Sprintf("%s has no constructor taking %d arguments", javaName, len(args)), string(expression.Kind))
		}
	}

	ty, ok := TryParseType(ctx, typeNode)
	if !ok {
		fatalError(ctx, typeNode, "unable to parse type in object_creation_expression", "type parsing")
	}
	if len(args) == 0 {
		return &gosrc.VarRef{Ref: "&" + string(ty) + "{}"}, nil
	}
	return &gosrc.CallExpression{
		Function: constructorName(false, ty),
		Args:     args,
	}, nil
}

// isDiamond reports "ArrayList<>", whose type arguments come from the declaration
func isDiamond(typeNode *syntax.Node) bool {
	for _, args := range typeNode.ChildrenOfKind("type_arguments") {
		for _, arg := range args.Children {
			if arg.Named {
				return false
			}
		}
	}
	return true
}

// convertIdentifier resolves a bare name. Fields of the enclosing class are
// reached through the receiver; static fields are package variables.
func convertIdentifier(ctx *MigrationContext, expression *syntax.Node) gosrc.Expression {
	name := expression.Text
	if ctx.locals[name] || ctx.class == nil {
		return &gosrc.VarRef{Ref: name}
	}
	field, ok := ctx.class.fields[name]
	switch {
	case !ok:
		return &gosrc.VarRef{Ref: name}
	case field.goName != "":
		return &gosrc.VarRef{Ref: field.goName}
	case field.static:
		return &gosrc.VarRef{Ref: name}
	}
	return &gosrc.VarRef{Ref: gosrc.SelfRef + "." + gosrc.ToIdentifier(name, field.public)}
}

// isClassReference reports whether node names a known class rather than a value
func (ctx *MigrationContext) isClassReference(node *syntax.Node) (*classInfo, bool) {
	if node == nil || node.Kind != "identifier" || ctx.locals[node.Text] {
		return nil, false
	}
	if ctx.class != nil {
		if _, isField := ctx.class.fields[node.Text]; isField {
			return nil, false
		}
	}
	info, ok := ctx.symbols.classes[node.Text]
	return info, ok
}

func convertInstanceofExpression(ctx *MigrationContext, expression *syntax.Node) (gosrc.Expression, []gosrc.Statement) {
	if expression.ChildByField("name") != nil || expression.ChildByField("pattern") != nil {
		fatalError(ctx, expression, "instanceof patterns are not supported", string(expression.Kind))
	}
	valueExp := convertSimpleExpression(ctx, mustField(ctx, expression, "left"), "instanceof")
	typeNode := mustField(ctx, expression, "right")
	ty, ok := TryParseType(ctx, typeNode)
	if !ok {
		fatalError(ctx, typeNode, "unable to parse type in instanceof_expression", "type parsing")
	}
	return &gosrc.GoExpression{
		Source: fmt.Sprintf("func() bool { _, ok := %s.(%s); return ok }()", valueExp.ToSource(), ty),
	}, nil
}

func convertCastExpression(ctx *MigrationContext, expression *syntax.Node) (gosrc.Expression, []gosrc.Statement) {
	typeNode := mustField(ctx, expression, "type")
	ty, ok := TryParseType(ctx, typeNode)
	if !ok {
		fatalError(ctx, typeNode, "unable to parse type in cast_expression", "type parsing")
	}
	valueExp, initStmts := convertExpression(ctx, mustField(ctx, expression, "value"))
	if typeNode.Is("integral_type", "floating_point_type", "boolean_type") {
		return &gosrc.CastExpression{
			Ty:    ty,
			Value: valueExp,
		}, initStmts
	}
	return &gosrc.GoExpression{
		Source: fmt.Sprintf("%s.(%s)", valueExp.ToSource(), ty),
	}, initStmts
}

func convertUnaryExpression(ctx *MigrationContext, expression *syntax.Node) (gosrc.Expression, []gosrc.Statement) {
	operand, initStmts := convertExpression(ctx, mustField(ctx, expression, "operand"))
	operator := textOf(expression.ChildByField("operator"))
	ensure(ctx, expression, "unary expression operator not found", operator != "")
	return &gosrc.UnaryExpression{
		Operator: goOperator(operator),
		Operand:  operand,
	}, initStmts
}

func convertFieldAccess(ctx *MigrationContext, expression *syntax.Node) (gosrc.Expression, []gosrc.Statement) {
	objectNode := mustField(ctx, expression, "object")
	fieldName := mustField(ctx, expression, "field").Text

	switch objectNode.Kind {
	case "this", "super":
		return &gosrc.VarRef{Ref: gosrc.SelfRef + "." + ctx.fieldName(ctx.class, fieldName)}, nil
	}
	if info, ok := ctx.isClassReference(objectNode); ok {
		if field, ok := info.fields[fieldName]; ok && field.static {
			return &gosrc.VarRef{Ref: cmp.Or(field.goName, fieldName)}, nil
		}
	}
	object, initStmts := convertExpression(ctx, objectNode)
	if fieldName == "length" {
		return &gosrc.CallExpression{Function: "len", Args: []gosrc.Expression{object}}, initStmts
	}
	return &gosrc.VarRef{Ref: object.ToSource() + "." + ctx.fieldName(nil, fieldName)}, initStmts
}

// fieldName is the Go name of a field. With no class to look in, any class
// declaring a field of that name decides its visibility.
func (ctx *MigrationContext) fieldName(class *classInfo, name string) string {
	if class != nil {
		if field, ok := class.fields[name]; ok {
			return gosrc.ToIdentifier(name, field.public)
		}
	}
	for _, info := range ctx.symbols.classes {
		if field, ok := info.fields[name]; ok {
			return gosrc.ToIdentifier(name, field.public)
		}
	}
	return name
}

// methodName is the Go name of a method, looked up like fieldName
func (ctx *MigrationContext) methodName(class *classInfo, name string) string {
	if class != nil {
		if method, ok := class.methods[name]; ok {
			return gosrc.ToIdentifier(name, method.public)
		}
	}
	for _, info := range ctx.symbols.classes {
		if method, ok := info.methods[name]; ok {
			return gosrc.ToIdentifier(name, method.public)
		}
	}
	return name
}

func (ctx *MigrationContext) addImport(path string) {
	for _, imp := range ctx.Source.Imports {
		if imp.PackagePath == path {
			return
		}
	}
	ctx.Source.Imports = append(ctx.Source.Imports, gosrc.Import{PackagePath: path})
}

func convertBinaryExpression(ctx *MigrationContext, expression *syntax.Node) (gosrc.Expression, []gosrc.Statement) {
	left, leftInit := convertExpression(ctx, mustField(ctx, expression, "left"))
	right, rightInit := convertExpression(ctx, mustField(ctx, expression, "right"))
	stms := append(leftInit, rightInit...)
	operator := textOf(expression.ChildByField("operator"))
	ensure(ctx, expression, "binary expression operator not found", operator != "")
	return &gosrc.BinaryExpression{
		Left:     left,
		Operator: goOperator(operator),
		Right:    right,
	}, stms
}

func convertMethodInvocation(ctx *MigrationContext, expression *syntax.Node) (gosrc.Expression, []gosrc.Statement) {
	name := mustField(ctx, expression, "name").Text
	objectNode := expression.ChildByField("object")
	args := convertArgumentList(ctx, mustField(ctx, expression, "arguments"))

	if objectNode == nil {
		if ctx.class != nil {
			if method, ok := ctx.class.methods[name]; ok {
				goName := gosrc.ToIdentifier(name, method.public)
				if !method.static {
					goName = gosrc.SelfRef + "." + goName
				}
				return &gosrc.CallExpression{Function: goName, Args: args}, nil
			}
		}
		return &gosrc.CallExpression{Function: name, Args: args}, nil
	}

	switch objectNode.Text {
	case "System.out", "System.err":
		function := "fmt.Println"
		if name == "print" {
			function = "fmt.Print"
		}
		ctx.addImport("fmt")
		if objectNode.Text == "System.err" {
			ctx.addImport("os")
			function = strings.Replace(function, "fmt.", "fmt.F", 1)
			args = append([]gosrc.Expression{&gosrc.VarRef{Ref: "os.Stderr"}}, args...)
		}
		ensure(ctx, expression, "unsupported console method "+name, name == "println" || name == "print")
		return &gosrc.CallExpression{Function: function, Args: args}, nil
	case "Math":
		if name == "max" || name == "min" {
			return &gosrc.CallExpression{Function: name, Args: args}, nil
		}
	}

	switch objectNode.Kind {
	case "this", "super":
		return &gosrc.CallExpression{
			Function: gosrc.SelfRef + "." + ctx.methodName(ctx.class, name),
			Args:     args,
		}, nil
	}
	if info, ok := ctx.isClassReference(objectNode); ok {
		if method, ok := info.methods[name]; ok && method.static {
			return &gosrc.CallExpression{Function: gosrc.ToIdentifier(name, method.public), Args: args}, nil
		}
	}

	object, initStmts := convertExpression(ctx, objectNode)
	switch {
	case name == "equals" && len(args) == 1:
		return &gosrc.BinaryExpression{Left: object, Operator: "==", Right: args[0]}, initStmts
	case (name == "size" || name == "length") && len(args) == 0:
		return &gosrc.CallExpression{Function: "len", Args: []gosrc.Expression{object}}, initStmts
	case name == "isEmpty" && len(args) == 0:
		return &gosrc.BinaryExpression{
			Left:     &gosrc.CallExpression{Function: "len", Args: []gosrc.Expression{object}},
			Operator: "==",
			Right:    &gosrc.IntLiteral{Value: 0},
		}, initStmts
	case name == "get" && len(args) == 1:
		return &gosrc.GoExpression{Source: fmt.Sprintf("%s[%s]", object.ToSource(), args[0].ToSource())}, initStmts
	}
	return &gosrc.CallExpression{
		Function: object.ToSource() + "." + ctx.methodName(nil, name),
		Args:     args,
	}, initStmts
}

func convertIntegerLiteral(ctx *MigrationContext, expression *syntax.Node) gosrc.Expression {
	text := strings.TrimRight(strings.ReplaceAll(expression.Text, "_", ""), "lL")
	if expression.Kind == "octal_integer_literal" && !strings.HasPrefix(text, "0o") {
		text = "0o" + strings.TrimPrefix(text, "0")
	}
	n, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		fatalError(ctx, expression, err.Error(), string(expression.Kind))
	}
	return &gosrc.IntLiteral{Value: int(n)}
}

func convertExpression(ctx *MigrationContext, expression *syntax.Node) (gosrc.Expression, []gosrc.Statement) {
	switch expression.Kind {
	case "this", "super":
		return &gosrc.VarRef{Ref: gosrc.SelfRef}, nil
	case "assignment_expression":
		return convertAssignmentExpression(ctx, expression)
	case "ternary_expression":
		// Go has no conditional expression; left for manual rewrite
		return &gosrc.UnhandledExpression{Text: expression.Text}, nil
	case "array_creation_expression":
		return convertArrayCreationExpression(ctx, expression)
	case "instanceof_expression":
		return convertInstanceofExpression(ctx, expression)
	case "update_expression":
		fatalError(ctx, expression, "increment used as a value", string(expression.Kind))
	case "identifier":
		return convertIdentifier(ctx, expression), nil
	case "array_access":
		array, arrayInit := convertExpression(ctx, mustField(ctx, expression, "array"))
		index, indexInit := convertExpression(ctx, mustField(ctx, expression, "index"))
		return &gosrc.GoExpression{
			Source: fmt.Sprintf("%s[%s]", array.ToSource(), index.ToSource()),
		}, append(arrayInit, indexInit...)
	case "object_creation_expression":
		return convertObjectCreationExpression(ctx, expression)
	case "field_access":
		return convertFieldAccess(ctx, expression)
	case "method_invocation":
		return convertMethodInvocation(ctx, expression)
	case "parenthesized_expression":
		return convertExpression(ctx, firstNamedChild(ctx, expression))
	case "binary_expression":
		return convertBinaryExpression(ctx, expression)
	case "unary_expression":
		return convertUnaryExpression(ctx, expression)
	case "cast_expression":
		return convertCastExpression(ctx, expression)
	case "character_literal":
		return &gosrc.CharLiteral{Value: expression.Text}, nil
	case "string_literal":
		return &gosrc.GoExpression{Source: expression.Text}, nil
	case "null_literal":
		return &gosrc.NIL, nil
	case "true":
		return &gosrc.BooleanLiteral{Value: true}, nil
	case "false":
		return &gosrc.BooleanLiteral{Value: false}, nil
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
		return convertIntegerLiteral(ctx, expression), nil
	case "decimal_floating_point_literal", "hex_floating_point_literal":
		text := strings.TrimRight(strings.ReplaceAll(expression.Text, "_", ""), "fFdD")
		if strings.HasPrefix(text, ".") {
			text = "0" + text
		}
		return &gosrc.GoExpression{Source: text}, nil
	default:
		unhandledChild(ctx, expression, "expression")
	}
	panic("unreachable")
}
