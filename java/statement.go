package java

import (
	"fmt"

	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/syntax"
)

// convertStatementBlock converts a block, or a single statement used where a
// block is allowed ("if (c) return;")
func convertStatementBlock(ctx *MigrationContext, blockNode *syntax.Node) []gosrc.Statement {
	if blockNode.Kind != "block" {
		return convertStatement(ctx, blockNode)
	}
	var body []gosrc.Statement
	for _, child := range blockNode.Children {
		if isIgnored(child) {
			continue
		}
		body = append(body, convertStatement(ctx, child)...)
	}
	return body
}

func convertStatement(ctx *MigrationContext, stmtNode *syntax.Node) []gosrc.Statement {
	switch stmtNode.Kind {
	case "line_comment", "block_comment", ";":
		return nil
	case "block":
		return []gosrc.Statement{&gosrc.BlockStatement{Body: convertStatementBlock(ctx, stmtNode)}}
	case "assert_statement":
		conditionExp := convertSimpleExpression(ctx, firstNamedChild(ctx, stmtNode), "assert condition")
		return []gosrc.Statement{&gosrc.IfStatement{
			Condition: &gosrc.UnaryExpression{Operator: "!", Operand: conditionExp},
			Body:      []gosrc.Statement{&gosrc.GoStatement{Source: "panic(\"assertion failed\")"}},
		}}
	case "expression_statement":
		return convertExpressionStatement(ctx, stmtNode)
	case "return_statement":
		return convertReturnStatement(ctx, stmtNode)
	case "if_statement":
		ifStatement := convertIfStatement(ctx, stmtNode)
		return []gosrc.Statement{&ifStatement}
	case "break_statement":
		return []gosrc.Statement{&gosrc.GoStatement{Source: "break"}}
	case "continue_statement":
		return []gosrc.Statement{&gosrc.GoStatement{Source: "continue"}}
	case "local_variable_declaration":
		return convertLocalVariableDeclaration(ctx, stmtNode)
	case "while_statement":
		return convertWhileStatement(ctx, stmtNode)
	case "do_statement":
		return convertDoStatement(ctx, stmtNode)
	case "for_statement":
		return convertJavaForStatement(ctx, stmtNode)
	case "enhanced_for_statement":
		return convertEnhancedForStatement(ctx, stmtNode)
	case "throw_statement":
		return convertThrowStatement(ctx, stmtNode)
	default:
		unhandledChild(ctx, stmtNode, "statement")
		return nil
	}
}

func firstNamedChild(ctx *MigrationContext, node *syntax.Node) *syntax.Node {
	for _, child := range node.Children {
		if child.Named && !isIgnored(child) {
			return child
		}
	}
	fatalError(ctx, node, fmt.Sprintf("%s has no operand", node.Kind), string(node.Kind))
	return nil
}

func convertThrowStatement(ctx *MigrationContext, stmtNode *syntax.Node) []gosrc.Statement {
	valueNode := firstNamedChild(ctx, stmtNode)
	if valueNode.Kind == "object_creation_expression" {
		var args []gosrc.Expression
		if argsNode := valueNode.ChildByField("arguments"); argsNode != nil {
			args = convertArgumentList(ctx, argsNode)
		}
		if len(args) == 1 {
			return []gosrc.Statement{&gosrc.CallStatement{Exp: &gosrc.CallExpression{Function: "panic", Args: args}}}
		}
		exception := lastSegment(textOf(valueNode.ChildByField("type")))
		return []gosrc.Statement{&gosrc.GoStatement{Source: fmt.Sprintf("panic(%q)", exception)}}
	}
	value, init := convertExpression(ctx, valueNode)
	return append(init, &gosrc.CallStatement{Exp: &gosrc.CallExpression{Function: "panic", Args: []gosrc.Expression{value}}})
}

func convertEnhancedForStatement(ctx *MigrationContext, stmtNode *syntax.Node) []gosrc.Statement {
	varName := mustField(ctx, stmtNode, "name").Text
	valueExpr, stmts := convertExpression(ctx, mustField(ctx, stmtNode, "value"))
	ctx.declareLocal(varName)
	bodyStmts := convertStatementBlock(ctx, mustField(ctx, stmtNode, "body"))
	return append(stmts, &gosrc.RangeForStatement{
		ValueVar:       varName,
		CollectionExpr: valueExpr,
		Body:           bodyStmts,
	})
}

func convertJavaForStatement(ctx *MigrationContext, stmtNode *syntax.Node) []gosrc.Statement {
	var before []gosrc.Statement
	var initStmt gosrc.Statement
	var inits []gosrc.Statement
	for _, initNode := range childrenByField(stmtNode, "init") {
		if initNode.Kind == "local_variable_declaration" {
			inits = append(inits, convertLocalVariableDeclaration(ctx, initNode)...)
			continue
		}
		_, stmts := convertExpressionAsStatement(ctx, initNode)
		inits = append(inits, stmts...)
	}
	if len(inits) == 1 && isSimpleStatement(inits[0]) {
		initStmt = inits[0]
	} else {
		before = append(before, inits...)
	}

	var conditionExp gosrc.Expression
	if conditionNode := stmtNode.ChildByField("condition"); conditionNode != nil {
		conditionExp = convertSimpleExpression(ctx, conditionNode, "for condition")
	}

	var updates []gosrc.Statement
	for _, updateNode := range childrenByField(stmtNode, "update") {
		_, stmts := convertExpressionAsStatement(ctx, updateNode)
		updates = append(updates, stmts...)
	}
	ensure(ctx, stmtNode, "for loop with more than one update", len(updates) < 2)
	var postStmt gosrc.Statement
	if len(updates) == 1 {
		postStmt = updates[0]
	}

	bodyStmts := convertStatementBlock(ctx, mustField(ctx, stmtNode, "body"))
	if initStmt == nil && postStmt == nil && conditionExp == nil {
		return append(before, &gosrc.ForStatement{Body: bodyStmts})
	}
	return append(before, &gosrc.ForStatement{
		Init:      initStmt,
		Condition: conditionExp,
		Post:      postStmt,
		Body:      bodyStmts,
	})
}

// isSimpleStatement reports statements Go accepts in a for clause
func isSimpleStatement(stmt gosrc.Statement) bool {
	switch s := stmt.(type) {
	case *gosrc.VarDeclaration:
		return s.Value != nil
	case *gosrc.AssignStatement, *gosrc.GoStatement, *gosrc.CallStatement:
		return true
	}
	return false
}

func childrenByField(node *syntax.Node, field string) []*syntax.Node {
	var result []*syntax.Node
	for _, child := range node.Children {
		if child.Field == field {
			result = append(result, child)
		}
	}
	return result
}

func convertWhileStatement(ctx *MigrationContext, stmtNode *syntax.Node) []gosrc.Statement {
	conditionExp, initStmts := convertExpression(ctx, mustField(ctx, stmtNode, "condition"))
	bodyStmts := convertStatementBlock(ctx, mustField(ctx, stmtNode, "body"))
	return append(initStmts, &gosrc.ForStatement{
		Condition: conditionExp,
		Body:      bodyStmts,
	})
}

// convertDoStatement runs the body once before testing the condition
func convertDoStatement(ctx *MigrationContext, stmtNode *syntax.Node) []gosrc.Statement {
	bodyStmts := convertStatementBlock(ctx, mustField(ctx, stmtNode, "body"))
	conditionExp := convertSimpleExpression(ctx, mustField(ctx, stmtNode, "condition"), "do condition")
	bodyStmts = append(bodyStmts, &gosrc.IfStatement{
		Condition: &gosrc.UnaryExpression{Operator: "!", Operand: conditionExp},
		Body:      []gosrc.Statement{&gosrc.GoStatement{Source: "break"}},
	})
	return []gosrc.Statement{&gosrc.ForStatement{Body: bodyStmts}}
}

func convertLocalVariableDeclaration(ctx *MigrationContext, stmtNode *syntax.Node) []gosrc.Statement {
	if modifiersOf(stmtNode)&memberOnly != 0 {
		fatalError(ctx, stmtNode, "member modifiers on a local variable: "+modifiersOf(stmtNode).String(), string(stmtNode.Kind))
	}
	typeNode := mustField(ctx, stmtNode, "type")
	var ty gosrc.Type
	if !isVarPlaceholder(typeNode) {
		var ok bool
		ty, ok = TryParseType(ctx, typeNode)
		if !ok {
			fatalError(ctx, typeNode, "unable to parse type in local_variable_declaration", "type parsing")
		}
	}
	var stmts []gosrc.Statement
	for _, declNode := range stmtNode.ChildrenOfKind("variable_declarator") {
		decl := convertVariableDecl(ctx, declNode, ty)
		ctx.declareLocal(decl.name)
		if decl.value == nil || decl.value == gosrc.Expression(&gosrc.NIL) {
			ensure(ctx, declNode, "var declaration without initializer", ty != "")
			stmts = append(stmts, &gosrc.VarDeclaration{Name: decl.name, Ty: ty})
			continue
		}
		stmts = append(stmts, &gosrc.VarDeclaration{
			Name:  decl.name,
			Ty:    ty,
			Value: decl.value,
		})
	}
	return stmts
}

func convertReturnStatement(ctx *MigrationContext, stmtNode *syntax.Node) []gosrc.Statement {
	for _, child := range stmtNode.Children {
		if child.Named && !isIgnored(child) {
			value, initialStmts := convertExpression(ctx, child)
			return append(initialStmts, &gosrc.ReturnStatement{Value: value})
		}
	}
	return []gosrc.Statement{&gosrc.ReturnStatement{}}
}

func convertExpressionStatement(ctx *MigrationContext, stmtNode *syntax.Node) []gosrc.Statement {
	var body []gosrc.Statement
	for _, child := range stmtNode.Children {
		if isIgnored(child) {
			continue
		}
		_, stmts := convertExpressionAsStatement(ctx, child)
		body = append(body, stmts...)
	}
	return body
}

// convertExpressionAsStatement converts an expression evaluated for its side
// effects
func convertExpressionAsStatement(ctx *MigrationContext, node *syntax.Node) (gosrc.Expression, []gosrc.Statement) {
	switch node.Kind {
	case "assignment_expression":
		return convertAssignmentExpression(ctx, node)
	case "update_expression":
		return nil, []gosrc.Statement{&gosrc.GoStatement{Source: convertUpdateExpression(ctx, node)}}
	case "method_invocation":
		// list.add(item) -> list = append(list, item)
		objectNode := node.ChildByField("object")
		if textOf(node.ChildByField("name")) == "add" && objectNode != nil {
			args := convertArgumentList(ctx, mustField(ctx, node, "arguments"))
			if len(args) == 1 {
				object := convertSimpleExpression(ctx, objectNode, "add receiver")
				return nil, []gosrc.Statement{&gosrc.AssignStatement{
					Ref: gosrc.VarRef{Ref: object.ToSource()},
					Value: &gosrc.CallExpression{
						Function: "append",
						Args:     []gosrc.Expression{object, args[0]},
					},
				}}
			}
		}
		callExpression, initStmts := convertExpression(ctx, node)
		return nil, append(initStmts, &gosrc.CallStatement{Exp: callExpression})
	default:
		expr, initStmts := convertExpression(ctx, node)
		return nil, append(initStmts, &gosrc.GoStatement{Source: expr.ToSource()})
	}
}

func convertIfStatement(ctx *MigrationContext, stmtNode *syntax.Node) gosrc.IfStatement {
	conditionExp := convertSimpleExpression(ctx, mustField(ctx, stmtNode, "condition"), "if condition")
	ifStatement := gosrc.IfStatement{
		Condition: conditionExp,
		Body:      convertStatementBlock(ctx, mustField(ctx, stmtNode, "consequence")),
	}
	alternative := stmtNode.ChildByField("alternative")
	switch {
	case alternative == nil:
	case alternative.Kind == "if_statement":
		ifStatement.ElseIf = append(ifStatement.ElseIf, convertIfStatement(ctx, alternative))
	default:
		ifStatement.ElseStmts = convertStatementBlock(ctx, alternative)
	}
	return ifStatement
}
