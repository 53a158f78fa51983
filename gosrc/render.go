package gosrc

import (
	"fmt"
	"strings"
)

// ToSource renders the whole file
func (s *GoSource) ToSource(config Config) string {
	sb := strings.Builder{}
	if config.LicenseHeader != "" {
		sb.WriteString(config.LicenseHeader)
		if !strings.HasSuffix(config.LicenseHeader, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	packageName := config.PackageName
	if packageName == "" {
		packageName = PackageName
	}
	sb.WriteString("package ")
	sb.WriteString(packageName)
	sb.WriteString("\n\n")
	if len(s.Imports) > 0 {
		sb.WriteString("import (\n")
		for _, imp := range s.Imports {
			sb.WriteString("\t")
			sb.WriteString(imp.ToSource())
			sb.WriteString("\n")
		}
		sb.WriteString(")\n\n")
	}
	for _, iface := range s.Interfaces {
		writeDecl(&sb, &iface)
	}
	for _, strct := range s.Structs {
		writeDecl(&sb, &strct)
	}
	for _, v := range s.Vars {
		writeDecl(&sb, &v)
	}
	for _, fn := range s.Functions {
		writeDecl(&sb, &fn)
	}
	for _, method := range s.Methods {
		writeDecl(&sb, &method)
	}
	for _, failed := range s.FailedMigrations {
		writeDecl(&sb, &failed)
	}
	return sb.String()
}

func writeDecl(sb *strings.Builder, decl SourceElement) {
	sb.WriteString(decl.ToSource())
	sb.WriteString("\n")
}

// ToSource renders a failed migration as a FIXME comment block
func (f *FailedMigration) ToSource() string {
	sb := strings.Builder{}
	sb.WriteString("// FIXME: Failed to migrate\n")
	fmt.Fprintf(&sb, "// Location: %s\n", f.Location)
	fmt.Fprintf(&sb, "// Error: %s\n", f.ErrorMessage)
	writeCommentedLines(&sb, "Java source", f.JavaSource)
	writeCommentedLines(&sb, "S-expression", f.SExpr)
	return sb.String()
}

func writeCommentedLines(sb *strings.Builder, title, text string) {
	if text == "" {
		return
	}
	fmt.Fprintf(sb, "// %s:\n", title)
	for line := range strings.SplitSeq(text, "\n") {
		sb.WriteString("// " + line + "\n")
	}
}

func (imp *Import) ToSource() string {
	if imp.Alias != nil {
		return fmt.Sprintf("%s %q", *imp.Alias, imp.PackagePath)
	}
	return fmt.Sprintf("%q", imp.PackagePath)
}

func (i *Interface) ToSource() string {
	sb := strings.Builder{}
	AddComments(&sb, i.Comments)
	sb.WriteString("type ")
	sb.WriteString(ToIdentifier(i.Name, i.Public))
	sb.WriteString(" interface {\n")
	for _, embed := range i.Embeds {
		sb.WriteString("\t")
		sb.WriteString(embed.ToSource())
		sb.WriteString("\n")
	}
	for _, method := range i.Methods {
		sb.WriteString("\t")
		sb.WriteString(ToIdentifier(method.Name, method.Public))
		writeSignature(&sb, method.Params, method.ReturnType)
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

func (s *Struct) ToSource() string {
	sb := strings.Builder{}
	AddComments(&sb, s.Comments)
	sb.WriteString("type ")
	sb.WriteString(ToIdentifier(s.Name, s.Public))
	sb.WriteString(" struct {\n")
	for _, include := range s.Includes {
		sb.WriteString("\t")
		sb.WriteString(include.ToSource())
		sb.WriteString("\n")
	}
	for _, field := range s.Fields {
		for line := range strings.SplitSeq(field.ToSource(), "\n") {
			sb.WriteString("\t")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}

func (f *StructField) ToSource() string {
	sb := strings.Builder{}
	AddComments(&sb, f.Comments)
	fmt.Fprintf(&sb, "%s %s", ToIdentifier(f.Name, f.Public), f.Ty.ToSource())
	return sb.String()
}

// Signature renders the declaration line of the function without its body
func (f *Function) Signature() string {
	sb := strings.Builder{}
	sb.WriteString("func ")
	sb.WriteString(ToIdentifier(f.Name, f.Public))
	writeSignature(&sb, f.Params, f.ReturnType)
	return sb.String()
}

func (f *Function) ToSource() string {
	return finishFunction(f.Signature(), f)
}

// Signature renders the declaration line of the method without its body
func (f *Method) Signature() string {
	sb := strings.Builder{}
	sb.WriteString("func (")
	sb.WriteString(f.Receiver.ToSource())
	sb.WriteString(") ")
	sb.WriteString(ToIdentifier(f.Name, f.Public))
	writeSignature(&sb, f.Params, f.ReturnType)
	return sb.String()
}

func (f *Method) ToSource() string {
	return finishFunction(f.Signature(), &f.Function)
}

func writeSignature(sb *strings.Builder, params []Param, returnType *Type) {
	sb.WriteString("(")
	for i, param := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.ToSource())
	}
	sb.WriteString(")")
	if returnType != nil {
		sb.WriteString(" ")
		sb.WriteString(returnType.ToSource())
	}
}

func finishFunction(signature string, f *Function) string {
	sb := strings.Builder{}
	AddComments(&sb, f.Comments)
	sb.WriteString(signature)
	sb.WriteString(" ")
	writeBlock(&sb, f.Body)
	sb.WriteString("\n")
	return sb.String()
}

// writeBlock writes stmts between braces, one level deeper than the braces
func writeBlock(sb *strings.Builder, stmts []Statement) {
	sb.WriteString("{\n")
	for _, stmt := range stmts {
		for line := range strings.SplitSeq(stmt.ToSource(), "\n") {
			if line == "" {
				continue
			}
			sb.WriteString("\t")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("}")
}

func (p *Param) ToSource() string {
	return fmt.Sprintf("%s %s", p.Name, p.Ty.ToSource())
}

func (v *ModuleVar) ToSource() string {
	switch {
	case v.Value == nil:
		return fmt.Sprintf("var %s %s", v.Name, v.Ty.ToSource())
	case v.Ty != "":
		return fmt.Sprintf("var %s %s = %s", v.Name, v.Ty.ToSource(), v.Value.ToSource())
	default:
		return fmt.Sprintf("var %s = %s", v.Name, v.Value.ToSource())
	}
}

func (t *Type) ToSource() string {
	return string(*t)
}

func (t *Type) IsArray() bool {
	return strings.HasPrefix(string(*t), "[]")
}

// Statement ToSource methods

func (s *GoStatement) ToSource() string {
	return s.Source
}

func (s *IfStatement) ToSource() string {
	sb := strings.Builder{}
	sb.WriteString("if ")
	sb.WriteString(s.Condition.ToSource())
	sb.WriteString(" ")
	writeBlock(&sb, s.Body)
	for _, elseIf := range s.ElseIf {
		sb.WriteString(" else ")
		sb.WriteString(elseIf.ToSource())
	}
	if len(s.ElseStmts) > 0 {
		sb.WriteString(" else ")
		writeBlock(&sb, s.ElseStmts)
	}
	return sb.String()
}

func (s *ForStatement) ToSource() string {
	sb := strings.Builder{}
	sb.WriteString("for ")
	if s.Init != nil || s.Post != nil {
		if s.Init != nil {
			sb.WriteString(s.Init.ToSource())
		}
		sb.WriteString("; ")
		if s.Condition != nil {
			sb.WriteString(s.Condition.ToSource())
		}
		sb.WriteString("; ")
		if s.Post != nil {
			sb.WriteString(s.Post.ToSource())
		}
		sb.WriteString(" ")
	} else if s.Condition != nil {
		sb.WriteString(s.Condition.ToSource())
		sb.WriteString(" ")
	}
	writeBlock(&sb, s.Body)
	return sb.String()
}

func (s *RangeForStatement) ToSource() string {
	sb := strings.Builder{}
	sb.WriteString("for ")
	sb.WriteString(orBlank(s.IndexVar))
	sb.WriteString(", ")
	sb.WriteString(orBlank(s.ValueVar))
	sb.WriteString(" := range ")
	sb.WriteString(s.CollectionExpr.ToSource())
	sb.WriteString(" ")
	writeBlock(&sb, s.Body)
	return sb.String()
}

func orBlank(name string) string {
	if name == "" {
		return "_"
	}
	return name
}

func (s *ReturnStatement) ToSource() string {
	if s.Value == nil {
		return "return"
	}
	return fmt.Sprintf("return %s", s.Value.ToSource())
}

func (s *VarDeclaration) ToSource() string {
	if s.Value != nil {
		return fmt.Sprintf("%s := %s", s.Name, s.Value.ToSource())
	}
	return fmt.Sprintf("var %s %s", s.Name, s.Ty.ToSource())
}

func (s *AssignStatement) ToSource() string {
	return fmt.Sprintf("%s = %s", s.Ref.ToSource(), s.Value.ToSource())
}

func (s *CallStatement) ToSource() string {
	return s.Exp.ToSource()
}

func (s *BlockStatement) ToSource() string {
	sb := strings.Builder{}
	writeBlock(&sb, s.Body)
	return sb.String()
}

func (s *CommentStmt) ToSource() string {
	sb := strings.Builder{}
	AddComments(&sb, s.Comments)
	return strings.TrimSuffix(sb.String(), "\n")
}

// Expression ToSource methods

func (e *GoExpression) ToSource() string {
	return e.Source
}

func (e *CastExpression) ToSource() string {
	return fmt.Sprintf("%s(%s)", e.Ty.ToSource(), e.Value.ToSource())
}

func (e *CallExpression) ToSource() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.ToSource()
	}
	return fmt.Sprintf("%s(%s)", e.Function, strings.Join(args, ", "))
}

func (e *VarRef) ToSource() string {
	return e.Ref
}

func (e *BooleanLiteral) ToSource() string {
	return fmt.Sprintf("%t", e.Value)
}

func (e *IntLiteral) ToSource() string {
	return fmt.Sprintf("%d", e.Value)
}

func (e *CharLiteral) ToSource() string {
	return e.Value
}

func (e *ArrayLiteral) ToSource() string {
	elementTypeStr := e.ElementType.ToSource()
	if !strings.HasPrefix(elementTypeStr, "[]") {
		elementTypeStr = "[]" + elementTypeStr
	}
	elements := make([]string, len(e.Elements))
	for i, elem := range e.Elements {
		elements[i] = elem.ToSource()
	}
	return fmt.Sprintf("%s{%s}", elementTypeStr, strings.Join(elements, ", "))
}

func (e *BinaryExpression) ToSource() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.ToSource(), e.Operator, e.Right.ToSource())
}

func (e *UnaryExpression) ToSource() string {
	return fmt.Sprintf("(%s%s)", e.Operator, e.Operand.ToSource())
}

func (e *UnhandledExpression) ToSource() string {
	return e.Text
}

// Helper functions

// ToIdentifier converts a name to a public or private identifier
func ToIdentifier(name string, public bool) string {
	if public {
		return CapitalizeFirstLetter(name)
	}
	return LowercaseFirstLetter(name)
}

// CapitalizeFirstLetter capitalizes the first letter of a string
func CapitalizeFirstLetter(name string) string {
	if len(name) == 0 {
		return name
	}
	first := name[0]
	if first >= 'a' && first <= 'z' {
		first = first - 'a' + 'A'
	}
	return string(first) + name[1:]
}

// LowercaseFirstLetter lowercases the first letter of a string
func LowercaseFirstLetter(name string) string {
	if len(name) == 0 {
		return name
	}
	first := name[0]
	if first >= 'A' && first <= 'Z' {
		first = first - 'A' + 'a'
	}
	return string(first) + name[1:]
}

// AddComments adds comment lines to a string builder
func AddComments(sb *strings.Builder, comments []string) {
	for _, comment := range comments {
		sb.WriteString("// ")
		sb.WriteString(comment)
		sb.WriteString("\n")
	}
}
