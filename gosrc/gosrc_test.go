package gosrc

import (
	"testing"

	"github.com/heshanpadmasiri/codeconv/syntax"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterSource() *GoSource {
	ret := Type("*Counter")
	return &GoSource{
		Imports: []Import{{PackagePath: "fmt"}},
		Structs: []Struct{{
			Name:     "counter",
			JavaName: "Counter",
			Public:   true,
			Fields:   []StructField{{Name: "count", Ty: TypeInt, Origin: 5}},
			Comments: []string{"migrated from Counter.java:1:1"},
			Origin:   2,
		}},
		Vars: []ModuleVar{{Name: "limit", Value: &IntLiteral{Value: 10}}},
		Functions: []Function{{
			Name:        "newCounter",
			JavaName:    "Counter",
			Public:      true,
			ReturnType:  &ret,
			Body:        []Statement{&GoStatement{Source: "return &Counter{}"}},
			Owner:       "counter",
			Constructor: true,
			Origin:      3,
		}},
		Methods: []Method{{
			Function: Function{
				Name:     "increment",
				JavaName: "increment",
				Public:   true,
				Body: []Statement{
					&AssignStatement{
						Ref:   VarRef{Ref: "this.count"},
						Value: &BinaryExpression{Left: &VarRef{Ref: "this.count"}, Operator: "+", Right: &IntLiteral{Value: 1}},
					},
					&CallStatement{Exp: &CallExpression{Function: "fmt.Println", Args: []Expression{&VarRef{Ref: "this.count"}}}},
				},
				Owner:  "counter",
				Origin: 4,
			},
			Receiver: Param{Name: SelfRef, Ty: "*Counter"},
		}},
	}
}

func TestRender(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, t.Name(), []byte(counterSource().ToSource(Config{PackageName: "demo", LicenseHeader: "// Header"})))
}

func TestRenderDefaultPackage(t *testing.T) {
	out := (&GoSource{}).ToSource(Config{})
	assert.Equal(t, "package "+PackageName+"\n\n", out)
}

func TestTree(t *testing.T) {
	src := counterSource()
	tree := src.Tree("counter.go", DefaultConfig())
	assert.Equal(t, "counter.go", tree.Name)
	assert.Equal(t, Language, tree.Language)
	assert.Equal(t, src.ToSource(DefaultConfig()), tree.Text)

	root := tree.Root
	require.Len(t, root.Children, 2)
	block, vars := root.Children[0], root.Children[1]
	assert.Equal(t, KindTypeBlock, block.Kind)
	assert.Equal(t, "Counter", block.Name)
	assert.Equal(t, "Counter", block.Symbol)
	assert.Equal(t, syntax.NodeID(2), block.Origin)
	assert.Equal(t, KindVar, vars.Kind)
	assert.Equal(t, "var limit = 10", vars.Text)

	kinds := []syntax.Kind{}
	for _, child := range block.Children {
		kinds = append(kinds, child.Kind)
	}
	assert.Equal(t, []syntax.Kind{KindTypeHeader, KindField, KindMethodBlock, KindMethodBlock}, kinds)

	ids := map[syntax.NodeID]bool{root.ID: true}
	for n := range syntax.Descendants(root) {
		assert.False(t, ids[n.ID], "duplicate id %d", n.ID)
		ids[n.ID] = true
	}

	method, ok := syntax.Find(syntax.Descendants(root), syntax.WithOrigin(4))
	require.True(t, ok)
	assert.Equal(t, "Increment", method.Name)
	assert.Equal(t, "func (this *Counter) Increment()", method.ChildByField("signature").Text)
}

func TestImportantChildren(t *testing.T) {
	root := counterSource().Tree("counter.go", DefaultConfig()).Root
	block := root.Children[0]

	members, ok := ImportantChildren(block)
	require.True(t, ok)
	require.Len(t, members, 3)
	assert.Equal(t, KindField, members[0].Kind)
	assert.Equal(t, "count int", members[0].Text)

	stmts, ok := ImportantChildren(members[2])
	require.True(t, ok)
	require.Len(t, stmts, 2)
	assert.Equal(t, KindAssignment, stmts[0].Kind)
	assert.Equal(t, "this.count = (this.count + 1)", stmts[0].Text)
	assert.Equal(t, KindCall, stmts[1].Kind)

	_, ok = ImportantChildren(root)
	assert.False(t, ok)
}

func TestStatementKind(t *testing.T) {
	tests := []struct {
		stmt Statement
		want syntax.Kind
	}{
		{&VarDeclaration{Name: "x", Value: &IntLiteral{Value: 1}}, KindShortVarDecl},
		{&VarDeclaration{Name: "x", Ty: TypeInt}, KindVar},
		{&ReturnStatement{}, KindReturn},
		{&IfStatement{Condition: &BooleanLiteral{Value: true}}, KindIf},
		{&RangeForStatement{CollectionExpr: &VarRef{Ref: "xs"}}, KindFor},
		{&CommentStmt{Comments: []string{"note"}}, KindComment},
		{&GoStatement{Source: "x++"}, KindStatement},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statementKind(tt.stmt), tt.stmt.ToSource())
	}
}

func TestCheck(t *testing.T) {
	valid := &syntax.Tree{Name: "a.go", Text: "package p\n\nfunc f() int { return 1 }\n", Root: &syntax.Node{ID: 1}}
	c := NewCompilation("p", nil, syntax.OutputLibrary).AddTree(valid)
	assert.Empty(t, c.Diagnostics())

	t.Run("type errors", func(t *testing.T) {
		bad := &syntax.Tree{Name: "b.go", Text: "package p\n\nfunc g() int { return missing }\n", Root: &syntax.Node{ID: 1}}
		diags := c.AddTree(bad).Diagnostics()
		require.Len(t, diags, 1)
		assert.Equal(t, "b.go", diags[0].Tree)
		assert.Equal(t, 3, diags[0].Position.Line)
		assert.Equal(t, syntax.SeverityError, diags[0].Severity)
		assert.Contains(t, diags[0].Message, "undefined: missing")
	})

	t.Run("parse errors", func(t *testing.T) {
		broken := &syntax.Tree{Name: "c.go", Text: "package p\n\nfunc {\n", Root: &syntax.Node{ID: 1}}
		diags := c.AddTree(broken).Diagnostics()
		require.NotEmpty(t, diags)
		assert.Equal(t, "c.go", diags[0].Tree)
	})

	t.Run("converter warnings come first", func(t *testing.T) {
		warned := &syntax.Tree{
			Name:        "d.go",
			Text:        "package p\n",
			Root:        &syntax.Node{ID: 1},
			Diagnostics: []syntax.Diagnostic{{Tree: "D.java", Severity: syntax.SeverityWarning, Message: "class D: unsupported"}},
		}
		diags := c.AddTree(warned).Diagnostics()
		require.Len(t, diags, 1)
		assert.Equal(t, "class D: unsupported", diags[0].Message)
	})
}
