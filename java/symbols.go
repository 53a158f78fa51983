package java

import (
	"github.com/heshanpadmasiri/codeconv/gosrc"
	"github.com/heshanpadmasiri/codeconv/syntax"
)

type memberInfo struct {
	public bool
	static bool
	goName string // set when the Go name is not derived from the Java name
}

type constructorInfo struct {
	name  string
	arity int
}

type classInfo struct {
	javaName     string
	goName       string
	public       bool
	isInterface  bool
	fields       map[string]memberInfo
	methods      map[string]memberInfo
	constructors []constructorInfo
	ctorNodes    []*syntax.Node
	record       *syntax.Node // declaration whose components form the canonical constructor
	fieldInits   bool
}

// symbolTable records the declarations visible to a conversion so that
// references can be rewritten to the Go names the declarations get
type symbolTable struct {
	classes map[string]*classInfo
}

func newSymbolTable() *symbolTable {
	return &symbolTable{classes: map[string]*classInfo{}}
}

func (s *symbolTable) collect(root *syntax.Node) {
	if root == nil {
		return
	}
	for n := range syntax.Descendants(root) {
		switch n.Kind {
		case "class_declaration":
			s.collectType(n, false)
		case "interface_declaration":
			s.collectType(n, true)
		case "enum_declaration", "record_declaration":
			s.collectType(n, false)
		}
	}
}

func (s *symbolTable) collectType(node *syntax.Node, isInterface bool) {
	name := node.Name
	if name == "" {
		return
	}
	public := isInterface || modifiersOf(node).isPublic() || (node.Kind == "enum_declaration" && !hasAccessModifier(node))
	info := &classInfo{
		javaName:    name,
		goName:      gosrc.ToIdentifier(name, public),
		public:      public,
		isInterface: isInterface,
		fields:      map[string]memberInfo{},
		methods:     map[string]memberInfo{},
	}
	s.classes[name] = info
	if node.Kind == "record_declaration" {
		info.record = node
		for _, param := range formalParameterNodes(node.ChildByField("parameters")) {
			component := textOf(param.ChildByField("name"))
			info.fields[component] = memberInfo{}
			info.methods[component] = memberInfo{public: true}
		}
	}
	body := node.ChildByField("body")
	if body == nil {
		return
	}
	for _, member := range bodyMembers(body) {
		mods := modifiersOf(member)
		switch member.Kind {
		case "enum_constant":
			constant := textOf(member.ChildByField("name"))
			info.fields[constant] = memberInfo{public: public, static: true, goName: enumConstantName(info.goName, constant)}
		case "field_declaration":
			for _, decl := range member.ChildrenOfKind("variable_declarator") {
				info.fields[textOf(decl.ChildByField("name"))] = memberInfo{public: mods.isPublic(), static: mods&STATIC != 0}
				if mods&STATIC == 0 && decl.ChildByField("value") != nil {
					info.fieldInits = true
				}
			}
		case "method_declaration":
			info.methods[member.Name] = memberInfo{public: isInterface || mods.isPublic(), static: mods&STATIC != 0}
		case "constructor_declaration":
			info.ctorNodes = append(info.ctorNodes, member)
		}
	}
}

// bodyMembers flattens the declarations of a class or enum body
func bodyMembers(body *syntax.Node) []*syntax.Node {
	var members []*syntax.Node
	for _, child := range body.Children {
		if child.Kind == "enum_body_declarations" {
			members = append(members, child.Children...)
			continue
		}
		members = append(members, child)
	}
	return members
}

// resolveConstructors names the constructors of every collected class. It
// runs once all types are known because parameter types refer to them.
func (s *symbolTable) resolveConstructors(typeMappings map[string]string) {
	ctx := &MigrationContext{symbols: s, TypeMappings: typeMappings}
	for _, info := range s.classes {
		info.constructors = info.constructors[:0]
		if len(info.ctorNodes) == 0 && info.record == nil && info.fieldInits && !info.isInterface {
			info.constructors = append(info.constructors, constructorInfo{
				name: constructorName(info.public, gosrc.Type(info.goName)),
			})
		}
		if info.record != nil {
			info.constructors = append(info.constructors, constructorInfo{
				name:  analyzeConstructorName(ctx, info.record, info),
				arity: len(formalParameterNodes(info.record.ChildByField("parameters"))),
			})
		}
		for _, node := range info.ctorNodes {
			info.constructors = append(info.constructors, constructorInfo{
				name:  analyzeConstructorName(ctx, node, info),
				arity: len(formalParameterNodes(node.ChildByField("parameters"))),
			})
		}
	}
}

// analyzeConstructorName computes the Go name of a constructor. Parameter
// types that cannot be converted leave the name without the From suffix; the
// declaration itself reports the failure when it is converted.
func analyzeConstructorName(ctx *MigrationContext, node *syntax.Node, info *classInfo) (name string) {
	mods := modifiersOf(node)
	name = constructorName(mods.isPublic(), gosrc.Type(info.goName))
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(migrationPanic); !ok {
				panic(r)
			}
		}
	}()
	params := convertFormalParameters(ctx, node.ChildByField("parameters"))
	return constructorName(mods.isPublic(), gosrc.Type(info.goName), params...)
}

func formalParameterNodes(params *syntax.Node) []*syntax.Node {
	if params == nil {
		return nil
	}
	return params.ChildrenOfKind("formal_parameter", "spread_parameter")
}

// constructorFor picks the constructor of class to call with arity arguments
func (c *classInfo) constructorFor(arity int) (string, bool) {
	for _, ctor := range c.constructors {
		if ctor.arity == arity {
			return ctor.name, true
		}
	}
	return "", false
}
