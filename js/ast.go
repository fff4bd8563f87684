package js

import (
	"reflect"
	"strconv"
	"strings"
)

// NodeType is the discriminant of an AST node.
type NodeType uint16

// NodeType values.
const (
	ErrorNode NodeType = iota
	PlaceholderNode
	ProgramNode
	InterpreterDirectiveNode
	DirectiveNode

	// statements
	ExpressionStatementNode
	BlockStatementNode
	EmptyStatementNode
	DebuggerStatementNode
	WithStatementNode
	ReturnStatementNode
	LabeledStatementNode
	BreakStatementNode
	ContinueStatementNode
	IfStatementNode
	SwitchStatementNode
	SwitchCaseNode
	ThrowStatementNode
	TryStatementNode
	CatchClauseNode
	WhileStatementNode
	DoWhileStatementNode
	ForStatementNode
	ForInStatementNode
	ForOfStatementNode
	FunctionDeclarationNode
	VariableDeclarationNode
	VariableDeclaratorNode
	ClassDeclarationNode

	// classes
	ClassBodyNode
	ClassMethodNode
	ClassPrivateMethodNode
	ClassPropertyNode
	ClassPrivatePropertyNode
	ClassAccessorPropertyNode
	StaticBlockNode
	DecoratorNode

	// expressions
	IdentifierNode
	PrivateNameNode
	NullLiteralNode
	BooleanLiteralNode
	NumericLiteralNode
	BigIntLiteralNode
	DecimalLiteralNode
	StringLiteralNode
	RegExpLiteralNode
	TemplateLiteralNode
	TemplateElementNode
	TaggedTemplateExpressionNode
	ThisExpressionNode
	SuperNode
	ImportNode
	MetaPropertyNode
	ArrayExpressionNode
	ObjectExpressionNode
	ObjectPropertyNode
	ObjectMethodNode
	RecordExpressionNode
	TupleExpressionNode
	FunctionExpressionNode
	ArrowFunctionExpressionNode
	ClassExpressionNode
	UnaryExpressionNode
	UpdateExpressionNode
	BinaryExpressionNode
	LogicalExpressionNode
	AssignmentExpressionNode
	ConditionalExpressionNode
	SequenceExpressionNode
	ParenthesizedExpressionNode
	MemberExpressionNode
	OptionalMemberExpressionNode
	CallExpressionNode
	OptionalCallExpressionNode
	NewExpressionNode
	SpreadElementNode
	YieldExpressionNode
	AwaitExpressionNode

	// patterns
	ObjectPatternNode
	ArrayPatternNode
	AssignmentPatternNode
	RestElementNode

	// modules
	ImportDeclarationNode
	ImportSpecifierNode
	ImportDefaultSpecifierNode
	ImportNamespaceSpecifierNode
	ImportAttributeNode
	ExportNamedDeclarationNode
	ExportSpecifierNode
	ExportNamespaceSpecifierNode
	ExportDefaultDeclarationNode
	ExportAllDeclarationNode

	// TypeScript
	TSAnyKeywordNode
	TSUnknownKeywordNode
	TSNumberKeywordNode
	TSBigIntKeywordNode
	TSBooleanKeywordNode
	TSStringKeywordNode
	TSSymbolKeywordNode
	TSObjectKeywordNode
	TSNeverKeywordNode
	TSUndefinedKeywordNode
	TSIntrinsicKeywordNode
	TSVoidKeywordNode
	TSNullKeywordNode
	TSThisTypeNode
	TSTypeAnnotationNode
	TSTypeParameterDeclarationNode
	TSTypeParameterNode
	TSTypeParameterInstantiationNode
	TSTypeReferenceNode
	TSQualifiedNameNode
	TSTypeQueryNode
	TSTypeOperatorNode
	TSInferTypeNode
	TSArrayTypeNode
	TSIndexedAccessTypeNode
	TSTupleTypeNode
	TSOptionalTypeNode
	TSRestTypeNode
	TSNamedTupleMemberNode
	TSUnionTypeNode
	TSIntersectionTypeNode
	TSFunctionTypeNode
	TSConstructorTypeNode
	TSConditionalTypeNode
	TSMappedTypeNode
	TSLiteralTypeNode
	TSTemplateLiteralTypeNode
	TSTypeLiteralNode
	TSPropertySignatureNode
	TSMethodSignatureNode
	TSCallSignatureDeclarationNode
	TSConstructSignatureDeclarationNode
	TSIndexSignatureNode
	TSTypePredicateNode
	TSImportTypeNode
	TSExpressionWithTypeArgumentsNode
	TSParameterPropertyNode
	TSInterfaceDeclarationNode
	TSInterfaceBodyNode
	TSTypeAliasDeclarationNode
	TSEnumDeclarationNode
	TSEnumMemberNode
	TSModuleDeclarationNode
	TSModuleBlockNode
	TSDeclareFunctionNode
	TSDeclareMethodNode
	TSImportEqualsDeclarationNode
	TSExternalModuleReferenceNode
	TSExportAssignmentNode
	TSNamespaceExportDeclarationNode
	TSAsExpressionNode
	TSSatisfiesExpressionNode
	TSTypeAssertionNode
	TSNonNullExpressionNode
	TSInstantiationExpressionNode
	TSTypeCastExpressionNode

	numNodeTypes
)

var nodeTypeNames = [numNodeTypes]string{
	"Error", "Placeholder", "Program", "InterpreterDirective", "Directive",

	"ExpressionStatement", "BlockStatement", "EmptyStatement", "DebuggerStatement", "WithStatement",
	"ReturnStatement", "LabeledStatement", "BreakStatement", "ContinueStatement", "IfStatement", "SwitchStatement",
	"SwitchCase", "ThrowStatement", "TryStatement", "CatchClause", "WhileStatement", "DoWhileStatement",
	"ForStatement", "ForInStatement", "ForOfStatement", "FunctionDeclaration", "VariableDeclaration",
	"VariableDeclarator", "ClassDeclaration",

	"ClassBody", "ClassMethod", "ClassPrivateMethod", "ClassProperty", "ClassPrivateProperty",
	"ClassAccessorProperty", "StaticBlock", "Decorator",

	"Identifier", "PrivateName", "NullLiteral", "BooleanLiteral", "NumericLiteral", "BigIntLiteral",
	"DecimalLiteral", "StringLiteral", "RegExpLiteral", "TemplateLiteral", "TemplateElement",
	"TaggedTemplateExpression", "ThisExpression", "Super", "Import", "MetaProperty", "ArrayExpression",
	"ObjectExpression", "ObjectProperty", "ObjectMethod", "RecordExpression", "TupleExpression",
	"FunctionExpression", "ArrowFunctionExpression", "ClassExpression", "UnaryExpression", "UpdateExpression",
	"BinaryExpression", "LogicalExpression", "AssignmentExpression", "ConditionalExpression",
	"SequenceExpression", "ParenthesizedExpression", "MemberExpression", "OptionalMemberExpression",
	"CallExpression", "OptionalCallExpression", "NewExpression", "SpreadElement", "YieldExpression",
	"AwaitExpression",

	"ObjectPattern", "ArrayPattern", "AssignmentPattern", "RestElement",

	"ImportDeclaration", "ImportSpecifier", "ImportDefaultSpecifier", "ImportNamespaceSpecifier",
	"ImportAttribute", "ExportNamedDeclaration", "ExportSpecifier", "ExportNamespaceSpecifier",
	"ExportDefaultDeclaration", "ExportAllDeclaration",

	"TSAnyKeyword", "TSUnknownKeyword", "TSNumberKeyword", "TSBigIntKeyword", "TSBooleanKeyword",
	"TSStringKeyword", "TSSymbolKeyword", "TSObjectKeyword", "TSNeverKeyword", "TSUndefinedKeyword",
	"TSIntrinsicKeyword", "TSVoidKeyword", "TSNullKeyword", "TSThisType", "TSTypeAnnotation",
	"TSTypeParameterDeclaration", "TSTypeParameter", "TSTypeParameterInstantiation", "TSTypeReference",
	"TSQualifiedName", "TSTypeQuery", "TSTypeOperator", "TSInferType", "TSArrayType", "TSIndexedAccessType",
	"TSTupleType", "TSOptionalType", "TSRestType", "TSNamedTupleMember", "TSUnionType", "TSIntersectionType",
	"TSFunctionType", "TSConstructorType", "TSConditionalType", "TSMappedType", "TSLiteralType",
	"TSTemplateLiteralType", "TSTypeLiteral", "TSPropertySignature", "TSMethodSignature",
	"TSCallSignatureDeclaration", "TSConstructSignatureDeclaration", "TSIndexSignature", "TSTypePredicate",
	"TSImportType", "TSExpressionWithTypeArguments", "TSParameterProperty", "TSInterfaceDeclaration",
	"TSInterfaceBody", "TSTypeAliasDeclaration", "TSEnumDeclaration", "TSEnumMember", "TSModuleDeclaration",
	"TSModuleBlock", "TSDeclareFunction", "TSDeclareMethod", "TSImportEqualsDeclaration",
	"TSExternalModuleReference", "TSExportAssignment", "TSNamespaceExportDeclaration", "TSAsExpression",
	"TSSatisfiesExpression", "TSTypeAssertion", "TSNonNullExpression", "TSInstantiationExpression",
	"TSTypeCastExpression",
}

func (nt NodeType) String() string {
	if nt < numNodeTypes {
		return nodeTypeNames[nt]
	}
	return "Invalid(" + strconv.Itoa(int(nt)) + ")"
}

////////////////////////////////////////////////////////////////

// Node is an AST node.
type Node interface {
	Type() NodeType
	Base() *NodeBase
	String() string
}

// NodeBase holds the location and the attached comments of a node.
type NodeBase struct {
	Start, End Position
	Leading    []*Comment
	Trailing   []*Comment
	Inner      []*Comment

	Parenthesized bool // wrapped in parentheses that were not kept as a ParenthesizedExpression
	ParenStart    int
}

// Base returns the node base.
func (n *NodeBase) Base() *NodeBase {
	return n
}

type IStmt interface {
	Node
	stmtNode()
}

type IExpr interface {
	Node
	exprNode()
}

// IPattern is an assignment target or binding.
type IPattern interface {
	Node
	patternNode()
}

type ITSType interface {
	Node
	tsTypeNode()
}

type IClassMember interface {
	Node
	classMemberNode()
}

// IObjectMember is a member of an object literal or object pattern.
type IObjectMember interface {
	Node
	objectMemberNode()
}

type IModuleSpecifier interface {
	Node
	specifierNode()
}

// ITSTypeElement is a member of a type literal or interface body.
type ITSTypeElement interface {
	Node
	typeElementNode()
}

// CommentType is the kind of comment.
type CommentType int

// CommentType values.
const (
	BlockComment CommentType = iota
	LineComment
)

// Comment is a source comment, Value excludes the delimiters.
type Comment struct {
	Type       CommentType
	Value      string
	Start, End Position
}

func (c *Comment) String() string {
	if c.Type == LineComment {
		return "//" + c.Value
	}
	return "/*" + c.Value + "*/"
}

////////////////////////////////////////////////////////////////

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func str(n Node) string {
	if isNil(n) {
		return ""
	}
	return n.String()
}

func list[T Node](nodes []T) string {
	sb := strings.Builder{}
	sb.WriteByte('[')
	for i, n := range nodes {
		if i != 0 {
			sb.WriteByte(' ')
		}
		if isNil(n) {
			sb.WriteByte('_')
		} else {
			sb.WriteString(n.String())
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func optList[T Node](nodes []T) string {
	if len(nodes) == 0 {
		return ""
	}
	return list(nodes)
}

func flag(b bool, s string) string {
	if b {
		return s
	}
	return ""
}

// sexpr renders a node as (name parts...), leaving out empty parts.
func sexpr(name string, parts ...string) string {
	sb := strings.Builder{}
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, part := range parts {
		if part != "" {
			sb.WriteByte(' ')
			sb.WriteString(part)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

////////////////////////////////////////////////////////////////

// Program is the root node.
type Program struct {
	NodeBase
	SourceType   SourceType
	Body         []IStmt
	Directives   []*Directive
	Interpreter  *InterpreterDirective
	Comments     []*Comment
	Errors       []*Diagnostic
	Dependencies []string // bare identifiers referenced by the program, in order of first use
}

func (n *Program) String() string {
	s := ""
	for i, item := range n.Directives {
		if i != 0 {
			s += " "
		}
		s += item.String()
	}
	for _, item := range n.Body {
		if s != "" {
			s += " "
		}
		s += item.String()
	}
	return s
}

type InterpreterDirective struct {
	NodeBase
	Value string
}

func (n *InterpreterDirective) String() string { return "#!" + n.Value }

// Directive is an entry of a directive prologue such as "use strict".
type Directive struct {
	NodeBase
	Value string
	Raw   string
}

func (n *Directive) String() string { return sexpr("Directive", n.Raw) }

// Placeholder stands in for a construct that could not be parsed in recoverable mode.
type Placeholder struct {
	NodeBase
	Err *Diagnostic
}

func (n *Placeholder) String() string { return "(Placeholder)" }

////////////////////////////////////////////////////////////////

type ExpressionStatement struct {
	NodeBase
	Expression IExpr
}

func (n *ExpressionStatement) String() string { return sexpr("Stmt", str(n.Expression)) }

type BlockStatement struct {
	NodeBase
	Body       []IStmt
	Directives []*Directive // for function bodies
}

func (n *BlockStatement) String() string {
	if 0 < len(n.Directives) {
		return sexpr("Block", list(n.Directives), list(n.Body))
	}
	return sexpr("Block", list(n.Body))
}

type EmptyStatement struct {
	NodeBase
}

func (n *EmptyStatement) String() string { return "(Empty)" }

type DebuggerStatement struct {
	NodeBase
}

func (n *DebuggerStatement) String() string { return "(Debugger)" }

type WithStatement struct {
	NodeBase
	Object IExpr
	Body   IStmt
}

func (n *WithStatement) String() string { return sexpr("With", str(n.Object), str(n.Body)) }

type ReturnStatement struct {
	NodeBase
	Argument IExpr // can be nil
}

func (n *ReturnStatement) String() string { return sexpr("Return", str(n.Argument)) }

type LabeledStatement struct {
	NodeBase
	Label *Identifier
	Body  IStmt
}

func (n *LabeledStatement) String() string { return sexpr("Label", str(n.Label), str(n.Body)) }

type BreakStatement struct {
	NodeBase
	Label *Identifier // can be nil
}

func (n *BreakStatement) String() string { return sexpr("Break", str(n.Label)) }

type ContinueStatement struct {
	NodeBase
	Label *Identifier // can be nil
}

func (n *ContinueStatement) String() string { return sexpr("Continue", str(n.Label)) }

type IfStatement struct {
	NodeBase
	Test       IExpr
	Consequent IStmt
	Alternate  IStmt // can be nil
}

func (n *IfStatement) String() string {
	return sexpr("If", str(n.Test), str(n.Consequent), str(n.Alternate))
}

type SwitchStatement struct {
	NodeBase
	Discriminant IExpr
	Cases        []*SwitchCase
}

func (n *SwitchStatement) String() string { return sexpr("Switch", str(n.Discriminant), list(n.Cases)) }

type SwitchCase struct {
	NodeBase
	Test       IExpr // nil for default
	Consequent []IStmt
}

func (n *SwitchCase) String() string {
	if n.Test == nil {
		return sexpr("Default", list(n.Consequent))
	}
	return sexpr("Case", str(n.Test), list(n.Consequent))
}

type ThrowStatement struct {
	NodeBase
	Argument IExpr
}

func (n *ThrowStatement) String() string { return sexpr("Throw", str(n.Argument)) }

type TryStatement struct {
	NodeBase
	Block     *BlockStatement
	Handler   *CatchClause    // can be nil
	Finalizer *BlockStatement // can be nil
}

func (n *TryStatement) String() string {
	return sexpr("Try", str(n.Block), str(n.Handler), str(n.Finalizer))
}

type CatchClause struct {
	NodeBase
	Param IPattern // can be nil
	Body  *BlockStatement
}

func (n *CatchClause) String() string { return sexpr("Catch", str(n.Param), str(n.Body)) }

type WhileStatement struct {
	NodeBase
	Test IExpr
	Body IStmt
}

func (n *WhileStatement) String() string { return sexpr("While", str(n.Test), str(n.Body)) }

type DoWhileStatement struct {
	NodeBase
	Body IStmt
	Test IExpr
}

func (n *DoWhileStatement) String() string { return sexpr("DoWhile", str(n.Body), str(n.Test)) }

type ForStatement struct {
	NodeBase
	Init   Node  // *VariableDeclaration or IExpr, can be nil
	Test   IExpr // can be nil
	Update IExpr // can be nil
	Body   IStmt
}

func (n *ForStatement) String() string {
	init, test, update := str(n.Init), str(n.Test), str(n.Update)
	if init == "" {
		init = "_"
	}
	if test == "" {
		test = "_"
	}
	if update == "" {
		update = "_"
	}
	return sexpr("For", init, test, update, str(n.Body))
}

type ForInStatement struct {
	NodeBase
	Left  Node // *VariableDeclaration or IPattern
	Right IExpr
	Body  IStmt
}

func (n *ForInStatement) String() string {
	return sexpr("ForIn", str(n.Left), str(n.Right), str(n.Body))
}

type ForOfStatement struct {
	NodeBase
	Left  Node // *VariableDeclaration or IPattern
	Right IExpr
	Body  IStmt
	Await bool
}

func (n *ForOfStatement) String() string {
	return sexpr("ForOf", flag(n.Await, "await"), str(n.Left), str(n.Right), str(n.Body))
}

// Function holds the fields shared by functions and methods.
type Function struct {
	ID             *Identifier // can be nil
	Params         []IPattern
	Body           *BlockStatement // nil for declarations without body
	Generator      bool
	Async          bool
	TypeParameters *TSTypeParameterDeclaration
	ReturnType     *TSTypeAnnotation
}

func (f *Function) string(name string) string {
	return sexpr(name, flag(f.Async, "async"), flag(f.Generator, "*"), str(f.ID), str(f.TypeParameters),
		list(f.Params), str(f.ReturnType), str(f.Body))
}

type FunctionDeclaration struct {
	NodeBase
	Function
}

func (n *FunctionDeclaration) String() string { return n.Function.string("Func") }

type VariableDeclaration struct {
	NodeBase
	Kind         string // var, let, const, using or await using
	Declarations []*VariableDeclarator
	Declare      bool
}

func (n *VariableDeclaration) String() string {
	return sexpr("Decl", flag(n.Declare, "declare"), n.Kind, list(n.Declarations))
}

type VariableDeclarator struct {
	NodeBase
	ID       IPattern
	Init     IExpr // can be nil
	Definite bool
}

func (n *VariableDeclarator) String() string {
	if n.Init == nil {
		return str(n.ID)
	}
	return sexpr("=", str(n.ID), str(n.Init))
}

////////////////////////////////////////////////////////////////

// Class holds the fields shared by class declarations and expressions.
type Class struct {
	ID                  *Identifier // can be nil
	SuperClass          IExpr       // can be nil
	SuperTypeParameters *TSTypeParameterInstantiation
	TypeParameters      *TSTypeParameterDeclaration
	Implements          []*TSExpressionWithTypeArguments
	Body                *ClassBody
	Decorators          []*Decorator
	Abstract            bool
	Declare             bool
}

func (c *Class) string(name string) string {
	extends := ""
	if c.SuperClass != nil {
		extends = sexpr("extends", str(c.SuperClass), str(c.SuperTypeParameters))
	}
	implements := ""
	if 0 < len(c.Implements) {
		implements = sexpr("implements", list(c.Implements))
	}
	return sexpr(name, optList(c.Decorators), flag(c.Declare, "declare"), flag(c.Abstract, "abstract"), str(c.ID),
		str(c.TypeParameters), extends, implements, str(c.Body))
}

type ClassDeclaration struct {
	NodeBase
	Class
}

func (n *ClassDeclaration) String() string { return n.Class.string("Class") }

type ClassBody struct {
	NodeBase
	Body []IClassMember
}

func (n *ClassBody) String() string { return list(n.Body) }

// MethodKind is the kind of a method.
type MethodKind string

// MethodKind values.
const (
	MethodConstructor MethodKind = "constructor"
	MethodNormal      MethodKind = "method"
	MethodGet         MethodKind = "get"
	MethodSet         MethodKind = "set"
)

// ClassMethod is a class method. It is a ClassPrivateMethod when the key is a PrivateName and a TSDeclareMethod
// when it has no body.
type ClassMethod struct {
	NodeBase
	Function
	Kind          MethodKind
	Key           IExpr
	Computed      bool
	Static        bool
	Decorators    []*Decorator
	Accessibility string // public, private or protected
	Abstract      bool
	Override      bool
	Optional      bool
}

func (n *ClassMethod) String() string {
	key := str(n.Key)
	if n.Computed {
		key = "[" + key + "]"
	}
	kind := string(n.Kind)
	if n.Kind == MethodNormal {
		kind = ""
	}
	return sexpr("Method", optList(n.Decorators), n.Accessibility, flag(n.Static, "static"),
		flag(n.Abstract, "abstract"), flag(n.Override, "override"), kind, flag(n.Async, "async"),
		flag(n.Generator, "*"), key, flag(n.Optional, "?"), str(n.TypeParameters), list(n.Params),
		str(n.ReturnType), str(n.Body))
}

// ClassProperty is a class field. It is a ClassPrivateProperty when the key is a PrivateName and a
// ClassAccessorProperty when declared with the accessor keyword.
type ClassProperty struct {
	NodeBase
	Key            IExpr
	Value          IExpr // can be nil
	Computed       bool
	Static         bool
	Accessor       bool
	Decorators     []*Decorator
	TypeAnnotation *TSTypeAnnotation
	Accessibility  string
	Abstract       bool
	Override       bool
	Optional       bool
	Definite       bool
	Readonly       bool
	Declare        bool
}

func (n *ClassProperty) String() string {
	key := str(n.Key)
	if n.Computed {
		key = "[" + key + "]"
	}
	return sexpr("Field", optList(n.Decorators), flag(n.Declare, "declare"), n.Accessibility,
		flag(n.Static, "static"), flag(n.Abstract, "abstract"), flag(n.Override, "override"),
		flag(n.Readonly, "readonly"), flag(n.Accessor, "accessor"), key, flag(n.Optional, "?"),
		flag(n.Definite, "!"), str(n.TypeAnnotation), str(n.Value))
}

type StaticBlock struct {
	NodeBase
	Body []IStmt
}

func (n *StaticBlock) String() string { return sexpr("Static", list(n.Body)) }

type Decorator struct {
	NodeBase
	Expression IExpr
}

func (n *Decorator) String() string { return "@" + str(n.Expression) }

////////////////////////////////////////////////////////////////

type Identifier struct {
	NodeBase
	Name           string
	Optional       bool // parameter declared with ?
	TypeAnnotation *TSTypeAnnotation
	Decorators     []*Decorator // parameter decorators
}

func (n *Identifier) String() string {
	if n.Optional || n.TypeAnnotation != nil || 0 < len(n.Decorators) {
		return sexpr("Id", optList(n.Decorators), n.Name, flag(n.Optional, "?"), str(n.TypeAnnotation))
	}
	return n.Name
}

type PrivateName struct {
	NodeBase
	Name string // without #
}

func (n *PrivateName) String() string { return "#" + n.Name }

type NullLiteral struct {
	NodeBase
}

func (n *NullLiteral) String() string { return "null" }

type BooleanLiteral struct {
	NodeBase
	Value bool
}

func (n *BooleanLiteral) String() string { return strconv.FormatBool(n.Value) }

type NumericLiteral struct {
	NodeBase
	Value float64
	Raw   string
}

func (n *NumericLiteral) String() string { return n.Raw }

type BigIntLiteral struct {
	NodeBase
	Value string // digits without separators and suffix
	Raw   string
}

func (n *BigIntLiteral) String() string { return n.Raw }

type DecimalLiteral struct {
	NodeBase
	Value string
	Raw   string
}

func (n *DecimalLiteral) String() string { return n.Raw }

type StringLiteral struct {
	NodeBase
	Value string
	Raw   string
}

func (n *StringLiteral) String() string { return n.Raw }

type RegExpLiteral struct {
	NodeBase
	Pattern string
	Flags   string
}

func (n *RegExpLiteral) String() string { return "/" + n.Pattern + "/" + n.Flags }

type TemplateLiteral struct {
	NodeBase
	Quasis      []*TemplateElement
	Expressions []IExpr
}

func (n *TemplateLiteral) String() string {
	s := "`"
	for i, quasi := range n.Quasis {
		s += quasi.Raw
		if i < len(n.Expressions) {
			s += "${" + str(n.Expressions[i]) + "}"
		}
	}
	return s + "`"
}

type TemplateElement struct {
	NodeBase
	Raw    string
	Cooked *string // nil when the chunk contains an invalid escape
	Tail   bool
}

func (n *TemplateElement) String() string { return n.Raw }

type TaggedTemplateExpression struct {
	NodeBase
	Tag            IExpr
	Quasi          *TemplateLiteral
	TypeParameters *TSTypeParameterInstantiation
}

func (n *TaggedTemplateExpression) String() string {
	return sexpr("Tagged", str(n.Tag), str(n.TypeParameters), str(n.Quasi))
}

type ThisExpression struct {
	NodeBase
}

func (n *ThisExpression) String() string { return "this" }

type Super struct {
	NodeBase
}

func (n *Super) String() string { return "super" }

// Import is the callee of a dynamic import call.
type Import struct {
	NodeBase
}

func (n *Import) String() string { return "import" }

// MetaProperty is new.target or import.meta.
type MetaProperty struct {
	NodeBase
	Meta     *Identifier
	Property *Identifier
}

func (n *MetaProperty) String() string { return str(n.Meta) + "." + str(n.Property) }

type ArrayExpression struct {
	NodeBase
	Elements []IExpr // nil for holes
}

func (n *ArrayExpression) String() string { return sexpr("Array", list(n.Elements)) }

type ObjectExpression struct {
	NodeBase
	Properties []IObjectMember
}

func (n *ObjectExpression) String() string { return sexpr("Object", list(n.Properties)) }

type ObjectProperty struct {
	NodeBase
	Key        IExpr
	Value      Node // IExpr, or IPattern inside patterns and shorthand initializers
	Computed   bool
	Shorthand  bool
	Decorators []*Decorator
}

func (n *ObjectProperty) String() string {
	if n.Shorthand {
		return sexpr("Prop", str(n.Value))
	}
	key := str(n.Key)
	if n.Computed {
		key = "[" + key + "]"
	}
	return sexpr("Prop", key, str(n.Value))
}

type ObjectMethod struct {
	NodeBase
	Function
	Kind       MethodKind
	Key        IExpr
	Computed   bool
	Decorators []*Decorator
}

func (n *ObjectMethod) String() string {
	key := str(n.Key)
	if n.Computed {
		key = "[" + key + "]"
	}
	kind := string(n.Kind)
	if n.Kind == MethodNormal {
		kind = ""
	}
	return sexpr("Method", kind, flag(n.Async, "async"), flag(n.Generator, "*"), key, str(n.TypeParameters),
		list(n.Params), str(n.ReturnType), str(n.Body))
}

type RecordExpression struct {
	NodeBase
	Properties []IObjectMember
}

func (n *RecordExpression) String() string { return sexpr("Record", list(n.Properties)) }

type TupleExpression struct {
	NodeBase
	Elements []IExpr
}

func (n *TupleExpression) String() string { return sexpr("Tuple", list(n.Elements)) }

type FunctionExpression struct {
	NodeBase
	Function
}

func (n *FunctionExpression) String() string { return n.Function.string("Func") }

type ArrowFunctionExpression struct {
	NodeBase
	Params         []IPattern
	Body           Node // *BlockStatement or IExpr
	Async          bool
	Expression     bool // body is an expression
	TypeParameters *TSTypeParameterDeclaration
	ReturnType     *TSTypeAnnotation
}

func (n *ArrowFunctionExpression) String() string {
	return sexpr("Arrow", flag(n.Async, "async"), str(n.TypeParameters), list(n.Params), str(n.ReturnType),
		str(n.Body))
}

type ClassExpression struct {
	NodeBase
	Class
}

func (n *ClassExpression) String() string { return n.Class.string("Class") }

// UnaryExpression is a prefix operator such as typeof, or a throw expression.
type UnaryExpression struct {
	NodeBase
	Operator TokenType
	Argument IExpr
}

func (n *UnaryExpression) String() string { return sexpr(n.Operator.String(), str(n.Argument)) }

type UpdateExpression struct {
	NodeBase
	Operator TokenType
	Prefix   bool
	Argument IExpr
}

func (n *UpdateExpression) String() string {
	if n.Prefix {
		return sexpr(n.Operator.String(), str(n.Argument))
	}
	return sexpr(n.Operator.String(), str(n.Argument), "post")
}

type BinaryExpression struct {
	NodeBase
	Operator TokenType
	Left     IExpr // a PrivateName for #x in obj
	Right    IExpr
}

func (n *BinaryExpression) String() string {
	return sexpr(n.Operator.String(), str(n.Left), str(n.Right))
}

// LogicalExpression is &&, || or ??.
type LogicalExpression struct {
	NodeBase
	Operator TokenType
	Left     IExpr
	Right    IExpr
}

func (n *LogicalExpression) String() string {
	return sexpr(n.Operator.String(), str(n.Left), str(n.Right))
}

type AssignmentExpression struct {
	NodeBase
	Operator TokenType
	Left     IPattern
	Right    IExpr
}

func (n *AssignmentExpression) String() string {
	return sexpr(n.Operator.String(), str(n.Left), str(n.Right))
}

type ConditionalExpression struct {
	NodeBase
	Test       IExpr
	Consequent IExpr
	Alternate  IExpr
}

func (n *ConditionalExpression) String() string {
	return sexpr("?", str(n.Test), str(n.Consequent), str(n.Alternate))
}

type SequenceExpression struct {
	NodeBase
	Expressions []IExpr
}

func (n *SequenceExpression) String() string { return sexpr("Seq", list(n.Expressions)) }

type ParenthesizedExpression struct {
	NodeBase
	Expression IExpr
}

func (n *ParenthesizedExpression) String() string { return sexpr("Paren", str(n.Expression)) }

// MemberExpression is a property access. It is an OptionalMemberExpression when part of an optional chain.
type MemberExpression struct {
	NodeBase
	Object   IExpr
	Property IExpr // *Identifier, *PrivateName or any expression when computed
	Computed bool
	Optional bool // accessed with ?.
	InChain  bool // part of an optional chain
}

func (n *MemberExpression) String() string {
	op := "."
	if n.Optional {
		op = "?."
	}
	if n.Computed {
		return sexpr(op, str(n.Object), "["+str(n.Property)+"]")
	}
	return sexpr(op, str(n.Object), str(n.Property))
}

// CallExpression is a call. It is an OptionalCallExpression when part of an optional chain.
type CallExpression struct {
	NodeBase
	Callee         IExpr // an *Import for dynamic imports
	Arguments      []IExpr
	TypeParameters *TSTypeParameterInstantiation
	Optional       bool
	InChain        bool
}

func (n *CallExpression) String() string {
	return sexpr("Call", flag(n.Optional, "?."), str(n.Callee), str(n.TypeParameters), list(n.Arguments))
}

type NewExpression struct {
	NodeBase
	Callee         IExpr
	Arguments      []IExpr
	TypeParameters *TSTypeParameterInstantiation
}

func (n *NewExpression) String() string {
	return sexpr("New", str(n.Callee), str(n.TypeParameters), list(n.Arguments))
}

type SpreadElement struct {
	NodeBase
	Argument IExpr
}

func (n *SpreadElement) String() string { return sexpr("...", str(n.Argument)) }

type YieldExpression struct {
	NodeBase
	Argument IExpr // can be nil
	Delegate bool
}

func (n *YieldExpression) String() string {
	return sexpr("Yield", flag(n.Delegate, "*"), str(n.Argument))
}

type AwaitExpression struct {
	NodeBase
	Argument IExpr
}

func (n *AwaitExpression) String() string { return sexpr("Await", str(n.Argument)) }

////////////////////////////////////////////////////////////////

type ObjectPattern struct {
	NodeBase
	Properties     []IObjectMember // *ObjectProperty or *RestElement
	TypeAnnotation *TSTypeAnnotation
}

func (n *ObjectPattern) String() string {
	return sexpr("ObjectPat", list(n.Properties), str(n.TypeAnnotation))
}

type ArrayPattern struct {
	NodeBase
	Elements       []IPattern // nil for holes
	TypeAnnotation *TSTypeAnnotation
}

func (n *ArrayPattern) String() string {
	return sexpr("ArrayPat", list(n.Elements), str(n.TypeAnnotation))
}

type AssignmentPattern struct {
	NodeBase
	Left  IPattern
	Right IExpr
}

func (n *AssignmentPattern) String() string { return sexpr("Default", str(n.Left), str(n.Right)) }

type RestElement struct {
	NodeBase
	Argument       IPattern
	TypeAnnotation *TSTypeAnnotation
}

func (n *RestElement) String() string {
	return sexpr("Rest", str(n.Argument), str(n.TypeAnnotation))
}

////////////////////////////////////////////////////////////////

type ImportDeclaration struct {
	NodeBase
	Specifiers        []IModuleSpecifier
	Source            *StringLiteral
	Attributes        []*ImportAttribute
	AttributesKeyword string // with or assert
	ImportKind        string // value or type
}

func (n *ImportDeclaration) String() string {
	kind := ""
	if n.ImportKind == "type" {
		kind = "type"
	}
	attributes := ""
	if 0 < len(n.Attributes) {
		attributes = sexpr(n.AttributesKeyword, list(n.Attributes))
	}
	return sexpr("Import", kind, list(n.Specifiers), str(n.Source), attributes)
}

type ImportSpecifier struct {
	NodeBase
	Imported   IExpr // *Identifier or *StringLiteral
	Local      *Identifier
	ImportKind string
}

func (n *ImportSpecifier) String() string {
	kind := ""
	if n.ImportKind == "type" {
		kind = "type"
	}
	if imported, ok := n.Imported.(*Identifier); ok && imported.Name == n.Local.Name {
		return sexpr("Spec", kind, str(n.Local))
	}
	return sexpr("Spec", kind, str(n.Imported), "as", str(n.Local))
}

type ImportDefaultSpecifier struct {
	NodeBase
	Local *Identifier
}

func (n *ImportDefaultSpecifier) String() string { return sexpr("DefaultSpec", str(n.Local)) }

type ImportNamespaceSpecifier struct {
	NodeBase
	Local *Identifier
}

func (n *ImportNamespaceSpecifier) String() string { return sexpr("NsSpec", str(n.Local)) }

type ImportAttribute struct {
	NodeBase
	Key   IExpr // *Identifier or *StringLiteral
	Value *StringLiteral
}

func (n *ImportAttribute) String() string { return sexpr(":", str(n.Key), str(n.Value)) }

type ExportNamedDeclaration struct {
	NodeBase
	Declaration Node // IStmt, can be nil
	Specifiers  []IModuleSpecifier
	Source      *StringLiteral // can be nil
	Attributes  []*ImportAttribute
	ExportKind  string // value or type
}

func (n *ExportNamedDeclaration) String() string {
	kind := ""
	if n.ExportKind == "type" {
		kind = "type"
	}
	if n.Declaration != nil {
		return sexpr("Export", kind, str(n.Declaration))
	}
	return sexpr("Export", kind, list(n.Specifiers), str(n.Source), optList(n.Attributes))
}

type ExportSpecifier struct {
	NodeBase
	Local      IExpr // *Identifier or *StringLiteral
	Exported   IExpr // *Identifier or *StringLiteral
	ExportKind string
}

func (n *ExportSpecifier) String() string {
	kind := ""
	if n.ExportKind == "type" {
		kind = "type"
	}
	local, exported := str(n.Local), str(n.Exported)
	if local == exported {
		return sexpr("Spec", kind, local)
	}
	return sexpr("Spec", kind, local, "as", exported)
}

type ExportNamespaceSpecifier struct {
	NodeBase
	Exported IExpr
}

func (n *ExportNamespaceSpecifier) String() string { return sexpr("NsSpec", str(n.Exported)) }

type ExportDefaultDeclaration struct {
	NodeBase
	Declaration Node // function or class declaration, interface declaration, or an expression
}

func (n *ExportDefaultDeclaration) String() string { return sexpr("ExportDefault", str(n.Declaration)) }

type ExportAllDeclaration struct {
	NodeBase
	Source     *StringLiteral
	Attributes []*ImportAttribute
	ExportKind string
}

func (n *ExportAllDeclaration) String() string {
	kind := ""
	if n.ExportKind == "type" {
		kind = "type"
	}
	return sexpr("ExportAll", kind, str(n.Source), optList(n.Attributes))
}

////////////////////////////////////////////////////////////////

func (n *Program) Type() NodeType                  { return ProgramNode }
func (n *InterpreterDirective) Type() NodeType     { return InterpreterDirectiveNode }
func (n *Directive) Type() NodeType                { return DirectiveNode }
func (n *Placeholder) Type() NodeType              { return PlaceholderNode }
func (n *ExpressionStatement) Type() NodeType      { return ExpressionStatementNode }
func (n *BlockStatement) Type() NodeType           { return BlockStatementNode }
func (n *EmptyStatement) Type() NodeType           { return EmptyStatementNode }
func (n *DebuggerStatement) Type() NodeType        { return DebuggerStatementNode }
func (n *WithStatement) Type() NodeType            { return WithStatementNode }
func (n *ReturnStatement) Type() NodeType          { return ReturnStatementNode }
func (n *LabeledStatement) Type() NodeType         { return LabeledStatementNode }
func (n *BreakStatement) Type() NodeType           { return BreakStatementNode }
func (n *ContinueStatement) Type() NodeType        { return ContinueStatementNode }
func (n *IfStatement) Type() NodeType              { return IfStatementNode }
func (n *SwitchStatement) Type() NodeType          { return SwitchStatementNode }
func (n *SwitchCase) Type() NodeType               { return SwitchCaseNode }
func (n *ThrowStatement) Type() NodeType           { return ThrowStatementNode }
func (n *TryStatement) Type() NodeType             { return TryStatementNode }
func (n *CatchClause) Type() NodeType              { return CatchClauseNode }
func (n *WhileStatement) Type() NodeType           { return WhileStatementNode }
func (n *DoWhileStatement) Type() NodeType         { return DoWhileStatementNode }
func (n *ForStatement) Type() NodeType             { return ForStatementNode }
func (n *ForInStatement) Type() NodeType           { return ForInStatementNode }
func (n *ForOfStatement) Type() NodeType           { return ForOfStatementNode }
func (n *FunctionDeclaration) Type() NodeType      { return FunctionDeclarationNode }
func (n *VariableDeclaration) Type() NodeType      { return VariableDeclarationNode }
func (n *VariableDeclarator) Type() NodeType       { return VariableDeclaratorNode }
func (n *ClassDeclaration) Type() NodeType         { return ClassDeclarationNode }
func (n *ClassBody) Type() NodeType                { return ClassBodyNode }
func (n *StaticBlock) Type() NodeType              { return StaticBlockNode }
func (n *Decorator) Type() NodeType                { return DecoratorNode }
func (n *Identifier) Type() NodeType               { return IdentifierNode }
func (n *PrivateName) Type() NodeType              { return PrivateNameNode }
func (n *NullLiteral) Type() NodeType              { return NullLiteralNode }
func (n *BooleanLiteral) Type() NodeType           { return BooleanLiteralNode }
func (n *NumericLiteral) Type() NodeType           { return NumericLiteralNode }
func (n *BigIntLiteral) Type() NodeType            { return BigIntLiteralNode }
func (n *DecimalLiteral) Type() NodeType           { return DecimalLiteralNode }
func (n *StringLiteral) Type() NodeType            { return StringLiteralNode }
func (n *RegExpLiteral) Type() NodeType            { return RegExpLiteralNode }
func (n *TemplateLiteral) Type() NodeType          { return TemplateLiteralNode }
func (n *TemplateElement) Type() NodeType          { return TemplateElementNode }
func (n *TaggedTemplateExpression) Type() NodeType { return TaggedTemplateExpressionNode }
func (n *ThisExpression) Type() NodeType           { return ThisExpressionNode }
func (n *Super) Type() NodeType                    { return SuperNode }
func (n *Import) Type() NodeType                   { return ImportNode }
func (n *MetaProperty) Type() NodeType             { return MetaPropertyNode }
func (n *ArrayExpression) Type() NodeType          { return ArrayExpressionNode }
func (n *ObjectExpression) Type() NodeType         { return ObjectExpressionNode }
func (n *ObjectProperty) Type() NodeType           { return ObjectPropertyNode }
func (n *ObjectMethod) Type() NodeType             { return ObjectMethodNode }
func (n *RecordExpression) Type() NodeType         { return RecordExpressionNode }
func (n *TupleExpression) Type() NodeType          { return TupleExpressionNode }
func (n *FunctionExpression) Type() NodeType       { return FunctionExpressionNode }
func (n *ArrowFunctionExpression) Type() NodeType  { return ArrowFunctionExpressionNode }
func (n *ClassExpression) Type() NodeType          { return ClassExpressionNode }
func (n *UnaryExpression) Type() NodeType          { return UnaryExpressionNode }
func (n *UpdateExpression) Type() NodeType         { return UpdateExpressionNode }
func (n *BinaryExpression) Type() NodeType         { return BinaryExpressionNode }
func (n *LogicalExpression) Type() NodeType        { return LogicalExpressionNode }
func (n *AssignmentExpression) Type() NodeType     { return AssignmentExpressionNode }
func (n *ConditionalExpression) Type() NodeType    { return ConditionalExpressionNode }
func (n *SequenceExpression) Type() NodeType       { return SequenceExpressionNode }
func (n *ParenthesizedExpression) Type() NodeType  { return ParenthesizedExpressionNode }
func (n *NewExpression) Type() NodeType            { return NewExpressionNode }
func (n *SpreadElement) Type() NodeType            { return SpreadElementNode }
func (n *YieldExpression) Type() NodeType          { return YieldExpressionNode }
func (n *AwaitExpression) Type() NodeType          { return AwaitExpressionNode }
func (n *ObjectPattern) Type() NodeType            { return ObjectPatternNode }
func (n *ArrayPattern) Type() NodeType             { return ArrayPatternNode }
func (n *AssignmentPattern) Type() NodeType        { return AssignmentPatternNode }
func (n *RestElement) Type() NodeType              { return RestElementNode }
func (n *ImportDeclaration) Type() NodeType        { return ImportDeclarationNode }
func (n *ImportSpecifier) Type() NodeType          { return ImportSpecifierNode }
func (n *ImportDefaultSpecifier) Type() NodeType   { return ImportDefaultSpecifierNode }
func (n *ImportNamespaceSpecifier) Type() NodeType { return ImportNamespaceSpecifierNode }
func (n *ImportAttribute) Type() NodeType          { return ImportAttributeNode }
func (n *ExportNamedDeclaration) Type() NodeType   { return ExportNamedDeclarationNode }
func (n *ExportSpecifier) Type() NodeType          { return ExportSpecifierNode }
func (n *ExportNamespaceSpecifier) Type() NodeType { return ExportNamespaceSpecifierNode }
func (n *ExportDefaultDeclaration) Type() NodeType { return ExportDefaultDeclarationNode }
func (n *ExportAllDeclaration) Type() NodeType     { return ExportAllDeclarationNode }

func (n *ClassMethod) Type() NodeType {
	if n.Body == nil {
		return TSDeclareMethodNode
	} else if _, ok := n.Key.(*PrivateName); ok {
		return ClassPrivateMethodNode
	}
	return ClassMethodNode
}

func (n *ClassProperty) Type() NodeType {
	if n.Accessor {
		return ClassAccessorPropertyNode
	} else if _, ok := n.Key.(*PrivateName); ok {
		return ClassPrivatePropertyNode
	}
	return ClassPropertyNode
}

func (n *MemberExpression) Type() NodeType {
	if n.InChain {
		return OptionalMemberExpressionNode
	}
	return MemberExpressionNode
}

func (n *CallExpression) Type() NodeType {
	if n.InChain {
		return OptionalCallExpressionNode
	}
	return CallExpressionNode
}

func (n *Placeholder) stmtNode()              {}
func (n *ExpressionStatement) stmtNode()      {}
func (n *BlockStatement) stmtNode()           {}
func (n *EmptyStatement) stmtNode()           {}
func (n *DebuggerStatement) stmtNode()        {}
func (n *WithStatement) stmtNode()            {}
func (n *ReturnStatement) stmtNode()          {}
func (n *LabeledStatement) stmtNode()         {}
func (n *BreakStatement) stmtNode()           {}
func (n *ContinueStatement) stmtNode()        {}
func (n *IfStatement) stmtNode()              {}
func (n *SwitchStatement) stmtNode()          {}
func (n *ThrowStatement) stmtNode()           {}
func (n *TryStatement) stmtNode()             {}
func (n *WhileStatement) stmtNode()           {}
func (n *DoWhileStatement) stmtNode()         {}
func (n *ForStatement) stmtNode()             {}
func (n *ForInStatement) stmtNode()           {}
func (n *ForOfStatement) stmtNode()           {}
func (n *FunctionDeclaration) stmtNode()      {}
func (n *VariableDeclaration) stmtNode()      {}
func (n *ClassDeclaration) stmtNode()         {}
func (n *ImportDeclaration) stmtNode()        {}
func (n *ExportNamedDeclaration) stmtNode()   {}
func (n *ExportDefaultDeclaration) stmtNode() {}
func (n *ExportAllDeclaration) stmtNode()     {}

func (n *Placeholder) exprNode()              {}
func (n *Identifier) exprNode()               {}
func (n *PrivateName) exprNode()              {}
func (n *NullLiteral) exprNode()              {}
func (n *BooleanLiteral) exprNode()           {}
func (n *NumericLiteral) exprNode()           {}
func (n *BigIntLiteral) exprNode()            {}
func (n *DecimalLiteral) exprNode()           {}
func (n *StringLiteral) exprNode()            {}
func (n *RegExpLiteral) exprNode()            {}
func (n *TemplateLiteral) exprNode()          {}
func (n *TaggedTemplateExpression) exprNode() {}
func (n *ThisExpression) exprNode()           {}
func (n *Super) exprNode()                    {}
func (n *Import) exprNode()                   {}
func (n *MetaProperty) exprNode()             {}
func (n *ArrayExpression) exprNode()          {}
func (n *ObjectExpression) exprNode()         {}
func (n *RecordExpression) exprNode()         {}
func (n *TupleExpression) exprNode()          {}
func (n *FunctionExpression) exprNode()       {}
func (n *ArrowFunctionExpression) exprNode()  {}
func (n *ClassExpression) exprNode()          {}
func (n *UnaryExpression) exprNode()          {}
func (n *UpdateExpression) exprNode()         {}
func (n *BinaryExpression) exprNode()         {}
func (n *LogicalExpression) exprNode()        {}
func (n *AssignmentExpression) exprNode()     {}
func (n *ConditionalExpression) exprNode()    {}
func (n *SequenceExpression) exprNode()       {}
func (n *ParenthesizedExpression) exprNode()  {}
func (n *MemberExpression) exprNode()         {}
func (n *CallExpression) exprNode()           {}
func (n *NewExpression) exprNode()            {}
func (n *SpreadElement) exprNode()            {}
func (n *YieldExpression) exprNode()          {}
func (n *AwaitExpression) exprNode()          {}

func (n *Placeholder) patternNode()             {}
func (n *Identifier) patternNode()              {}
func (n *MemberExpression) patternNode()        {}
func (n *ParenthesizedExpression) patternNode() {}
func (n *ObjectPattern) patternNode()           {}
func (n *ArrayPattern) patternNode()            {}
func (n *AssignmentPattern) patternNode()       {}
func (n *RestElement) patternNode()             {}

func (n *ClassMethod) classMemberNode()   {}
func (n *ClassProperty) classMemberNode() {}
func (n *StaticBlock) classMemberNode()   {}

func (n *Placeholder) objectMemberNode()    {}
func (n *ObjectProperty) objectMemberNode() {}
func (n *ObjectMethod) objectMemberNode()   {}
func (n *SpreadElement) objectMemberNode()  {}
func (n *RestElement) objectMemberNode()    {}

func (n *ImportSpecifier) specifierNode()          {}
func (n *ImportDefaultSpecifier) specifierNode()   {}
func (n *ImportNamespaceSpecifier) specifierNode() {}
func (n *ExportSpecifier) specifierNode()          {}
func (n *ExportNamespaceSpecifier) specifierNode() {}
