package js

import (
	"strings"
)

// TSKeywordType is a predefined type such as number or void; Keyword is its node type.
type TSKeywordType struct {
	NodeBase
	Keyword NodeType
}

func (n *TSKeywordType) String() string {
	name := n.Keyword.String()
	return strings.ToLower(name[2 : len(name)-len("Keyword")])
}

type TSThisType struct {
	NodeBase
}

func (n *TSThisType) String() string { return "this" }

type TSTypeAnnotation struct {
	NodeBase
	TypeAnnotation ITSType
}

func (n *TSTypeAnnotation) String() string { return ":" + str(n.TypeAnnotation) }

type TSTypeParameterDeclaration struct {
	NodeBase
	Params []*TSTypeParameter
}

func (n *TSTypeParameterDeclaration) String() string { return "<" + list(n.Params) + ">" }

type TSTypeParameter struct {
	NodeBase
	Name       string
	In, Out    bool
	Const      bool
	Constraint ITSType // can be nil
	Default    ITSType // can be nil
}

func (n *TSTypeParameter) String() string {
	if !n.In && !n.Out && !n.Const && n.Constraint == nil && n.Default == nil {
		return n.Name
	}
	constraint, def := "", ""
	if n.Constraint != nil {
		constraint = sexpr("extends", str(n.Constraint))
	}
	if n.Default != nil {
		def = sexpr("=", str(n.Default))
	}
	return sexpr("TypeParam", flag(n.Const, "const"), flag(n.In, "in"), flag(n.Out, "out"), n.Name, constraint, def)
}

type TSTypeParameterInstantiation struct {
	NodeBase
	Params []ITSType
}

func (n *TSTypeParameterInstantiation) String() string { return "<" + list(n.Params) + ">" }

type TSTypeReference struct {
	NodeBase
	TypeName       Node // *Identifier or *TSQualifiedName
	TypeParameters *TSTypeParameterInstantiation
}

func (n *TSTypeReference) String() string {
	if n.TypeParameters == nil {
		return str(n.TypeName)
	}
	return str(n.TypeName) + str(n.TypeParameters)
}

type TSQualifiedName struct {
	NodeBase
	Left  Node // *Identifier or *TSQualifiedName
	Right *Identifier
}

func (n *TSQualifiedName) String() string { return str(n.Left) + "." + str(n.Right) }

type TSTypeQuery struct {
	NodeBase
	ExprName       Node // *Identifier, *TSQualifiedName or *TSImportType
	TypeParameters *TSTypeParameterInstantiation
}

func (n *TSTypeQuery) String() string { return sexpr("typeof", str(n.ExprName), str(n.TypeParameters)) }

// TSTypeOperator is keyof, unique or readonly.
type TSTypeOperator struct {
	NodeBase
	Operator       string
	TypeAnnotation ITSType
}

func (n *TSTypeOperator) String() string { return sexpr(n.Operator, str(n.TypeAnnotation)) }

type TSInferType struct {
	NodeBase
	TypeParameter *TSTypeParameter
}

func (n *TSInferType) String() string { return sexpr("infer", str(n.TypeParameter)) }

type TSArrayType struct {
	NodeBase
	ElementType ITSType
}

func (n *TSArrayType) String() string { return str(n.ElementType) + "[]" }

type TSIndexedAccessType struct {
	NodeBase
	ObjectType ITSType
	IndexType  ITSType
}

func (n *TSIndexedAccessType) String() string {
	return str(n.ObjectType) + "[" + str(n.IndexType) + "]"
}

type TSTupleType struct {
	NodeBase
	ElementTypes []ITSType
}

func (n *TSTupleType) String() string { return sexpr("Tuple", list(n.ElementTypes)) }

type TSOptionalType struct {
	NodeBase
	TypeAnnotation ITSType
}

func (n *TSOptionalType) String() string { return str(n.TypeAnnotation) + "?" }

type TSRestType struct {
	NodeBase
	TypeAnnotation ITSType
}

func (n *TSRestType) String() string { return "..." + str(n.TypeAnnotation) }

type TSNamedTupleMember struct {
	NodeBase
	Label       *Identifier
	ElementType ITSType
	Optional    bool
}

func (n *TSNamedTupleMember) String() string {
	return sexpr("Named", str(n.Label), flag(n.Optional, "?"), str(n.ElementType))
}

type TSUnionType struct {
	NodeBase
	Types []ITSType
}

func (n *TSUnionType) String() string { return sexpr("|", list(n.Types)) }

type TSIntersectionType struct {
	NodeBase
	Types []ITSType
}

func (n *TSIntersectionType) String() string { return sexpr("&", list(n.Types)) }

type TSFunctionType struct {
	NodeBase
	TypeParameters *TSTypeParameterDeclaration
	Params         []IPattern
	ReturnType     *TSTypeAnnotation
}

func (n *TSFunctionType) String() string {
	return sexpr("FuncType", str(n.TypeParameters), list(n.Params), str(n.ReturnType))
}

type TSConstructorType struct {
	NodeBase
	TypeParameters *TSTypeParameterDeclaration
	Params         []IPattern
	ReturnType     *TSTypeAnnotation
	Abstract       bool
}

func (n *TSConstructorType) String() string {
	return sexpr("NewType", flag(n.Abstract, "abstract"), str(n.TypeParameters), list(n.Params), str(n.ReturnType))
}

type TSConditionalType struct {
	NodeBase
	CheckType   ITSType
	ExtendsType ITSType
	TrueType    ITSType
	FalseType   ITSType
}

func (n *TSConditionalType) String() string {
	return sexpr("Cond", str(n.CheckType), str(n.ExtendsType), str(n.TrueType), str(n.FalseType))
}

// TSMappedType is { [K in T as N]: V }. Readonly and Optional are "", "true", "+" or "-".
type TSMappedType struct {
	NodeBase
	TypeParameter  *TSTypeParameter
	NameType       ITSType // can be nil
	TypeAnnotation ITSType // can be nil
	Readonly       string
	Optional       string
}

func (n *TSMappedType) String() string {
	readonly, optional, as := "", "", ""
	if n.Readonly != "" {
		readonly = "readonly" + n.Readonly
	}
	if n.Optional != "" {
		optional = "?" + n.Optional
	}
	if n.NameType != nil {
		as = sexpr("as", str(n.NameType))
	}
	return sexpr("Mapped", readonly, str(n.TypeParameter), as, optional, str(n.TypeAnnotation))
}

type TSLiteralType struct {
	NodeBase
	Literal IExpr // a literal, or a negated numeric or bigint literal
}

func (n *TSLiteralType) String() string { return str(n.Literal) }

type TSTemplateLiteralType struct {
	NodeBase
	Quasis []*TemplateElement
	Types  []ITSType
}

func (n *TSTemplateLiteralType) String() string {
	s := "`"
	for i, quasi := range n.Quasis {
		s += quasi.Raw
		if i < len(n.Types) {
			s += "${" + str(n.Types[i]) + "}"
		}
	}
	return s + "`"
}

type TSTypeLiteral struct {
	NodeBase
	Members []ITSTypeElement
}

func (n *TSTypeLiteral) String() string { return sexpr("TypeLit", list(n.Members)) }

type TSPropertySignature struct {
	NodeBase
	Key            IExpr
	Computed       bool
	Optional       bool
	Readonly       bool
	TypeAnnotation *TSTypeAnnotation
}

func (n *TSPropertySignature) String() string {
	key := str(n.Key)
	if n.Computed {
		key = "[" + key + "]"
	}
	return sexpr("PropSig", flag(n.Readonly, "readonly"), key, flag(n.Optional, "?"), str(n.TypeAnnotation))
}

type TSMethodSignature struct {
	NodeBase
	Key            IExpr
	Computed       bool
	Optional       bool
	Kind           MethodKind
	TypeParameters *TSTypeParameterDeclaration
	Params         []IPattern
	ReturnType     *TSTypeAnnotation
}

func (n *TSMethodSignature) String() string {
	key := str(n.Key)
	if n.Computed {
		key = "[" + key + "]"
	}
	kind := string(n.Kind)
	if n.Kind == MethodNormal {
		kind = ""
	}
	return sexpr("MethodSig", kind, key, flag(n.Optional, "?"), str(n.TypeParameters), list(n.Params),
		str(n.ReturnType))
}

type TSCallSignatureDeclaration struct {
	NodeBase
	TypeParameters *TSTypeParameterDeclaration
	Params         []IPattern
	ReturnType     *TSTypeAnnotation
}

func (n *TSCallSignatureDeclaration) String() string {
	return sexpr("CallSig", str(n.TypeParameters), list(n.Params), str(n.ReturnType))
}

type TSConstructSignatureDeclaration struct {
	NodeBase
	TypeParameters *TSTypeParameterDeclaration
	Params         []IPattern
	ReturnType     *TSTypeAnnotation
}

func (n *TSConstructSignatureDeclaration) String() string {
	return sexpr("NewSig", str(n.TypeParameters), list(n.Params), str(n.ReturnType))
}

// TSIndexSignature is [key: K]: V, in type literals and in classes.
type TSIndexSignature struct {
	NodeBase
	Parameters     []*Identifier
	TypeAnnotation *TSTypeAnnotation
	Readonly       bool
	Static         bool
}

func (n *TSIndexSignature) String() string {
	return sexpr("IndexSig", flag(n.Static, "static"), flag(n.Readonly, "readonly"), list(n.Parameters),
		str(n.TypeAnnotation))
}

// TSTypePredicate is x is T, asserts x or asserts x is T.
type TSTypePredicate struct {
	NodeBase
	ParameterName  Node // *Identifier or *TSThisType
	TypeAnnotation *TSTypeAnnotation
	Asserts        bool
}

func (n *TSTypePredicate) String() string {
	return sexpr("is", flag(n.Asserts, "asserts"), str(n.ParameterName), str(n.TypeAnnotation))
}

type TSImportType struct {
	NodeBase
	Argument       *StringLiteral
	Qualifier      Node // *Identifier or *TSQualifiedName, can be nil
	TypeParameters *TSTypeParameterInstantiation
}

func (n *TSImportType) String() string {
	return sexpr("ImportType", str(n.Argument), str(n.Qualifier), str(n.TypeParameters))
}

// TSExpressionWithTypeArguments is an entry of an extends or implements list.
type TSExpressionWithTypeArguments struct {
	NodeBase
	Expression     Node // *Identifier or *TSQualifiedName
	TypeParameters *TSTypeParameterInstantiation
}

func (n *TSExpressionWithTypeArguments) String() string {
	if n.TypeParameters == nil {
		return str(n.Expression)
	}
	return str(n.Expression) + str(n.TypeParameters)
}

// TSParameterProperty is a constructor parameter with an accessibility or readonly modifier.
type TSParameterProperty struct {
	NodeBase
	Parameter     IPattern // *Identifier or *AssignmentPattern
	Accessibility string
	Readonly      bool
	Override      bool
	Decorators    []*Decorator
}

func (n *TSParameterProperty) String() string {
	return sexpr("ParamProp", optList(n.Decorators), n.Accessibility, flag(n.Override, "override"),
		flag(n.Readonly, "readonly"), str(n.Parameter))
}

type TSInterfaceDeclaration struct {
	NodeBase
	ID             *Identifier
	TypeParameters *TSTypeParameterDeclaration
	Extends        []*TSExpressionWithTypeArguments
	Body           *TSInterfaceBody
	Declare        bool
}

func (n *TSInterfaceDeclaration) String() string {
	extends := ""
	if 0 < len(n.Extends) {
		extends = sexpr("extends", list(n.Extends))
	}
	return sexpr("Interface", flag(n.Declare, "declare"), str(n.ID), str(n.TypeParameters), extends, str(n.Body))
}

type TSInterfaceBody struct {
	NodeBase
	Body []ITSTypeElement
}

func (n *TSInterfaceBody) String() string { return list(n.Body) }

type TSTypeAliasDeclaration struct {
	NodeBase
	ID             *Identifier
	TypeParameters *TSTypeParameterDeclaration
	TypeAnnotation ITSType
	Declare        bool
}

func (n *TSTypeAliasDeclaration) String() string {
	return sexpr("TypeAlias", flag(n.Declare, "declare"), str(n.ID), str(n.TypeParameters), str(n.TypeAnnotation))
}

type TSEnumDeclaration struct {
	NodeBase
	ID      *Identifier
	Members []*TSEnumMember
	Const   bool
	Declare bool
}

func (n *TSEnumDeclaration) String() string {
	return sexpr("Enum", flag(n.Declare, "declare"), flag(n.Const, "const"), str(n.ID), list(n.Members))
}

type TSEnumMember struct {
	NodeBase
	ID          IExpr // *Identifier or *StringLiteral
	Initializer IExpr // can be nil
}

func (n *TSEnumMember) String() string {
	if n.Initializer == nil {
		return str(n.ID)
	}
	return sexpr("=", str(n.ID), str(n.Initializer))
}

// TSModuleDeclaration is a namespace, a module or a global augmentation. A dotted name A.B.C nests the declarations
// through Body.
type TSModuleDeclaration struct {
	NodeBase
	ID      Node // *Identifier or *StringLiteral
	Body    Node // *TSModuleBlock or *TSModuleDeclaration, nil for `declare module "m";`
	Kind    string
	Declare bool
}

func (n *TSModuleDeclaration) String() string {
	return sexpr("Module", flag(n.Declare, "declare"), n.Kind, str(n.ID), str(n.Body))
}

type TSModuleBlock struct {
	NodeBase
	Body []IStmt
}

func (n *TSModuleBlock) String() string { return list(n.Body) }

// TSDeclareFunction is a function without a body: an overload or an ambient declaration.
type TSDeclareFunction struct {
	NodeBase
	Function
	Declare bool
}

func (n *TSDeclareFunction) String() string {
	return sexpr("DeclareFunc", flag(n.Declare, "declare"), flag(n.Async, "async"), flag(n.Generator, "*"),
		str(n.ID), str(n.TypeParameters), list(n.Params), str(n.ReturnType))
}

type TSImportEqualsDeclaration struct {
	NodeBase
	ID              *Identifier
	ModuleReference Node // *TSExternalModuleReference, *Identifier or *TSQualifiedName
	IsExport        bool
	ImportKind      string
}

func (n *TSImportEqualsDeclaration) String() string {
	kind := ""
	if n.ImportKind == "type" {
		kind = "type"
	}
	return sexpr("ImportEquals", flag(n.IsExport, "export"), kind, str(n.ID), str(n.ModuleReference))
}

type TSExternalModuleReference struct {
	NodeBase
	Expression *StringLiteral
}

func (n *TSExternalModuleReference) String() string { return sexpr("require", str(n.Expression)) }

// TSExportAssignment is export = x.
type TSExportAssignment struct {
	NodeBase
	Expression IExpr
}

func (n *TSExportAssignment) String() string { return sexpr("ExportAssign", str(n.Expression)) }

// TSNamespaceExportDeclaration is export as namespace X.
type TSNamespaceExportDeclaration struct {
	NodeBase
	ID *Identifier
}

func (n *TSNamespaceExportDeclaration) String() string { return sexpr("ExportAsNamespace", str(n.ID)) }

type TSAsExpression struct {
	NodeBase
	Expression     IExpr
	TypeAnnotation ITSType
}

func (n *TSAsExpression) String() string {
	return sexpr("as", str(n.Expression), str(n.TypeAnnotation))
}

type TSSatisfiesExpression struct {
	NodeBase
	Expression     IExpr
	TypeAnnotation ITSType
}

func (n *TSSatisfiesExpression) String() string {
	return sexpr("satisfies", str(n.Expression), str(n.TypeAnnotation))
}

// TSTypeAssertion is <T>x.
type TSTypeAssertion struct {
	NodeBase
	TypeAnnotation ITSType
	Expression     IExpr
}

func (n *TSTypeAssertion) String() string {
	return sexpr("cast", str(n.TypeAnnotation), str(n.Expression))
}

type TSNonNullExpression struct {
	NodeBase
	Expression IExpr
}

func (n *TSNonNullExpression) String() string { return sexpr("!", str(n.Expression)) }

// TSInstantiationExpression is f<T> without a call.
type TSInstantiationExpression struct {
	NodeBase
	Expression     IExpr
	TypeParameters *TSTypeParameterInstantiation
}

func (n *TSInstantiationExpression) String() string {
	return sexpr("Inst", str(n.Expression), str(n.TypeParameters))
}

// TSTypeCastExpression is an annotated expression inside parentheses, (x: T). It only survives when the
// parenthesized list becomes arrow parameters, where the annotation moves onto the parameter.
type TSTypeCastExpression struct {
	NodeBase
	Expression     IExpr
	TypeAnnotation *TSTypeAnnotation
}

func (n *TSTypeCastExpression) String() string {
	return sexpr("typecast", str(n.Expression), str(n.TypeAnnotation))
}

////////////////////////////////////////////////////////////////

func (n *TSKeywordType) Type() NodeType                   { return n.Keyword }
func (n *TSThisType) Type() NodeType                      { return TSThisTypeNode }
func (n *TSTypeAnnotation) Type() NodeType                { return TSTypeAnnotationNode }
func (n *TSTypeParameterDeclaration) Type() NodeType      { return TSTypeParameterDeclarationNode }
func (n *TSTypeParameter) Type() NodeType                 { return TSTypeParameterNode }
func (n *TSTypeParameterInstantiation) Type() NodeType    { return TSTypeParameterInstantiationNode }
func (n *TSTypeReference) Type() NodeType                 { return TSTypeReferenceNode }
func (n *TSQualifiedName) Type() NodeType                 { return TSQualifiedNameNode }
func (n *TSTypeQuery) Type() NodeType                     { return TSTypeQueryNode }
func (n *TSTypeOperator) Type() NodeType                  { return TSTypeOperatorNode }
func (n *TSInferType) Type() NodeType                     { return TSInferTypeNode }
func (n *TSArrayType) Type() NodeType                     { return TSArrayTypeNode }
func (n *TSIndexedAccessType) Type() NodeType             { return TSIndexedAccessTypeNode }
func (n *TSTupleType) Type() NodeType                     { return TSTupleTypeNode }
func (n *TSOptionalType) Type() NodeType                  { return TSOptionalTypeNode }
func (n *TSRestType) Type() NodeType                      { return TSRestTypeNode }
func (n *TSNamedTupleMember) Type() NodeType              { return TSNamedTupleMemberNode }
func (n *TSUnionType) Type() NodeType                     { return TSUnionTypeNode }
func (n *TSIntersectionType) Type() NodeType              { return TSIntersectionTypeNode }
func (n *TSFunctionType) Type() NodeType                  { return TSFunctionTypeNode }
func (n *TSConstructorType) Type() NodeType               { return TSConstructorTypeNode }
func (n *TSConditionalType) Type() NodeType               { return TSConditionalTypeNode }
func (n *TSMappedType) Type() NodeType                    { return TSMappedTypeNode }
func (n *TSLiteralType) Type() NodeType                   { return TSLiteralTypeNode }
func (n *TSTemplateLiteralType) Type() NodeType           { return TSTemplateLiteralTypeNode }
func (n *TSTypeLiteral) Type() NodeType                   { return TSTypeLiteralNode }
func (n *TSPropertySignature) Type() NodeType             { return TSPropertySignatureNode }
func (n *TSMethodSignature) Type() NodeType               { return TSMethodSignatureNode }
func (n *TSCallSignatureDeclaration) Type() NodeType      { return TSCallSignatureDeclarationNode }
func (n *TSConstructSignatureDeclaration) Type() NodeType { return TSConstructSignatureDeclarationNode }
func (n *TSIndexSignature) Type() NodeType                { return TSIndexSignatureNode }
func (n *TSTypePredicate) Type() NodeType                 { return TSTypePredicateNode }
func (n *TSImportType) Type() NodeType                    { return TSImportTypeNode }
func (n *TSExpressionWithTypeArguments) Type() NodeType   { return TSExpressionWithTypeArgumentsNode }
func (n *TSParameterProperty) Type() NodeType             { return TSParameterPropertyNode }
func (n *TSInterfaceDeclaration) Type() NodeType          { return TSInterfaceDeclarationNode }
func (n *TSInterfaceBody) Type() NodeType                 { return TSInterfaceBodyNode }
func (n *TSTypeAliasDeclaration) Type() NodeType          { return TSTypeAliasDeclarationNode }
func (n *TSEnumDeclaration) Type() NodeType               { return TSEnumDeclarationNode }
func (n *TSEnumMember) Type() NodeType                    { return TSEnumMemberNode }
func (n *TSModuleDeclaration) Type() NodeType             { return TSModuleDeclarationNode }
func (n *TSModuleBlock) Type() NodeType                   { return TSModuleBlockNode }
func (n *TSDeclareFunction) Type() NodeType               { return TSDeclareFunctionNode }
func (n *TSImportEqualsDeclaration) Type() NodeType       { return TSImportEqualsDeclarationNode }
func (n *TSExternalModuleReference) Type() NodeType       { return TSExternalModuleReferenceNode }
func (n *TSExportAssignment) Type() NodeType              { return TSExportAssignmentNode }
func (n *TSNamespaceExportDeclaration) Type() NodeType    { return TSNamespaceExportDeclarationNode }
func (n *TSAsExpression) Type() NodeType                  { return TSAsExpressionNode }
func (n *TSSatisfiesExpression) Type() NodeType           { return TSSatisfiesExpressionNode }
func (n *TSTypeAssertion) Type() NodeType                 { return TSTypeAssertionNode }
func (n *TSNonNullExpression) Type() NodeType             { return TSNonNullExpressionNode }
func (n *TSInstantiationExpression) Type() NodeType       { return TSInstantiationExpressionNode }
func (n *TSTypeCastExpression) Type() NodeType            { return TSTypeCastExpressionNode }

func (n *Placeholder) tsTypeNode()           {}
func (n *TSKeywordType) tsTypeNode()         {}
func (n *TSThisType) tsTypeNode()            {}
func (n *TSTypeReference) tsTypeNode()       {}
func (n *TSTypeQuery) tsTypeNode()           {}
func (n *TSTypeOperator) tsTypeNode()        {}
func (n *TSInferType) tsTypeNode()           {}
func (n *TSArrayType) tsTypeNode()           {}
func (n *TSIndexedAccessType) tsTypeNode()   {}
func (n *TSTupleType) tsTypeNode()           {}
func (n *TSOptionalType) tsTypeNode()        {}
func (n *TSRestType) tsTypeNode()            {}
func (n *TSNamedTupleMember) tsTypeNode()    {}
func (n *TSUnionType) tsTypeNode()           {}
func (n *TSIntersectionType) tsTypeNode()    {}
func (n *TSFunctionType) tsTypeNode()        {}
func (n *TSConstructorType) tsTypeNode()     {}
func (n *TSConditionalType) tsTypeNode()     {}
func (n *TSMappedType) tsTypeNode()          {}
func (n *TSLiteralType) tsTypeNode()         {}
func (n *TSTemplateLiteralType) tsTypeNode() {}
func (n *TSTypeLiteral) tsTypeNode()         {}
func (n *TSTypePredicate) tsTypeNode()       {}
func (n *TSImportType) tsTypeNode()          {}

func (n *TSPropertySignature) typeElementNode()             {}
func (n *TSMethodSignature) typeElementNode()               {}
func (n *TSCallSignatureDeclaration) typeElementNode()      {}
func (n *TSConstructSignatureDeclaration) typeElementNode() {}
func (n *TSIndexSignature) typeElementNode()                {}

func (n *TSIndexSignature) classMemberNode() {}

func (n *TSInterfaceDeclaration) stmtNode()       {}
func (n *TSTypeAliasDeclaration) stmtNode()       {}
func (n *TSEnumDeclaration) stmtNode()            {}
func (n *TSModuleDeclaration) stmtNode()          {}
func (n *TSDeclareFunction) stmtNode()            {}
func (n *TSImportEqualsDeclaration) stmtNode()    {}
func (n *TSExportAssignment) stmtNode()           {}
func (n *TSNamespaceExportDeclaration) stmtNode() {}

func (n *TSAsExpression) exprNode()            {}
func (n *TSSatisfiesExpression) exprNode()     {}
func (n *TSTypeAssertion) exprNode()           {}
func (n *TSNonNullExpression) exprNode()       {}
func (n *TSInstantiationExpression) exprNode() {}
func (n *TSTypeCastExpression) exprNode()      {}

func (n *TSParameterProperty) patternNode()   {}
func (n *TSAsExpression) patternNode()        {}
func (n *TSSatisfiesExpression) patternNode() {}
func (n *TSTypeAssertion) patternNode()       {}
func (n *TSNonNullExpression) patternNode()   {}
