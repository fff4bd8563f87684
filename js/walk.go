package js

import "sort"

// IVisitor represents the AST Visitor.
// Each Node encountered by `Walk` is passed to `Enter`, children nodes will be ignored if the returned IVisitor is nil.
// Exit is called after the children of a node were visited.
type IVisitor interface {
	Enter(n Node) IVisitor
	Exit(n Node)
}

// Walk traverses an AST in depth-first order, visiting the children of a node in source order.
func Walk(v IVisitor, n Node) {
	if isNil(n) {
		return
	}

	w := v.Enter(n)
	if w == nil {
		return
	}
	for _, child := range Children(n) {
		Walk(w, child)
	}
	v.Exit(n)
}

// Children returns the direct children of a node in source order. Synthetic children without a position keep their
// field order.
func Children(n Node) []Node {
	var list []Node
	switch n := n.(type) {
	case *Program:
		list = appendNodes(list, n.Interpreter)
		for _, item := range n.Body {
			list = appendNodes(list, item)
		}
		for _, item := range n.Directives {
			list = appendNodes(list, item)
		}
	case *ExpressionStatement:
		list = appendNodes(list, n.Expression)
	case *BlockStatement:
		for _, item := range n.Body {
			list = appendNodes(list, item)
		}
		for _, item := range n.Directives {
			list = appendNodes(list, item)
		}
	case *WithStatement:
		list = appendNodes(list, n.Object, n.Body)
	case *ReturnStatement:
		list = appendNodes(list, n.Argument)
	case *LabeledStatement:
		list = appendNodes(list, n.Label, n.Body)
	case *BreakStatement:
		list = appendNodes(list, n.Label)
	case *ContinueStatement:
		list = appendNodes(list, n.Label)
	case *IfStatement:
		list = appendNodes(list, n.Test, n.Consequent, n.Alternate)
	case *SwitchStatement:
		list = appendNodes(list, n.Discriminant)
		for _, item := range n.Cases {
			list = appendNodes(list, item)
		}
	case *SwitchCase:
		list = appendNodes(list, n.Test)
		for _, item := range n.Consequent {
			list = appendNodes(list, item)
		}
	case *ThrowStatement:
		list = appendNodes(list, n.Argument)
	case *TryStatement:
		list = appendNodes(list, n.Block, n.Handler, n.Finalizer)
	case *CatchClause:
		list = appendNodes(list, n.Param, n.Body)
	case *WhileStatement:
		list = appendNodes(list, n.Test, n.Body)
	case *DoWhileStatement:
		list = appendNodes(list, n.Body, n.Test)
	case *ForStatement:
		list = appendNodes(list, n.Init, n.Test, n.Update, n.Body)
	case *ForInStatement:
		list = appendNodes(list, n.Left, n.Right, n.Body)
	case *ForOfStatement:
		list = appendNodes(list, n.Left, n.Right, n.Body)
	case *FunctionDeclaration:
		list = appendNodes(list, n.ID, n.Body, n.TypeParameters, n.ReturnType)
		for _, item := range n.Params {
			list = appendNodes(list, item)
		}
	case *VariableDeclaration:
		for _, item := range n.Declarations {
			list = appendNodes(list, item)
		}
	case *VariableDeclarator:
		list = appendNodes(list, n.ID, n.Init)
	case *ClassDeclaration:
		list = appendNodes(list, n.ID, n.SuperClass, n.SuperTypeParameters, n.TypeParameters, n.Body)
		for _, item := range n.Implements {
			list = appendNodes(list, item)
		}
		for _, item := range n.Decorators {
			list = appendNodes(list, item)
		}
	case *ClassBody:
		for _, item := range n.Body {
			list = appendNodes(list, item)
		}
	case *ClassMethod:
		list = appendNodes(list, n.ID, n.Body, n.TypeParameters, n.ReturnType, n.Key)
		for _, item := range n.Params {
			list = appendNodes(list, item)
		}
		for _, item := range n.Decorators {
			list = appendNodes(list, item)
		}
	case *ClassProperty:
		list = appendNodes(list, n.Key, n.Value, n.TypeAnnotation)
		for _, item := range n.Decorators {
			list = appendNodes(list, item)
		}
	case *StaticBlock:
		for _, item := range n.Body {
			list = appendNodes(list, item)
		}
	case *Decorator:
		list = appendNodes(list, n.Expression)
	case *Identifier:
		list = appendNodes(list, n.TypeAnnotation)
		for _, item := range n.Decorators {
			list = appendNodes(list, item)
		}
	case *TemplateLiteral:
		for _, item := range n.Quasis {
			list = appendNodes(list, item)
		}
		for _, item := range n.Expressions {
			list = appendNodes(list, item)
		}
	case *TaggedTemplateExpression:
		list = appendNodes(list, n.Tag, n.Quasi, n.TypeParameters)
	case *MetaProperty:
		list = appendNodes(list, n.Meta, n.Property)
	case *ArrayExpression:
		for _, item := range n.Elements {
			list = appendNodes(list, item)
		}
	case *ObjectExpression:
		for _, item := range n.Properties {
			list = appendNodes(list, item)
		}
	case *ObjectProperty:
		list = appendNodes(list, n.Key, n.Value)
		for _, item := range n.Decorators {
			list = appendNodes(list, item)
		}
	case *ObjectMethod:
		list = appendNodes(list, n.ID, n.Body, n.TypeParameters, n.ReturnType, n.Key)
		for _, item := range n.Params {
			list = appendNodes(list, item)
		}
		for _, item := range n.Decorators {
			list = appendNodes(list, item)
		}
	case *RecordExpression:
		for _, item := range n.Properties {
			list = appendNodes(list, item)
		}
	case *TupleExpression:
		for _, item := range n.Elements {
			list = appendNodes(list, item)
		}
	case *FunctionExpression:
		list = appendNodes(list, n.ID, n.Body, n.TypeParameters, n.ReturnType)
		for _, item := range n.Params {
			list = appendNodes(list, item)
		}
	case *ArrowFunctionExpression:
		list = appendNodes(list, n.Body, n.TypeParameters, n.ReturnType)
		for _, item := range n.Params {
			list = appendNodes(list, item)
		}
	case *ClassExpression:
		list = appendNodes(list, n.ID, n.SuperClass, n.SuperTypeParameters, n.TypeParameters, n.Body)
		for _, item := range n.Implements {
			list = appendNodes(list, item)
		}
		for _, item := range n.Decorators {
			list = appendNodes(list, item)
		}
	case *UnaryExpression:
		list = appendNodes(list, n.Argument)
	case *UpdateExpression:
		list = appendNodes(list, n.Argument)
	case *BinaryExpression:
		list = appendNodes(list, n.Left, n.Right)
	case *LogicalExpression:
		list = appendNodes(list, n.Left, n.Right)
	case *AssignmentExpression:
		list = appendNodes(list, n.Left, n.Right)
	case *ConditionalExpression:
		list = appendNodes(list, n.Test, n.Consequent, n.Alternate)
	case *SequenceExpression:
		for _, item := range n.Expressions {
			list = appendNodes(list, item)
		}
	case *ParenthesizedExpression:
		list = appendNodes(list, n.Expression)
	case *MemberExpression:
		list = appendNodes(list, n.Object, n.Property)
	case *CallExpression:
		list = appendNodes(list, n.Callee, n.TypeParameters)
		for _, item := range n.Arguments {
			list = appendNodes(list, item)
		}
	case *NewExpression:
		list = appendNodes(list, n.Callee, n.TypeParameters)
		for _, item := range n.Arguments {
			list = appendNodes(list, item)
		}
	case *SpreadElement:
		list = appendNodes(list, n.Argument)
	case *YieldExpression:
		list = appendNodes(list, n.Argument)
	case *AwaitExpression:
		list = appendNodes(list, n.Argument)
	case *ObjectPattern:
		list = appendNodes(list, n.TypeAnnotation)
		for _, item := range n.Properties {
			list = appendNodes(list, item)
		}
	case *ArrayPattern:
		list = appendNodes(list, n.TypeAnnotation)
		for _, item := range n.Elements {
			list = appendNodes(list, item)
		}
	case *AssignmentPattern:
		list = appendNodes(list, n.Left, n.Right)
	case *RestElement:
		list = appendNodes(list, n.Argument, n.TypeAnnotation)
	case *ImportDeclaration:
		list = appendNodes(list, n.Source)
		for _, item := range n.Specifiers {
			list = appendNodes(list, item)
		}
		for _, item := range n.Attributes {
			list = appendNodes(list, item)
		}
	case *ImportSpecifier:
		list = appendNodes(list, n.Imported, n.Local)
	case *ImportDefaultSpecifier:
		list = appendNodes(list, n.Local)
	case *ImportNamespaceSpecifier:
		list = appendNodes(list, n.Local)
	case *ImportAttribute:
		list = appendNodes(list, n.Key, n.Value)
	case *ExportNamedDeclaration:
		list = appendNodes(list, n.Declaration, n.Source)
		for _, item := range n.Specifiers {
			list = appendNodes(list, item)
		}
		for _, item := range n.Attributes {
			list = appendNodes(list, item)
		}
	case *ExportSpecifier:
		list = appendNodes(list, n.Local, n.Exported)
	case *ExportNamespaceSpecifier:
		list = appendNodes(list, n.Exported)
	case *ExportDefaultDeclaration:
		list = appendNodes(list, n.Declaration)
	case *ExportAllDeclaration:
		list = appendNodes(list, n.Source)
		for _, item := range n.Attributes {
			list = appendNodes(list, item)
		}
	case *TSTypeAnnotation:
		list = appendNodes(list, n.TypeAnnotation)
	case *TSTypeParameterDeclaration:
		for _, item := range n.Params {
			list = appendNodes(list, item)
		}
	case *TSTypeParameter:
		list = appendNodes(list, n.Constraint, n.Default)
	case *TSTypeParameterInstantiation:
		for _, item := range n.Params {
			list = appendNodes(list, item)
		}
	case *TSTypeReference:
		list = appendNodes(list, n.TypeName, n.TypeParameters)
	case *TSQualifiedName:
		list = appendNodes(list, n.Left, n.Right)
	case *TSTypeQuery:
		list = appendNodes(list, n.ExprName, n.TypeParameters)
	case *TSTypeOperator:
		list = appendNodes(list, n.TypeAnnotation)
	case *TSInferType:
		list = appendNodes(list, n.TypeParameter)
	case *TSArrayType:
		list = appendNodes(list, n.ElementType)
	case *TSIndexedAccessType:
		list = appendNodes(list, n.ObjectType, n.IndexType)
	case *TSTupleType:
		for _, item := range n.ElementTypes {
			list = appendNodes(list, item)
		}
	case *TSOptionalType:
		list = appendNodes(list, n.TypeAnnotation)
	case *TSRestType:
		list = appendNodes(list, n.TypeAnnotation)
	case *TSNamedTupleMember:
		list = appendNodes(list, n.Label, n.ElementType)
	case *TSUnionType:
		for _, item := range n.Types {
			list = appendNodes(list, item)
		}
	case *TSIntersectionType:
		for _, item := range n.Types {
			list = appendNodes(list, item)
		}
	case *TSFunctionType:
		list = appendNodes(list, n.TypeParameters, n.ReturnType)
		for _, item := range n.Params {
			list = appendNodes(list, item)
		}
	case *TSConstructorType:
		list = appendNodes(list, n.TypeParameters, n.ReturnType)
		for _, item := range n.Params {
			list = appendNodes(list, item)
		}
	case *TSConditionalType:
		list = appendNodes(list, n.CheckType, n.ExtendsType, n.TrueType, n.FalseType)
	case *TSMappedType:
		list = appendNodes(list, n.TypeParameter, n.NameType, n.TypeAnnotation)
	case *TSLiteralType:
		list = appendNodes(list, n.Literal)
	case *TSTemplateLiteralType:
		for _, item := range n.Quasis {
			list = appendNodes(list, item)
		}
		for _, item := range n.Types {
			list = appendNodes(list, item)
		}
	case *TSTypeLiteral:
		for _, item := range n.Members {
			list = appendNodes(list, item)
		}
	case *TSPropertySignature:
		list = appendNodes(list, n.Key, n.TypeAnnotation)
	case *TSMethodSignature:
		list = appendNodes(list, n.Key, n.TypeParameters, n.ReturnType)
		for _, item := range n.Params {
			list = appendNodes(list, item)
		}
	case *TSCallSignatureDeclaration:
		list = appendNodes(list, n.TypeParameters, n.ReturnType)
		for _, item := range n.Params {
			list = appendNodes(list, item)
		}
	case *TSConstructSignatureDeclaration:
		list = appendNodes(list, n.TypeParameters, n.ReturnType)
		for _, item := range n.Params {
			list = appendNodes(list, item)
		}
	case *TSIndexSignature:
		list = appendNodes(list, n.TypeAnnotation)
		for _, item := range n.Parameters {
			list = appendNodes(list, item)
		}
	case *TSTypePredicate:
		list = appendNodes(list, n.ParameterName, n.TypeAnnotation)
	case *TSImportType:
		list = appendNodes(list, n.Argument, n.Qualifier, n.TypeParameters)
	case *TSExpressionWithTypeArguments:
		list = appendNodes(list, n.Expression, n.TypeParameters)
	case *TSParameterProperty:
		list = appendNodes(list, n.Parameter)
		for _, item := range n.Decorators {
			list = appendNodes(list, item)
		}
	case *TSInterfaceDeclaration:
		list = appendNodes(list, n.ID, n.TypeParameters, n.Body)
		for _, item := range n.Extends {
			list = appendNodes(list, item)
		}
	case *TSInterfaceBody:
		for _, item := range n.Body {
			list = appendNodes(list, item)
		}
	case *TSTypeAliasDeclaration:
		list = appendNodes(list, n.ID, n.TypeParameters, n.TypeAnnotation)
	case *TSEnumDeclaration:
		list = appendNodes(list, n.ID)
		for _, item := range n.Members {
			list = appendNodes(list, item)
		}
	case *TSEnumMember:
		list = appendNodes(list, n.ID, n.Initializer)
	case *TSModuleDeclaration:
		list = appendNodes(list, n.ID, n.Body)
	case *TSModuleBlock:
		for _, item := range n.Body {
			list = appendNodes(list, item)
		}
	case *TSDeclareFunction:
		list = appendNodes(list, n.ID, n.Body, n.TypeParameters, n.ReturnType)
		for _, item := range n.Params {
			list = appendNodes(list, item)
		}
	case *TSImportEqualsDeclaration:
		list = appendNodes(list, n.ID, n.ModuleReference)
	case *TSExternalModuleReference:
		list = appendNodes(list, n.Expression)
	case *TSExportAssignment:
		list = appendNodes(list, n.Expression)
	case *TSNamespaceExportDeclaration:
		list = appendNodes(list, n.ID)
	case *TSAsExpression:
		list = appendNodes(list, n.Expression, n.TypeAnnotation)
	case *TSSatisfiesExpression:
		list = appendNodes(list, n.Expression, n.TypeAnnotation)
	case *TSTypeAssertion:
		list = appendNodes(list, n.TypeAnnotation, n.Expression)
	case *TSNonNullExpression:
		list = appendNodes(list, n.Expression)
	case *TSInstantiationExpression:
		list = appendNodes(list, n.Expression, n.TypeParameters)
	case *TSTypeCastExpression:
		list = appendNodes(list, n.Expression, n.TypeAnnotation)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Base().Start.Index < list[j].Base().Start.Index
	})
	return list
}

func appendNodes(list []Node, ns ...Node) []Node {
	for _, n := range ns {
		if !isNil(n) {
			list = append(list, n)
		}
	}
	return list
}
