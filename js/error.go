package js

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorCode identifies a kind of diagnostic.
type ErrorCode uint16

// ErrorCode values.
const (
	// lexical
	UnterminatedComment ErrorCode = iota
	UnterminatedString
	UnterminatedTemplate
	UnterminatedRegExp
	InvalidOrUnexpectedToken
	InvalidNumber
	InvalidDigit
	InvalidOrMissingExponent
	InvalidBigIntLiteral
	InvalidDecimal
	NumberIdentifier
	UnexpectedNumericSeparator
	NumericSeparatorInEscapeSequence
	ZeroDigitNumericSeparator
	InvalidEscapeSequence
	InvalidEscapeSequenceTemplate
	InvalidCodePoint
	MalformedRegExpFlags
	DuplicateRegExpFlags
	IncompatibleRegExpUVFlags
	MissingUnicodeEscape
	EscapedCharNotAnIdentifier
	UnexpectedInterpreterDirective
	UnexpectedDigitAfterHash

	// strict mode
	StrictOctalLiteral
	StrictNumericEscape
	StrictDelete
	StrictEvalArguments
	StrictEvalArgumentsBinding
	StrictFunction
	StrictWith

	// syntax
	UnexpectedToken
	UnexpectedKeyword
	UnexpectedReservedWord
	InvalidEscapedReservedWord
	MissingSemicolon
	MissingFeature
	AccessorIsGenerator
	ArgumentsInClass
	AsyncFunctionInSingleStatementContext
	AwaitBindingIdentifier
	AwaitBindingIdentifierInStaticBlock
	AwaitExpressionFormalParameter
	AwaitNotInAsyncContext
	AwaitNotInAsyncFunction
	AwaitUsingNotInAsyncContext
	BadGetterArity
	BadSetterArity
	BadSetterRestParameter
	ConstructorClassField
	ConstructorClassPrivateField
	ConstructorIsAccessor
	ConstructorIsAsync
	ConstructorIsGenerator
	DeclarationMissingInitializer
	DecoratorBeforeExport
	DecoratorConstructor
	DecoratorsBeforeAfterExport
	DecoratorStaticBlock
	DeletePrivateField
	DestructureNamedImport
	DuplicateConstructor
	DuplicateDefaultExport
	DuplicateExport
	DuplicateProto
	ElementAfterRest
	ExportBindingIsString
	ForInOfLoopInitializer
	ForInUsing
	ForOfAsync
	ForOfLet
	GeneratorInSingleStatementContext
	IllegalBreakContinue
	IllegalLanguageModeDirective
	IllegalReturn
	ImportAttributesUseAssert
	ImportBindingIsString
	ImportCallArity
	ImportCallNotNewExpression
	ImportCallSpreadArgument
	ImportMetaOutsideModule
	ImportOutsideModule
	InvalidCoverInitializedName
	InvalidLhs
	InvalidLhsBinding
	InvalidLhsOptionalChaining
	InvalidParenthesizedAssignment
	InvalidPrivateFieldResolution
	InvalidPropertyBindingPattern
	InvalidRestAssignmentPattern
	LabelRedeclaration
	LetInLexicalBinding
	LineTerminatorBeforeArrow
	MissingClassName
	MissingEqInAssignment
	MixingCoalesceWithLogical
	ModuleAttributesWithDuplicateKeys
	ModuleExportUndefined
	MultipleDefaultsInSwitch
	NewlineAfterThrow
	NoCatchOrFinally
	ObsoleteAwaitStar
	OptionalChainingNoNew
	OptionalChainingNoTemplate
	ParamDupe
	PatternHasAccessor
	PatternHasMethod
	PrivateInExpectedIn
	PrivateNameRedeclaration
	RestTrailingComma
	SloppyFunction
	SloppyFunctionAnnexB
	StaticPrototype
	SuperNotAllowed
	SuperPrivateField
	TrailingDecorator
	UnexpectedImportExport
	UnexpectedLeadingDecorator
	UnexpectedLexicalDeclaration
	UnexpectedNewTarget
	UnexpectedPrivateField
	UnexpectedSuper
	UnexpectedTokenUnaryExponentiation
	UnexpectedUsingDeclaration
	UnsupportedDecoratorExport
	UnsupportedDefaultExport
	UnsupportedImport
	UnsupportedMetaProperty
	UnsupportedParameterDecorator
	UnsupportedPropertyDecorator
	UnsupportedSuper
	UsingDeclarationHasBindingPattern
	VarRedeclaration
	YieldBindingIdentifier
	YieldInParameter

	// TypeScript
	TSAbstractMethodHasImplementation
	TSAbstractPropertyHasInitializer
	TSAccessorCannotBeOptional
	TSAccessorCannotDeclareThisParameter
	TSAccessorCannotHaveTypeParameters
	TSClassMethodHasDeclare
	TSClassMethodHasReadonly
	TSConstructorHasReturnType
	TSConstructorHasTypeParameters
	TSDeclareAccessor
	TSDeclareClassFieldHasInitializer
	TSDeclareFunctionHasImplementation
	TSDeclareInAmbientContext
	TSDuplicateAccessibilityModifier
	TSDuplicateModifier
	TSEmptyHeritageClauseType
	TSEmptyTypeArguments
	TSEmptyTypeParameters
	TSExpectedAmbientAfterExportDeclare
	TSImportAliasHasImportType
	TSIncompatibleModifiers
	TSIndexSignatureHasAbstract
	TSIndexSignatureHasAccessibility
	TSIndexSignatureHasDeclare
	TSIndexSignatureHasOverride
	TSIndexSignatureHasStatic
	TSInitializerNotAllowedInAmbientContext
	TSInvalidModifierOnTypeMember
	TSInvalidModifierOnTypeParameter
	TSInvalidModifierOnTypeParameterPositions
	TSInvalidModifiersOrder
	TSInvalidPropertyAccessAfterInstantiationExpression
	TSInvalidTupleMemberLabel
	TSMissingInterfaceName
	TSNonAbstractClassHasAbstractMethod
	TSNonClassMethodPropertyHasAbstractModifer
	TSOptionalTypeBeforeRequired
	TSOverrideNotInSubClass
	TSPatternIsOptional
	TSPrivateElementHasAbstract
	TSPrivateElementHasAccessibility
	TSReadonlyForMethodSignature
	TSReservedArrowTypeParam
	TSReservedTypeAssertion
	TSSetAccessorCannotHaveOptionalParameter
	TSSetAccessorCannotHaveRestParameter
	TSSetAccessorCannotHaveReturnType
	TSSingleTypeParameterWithoutTrailingComma
	TSStaticBlockCannotHaveModifier
	TSTypeAnnotationAfterAssign
	TSTypeImportCannotSpecifyDefaultAndNamed
	TSTypeModifierIsUsedInTypeExports
	TSTypeModifierIsUsedInTypeImports
	TSUnexpectedParameterModifier
	TSUnexpectedReadonly
	TSUnexpectedTypeAnnotation
	TSUnexpectedTypeCastInParameter
	TSUnsupportedImportTypeArgument
	TSUnsupportedParameterPropertyKind
	TSUnsupportedSignatureParameterKind

	numErrorCodes
)

type errorInfo struct {
	name    string
	message string // format string, filled with the diagnostic details
}

var errorInfos = [numErrorCodes]errorInfo{
	UnterminatedComment:              {"UnterminatedComment", "Unterminated comment."},
	UnterminatedString:               {"UnterminatedString", "Unterminated string constant."},
	UnterminatedTemplate:             {"UnterminatedTemplate", "Unterminated template."},
	UnterminatedRegExp:               {"UnterminatedRegExp", "Unterminated regexp."},
	InvalidOrUnexpectedToken:         {"InvalidOrUnexpectedToken", "Unexpected character '%s'."},
	InvalidNumber:                    {"InvalidNumber", "Invalid number."},
	InvalidDigit:                     {"InvalidDigit", "Expected number in radix %d."},
	InvalidOrMissingExponent:         {"InvalidOrMissingExponent", "Floating-point numbers require a valid exponent after the 'e'."},
	InvalidBigIntLiteral:             {"InvalidBigIntLiteral", "Invalid BigIntLiteral."},
	InvalidDecimal:                   {"InvalidDecimal", "Invalid decimal."},
	NumberIdentifier:                 {"NumberIdentifier", "Identifier directly after number."},
	UnexpectedNumericSeparator:       {"UnexpectedNumericSeparator", "A numeric separator is only allowed between two digits."},
	NumericSeparatorInEscapeSequence: {"NumericSeparatorInEscapeSequence", "Numeric separators are not allowed inside unicode escape sequences or hex escape sequences."},
	ZeroDigitNumericSeparator:        {"ZeroDigitNumericSeparator", "Numeric separator can not be used after leading 0."},
	InvalidEscapeSequence:            {"InvalidEscapeSequence", "Bad character escape sequence."},
	InvalidEscapeSequenceTemplate:    {"InvalidEscapeSequenceTemplate", "Invalid escape sequence in template."},
	InvalidCodePoint:                 {"InvalidCodePoint", "Code point out of bounds."},
	MalformedRegExpFlags:             {"MalformedRegExpFlags", "Invalid regular expression flag."},
	DuplicateRegExpFlags:             {"DuplicateRegExpFlags", "Duplicate regular expression flag."},
	IncompatibleRegExpUVFlags:        {"IncompatibleRegExpUVFlags", "The 'u' and 'v' regular expression flags cannot be enabled at the same time."},
	MissingUnicodeEscape:             {"MissingUnicodeEscape", "Expecting Unicode escape sequence \\uXXXX."},
	EscapedCharNotAnIdentifier:       {"EscapedCharNotAnIdentifier", "Invalid Unicode escape."},
	UnexpectedInterpreterDirective:   {"UnexpectedInterpreterDirective", "Unexpected interpreter directive."},
	UnexpectedDigitAfterHash:         {"UnexpectedDigitAfterHash", "Unexpected digit after hash token."},

	StrictOctalLiteral:         {"StrictOctalLiteral", "Legacy octal literals are not allowed in strict mode."},
	StrictNumericEscape:        {"StrictNumericEscape", "The only valid numeric escape in strict mode is '\\0'."},
	StrictDelete:               {"StrictDelete", "Deleting local variable in strict mode."},
	StrictEvalArguments:        {"StrictEvalArguments", "Assigning to '%s' in strict mode."},
	StrictEvalArgumentsBinding: {"StrictEvalArgumentsBinding", "Binding '%s' in strict mode."},
	StrictFunction:             {"StrictFunction", "In strict mode code, functions can only be declared at top level or inside a block."},
	StrictWith:                 {"StrictWith", "'with' in strict mode."},

	UnexpectedToken:                       {"UnexpectedToken", "Unexpected token%s."},
	UnexpectedKeyword:                     {"UnexpectedKeyword", "Unexpected keyword '%s'."},
	UnexpectedReservedWord:                {"UnexpectedReservedWord", "Unexpected reserved word '%s'."},
	InvalidEscapedReservedWord:            {"InvalidEscapedReservedWord", "Escape sequence in keyword %s."},
	MissingSemicolon:                      {"MissingSemicolon", "Missing semicolon."},
	MissingFeature:                        {"MissingFeature", "This experimental syntax requires enabling the feature: \"%s\"."},
	AccessorIsGenerator:                   {"AccessorIsGenerator", "A %ster cannot be a generator."},
	ArgumentsInClass:                      {"ArgumentsInClass", "'arguments' is only allowed in functions and class methods."},
	AsyncFunctionInSingleStatementContext: {"AsyncFunctionInSingleStatementContext", "Async functions can only be declared at the top level or inside a block."},
	AwaitBindingIdentifier:                {"AwaitBindingIdentifier", "Can not use 'await' as identifier inside an async function."},
	AwaitBindingIdentifierInStaticBlock:   {"AwaitBindingIdentifierInStaticBlock", "Can not use 'await' as identifier inside a static block."},
	AwaitExpressionFormalParameter:        {"AwaitExpressionFormalParameter", "'await' is not allowed in async function parameters."},
	AwaitNotInAsyncContext:                {"AwaitNotInAsyncContext", "'await' is only allowed within async functions and at the top levels of modules."},
	AwaitNotInAsyncFunction:               {"AwaitNotInAsyncFunction", "'await' is only allowed within async functions."},
	AwaitUsingNotInAsyncContext:           {"AwaitUsingNotInAsyncContext", "'await using' is only allowed within async functions and at the top levels of modules."},
	BadGetterArity:                        {"BadGetterArity", "A 'get' accessor must not have any formal parameters."},
	BadSetterArity:                        {"BadSetterArity", "A 'set' accessor must have exactly one formal parameter."},
	BadSetterRestParameter:                {"BadSetterRestParameter", "A 'set' accessor function argument must not be a rest parameter."},
	ConstructorClassField:                 {"ConstructorClassField", "Classes may not have a field named 'constructor'."},
	ConstructorClassPrivateField:          {"ConstructorClassPrivateField", "Classes may not have a private field named '#constructor'."},
	ConstructorIsAccessor:                 {"ConstructorIsAccessor", "Class constructor may not be an accessor."},
	ConstructorIsAsync:                    {"ConstructorIsAsync", "Constructor can't be an async function."},
	ConstructorIsGenerator:                {"ConstructorIsGenerator", "Constructor can't be a generator."},
	DeclarationMissingInitializer:         {"DeclarationMissingInitializer", "Missing initializer in %s declaration."},
	DecoratorBeforeExport:                 {"DecoratorBeforeExport", "Decorators must be placed *after* the 'export' keyword."},
	DecoratorConstructor:                  {"DecoratorConstructor", "Decorators can't be used with a constructor. Did you mean '@dec class { ... }'?"},
	DecoratorsBeforeAfterExport:           {"DecoratorsBeforeAfterExport", "Decorators can be placed *either* before or after the 'export' keyword, but not in both locations at the same time."},
	DecoratorStaticBlock:                  {"DecoratorStaticBlock", "Decorators can't be used with a static block."},
	DeletePrivateField:                    {"DeletePrivateField", "Deleting a private field is not allowed."},
	DestructureNamedImport:                {"DestructureNamedImport", "ES2015 named imports do not destructure. Use another statement for destructuring after the import."},
	DuplicateConstructor:                  {"DuplicateConstructor", "Duplicate constructor in the same class."},
	DuplicateDefaultExport:                {"DuplicateDefaultExport", "Only one default export allowed per module."},
	DuplicateExport:                       {"DuplicateExport", "`%s` has already been exported. Exported identifiers must be unique."},
	DuplicateProto:                        {"DuplicateProto", "Redefinition of __proto__ property."},
	ElementAfterRest:                      {"ElementAfterRest", "Rest element must be last element."},
	ExportBindingIsString:                 {"ExportBindingIsString", "A string literal cannot be used as an exported binding without `from`."},
	ForInOfLoopInitializer:                {"ForInOfLoopInitializer", "'%s' loop variable declaration may not have an initializer."},
	ForInUsing:                            {"ForInUsing", "For-in loop may not start with 'using' declaration."},
	ForOfAsync:                            {"ForOfAsync", "The left-hand side of a for-of loop may not be 'async'."},
	ForOfLet:                              {"ForOfLet", "The left-hand side of a for-of loop may not start with 'let'."},
	GeneratorInSingleStatementContext:     {"GeneratorInSingleStatementContext", "Generators can only be declared at the top level or inside a block."},
	IllegalBreakContinue:                  {"IllegalBreakContinue", "Unsyntactic %s."},
	IllegalLanguageModeDirective:          {"IllegalLanguageModeDirective", "Illegal 'use strict' directive in function with non-simple parameter list."},
	IllegalReturn:                         {"IllegalReturn", "'return' outside of function."},
	ImportAttributesUseAssert:             {"ImportAttributesUseAssert", "The `assert` keyword in import attributes is deprecated and it has been replaced by the `with` keyword."},
	ImportBindingIsString:                 {"ImportBindingIsString", "A string literal cannot be used as an imported binding."},
	ImportCallArity:                       {"ImportCallArity", "`import()` requires exactly one or two arguments."},
	ImportCallNotNewExpression:            {"ImportCallNotNewExpression", "Cannot use new with import(...)."},
	ImportCallSpreadArgument:              {"ImportCallSpreadArgument", "`...` is not allowed in `import()`."},
	ImportMetaOutsideModule:               {"ImportMetaOutsideModule", "import.meta may appear only with 'sourceType: \"module\"'"},
	ImportOutsideModule:                   {"ImportOutsideModule", "'import' and 'export' may appear only with 'sourceType: \"module\"'"},
	InvalidCoverInitializedName:           {"InvalidCoverInitializedName", "Invalid shorthand property initializer."},
	InvalidLhs:                            {"InvalidLhs", "Invalid left-hand side in %s."},
	InvalidLhsBinding:                     {"InvalidLhsBinding", "Binding invalid left-hand side in %s."},
	InvalidLhsOptionalChaining:            {"InvalidLhsOptionalChaining", "Invalid optional chaining in the left-hand side of %s."},
	InvalidParenthesizedAssignment:        {"InvalidParenthesizedAssignment", "Invalid parenthesized assignment pattern."},
	InvalidPrivateFieldResolution:         {"InvalidPrivateFieldResolution", "Private name #%s is not defined."},
	InvalidPropertyBindingPattern:         {"InvalidPropertyBindingPattern", "Binding member expression."},
	InvalidRestAssignmentPattern:          {"InvalidRestAssignmentPattern", "Invalid rest operator's argument."},
	LabelRedeclaration:                    {"LabelRedeclaration", "Label '%s' is already declared."},
	LetInLexicalBinding:                   {"LetInLexicalBinding", "'let' is disallowed as a lexically bound name."},
	LineTerminatorBeforeArrow:             {"LineTerminatorBeforeArrow", "No line break is allowed before '=>'."},
	MissingClassName:                      {"MissingClassName", "A class name is required."},
	MissingEqInAssignment:                 {"MissingEqInAssignment", "Only '=' operator can be used for specifying default value."},
	MixingCoalesceWithLogical:             {"MixingCoalesceWithLogical", "Nullish coalescing operator(??) requires parens when mixing with logical operators."},
	ModuleAttributesWithDuplicateKeys:     {"ModuleAttributesWithDuplicateKeys", "Duplicate key \"%s\" is not allowed in module attributes."},
	ModuleExportUndefined:                 {"ModuleExportUndefined", "Export '%s' is not defined."},
	MultipleDefaultsInSwitch:              {"MultipleDefaultsInSwitch", "Multiple default clauses."},
	NewlineAfterThrow:                     {"NewlineAfterThrow", "Illegal newline after throw."},
	NoCatchOrFinally:                      {"NoCatchOrFinally", "Missing catch or finally clause."},
	ObsoleteAwaitStar:                     {"ObsoleteAwaitStar", "'await*' has been removed from the async functions proposal. Use Promise.all() instead."},
	OptionalChainingNoNew:                 {"OptionalChainingNoNew", "Constructors in/after an Optional Chain are not allowed."},
	OptionalChainingNoTemplate:            {"OptionalChainingNoTemplate", "Tagged Template Literals are not allowed in optionalChain."},
	ParamDupe:                             {"ParamDupe", "Argument name clash."},
	PatternHasAccessor:                    {"PatternHasAccessor", "Object pattern can't contain getter or setter."},
	PatternHasMethod:                      {"PatternHasMethod", "Object pattern can't contain methods."},
	PrivateInExpectedIn:                   {"PrivateInExpectedIn", "Private names are only allowed in property accesses (`obj.#%s`) or in `in` expressions (`#%s in obj`)."},
	PrivateNameRedeclaration:              {"PrivateNameRedeclaration", "Duplicate private name #%s."},
	RestTrailingComma:                     {"RestTrailingComma", "Unexpected trailing comma after rest element."},
	SloppyFunction:                        {"SloppyFunction", "In non-strict mode code, functions can only be declared at top level or inside a block."},
	SloppyFunctionAnnexB:                  {"SloppyFunctionAnnexB", "In non-strict mode code, functions can only be declared at top level, inside a block, or as the body of an if statement."},
	StaticPrototype:                       {"StaticPrototype", "Classes may not have static property named prototype."},
	SuperNotAllowed:                       {"SuperNotAllowed", "`super()` is only valid inside a class constructor of a subclass."},
	SuperPrivateField:                     {"SuperPrivateField", "Private fields can't be accessed on super."},
	TrailingDecorator:                     {"TrailingDecorator", "Decorators must be attached to a class element."},
	UnexpectedImportExport:                {"UnexpectedImportExport", "'import' and 'export' may only appear at the top level."},
	UnexpectedLeadingDecorator:            {"UnexpectedLeadingDecorator", "Leading decorators must be attached to a class declaration."},
	UnexpectedLexicalDeclaration:          {"UnexpectedLexicalDeclaration", "Lexical declaration cannot appear in a single-statement context."},
	UnexpectedNewTarget:                   {"UnexpectedNewTarget", "`new.target` can only be used in functions or class properties."},
	UnexpectedPrivateField:                {"UnexpectedPrivateField", "Unexpected private name."},
	UnexpectedSuper:                       {"UnexpectedSuper", "'super' is only allowed in object methods and classes."},
	UnexpectedTokenUnaryExponentiation:    {"UnexpectedTokenUnaryExponentiation", "Illegal expression. Wrap left hand side or entire exponentiation in parentheses."},
	UnexpectedUsingDeclaration:            {"UnexpectedUsingDeclaration", "Using declaration cannot appear in the top level when source type is `script`."},
	UnsupportedDecoratorExport:            {"UnsupportedDecoratorExport", "A decorated export must export a class declaration."},
	UnsupportedDefaultExport:              {"UnsupportedDefaultExport", "Only expressions, functions or classes are allowed as the `default` export."},
	UnsupportedImport:                     {"UnsupportedImport", "`import` can only be used in `import()` or `import.meta`."},
	UnsupportedMetaProperty:               {"UnsupportedMetaProperty", "The only valid meta property for %s is %s.%s."},
	UnsupportedParameterDecorator:         {"UnsupportedParameterDecorator", "Decorators cannot be used to decorate parameters."},
	UnsupportedPropertyDecorator:          {"UnsupportedPropertyDecorator", "Decorators cannot be used to decorate object literal properties."},
	UnsupportedSuper:                      {"UnsupportedSuper", "'super' can only be used with function calls (i.e. super()) or in property accesses (i.e. super.prop or super[prop])."},
	UsingDeclarationHasBindingPattern:     {"UsingDeclarationHasBindingPattern", "Using declaration cannot have destructuring patterns."},
	VarRedeclaration:                      {"VarRedeclaration", "Identifier '%s' has already been declared."},
	YieldBindingIdentifier:                {"YieldBindingIdentifier", "Can not use 'yield' as identifier inside a generator."},
	YieldInParameter:                      {"YieldInParameter", "Yield expression is not allowed in formal parameters."},

	TSAbstractMethodHasImplementation:                   {"AbstractMethodHasImplementation", "Method '%s' cannot have an implementation because it is marked abstract."},
	TSAbstractPropertyHasInitializer:                    {"AbstractPropertyHasInitializer", "Property '%s' cannot have an initializer because it is marked abstract."},
	TSAccessorCannotBeOptional:                          {"AccessorCannotBeOptional", "An 'accessor' property cannot be declared optional."},
	TSAccessorCannotDeclareThisParameter:                {"AccessorCannotDeclareThisParameter", "'get' and 'set' accessors cannot declare 'this' parameters."},
	TSAccessorCannotHaveTypeParameters:                  {"AccessorCannotHaveTypeParameters", "An accessor cannot have type parameters."},
	TSClassMethodHasDeclare:                             {"ClassMethodHasDeclare", "Class methods cannot have the 'declare' modifier."},
	TSClassMethodHasReadonly:                            {"ClassMethodHasReadonly", "Class methods cannot have the 'readonly' modifier."},
	TSConstructorHasReturnType:                          {"ConstructorHasReturnType", "Type annotation cannot appear on a constructor declaration."},
	TSConstructorHasTypeParameters:                      {"ConstructorHasTypeParameters", "Type parameters cannot appear on a constructor declaration."},
	TSDeclareAccessor:                                   {"DeclareAccessor", "'declare' is not allowed in %ster."},
	TSDeclareClassFieldHasInitializer:                   {"DeclareClassFieldHasInitializer", "Initializers are not allowed in ambient contexts."},
	TSDeclareFunctionHasImplementation:                  {"DeclareFunctionHasImplementation", "An implementation cannot be declared in ambient contexts."},
	TSDeclareInAmbientContext:                           {"DeclareInAmbientContext", "A 'declare' modifier cannot be used in an already ambient context."},
	TSDuplicateAccessibilityModifier:                    {"DuplicateAccessibilityModifier", "Accessibility modifier already seen."},
	TSDuplicateModifier:                                 {"DuplicateModifier", "Duplicate modifier: '%s'."},
	TSEmptyHeritageClauseType:                           {"EmptyHeritageClauseType", "'%s' list cannot be empty."},
	TSEmptyTypeArguments:                                {"EmptyTypeArguments", "Type argument list cannot be empty."},
	TSEmptyTypeParameters:                               {"EmptyTypeParameters", "Type parameter list cannot be empty."},
	TSExpectedAmbientAfterExportDeclare:                 {"ExpectedAmbientAfterExportDeclare", "'export declare' must be followed by an ambient declaration."},
	TSImportAliasHasImportType:                          {"ImportAliasHasImportType", "An import alias can not use 'import type'."},
	TSIncompatibleModifiers:                             {"IncompatibleModifiers", "'%s' modifier cannot be used with '%s' modifier."},
	TSIndexSignatureHasAbstract:                         {"IndexSignatureHasAbstract", "Index signatures cannot have the 'abstract' modifier."},
	TSIndexSignatureHasAccessibility:                    {"IndexSignatureHasAccessibility", "Index signatures cannot have an accessibility modifier ('%s')."},
	TSIndexSignatureHasDeclare:                          {"IndexSignatureHasDeclare", "Index signatures cannot have the 'declare' modifier."},
	TSIndexSignatureHasOverride:                         {"IndexSignatureHasOverride", "'override' modifier cannot appear on an index signature."},
	TSIndexSignatureHasStatic:                           {"IndexSignatureHasStatic", "Index signatures cannot have the 'static' modifier."},
	TSInitializerNotAllowedInAmbientContext:             {"InitializerNotAllowedInAmbientContext", "Initializers are not allowed in ambient contexts."},
	TSInvalidModifierOnTypeMember:                       {"InvalidModifierOnTypeMember", "'%s' modifier cannot appear on a type member."},
	TSInvalidModifierOnTypeParameter:                    {"InvalidModifierOnTypeParameter", "'%s' modifier cannot appear on a type parameter."},
	TSInvalidModifierOnTypeParameterPositions:           {"InvalidModifierOnTypeParameterPositions", "'%s' modifier can only appear on a type parameter of a class, interface or type alias."},
	TSInvalidModifiersOrder:                             {"InvalidModifiersOrder", "'%s' modifier must precede '%s' modifier."},
	TSInvalidPropertyAccessAfterInstantiationExpression: {"InvalidPropertyAccessAfterInstantiationExpression", "Invalid property access after an instantiation expression. You can either wrap the instantiation expression in parentheses, or delete the type arguments."},
	TSInvalidTupleMemberLabel:                           {"InvalidTupleMemberLabel", "Tuple members must be labeled with a simple identifier."},
	TSMissingInterfaceName:                              {"MissingInterfaceName", "'interface' declarations must be followed by an identifier."},
	TSNonAbstractClassHasAbstractMethod:                 {"NonAbstractClassHasAbstractMethod", "Abstract methods can only appear within an abstract class."},
	TSNonClassMethodPropertyHasAbstractModifer:          {"NonClassMethodPropertyHasAbstractModifer", "'abstract' modifier can only appear on a class, method, or property declaration."},
	TSOptionalTypeBeforeRequired:                        {"OptionalTypeBeforeRequired", "A required element cannot follow an optional element."},
	TSOverrideNotInSubClass:                             {"OverrideNotInSubClass", "This member cannot have an 'override' modifier because its containing class does not extend another class."},
	TSPatternIsOptional:                                 {"PatternIsOptional", "A binding pattern parameter cannot be optional in an implementation signature."},
	TSPrivateElementHasAbstract:                         {"PrivateElementHasAbstract", "Private elements cannot have the 'abstract' modifier."},
	TSPrivateElementHasAccessibility:                    {"PrivateElementHasAccessibility", "Private elements cannot have an accessibility modifier ('%s')."},
	TSReadonlyForMethodSignature:                        {"ReadonlyForMethodSignature", "'readonly' modifier can only appear on a property declaration or index signature."},
	TSReservedArrowTypeParam:                            {"ReservedArrowTypeParam", "This syntax is reserved in files with the .mts or .cts extension. Add a trailing comma, as in `<T,>() => ...`."},
	TSReservedTypeAssertion:                             {"ReservedTypeAssertion", "This syntax is reserved in files with the .mts or .cts extension. Use an `as` expression instead."},
	TSSetAccessorCannotHaveOptionalParameter:            {"SetAccessorCannotHaveOptionalParameter", "A 'set' accessor cannot have an optional parameter."},
	TSSetAccessorCannotHaveRestParameter:                {"SetAccessorCannotHaveRestParameter", "A 'set' accessor cannot have rest parameter."},
	TSSetAccessorCannotHaveReturnType:                   {"SetAccessorCannotHaveReturnType", "A 'set' accessor cannot have a return type annotation."},
	TSSingleTypeParameterWithoutTrailingComma:           {"SingleTypeParameterWithoutTrailingComma", "Single type parameter %s should have a trailing comma. Example usage: <%s,>."},
	TSStaticBlockCannotHaveModifier:                     {"StaticBlockCannotHaveModifier", "Static class blocks cannot have any modifier."},
	TSTypeAnnotationAfterAssign:                         {"TypeAnnotationAfterAssign", "Type annotations must come before default assignments, e.g. instead of `age = 25: number` use `age: number = 25`."},
	TSTypeImportCannotSpecifyDefaultAndNamed:            {"TypeImportCannotSpecifyDefaultAndNamed", "A type-only import can specify a default import or named bindings, but not both."},
	TSTypeModifierIsUsedInTypeExports:                   {"TypeModifierIsUsedInTypeExports", "The 'type' modifier cannot be used on a named export when 'export type' is used on its export statement."},
	TSTypeModifierIsUsedInTypeImports:                   {"TypeModifierIsUsedInTypeImports", "The 'type' modifier cannot be used on a named import when 'import type' is used on its import statement."},
	TSUnexpectedParameterModifier:                       {"UnexpectedParameterModifier", "A parameter property is only allowed in a constructor implementation."},
	TSUnexpectedReadonly:                                {"UnexpectedReadonly", "'readonly' type modifier is only permitted on array and tuple literal types."},
	TSUnexpectedTypeAnnotation:                          {"UnexpectedTypeAnnotation", "Did not expect a type annotation here."},
	TSUnexpectedTypeCastInParameter:                     {"UnexpectedTypeCastInParameter", "Unexpected type cast in parameter position."},
	TSUnsupportedImportTypeArgument:                     {"UnsupportedImportTypeArgument", "Argument in a type import must be a string literal."},
	TSUnsupportedParameterPropertyKind:                  {"UnsupportedParameterPropertyKind", "A parameter property may not be declared using a binding pattern."},
	TSUnsupportedSignatureParameterKind:                 {"UnsupportedSignatureParameterKind", "Name in a signature must be an Identifier, ObjectPattern or ArrayPattern, instead got %s."},
}

// String returns the name of the error code.
func (code ErrorCode) String() string {
	if code < numErrorCodes {
		return errorInfos[code].name
	}
	return fmt.Sprintf("ErrorCode(%d)", code)
}

// IsStrictModeError returns true for diagnostics that only apply to strict mode code.
func (code ErrorCode) IsStrictModeError() bool {
	return StrictOctalLiteral <= code && code <= StrictWith
}

// IsTypeScriptError returns true for diagnostics raised by the TypeScript grammar.
func (code ErrorCode) IsTypeScriptError() bool {
	return TSAbstractMethodHasImplementation <= code && code < numErrorCodes
}

////////////////////////////////////////////////////////////////

// Diagnostic is a positioned syntax error.
type Diagnostic struct {
	Code    ErrorCode
	Message string
	Loc     Position
	Details []interface{}
}

func newDiagnostic(code ErrorCode, loc Position, details ...interface{}) *Diagnostic {
	msg := errorInfos[code].message
	if strings.Contains(msg, "%") {
		msg = fmt.Sprintf(msg, details...)
	}
	return &Diagnostic{
		Code:    code,
		Message: msg,
		Loc:     loc,
		Details: details,
	}
}

// Error returns the message followed by the line and column.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s (%d:%d)", d.Message, d.Loc.Line, d.Loc.Column)
}

// raise reports a diagnostic. In recoverable mode the diagnostic is collected and parsing continues, otherwise it
// becomes the fatal error and all further tokens are ErrorToken. Nothing is reported while looking ahead.
func (p *Parser) raise(code ErrorCode, loc Position, details ...interface{}) *Diagnostic {
	d := newDiagnostic(code, loc, details...)
	if p.s.inLookahead || p.s.err != nil {
		return d
	}
	if !p.o.ContinueOnError || 0 < p.o.MaxErrors && p.o.MaxErrors <= len(p.s.errors) {
		p.fatal(d)
		return d
	}
	p.s.errors = append(p.s.errors, d)
	return d
}

// raiseFatal reports a diagnostic after which parsing cannot continue, regardless of the recovery mode.
func (p *Parser) raiseFatal(code ErrorCode, loc Position, details ...interface{}) *Diagnostic {
	d := newDiagnostic(code, loc, details...)
	if p.s.inLookahead || p.s.err != nil {
		return d
	}
	p.fatal(d)
	return d
}

func (p *Parser) fatal(d *Diagnostic) {
	p.s.err = d
	p.s.tok.Type = ErrorToken
}

// raiseOverwrite replaces a diagnostic previously raised at the same location, or raises a new one.
func (p *Parser) raiseOverwrite(code ErrorCode, loc Position, details ...interface{}) *Diagnostic {
	if !p.s.inLookahead && p.s.err == nil {
		for i := len(p.s.errors) - 1; 0 <= i; i-- {
			prev := p.s.errors[i]
			if prev.Loc.Index == loc.Index {
				d := newDiagnostic(code, loc, details...)
				p.s.errors[i] = d
				p.record(func() { p.s.errors[i] = prev })
				return d
			} else if prev.Loc.Index < loc.Index {
				break
			}
		}
	}
	return p.raise(code, loc, details...)
}

// deferStrict reports a diagnostic that only applies in strict mode. Outside strict mode it is kept until the
// enclosing directive prologue is finished, since a later "use strict" directive applies to it retroactively.
func (p *Parser) deferStrict(code ErrorCode, loc Position) {
	if p.s.inLookahead {
		return
	}
	_, ok := p.s.strictErrors[loc.Index]
	if p.s.strict && !ok {
		p.raise(code, loc)
		return
	}
	if p.s.strictErrors == nil {
		p.s.strictErrors = map[int]*Diagnostic{}
	}
	prev := p.s.strictErrors[loc.Index]
	p.s.strictErrors[loc.Index] = newDiagnostic(code, loc)
	p.record(func() {
		if prev != nil {
			p.s.strictErrors[loc.Index] = prev
		} else {
			delete(p.s.strictErrors, loc.Index)
		}
	})
}

// setStrict switches strict mode; entering it raises the deferred strict mode diagnostics in source order.
func (p *Parser) setStrict(strict bool) {
	p.s.strict = strict
	if strict {
		p.flushStrictErrors(true)
	}
}

// flushStrictErrors raises or drops the deferred strict mode diagnostics.
func (p *Parser) flushStrictErrors(raise bool) {
	if len(p.s.strictErrors) == 0 {
		return
	}
	old := p.s.strictErrors
	if raise {
		indices := make([]int, 0, len(old))
		for index := range old {
			indices = append(indices, index)
		}
		sort.Ints(indices)
		for _, index := range indices {
			d := old[index]
			p.raise(d.Code, d.Loc, d.Details...)
		}
	}
	p.s.strictErrors = nil
	p.record(func() { p.s.strictErrors = old })
}

// expectFeature reports a MissingFeature diagnostic if the feature is not enabled.
func (p *Parser) expectFeature(feature Feature, loc Position) bool {
	if p.o.Features[feature] {
		return true
	}
	p.raise(MissingFeature, loc, feature.String())
	return false
}

// unexpected reports an unexpected current token, optionally naming the expected token. It returns a placeholder
// node standing in for the missing construct. A second report at the same location is dropped.
func (p *Parser) unexpected(expected ...TokenType) *Placeholder {
	loc := p.s.tok.Loc
	var d *Diagnostic
	if n := len(p.s.errors); 0 < n && p.s.errors[n-1].Loc.Index == loc.Index && p.s.err == nil {
		d = p.s.errors[n-1]
	} else {
		detail := ""
		if 0 < len(expected) {
			detail = fmt.Sprintf(", expected \"%s\"", expected[0])
		}
		d = p.raise(UnexpectedToken, loc, detail)
	}
	n := &Placeholder{Err: d}
	n.Start, n.End = loc, loc
	return n
}

// unexpectedAt reports an unexpected token at loc, such as a trailing comma that turned out to be invalid.
func (p *Parser) unexpectedAt(loc Position) *Placeholder {
	d := p.raise(UnexpectedToken, loc, "")
	n := &Placeholder{Err: d}
	n.Start, n.End = loc, loc
	return n
}
