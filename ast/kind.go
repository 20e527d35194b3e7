package ast

// Kind tags every node in the tree. The set is exhaustive: every
// production in the grammar constructs a node of exactly one of these
// kinds.
type Kind int

const (
	KindInvalid Kind = iota

	// Structural.
	KindRoot
	KindBlock
	KindRuleset
	KindRule
	KindPropset
	KindSelectorGroup
	KindSelector
	KindSimpleSelectorSequence
	KindSimpleSelector
	KindSelectorCombinator
	KindSelectorSchema
	KindBackref
	KindAttributeSelector
	KindPseudo
	KindPseudoNegation
	KindFunctionalPseudo

	// Statements.
	KindAssignment
	KindMixin
	KindFunction
	KindParameters
	KindExpansion
	KindArguments
	KindReturnDirective
	KindIfDirective
	KindForToDirective
	KindForThroughDirective
	KindEachDirective
	KindWhileDirective
	KindWarning
	KindBlocklessDirective
	KindBlockDirective
	KindMediaQuery
	KindMediaExpression
	KindMediaExpressionGroup
	KindCSSImport
	KindComment

	// Expression algebra.
	KindCommaList
	KindSpaceList
	KindDisjunction
	KindConjunction
	KindRelation
	KindExpression
	KindTerm
	KindUnaryPlus
	KindUnaryMinus
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindEq
	KindNeq
	KindGt
	KindGte
	KindLt
	KindLte

	// Values and schemas.
	KindIdentifier
	KindVariable
	KindValue
	KindProperty
	KindStringConstant
	KindStringSchema
	KindIdentifierSchema
	KindValueSchema
	KindTextualNumber
	KindTextualPercentage
	KindTextualDimension
	KindTextualHex
	KindURI
	KindBoolean
	KindImportant
	KindNil
	KindFunctionCall
	KindNone
)

var kindNames = map[Kind]string{
	KindInvalid:                "invalid",
	KindRoot:                   "root",
	KindBlock:                  "block",
	KindRuleset:                "ruleset",
	KindRule:                   "rule",
	KindPropset:                "propset",
	KindSelectorGroup:          "selector_group",
	KindSelector:               "selector",
	KindSimpleSelectorSequence: "simple_selector_sequence",
	KindSimpleSelector:         "simple_selector",
	KindSelectorCombinator:     "selector_combinator",
	KindSelectorSchema:         "selector_schema",
	KindBackref:                "backref",
	KindAttributeSelector:      "attribute_selector",
	KindPseudo:                 "pseudo",
	KindPseudoNegation:         "pseudo_negation",
	KindFunctionalPseudo:       "functional_pseudo",

	KindAssignment:           "assignment",
	KindMixin:                "mixin",
	KindFunction:             "function",
	KindParameters:           "parameters",
	KindExpansion:            "expansion",
	KindArguments:            "arguments",
	KindReturnDirective:      "return_directive",
	KindIfDirective:          "if_directive",
	KindForToDirective:       "for_to_directive",
	KindForThroughDirective:  "for_through_directive",
	KindEachDirective:        "each_directive",
	KindWhileDirective:       "while_directive",
	KindWarning:              "warning",
	KindBlocklessDirective:   "blockless_directive",
	KindBlockDirective:       "block_directive",
	KindMediaQuery:           "media_query",
	KindMediaExpression:      "media_expression",
	KindMediaExpressionGroup: "media_expression_group",
	KindCSSImport:            "css_import",
	KindComment:              "comment",

	KindCommaList:   "comma_list",
	KindSpaceList:   "space_list",
	KindDisjunction: "disjunction",
	KindConjunction: "conjunction",
	KindRelation:    "relation",
	KindExpression:  "expression",
	KindTerm:        "term",
	KindUnaryPlus:   "unary_plus",
	KindUnaryMinus:  "unary_minus",
	KindAdd:         "add",
	KindSub:         "sub",
	KindMul:         "mul",
	KindDiv:         "div",
	KindEq:          "eq",
	KindNeq:         "neq",
	KindGt:          "gt",
	KindGte:         "gte",
	KindLt:          "lt",
	KindLte:         "lte",

	KindIdentifier:        "identifier",
	KindVariable:          "variable",
	KindValue:             "value",
	KindProperty:          "property",
	KindStringConstant:    "string_constant",
	KindStringSchema:      "string_schema",
	KindIdentifierSchema:  "identifier_schema",
	KindValueSchema:       "value_schema",
	KindTextualNumber:     "textual_number",
	KindTextualPercentage: "textual_percentage",
	KindTextualDimension:  "textual_dimension",
	KindTextualHex:        "textual_hex",
	KindURI:               "uri",
	KindBoolean:           "boolean",
	KindImportant:         "important",
	KindNil:               "nil",
	KindFunctionCall:      "function_call",
	KindNone:              "none",
}

// String returns the grammar name of the kind, e.g. "selector_schema".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// relationalOperatorKinds are the leaf kinds a relation node's middle
// child may take; parseRelation constructs exactly one of these.
var relationalOperatorKinds = map[Kind]bool{
	KindEq:  true,
	KindNeq: true,
	KindGt:  true,
	KindGte: true,
	KindLt:  true,
	KindLte: true,
}

// IsRelationalOperator reports whether k is a valid middle child of a
// relation node.
func IsRelationalOperator(k Kind) bool {
	return relationalOperatorKinds[k]
}
