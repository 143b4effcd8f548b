package ast

import "github.com/seaofvoices/darklua-go/token"

// The five prefix-chain variants double as Expression (a prefix chain
// evaluates to a value) and, for the three that can appear on an
// assignment's left-hand side, as Variable. This mirrors the original
// source's own reuse of its prefix-expression nodes as assignment targets
// rather than duplicating an identical shape under a second name.

// IdentifierExpression is a bare name reference, e.g. `x`.
type IdentifierExpression struct {
	nodeBase
	Name string
	Tok  *token.Token
}

func (*IdentifierExpression) isExpression() {}
func (*IdentifierExpression) isPrefix()     {}
func (*IdentifierExpression) isVariable()   {}

// FieldExpression is `prefix.name`.
type FieldExpression struct {
	nodeBase
	Base Prefix
	Name string
	Tok  *FieldTokens
}

func (*FieldExpression) isExpression() {}
func (*FieldExpression) isPrefix()     {}
func (*FieldExpression) isVariable()   {}

// IndexExpression is `prefix[index]`.
type IndexExpression struct {
	nodeBase
	Base  Prefix
	Index Expression
	Tok   *IndexTokens
}

func (*IndexExpression) isExpression() {}
func (*IndexExpression) isPrefix()     {}
func (*IndexExpression) isVariable()   {}

// CallExpression is `prefix(arguments)`. It is never a Variable — you cannot
// assign to the result of a call.
type CallExpression struct {
	nodeBase
	Base      Prefix
	Arguments Arguments
}

func (*CallExpression) isExpression() {}
func (*CallExpression) isPrefix()     {}

// MethodCallExpression is `prefix:method(arguments)`.
type MethodCallExpression struct {
	nodeBase
	Base      Prefix
	Method    string
	Arguments Arguments
	Tok       *MethodCallTokens
}

func (*MethodCallExpression) isExpression() {}
func (*MethodCallExpression) isPrefix()     {}

// ParenthesizedExpression is `(expr)`, used to suppress multi-return
// truncation and to disambiguate prefix chains.
type ParenthesizedExpression struct {
	nodeBase
	Inner Expression
	Tok   *ParenthesizedTokens
}

func (*ParenthesizedExpression) isExpression() {}
func (*ParenthesizedExpression) isPrefix()     {}
