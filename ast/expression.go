package ast

import "github.com/seaofvoices/darklua-go/token"

// NilExpression is the `nil` literal.
type NilExpression struct {
	nodeBase
	Tok *token.Token
}

func (*NilExpression) isExpression() {}

// TrueExpression is the `true` literal.
type TrueExpression struct {
	nodeBase
	Tok *token.Token
}

func (*TrueExpression) isExpression() {}

// FalseExpression is the `false` literal.
type FalseExpression struct {
	nodeBase
	Tok *token.Token
}

func (*FalseExpression) isExpression() {}

// NumberBase distinguishes the three literal forms spec §3 names.
type NumberBase uint8

const (
	NumberDecimal NumberBase = iota
	NumberHex
	NumberBinary
)

// NumberExpression is a numeric literal. Value is the decoded value; Base
// and Raw preserve how it was written (0x/0b prefixes, underscores) so a
// token-faithful generator can reproduce it even without tokens.
type NumberExpression struct {
	nodeBase
	Value float64
	Base  NumberBase
	Raw   string
	Tok   *token.Token
}

func (*NumberExpression) isExpression() {}

// StringExpression is a plain (non-interpolated) string literal. Value holds
// the decoded bytes. Raw is informational: the dense generator re-quotes
// Value and never reads it, and this module's parser stores the decoded
// text there, not the quoted source form.
type StringExpression struct {
	nodeBase
	Value []byte
	Raw   string
	Tok   *token.Token
}

func (*StringExpression) isExpression() {}

// StringSegmentKind distinguishes the two kinds of piece an interpolated
// string is built from.
type StringSegmentKind uint8

const (
	SegmentLiteral StringSegmentKind = iota
	SegmentValue
)

// StringSegment is one piece of an InterpolatedStringExpression: either a
// literal run of text or an embedded expression (`{expr}`).
type StringSegment struct {
	Kind    StringSegmentKind
	Literal []byte     // set when Kind == SegmentLiteral
	Value   Expression // set when Kind == SegmentValue
}

// InterpolatedStringExpression is a backtick string composed of alternating
// literal and value segments, e.g. `` `hello {name}!` `` — named explicitly
// in spec §1/§3.
type InterpolatedStringExpression struct {
	nodeBase
	Segments []StringSegment
	Tok      *InterpolatedStringTokens
}

func (*InterpolatedStringExpression) isExpression() {}

// TableEntryKind distinguishes the three entry shapes a table constructor
// can hold.
type TableEntryKind uint8

const (
	// EntryArray is a bare value, assigned the next integer key: `{1, 2}`.
	EntryArray TableEntryKind = iota
	// EntryNamed is `name = value`.
	EntryNamed
	// EntryIndexed is `[expr] = value`.
	EntryIndexed
)

// TableEntry is one entry of a TableConstructorExpression.
type TableEntry struct {
	Kind  TableEntryKind
	Name  string     // set when Kind == EntryNamed
	Key   Expression // set when Kind == EntryIndexed
	Value Expression
}

// TableConstructorExpression is `{ ... }`.
type TableConstructorExpression struct {
	nodeBase
	Entries []TableEntry
	Tok     *TableConstructorTokens
}

func (*TableConstructorExpression) isExpression() {}

// FunctionExpression is an anonymous `function(...) ... end` value.
type FunctionExpression struct {
	nodeBase
	Parameters []TypedIdentifier
	IsVararg   bool
	ReturnType Type // nil when untyped
	Body       *Block
	Tok        *FunctionExpressionTokens
}

func (*FunctionExpression) isExpression() {}

// BinaryOperator enumerates Lua's binary operators.
type BinaryOperator uint8

const (
	OpAdd BinaryOperator = iota
	OpSub
	OpMul
	OpDiv
	OpFloorDiv
	OpMod
	OpPow
	OpConcat
	OpEqual
	OpNotEqual
	OpLessThan
	OpLessEqual
	OpGreaterThan
	OpGreaterEqual
	OpAnd
	OpOr
)

// BinaryExpression is `left op right`.
type BinaryExpression struct {
	nodeBase
	Left     Expression
	Operator BinaryOperator
	Right    Expression
	Tok      *BinaryTokens
}

func (*BinaryExpression) isExpression() {}

// UnaryOperator enumerates Lua's unary operators.
type UnaryOperator uint8

const (
	OpNegate UnaryOperator = iota
	OpNot
	OpLength
)

// UnaryExpression is `op operand`.
type UnaryExpression struct {
	nodeBase
	Operator UnaryOperator
	Operand  Expression
	Tok      *UnaryTokens
}

func (*UnaryExpression) isExpression() {}

// IfExpressionBranch is one `elseif cond then value` arm of an
// IfExpression.
type IfExpressionBranch struct {
	Condition Expression
	Result    Expression
}

// IfExpression is the ternary-like `if cond then value else other` form,
// with optional `elseif` branches, named in spec §3.
type IfExpression struct {
	nodeBase
	Condition Expression
	Then      Expression
	Branches  []IfExpressionBranch
	Else      Expression
	Tok       *IfExpressionTokens
}

func (*IfExpression) isExpression() {}

// TypeCastExpression is `expr :: Type`.
type TypeCastExpression struct {
	nodeBase
	Expression Expression
	Type       Type
	Tok        *TypeCastTokens
}

func (*TypeCastExpression) isExpression() {}

// ComponentAttribute is one attribute of a ComponentElementExpression: either
// a plain `name=expr` pair or a `{...expr}` spread.
type ComponentAttribute struct {
	IsSpread bool
	Name     string     // set when !IsSpread
	Value    Expression
}

// ComponentElementExpression is the Luau-style JSX-like markup expression
// named in spec §1/§3 but never detailed there; see SPEC_FULL.md's
// expansion note (grounded on original_source's lux nodes).
type ComponentElementExpression struct {
	nodeBase
	Tag        Prefix // identifier or qualified field chain, e.g. Foo.Bar
	Attributes []ComponentAttribute
	Children   []Expression
	Tok        *ComponentElementTokens
}

func (*ComponentElementExpression) isExpression() {}
