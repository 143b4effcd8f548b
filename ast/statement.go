package ast

import "github.com/seaofvoices/darklua-go/token"

// AssignmentStatement is `target, target2 = value, value2`.
type AssignmentStatement struct {
	nodeBase
	Targets []Variable
	Values  []Expression
	Tok     *AssignmentTokens
}

func (*AssignmentStatement) isStatement() {}

// CompoundOperator is one of +=, -=, *=, /=, //=, %=, ^=, ..=.
type CompoundOperator uint8

const (
	CompoundAdd CompoundOperator = iota
	CompoundSub
	CompoundMul
	CompoundDiv
	CompoundFloorDiv
	CompoundMod
	CompoundPow
	CompoundConcat
)

// CompoundAssignmentStatement is `target += value` and its siblings — a
// gradual-typing-era extension named explicitly in spec §1.
type CompoundAssignmentStatement struct {
	nodeBase
	Target   Variable
	Operator CompoundOperator
	Value    Expression
	Tok      *CompoundAssignmentTokens
}

func (*CompoundAssignmentStatement) isStatement() {}

// LocalAssignmentStatement is `local a, b: T = value, value2`. Typed entries
// pair a name with an optional type annotation (the gradual typing
// extension named in spec §1).
type LocalAssignmentStatement struct {
	nodeBase
	Variables []TypedIdentifier
	Values    []Expression
	Tok       *LocalAssignmentTokens
}

func (*LocalAssignmentStatement) isStatement() {}

// TypedIdentifier pairs a bound name with an optional gradual-typing
// annotation. It is not itself a Node: it is a field shape shared by local
// assignments, function parameters and generic-for variables.
type TypedIdentifier struct {
	Name string
	Type Type // nil when untyped
	Tok  *TypedIdentifierTokens
}

// TypedIdentifierTokens is TypedIdentifier's token sidecar.
type TypedIdentifierTokens struct {
	Name  token.Token
	Colon token.Token // only meaningful when the identifier carries a Type
}

func (b *TypedIdentifierTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *TypedIdentifierTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

// DoStatement is a `do ... end` block introducing a fresh scope with no
// control-flow semantics of its own.
type DoStatement struct {
	nodeBase
	Body *Block
	Tok  *DoTokens
}

func (*DoStatement) isStatement() {}

// FunctionVariant distinguishes the three declaration forms spec §3 names.
type FunctionVariant uint8

const (
	FunctionGlobal FunctionVariant = iota
	FunctionLocal
	FunctionMethod
)

// FunctionDeclarationStatement covers `function name()`, `local function
// name()` and `function name:method()`.
type FunctionDeclarationStatement struct {
	nodeBase
	Variant    FunctionVariant
	Name       Variable // identifier/field chain; nil for none (never, syntactically required)
	MethodName string   // set only when Variant == FunctionMethod
	Parameters []TypedIdentifier
	IsVararg   bool
	ReturnType Type // nil when untyped
	Body       *Block
	Tok        *FunctionDeclarationTokens
}

func (*FunctionDeclarationStatement) isStatement() {}

// GenericForStatement is `for a, b in expr1, expr2 do ... end`.
type GenericForStatement struct {
	nodeBase
	Variables   []TypedIdentifier
	Expressions []Expression
	Body        *Block
	Tok         *GenericForTokens
}

func (*GenericForStatement) isStatement() {}

// NumericForStatement is `for i = start, stop[, step] do ... end`.
type NumericForStatement struct {
	nodeBase
	Variable TypedIdentifier
	Start    Expression
	Stop     Expression
	Step     Expression // nil when omitted
	Body     *Block
	Tok      *NumericForTokens
}

func (*NumericForStatement) isStatement() {}

// WhileStatement is `while condition do ... end`.
type WhileStatement struct {
	nodeBase
	Condition Expression
	Body      *Block
	Tok       *WhileTokens
}

func (*WhileStatement) isStatement() {}

// RepeatStatement is `repeat ... until condition`. Per spec §4.3 the
// condition is inside the loop's own scope, so locals introduced in Body are
// visible while evaluating Condition.
type RepeatStatement struct {
	nodeBase
	Body      *Block
	Condition Expression
	Tok       *RepeatTokens
}

func (*RepeatStatement) isStatement() {}

// IfBranch is one `elseif`/`else` arm of an IfStatement.
type IfBranch struct {
	Condition Expression // nil for the trailing else
	Body      *Block
}

// IfStatement is `if cond then ... elseif cond2 then ... else ... end`.
type IfStatement struct {
	nodeBase
	Condition Expression
	Body      *Block
	Branches  []IfBranch // elseif branches, in order; a trailing else has Condition == nil
	Tok       *IfTokens
}

func (*IfStatement) isStatement() {}

// FunctionCallStatement is a bare call used for its side effects, e.g.
// `print("x")`. It wraps the same expression node a call uses anywhere else.
type FunctionCallStatement struct {
	nodeBase
	Call Expression // always a *CallExpression or *MethodCallExpression
}

func (*FunctionCallStatement) isStatement() {}

// TypeDeclarationStatement is `[export] type Name = Type` — the gradual
// typing extension named in spec §1.
type TypeDeclarationStatement struct {
	nodeBase
	Name     string
	Exported bool
	Generics []string
	Value    Type
	Tok      *TypeDeclarationTokens
}

func (*TypeDeclarationStatement) isStatement() {}
