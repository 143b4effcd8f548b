package ast

import "github.com/seaofvoices/darklua-go/token"

// Every *...Tokens type below is a token-bag sidecar: optional concrete
// syntax for one node variant. A node that carries one stores it behind a
// nilable field literally named Tok (see node.go's tokenFieldName), which is
// how ClearComments/ClearWhitespace/StripTokens find it without per-variant
// code. A leaf node whose only token is the literal itself (number, string,
// break, continue, boolean/nil literals) uses *token.Token directly instead
// of a dedicated bag type.

type LocalAssignmentTokens struct {
	Local       token.Token
	Equal       *token.Token // absent when there's no initializer
	NameCommas  []token.Token
	ValueCommas []token.Token
}

func (b *LocalAssignmentTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *LocalAssignmentTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type AssignmentTokens struct {
	Equal        token.Token
	TargetCommas []token.Token
	ValueCommas  []token.Token
}

func (b *AssignmentTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *AssignmentTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type CompoundAssignmentTokens struct {
	Operator token.Token
}

func (b *CompoundAssignmentTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *CompoundAssignmentTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type DoTokens struct {
	Do  token.Token
	End token.Token
}

func (b *DoTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *DoTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type FunctionDeclarationTokens struct {
	Function    token.Token
	Open        token.Token
	Close       token.Token
	End         token.Token
	ParamCommas []token.Token
	MethodColon *token.Token // present for `function Foo:bar()` method declarations
}

func (b *FunctionDeclarationTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *FunctionDeclarationTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type GenericForTokens struct {
	For        token.Token
	In         token.Token
	Do         token.Token
	End        token.Token
	VarCommas  []token.Token
	ExprCommas []token.Token
}

func (b *GenericForTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *GenericForTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type NumericForTokens struct {
	For      token.Token
	Equal    token.Token
	Do       token.Token
	End      token.Token
	Commas   []token.Token // between start/end[/step]
}

func (b *NumericForTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *NumericForTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type WhileTokens struct {
	While token.Token
	Do    token.Token
	End   token.Token
}

func (b *WhileTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *WhileTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type RepeatTokens struct {
	Repeat token.Token
	Until  token.Token
}

func (b *RepeatTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *RepeatTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type IfTokens struct {
	If        token.Token
	Then      token.Token
	End       token.Token
	ElseIf    []token.Token
	ElseIfThen []token.Token
	Else      *token.Token
}

func (b *IfTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *IfTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type TypeDeclarationTokens struct {
	Type   token.Token
	Export *token.Token
	Equal  token.Token
}

func (b *TypeDeclarationTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *TypeDeclarationTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type ReturnTokens struct {
	Return token.Token
	Commas []token.Token
}

func (b *ReturnTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *ReturnTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type InterpolatedStringTokens struct {
	Segments []token.Token
}

func (b *InterpolatedStringTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *InterpolatedStringTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type TableConstructorTokens struct {
	Open   token.Token
	Close  token.Token
	Commas []token.Token
}

func (b *TableConstructorTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *TableConstructorTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type FunctionExpressionTokens struct {
	Function    token.Token
	Open        token.Token
	Close       token.Token
	End         token.Token
	ParamCommas []token.Token
}

func (b *FunctionExpressionTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *FunctionExpressionTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type ParenthesizedTokens struct {
	Open  token.Token
	Close token.Token
}

func (b *ParenthesizedTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *ParenthesizedTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type FieldTokens struct {
	Dot  token.Token
	Name token.Token
}

func (b *FieldTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *FieldTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type IndexTokens struct {
	Open  token.Token
	Close token.Token
}

func (b *IndexTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *IndexTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type MethodCallTokens struct {
	Colon token.Token
	Name  token.Token
}

func (b *MethodCallTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *MethodCallTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type BinaryTokens struct {
	Operator token.Token
}

func (b *BinaryTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *BinaryTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type UnaryTokens struct {
	Operator token.Token
}

func (b *UnaryTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *UnaryTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type IfExpressionTokens struct {
	If         token.Token
	Then       token.Token
	Else       token.Token
	ElseIf     []token.Token
	ElseIfThen []token.Token
}

func (b *IfExpressionTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *IfExpressionTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type TypeCastTokens struct {
	ColonColon token.Token
}

func (b *TypeCastTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *TypeCastTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type ComponentElementTokens struct {
	LessThan    token.Token
	GreaterThan token.Token
	SlashGreaterThan *token.Token // present for self-closing `<Foo />`
}

func (b *ComponentElementTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *ComponentElementTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type TypeArrayTokens struct {
	Open  token.Token
	Close token.Token
}

func (b *TypeArrayTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *TypeArrayTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type TypeTableTokens struct {
	Open   token.Token
	Close  token.Token
	Commas []token.Token
}

func (b *TypeTableTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *TypeTableTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type TypeFunctionTokens struct {
	Open   token.Token
	Close  token.Token
	Arrow  token.Token
	Commas []token.Token
}

func (b *TypeFunctionTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *TypeFunctionTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type TypeUnionTokens struct {
	Pipes []token.Token
}

func (b *TypeUnionTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *TypeUnionTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type TypeIntersectionTokens struct {
	Ampersands []token.Token
}

func (b *TypeIntersectionTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *TypeIntersectionTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type TypeOptionalTokens struct {
	Question token.Token
}

func (b *TypeOptionalTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *TypeOptionalTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type TypeOfTokens struct {
	Typeof token.Token
	Open   token.Token
	Close  token.Token
}

func (b *TypeOfTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *TypeOfTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

type TypeQualifiedNameTokens struct {
	Dot token.Token
}

func (b *TypeQualifiedNameTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *TypeQualifiedNameTokens) ClearWhitespace() { token.ClearTrivia(b, false) }
