package parser

// kind enumerates the lexical token categories the lexer produces, grounded
// on runtime/lexer/tokens.go's TokenType enum (special/structural/operator/
// literal groupings), trimmed to the grammar subset this parser covers.
type kind int

const (
	tokEOF kind = iota
	tokIllegal

	tokName
	tokNumber
	tokString

	// keywords
	tokAnd
	tokBreak
	tokContinue
	tokDo
	tokElse
	tokElseif
	tokEnd
	tokFalse
	tokFor
	tokFunction
	tokIf
	tokIn
	tokLocal
	tokNil
	tokNot
	tokOr
	tokRepeat
	tokReturn
	tokThen
	tokTrue
	tokUntil
	tokWhile

	// symbols
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokSlashSlash
	tokPercent
	tokCaret
	tokHash
	tokEqualEqual
	tokNotEqual
	tokLessEqual
	tokGreaterEqual
	tokLess
	tokGreater
	tokEqual
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokSemicolon
	tokColon
	tokComma
	tokDot
	tokDotDot
	tokDotDotDot
	tokPlusEqual
	tokMinusEqual
	tokStarEqual
	tokSlashEqual
	tokSlashSlashEqual
	tokPercentEqual
	tokCaretEqual
	tokDotDotEqual
)

var keywords = map[string]kind{
	"and":      tokAnd,
	"break":    tokBreak,
	"continue": tokContinue,
	"do":       tokDo,
	"else":     tokElse,
	"elseif":   tokElseif,
	"end":      tokEnd,
	"false":    tokFalse,
	"for":      tokFor,
	"function": tokFunction,
	"if":       tokIf,
	"in":       tokIn,
	"local":    tokLocal,
	"nil":      tokNil,
	"not":      tokNot,
	"or":       tokOr,
	"repeat":   tokRepeat,
	"return":   tokReturn,
	"then":     tokThen,
	"true":     tokTrue,
	"until":    tokUntil,
	"while":    tokWhile,
}

// token is one lexed unit: its kind, the source text it spans (decoded for
// strings), and its byte range/line for diagnostics.
type token struct {
	kind   kind
	text   string
	offset int
	end    int
	line   int
}
