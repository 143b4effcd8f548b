package ast

import "github.com/seaofvoices/darklua-go/token"

// TupleArguments is a parenthesized, comma-separated argument list:
// `f(a, b, c)`.
type TupleArguments struct {
	nodeBase
	Items []Expression
	Tok   *TupleArgumentsTokens
}

func (*TupleArguments) isArguments() {}

// TupleArgumentsTokens is TupleArguments' token sidecar. The comma invariant
// in spec §4.2 (commas.len() == items.len().saturating_sub(1)) is maintained
// by Push/Insert below whenever Tok is non-nil.
type TupleArgumentsTokens struct {
	Open   token.Token
	Close  token.Token
	Commas []token.Token
}

func (b *TupleArgumentsTokens) ClearComments()   { token.ClearTrivia(b, true) }
func (b *TupleArgumentsTokens) ClearWhitespace() { token.ClearTrivia(b, false) }

// StringArguments is a single bare string call argument: `f"literal"`.
type StringArguments struct {
	nodeBase
	Value *StringExpression
}

func (*StringArguments) isArguments() {}

// TableArguments is a single bare table constructor call argument:
// `f{ key = value }`.
type TableArguments struct {
	nodeBase
	Value *TableConstructorExpression
}

func (*TableArguments) isArguments() {}

// defaultComma synthesizes a comma token with no surrounding trivia, used by
// Push/Insert when the tuple carries tokens and a new comma must be
// materialized to keep the invariant.
func defaultComma() token.Token {
	return token.NewToken(0, 0, 0)
}

// Push appends expr to args, returning the (possibly new) Arguments value
// the caller should keep using. Pushing a second argument onto a
// StringArguments or TableArguments promotes it to a two-item
// TupleArguments, per spec §4.2 — the inverse (collapsing a tuple back down)
// is intentionally not performed automatically.
func Push(args Arguments, expr Expression) Arguments {
	switch a := args.(type) {
	case *TupleArguments:
		if a.Tok != nil && len(a.Items) > 0 {
			a.Tok.Commas = append(a.Tok.Commas, defaultComma())
		}
		a.Items = append(a.Items, expr)
		return a
	case *StringArguments:
		tuple := &TupleArguments{Items: []Expression{a.Value, expr}}
		if hasTuplePromotionTokens(a.Value) {
			tuple.Tok = &TupleArgumentsTokens{Commas: []token.Token{defaultComma()}}
		}
		return tuple
	case *TableArguments:
		tuple := &TupleArguments{Items: []Expression{a.Value, expr}}
		if hasTuplePromotionTokens(a.Value) {
			tuple.Tok = &TupleArgumentsTokens{Commas: []token.Token{defaultComma()}}
		}
		return tuple
	default:
		return &TupleArguments{Items: []Expression{expr}}
	}
}

func hasTuplePromotionTokens(first Node) bool {
	v := reflectTok(first)
	return v != nil
}

// reflectTok reports whether node carries a non-nil token sidecar, used only
// to decide whether a promoted tuple should itself start carrying tokens.
func reflectTok(node Node) any {
	switch n := node.(type) {
	case *StringExpression:
		if n.Tok == nil {
			return nil
		}
		return n.Tok
	case *TableConstructorExpression:
		if n.Tok == nil {
			return nil
		}
		return n.Tok
	default:
		return nil
	}
}

// Insert inserts expr at position i (0-based) into a TupleArguments,
// shifting later items and, if tokens are present, symmetrically inserting a
// comma. Insert only operates on a tuple: callers must Push first to promote
// a single-argument form.
func Insert(tuple *TupleArguments, i int, expr Expression) {
	tuple.Items = append(tuple.Items, nil)
	copy(tuple.Items[i+1:], tuple.Items[i:])
	tuple.Items[i] = expr

	if tuple.Tok == nil {
		return
	}
	if len(tuple.Items) <= 1 {
		return
	}
	commaIdx := i
	if commaIdx >= len(tuple.Items)-1 {
		commaIdx = len(tuple.Tok.Commas)
	}
	tuple.Tok.Commas = append(tuple.Tok.Commas, defaultComma())
	copy(tuple.Tok.Commas[commaIdx+1:], tuple.Tok.Commas[commaIdx:])
	tuple.Tok.Commas[commaIdx] = defaultComma()
}

// Remove removes the item at position i from a TupleArguments, maintaining
// the comma-count invariant when tokens are present.
func Remove(tuple *TupleArguments, i int) {
	tuple.Items = append(tuple.Items[:i], tuple.Items[i+1:]...)
	if tuple.Tok == nil || len(tuple.Tok.Commas) == 0 {
		return
	}
	commaIdx := i
	if commaIdx >= len(tuple.Tok.Commas) {
		commaIdx = len(tuple.Tok.Commas) - 1
	}
	tuple.Tok.Commas = append(tuple.Tok.Commas[:commaIdx], tuple.Tok.Commas[commaIdx+1:]...)
}
