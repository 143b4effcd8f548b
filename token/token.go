// Package token implements the byte-range and trivia sidecar model that lets
// the generator regenerate source byte-for-byte when tokens were preserved
// during parsing.
package token

// TriviaKind distinguishes the two kinds of trivia that can appear between
// tokens.
type TriviaKind uint8

const (
	// Whitespace is a run of spaces, tabs or newlines.
	Whitespace TriviaKind = iota
	// Comment is a line or block comment.
	Comment
)

// Trivia is a single leading or trailing trivia item attached to a Token.
type Trivia struct {
	Kind  TriviaKind
	Start int
	End   int
	Line  int64
}

// ByteSpan returns the [start, end) byte range covered by the trivia.
func (t Trivia) ByteSpan() (int, int) {
	return t.Start, t.End
}

// ShiftLine applies delta to the trivia's starting line, saturating at zero.
func (t *Trivia) ShiftLine(delta int64) {
	t.Line = saturatingAdd(t.Line, delta)
}

// Token is a byte range with a starting line and its surrounding trivia.
//
// A Token is an optional sidecar: AST nodes carry a nullable *Token (or a
// struct of them) rather than a parallel tree, so there is never ambiguity
// about which tree owns the source positions.
type Token struct {
	Start int
	End   int
	line  int64

	Leading  []Trivia
	Trailing []Trivia

	// content holds a decoupled literal copy of the token's text once
	// ReplaceReferencedBytes has been called. Until then the token's text
	// must be read from the source buffer it was parsed against.
	content    string
	hasContent bool
}

// NewToken creates a token over [start, end) at the given starting line, with
// no trivia.
func NewToken(start, end int, line int64) Token {
	return Token{Start: start, End: end, line: line}
}

// ByteSpan returns the [start, end) byte range of the token itself, excluding
// trivia.
func (t Token) ByteSpan() (int, int) {
	return t.Start, t.End
}

// Line returns the token's starting line.
func (t Token) Line() int64 {
	return t.line
}

// LeadingTrivia returns the trivia preceding the token, in source order.
func (t Token) LeadingTrivia() []Trivia {
	return t.Leading
}

// TrailingTrivia returns the trivia following the token, in source order.
func (t Token) TrailingTrivia() []Trivia {
	return t.Trailing
}

// ClearComments removes every Comment trivia item from both the leading and
// trailing sequences, leaving whitespace trivia untouched.
func (t *Token) ClearComments() {
	t.Leading = filterTrivia(t.Leading, Comment)
	t.Trailing = filterTrivia(t.Trailing, Comment)
}

// ClearWhitespace removes every Whitespace trivia item, leaving comments
// untouched.
func (t *Token) ClearWhitespace() {
	t.Leading = filterTrivia(t.Leading, Whitespace)
	t.Trailing = filterTrivia(t.Trailing, Whitespace)
}

func filterTrivia(trivia []Trivia, remove TriviaKind) []Trivia {
	if len(trivia) == 0 {
		return trivia
	}
	kept := trivia[:0:0]
	for _, item := range trivia {
		if item.Kind != remove {
			kept = append(kept, item)
		}
	}
	return kept
}

// ShiftLine applies delta additively to the token's own starting line and to
// every trivia item attached to it. It never touches byte offsets and never
// fails.
func (t *Token) ShiftLine(delta int64) {
	t.line = saturatingAdd(t.line, delta)
	for i := range t.Leading {
		t.Leading[i].ShiftLine(delta)
	}
	for i := range t.Trailing {
		t.Trailing[i].ShiftLine(delta)
	}
}

// ReplaceReferencedBytes is an idempotent rebind: it looks up source[start:end]
// and attaches it to the token as literal content, decoupling the token from
// the buffer it was originally parsed against. Rules that move tokens between
// files must call this before generation.
//
// If the byte range is out of bounds for source, the call is a silent no-op:
// the token keeps whatever content (or lack of it) it already had. Callers
// driving a restructuring rule must not present an inconsistent source.
func (t *Token) ReplaceReferencedBytes(source []byte) {
	if t.Start < 0 || t.End > len(source) || t.Start > t.End {
		return
	}
	t.content = string(source[t.Start:t.End])
	t.hasContent = true
}

// Content returns the token's literal text if ReplaceReferencedBytes has been
// called, and ok=false otherwise (the caller must then read source[Start:End]
// from whatever buffer it knows the token belongs to).
func (t Token) Content() (text string, ok bool) {
	return t.content, t.hasContent
}

func saturatingAdd(base, delta int64) int64 {
	result := base + delta
	if result < 0 {
		return 0
	}
	return result
}
