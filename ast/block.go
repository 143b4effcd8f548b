package ast

import (
	"fmt"

	"github.com/seaofvoices/darklua-go/token"
)

// Block is an ordered sequence of statements plus an optional terminal
// last-statement (return/break/continue). It owns both exclusively: there is
// no sharing and no cycles anywhere in the tree.
type Block struct {
	nodeBase
	Statements []Statement
	Last       LastStatement
}

// NewBlock builds a Block. The terminal invariant spec §3 requires (a
// last-statement, if present, must be terminal) holds by construction: Last
// is a separate field from Statements, so there is no representable way to
// place a statement after it.
func NewBlock(statements []Statement, last LastStatement) *Block {
	return &Block{Statements: statements, Last: last}
}

// PushStatement appends a statement to the block. It panics if the block
// already has a last-statement, since nothing may follow one — that
// violation is unreachable by construction for any rule going through this
// method rather than setting the fields directly.
func (b *Block) PushStatement(stmt Statement) {
	if b.Last != nil {
		panic("ast: cannot append a statement after a block's last-statement")
	}
	b.Statements = append(b.Statements, stmt)
}

// IsEmpty reports whether the block has neither statements nor a
// last-statement.
func (b *Block) IsEmpty() bool {
	return len(b.Statements) == 0 && b.Last == nil
}

func (b *Block) String() string {
	return fmt.Sprintf("Block(%d statements, last=%v)", len(b.Statements), b.Last != nil)
}

// ReturnStatement is `return <exprs>`.
type ReturnStatement struct {
	nodeBase
	Expressions []Expression
	Tok         *ReturnTokens
}

func (*ReturnStatement) isLastStatement() {}

// BreakStatement is `break`.
type BreakStatement struct {
	nodeBase
	Tok *token.Token
}

func (*BreakStatement) isLastStatement() {}

// ContinueStatement is `continue` — a language extension over standard Lua
// named explicitly in spec §1.
type ContinueStatement struct {
	nodeBase
	Tok *token.Token
}

func (*ContinueStatement) isLastStatement() {}
