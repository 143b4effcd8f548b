package mutate

import "github.com/seaofvoices/darklua-go/ast"

// Kind names the shape of one planned edit, matching the operations spec
// §4.9 names: Remove, Replace, InsertBefore, InsertAfter.
type Kind int

const (
	KindRemove Kind = iota
	KindReplace
	KindInsertBefore
	KindInsertAfter
)

// Mutation is one planned edit, addressed by a Span of statement indices in
// the Block the owning Planner will commit against. A Mutation enqueued via
// Planner.Remove/Replace/InsertBefore/InsertAfter is returned by reference so
// a caller can inspect Canceled() after Commit to learn whether an earlier
// enqueued, conflicting mutation consumed it.
type Mutation struct {
	kind       Kind
	span       Span
	statements []ast.Statement
	canceled   bool
}

// Canceled reports whether a conflicting mutation resolved before this one —
// in enqueue order — fully consumed this mutation's target, per spec §4.9's
// third reaction ("cancel itself, e.g. its target has been removed").
func (m *Mutation) Canceled() bool { return m.canceled }
