package mutate

import (
	"github.com/pkg/errors"

	"github.com/seaofvoices/darklua-go/ast"
)

// Planner accumulates mutations against one Block's statement list, read-only
// until Commit. A rule built on a read-only traversal (so it never has to
// reason about its own edits shifting the indices it's still walking)
// enqueues the edits it wants here, and Commit resolves them in enqueue
// order, propagating effects between pending mutations per spec §4.9.
type Planner struct {
	mutations []*Mutation
}

// New returns an empty Planner.
func New() *Planner {
	return &Planner{}
}

// Remove enqueues the deletion of the statement at index.
func (p *Planner) Remove(index int) *Mutation {
	return p.enqueue(&Mutation{kind: KindRemove, span: Span{Start: index, End: index + 1}})
}

// RemoveSpan enqueues the deletion of every statement in [start, end).
func (p *Planner) RemoveSpan(start, end int) *Mutation {
	return p.enqueue(&Mutation{kind: KindRemove, span: Span{Start: start, End: end}})
}

// Replace enqueues swapping the statement at index for statements.
func (p *Planner) Replace(index int, statements ...ast.Statement) *Mutation {
	return p.enqueue(&Mutation{kind: KindReplace, span: Span{Start: index, End: index + 1}, statements: statements})
}

// InsertBefore enqueues inserting statements immediately before index.
func (p *Planner) InsertBefore(index int, statements ...ast.Statement) *Mutation {
	return p.enqueue(&Mutation{kind: KindInsertBefore, span: Span{Start: index, End: index}, statements: statements})
}

// InsertAfter enqueues inserting statements immediately after index.
func (p *Planner) InsertAfter(index int, statements ...ast.Statement) *Mutation {
	return p.enqueue(&Mutation{kind: KindInsertAfter, span: Span{Start: index + 1, End: index + 1}, statements: statements})
}

func (p *Planner) enqueue(m *Mutation) *Mutation {
	p.mutations = append(p.mutations, m)
	return m
}

// Commit resolves every enqueued mutation against block's current
// statements, in the order they were enqueued, and writes the result back
// into block.Statements. A mutation whose span falls outside the statement
// list it is resolved against is an error; a mutation canceled by an
// earlier one is silently skipped (query Mutation.Canceled to learn which).
func (p *Planner) Commit(block *ast.Block) error {
	working := append([]ast.Statement(nil), block.Statements...)

	for i, m := range p.mutations {
		if m.canceled {
			continue
		}
		if m.span.Start < 0 || m.span.End > len(working) || m.span.Start > m.span.End {
			return errors.Errorf("mutate: span %v out of bounds for %d statements", m.span, len(working))
		}

		pending := p.mutations[i+1:]

		switch m.kind {
		case KindRemove:
			removed := m.span
			working = removeRange(working, removed)
			effect{kind: effectRemoved, span: removed}.propagate(pending)

		case KindReplace:
			removed := m.span
			working = removeRange(working, removed)
			working = insertAt(working, removed.Start, m.statements)
			effect{kind: effectRemoved, span: removed}.propagate(pending)
			effect{kind: effectAdded, at: removed.Start, count: len(m.statements)}.propagate(pending)

		case KindInsertBefore, KindInsertAfter:
			at := m.span.Start
			working = insertAt(working, at, m.statements)
			effect{kind: effectAdded, at: at, count: len(m.statements)}.propagate(pending)
		}
	}

	block.Statements = working
	return checkNoOrphanedLast(block)
}

func (e effect) propagate(pending []*Mutation) {
	for _, m := range pending {
		e.apply(m)
	}
}

func removeRange(statements []ast.Statement, span Span) []ast.Statement {
	out := append([]ast.Statement(nil), statements[:span.Start]...)
	return append(out, statements[span.End:]...)
}

func insertAt(statements []ast.Statement, at int, inserted []ast.Statement) []ast.Statement {
	if len(inserted) == 0 {
		return statements
	}
	out := append([]ast.Statement(nil), statements[:at]...)
	out = append(out, inserted...)
	return append(out, statements[at:]...)
}

// checkNoOrphanedLast enforces spec §4.9's structural invariant: a
// committed plan never leaves a nil hole in the statement list. Block.Last
// is a field separate from Statements (see ast.Block), so no mutation here
// can touch it directly; this check only guards against a bug in Commit
// itself ever slipping a nil into the slice.
func checkNoOrphanedLast(block *ast.Block) error {
	for i, stmt := range block.Statements {
		if stmt == nil {
			return errors.Errorf("mutate: statement %d is nil after commit", i)
		}
	}
	return nil
}
