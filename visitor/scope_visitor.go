package visitor

import "github.com/seaofvoices/darklua-go/ast"

// ScopeVisitor drives the same depth-first traversal as Visitor, but
// additionally calls the processor's scope hooks (Push/Pop/InsertLocal/
// Insert/InsertSelf) at every block that introduces a fresh lexical scope
// and every binding site within it. Rename is built on this; rules that
// don't need identifier lifetimes use Visitor instead. The
// remove_unused_variable rule is not built on it: its usage search runs on
// Visitor and matches identifiers by name, not by binding.
//
// The traversal never pushes a frame for the root block passed to Walk —
// only the bodies it lists in spec (function, do, for, while, repeat,
// if/elseif/else) do. A processor that wants a frame covering top-level
// locals pushes one itself before calling Walk.
type ScopeVisitor struct {
	processor ScopeProcessor
}

// NewScopeVisitor returns a ScopeVisitor that drives processor over a block.
func NewScopeVisitor(processor ScopeProcessor) *ScopeVisitor {
	return &ScopeVisitor{processor: processor}
}

// Walk traverses block in source order, depth-first, calling the
// processor's scope hooks as each nested scope is entered and exited.
func (v *ScopeVisitor) Walk(block *ast.Block) {
	v.engine().visitBlock(block)
}

func (v *ScopeVisitor) engine() engine {
	return engine{
		enter: v.processor.Enter,
		leave: v.processor.Leave,
		scope: v.processor,
	}
}
