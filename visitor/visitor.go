package visitor

import "github.com/seaofvoices/darklua-go/ast"

// Visitor drives a plain depth-first traversal: the processor's Enter is
// invoked before descending into a node's children, Leave after. It does
// not track scope; rules that don't care about identifier lifetimes (a
// simple constant-folding pass, say) use this instead of ScopeVisitor.
type Visitor struct {
	processor NodeProcessor
}

// New returns a Visitor that drives processor over a block.
func New(processor NodeProcessor) *Visitor {
	return &Visitor{processor: processor}
}

// Walk traverses block in source order, depth-first.
func (v *Visitor) Walk(block *ast.Block) {
	v.engine().visitBlock(block)
}

func (v *Visitor) engine() engine {
	return engine{
		enter: v.processor.Enter,
		leave: v.processor.Leave,
		scope: noopScope{},
	}
}
