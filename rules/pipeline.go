package rules

import (
	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/token"
)

// Pipeline runs a sequence of configured rules over a Block in declaration
// order, each seeing the AST as its predecessor left it — spec §4.8/§5:
// rules are single-threaded, cooperative, and never run concurrently with
// each other or with themselves.
type Pipeline struct {
	Rules []Rule

	// Repair, when non-nil, is invoked after any rule whose
	// RequiresTokenRepair reports true, to re-derive stale token
	// byte-ranges per spec §4.10. A token-less pipeline (Repair == nil)
	// skips this step, matching "pure structural rules on a token-less
	// AST skip repair."
	Repair func(block *ast.Block, repairer *token.Repairer)
}

// Apply runs every rule over block in order. A rule that returns any
// diagnostics, or a non-nil error, aborts the pipeline immediately and its
// diagnostics (or the wrapped error, per FromError) are returned; rules
// already applied keep their mutations in place, matching spec §4.8's "a
// rule returning diagnostics aborts the pipeline and surfaces them."
func (p *Pipeline) Apply(block *ast.Block, ctx *Context) ([]Diagnostic, error) {
	for _, rule := range p.Rules {
		diags, err := rule.Process(block, ctx)
		if err != nil {
			return FromError(KindRuleApplication, ctx.FilePath, rule.Name(), err), nil
		}
		if len(diags) > 0 {
			return diags, nil
		}
		if rule.RequiresTokenRepair() && p.Repair != nil {
			p.Repair(block, token.NewRepairer())
		}
	}
	return nil, nil
}
