package rules

import (
	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/evaluate"
	"github.com/seaofvoices/darklua-go/visitor"
)

// RemoveUnusedVariableRule drops local declarations that are never read
// again, grounded directly on
// original_source/src/rules/remove_unused_variable/mod.rs's backward scan:
// walk a block's statements in reverse, and for each local binding search
// the statements after it (and the block's last-statement) for a reference.
//
// Simplified from the original two ways, both recorded in DESIGN.md: usage
// search is name-based rather than scope-precise (a same-named local
// declared later in a nested scope is mistaken for a use of the outer one),
// and a discarded initializer's side effect is preserved only when the
// initializer is itself a call — the only expression shape Lua's grammar
// allows to stand alone as a statement.
type RemoveUnusedVariableRule struct{}

func NewRemoveUnusedVariableRule() *RemoveUnusedVariableRule {
	return &RemoveUnusedVariableRule{}
}

func (r *RemoveUnusedVariableRule) Name() string { return "remove_unused_variable" }

func (r *RemoveUnusedVariableRule) ConfigKeys() []string { return nil }

func (r *RemoveUnusedVariableRule) RequiredConfigKeys() []string { return nil }

func (r *RemoveUnusedVariableRule) Configure(config map[string]any) error { return nil }

func (r *RemoveUnusedVariableRule) Process(block *ast.Block, ctx *Context) ([]Diagnostic, error) {
	removeUnusedInBlock(block)
	return nil, nil
}

func (r *RemoveUnusedVariableRule) Serialize() map[string]any {
	return map[string]any{"rule": r.Name()}
}

func (r *RemoveUnusedVariableRule) RequiresTokenRepair() bool { return true }

func removeUnusedInBlock(block *ast.Block) {
	if block == nil {
		return
	}
	for _, stmt := range block.Statements {
		removeUnusedInNested(stmt)
	}

	evaluator := evaluate.Evaluator{}
	// kept collects the surviving statements in reverse order, so at each
	// step it holds exactly the statements that follow stmt after removal.
	kept := make([]ast.Statement, 0, len(block.Statements))
	for i := len(block.Statements) - 1; i >= 0; i-- {
		stmt := block.Statements[i]
		local, ok := stmt.(*ast.LocalAssignmentStatement)
		if !ok {
			kept = append(kept, stmt)
			continue
		}
		if replacement := dropUnusedLocals(evaluator, local, kept, block.Last); replacement != nil {
			kept = append(kept, replacement)
		}
	}
	for l, r := 0, len(kept)-1; l < r; l, r = l+1, r-1 {
		kept[l], kept[r] = kept[r], kept[l]
	}
	block.Statements = kept
}

func removeUnusedInNested(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.DoStatement:
		removeUnusedInBlock(s.Body)
	case *ast.FunctionDeclarationStatement:
		removeUnusedInBlock(s.Body)
	case *ast.GenericForStatement:
		removeUnusedInBlock(s.Body)
	case *ast.NumericForStatement:
		removeUnusedInBlock(s.Body)
	case *ast.WhileStatement:
		removeUnusedInBlock(s.Body)
	case *ast.RepeatStatement:
		removeUnusedInBlock(s.Body)
	case *ast.IfStatement:
		removeUnusedInBlock(s.Body)
		for i := range s.Branches {
			removeUnusedInBlock(s.Branches[i].Body)
		}
	}
}

// dropUnusedLocals decides, for one local-assignment statement, which bound
// names are referenced again in rest/last. It returns the statement
// unchanged when every name is used, a trimmed replacement when some names
// survive or a dropped initializer needs its call kept for effect, or nil
// to drop the statement entirely.
func dropUnusedLocals(evaluator evaluate.Evaluator, local *ast.LocalAssignmentStatement, rest []ast.Statement, last ast.LastStatement) ast.Statement {
	used := make([]bool, len(local.Variables))
	allUsed := true
	for i, v := range local.Variables {
		used[i] = isReferencedAfter(v.Name, rest, last)
		if !used[i] {
			allUsed = false
		}
	}
	if allUsed {
		return local
	}

	var keptVars []ast.TypedIdentifier
	var keptValues []ast.Expression
	var sideEffects []ast.Statement

	for i, v := range local.Variables {
		if used[i] {
			keptVars = append(keptVars, v)
			if i < len(local.Values) {
				keptValues = append(keptValues, local.Values[i])
			}
			continue
		}
		if i < len(local.Values) {
			if call := asStatementCall(local.Values[i]); call != nil {
				sideEffects = append(sideEffects, &ast.FunctionCallStatement{Call: call})
			}
		}
	}
	for i := len(local.Variables); i < len(local.Values); i++ {
		if call := asStatementCall(local.Values[i]); call != nil {
			sideEffects = append(sideEffects, &ast.FunctionCallStatement{Call: call})
		}
	}

	if len(keptVars) == 0 {
		switch len(sideEffects) {
		case 0:
			return nil
		case 1:
			return sideEffects[0]
		default:
			return &ast.DoStatement{Body: ast.NewBlock(sideEffects, nil)}
		}
	}

	replacement := &ast.LocalAssignmentStatement{Variables: keptVars, Values: keptValues}
	if len(sideEffects) == 0 {
		return replacement
	}
	return &ast.DoStatement{Body: ast.NewBlock(append(sideEffects, replacement), nil)}
}

// asStatementCall returns expr itself when it is a call expression — the
// only expression shape Lua's grammar allows as a standalone statement, and
// so the only one whose side effect a dropped initializer can preserve.
func asStatementCall(expr ast.Expression) ast.Expression {
	switch expr.(type) {
	case *ast.CallExpression, *ast.MethodCallExpression:
		return expr
	default:
		return nil
	}
}

// usageFinder reports whether any IdentifierExpression named Name appears
// in the nodes it's walked over.
type usageFinder struct {
	visitor.BaseProcessor
	Name  string
	Found bool
}

func (f *usageFinder) Enter(node ast.Node) {
	if f.Found {
		return
	}
	if id, ok := node.(*ast.IdentifierExpression); ok && id.Name == f.Name {
		f.Found = true
	}
}

func isReferencedAfter(name string, statements []ast.Statement, last ast.LastStatement) bool {
	finder := &usageFinder{Name: name}
	visitor.New(finder).Walk(ast.NewBlock(statements, last))
	return finder.Found
}
