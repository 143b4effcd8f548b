package rules

import (
	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/evaluate"
)

// EvaluateConstantsRule replaces binary/unary/parenthesized combinations of
// literals with the single literal they fold to — the partial-evaluation
// rule spec.md §8's "`local x = 1 + 2` already minimal" scenario exercises.
// It never folds an expression evaluate.Evaluator reports as side-effecting,
// so a table index or call hidden inside an operand (`t.x + 1`) is left
// alone even when its outer shape looks foldable.
type EvaluateConstantsRule struct {
	assumePureMetamethods bool
}

func NewEvaluateConstantsRule() *EvaluateConstantsRule { return &EvaluateConstantsRule{} }

func (r *EvaluateConstantsRule) Name() string { return "evaluate_constants" }

func (r *EvaluateConstantsRule) ConfigKeys() []string {
	return []string{"assume_pure_metamethods"}
}

func (r *EvaluateConstantsRule) RequiredConfigKeys() []string { return nil }

func (r *EvaluateConstantsRule) Configure(config map[string]any) error {
	if v, ok := config["assume_pure_metamethods"]; ok {
		b, ok := v.(bool)
		if !ok {
			return errInvalidType("assume_pure_metamethods", "a boolean", v)
		}
		r.assumePureMetamethods = b
	}
	return nil
}

func (r *EvaluateConstantsRule) Process(block *ast.Block, ctx *Context) ([]Diagnostic, error) {
	evaluator := evaluate.Evaluator{AssumePureMetamethods: r.assumePureMetamethods}
	mapExpressions(block, func(expr ast.Expression) ast.Expression {
		return foldConstant(evaluator, expr)
	})
	collapseDeadBranches(block, evaluator)
	return nil, nil
}

func (r *EvaluateConstantsRule) Serialize() map[string]any {
	out := map[string]any{"rule": r.Name()}
	if r.assumePureMetamethods {
		out["assume_pure_metamethods"] = true
	}
	return out
}

func (r *EvaluateConstantsRule) RequiresTokenRepair() bool { return true }

// foldConstant replaces a binary/unary/parenthesized expression with its
// folded literal, when the fold is exact and the expression is provably
// side-effect-free. Any other shape, or an Unknown/Table/Function/Tuple
// result, is returned unchanged.
func foldConstant(evaluator evaluate.Evaluator, expr ast.Expression) ast.Expression {
	switch expr.(type) {
	case *ast.BinaryExpression, *ast.UnaryExpression, *ast.ParenthesizedExpression:
	default:
		return expr
	}

	if evaluator.HasSideEffects(expr) {
		return expr
	}

	value := evaluator.Evaluate(expr)
	if literal := literalOf(value); literal != nil {
		return literal
	}
	return expr
}

// literalOf converts a concrete AbstractValue back to the AST literal node
// it folds to, or nil if value has no exact literal representation (Unknown,
// Table, Function, Tuple).
func literalOf(value evaluate.AbstractValue) ast.Expression {
	switch value.Kind() {
	case evaluate.KindNil:
		return &ast.NilExpression{}
	case evaluate.KindTrue:
		return &ast.TrueExpression{}
	case evaluate.KindFalse:
		return &ast.FalseExpression{}
	case evaluate.KindNumber:
		n, _ := value.Float64()
		return &ast.NumberExpression{Value: n}
	case evaluate.KindString:
		b, _ := value.Bytes()
		return &ast.StringExpression{Value: b}
	default:
		return nil
	}
}

// collapseDeadBranches replaces a trailing if-statement whose taken branch
// is known at compile time with that branch's own statements, spliced
// directly into the enclosing block — the "Partial evaluation of dead
// branch" scenario from spec.md §8 (`if 1 == 1 then return 1 else return 2
// end` becomes `return 1`). It only ever collapses a block's own trailing
// statement: an if-statement in the middle of a block has siblings after it
// that must keep running regardless of which branch is taken, and splicing
// a branch's own Last (return/break/continue) into the middle of a block
// would silently make everything after it unreachable, so that case is left
// alone rather than risk a wrong collapse.
func collapseDeadBranches(block *ast.Block, evaluator evaluate.Evaluator) {
	if block == nil {
		return
	}
	for _, stmt := range block.Statements {
		collapseDeadBranchesInStatement(stmt, evaluator)
	}
	if last, ok := block.Last.(*ast.IfStatement); ok {
		collapseDeadBranchesInStatement(last, evaluator)
	}

	for len(block.Statements) > 0 {
		ifStmt, ok := block.Statements[len(block.Statements)-1].(*ast.IfStatement)
		if !ok {
			break
		}
		chosen, ok := selectStaticBranch(ifStmt, evaluator)
		if !ok {
			break
		}
		block.Statements = block.Statements[:len(block.Statements)-1]
		block.Statements = append(block.Statements, chosen.Statements...)
		if chosen.Last != nil {
			// The branch terminates the block outright; anything the
			// enclosing block already had queued up after the if-statement
			// (its own Last) would never run and is dropped in favor of it.
			block.Last = chosen.Last
		}
	}
}

func collapseDeadBranchesInStatement(stmt ast.Statement, evaluator evaluate.Evaluator) {
	switch s := stmt.(type) {
	case *ast.DoStatement:
		collapseDeadBranches(s.Body, evaluator)
	case *ast.FunctionDeclarationStatement:
		collapseDeadBranches(s.Body, evaluator)
	case *ast.GenericForStatement:
		collapseDeadBranches(s.Body, evaluator)
	case *ast.NumericForStatement:
		collapseDeadBranches(s.Body, evaluator)
	case *ast.WhileStatement:
		collapseDeadBranches(s.Body, evaluator)
	case *ast.RepeatStatement:
		collapseDeadBranches(s.Body, evaluator)
	case *ast.IfStatement:
		collapseDeadBranches(s.Body, evaluator)
		for i := range s.Branches {
			collapseDeadBranches(s.Branches[i].Body, evaluator)
		}
	}
}

// selectStaticBranch walks an if-statement's condition chain in order and
// reports the body that is always the one executed, when that much is
// decidable without running the program: every condition up to and
// including the taken one must be side-effect-free, and every one before
// the taken one must fold to a known-falsy value. It reports ok == false as
// soon as a condition's truth can't be determined statically (Unknown, or
// side-effecting), since a branch before that point might run instead.
func selectStaticBranch(ifStmt *ast.IfStatement, evaluator evaluate.Evaluator) (*ast.Block, bool) {
	conditions := make([]ast.Expression, 0, 1+len(ifStmt.Branches))
	bodies := make([]*ast.Block, 0, 1+len(ifStmt.Branches))
	conditions = append(conditions, ifStmt.Condition)
	bodies = append(bodies, ifStmt.Body)
	for _, branch := range ifStmt.Branches {
		conditions = append(conditions, branch.Condition)
		bodies = append(bodies, branch.Body)
	}

	for i, cond := range conditions {
		if cond == nil {
			// Trailing else: reached only when every prior condition folded
			// to known-falsy, which the loop has already established.
			return bodies[i], true
		}
		if evaluator.HasSideEffects(cond) {
			return nil, false
		}
		truthy, known := evaluator.Evaluate(cond).IsTruthy()
		if !known {
			return nil, false
		}
		if truthy {
			return bodies[i], true
		}
	}
	// No branch taken and no trailing else: the whole if-statement is dead.
	return ast.NewBlock(nil, nil), true
}
