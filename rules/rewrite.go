package rules

import "github.com/seaofvoices/darklua-go/ast"

// mapExpressions rewrites every expression reachable from block, bottom-up
// (children first, then the node itself), replacing each with whatever fn
// returns for it. Returning the same expression unchanged is a no-op.
// Assignment targets (including the index expressions inside them) and
// type annotations are not visited.
//
// This mirrors bundle/rewrite.go's exhaustive statement/expression switch,
// generalized from "replace a require call" to "replace any expression" —
// the shape both passes need comes from visitor/engine.go's traversal, but
// neither can be built on Visitor directly: Enter/Leave hand a processor
// the node itself, not the struct field holding it, so a hook that wants to
// swap a node for a different concrete type needs the replacement to flow
// back through a return value at each recursion level instead.
func mapExpressions(block *ast.Block, fn func(ast.Expression) ast.Expression) {
	if block == nil {
		return
	}
	for i, stmt := range block.Statements {
		block.Statements[i] = mapStatement(stmt, fn)
	}
	if ret, ok := block.Last.(*ast.ReturnStatement); ok {
		for i, expr := range ret.Expressions {
			ret.Expressions[i] = mapExpr(expr, fn)
		}
	}
}

func mapStatement(stmt ast.Statement, fn func(ast.Expression) ast.Expression) ast.Statement {
	switch s := stmt.(type) {
	case *ast.LocalAssignmentStatement:
		for i, v := range s.Values {
			s.Values[i] = mapExpr(v, fn)
		}
	case *ast.AssignmentStatement:
		for i, v := range s.Values {
			s.Values[i] = mapExpr(v, fn)
		}
	case *ast.CompoundAssignmentStatement:
		s.Value = mapExpr(s.Value, fn)
	case *ast.DoStatement:
		mapExpressions(s.Body, fn)
	case *ast.FunctionDeclarationStatement:
		mapExpressions(s.Body, fn)
	case *ast.GenericForStatement:
		for i, expr := range s.Expressions {
			s.Expressions[i] = mapExpr(expr, fn)
		}
		mapExpressions(s.Body, fn)
	case *ast.NumericForStatement:
		s.Start = mapExpr(s.Start, fn)
		s.Stop = mapExpr(s.Stop, fn)
		if s.Step != nil {
			s.Step = mapExpr(s.Step, fn)
		}
		mapExpressions(s.Body, fn)
	case *ast.WhileStatement:
		s.Condition = mapExpr(s.Condition, fn)
		mapExpressions(s.Body, fn)
	case *ast.RepeatStatement:
		mapExpressions(s.Body, fn)
		s.Condition = mapExpr(s.Condition, fn)
	case *ast.IfStatement:
		s.Condition = mapExpr(s.Condition, fn)
		mapExpressions(s.Body, fn)
		for i := range s.Branches {
			if s.Branches[i].Condition != nil {
				s.Branches[i].Condition = mapExpr(s.Branches[i].Condition, fn)
			}
			mapExpressions(s.Branches[i].Body, fn)
		}
	case *ast.FunctionCallStatement:
		s.Call = mapExpr(s.Call, fn)
	}
	return stmt
}

func mapExpr(expr ast.Expression, fn func(ast.Expression) ast.Expression) ast.Expression {
	if expr == nil {
		return nil
	}

	switch ex := expr.(type) {
	case *ast.InterpolatedStringExpression:
		for i, seg := range ex.Segments {
			if seg.Kind == ast.SegmentValue {
				ex.Segments[i].Value = mapExpr(seg.Value, fn)
			}
		}
	case *ast.TableConstructorExpression:
		for i, entry := range ex.Entries {
			if entry.Key != nil {
				ex.Entries[i].Key = mapExpr(entry.Key, fn)
			}
			ex.Entries[i].Value = mapExpr(entry.Value, fn)
		}
	case *ast.FunctionExpression:
		mapExpressions(ex.Body, fn)
	case *ast.BinaryExpression:
		ex.Left = mapExpr(ex.Left, fn)
		ex.Right = mapExpr(ex.Right, fn)
	case *ast.UnaryExpression:
		ex.Operand = mapExpr(ex.Operand, fn)
	case *ast.IfExpression:
		ex.Condition = mapExpr(ex.Condition, fn)
		ex.Then = mapExpr(ex.Then, fn)
		for i := range ex.Branches {
			ex.Branches[i].Condition = mapExpr(ex.Branches[i].Condition, fn)
			ex.Branches[i].Result = mapExpr(ex.Branches[i].Result, fn)
		}
		ex.Else = mapExpr(ex.Else, fn)
	case *ast.TypeCastExpression:
		ex.Expression = mapExpr(ex.Expression, fn)
	case *ast.ComponentElementExpression:
		for i, attr := range ex.Attributes {
			ex.Attributes[i].Value = mapExpr(attr.Value, fn)
		}
		for i, child := range ex.Children {
			ex.Children[i] = mapExpr(child, fn)
		}
	case *ast.FieldExpression:
		ex.Base = mapPrefix(ex.Base, fn)
	case *ast.IndexExpression:
		ex.Base = mapPrefix(ex.Base, fn)
		ex.Index = mapExpr(ex.Index, fn)
	case *ast.CallExpression:
		ex.Base = mapPrefix(ex.Base, fn)
		mapArguments(ex.Arguments, fn)
	case *ast.MethodCallExpression:
		ex.Base = mapPrefix(ex.Base, fn)
		mapArguments(ex.Arguments, fn)
	case *ast.ParenthesizedExpression:
		ex.Inner = mapExpr(ex.Inner, fn)
	}

	return fn(expr)
}

func mapPrefix(p ast.Prefix, fn func(ast.Expression) ast.Expression) ast.Prefix {
	rewritten := mapExpr(p.(ast.Expression), fn)
	if prefix, ok := rewritten.(ast.Prefix); ok {
		return prefix
	}
	return p
}

func mapArguments(args ast.Arguments, fn func(ast.Expression) ast.Expression) {
	switch a := args.(type) {
	case *ast.TupleArguments:
		for i, item := range a.Items {
			a.Items[i] = mapExpr(item, fn)
		}
	case *ast.StringArguments:
	case *ast.TableArguments:
		if rewritten, ok := mapExpr(a.Value, fn).(*ast.TableConstructorExpression); ok {
			a.Value = rewritten
		}
	}
}
