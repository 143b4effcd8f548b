package bundle

import "github.com/seaofvoices/darklua-go/ast"

// requireCall returns the literal string argument of expr when it is a call
// to the bare `require` identifier with a single string argument — the
// only shape spec §4.6 inlines; `require(x)` with a dynamic argument, or a
// call through any other prefix, is left alone.
func requireCall(expr ast.Expression) (string, bool) {
	call, ok := expr.(*ast.CallExpression)
	if !ok {
		return "", false
	}
	id, ok := call.Base.(*ast.IdentifierExpression)
	if !ok || id.Name != "require" {
		return "", false
	}
	switch args := call.Arguments.(type) {
	case *ast.StringArguments:
		return string(args.Value.Value), true
	case *ast.TupleArguments:
		if len(args.Items) != 1 {
			return "", false
		}
		str, ok := args.Items[0].(*ast.StringExpression)
		if !ok {
			return "", false
		}
		return string(str.Value), true
	default:
		return "", false
	}
}

// replaceRequires rewrites every `require("path")` call inside block,
// recursing into nested blocks, with whatever replace returns for that
// literal path — ast.Expression(nil) from replace means "leave unchanged"
// (used for excluded requires, per spec §4.6's exclusion globs).
func replaceRequires(block *ast.Block, replace func(path string) ast.Expression) {
	if block == nil {
		return
	}
	for i, stmt := range block.Statements {
		block.Statements[i] = replaceRequiresInStatement(stmt, replace)
	}
	if ret, ok := block.Last.(*ast.ReturnStatement); ok {
		for i, expr := range ret.Expressions {
			ret.Expressions[i] = replaceRequiresInExpr(expr, replace)
		}
	}
}

func replaceRequiresInStatement(stmt ast.Statement, replace func(path string) ast.Expression) ast.Statement {
	switch s := stmt.(type) {
	case *ast.LocalAssignmentStatement:
		for i, v := range s.Values {
			s.Values[i] = replaceRequiresInExpr(v, replace)
		}
	case *ast.AssignmentStatement:
		for i, v := range s.Values {
			s.Values[i] = replaceRequiresInExpr(v, replace)
		}
	case *ast.CompoundAssignmentStatement:
		s.Value = replaceRequiresInExpr(s.Value, replace)
	case *ast.DoStatement:
		replaceRequires(s.Body, replace)
	case *ast.FunctionDeclarationStatement:
		replaceRequires(s.Body, replace)
	case *ast.GenericForStatement:
		for i, expr := range s.Expressions {
			s.Expressions[i] = replaceRequiresInExpr(expr, replace)
		}
		replaceRequires(s.Body, replace)
	case *ast.NumericForStatement:
		s.Start = replaceRequiresInExpr(s.Start, replace)
		s.Stop = replaceRequiresInExpr(s.Stop, replace)
		if s.Step != nil {
			s.Step = replaceRequiresInExpr(s.Step, replace)
		}
		replaceRequires(s.Body, replace)
	case *ast.WhileStatement:
		s.Condition = replaceRequiresInExpr(s.Condition, replace)
		replaceRequires(s.Body, replace)
	case *ast.RepeatStatement:
		replaceRequires(s.Body, replace)
		s.Condition = replaceRequiresInExpr(s.Condition, replace)
	case *ast.IfStatement:
		s.Condition = replaceRequiresInExpr(s.Condition, replace)
		replaceRequires(s.Body, replace)
		for i := range s.Branches {
			if s.Branches[i].Condition != nil {
				s.Branches[i].Condition = replaceRequiresInExpr(s.Branches[i].Condition, replace)
			}
			replaceRequires(s.Branches[i].Body, replace)
		}
	case *ast.FunctionCallStatement:
		s.Call = replaceRequiresInExpr(s.Call, replace)
	}
	return stmt
}

// replaceRequiresInExpr rewrites expr bottom-up: children are rewritten
// first, then expr itself is checked (so `require("a")(require("b"))`, an
// unusual but legal shape, rewrites both).
func replaceRequiresInExpr(expr ast.Expression, replace func(path string) ast.Expression) ast.Expression {
	if expr == nil {
		return nil
	}

	switch ex := expr.(type) {
	case *ast.InterpolatedStringExpression:
		for i, seg := range ex.Segments {
			if seg.Kind == ast.SegmentValue {
				ex.Segments[i].Value = replaceRequiresInExpr(seg.Value, replace)
			}
		}
	case *ast.TableConstructorExpression:
		for i, entry := range ex.Entries {
			if entry.Key != nil {
				ex.Entries[i].Key = replaceRequiresInExpr(entry.Key, replace)
			}
			ex.Entries[i].Value = replaceRequiresInExpr(entry.Value, replace)
		}
	case *ast.FunctionExpression:
		replaceRequires(ex.Body, replace)
	case *ast.BinaryExpression:
		ex.Left = replaceRequiresInExpr(ex.Left, replace)
		ex.Right = replaceRequiresInExpr(ex.Right, replace)
	case *ast.UnaryExpression:
		ex.Operand = replaceRequiresInExpr(ex.Operand, replace)
	case *ast.IfExpression:
		ex.Condition = replaceRequiresInExpr(ex.Condition, replace)
		ex.Then = replaceRequiresInExpr(ex.Then, replace)
		for i := range ex.Branches {
			ex.Branches[i].Condition = replaceRequiresInExpr(ex.Branches[i].Condition, replace)
			ex.Branches[i].Result = replaceRequiresInExpr(ex.Branches[i].Result, replace)
		}
		ex.Else = replaceRequiresInExpr(ex.Else, replace)
	case *ast.TypeCastExpression:
		ex.Expression = replaceRequiresInExpr(ex.Expression, replace)
	case *ast.ComponentElementExpression:
		for i, attr := range ex.Attributes {
			ex.Attributes[i].Value = replaceRequiresInExpr(attr.Value, replace)
		}
		for i, child := range ex.Children {
			ex.Children[i] = replaceRequiresInExpr(child, replace)
		}
	case *ast.FieldExpression:
		ex.Base = replaceRequiresInPrefix(ex.Base, replace)
	case *ast.IndexExpression:
		ex.Base = replaceRequiresInPrefix(ex.Base, replace)
		ex.Index = replaceRequiresInExpr(ex.Index, replace)
	case *ast.CallExpression:
		ex.Base = replaceRequiresInPrefix(ex.Base, replace)
		replaceRequiresInArguments(ex.Arguments, replace)
	case *ast.MethodCallExpression:
		ex.Base = replaceRequiresInPrefix(ex.Base, replace)
		replaceRequiresInArguments(ex.Arguments, replace)
	case *ast.ParenthesizedExpression:
		ex.Inner = replaceRequiresInExpr(ex.Inner, replace)
	}

	if path, ok := requireCall(expr); ok {
		if replaced := replace(path); replaced != nil {
			return replaced
		}
	}
	return expr
}

func replaceRequiresInPrefix(p ast.Prefix, replace func(path string) ast.Expression) ast.Prefix {
	rewritten := replaceRequiresInExpr(p.(ast.Expression), replace)
	if prefix, ok := rewritten.(ast.Prefix); ok {
		return prefix
	}
	return p
}

func replaceRequiresInArguments(args ast.Arguments, replace func(path string) ast.Expression) {
	switch a := args.(type) {
	case *ast.TupleArguments:
		for i, item := range a.Items {
			a.Items[i] = replaceRequiresInExpr(item, replace)
		}
	case *ast.StringArguments:
	case *ast.TableArguments:
		a.Value = replaceRequiresInExpr(a.Value, replace).(*ast.TableConstructorExpression)
	}
}
