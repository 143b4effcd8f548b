package visitor

import "github.com/seaofvoices/darklua-go/ast"

// Walk is a narrower traversal for read-only callers that don't want the
// NodeProcessor/Scope ceremony: it calls fn on every node reachable from
// root, depth-first, in source order, stopping the entire walk as soon as fn
// returns false. util.Find and util.Count are built on this.
func Walk(root ast.Node, fn func(ast.Node) bool) {
	if root == nil {
		return
	}
	keepGoing := true
	noop := func(ast.Node) {}
	e := engine{
		enter: func(n ast.Node) {
			if keepGoing {
				keepGoing = fn(n)
			}
		},
		leave: noop,
		scope: noopScope{},
	}
	switch r := root.(type) {
	case *ast.Block:
		e.visitBlock(r)
	case ast.Statement:
		e.visitStatement(r)
	case ast.LastStatement:
		e.visitLastStatement(r)
	case ast.Expression:
		e.visitExpression(r)
	case ast.Arguments:
		e.visitArguments(r)
	case ast.Type:
		e.visitType(r)
	}
}
