package util

import (
	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/visitor"
)

// Find returns the first node reachable from root for which match returns
// true, in depth-first source order, or nil if none match.
func Find(root ast.Node, match func(ast.Node) bool) ast.Node {
	var found ast.Node
	visitor.Walk(root, func(n ast.Node) bool {
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes reachable from root for which match
// returns true.
func Count(root ast.Node, match func(ast.Node) bool) int {
	count := 0
	visitor.Walk(root, func(n ast.Node) bool {
		if match(n) {
			count++
		}
		return true
	})
	return count
}
