// Package visitor implements the two traversal drivers every rule is built
// on: a plain depth-first walk that invokes a processor's per-node hooks,
// and a scope-aware variant that additionally tracks identifier lifetimes by
// calling back into a Scope capability at each binding site.
package visitor

import "github.com/seaofvoices/darklua-go/ast"

// NodeProcessor is called before and after every node the traversal visits.
// Enter may mutate node in place; any replacement of a node's own fields
// (not the node itself) during Enter is picked up by the traversal, since
// children are read after Enter returns.
type NodeProcessor interface {
	Enter(node ast.Node)
	Leave(node ast.Node)
}

// BaseProcessor is embedded by processors that only care about one of
// Enter/Leave, so they don't have to stub out the other.
type BaseProcessor struct{}

func (BaseProcessor) Enter(ast.Node) {}
func (BaseProcessor) Leave(ast.Node) {}

// Scope is the capability a processor must implement to drive the scope
// visitor. Push/Pop bracket every block that introduces a fresh lexical
// scope; InsertLocal/Insert/Self record a binding becoming visible within
// the current scope.
//
// InsertLocal and Insert return the name the engine should write back into
// the declaration site's AST node (TypedIdentifier.Name, a for-loop
// variable's name, ...): a pure observer just echoes its argument back, but
// a rule like rename uses the return value to rebind the identifier to a
// freshly allocated name without the engine needing to know anything about
// renaming.
type Scope interface {
	// Push opens a fresh scope frame.
	Push()
	// Pop closes the innermost scope frame, after which any binding it held
	// is no longer reachable by lookup.
	Pop()
	// InsertLocal records a local-declaration binding. hasInitializer
	// reports whether this particular name received a value from the
	// declaration's initializer list (locals past the last initializer are
	// bound to nil). Called after the initializer expressions have already
	// been visited, so a local can never see itself while being defined.
	InsertLocal(name string, hasInitializer bool) string
	// Insert records a non-local binding site: a for-loop variable or a
	// function parameter.
	Insert(name string) string
	// InsertSelf records the implicit `self` binding of a method body.
	// self is never itself renamed, so there is nothing to write back.
	InsertSelf()
	// Resolve returns the name an identifier read of name should use: a
	// pure observer echoes name back; rename returns the fresh name bound
	// to the innermost matching frame, or name unchanged if no frame binds
	// it (a global reference).
	Resolve(name string) string
}

// ScopeProcessor is a NodeProcessor that also drives scope tracking.
type ScopeProcessor interface {
	NodeProcessor
	Scope
}
