package rename

import (
	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/visitor"
)

// Renamer implements visitor.ScopeProcessor, renaming every locally bound
// identifier to a short fresh name while leaving globals and the names in
// Config.GlobalVariables untouched.
type Renamer struct {
	visitor.BaseProcessor

	globals map[string]bool
	names   *nameSource
	stack   frameStack
}

// New returns a Renamer configured by config.
func New(config Config) *Renamer {
	globals := expandGlobals(config.GlobalVariables)
	return &Renamer{
		globals: globals,
		names:   newNameSource(config.Alphabet, globals),
	}
}

// Rename walks block, renaming every local binding and its references in
// place.
func (r *Renamer) Rename(block *ast.Block) {
	visitor.NewScopeVisitor(r).Walk(block)
}

func (r *Renamer) Push() {
	r.stack.push()
}

func (r *Renamer) Pop() {
	freed := r.stack.pop()
	r.names.release(freed)
}

// InsertLocal allocates a fresh name for name unless name is a preserved
// global, in which case it is left exactly as given — spec §4.7 only
// renames bindings, never introduces a shadow of a global under a fresh
// name, which would itself change which global a later unshadowed
// reference resolves to. A preserved local is still tracked in the frame
// under its own name, so a nested local with the same name shadows it
// correctly.
func (r *Renamer) InsertLocal(name string, hasInitializer bool) string {
	return r.insert(name, true)
}

func (r *Renamer) Insert(name string) string {
	return r.insert(name, true)
}

func (r *Renamer) insert(name string, reusable bool) string {
	if r.globals[name] {
		r.stack.bind(name, name, false)
		return name
	}
	fresh := r.names.next()
	r.stack.bind(name, fresh, reusable)
	return fresh
}

// InsertSelf binds `self` to itself, non-reusable — a method body must
// keep the literal name `self`.
func (r *Renamer) InsertSelf() {
	r.stack.bind("self", "self", false)
}

// Resolve returns the fresh name bound to name in the innermost frame that
// has one, or name unchanged if no frame binds it — an unshadowed global.
func (r *Renamer) Resolve(name string) string {
	if fresh, ok := r.stack.resolve(name); ok {
		return fresh
	}
	return name
}
