package rules

import (
	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/rename"
)

// RenameVariablesRule renames every locally bound identifier to a short
// fresh name, per spec §4.7, wrapping rename.Renamer as a pipeline stage.
type RenameVariablesRule struct {
	globals  []string
	alphabet string
}

func NewRenameVariablesRule() *RenameVariablesRule { return &RenameVariablesRule{} }

func (r *RenameVariablesRule) Name() string { return "rename_variables" }

func (r *RenameVariablesRule) ConfigKeys() []string {
	return []string{"globals", "alphabet"}
}

func (r *RenameVariablesRule) RequiredConfigKeys() []string { return nil }

func (r *RenameVariablesRule) Configure(config map[string]any) error {
	if v, ok := config["globals"]; ok {
		items, ok := v.([]any)
		if !ok {
			return errInvalidType("globals", "an array", v)
		}
		r.globals = make([]string, len(items))
		for i, item := range items {
			name, ok := item.(string)
			if !ok {
				return errInvalidType("globals[]", "a string", item)
			}
			r.globals[i] = name
		}
	}
	if v, ok := config["alphabet"]; ok {
		alphabet, ok := v.(string)
		if !ok {
			return errInvalidType("alphabet", "a string", v)
		}
		r.alphabet = alphabet
	}
	return nil
}

func (r *RenameVariablesRule) Process(block *ast.Block, ctx *Context) ([]Diagnostic, error) {
	rename.New(rename.Config{GlobalVariables: r.globals, Alphabet: r.alphabet}).Rename(block)
	return nil, nil
}

func (r *RenameVariablesRule) Serialize() map[string]any {
	out := map[string]any{"rule": r.Name()}
	if len(r.globals) > 0 {
		globals := make([]any, len(r.globals))
		for i, v := range r.globals {
			globals[i] = v
		}
		out["globals"] = globals
	}
	if r.alphabet != "" {
		out["alphabet"] = r.alphabet
	}
	return out
}

// RequiresTokenRepair is false: renaming only changes an identifier's own
// Name field, it never moves a node between source buffers. A token-faithful
// generator's own identifier-token handling (reading the fresh name rather
// than stale token content) is the renamer's responsibility, not repair's —
// noted as a limitation in DESIGN.md.
func (r *RenameVariablesRule) RequiresTokenRepair() bool { return false }
