// Package rules implements the rule pipeline spec §4.8 describes: named,
// schema-configured mutating passes over a Block, run in declaration order,
// sharing a Context.
package rules

import "github.com/seaofvoices/darklua-go/ast"

// Rule is one pipeline stage: a stable name, a configuration schema (its
// allowed and required property names), a mutating Process step, and a
// serializer back to configuration.
type Rule interface {
	// Name is the rule's stable identifier, used both in configuration
	// (spec §6's bare-string-or-object shape) and in diagnostics.
	Name() string

	// ConfigKeys lists every property name Configure accepts — the allowed
	// set a config decoder fuzzy-matches an unknown property against to
	// produce a suggestion.
	ConfigKeys() []string

	// RequiredConfigKeys lists the subset of ConfigKeys that must be
	// present.
	RequiredConfigKeys() []string

	// Configure applies a decoded, already key-validated configuration
	// object. Called at most once, before the rule is ever run.
	Configure(config map[string]any) error

	// Process mutates block in place, returning diagnostics on failure. A
	// non-empty diagnostics slice aborts the pipeline per spec §4.8.
	Process(block *ast.Block, ctx *Context) ([]Diagnostic, error)

	// Serialize returns this rule's current configuration in the shape
	// Configure accepts, satisfying spec §4.8's round-trip requirement.
	Serialize() map[string]any

	// RequiresTokenRepair reports whether this rule's mutations can leave
	// token byte-ranges stale, per spec §4.10.
	RequiresTokenRepair() bool
}
