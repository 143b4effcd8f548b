// Package mutate implements the declarative alternative to direct AST
// mutation: a rule performs a read-only traversal, enqueues the edits it
// wants as node-path-addressed mutations, and a Planner resolves conflicts
// between them at commit time. Grounded on core/plan/dsl.go and
// core/plan/types.go's declarative plan-with-effects model, adapted from
// "plan a sequence of shell steps with edges between them" to "plan a
// sequence of statement edits with effects propagated between them."
package mutate

// Span addresses a half-open range [Start, End) of statement indices within
// one Block. A zero-width span (Start == End) addresses an insertion point
// rather than an existing statement.
type Span struct {
	Start int
	End   int
}

func (s Span) len() int { return s.End - s.Start }

func (s Span) empty() bool { return s.Start == s.End }
