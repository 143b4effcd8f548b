package evaluate

import "github.com/seaofvoices/darklua-go/ast"

// EffectKind tags one entry of the execution trace VirtualState records as
// it steps through a block.
type EffectKind uint8

const (
	EffectRead EffectKind = iota
	EffectWrite
	EffectCall
)

// Effect is one execution_effect-style annotation: a local read, a local
// write, or a call expression encountered while stepping a statement. Name
// is empty for EffectCall.
type Effect struct {
	Kind EffectKind
	Name string
}

// VirtualState threads local-variable bindings explicitly through a
// block's statements, in source order, so a rule can fold a later
// expression against an earlier assignment within the same flattened scope
// (`local x = 1; if x == 1 then ... end` folds the condition to True). It
// is the explicit extension spec §9 calls out as separate from the core:
// unlike visitor.ScopeVisitor, nothing drives it automatically — a rule
// opts in by constructing one and calling Step once per statement.
type VirtualState struct {
	locals   map[string]AbstractValue
	effects  []Effect
	pureMeta bool
}

// NewVirtualState returns an empty state. assumePureMetamethods is forwarded
// to the Evaluator used internally for folding expressions against it.
func NewVirtualState(assumePureMetamethods bool) *VirtualState {
	return &VirtualState{
		locals:   make(map[string]AbstractValue),
		pureMeta: assumePureMetamethods,
	}
}

// Lookup returns the most recently recorded value for name and whether it
// has been assigned within this state at all.
func (s *VirtualState) Lookup(name string) (AbstractValue, bool) {
	v, ok := s.locals[name]
	return v, ok
}

// Forget removes name from the state — used when the scope that declared it
// exits, so a later shadowing declaration of the same name in a sibling
// scope doesn't see a stale binding.
func (s *VirtualState) Forget(name string) {
	delete(s.locals, name)
}

// Evaluator returns an Evaluator whose identifier reads resolve against
// this state's current bindings.
func (s *VirtualState) Evaluator() Evaluator {
	return Evaluator{AssumePureMetamethods: s.pureMeta, ResolveIdentifier: s.Lookup}
}

// Effects returns the trace recorded by Step calls so far.
func (s *VirtualState) Effects() []Effect {
	return s.effects
}

// Step evaluates stmt against the state's current bindings, recording the
// effect trace, and updates the bindings for any local declaration or
// assignment the statement performs. It returns nothing, and statement kinds
// other than local/plain/compound assignment and call statements (an
// IfStatement included) are ignored; a guard is folded with
// EvaluateCondition.
func (s *VirtualState) Step(stmt ast.Statement) {
	ev := s.Evaluator()
	switch st := stmt.(type) {
	case *ast.LocalAssignmentStatement:
		values := make([]AbstractValue, len(st.Variables))
		for i, v := range st.Values {
			s.recordReads(v)
			if i < len(values) {
				values[i] = ev.Evaluate(v)
			}
		}
		for i := range st.Variables {
			name := st.Variables[i].Name
			value := Unknown
			if i < len(values) {
				value = values[i]
			} else {
				value = Nil
			}
			s.locals[name] = value
			s.record(Effect{Kind: EffectWrite, Name: name})
		}
	case *ast.AssignmentStatement:
		for _, v := range st.Values {
			s.recordReads(v)
		}
		for i, target := range st.Targets {
			name, ok := ast.IdentifierName(target)
			if !ok {
				continue
			}
			if i < len(st.Values) {
				s.locals[name] = ev.Evaluate(st.Values[i])
			} else {
				s.locals[name] = Nil
			}
			s.record(Effect{Kind: EffectWrite, Name: name})
		}
	case *ast.CompoundAssignmentStatement:
		s.recordReads(st.Value)
		if name, ok := ast.IdentifierName(st.Target); ok {
			s.locals[name] = Unknown
			s.record(Effect{Kind: EffectWrite, Name: name})
		}
	case *ast.FunctionCallStatement:
		s.recordReads(st.Call)
		s.record(Effect{Kind: EffectCall})
	}
}

// recordReads appends a Read effect for every identifier reachable from
// expr, and a Call effect for every call expression it contains — a
// shallow trace, not a full side-effect classification (Evaluator.
// HasSideEffects covers that).
func (s *VirtualState) recordReads(expr ast.Expression) {
	switch ex := expr.(type) {
	case *ast.IdentifierExpression:
		s.record(Effect{Kind: EffectRead, Name: ex.Name})
	case *ast.BinaryExpression:
		s.recordReads(ex.Left)
		s.recordReads(ex.Right)
	case *ast.UnaryExpression:
		s.recordReads(ex.Operand)
	case *ast.ParenthesizedExpression:
		s.recordReads(ex.Inner)
	case *ast.CallExpression:
		s.recordReads(ex.Base.(ast.Expression))
		s.record(Effect{Kind: EffectCall})
	case *ast.MethodCallExpression:
		s.recordReads(ex.Base.(ast.Expression))
		s.record(Effect{Kind: EffectCall})
	case *ast.FieldExpression:
		s.recordReads(ex.Base.(ast.Expression))
	case *ast.IndexExpression:
		s.recordReads(ex.Base.(ast.Expression))
		s.recordReads(ex.Index)
	}
}

func (s *VirtualState) record(effect Effect) {
	s.effects = append(s.effects, effect)
}

// EvaluateCondition folds cond against the state's current bindings,
// returning the narrowed truthiness the way an IfStatement/WhileStatement
// guard would observe it.
func (s *VirtualState) EvaluateCondition(cond ast.Expression) AbstractValue {
	s.recordReads(cond)
	return s.Evaluator().Evaluate(cond)
}
