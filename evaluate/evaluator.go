package evaluate

import (
	"bytes"
	"math"

	"github.com/seaofvoices/darklua-go/ast"
)

// Evaluator folds an expression to an AbstractValue and classifies whether
// evaluating it could observe or cause a side effect, per spec §4.4.
//
// AssumePureMetamethods controls how indexing and arithmetic on a value
// that might be a table are treated: when false (the default, and the
// conservative choice for real Lua programs where any table could carry a
// metatable), such an operation is always potentially side-effectful, since
// a metamethod hook could run arbitrary code; when true, only function
// calls and explicit mutation are considered side-effectful.
type Evaluator struct {
	AssumePureMetamethods bool

	// ResolveIdentifier, when set, lets a caller fold identifier reads to a
	// known value — VirtualState sets this to its local-variable lookup so
	// the same evaluation logic below handles bound names without
	// duplicating it.
	ResolveIdentifier func(name string) (AbstractValue, bool)
}

// Evaluate folds expr to the most precise AbstractValue the evaluator can
// determine without running the program.
func (e Evaluator) Evaluate(expr ast.Expression) AbstractValue {
	switch ex := expr.(type) {
	case *ast.NilExpression:
		return Nil
	case *ast.TrueExpression:
		return True
	case *ast.FalseExpression:
		return False
	case *ast.NumberExpression:
		return Number(ex.Value)
	case *ast.StringExpression:
		return String(ex.Value)
	case *ast.InterpolatedStringExpression:
		return e.evaluateInterpolated(ex)
	case *ast.TableConstructorExpression:
		return Table(ex)
	case *ast.FunctionExpression:
		return Function(ex)
	case *ast.ParenthesizedExpression:
		return e.Evaluate(ex.Inner)
	case *ast.BinaryExpression:
		return e.evaluateBinary(ex)
	case *ast.UnaryExpression:
		return e.evaluateUnary(ex)
	case *ast.IdentifierExpression:
		if e.ResolveIdentifier != nil {
			if v, ok := e.ResolveIdentifier(ex.Name); ok {
				return v
			}
		}
		return Unknown
	default:
		return Unknown
	}
}

func (e Evaluator) evaluateInterpolated(expr *ast.InterpolatedStringExpression) AbstractValue {
	var buf bytes.Buffer
	for _, seg := range expr.Segments {
		switch seg.Kind {
		case ast.SegmentLiteral:
			buf.Write(seg.Literal)
		case ast.SegmentValue:
			coerced := StringCoercion(e.Evaluate(seg.Value))
			b, ok := coerced.Bytes()
			if !ok {
				return Unknown
			}
			buf.Write(b)
		}
	}
	return String(buf.Bytes())
}

func (e Evaluator) evaluateBinary(expr *ast.BinaryExpression) AbstractValue {
	switch expr.Operator {
	case ast.OpAnd:
		return mapIfTruthy(e.Evaluate(expr.Left), func(AbstractValue) AbstractValue {
			return e.Evaluate(expr.Right)
		})
	case ast.OpOr:
		return mapIfTruthyElse(e.Evaluate(expr.Left),
			func(left AbstractValue) AbstractValue { return left },
			func() AbstractValue { return e.Evaluate(expr.Right) },
		)
	case ast.OpEqual:
		return Equals(e.Evaluate(expr.Left), e.Evaluate(expr.Right))
	case ast.OpNotEqual:
		return negateKnown(Equals(e.Evaluate(expr.Left), e.Evaluate(expr.Right)))
	case ast.OpAdd:
		return e.evaluateMath(expr, func(a, b float64) float64 { return a + b })
	case ast.OpSub:
		return e.evaluateMath(expr, func(a, b float64) float64 { return a - b })
	case ast.OpMul:
		return e.evaluateMath(expr, func(a, b float64) float64 { return a * b })
	case ast.OpDiv:
		return e.evaluateMath(expr, func(a, b float64) float64 { return a / b })
	case ast.OpFloorDiv:
		return e.evaluateMath(expr, func(a, b float64) float64 { return math.Floor(a / b) })
	case ast.OpPow:
		return e.evaluateMath(expr, math.Pow)
	case ast.OpMod:
		return e.evaluateMath(expr, func(a, b float64) float64 { return a - b*math.Floor(a/b) })
	case ast.OpConcat:
		return e.evaluateConcat(expr)
	case ast.OpLessThan:
		return e.evaluateRelational(expr, func(a, b float64) bool { return a < b }, func(a, b []byte) bool { return bytes.Compare(a, b) < 0 })
	case ast.OpLessEqual:
		return e.evaluateRelational(expr, func(a, b float64) bool { return a <= b }, func(a, b []byte) bool { return bytes.Compare(a, b) <= 0 })
	case ast.OpGreaterThan:
		return e.evaluateRelational(expr, func(a, b float64) bool { return a > b }, func(a, b []byte) bool { return bytes.Compare(a, b) > 0 })
	case ast.OpGreaterEqual:
		return e.evaluateRelational(expr, func(a, b float64) bool { return a >= b }, func(a, b []byte) bool { return bytes.Compare(a, b) >= 0 })
	default:
		return Unknown
	}
}

func negateKnown(v AbstractValue) AbstractValue {
	switch v.kind {
	case KindTrue:
		return False
	case KindFalse:
		return True
	default:
		return Unknown
	}
}

func (e Evaluator) evaluateMath(expr *ast.BinaryExpression, op func(a, b float64) float64) AbstractValue {
	left, ok := NumberCoercion(e.Evaluate(expr.Left)).Float64()
	if !ok {
		return Unknown
	}
	right, ok := NumberCoercion(e.Evaluate(expr.Right)).Float64()
	if !ok {
		return Unknown
	}
	return Number(op(left, right))
}

// evaluateConcat performs string-coercion on numbers per spec §4.4;
// anything that coerces to neither a string nor a number yields Unknown.
func (e Evaluator) evaluateConcat(expr *ast.BinaryExpression) AbstractValue {
	left, ok := StringCoercion(e.Evaluate(expr.Left)).Bytes()
	if !ok {
		return Unknown
	}
	right, ok := StringCoercion(e.Evaluate(expr.Right)).Bytes()
	if !ok {
		return Unknown
	}
	out := make([]byte, 0, len(left)+len(right))
	out = append(out, left...)
	out = append(out, right...)
	return String(out)
}

// evaluateRelational never coerces: mixed or unknown operand kinds yield
// Unknown, not False, per spec §4.4 ("an operator applied to ill-typed
// operands is not known to be false").
func (e Evaluator) evaluateRelational(expr *ast.BinaryExpression, numCmp func(a, b float64) bool, strCmp func(a, b []byte) bool) AbstractValue {
	left := e.Evaluate(expr.Left)
	right := e.Evaluate(expr.Right)
	if ln, ok := left.Float64(); ok {
		if rn, ok := right.Float64(); ok {
			return Bool(numCmp(ln, rn))
		}
		return Unknown
	}
	if ls, ok := left.Bytes(); ok {
		if rs, ok := right.Bytes(); ok {
			return Bool(strCmp(ls, rs))
		}
		return Unknown
	}
	return Unknown
}

func (e Evaluator) evaluateUnary(expr *ast.UnaryExpression) AbstractValue {
	switch expr.Operator {
	case ast.OpNot:
		truthy, known := e.Evaluate(expr.Operand).IsTruthy()
		if !known {
			return Unknown
		}
		return Bool(!truthy)
	case ast.OpNegate:
		n, ok := NumberCoercion(e.Evaluate(expr.Operand)).Float64()
		if !ok {
			return Unknown
		}
		return Number(-n)
	case ast.OpLength:
		if b, ok := e.Evaluate(expr.Operand).Bytes(); ok {
			return Number(float64(len(b)))
		}
		return Unknown
	default:
		return Unknown
	}
}

// HasSideEffects reports whether evaluating expr could observe or cause a
// side effect: a function call always does; indexing or arithmetic on a
// value that might carry a metatable does too, unless AssumePureMetamethods
// is set.
func (e Evaluator) HasSideEffects(expr ast.Expression) bool {
	switch ex := expr.(type) {
	case *ast.NilExpression, *ast.TrueExpression, *ast.FalseExpression,
		*ast.NumberExpression, *ast.StringExpression, *ast.IdentifierExpression,
		*ast.FunctionExpression:
		return false
	case *ast.InterpolatedStringExpression:
		for _, seg := range ex.Segments {
			if seg.Kind != ast.SegmentValue {
				continue
			}
			if e.maybeTable(e.Evaluate(seg.Value)) || e.HasSideEffects(seg.Value) {
				return true
			}
		}
		return false
	case *ast.BinaryExpression:
		if e.AssumePureMetamethods {
			return e.HasSideEffects(ex.Left) || e.HasSideEffects(ex.Right)
		}
		return e.maybeTable(e.Evaluate(ex.Left)) || e.maybeTable(e.Evaluate(ex.Right)) ||
			e.HasSideEffects(ex.Left) || e.HasSideEffects(ex.Right)
	case *ast.UnaryExpression:
		if e.AssumePureMetamethods {
			return e.HasSideEffects(ex.Operand)
		}
		return e.maybeTable(e.Evaluate(ex.Operand)) || e.HasSideEffects(ex.Operand)
	case *ast.FieldExpression:
		return !e.AssumePureMetamethods || e.prefixHasSideEffects(ex.Base)
	case *ast.IndexExpression:
		return !e.AssumePureMetamethods || e.HasSideEffects(ex.Index) || e.prefixHasSideEffects(ex.Base)
	case *ast.ParenthesizedExpression:
		return e.HasSideEffects(ex.Inner)
	case *ast.TableConstructorExpression:
		for _, entry := range ex.Entries {
			if entry.Key != nil && e.HasSideEffects(entry.Key) {
				return true
			}
			if e.HasSideEffects(entry.Value) {
				return true
			}
		}
		return false
	case *ast.CallExpression, *ast.MethodCallExpression:
		return true
	case *ast.IfExpression:
		if e.HasSideEffects(ex.Condition) || e.HasSideEffects(ex.Then) || e.HasSideEffects(ex.Else) {
			return true
		}
		for _, branch := range ex.Branches {
			if e.HasSideEffects(branch.Condition) || e.HasSideEffects(branch.Result) {
				return true
			}
		}
		return false
	case *ast.TypeCastExpression:
		return e.HasSideEffects(ex.Expression)
	case *ast.ComponentElementExpression:
		for _, attr := range ex.Attributes {
			if e.HasSideEffects(attr.Value) {
				return true
			}
		}
		for _, child := range ex.Children {
			if e.HasSideEffects(child) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func (e Evaluator) prefixHasSideEffects(p ast.Prefix) bool {
	switch pr := p.(type) {
	case *ast.IdentifierExpression:
		return false
	case *ast.FieldExpression:
		return !e.AssumePureMetamethods || e.prefixHasSideEffects(pr.Base)
	case *ast.IndexExpression:
		return !e.AssumePureMetamethods || e.HasSideEffects(pr.Index) || e.prefixHasSideEffects(pr.Base)
	case *ast.CallExpression, *ast.MethodCallExpression:
		return true
	case *ast.ParenthesizedExpression:
		return e.HasSideEffects(pr.Inner)
	default:
		return true
	}
}

// maybeTable reports whether v could be a table at runtime: a concrete
// Table and Unknown both count, since an Unknown operand might carry a
// metatable whose metamethods run arbitrary code.
func (e Evaluator) maybeTable(v AbstractValue) bool {
	return isMaybeTable(v)
}
