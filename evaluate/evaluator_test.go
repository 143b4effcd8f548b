package evaluate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/evaluate"
)

func num(v float64) ast.Expression { return &ast.NumberExpression{Value: v} }
func str(v string) ast.Expression  { return &ast.StringExpression{Value: []byte(v)} }
func ident(name string) *ast.IdentifierExpression { return &ast.IdentifierExpression{Name: name} }

func binary(op ast.BinaryOperator, left, right ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{Left: left, Operator: op, Right: right}
}

func TestEvaluateLiterals(t *testing.T) {
	var e evaluate.Evaluator
	assert.Equal(t, evaluate.Nil, e.Evaluate(&ast.NilExpression{}))
	assert.Equal(t, evaluate.True, e.Evaluate(&ast.TrueExpression{}))
	assert.Equal(t, evaluate.False, e.Evaluate(&ast.FalseExpression{}))

	n := e.Evaluate(num(3))
	f, ok := n.Float64()
	require.True(t, ok)
	assert.Equal(t, float64(3), f)

	s := e.Evaluate(str("hi"))
	b, ok := s.Bytes()
	require.True(t, ok)
	assert.Equal(t, "hi", string(b))
}

func TestEvaluateIdentifierWithoutResolverIsUnknown(t *testing.T) {
	var e evaluate.Evaluator
	assert.Equal(t, evaluate.Unknown, e.Evaluate(ident("x")))
}

func TestEvaluateIdentifierResolvesThroughHook(t *testing.T) {
	e := evaluate.Evaluator{
		ResolveIdentifier: func(name string) (evaluate.AbstractValue, bool) {
			if name == "x" {
				return evaluate.Number(42), true
			}
			return evaluate.AbstractValue{}, false
		},
	}
	f, ok := e.Evaluate(ident("x")).Float64()
	require.True(t, ok)
	assert.Equal(t, float64(42), f)

	assert.Equal(t, evaluate.Unknown, e.Evaluate(ident("y")))
}

func TestEvaluateArithmetic(t *testing.T) {
	var e evaluate.Evaluator
	f, ok := e.Evaluate(binary(ast.OpAdd, num(1), num(2))).Float64()
	require.True(t, ok)
	assert.Equal(t, float64(3), f)

	f, ok = e.Evaluate(binary(ast.OpMul, num(2), num(5))).Float64()
	require.True(t, ok)
	assert.Equal(t, float64(10), f)
}

func TestEvaluateArithmeticWithUnknownOperandIsUnknown(t *testing.T) {
	var e evaluate.Evaluator
	assert.Equal(t, evaluate.Unknown, e.Evaluate(binary(ast.OpAdd, ident("x"), num(1))))
}

func TestEvaluateConcatCoercesNumbers(t *testing.T) {
	var e evaluate.Evaluator
	s, ok := e.Evaluate(binary(ast.OpConcat, str("n="), num(3))).Bytes()
	require.True(t, ok)
	assert.Equal(t, "n=3", string(s))
}

func TestEvaluateAndShortCircuitsOnKnownFalsy(t *testing.T) {
	var e evaluate.Evaluator
	// The right side would be a side-effecting call in real source; here we
	// only need to observe that it is never reached, so an Unknown standing
	// in for it must not leak through `and`'s result.
	result := e.Evaluate(binary(ast.OpAnd, &ast.FalseExpression{}, ident("never")))
	assert.Equal(t, evaluate.False, result)
}

func TestEvaluateAndPropagatesRightWhenLeftTruthy(t *testing.T) {
	var e evaluate.Evaluator
	result := e.Evaluate(binary(ast.OpAnd, &ast.TrueExpression{}, num(7)))
	f, ok := result.Float64()
	require.True(t, ok)
	assert.Equal(t, float64(7), f)
}

func TestEvaluateAndWithUnknownLeftIsUnknown(t *testing.T) {
	var e evaluate.Evaluator
	assert.Equal(t, evaluate.Unknown, e.Evaluate(binary(ast.OpAnd, ident("x"), num(1))))
}

func TestEvaluateOrReturnsLeftWhenTruthy(t *testing.T) {
	var e evaluate.Evaluator
	result := e.Evaluate(binary(ast.OpOr, num(1), num(2)))
	f, ok := result.Float64()
	require.True(t, ok)
	assert.Equal(t, float64(1), f)
}

func TestEvaluateOrFallsThroughOnKnownFalsy(t *testing.T) {
	var e evaluate.Evaluator
	result := e.Evaluate(binary(ast.OpOr, &ast.NilExpression{}, num(2)))
	f, ok := result.Float64()
	require.True(t, ok)
	assert.Equal(t, float64(2), f)
}

func TestEvaluateRelationalDoesNotDefaultToFalseOnUnknownOperand(t *testing.T) {
	var e evaluate.Evaluator
	// An ill-typed or unknown operand must stay Unknown, never collapse to
	// False, per the lattice's own documented rule.
	assert.Equal(t, evaluate.Unknown, e.Evaluate(binary(ast.OpLessThan, ident("x"), num(1))))
	assert.Equal(t, evaluate.Unknown, e.Evaluate(binary(ast.OpLessThan, num(1), str("a"))))
}

func TestEvaluateRelationalComparesNumbersAndStrings(t *testing.T) {
	var e evaluate.Evaluator
	assert.Equal(t, evaluate.True, e.Evaluate(binary(ast.OpLessThan, num(1), num(2))))
	assert.Equal(t, evaluate.False, e.Evaluate(binary(ast.OpGreaterThan, num(1), num(2))))
	assert.Equal(t, evaluate.True, e.Evaluate(binary(ast.OpLessThan, str("a"), str("b"))))
}

func TestEqualsWithUnknownOperandIsUnknown(t *testing.T) {
	assert.Equal(t, evaluate.Unknown, evaluate.Equals(evaluate.Unknown, evaluate.Number(1)))
	assert.Equal(t, evaluate.Unknown, evaluate.Equals(evaluate.Number(1), evaluate.Unknown))
}

func TestEqualsComparesByFirstElementForTuples(t *testing.T) {
	a := evaluate.Tuple([]evaluate.AbstractValue{evaluate.Number(1), evaluate.Number(99)})
	b := evaluate.Number(1)
	assert.Equal(t, evaluate.True, evaluate.Equals(a, b))
}

func TestEqualsDiffersByKindIsFalse(t *testing.T) {
	assert.Equal(t, evaluate.False, evaluate.Equals(evaluate.Number(1), evaluate.StringFrom("1")))
}

func TestEqualsComparesTableAndFunctionByIdentity(t *testing.T) {
	handleA := &ast.TableConstructorExpression{}
	handleB := &ast.TableConstructorExpression{}
	assert.Equal(t, evaluate.True, evaluate.Equals(evaluate.Table(handleA), evaluate.Table(handleA)))
	assert.Equal(t, evaluate.False, evaluate.Equals(evaluate.Table(handleA), evaluate.Table(handleB)))
}

func TestHasSideEffectsCallExpressionAlwaysTrue(t *testing.T) {
	var e evaluate.Evaluator
	call := &ast.CallExpression{Base: ident("f"), Arguments: &ast.TupleArguments{}}
	assert.True(t, e.HasSideEffects(call))
}

func TestHasSideEffectsLiteralsAndIdentifiersAreFalse(t *testing.T) {
	var e evaluate.Evaluator
	assert.False(t, e.HasSideEffects(num(1)))
	assert.False(t, e.HasSideEffects(str("x")))
	assert.False(t, e.HasSideEffects(ident("x")))
}

func TestHasSideEffectsIndexingDefaultsToSideEffectingUnlessPureMetamethods(t *testing.T) {
	index := &ast.FieldExpression{Base: ident("t"), Name: "field"}

	conservative := evaluate.Evaluator{}
	assert.True(t, conservative.HasSideEffects(index), "indexing an identifier that might be a table must be treated as side-effecting by default")

	pure := evaluate.Evaluator{AssumePureMetamethods: true}
	assert.False(t, pure.HasSideEffects(index))
}

func TestHasSideEffectsArithmeticOnMaybeTableOperand(t *testing.T) {
	conservative := evaluate.Evaluator{}
	expr := binary(ast.OpAdd, ident("t"), num(1))
	assert.True(t, conservative.HasSideEffects(expr), "an Unknown operand might carry a metatable, so arithmetic on it must be treated as side-effecting by default")

	pure := evaluate.Evaluator{AssumePureMetamethods: true}
	assert.False(t, pure.HasSideEffects(expr))
}

func TestHasSideEffectsPropagatesThroughNestedExpressions(t *testing.T) {
	var e evaluate.Evaluator
	call := &ast.CallExpression{Base: ident("f"), Arguments: &ast.TupleArguments{}}
	nested := &ast.ParenthesizedExpression{Inner: binary(ast.OpAdd, num(1), call)}
	assert.True(t, e.HasSideEffects(nested))
}
