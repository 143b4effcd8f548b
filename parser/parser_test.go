package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/generate"
	"github.com/seaofvoices/darklua-go/parser"
	"github.com/seaofvoices/darklua-go/token"
)

// astDiff reports the structural difference between two trees, ignoring
// token.Token's unexported cached-content fields (always zero here: this
// parser never attaches tokens, so there is nothing for them to hold).
func astDiff(a, b *ast.Block) string {
	return cmp.Diff(a, b, cmpopts.IgnoreUnexported(token.Token{}))
}

// roundTrip exercises testable property 2 (structural parse/regenerate
// round-trip, dense mode): parse(generate_dense(parse(S))) must be
// structurally identical to parse(S), and a second iteration must be a
// no-op. Property 1 (token-faithful round-trip) does not apply to this
// parser: it never attaches token sidecars, so there is no preserved-token
// input for it to round-trip — see DESIGN.md.
func roundTrip(t *testing.T, source string) *ast.Block {
	t.Helper()
	first, err := parser.Parse([]byte(source), "test.lua")
	require.NoError(t, err)

	regenerated := generate.Block(first, generate.ModeDense)

	second, err := parser.Parse([]byte(regenerated), "test.lua")
	require.NoError(t, err)
	assert.Empty(t, astDiff(first, second), "round-trip changed the AST for %q, regenerated as %q", source, regenerated)

	third, err := parser.Parse([]byte(generate.Block(second, generate.ModeDense)), "test.lua")
	require.NoError(t, err)
	assert.Empty(t, astDiff(second, third), "a second round-trip iteration was not a no-op for %q", source)

	return first
}

func TestRoundTripLocalAssignmentAndReturn(t *testing.T) {
	roundTrip(t, "local a = 1 return a")
}

func TestRoundTripFunctionDeclarations(t *testing.T) {
	roundTrip(t, "local function f(a, b) return a + b end")
	roundTrip(t, "function M.add(a, b) return a + b end")
	roundTrip(t, "function M:add(a, b) return a + b end")
}

func TestRoundTripControlFlow(t *testing.T) {
	roundTrip(t, "if a then return 1 elseif b then return 2 else return 3 end")
	roundTrip(t, "while a do a = a - 1 end")
	roundTrip(t, "repeat a = a - 1 until a == 0")
	roundTrip(t, "for i = 1, 10, 2 do print(i) end")
	roundTrip(t, "for k, v in pairs(t) do print(k, v) end")
}

func TestRoundTripTableConstructorAndCalls(t *testing.T) {
	roundTrip(t, `local t = { a = 1, [2] = "x", 3 }`)
	roundTrip(t, "t:insert(4)")
	roundTrip(t, `f("literal")`)
	roundTrip(t, "f{ x = 1 }")
}

func TestRoundTripOperatorPrecedence(t *testing.T) {
	block := roundTrip(t, "local a = 1 + 2 * 3")
	local := block.Statements[0].(*ast.LocalAssignmentStatement)
	add, ok := local.Values[0].(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, add.Operator)
	mul, ok := add.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, mul.Operator)
}

func TestRoundTripConcatIsRightAssociative(t *testing.T) {
	block := roundTrip(t, `local a = "x" .. "y" .. "z"`)
	local := block.Statements[0].(*ast.LocalAssignmentStatement)
	outer, ok := local.Values[0].(*ast.BinaryExpression)
	require.True(t, ok)
	_, rightIsBinary := outer.Right.(*ast.BinaryExpression)
	assert.True(t, rightIsBinary, "right operand of the first .. should itself be a binary expression")
}

func TestRoundTripCompoundAndLocalAssignment(t *testing.T) {
	roundTrip(t, "local a, b = 1, 2")
	roundTrip(t, "a += 1")
	roundTrip(t, "a.b -= 1")
}

func TestParseRejectsUnterminatedBlock(t *testing.T) {
	_, err := parser.Parse([]byte("if a then return 1"), "test.lua")
	assert.Error(t, err)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := parser.Parse([]byte("local a = 1 end"), "test.lua")
	assert.Error(t, err)
}
