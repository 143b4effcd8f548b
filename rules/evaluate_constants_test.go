package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/rules"
)

func TestEvaluateConstantsRuleFoldsArithmetic(t *testing.T) {
	rule, err := rules.DecodeRule("evaluate_constants", rules.Default())
	require.NoError(t, err)

	block := ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "x"}},
			Values: []ast.Expression{&ast.BinaryExpression{
				Left:     &ast.NumberExpression{Value: 1},
				Operator: ast.OpAdd,
				Right:    &ast.NumberExpression{Value: 2},
			}},
		},
	}, nil)

	diags, err := rule.Process(block, rules.NewContext("entry.lua", nil, nil, nil))
	require.NoError(t, err)
	require.Empty(t, diags)

	local := block.Statements[0].(*ast.LocalAssignmentStatement)
	number := local.Values[0].(*ast.NumberExpression)
	assert.Equal(t, float64(3), number.Value)
}

func TestEvaluateConstantsRuleLeavesSideEffectingExpressionAlone(t *testing.T) {
	rule, err := rules.DecodeRule("evaluate_constants", rules.Default())
	require.NoError(t, err)

	call := &ast.CallExpression{
		Base:      &ast.IdentifierExpression{Name: "f"},
		Arguments: &ast.TupleArguments{},
	}
	block := ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "x"}},
			Values: []ast.Expression{&ast.BinaryExpression{
				Left:     call,
				Operator: ast.OpAdd,
				Right:    &ast.NumberExpression{Value: 2},
			}},
		},
	}, nil)

	_, err = rule.Process(block, rules.NewContext("entry.lua", nil, nil, nil))
	require.NoError(t, err)

	local := block.Statements[0].(*ast.LocalAssignmentStatement)
	_, stillBinary := local.Values[0].(*ast.BinaryExpression)
	assert.True(t, stillBinary)
}
