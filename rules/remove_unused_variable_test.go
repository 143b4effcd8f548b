package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/rules"
)

func TestRemoveUnusedVariableRuleDropsDeadLocal(t *testing.T) {
	rule, err := rules.DecodeRule("remove_unused_variable", rules.Default())
	require.NoError(t, err)

	block := ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "dead"}},
			Values:    []ast.Expression{&ast.NumberExpression{Value: 1}},
		},
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "live"}},
			Values:    []ast.Expression{&ast.NumberExpression{Value: 2}},
		},
	}, &ast.ReturnStatement{Expressions: []ast.Expression{&ast.IdentifierExpression{Name: "live"}}})

	diags, err := rule.Process(block, rules.NewContext("entry.lua", nil, nil, nil))
	require.NoError(t, err)
	require.Empty(t, diags)

	require.Len(t, block.Statements, 1)
	local := block.Statements[0].(*ast.LocalAssignmentStatement)
	assert.Equal(t, "live", local.Variables[0].Name)
}

func TestRemoveUnusedVariableRuleKeepsSideEffectingCall(t *testing.T) {
	rule, err := rules.DecodeRule("remove_unused_variable", rules.Default())
	require.NoError(t, err)

	call := &ast.CallExpression{
		Base:      &ast.IdentifierExpression{Name: "sideEffect"},
		Arguments: &ast.TupleArguments{},
	}
	block := ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "unused"}},
			Values:    []ast.Expression{call},
		},
	}, nil)

	diags, err := rule.Process(block, rules.NewContext("entry.lua", nil, nil, nil))
	require.NoError(t, err)
	require.Empty(t, diags)

	require.Len(t, block.Statements, 1)
	stmt, ok := block.Statements[0].(*ast.FunctionCallStatement)
	require.True(t, ok)
	assert.Same(t, call, stmt.Call)
}

func TestRemoveUnusedVariableRuleKeepsAllUsedLocals(t *testing.T) {
	rule, err := rules.DecodeRule("remove_unused_variable", rules.Default())
	require.NoError(t, err)

	block := ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "a"}},
			Values:    []ast.Expression{&ast.NumberExpression{Value: 1}},
		},
	}, &ast.ReturnStatement{Expressions: []ast.Expression{&ast.IdentifierExpression{Name: "a"}}})

	_, err = rule.Process(block, rules.NewContext("entry.lua", nil, nil, nil))
	require.NoError(t, err)
	require.Len(t, block.Statements, 1)
}
