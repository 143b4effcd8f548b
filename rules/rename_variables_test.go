package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/rules"
)

func TestRenameVariablesRuleRenamesLocals(t *testing.T) {
	rule, err := rules.DecodeRule("rename_variables", rules.Default())
	require.NoError(t, err)

	block := ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "foo"}},
			Values:    []ast.Expression{&ast.NumberExpression{Value: 1}},
		},
	}, &ast.ReturnStatement{Expressions: []ast.Expression{&ast.IdentifierExpression{Name: "foo"}}})

	ctx := rules.NewContext("entry.lua", nil, nil, nil)
	diags, err := rule.Process(block, ctx)
	require.NoError(t, err)
	require.Empty(t, diags)

	local := block.Statements[0].(*ast.LocalAssignmentStatement)
	assert.Equal(t, "a", local.Variables[0].Name)
	ret := block.Last.(*ast.ReturnStatement)
	assert.Equal(t, "a", ret.Expressions[0].(*ast.IdentifierExpression).Name)
	assert.False(t, rule.RequiresTokenRepair())
}

func TestRenameVariablesRulePreservesConfiguredGlobals(t *testing.T) {
	rule, err := rules.DecodeRule(map[string]any{
		"rule":    "rename_variables",
		"globals": []any{"game"},
	}, rules.Default())
	require.NoError(t, err)

	block := ast.NewBlock([]ast.Statement{
		&ast.AssignmentStatement{
			Targets: []ast.Variable{&ast.IdentifierExpression{Name: "game"}},
			Values:  []ast.Expression{&ast.NumberExpression{Value: 1}},
		},
	}, nil)

	_, err = rule.Process(block, rules.NewContext("entry.lua", nil, nil, nil))
	require.NoError(t, err)

	assign := block.Statements[0].(*ast.AssignmentStatement)
	assert.Equal(t, "game", assign.Targets[0].(*ast.IdentifierExpression).Name)
}
