package rename_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/rename"
)

func TestRenameTrivialSingleLocalIsAlreadyMinimal(t *testing.T) {
	block := ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "a"}},
			Values:    []ast.Expression{&ast.NumberExpression{Value: 1}},
		},
	}, &ast.ReturnStatement{Expressions: []ast.Expression{&ast.IdentifierExpression{Name: "a"}}})

	rename.New(rename.Config{}).Rename(block)

	local := block.Statements[0].(*ast.LocalAssignmentStatement)
	assert.Equal(t, "a", local.Variables[0].Name)
	ret := block.Last.(*ast.ReturnStatement)
	assert.Equal(t, "a", ret.Expressions[0].(*ast.IdentifierExpression).Name)
}

func TestRenameTwoLocalsAndReferences(t *testing.T) {
	block := ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "foo"}},
			Values:    []ast.Expression{&ast.NumberExpression{Value: 1}},
		},
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "bar"}},
			Values: []ast.Expression{&ast.BinaryExpression{
				Left:     &ast.IdentifierExpression{Name: "foo"},
				Operator: ast.OpAdd,
				Right:    &ast.NumberExpression{Value: 1},
			}},
		},
	}, &ast.ReturnStatement{Expressions: []ast.Expression{&ast.IdentifierExpression{Name: "bar"}}})

	rename.New(rename.Config{}).Rename(block)

	fooLocal := block.Statements[0].(*ast.LocalAssignmentStatement)
	barLocal := block.Statements[1].(*ast.LocalAssignmentStatement)
	assert.Equal(t, "a", fooLocal.Variables[0].Name)
	assert.Equal(t, "b", barLocal.Variables[0].Name)

	ref := barLocal.Values[0].(*ast.BinaryExpression).Left.(*ast.IdentifierExpression)
	assert.Equal(t, "a", ref.Name)

	ret := block.Last.(*ast.ReturnStatement)
	assert.Equal(t, "b", ret.Expressions[0].(*ast.IdentifierExpression).Name)
}

func TestRenamePreservesConfiguredGlobal(t *testing.T) {
	block := ast.NewBlock([]ast.Statement{
		&ast.AssignmentStatement{
			Targets: []ast.Variable{&ast.IdentifierExpression{Name: "game"}},
			Values:  []ast.Expression{&ast.NumberExpression{Value: 1}},
		},
	}, nil)

	rename.New(rename.Config{GlobalVariables: []string{"$roblox"}}).Rename(block)

	assign := block.Statements[0].(*ast.AssignmentStatement)
	assert.Equal(t, "game", assign.Targets[0].(*ast.IdentifierExpression).Name)
}

func TestRenamePreservesSelfInMethodBody(t *testing.T) {
	body := ast.NewBlock(nil, &ast.ReturnStatement{
		Expressions: []ast.Expression{&ast.IdentifierExpression{Name: "self"}},
	})
	fn := &ast.FunctionDeclarationStatement{
		Variant:    ast.FunctionMethod,
		Name:       &ast.IdentifierExpression{Name: "obj"},
		Parameters: nil,
		Body:       body,
	}
	block := ast.NewBlock([]ast.Statement{fn}, nil)

	rename.New(rename.Config{}).Rename(block)

	ret := body.Last.(*ast.ReturnStatement)
	assert.Equal(t, "self", ret.Expressions[0].(*ast.IdentifierExpression).Name)
}

func TestRenameFreeListReusesShortestFreedName(t *testing.T) {
	firstDo := &ast.DoStatement{Body: ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "x"}},
			Values:    []ast.Expression{&ast.NumberExpression{Value: 1}},
		},
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "y"}},
			Values:    []ast.Expression{&ast.NumberExpression{Value: 2}},
		},
	}, nil)}
	secondDo := &ast.DoStatement{Body: ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "z"}},
			Values:    []ast.Expression{&ast.NumberExpression{Value: 3}},
		},
	}, nil)}
	block := ast.NewBlock([]ast.Statement{firstDo, secondDo}, nil)

	rename.New(rename.Config{}).Rename(block)

	first := firstDo.Body.Statements
	assert.Equal(t, "a", first[0].(*ast.LocalAssignmentStatement).Variables[0].Name)
	assert.Equal(t, "b", first[1].(*ast.LocalAssignmentStatement).Variables[0].Name)

	second := secondDo.Body.Statements[0].(*ast.LocalAssignmentStatement)
	require.Equal(t, "a", second.Variables[0].Name, "freed name from the sibling scope should be reused before minting a new one")
}
