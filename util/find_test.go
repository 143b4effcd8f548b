package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/util"
)

func TestFindReturnsFirstMatch(t *testing.T) {
	block := ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "a"}},
			Values:    []ast.Expression{&ast.IdentifierExpression{Name: "src"}},
		},
	}, nil)

	found := util.Find(block, func(n ast.Node) bool {
		id, ok := n.(*ast.IdentifierExpression)
		return ok && id.Name == "src"
	})

	assert.NotNil(t, found)
	assert.Equal(t, "src", found.(*ast.IdentifierExpression).Name)
}

func TestCountCountsAllMatches(t *testing.T) {
	block := ast.NewBlock([]ast.Statement{
		&ast.AssignmentStatement{
			Targets: []ast.Variable{&ast.IdentifierExpression{Name: "x"}},
			Values: []ast.Expression{
				&ast.BinaryExpression{
					Left:     &ast.IdentifierExpression{Name: "x"},
					Operator: ast.OpAdd,
					Right:    &ast.IdentifierExpression{Name: "x"},
				},
			},
		},
	}, nil)

	count := util.Count(block, func(n ast.Node) bool {
		_, ok := n.(*ast.IdentifierExpression)
		return ok
	})

	assert.Equal(t, 3, count)
}
