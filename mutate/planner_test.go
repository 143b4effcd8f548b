package mutate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/mutate"
)

func numberLocal(name string, value float64) *ast.LocalAssignmentStatement {
	return &ast.LocalAssignmentStatement{
		Variables: []ast.TypedIdentifier{{Name: name}},
		Values:    []ast.Expression{&ast.NumberExpression{Value: value}},
	}
}

func names(statements []ast.Statement) []string {
	out := make([]string, len(statements))
	for i, stmt := range statements {
		out[i] = stmt.(*ast.LocalAssignmentStatement).Variables[0].Name
	}
	return out
}

func TestPlannerRemoveDropsOneStatement(t *testing.T) {
	block := ast.NewBlock([]ast.Statement{
		numberLocal("a", 1), numberLocal("b", 2), numberLocal("c", 3),
	}, nil)

	p := mutate.New()
	p.Remove(1)
	require.NoError(t, p.Commit(block))

	assert.Equal(t, []string{"a", "c"}, names(block.Statements))
}

func TestPlannerReplaceSwapsOneStatementForMany(t *testing.T) {
	block := ast.NewBlock([]ast.Statement{numberLocal("a", 1), numberLocal("b", 2)}, nil)

	p := mutate.New()
	p.Replace(0, numberLocal("x", 1), numberLocal("y", 1))
	require.NoError(t, p.Commit(block))

	assert.Equal(t, []string{"x", "y", "b"}, names(block.Statements))
}

func TestPlannerInsertBeforeAndAfter(t *testing.T) {
	block := ast.NewBlock([]ast.Statement{numberLocal("a", 1), numberLocal("b", 2)}, nil)

	p := mutate.New()
	p.InsertBefore(0, numberLocal("pre", 0))
	p.InsertAfter(1, numberLocal("post", 0))
	require.NoError(t, p.Commit(block))

	assert.Equal(t, []string{"pre", "a", "b", "post"}, names(block.Statements))
}

func TestPlannerDisjointMutationsCommuteRegardlessOfEnqueueOrder(t *testing.T) {
	build := func(removeFirst bool) *ast.Block {
		block := ast.NewBlock([]ast.Statement{
			numberLocal("a", 1), numberLocal("b", 2), numberLocal("c", 3), numberLocal("d", 4),
		}, nil)
		p := mutate.New()
		if removeFirst {
			p.Remove(0)
			p.Remove(3)
		} else {
			p.Remove(3)
			p.Remove(0)
		}
		require.NoError(t, p.Commit(block))
		return block
	}

	first := build(true)
	second := build(false)
	assert.Equal(t, names(first.Statements), names(second.Statements))
	assert.Equal(t, []string{"b", "c"}, names(first.Statements))
}

func TestPlannerEarlierRemovalShiftsLaterTarget(t *testing.T) {
	block := ast.NewBlock([]ast.Statement{
		numberLocal("a", 1), numberLocal("b", 2), numberLocal("c", 3),
	}, nil)

	p := mutate.New()
	p.Remove(0) // removes "a"
	p.Remove(2) // enqueued against "c"'s original index
	require.NoError(t, p.Commit(block))

	assert.Equal(t, []string{"b"}, names(block.Statements))
}

func TestPlannerRemovalCancelsMutationInsideItsSpan(t *testing.T) {
	block := ast.NewBlock([]ast.Statement{
		numberLocal("a", 1), numberLocal("b", 2), numberLocal("c", 3),
	}, nil)

	p := mutate.New()
	p.RemoveSpan(0, 3)
	replaced := p.Replace(1, numberLocal("x", 0))
	require.NoError(t, p.Commit(block))

	assert.True(t, replaced.Canceled())
	assert.Empty(t, block.Statements)
}

func TestPlannerRejectsOutOfBoundsSpan(t *testing.T) {
	block := ast.NewBlock([]ast.Statement{numberLocal("a", 1)}, nil)

	p := mutate.New()
	p.Remove(5)
	assert.Error(t, p.Commit(block))
}
