package visitor_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/visitor"
)

// recorder implements visitor.ScopeProcessor, logging each call so tests can
// assert on ordering.
type recorder struct {
	visitor.BaseProcessor
	events []string
}

func (r *recorder) Enter(node ast.Node) { r.events = append(r.events, fmt.Sprintf("enter:%T", node)) }
func (r *recorder) Leave(node ast.Node) { r.events = append(r.events, fmt.Sprintf("leave:%T", node)) }
func (r *recorder) Push()               { r.events = append(r.events, "push") }
func (r *recorder) Pop()                { r.events = append(r.events, "pop") }
func (r *recorder) InsertLocal(name string, hasInit bool) string {
	r.events = append(r.events, fmt.Sprintf("insert_local:%s:%v", name, hasInit))
	return name
}
func (r *recorder) Insert(name string) string {
	r.events = append(r.events, fmt.Sprintf("insert:%s", name))
	return name
}
func (r *recorder) InsertSelf()              { r.events = append(r.events, "insert_self") }
func (r *recorder) Resolve(name string) string { return name }

func numberLiteral(v float64) *ast.NumberExpression {
	return &ast.NumberExpression{Value: v, Raw: fmt.Sprintf("%v", v)}
}

func TestScopeVisitorLocalAssignmentInsertsAfterInitializer(t *testing.T) {
	block := ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "x"}},
			Values:    []ast.Expression{numberLiteral(1)},
		},
	}, nil)

	rec := &recorder{}
	visitor.NewScopeVisitor(rec).Walk(block)

	initIdx := indexOf(rec.events, "enter:*ast.NumberExpression")
	insertIdx := indexOf(rec.events, "insert_local:x:true")
	require.GreaterOrEqual(t, initIdx, 0)
	require.GreaterOrEqual(t, insertIdx, 0)
	assert.Less(t, initIdx, insertIdx, "initializer must be visited before the binding is inserted")
}

func TestScopeVisitorFunctionBodyPushesPopsAndBindsParameters(t *testing.T) {
	body := ast.NewBlock(nil, &ast.ReturnStatement{Expressions: []ast.Expression{
		&ast.IdentifierExpression{Name: "a"},
	}})
	fn := &ast.FunctionDeclarationStatement{
		Variant:    ast.FunctionMethod,
		Name:       &ast.IdentifierExpression{Name: "obj"},
		Parameters: []ast.TypedIdentifier{{Name: "a"}},
		Body:       body,
	}
	block := ast.NewBlock([]ast.Statement{fn}, nil)

	rec := &recorder{}
	visitor.NewScopeVisitor(rec).Walk(block)

	pushIdx := indexOf(rec.events, "push")
	selfIdx := indexOf(rec.events, "insert_self")
	insertAIdx := indexOf(rec.events, "insert:a")
	popIdx := lastIndexOf(rec.events, "pop")

	require.GreaterOrEqual(t, pushIdx, 0)
	require.GreaterOrEqual(t, selfIdx, 0)
	require.GreaterOrEqual(t, insertAIdx, 0)
	require.GreaterOrEqual(t, popIdx, 0)
	assert.Less(t, pushIdx, selfIdx)
	assert.Less(t, selfIdx, insertAIdx)
	assert.Less(t, insertAIdx, popIdx)
}

func TestScopeVisitorRepeatConditionSharesLoopScope(t *testing.T) {
	body := ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "done"}},
			Values:    []ast.Expression{&ast.TrueExpression{}},
		},
	}, nil)
	stmt := &ast.RepeatStatement{
		Body:      body,
		Condition: &ast.IdentifierExpression{Name: "done"},
	}
	block := ast.NewBlock([]ast.Statement{stmt}, nil)

	rec := &recorder{}
	visitor.NewScopeVisitor(rec).Walk(block)

	pushIdx := indexOf(rec.events, "push")
	conditionIdx := indexOf(rec.events, "enter:*ast.IdentifierExpression")
	popIdx := indexOf(rec.events, "pop")

	require.GreaterOrEqual(t, pushIdx, 0)
	require.GreaterOrEqual(t, conditionIdx, 0)
	require.GreaterOrEqual(t, popIdx, 0)
	assert.Less(t, pushIdx, conditionIdx, "condition must be evaluated inside the loop scope")
	assert.Less(t, conditionIdx, popIdx, "scope must still be open while the condition is checked")
}

func TestVisitorPlainSkipsScopeHooks(t *testing.T) {
	block := ast.NewBlock([]ast.Statement{
		&ast.LocalAssignmentStatement{
			Variables: []ast.TypedIdentifier{{Name: "x"}},
			Values:    []ast.Expression{numberLiteral(1)},
		},
	}, nil)

	rec := &recorder{}
	visitor.New(rec).Walk(block)

	for _, e := range rec.events {
		assert.NotContains(t, e, "insert")
		assert.NotEqual(t, "push", e)
		assert.NotEqual(t, "pop", e)
	}
	assert.Contains(t, rec.events, "enter:*ast.LocalAssignmentStatement")
}

func indexOf(events []string, target string) int {
	for i, e := range events {
		if e == target {
			return i
		}
	}
	return -1
}

func lastIndexOf(events []string, target string) int {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i] == target {
			return i
		}
	}
	return -1
}
