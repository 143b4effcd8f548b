package bundle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/bundle"
	"github.com/seaofvoices/darklua-go/generate"
	"github.com/seaofvoices/darklua-go/parser"
	"github.com/seaofvoices/darklua-go/resolve"
	"github.com/seaofvoices/darklua-go/resource"
)

func requireCallExpr(path string) ast.Expression {
	return &ast.CallExpression{
		Base:      &ast.IdentifierExpression{Name: "require"},
		Arguments: &ast.StringArguments{Value: &ast.StringExpression{Value: []byte(path)}},
	}
}

func localRequire(variable string, path string) *ast.LocalAssignmentStatement {
	return &ast.LocalAssignmentStatement{
		Variables: []ast.TypedIdentifier{{Name: variable}},
		Values:    []ast.Expression{requireCallExpr(path)},
	}
}

func fieldExprOf(expr ast.Expression) *ast.FieldExpression {
	field, _ := expr.(*ast.FieldExpression)
	return field
}

func TestAssembleInlinesEachModuleExactlyOnce(t *testing.T) {
	layer := resource.NewMemory()
	layer.Set("a.lua", []byte("return 42"))
	resolver := resolve.New(resolve.Config{}, layer)

	parsed := map[string]*ast.Block{
		"a.lua": ast.NewBlock(nil, &ast.ReturnStatement{
			Expressions: []ast.Expression{&ast.NumberExpression{Value: 42}},
		}),
	}

	assembler := &bundle.Assembler{
		Resolver: resolver,
		Layer:    layer,
		Parse: func(source []byte, path string) (*ast.Block, error) {
			return parsed[path], nil
		},
	}

	root := ast.NewBlock([]ast.Statement{
		localRequire("a1", "./a"),
		localRequire("a2", "./a"),
	}, nil)

	out, err := assembler.Assemble(root, "entry.lua")
	require.NoError(t, err)

	// M local, one do...end wrapper, two original statements.
	require.Len(t, out.Statements, 4)

	tableLocal, ok := out.Statements[0].(*ast.LocalAssignmentStatement)
	require.True(t, ok)
	assert.Equal(t, "M", tableLocal.Variables[0].Name)

	_, ok = out.Statements[1].(*ast.DoStatement)
	require.True(t, ok, "expected a single do...end wrapper for the one distinct module")

	stmt1 := out.Statements[2].(*ast.LocalAssignmentStatement)
	stmt2 := out.Statements[3].(*ast.LocalAssignmentStatement)
	field1 := fieldExprOf(stmt1.Values[0])
	field2 := fieldExprOf(stmt2.Values[0])
	require.NotNil(t, field1)
	require.NotNil(t, field2)
	assert.Equal(t, field1.Name, field2.Name, "both require call sites should resolve to the same field name")
}

func TestAssembleDetectsCycle(t *testing.T) {
	layer := resource.NewMemory()
	layer.Set("b.lua", []byte("require b"))
	layer.Set("c.lua", []byte("require c"))
	resolver := resolve.New(resolve.Config{}, layer)

	parsed := map[string]*ast.Block{
		"b.lua": ast.NewBlock([]ast.Statement{
			&ast.FunctionCallStatement{Call: requireCallExpr("./c")},
		}, nil),
		"c.lua": ast.NewBlock([]ast.Statement{
			&ast.FunctionCallStatement{Call: requireCallExpr("./b")},
		}, nil),
	}

	assembler := &bundle.Assembler{
		Resolver: resolver,
		Layer:    layer,
		Parse: func(source []byte, path string) (*ast.Block, error) {
			return parsed[path], nil
		},
	}

	root := ast.NewBlock([]ast.Statement{
		&ast.FunctionCallStatement{Call: requireCallExpr("./b")},
	}, nil)

	_, err := assembler.Assemble(root, "entry.lua")
	require.Error(t, err)
	assert.ErrorIs(t, err, bundle.ErrCycle)
}

func TestAssembleTranscodesDataFile(t *testing.T) {
	layer := resource.NewMemory()
	layer.Set("data.json", []byte(`{"x": 1}`))
	resolver := resolve.New(resolve.Config{}, layer)

	assembler := &bundle.Assembler{
		Resolver: resolver,
		Layer:    layer,
		Parse: func(source []byte, path string) (*ast.Block, error) {
			t.Fatalf("Parse should not be called for a data file, got %q", path)
			return nil, nil
		},
	}

	root := ast.NewBlock([]ast.Statement{
		localRequire("cfg", "./data.json"),
	}, nil)

	out, err := assembler.Assemble(root, "entry.lua")
	require.NoError(t, err)
	require.Len(t, out.Statements, 3)

	wrapper, ok := out.Statements[1].(*ast.DoStatement)
	require.True(t, ok)
	require.Len(t, wrapper.Body.Statements, 1)

	assign, ok := wrapper.Body.Statements[0].(*ast.AssignmentStatement)
	require.True(t, ok)

	table, ok := assign.Values[0].(*ast.TableConstructorExpression)
	require.True(t, ok)
	require.Len(t, table.Entries, 1)
	assert.Equal(t, "x", table.Entries[0].Name)
	number, ok := table.Entries[0].Value.(*ast.NumberExpression)
	require.True(t, ok)
	assert.Equal(t, float64(1), number.Value)
}

// TestAssembleFromRealSourceTextInlinesOnce wires parser.Parse as the
// assembler's ParseFunc and drives it from literal source text end to end,
// which the table-lookup fixtures above deliberately do not exercise: this
// is the only test in the package that proves the ParseFunc hook works
// against an actual lexer/parser rather than a map keyed by path.
func TestAssembleFromRealSourceTextInlinesOnce(t *testing.T) {
	layer := resource.NewMemory()
	layer.Set("a.lua", []byte("return 42"))
	resolver := resolve.New(resolve.Config{}, layer)

	assembler := &bundle.Assembler{
		Resolver: resolver,
		Layer:    layer,
		Parse:    parser.Parse,
	}

	root, err := parser.Parse([]byte(`local a1 = require("./a")
local a2 = require("./a")
return a1, a2`), "entry.lua")
	require.NoError(t, err)

	out, err := assembler.Assemble(root, "entry.lua")
	require.NoError(t, err)

	text := generate.Block(out, generate.ModeDense)
	assert.Equal(t, 1, strings.Count(text, "do"), "exactly one module body should be inlined regardless of require call-site count")
	assert.True(t, strings.Contains(text, "local M = {}"))
}

func TestAssembleLeavesExcludedRequireUnchanged(t *testing.T) {
	layer := resource.NewMemory()
	resolver := resolve.New(resolve.Config{}, layer)

	assembler := &bundle.Assembler{
		Resolver: resolver,
		Layer:    layer,
		Exclude:  []string{"@excluded/*"},
		Parse: func(source []byte, path string) (*ast.Block, error) {
			t.Fatalf("Parse should not be called for an excluded require, got %q", path)
			return nil, nil
		},
	}

	root := ast.NewBlock([]ast.Statement{
		localRequire("external", "@excluded/lib"),
	}, nil)

	out, err := assembler.Assemble(root, "entry.lua")
	require.NoError(t, err)
	// No module was inlined, so the block is returned unchanged.
	assert.Same(t, root, out)

	stmt := out.Statements[0].(*ast.LocalAssignmentStatement)
	call, ok := stmt.Values[0].(*ast.CallExpression)
	require.True(t, ok, "excluded require call should be left untouched")
	id := call.Base.(*ast.IdentifierExpression)
	assert.Equal(t, "require", id.Name)
}
