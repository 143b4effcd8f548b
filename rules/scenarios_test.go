package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaofvoices/darklua-go/generate"
	"github.com/seaofvoices/darklua-go/parser"
	"github.com/seaofvoices/darklua-go/rename"
	"github.com/seaofvoices/darklua-go/rules"
)

// These tests drive the spec.md §8 end-to-end scenarios through the real
// parser/generator pipeline (parser.Parse -> rule or renamer -> generate.Block)
// with literal source text, rather than hand-wired *ast.Block fixtures like
// the rule-specific _test.go files in this package use. Comparison is
// whitespace-insensitive, matching spec.md §8's own comparison convention.

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestScenarioRenameTrivialAlreadyMinimal(t *testing.T) {
	block, err := parser.Parse([]byte("local a = 1 return a"), "entry.lua")
	require.NoError(t, err)

	renamer := rename.New(rename.Config{})
	renamer.Rename(block)

	out := collapseSpace(generate.Block(block, generate.ModeDense))
	assert.Equal(t, "local a = 1 return a", out)
}

func TestScenarioRenameTrivialTwoLocals(t *testing.T) {
	block, err := parser.Parse([]byte("local foo = 1 local bar = foo + 1 return bar"), "entry.lua")
	require.NoError(t, err)

	renamer := rename.New(rename.Config{})
	renamer.Rename(block)

	out := collapseSpace(generate.Block(block, generate.ModeDense))
	assert.Equal(t, "local a = 1 local b = a + 1 return b", out)
}

func TestScenarioDeadLocalRemovalEmptiesBlock(t *testing.T) {
	block, err := parser.Parse([]byte("local a = true"), "entry.lua")
	require.NoError(t, err)

	rule, err := rules.DecodeRule("remove_unused_variable", rules.Default())
	require.NoError(t, err)
	diags, err := rule.Process(block, rules.NewContext("entry.lua", nil, nil, nil))
	require.NoError(t, err)
	require.Empty(t, diags)

	out := collapseSpace(generate.Block(block, generate.ModeDense))
	assert.Equal(t, "", out)
}

func TestScenarioDeadLocalRemovalKeepsLiveBinding(t *testing.T) {
	block, err := parser.Parse([]byte("local a, b = true, false return b"), "entry.lua")
	require.NoError(t, err)

	rule, err := rules.DecodeRule("remove_unused_variable", rules.Default())
	require.NoError(t, err)
	_, err = rule.Process(block, rules.NewContext("entry.lua", nil, nil, nil))
	require.NoError(t, err)

	out := collapseSpace(generate.Block(block, generate.ModeDense))
	assert.Equal(t, "local b = false return b", out)
}

func TestScenarioKeepsSideEffectingCallWhenRemoving(t *testing.T) {
	block, err := parser.Parse([]byte(`local a = print('x')`), "entry.lua")
	require.NoError(t, err)

	rule, err := rules.DecodeRule("remove_unused_variable", rules.Default())
	require.NoError(t, err)
	_, err = rule.Process(block, rules.NewContext("entry.lua", nil, nil, nil))
	require.NoError(t, err)

	out := collapseSpace(generate.Block(block, generate.ModeDense))
	assert.Equal(t, `print("x")`, out)
}

func TestScenarioPartialEvaluationOfDeadBranch(t *testing.T) {
	block, err := parser.Parse([]byte("if 1 == 1 then return 1 else return 2 end"), "entry.lua")
	require.NoError(t, err)

	rule, err := rules.DecodeRule("evaluate_constants", rules.Default())
	require.NoError(t, err)
	diags, err := rule.Process(block, rules.NewContext("entry.lua", nil, nil, nil))
	require.NoError(t, err)
	require.Empty(t, diags)

	out := collapseSpace(generate.Block(block, generate.ModeDense))
	assert.Equal(t, "return 1", out)
}
