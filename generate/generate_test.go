package generate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaofvoices/darklua-go/generate"
	"github.com/seaofvoices/darklua-go/parser"
)

func TestBlockRendersLocalAssignmentAndReturn(t *testing.T) {
	block, err := parser.Parse([]byte("local a = 1 return a"), "test.lua")
	require.NoError(t, err)

	out := generate.Block(block, generate.ModeDense)

	assert.Equal(t, "local a = 1\nreturn a\n", out)
}

func TestBlockRendersIfElseif(t *testing.T) {
	source := `if a then
	return 1
elseif b then
	return 2
else
	return 3
end`
	block, err := parser.Parse([]byte(source), "test.lua")
	require.NoError(t, err)

	out := generate.Block(block, generate.ModeDense)

	assert.True(t, strings.Contains(out, "if a then"))
	assert.True(t, strings.Contains(out, "elseif b then"))
	assert.True(t, strings.Contains(out, "else"))
}

func TestBlockRendersFunctionDeclaration(t *testing.T) {
	block, err := parser.Parse([]byte("function M.add(a, b) return a + b end"), "test.lua")
	require.NoError(t, err)

	out := generate.Block(block, generate.ModeDense)

	assert.Equal(t, "function M.add(a, b)\n    return a + b\nend\n", out)
}

func TestBlockRendersNumericAndGenericFor(t *testing.T) {
	source := `for i = 1, 10 do
	print(i)
end
for k, v in pairs(t) do
	print(k, v)
end`
	block, err := parser.Parse([]byte(source), "test.lua")
	require.NoError(t, err)

	out := generate.Block(block, generate.ModeDense)

	assert.True(t, strings.Contains(out, "for i = 1, 10 do"))
	assert.True(t, strings.Contains(out, "for k, v in pairs(t) do"))
}

func TestBlockRendersTableConstructorAndMethodCall(t *testing.T) {
	block, err := parser.Parse([]byte(`local t = { a = 1, [2] = "x", 3 }
t:insert(4)`), "test.lua")
	require.NoError(t, err)

	out := generate.Block(block, generate.ModeDense)

	assert.True(t, strings.Contains(out, "a = 1"))
	assert.True(t, strings.Contains(out, `[2] = "x"`))
	assert.True(t, strings.Contains(out, "t:insert(4)"))
}
