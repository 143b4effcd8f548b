package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seaofvoices/darklua-go/rules"
)

func TestDefaultRegistryHasBuiltinRules(t *testing.T) {
	reg := rules.Default()
	assert.Equal(t, []string{
		"bundle_require",
		"evaluate_constants",
		"remove_unused_variable",
		"rename_variables",
	}, reg.Names())
}

func TestRegistryNewReturnsDistinctInstances(t *testing.T) {
	reg := rules.Default()
	a, ok := reg.New("rename_variables")
	assert.True(t, ok)
	b, ok := reg.New("rename_variables")
	assert.True(t, ok)
	assert.NotSame(t, a, b)
}

func TestRegistryNewUnknownNameFails(t *testing.T) {
	reg := rules.Default()
	_, ok := reg.New("does_not_exist")
	assert.False(t, ok)
}
