package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaofvoices/darklua-go/rules"
)

func TestDecodeRuleBareStringUsesDefaults(t *testing.T) {
	rule, err := rules.DecodeRule("rename_variables", rules.Default())
	require.NoError(t, err)
	assert.Equal(t, "rename_variables", rule.Name())
	assert.Equal(t, map[string]any{"rule": "rename_variables"}, rule.Serialize())
}

func TestDecodeRuleObjectAppliesProperties(t *testing.T) {
	rule, err := rules.DecodeRule(map[string]any{
		"rule":     "bundle_require",
		"excludes": []any{"@vendor/*"},
	}, rules.Default())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"rule":     "bundle_require",
		"excludes": []any{"@vendor/*"},
	}, rule.Serialize())
}

func TestDecodeRuleUnknownRuleFails(t *testing.T) {
	_, err := rules.DecodeRule("not_a_real_rule", rules.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrUnknownRule)
}

func TestDecodeRuleUnknownPropertySuggestsClosestMatch(t *testing.T) {
	_, err := rules.DecodeRule(map[string]any{
		"rule":    "bundle_require",
		"exclude": []any{"@vendor/*"},
	}, rules.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "excludes"`)
}

func TestDecodeRuleMissingRulePropertyFails(t *testing.T) {
	_, err := rules.DecodeRule(map[string]any{"excludes": []any{}}, rules.Default())
	require.Error(t, err)
}
