package rules

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrUnknownRule is returned when a configuration entry names a rule that
// isn't registered.
var ErrUnknownRule = errors.New("unknown rule")

// DecodeRule decodes one entry of a rule-configuration list (spec §6): raw
// is either the rule's bare name as a string (all defaults) or a
// {"rule": "<name>", <property>: <value>, ...} object. It looks name up in
// registry, validates the remaining properties against the rule's declared
// key set, and calls Configure.
func DecodeRule(raw any, registry *Registry) (Rule, error) {
	name, properties, err := splitConfig(raw)
	if err != nil {
		return nil, err
	}

	rule, ok := registry.New(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownRule, "%q (available: %s)", name, strings.Join(registry.Names(), ", "))
	}

	if err := validateKeys(name, rule, properties); err != nil {
		return nil, err
	}

	if err := rule.Configure(properties); err != nil {
		return nil, errors.Wrapf(err, "configuring rule %q", name)
	}

	return rule, nil
}

func splitConfig(raw any) (string, map[string]any, error) {
	switch v := raw.(type) {
	case string:
		return v, map[string]any{}, nil
	case map[string]any:
		name, ok := v["rule"].(string)
		if !ok || name == "" {
			return "", nil, errors.New(`rule configuration object is missing a "rule" property`)
		}
		properties := make(map[string]any, len(v)-1)
		for k, val := range v {
			if k == "rule" {
				continue
			}
			properties[k] = val
		}
		return name, properties, nil
	default:
		return "", nil, errors.Errorf("rule configuration must be a string or an object, got %T", raw)
	}
}

// validateKeys checks properties against rule's declared key set: an
// unknown property and a missing required property are both errors, per
// spec §6. An unknown property's message suggests the closest allowed name,
// found the same way runtime/planner/planner.go's findClosestMatch ranks a
// misspelled identifier against its candidate set.
func validateKeys(ruleName string, rule Rule, properties map[string]any) error {
	allowed := rule.ConfigKeys()
	allowedSet := make(map[string]bool, len(allowed))
	for _, k := range allowed {
		allowedSet[k] = true
	}

	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if allowedSet[k] {
			continue
		}
		if suggestion := closestMatch(k, allowed); suggestion != "" {
			return errors.Errorf("rule %q: unknown property %q, did you mean %q?", ruleName, k, suggestion)
		}
		return errors.Errorf("rule %q: unknown property %q", ruleName, k)
	}

	for _, required := range rule.RequiredConfigKeys() {
		if _, ok := properties[required]; !ok {
			return errors.Errorf("rule %q: missing required property %q (allowed: %s)", ruleName, required, strings.Join(allowed, ", "))
		}
	}

	return validateAgainstSchema(ruleName, allowed, rule.RequiredConfigKeys(), properties)
}

func closestMatch(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	return ranks[0].Target
}

// validateAgainstSchema re-checks properties through a compiled JSON Schema
// document (additionalProperties: false, the required list) as a structural
// backstop behind the hand-rolled checks above — grounded on
// core/types/validation.go's compile-and-validate-with-jsonschema/v5
// pipeline, simplified: every declared property accepts any JSON type,
// since Rule only declares names, not per-property types.
func validateAgainstSchema(ruleName string, allowed []string, required []string, properties map[string]any) error {
	props := make(map[string]any, len(allowed))
	for _, k := range allowed {
		props[k] = map[string]any{}
	}

	schema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	schemaBytes, err := json.Marshal(schema)
	if err != nil {
		return errors.Wrap(err, "marshalling rule schema")
	}

	url := "schema://" + ruleName + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, strings.NewReader(string(schemaBytes))); err != nil {
		return errors.Wrap(err, "compiling rule schema")
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return errors.Wrap(err, "compiling rule schema")
	}

	if err := compiled.Validate(properties); err != nil {
		return errors.Wrapf(err, "rule %q configuration", ruleName)
	}
	return nil
}
