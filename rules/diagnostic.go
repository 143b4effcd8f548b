package rules

import "fmt"

// Kind classifies a Diagnostic, matching the taxonomy spec §6/§7 name.
type Kind string

const (
	KindParser               Kind = "parser"
	KindRuleApplication      Kind = "rule_application"
	KindResourceNotFound     Kind = "resource_not_found"
	KindInvalidConfiguration Kind = "invalid_configuration"
)

// Diagnostic is one reported problem: its Kind, the originating file, the
// rule that raised it (empty for non-rule diagnostics), and a message.
type Diagnostic struct {
	Kind    Kind
	File    string
	Rule    string
	Message string
}

func (d Diagnostic) Error() string {
	if d.Rule != "" {
		return fmt.Sprintf("%s: %s (%s): %s", d.Kind, d.File, d.Rule, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Kind, d.File, d.Message)
}

// FromError turns a single error into a one-element Diagnostic slice, or nil
// if err is nil — spec §4.8's "a rule returning a single string is treated
// as a single diagnostic".
func FromError(kind Kind, file string, rule string, err error) []Diagnostic {
	if err == nil {
		return nil
	}
	return []Diagnostic{{Kind: kind, File: file, Rule: rule, Message: err.Error()}}
}
