package rules

import "github.com/pkg/errors"

// errInvalidType reports that config property key held a value of the wrong
// Go type after JSON decoding — shared by every rule's Configure.
func errInvalidType(key string, want string, got any) error {
	return errors.Errorf("%s must be %s, got %T", key, want, got)
}
