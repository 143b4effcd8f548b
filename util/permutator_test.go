package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seaofvoices/darklua-go/util"
)

func TestPermutatorShortlexOrder(t *testing.T) {
	p := util.NewPermutator("ab")
	names := make([]string, 6)
	for i := range names {
		names[i] = p.Next()
	}
	assert.Equal(t, []string{"a", "b", "aa", "ab", "ba", "bb"}, names)
}

func TestPermutatorReserveSkipsName(t *testing.T) {
	p := util.NewPermutator("ab")
	p.Reserve("a")

	assert.Equal(t, "b", p.Next())
	assert.Equal(t, "aa", p.Next())
}

func TestPermutatorDefaultAlphabetProducesDistinctNames(t *testing.T) {
	p := util.NewPermutator("")
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := p.Next()
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}
