package util

// Permutator generates short, collision-free identifiers in shortlex order
// (all length-1 names, then all length-2, ...) over a fixed alphabet — the
// unique-name generator the module assembler and the rename engine both
// need, generalized out of core/planfmt's deterministic-short-ID-generation
// discipline into a reusable bijective-base-N counter.
type Permutator struct {
	alphabet []rune
	reserved map[string]bool
	next     int
}

// DefaultAlphabet is the identifier-start-safe lowercase alphabet used when
// no alphabet is supplied.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// NewPermutator returns a Permutator over alphabet, which must be
// non-empty. An empty alphabet falls back to DefaultAlphabet.
func NewPermutator(alphabet string) *Permutator {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	return &Permutator{alphabet: []rune(alphabet), reserved: make(map[string]bool)}
}

// Reserve marks name as already taken, so Next skips over it — used to keep
// the generator from handing out a name that collides with a preserved
// global or an existing identifier in scope.
func (p *Permutator) Reserve(name string) {
	p.reserved[name] = true
}

// Next returns the next name in shortlex order that hasn't been reserved.
func (p *Permutator) Next() string {
	for {
		name := nthName(p.next, p.alphabet)
		p.next++
		if !p.reserved[name] {
			return name
		}
	}
}

// nthName returns the (zero-indexed) n'th shortlex name over alphabet using
// a bijective base-len(alphabet) numeral system: n=0 -> alphabet[0], n=1 ->
// alphabet[1], ..., n=len(alphabet) -> alphabet[0]+alphabet[0] (two-letter
// names begin once every one-letter name is exhausted, unlike ordinary
// positional numbering where a leading-zero digit would repeat names).
func nthName(n int, alphabet []rune) string {
	base := len(alphabet)
	n++ // shift to 1-indexed bijective numeration
	var out []rune
	for n > 0 {
		n--
		out = append([]rune{alphabet[n%base]}, out...)
		n /= base
	}
	return string(out)
}
