package rename

import (
	"sort"

	"github.com/seaofvoices/darklua-go/util"
)

// nameSource hands out fresh identifiers, preferring a freed name over
// minting a new one from the permutator, per spec §4.7 ("on pop, every
// reusable entry returns its fresh name to a free-list ... freed names are
// re-emitted first"). The free-list is kept in the permutator's shortlex
// order so the shortest freed name always wins over a newly minted,
// possibly-longer one.
type nameSource struct {
	permutator *util.Permutator
	free       []string
}

func newNameSource(alphabet string, reserved map[string]bool) *nameSource {
	p := util.NewPermutator(alphabet)
	for name := range reserved {
		p.Reserve(name)
	}
	return &nameSource{permutator: p}
}

// next returns the next name to bind, taking from the free-list first.
func (s *nameSource) next() string {
	if len(s.free) > 0 {
		name := s.free[0]
		s.free = s.free[1:]
		return name
	}
	return s.permutator.Next()
}

// release returns names to the free-list, keeping it sorted shortlex (by
// length, then lexically) so the shortest freed name is always emitted
// next.
func (s *nameSource) release(names []string) {
	s.free = append(s.free, names...)
	sort.Slice(s.free, func(i, j int) bool {
		a, b := s.free[i], s.free[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
}
