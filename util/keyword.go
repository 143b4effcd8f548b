package util

// Keywords is the set of reserved words a generated identifier must never
// collide with — used by rename's permutator skip-list, grounded on
// core/invariant/invariant.go's discipline of naming unreachable-by-
// construction states explicitly rather than leaving them implicit.
var Keywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "goto": true,
	"if": true, "in": true, "local": true, "nil": true, "not": true,
	"or": true, "repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true,
	// Luau extensions.
	"continue": true, "export": true, "type": true,
}

// IsKeyword reports whether name is a reserved word.
func IsKeyword(name string) bool {
	return Keywords[name]
}
