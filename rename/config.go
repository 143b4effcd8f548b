// Package rename implements the identifier-renaming engine spec §4.7
// describes: walk the AST with a scope-aware visitor, give every locally
// bound name a short fresh replacement, and leave globals and preserved
// identifiers untouched.
package rename

import "github.com/seaofvoices/darklua-go/util"

// Config configures a Renamer.
type Config struct {
	// GlobalVariables lists identifiers that must never be renamed, even
	// where a local declaration would otherwise shadow the name. Entries
	// "$default" and "$roblox" expand to the language/engine standard
	// globals below and union with the rest of the list in order, per the
	// documented Open Question decision in DESIGN.md.
	GlobalVariables []string

	// Alphabet is the permutator's candidate alphabet. Defaults to
	// util.DefaultAlphabet.
	Alphabet string
}

// expandGlobals resolves "$default"/"$roblox" shorthands in order,
// returning the flattened, deduplicated set of names that must never be
// renamed.
func expandGlobals(names []string) map[string]bool {
	out := make(map[string]bool)
	for _, name := range names {
		switch name {
		case "$default":
			for _, g := range defaultGlobals {
				out[g] = true
			}
		case "$roblox":
			for _, g := range robloxGlobals {
				out[g] = true
			}
		default:
			out[name] = true
		}
	}
	for kw := range util.Keywords {
		out[kw] = true
	}
	return out
}

// defaultGlobals are the language's own standard-library globals.
var defaultGlobals = []string{
	"_G", "_VERSION", "assert", "collectgarbage", "error", "getmetatable",
	"ipairs", "load", "loadstring", "next", "pairs", "pcall", "print",
	"rawequal", "rawget", "rawlen", "rawset", "require", "select",
	"setmetatable", "tonumber", "tostring", "type", "unpack", "xpcall",
	"bit32", "coroutine", "debug", "io", "math", "os", "string", "table",
	"utf8",
}

// robloxGlobals are Roblox-engine-provided globals.
var robloxGlobals = []string{
	"game", "workspace", "script", "plugin", "shared", "Enum",
	"Instance", "Vector2", "Vector3", "CFrame", "Color3", "UDim", "UDim2",
	"Ray", "Region3", "BrickColor", "TweenInfo", "ColorSequence",
	"NumberSequence", "NumberRange", "PhysicalProperties", "Random",
	"DateTime", "task", "wait", "spawn", "delay", "tick", "warn",
	"settings", "UserSettings", "elapsedTime",
}
