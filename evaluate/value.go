// Package evaluate implements the symbolic interpreter spec §4.4 describes:
// a small lattice of abstract values an expression can fold to, used by
// rules to decide branch viability and side-effect safety without running
// the program.
package evaluate

// Kind tags the concrete shape an AbstractValue holds.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNil
	KindTrue
	KindFalse
	KindNumber
	KindString
	KindTable
	KindFunction
	KindTuple
)

// AbstractValue is a lattice value with Unknown sitting above every concrete
// value: Unknown == anything is Unknown, map_if_truthy(Unknown) is Unknown,
// and so on. Table and Function carry an opaque identity rather than any
// structural content — the evaluator never models table contents or
// function bodies, only whether a reference exists and whether two
// references are the same one.
type AbstractValue struct {
	kind   Kind
	number float64
	str    []byte
	ref    any // Table/Function identity: the AST node (or other stable handle) it was created from
	tuple  []AbstractValue
}

// Unknown is the top of the lattice.
var Unknown = AbstractValue{kind: KindUnknown}

// Nil is the `nil` literal value.
var Nil = AbstractValue{kind: KindNil}

// True is the `true` literal value.
var True = AbstractValue{kind: KindTrue}

// False is the `false` literal value.
var False = AbstractValue{kind: KindFalse}

// Number wraps a concrete numeric value.
func Number(v float64) AbstractValue { return AbstractValue{kind: KindNumber, number: v} }

// String wraps a concrete byte-string value.
func String(v []byte) AbstractValue {
	cp := make([]byte, len(v))
	copy(cp, v)
	return AbstractValue{kind: KindString, str: cp}
}

// StringFrom is a convenience wrapper over a Go string.
func StringFrom(v string) AbstractValue { return String([]byte(v)) }

// Table returns an opaque table reference identified by handle. Two Table
// values are equal only when they share the same handle — the evaluator
// never attempts to compare table contents. The evaluator uses the
// originating *ast.TableConstructorExpression as the handle, so re-reading
// the same binding twice yields the same identity while two distinct
// literals never collide.
func Table(handle any) AbstractValue { return AbstractValue{kind: KindTable, ref: handle} }

// Function returns an opaque function reference identified by handle, the
// same way Table does for *ast.FunctionExpression.
func Function(handle any) AbstractValue { return AbstractValue{kind: KindFunction, ref: handle} }

// Tuple wraps an n-ary sequence of values produced at a multi-return site.
func Tuple(values []AbstractValue) AbstractValue {
	cp := make([]AbstractValue, len(values))
	copy(cp, values)
	return AbstractValue{kind: KindTuple, tuple: cp}
}

// Bool wraps a Go bool as True/False.
func Bool(v bool) AbstractValue {
	if v {
		return True
	}
	return False
}

func (v AbstractValue) Kind() Kind { return v.kind }

// Float64 returns the wrapped number and whether v is a Number.
func (v AbstractValue) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.number, true
}

// Bytes returns the wrapped string and whether v is a String.
func (v AbstractValue) Bytes() ([]byte, bool) {
	if v.kind != KindString {
		return nil, false
	}
	return v.str, true
}

// Values returns the wrapped sequence and whether v is a Tuple.
func (v AbstractValue) Values() ([]AbstractValue, bool) {
	if v.kind != KindTuple {
		return nil, false
	}
	return v.tuple, true
}

// IsTruthy reports whether v is known to be truthy (anything but Nil and
// False), known to be falsy, or unknown — mirroring
// map_if_truthy(Unknown) = Unknown from spec §3.
func (v AbstractValue) IsTruthy() (truthy bool, known bool) {
	switch v.kind {
	case KindUnknown:
		return false, false
	case KindNil, KindFalse:
		return false, true
	default:
		return true, true
	}
}

// mapIfTruthy applies fn to v when v is known truthy, returns v unchanged
// when known falsy, and returns Unknown otherwise.
func mapIfTruthy(v AbstractValue, fn func(AbstractValue) AbstractValue) AbstractValue {
	truthy, known := v.IsTruthy()
	if !known {
		return Unknown
	}
	if truthy {
		return fn(v)
	}
	return v
}

// mapIfTruthyElse is mapIfTruthy but with an explicit fallback instead of
// passing v through unchanged on the falsy branch — used by `or`, where the
// right side replaces a falsy left rather than being returned as-is.
func mapIfTruthyElse(v AbstractValue, onTruthy func(AbstractValue) AbstractValue, onFalsy func() AbstractValue) AbstractValue {
	truthy, known := v.IsTruthy()
	if !known {
		return Unknown
	}
	if truthy {
		return onTruthy(v)
	}
	return onFalsy()
}

// Equals implements the lattice's equality: Unknown compared with anything
// is Unknown; numbers compare numerically, strings byte-for-byte; tuples
// compare by their first value (per the Open Question decision recorded in
// DESIGN.md — a multi-return site used in a boolean context only ever
// observes its first result); table/function references compare by
// identity; everything else of differing kind is False.
func Equals(a, b AbstractValue) AbstractValue {
	if a.kind == KindUnknown || b.kind == KindUnknown {
		return Unknown
	}
	if a.kind == KindTuple {
		a = firstOrNil(a)
	}
	if b.kind == KindTuple {
		b = firstOrNil(b)
	}
	if a.kind == KindUnknown || b.kind == KindUnknown {
		return Unknown
	}
	switch {
	case a.kind == KindTrue && b.kind == KindTrue,
		a.kind == KindFalse && b.kind == KindFalse,
		a.kind == KindNil && b.kind == KindNil:
		return True
	case a.kind == KindNumber && b.kind == KindNumber:
		return Bool(a.number == b.number)
	case a.kind == KindString && b.kind == KindString:
		return Bool(string(a.str) == string(b.str))
	case a.kind == KindTable && b.kind == KindTable,
		a.kind == KindFunction && b.kind == KindFunction:
		return Bool(a.kind == b.kind && a.ref == b.ref)
	default:
		return False
	}
}

func firstOrNil(v AbstractValue) AbstractValue {
	if len(v.tuple) == 0 {
		return Nil
	}
	return v.tuple[0]
}

// isMaybeTable reports whether v could be a table at runtime — concrete
// Table values and Unknown both count, since an Unknown operand might turn
// out to carry a metatable whose metamethods have side effects.
func isMaybeTable(v AbstractValue) bool {
	return v.kind == KindTable || v.kind == KindUnknown
}
