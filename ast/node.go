// Package ast implements the closed set of tagged node variants that make up
// a parsed program, together with the reflection-based utilities (trivia
// sweeps, token stripping, cloning, structural equality) that every variant
// shares without needing to reimplement them one by one.
package ast

import "reflect"

// Node is implemented by every concrete AST node. isNode is unexported so
// only types declared in this package can satisfy it: the AST is a closed
// set by construction, the same guarantee the source gets from an exhaustive
// tagged union.
type Node interface {
	isNode()
}

// nodeBase is embedded by every concrete node to pick up isNode() without
// repeating an empty method on forty structs.
type nodeBase struct{}

func (nodeBase) isNode() {}

// Statement is any node that can appear in a Block's statement list.
type Statement interface {
	Node
	isStatement()
}

// LastStatement is any node that can terminate a Block: return, break or
// continue. Per spec it is always terminal — no statement may follow it in
// the same block, an invariant Block enforces at construction (see block.go).
type LastStatement interface {
	Node
	isLastStatement()
}

// Expression is any node that evaluates to a value.
type Expression interface {
	Node
	isExpression()
}

// Prefix is the left-hand head of a prefix chain that further field, index,
// call or method-call suffixes can be attached to.
type Prefix interface {
	Node
	isPrefix()
}

// Arguments is the argument list of a function call: a parenthesized tuple,
// a single string literal, or a single table constructor.
type Arguments interface {
	Node
	isArguments()
}

// Type is any node appearing in type-annotation position.
type Type interface {
	Node
	isType()
}

// Variable is the left-hand side of an assignment.
type Variable interface {
	Node
	isVariable()
}

// tokenFieldName is the struct field name every node with a token sidecar
// uses for it. Standardizing the name lets ClearComments, ClearWhitespace,
// StripTokens and Clone handle every node generically instead of each
// variant hand-rolling the same four methods.
const tokenFieldName = "Tok"

// clearer is implemented by the token-bag types in this package (see
// tokens.go); ClearComments/ClearWhitespace dispatch to it once they find a
// field named Tok.
type clearer interface {
	ClearComments()
	ClearWhitespace()
}

// ClearComments recurses into node and every descendant, removing comment
// trivia from any token bag it finds, mirroring spec §4.2's trivia-sweep
// contract.
func ClearComments(node Node) {
	sweep(reflect.ValueOf(node), func(c clearer) { c.ClearComments() })
}

// ClearWhitespace recurses into node and every descendant, removing
// whitespace trivia from any token bag it finds.
func ClearWhitespace(node Node) {
	sweep(reflect.ValueOf(node), func(c clearer) { c.ClearWhitespace() })
}

func sweep(v reflect.Value, apply func(clearer)) {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return
		}
		if c, ok := v.Interface().(clearer); ok {
			apply(c)
		}
		sweep(v.Elem(), apply)
	case reflect.Interface:
		if v.IsNil() {
			return
		}
		sweep(v.Elem(), apply)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			sweep(v.Field(i), apply)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			sweep(v.Index(i), apply)
		}
	}
}

// StripTokens removes the token sidecar from node and every descendant,
// mutating in place, and returns node for chaining. Rules that compare two
// subtrees semantically must call this on (clones of) both sides first,
// since Equal compares tokens too.
func StripTokens(node Node) Node {
	stripWalk(reflect.ValueOf(node))
	return node
}

func stripWalk(v reflect.Value) {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return
		}
		stripWalk(v.Elem())
	case reflect.Interface:
		if v.IsNil() {
			return
		}
		stripWalk(v.Elem())
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := v.Field(i)
			if t.Field(i).Name == tokenFieldName && field.CanSet() {
				field.Set(reflect.Zero(field.Type()))
				continue
			}
			stripWalk(field)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			stripWalk(v.Index(i))
		}
	}
}

// Clone returns a deep copy of node. The copy shares no mutable state with
// the original, so a rule that needs to duplicate a subtree can freely
// mutate the clone. SemanticEqual below clones both operands this way.
func Clone[N Node](node N) N {
	v := reflect.ValueOf(node)
	if !v.IsValid() || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return node
	}
	cloned := deepCopy(v)
	return cloned.Interface().(N)
}

func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(deepCopy(v.Elem()))
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(deepCopy(v.Elem()))
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.NumField(); i++ {
			field := out.Field(i)
			if !field.CanSet() {
				continue // unexported (e.g. token.Token's cached content); left zero.
			}
			field.Set(deepCopy(v.Field(i)))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	default:
		return v
	}
}

// Equal reports whether a and b are structurally identical, tokens included.
func Equal(a, b Node) bool {
	return reflect.DeepEqual(a, b)
}

// SemanticEqual reports whether a and b are structurally identical once
// their token sidecars are stripped. It never mutates a or b: both are
// cloned first.
func SemanticEqual(a, b Node) bool {
	var strippedA, strippedB Node
	if a != nil {
		strippedA = StripTokens(Clone(a))
	}
	if b != nil {
		strippedB = StripTokens(Clone(b))
	}
	return reflect.DeepEqual(strippedA, strippedB)
}
