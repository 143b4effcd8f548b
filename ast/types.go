package ast

import "github.com/seaofvoices/darklua-go/token"

// TypeName is a bare type name: `string`, `MyClass`.
type TypeName struct {
	nodeBase
	Name string
	Tok  *token.Token
}

func (*TypeName) isType() {}

// TypeQualifiedName is `namespace.name`, e.g. `Roact.Element`.
type TypeQualifiedName struct {
	nodeBase
	Namespace string
	Name      string
	Tok       *TypeQualifiedNameTokens
}

func (*TypeQualifiedName) isType() {}

// TypeArray is `T[]`.
type TypeArray struct {
	nodeBase
	Element Type
	Tok     *TypeArrayTokens
}

func (*TypeArray) isType() {}

// TypeTableProperty is one `name: Type` entry of a table type.
type TypeTableProperty struct {
	Name string
	Type Type
}

// TypeTableIndexer is the optional `[KeyType]: ValueType` entry of a table
// type.
type TypeTableIndexer struct {
	KeyType   Type
	ValueType Type
}

// TypeTable is `{ name: Type, ... }`, with an optional indexer.
type TypeTable struct {
	nodeBase
	Properties []TypeTableProperty
	Indexer    *TypeTableIndexer
	Tok        *TypeTableTokens
}

func (*TypeTable) isType() {}

// TypeFunctionParameter is one parameter of a function type: an optional
// name plus its type.
type TypeFunctionParameter struct {
	Name string // "" when unnamed
	Type Type
}

// TypeFunction is `(Params) -> Return`.
type TypeFunction struct {
	nodeBase
	Parameters []TypeFunctionParameter
	ReturnType Type
	Tok        *TypeFunctionTokens
}

func (*TypeFunction) isType() {}

// TypeUnion is `A | B | C`.
type TypeUnion struct {
	nodeBase
	Types []Type
	Tok   *TypeUnionTokens
}

func (*TypeUnion) isType() {}

// TypeIntersection is `A & B & C`.
type TypeIntersection struct {
	nodeBase
	Types []Type
	Tok   *TypeIntersectionTokens
}

func (*TypeIntersection) isType() {}

// TypeOptional is `T?`, sugar for `T | nil`.
type TypeOptional struct {
	nodeBase
	Inner Type
	Tok   *TypeOptionalTokens
}

func (*TypeOptional) isType() {}

// TypeParenthesized is `(T)`, used to group a union/intersection/function
// type unambiguously.
type TypeParenthesized struct {
	nodeBase
	Inner Type
	Tok   *ParenthesizedTokens
}

func (*TypeParenthesized) isType() {}

// TypeOf is `typeof(expr)`.
type TypeOf struct {
	nodeBase
	Expression Expression
	Tok        *TypeOfTokens
}

func (*TypeOf) isType() {}

// TypeLiteralString is a string literal used as a type, e.g. `"ok"` in
// `"ok" | "error"`.
type TypeLiteralString struct {
	nodeBase
	Value string
	Tok   *token.Token
}

func (*TypeLiteralString) isType() {}

// TypeLiteralBool is `true`/`false` used as a type.
type TypeLiteralBool struct {
	nodeBase
	Value bool
	Tok   *token.Token
}

func (*TypeLiteralBool) isType() {}

// TypeNil is `nil` used as a type.
type TypeNil struct {
	nodeBase
	Tok *token.Token
}

func (*TypeNil) isType() {}
