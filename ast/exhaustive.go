package ast

// This file exists purely to fail to compile the moment a concrete type
// listed below stops satisfying the category interface it's supposed to.
// Go has no compiler-enforced exhaustive match, so the next best thing is
// pinning every variant to its interface in one place, which doubles as the
// checklist for the switches in visitor/evaluate/generate. A newly added
// type that is not listed here still compiles; nothing in this file flags
// it.

var _ = []Statement{
	(*AssignmentStatement)(nil),
	(*CompoundAssignmentStatement)(nil),
	(*LocalAssignmentStatement)(nil),
	(*DoStatement)(nil),
	(*FunctionDeclarationStatement)(nil),
	(*GenericForStatement)(nil),
	(*NumericForStatement)(nil),
	(*WhileStatement)(nil),
	(*RepeatStatement)(nil),
	(*IfStatement)(nil),
	(*FunctionCallStatement)(nil),
	(*TypeDeclarationStatement)(nil),
}

var _ = []LastStatement{
	(*ReturnStatement)(nil),
	(*BreakStatement)(nil),
	(*ContinueStatement)(nil),
}

var _ = []Expression{
	(*NilExpression)(nil),
	(*TrueExpression)(nil),
	(*FalseExpression)(nil),
	(*NumberExpression)(nil),
	(*StringExpression)(nil),
	(*InterpolatedStringExpression)(nil),
	(*TableConstructorExpression)(nil),
	(*FunctionExpression)(nil),
	(*BinaryExpression)(nil),
	(*UnaryExpression)(nil),
	(*IfExpression)(nil),
	(*TypeCastExpression)(nil),
	(*ComponentElementExpression)(nil),
	(*IdentifierExpression)(nil),
	(*FieldExpression)(nil),
	(*IndexExpression)(nil),
	(*CallExpression)(nil),
	(*MethodCallExpression)(nil),
	(*ParenthesizedExpression)(nil),
}

var _ = []Prefix{
	(*IdentifierExpression)(nil),
	(*FieldExpression)(nil),
	(*IndexExpression)(nil),
	(*CallExpression)(nil),
	(*MethodCallExpression)(nil),
	(*ParenthesizedExpression)(nil),
}

var _ = []Arguments{
	(*TupleArguments)(nil),
	(*StringArguments)(nil),
	(*TableArguments)(nil),
}

var _ = []Type{
	(*TypeName)(nil),
	(*TypeQualifiedName)(nil),
	(*TypeArray)(nil),
	(*TypeTable)(nil),
	(*TypeFunction)(nil),
	(*TypeUnion)(nil),
	(*TypeIntersection)(nil),
	(*TypeOptional)(nil),
	(*TypeParenthesized)(nil),
	(*TypeOf)(nil),
	(*TypeLiteralString)(nil),
	(*TypeLiteralBool)(nil),
	(*TypeNil)(nil),
}

var _ = []Variable{
	(*IdentifierExpression)(nil),
	(*FieldExpression)(nil),
	(*IndexExpression)(nil),
}
