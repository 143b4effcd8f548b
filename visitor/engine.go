package visitor

import "github.com/seaofvoices/darklua-go/ast"

// engine is the single depth-first traversal every exported visitor is built
// from. Both the plain Visitor and the ScopeVisitor dispatch through the
// same switch over the AST's closed variant set (ast/exhaustive.go); they
// only differ in the scope hooks they plug in, so there is exactly one place
// that needs updating whenever a new node variant is added.
type engine struct {
	enter func(ast.Node)
	leave func(ast.Node)
	scope Scope
}

func (e engine) visitBlock(block *ast.Block) {
	if block == nil {
		return
	}
	for _, stmt := range block.Statements {
		e.visitStatement(stmt)
	}
	if block.Last != nil {
		e.visitLastStatement(block.Last)
	}
}

// scopedBlock visits a block that introduces its own fresh scope: a
// do/while/if body. Function and for bodies push their own frame so their
// parameters or loop variables bind inside it, and repeat is handled
// separately since its condition shares the loop's scope.
func (e engine) scopedBlock(block *ast.Block) {
	e.scope.Push()
	e.visitBlock(block)
	e.scope.Pop()
}

func (e engine) visitStatement(stmt ast.Statement) {
	if stmt == nil {
		return
	}
	e.enter(stmt)
	switch s := stmt.(type) {
	case *ast.AssignmentStatement:
		for _, v := range s.Values {
			e.visitExpression(v)
		}
		for _, t := range s.Targets {
			e.visitVariable(t)
		}
	case *ast.CompoundAssignmentStatement:
		e.visitVariable(s.Target)
		e.visitExpression(s.Value)
	case *ast.LocalAssignmentStatement:
		for _, v := range s.Values {
			e.visitExpression(v)
		}
		for i := range s.Variables {
			tv := &s.Variables[i]
			if tv.Type != nil {
				e.visitType(tv.Type)
			}
			tv.Name = e.scope.InsertLocal(tv.Name, i < len(s.Values))
		}
	case *ast.DoStatement:
		e.scopedBlock(s.Body)
	case *ast.FunctionDeclarationStatement:
		if s.Name != nil {
			e.visitVariable(s.Name)
		}
		e.visitFunctionBody(s.Variant == ast.FunctionMethod, s.Parameters, s.ReturnType, s.Body)
	case *ast.GenericForStatement:
		for _, expr := range s.Expressions {
			e.visitExpression(expr)
		}
		e.scope.Push()
		for i := range s.Variables {
			tv := &s.Variables[i]
			if tv.Type != nil {
				e.visitType(tv.Type)
			}
			tv.Name = e.scope.Insert(tv.Name)
		}
		e.visitBlock(s.Body)
		e.scope.Pop()
	case *ast.NumericForStatement:
		e.visitExpression(s.Start)
		e.visitExpression(s.Stop)
		if s.Step != nil {
			e.visitExpression(s.Step)
		}
		e.scope.Push()
		if s.Variable.Type != nil {
			e.visitType(s.Variable.Type)
		}
		s.Variable.Name = e.scope.Insert(s.Variable.Name)
		e.visitBlock(s.Body)
		e.scope.Pop()
	case *ast.WhileStatement:
		e.visitExpression(s.Condition)
		e.scopedBlock(s.Body)
	case *ast.RepeatStatement:
		// The condition is inside the loop's own scope: locals the body
		// introduces must still be visible while it is evaluated.
		e.scope.Push()
		e.visitBlock(s.Body)
		e.visitExpression(s.Condition)
		e.scope.Pop()
	case *ast.IfStatement:
		e.visitExpression(s.Condition)
		e.scopedBlock(s.Body)
		for _, branch := range s.Branches {
			if branch.Condition != nil {
				e.visitExpression(branch.Condition)
			}
			e.scopedBlock(branch.Body)
		}
	case *ast.FunctionCallStatement:
		e.visitExpression(s.Call)
	case *ast.TypeDeclarationStatement:
		e.visitType(s.Value)
	}
	e.leave(stmt)
}

func (e engine) visitLastStatement(ls ast.LastStatement) {
	if ls == nil {
		return
	}
	e.enter(ls)
	switch l := ls.(type) {
	case *ast.ReturnStatement:
		for _, expr := range l.Expressions {
			e.visitExpression(expr)
		}
	case *ast.BreakStatement, *ast.ContinueStatement:
	}
	e.leave(ls)
}

// visitFunctionBody is the entry point shared by function declarations and
// function expressions: push a frame, bind self for methods, bind each
// parameter, then visit the body.
func (e engine) visitFunctionBody(isMethod bool, params []ast.TypedIdentifier, returnType ast.Type, body *ast.Block) {
	e.scope.Push()
	if isMethod {
		e.scope.InsertSelf()
	}
	for i := range params {
		p := &params[i]
		if p.Type != nil {
			e.visitType(p.Type)
		}
		p.Name = e.scope.Insert(p.Name)
	}
	if returnType != nil {
		e.visitType(returnType)
	}
	e.visitBlock(body)
	e.scope.Pop()
}

func (e engine) visitVariable(v ast.Variable) {
	if v == nil {
		return
	}
	// Every Variable variant (identifier, field, index) is also a Prefix;
	// see ast/variable.go.
	e.visitPrefix(v.(ast.Prefix))
}

func (e engine) visitExpression(expr ast.Expression) {
	if expr == nil {
		return
	}
	switch ex := expr.(type) {
	case *ast.NilExpression, *ast.TrueExpression, *ast.FalseExpression,
		*ast.NumberExpression, *ast.StringExpression:
		e.enter(expr)
		e.leave(expr)
	case *ast.InterpolatedStringExpression:
		e.enter(expr)
		for _, seg := range ex.Segments {
			if seg.Kind == ast.SegmentValue {
				e.visitExpression(seg.Value)
			}
		}
		e.leave(expr)
	case *ast.TableConstructorExpression:
		e.enter(expr)
		for _, entry := range ex.Entries {
			if entry.Key != nil {
				e.visitExpression(entry.Key)
			}
			e.visitExpression(entry.Value)
		}
		e.leave(expr)
	case *ast.FunctionExpression:
		e.enter(expr)
		e.visitFunctionBody(false, ex.Parameters, ex.ReturnType, ex.Body)
		e.leave(expr)
	case *ast.BinaryExpression:
		e.enter(expr)
		e.visitExpression(ex.Left)
		e.visitExpression(ex.Right)
		e.leave(expr)
	case *ast.UnaryExpression:
		e.enter(expr)
		e.visitExpression(ex.Operand)
		e.leave(expr)
	case *ast.IfExpression:
		e.enter(expr)
		e.visitExpression(ex.Condition)
		e.visitExpression(ex.Then)
		for _, branch := range ex.Branches {
			e.visitExpression(branch.Condition)
			e.visitExpression(branch.Result)
		}
		e.visitExpression(ex.Else)
		e.leave(expr)
	case *ast.TypeCastExpression:
		e.enter(expr)
		e.visitExpression(ex.Expression)
		e.visitType(ex.Type)
		e.leave(expr)
	case *ast.ComponentElementExpression:
		e.enter(expr)
		e.visitPrefix(ex.Tag)
		for _, attr := range ex.Attributes {
			e.visitExpression(attr.Value)
		}
		for _, child := range ex.Children {
			e.visitExpression(child)
		}
		e.leave(expr)
	case ast.Prefix:
		// IdentifierExpression, FieldExpression, IndexExpression,
		// CallExpression, MethodCallExpression, ParenthesizedExpression.
		e.visitPrefix(ex)
	}
}

func (e engine) visitPrefix(p ast.Prefix) {
	if p == nil {
		return
	}
	e.enter(p)
	switch pr := p.(type) {
	case *ast.IdentifierExpression:
		pr.Name = e.scope.Resolve(pr.Name)
	case *ast.FieldExpression:
		e.visitPrefix(pr.Base)
	case *ast.IndexExpression:
		e.visitPrefix(pr.Base)
		e.visitExpression(pr.Index)
	case *ast.CallExpression:
		e.visitPrefix(pr.Base)
		e.visitArguments(pr.Arguments)
	case *ast.MethodCallExpression:
		e.visitPrefix(pr.Base)
		e.visitArguments(pr.Arguments)
	case *ast.ParenthesizedExpression:
		e.visitExpression(pr.Inner)
	}
	e.leave(p)
}

func (e engine) visitArguments(a ast.Arguments) {
	if a == nil {
		return
	}
	e.enter(a)
	switch args := a.(type) {
	case *ast.TupleArguments:
		for _, item := range args.Items {
			e.visitExpression(item)
		}
	case *ast.StringArguments:
		e.visitExpression(args.Value)
	case *ast.TableArguments:
		e.visitExpression(args.Value)
	}
	e.leave(a)
}

func (e engine) visitType(t ast.Type) {
	if t == nil {
		return
	}
	e.enter(t)
	switch ty := t.(type) {
	case *ast.TypeName, *ast.TypeQualifiedName, *ast.TypeLiteralString,
		*ast.TypeLiteralBool, *ast.TypeNil:
	case *ast.TypeArray:
		e.visitType(ty.Element)
	case *ast.TypeTable:
		for _, prop := range ty.Properties {
			e.visitType(prop.Type)
		}
		if ty.Indexer != nil {
			e.visitType(ty.Indexer.KeyType)
			e.visitType(ty.Indexer.ValueType)
		}
	case *ast.TypeFunction:
		for _, param := range ty.Parameters {
			e.visitType(param.Type)
		}
		e.visitType(ty.ReturnType)
	case *ast.TypeUnion:
		for _, member := range ty.Types {
			e.visitType(member)
		}
	case *ast.TypeIntersection:
		for _, member := range ty.Types {
			e.visitType(member)
		}
	case *ast.TypeOptional:
		e.visitType(ty.Inner)
	case *ast.TypeParenthesized:
		e.visitType(ty.Inner)
	case *ast.TypeOf:
		e.visitExpression(ty.Expression)
	}
	e.leave(t)
}

// noopScope is plugged into the plain Visitor so the engine's scope calls
// are free to make unconditionally rather than branching on whether scope
// tracking is active.
type noopScope struct{}

func (noopScope) Push()                                              {}
func (noopScope) Pop()                                                {}
func (noopScope) InsertLocal(name string, init bool) string { return name }
func (noopScope) Insert(name string) string                  { return name }
func (noopScope) InsertSelf()                                         {}
func (noopScope) Resolve(name string) string                 { return name }
