// Package bundle implements the module assembler spec §4.6 describes:
// replacing every `require` call in a tree of files with a field access
// into a single synthesized module table, inlining each distinct resolved
// module exactly once.
package bundle

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/resolve"
	"github.com/seaofvoices/darklua-go/resource"
	"github.com/seaofvoices/darklua-go/util"
)

// ErrCycle is returned when a require chain resolves back to a module
// already being inlined.
var ErrCycle = errors.New("bundle: require cycle")

// ParseFunc parses source, naming it path in any diagnostic it produces,
// into the Block the assembler inlines.
type ParseFunc func(source []byte, path string) (*ast.Block, error)

// Assembler inlines require calls reachable from a root Block into a single
// synthesized module table, per spec §4.6.
type Assembler struct {
	Resolver *resolve.Resolver
	Layer    resource.Layer
	Parse    ParseFunc

	// Exclude lists glob patterns (matched against the require call's
	// literal path, not the resolved path) left uninlined.
	Exclude []string

	// ModuleTableName names the synthesized local table. Defaults to "M".
	ModuleTableName string

	names   *util.Permutator
	cache   map[[32]byte]moduleResult
	named   map[string]string // resolved path -> assigned field name
	stack   []string          // resolved paths currently being inlined
	wrapped []ast.Statement
	lastErr error
}

type moduleResult struct {
	name string
	err  error
}

func (a *Assembler) moduleTableName() string {
	if a.ModuleTableName == "" {
		return "M"
	}
	return a.ModuleTableName
}

// Assemble inlines every reachable require() found in root (whose own
// source lives at rootPath) and returns the bundled Block.
func (a *Assembler) Assemble(root *ast.Block, rootPath string) (*ast.Block, error) {
	a.names = util.NewPermutator(util.DefaultAlphabet)
	a.names.Reserve(a.moduleTableName())
	a.cache = make(map[[32]byte]moduleResult)
	a.named = make(map[string]string)
	a.stack = []string{rootPath}
	a.wrapped = nil
	a.lastErr = nil

	replaceRequires(root, func(literalPath string) ast.Expression {
		return a.inline(literalPath, rootPath)
	})

	if a.lastErr != nil {
		return nil, a.lastErr
	}

	if len(a.wrapped) == 0 {
		return root, nil
	}

	tableLocal := &ast.LocalAssignmentStatement{
		Variables: []ast.TypedIdentifier{{Name: a.moduleTableName()}},
		Values:    []ast.Expression{&ast.TableConstructorExpression{}},
	}

	out := ast.NewBlock(nil, root.Last)
	out.Statements = append(out.Statements, tableLocal)
	out.Statements = append(out.Statements, a.wrapped...)
	out.Statements = append(out.Statements, root.Statements...)
	return out, nil
}

// inline resolves literalPath (found inside fromPath) and returns the field
// expression that should replace the require call, or nil if the path
// matches an exclusion glob and must be left untouched.
func (a *Assembler) inline(literalPath string, fromPath string) ast.Expression {
	if a.excluded(literalPath) {
		return nil
	}

	resolved, err := a.Resolver.Resolve(literalPath, fromPath)
	if err != nil {
		return a.failField(err)
	}

	if contains(a.stack, resolved) {
		return a.failField(errors.Wrapf(ErrCycle, "%s", strings.Join(append(a.stack, resolved), " > ")))
	}

	if name, ok := a.named[resolved]; ok {
		return fieldOf(a.moduleTableName(), name)
	}

	contents, err := a.Layer.Get(resolved)
	if err != nil {
		return a.failField(errors.Wrapf(err, "reading %q", resolved))
	}

	key := blake2b.Sum256(append([]byte(resolved+"\x00"), contents...))
	if cached, ok := a.cache[key]; ok {
		if cached.err != nil {
			return a.failField(cached.err)
		}
		a.named[resolved] = cached.name
		return fieldOf(a.moduleTableName(), cached.name)
	}

	name := a.names.Next()
	a.named[resolved] = name
	a.stack = append(a.stack, resolved)

	var wrapper *ast.DoStatement
	if isDataFile(resolved) {
		wrapper, err = a.wrapDataFile(resolved, contents, name)
	} else {
		wrapper, err = a.wrapModule(resolved, contents, name)
	}

	a.stack = a.stack[:len(a.stack)-1]

	a.cache[key] = moduleResult{name: name, err: err}
	if err != nil {
		delete(a.named, resolved)
		return a.failField(err)
	}

	a.wrapped = append(a.wrapped, wrapper)
	return fieldOf(a.moduleTableName(), name)
}

// wrapModule parses a Lua/Luau module's source, inlines its own requires
// recursively, and rewrites its trailing return into an assignment onto the
// module table field name.
func (a *Assembler) wrapModule(resolved string, contents []byte, name string) (*ast.DoStatement, error) {
	block, err := a.Parse(contents, resolved)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", resolved)
	}

	replaceRequires(block, func(literalPath string) ast.Expression {
		return a.inline(literalPath, resolved)
	})

	assign := returnToAssignment(block, a.moduleTableName(), name)
	body := ast.NewBlock(block.Statements, nil)
	if assign != nil {
		body.Statements = append(body.Statements, assign)
	}
	return &ast.DoStatement{Body: body}, nil
}

// wrapDataFile transcodes a JSON/YAML/TOML resource directly to a literal
// expression assigned onto the module table field, per spec §4.6.
func (a *Assembler) wrapDataFile(resolved string, contents []byte, name string) (*ast.DoStatement, error) {
	decode, ok := dataFileExtensions[strings.ToLower(filepath.Ext(resolved))]
	if !ok {
		return nil, errors.Errorf("bundle: %q is not a recognized data file", resolved)
	}
	value, err := decode(contents)
	if err != nil {
		return nil, errors.Wrapf(err, "transcoding %q", resolved)
	}
	expr, err := dataToExpression(value)
	if err != nil {
		return nil, errors.Wrapf(err, "transcoding %q", resolved)
	}
	assign := &ast.AssignmentStatement{
		Targets: []ast.Variable{fieldOf(a.moduleTableName(), name).(ast.Variable)},
		Values:  []ast.Expression{expr},
	}
	return &ast.DoStatement{Body: ast.NewBlock([]ast.Statement{assign}, nil)}, nil
}

// returnToAssignment rewrites block's trailing `return <expr>`, if any,
// into `M.<name> = <expr>` appended as a regular statement, and clears the
// block's last-statement — a module with no return contributes no
// assignment (its table field stays nil, matching a direct require's
// resulting nil).
func returnToAssignment(block *ast.Block, tableName string, name string) ast.Statement {
	ret, ok := block.Last.(*ast.ReturnStatement)
	if !ok || len(ret.Expressions) == 0 {
		block.Last = nil
		return nil
	}
	block.Last = nil
	return &ast.AssignmentStatement{
		Targets: []ast.Variable{fieldOf(tableName, name).(ast.Variable)},
		Values:  []ast.Expression{ret.Expressions[0]},
	}
}

func fieldOf(tableName string, field string) ast.Expression {
	return &ast.FieldExpression{
		Base: &ast.IdentifierExpression{Name: tableName},
		Name: field,
	}
}

// failField is used when a require target fails to resolve, parse, or
// inline: rather than abort the whole bundle, the originating require
// expression is replaced by an expression that, via the returned error
// carried alongside it, still surfaces to the caller. Assemble itself
// always returns the first such error instead of silently swallowing it.
func (a *Assembler) failField(err error) ast.Expression {
	if a.lastErr == nil {
		a.lastErr = err
	}
	return &ast.NilExpression{}
}

// excluded reports whether literalPath matches one of the configured
// exclusion globs, matched with path/filepath's shell-style syntax — the
// teacher and the rest of the pack never pull in a dedicated glob library,
// so a configured exclusion pattern is expected to be a single path
// component or a filepath.Match wildcard, not a recursive `**` glob.
func (a *Assembler) excluded(literalPath string) bool {
	for _, pattern := range a.Exclude {
		if ok, err := filepath.Match(pattern, literalPath); ok && err == nil {
			return true
		}
	}
	return false
}

func contains(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}
	return false
}
