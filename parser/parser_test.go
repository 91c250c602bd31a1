package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/furc/ast"
	"github.com/akashmaji946/furc/fixlex"
	"github.com/akashmaji946/furc/object"
	"github.com/akashmaji946/furc/parser"
	"github.com/akashmaji946/furc/perr"
	"github.com/akashmaji946/furc/token"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	toks := fixlex.Tokenize("var int __t = " + src + ";")
	p := parser.New(toks)
	file, err := p.ParseFile()
	require.NoError(t, err)
	require.Len(t, file.Decls, 1)
	v, ok := file.Decls[0].(*ast.Variable)
	require.True(t, ok)
	return v.Initializer
}

func parseFile(t *testing.T, src string) *ast.File {
	t.Helper()
	toks := fixlex.Tokenize(src)
	p := parser.New(toks)
	file, err := p.ParseFile()
	require.NoError(t, err)
	return file
}

// --- Worked examples (spec.md §8) ---

func TestIntegerLiteral(t *testing.T) {
	expr := parseExpr(t, "100")
	lit, ok := expr.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, token.INT, lit.Kind)
	assert.Equal(t, "100", lit.Lexeme)
}

func TestBinaryAddition(t *testing.T) {
	expr := parseExpr(t, "foo + bar")
	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, token.ADD, bin.Op)
	assert.Equal(t, "foo", bin.Left.(*ast.Ident).Name)
	assert.Equal(t, "bar", bin.Right.(*ast.Ident).Name)
}

func TestCallExpression(t *testing.T) {
	expr := parseExpr(t, "a(1 + 2, a - b)")
	call, ok := expr.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "a", call.Callee.(*ast.Ident).Name)
	require.Len(t, call.Args, 2)
	assert.Equal(t, token.ADD, call.Args[0].(*ast.Binary).Op)
	assert.Equal(t, token.SUB, call.Args[1].(*ast.Binary).Op)
}

func TestForLoop(t *testing.T) {
	file := parseFile(t, `
		proc main :: -> int {
			for a := 0; a < 10; a++ {
				a = a + 1;
			}
		}
	`)
	fn := file.Decls[0].(*ast.Function)
	forStmt := fn.Body.Body[0].(*ast.For)
	require.NotNil(t, forStmt.Init)
	assert.Equal(t, "a", forStmt.Init.Dcl.(*ast.Variable).Name.Name)
	assert.Equal(t, token.LSS, forStmt.Cond.(*ast.Binary).Op)
	post := forStmt.Post.(*ast.Assign)
	assert.Equal(t, token.ADD_ASSIGN, post.Op)
}

func TestIfElseIfElse(t *testing.T) {
	file := parseFile(t, `
		proc main :: -> int {
			if a < 1 {
				return;
			} else if a < 2 {
				return;
			} else {
				return;
			}
		}
	`)
	fn := file.Decls[0].(*ast.Function)
	ifStmt := fn.Body.Body[0].(*ast.If)
	elseIf, ok := ifStmt.Else.(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, elseIf.Cond)

	terminalElse, ok := elseIf.Else.(*ast.If)
	require.True(t, ok)
	assert.Nil(t, terminalElse.Cond)
}

func TestProcAdd(t *testing.T) {
	file := parseFile(t, `proc add :: int a, int b -> int { return a + b; }`)
	fn := file.Decls[0].(*ast.Function)
	assert.Equal(t, "add", fn.Name.Name)
	require.Len(t, fn.Args, 2)
	assert.Equal(t, "a", fn.Args[0].Name.Name)
	assert.Equal(t, "b", fn.Args[1].Name.Name)
	assert.Equal(t, "int", fn.ReturnType.(*ast.Ident).Name)
	ret := fn.Body.Body[0].(*ast.Return)
	assert.Equal(t, token.ADD, ret.Value.(*ast.Binary).Op)
}

// --- Invariants (spec.md §8) ---

// 1. Precedence round-trip: multiplication binds tighter than addition.
func TestPrecedence_MulBindsTighterThanAdd(t *testing.T) {
	expr := parseExpr(t, "1 + 2 * 3")
	bin := expr.(*ast.Binary)
	assert.Equal(t, token.ADD, bin.Op)
	rhs := bin.Right.(*ast.Binary)
	assert.Equal(t, token.MUL, rhs.Op)
}

// 1b. LAND/LOR are right-associative and share one LBP level with each
// other (spec.md §4.2, §4.3).
func TestLogicalOr_RightAssociative(t *testing.T) {
	expr := parseExpr(t, "a || b || c")
	bin := expr.(*ast.Binary)
	assert.Equal(t, token.LOR, bin.Op)
	assert.Equal(t, "a", bin.Left.(*ast.Ident).Name)
	rhs := bin.Right.(*ast.Binary)
	assert.Equal(t, token.LOR, rhs.Op)
	assert.Equal(t, "b", rhs.Left.(*ast.Ident).Name)
	assert.Equal(t, "c", rhs.Right.(*ast.Ident).Name)
}

// 1c. Equality and relational operators share one LBP level, left-assoc:
// `a == b < c` parses as `(a == b) < c`, not `a == (b < c)`.
func TestComparison_SharedLevelLeftAssociative(t *testing.T) {
	expr := parseExpr(t, "a == b < c")
	bin := expr.(*ast.Binary)
	assert.Equal(t, token.LSS, bin.Op)
	lhs := bin.Left.(*ast.Binary)
	assert.Equal(t, token.EQL, lhs.Op)
	assert.Equal(t, "c", bin.Right.(*ast.Ident).Name)
}

// 2. Assignment chains are right-associative.
func TestAssignment_RightAssociative(t *testing.T) {
	file := parseFile(t, `
		proc main :: -> int {
			var int a = 0;
			var int b = 0;
			var int c = 0;
			a = b = c;
		}
	`)
	fn := file.Decls[0].(*ast.Function)
	assign := fn.Body.Body[3].(*ast.Assign)
	assert.Equal(t, "a", assign.Target.(*ast.Ident).Name)
	inner := assign.Value.(*ast.Binary)
	assert.Equal(t, token.ASSIGN, inner.Op)
	assert.Equal(t, "b", inner.Left.(*ast.Ident).Name)
	assert.Equal(t, "c", inner.Right.(*ast.Ident).Name)
}

// 3. Sibling function bodies get isolated scopes: a parameter named the
// same in two functions does not collide, and each body's use of it
// resolves to its own function's parameter.
func TestScopeIsolationBetweenSiblingFunctions(t *testing.T) {
	file := parseFile(t, `
		proc f :: int x -> int { return x; }
		proc g :: int x -> int { return x; }
	`)
	fRet := file.Decls[0].(*ast.Function).Body.Body[0].(*ast.Return)
	gRet := file.Decls[1].(*ast.Function).Body.Body[0].(*ast.Return)

	fIdent := fRet.Value.(*ast.Ident)
	gIdent := gRet.Value.(*ast.Ident)
	require.NotNil(t, fIdent.Resolved)
	require.NotNil(t, gIdent.Resolved)
	assert.NotSame(t, fIdent.Resolved, gIdent.Resolved)
}

// 4. A function may call itself before its own declaration is complete.
func TestForwardSelfReference(t *testing.T) {
	file := parseFile(t, `
		proc fact :: int n -> int {
			if n < 2 {
				return 1;
			}
			return n * fact(n - 1);
		}
	`)
	fn := file.Decls[0].(*ast.Function)
	ifStmt := fn.Body.Body[0].(*ast.If)
	_ = ifStmt
	ret := fn.Body.Body[1].(*ast.Return)
	mulExpr := ret.Value.(*ast.Binary)
	call := mulExpr.Right.(*ast.Call)
	callee := call.Callee.(*ast.Ident)
	require.NotNil(t, callee.Resolved)
	assert.Equal(t, object.Func, callee.Resolved.Kind)
	assert.Same(t, fn, callee.Resolved.Decl.(*ast.Function))
}

// 5. Duplicate names in the same scope are rejected; shadowing across a
// nested scope boundary is not.
func TestRedefinitionRejectedShadowingAllowed(t *testing.T) {
	_, err := parser.New(fixlex.Tokenize(`
		proc f :: -> int {
			var int x = 1;
			var int x = 2;
		}
	`)).ParseFile()
	require.Error(t, err)
	assert.True(t, errors.Is(err, perr.ErrRedefinition))

	file := parseFile(t, `
		proc f :: int x -> int {
			if x < 1 {
				var int x = 2;
			}
		}
	`)
	assert.NotNil(t, file)
}

// 6. No token left behind: a well-formed file's parser cursor lands
// exactly on END, i.e. ParseFile consumes the whole stream without error.
func TestNoTokenLeftBehind(t *testing.T) {
	toks := fixlex.Tokenize(`proc main :: -> int { return; }`)
	p := parser.New(toks)
	file, err := p.ParseFile()
	require.NoError(t, err)
	require.Len(t, file.Decls, 1)

	// A second ParseFile call on an exhausted parser should find nothing
	// left to parse and return an empty (not erroring) result.
	again, err := p.ParseFile()
	require.NoError(t, err)
	assert.Empty(t, again.Decls)
}

// --- Error taxonomy (spec.md §7) ---

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind error
	}{
		{"unexpected token", `proc main :: -> int { return 1 2; }`, perr.ErrUnexpectedToken},
		{"expected prefix", `proc main :: -> int { return +; }`, perr.ErrExpectedPrefix},
		{"expected top-level decl", `return;`, perr.ErrExpectedTopLevelDecl},
		{"expected statement", `proc main :: -> int { 1 + 2; }`, perr.ErrExpectedStatement},
		{"brace init unsupported", `proc main :: -> int { return foo { 1 }; }`, perr.ErrBraceInitUnsupported},
		{"missing double colon", `proc main(int a) -> int { return a; }`, perr.ErrUnexpectedToken},
		{"missing return type", `proc main :: int a { return a; }`, perr.ErrUnexpectedToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.New(fixlex.Tokenize(tc.src)).ParseFile()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind), "expected %v, got %v", tc.kind, err)
		})
	}
}

func TestKeyValueListLiteral(t *testing.T) {
	expr := parseExpr(t, `{ a: 1, b: 2, 3 }`)
	kvl := expr.(*ast.KeyValueList)
	require.Len(t, kvl.Entries, 3)
	assert.Equal(t, "a", kvl.Entries[0].Key.(*ast.Ident).Name)
	assert.Nil(t, kvl.Entries[2].Key)
}

func TestArrayTypeInVarDecl(t *testing.T) {
	file := parseFile(t, `var int[3] xs = [1, 2, 3];`)
	v := file.Decls[0].(*ast.Variable)
	at := v.ExplicitType.(*ast.ArrayType)
	assert.Equal(t, "int", at.ElementType.(*ast.Ident).Name)
	assert.Equal(t, "3", at.Length.(*ast.Literal).Lexeme)
	arr := v.Initializer.(*ast.Array)
	assert.Len(t, arr.Elements, 3)
}
