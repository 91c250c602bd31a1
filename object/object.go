/*
File    : furc/object/object.go

Package object defines the symbol-table entry a scope.Scope binds names to.
It sits below package ast in the dependency graph — ast.Ident holds a
*Object, not the other way around — so Decl is kept as an opaque interface{}
rather than an ast.Node, avoiding an import cycle between object and ast.
*/
package object

// Kind classifies what kind of declaration an Object stands for.
type Kind int

const (
	Var Kind = iota
	Arg
	Func
)

func (k Kind) String() string {
	switch k {
	case Var:
		return "var"
	case Arg:
		return "arg"
	case Func:
		return "func"
	default:
		return "unknown"
	}
}

// Object is a single binding: a name, the kind of declaration that
// introduced it, and the declaration node itself. Decl is typed as `any`
// rather than an ast.Node so that this package never imports package ast;
// callers that need the concrete node type assert it back to
// *ast.Variable, *ast.Argument or *ast.Function as appropriate.
type Object struct {
	Name string
	Kind Kind
	Decl any
}

// New builds an Object bound to decl, which should be the ast.Variable,
// ast.Argument or ast.Function node (as an `any`) that introduced it.
func New(name string, kind Kind, decl any) *Object {
	return &Object{Name: name, Kind: kind, Decl: decl}
}
