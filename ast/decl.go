package ast

import (
	"fmt"
	"strings"
)

// ---- Declarations ----

// Variable is a `var` declaration, covering both source forms spec.md §4.6
// describes: `var T name = expr` (ExplicitType set) and `name := expr`
// (ExplicitType nil, inferred later by a type-checking pass this module
// does not perform).
type Variable struct {
	base
	Name         *Ident
	ExplicitType Expr // nil when the type is inferred from Initializer
	Initializer  Expr
}

func (v *Variable) declNode() {}
func (v *Variable) String() string {
	if v.ExplicitType != nil {
		return fmt.Sprintf("var %s %s = %s", v.ExplicitType, v.Name, v.Initializer)
	}
	return fmt.Sprintf("%s := %s", v.Name, v.Initializer)
}

// Argument is one formal parameter of a Function: `Type Name`.
type Argument struct {
	base
	Type Expr
	Name *Ident
}

func (a *Argument) declNode()      {}
func (a *Argument) String() string { return fmt.Sprintf("%s %s", a.Type, a.Name) }

// Function is a `proc` declaration. Its own Name Object is installed in the
// enclosing scope before Body is parsed, so a function may call itself
// (spec.md §4.6, "two-phase declaration installation").
type Function struct {
	base
	Name       *Ident
	Args       []*Argument
	ReturnType Expr // always set by the parser: `-> Type` is mandatory
	Body       *Block
}

func (f *Function) declNode() {}
func (f *Function) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("proc %s :: %s -> %s %s", f.Name, strings.Join(parts, ", "), f.ReturnType, f.Body)
}

// File is the root node: the ordered sequence of top-level declarations
// parsed from one source file. It does not keep the root Scope.
type File struct {
	base
	Decls []Decl
}

func (fl *File) String() string {
	parts := make([]string, len(fl.Decls))
	for i, d := range fl.Decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, "\n")
}
